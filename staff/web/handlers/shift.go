package handlers

import (
	"errors"
	"net/http"
	"time"

	staff "fasol.store/staffapp/staff/core"
	"fasol.store/staffapp/staff/model"
	"fasol.store/staffapp/web/common"
	"fasol.store/staffapp/web/middlewares"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ClockIn opens a shift for the session's employee.
func (ep *Endpoint) ClockIn(c *gin.Context) {
	session := middlewares.CurrentSession(c)

	var shift *model.Shift
	err := ep.exec(c, func(db *gorm.DB) error {
		created, err := staff.ClockIn(db, session.EmployeeID, time.Now())
		switch {
		case errors.Is(err, staff.ErrShiftAlreadyOpen):
			c.JSON(http.StatusConflict, common.NewErrorResponse("Смена уже начата"))
			return nil
		case errors.Is(err, staff.ErrOutsideStartWindow):
			c.JSON(http.StatusConflict, common.NewErrorResponse("Смену можно начать только с 08:00 до 19:00"))
			return nil
		case err != nil:
			return err
		}
		shift = created
		return nil
	})
	if err != nil || shift == nil {
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(shift))
}

// ClockOut closes the open shift of the session's employee.
func (ep *Endpoint) ClockOut(c *gin.Context) {
	session := middlewares.CurrentSession(c)

	var shift *model.Shift
	err := ep.exec(c, func(db *gorm.DB) error {
		closed, err := staff.ClockOut(db, session.EmployeeID, time.Now())
		if errors.Is(err, staff.ErrNoOpenShift) {
			c.JSON(http.StatusConflict, common.NewErrorResponse("Смена ещё не начата"))
			return nil
		}
		if err != nil {
			return err
		}
		shift = closed
		return nil
	})
	if err != nil || shift == nil {
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(shift))
}

type ActiveShiftDTO struct {
	Active bool         `json:"active"`
	Shift  *model.Shift `json:"shift,omitempty"`
}

// ActiveShift is the point-in-time read of the session's open shift.
func (ep *Endpoint) ActiveShift(c *gin.Context) {
	session := middlewares.CurrentSession(c)

	var shift *model.Shift
	if err := ep.exec(c, func(db *gorm.DB) error {
		found, err := staff.ActiveShift(db, session.EmployeeID)
		if err != nil {
			return err
		}
		shift = found
		return nil
	}); err != nil {
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(ActiveShiftDTO{Active: shift != nil, Shift: shift}))
}
