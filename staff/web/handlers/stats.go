package handlers

import (
	"net/http"
	"time"

	staff "fasol.store/staffapp/staff/core"
	"fasol.store/staffapp/web/common"
	"fasol.store/staffapp/web/middlewares"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Statistics is the per-employee statistics screen.
func (ep *Endpoint) Statistics(c *gin.Context) {
	session := middlewares.CurrentSession(c)

	var summary *staff.Summary
	if err := ep.exec(c, func(db *gorm.DB) error {
		built, err := staff.BuildSummary(db, session.EmployeeID, time.Now())
		if err != nil {
			return err
		}
		summary = built
		return nil
	}); err != nil {
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(summary))
}

type AdminStatisticsDTO struct {
	TopEmployeesMonth []staff.EmployeeActivity   `json:"topEmployeesMonth"`
	TopEmployeesShift []staff.EmployeeActivity   `json:"topEmployeesShift"`
	ShiftHoursMonth   []staff.EmployeeShiftHours `json:"shiftHoursMonth"`
}

// AdminStatistics is the manager overview: the most active employees over
// the trailing month, activity during currently open shifts, and worked
// hours per employee.
func (ep *Endpoint) AdminStatistics(c *gin.Context) {
	now := time.Now()

	var result AdminStatisticsDTO
	if err := ep.exec(c, func(db *gorm.DB) error {
		month, err := staff.TopEmployeesByMonth(db, now, 3)
		if err != nil {
			return err
		}
		shift, err := staff.TopEmployeesByOpenShift(db, now, 3)
		if err != nil {
			return err
		}
		hours, err := staff.MonthlyShiftHours(db, now)
		if err != nil {
			return err
		}
		result = AdminStatisticsDTO{TopEmployeesMonth: month, TopEmployeesShift: shift, ShiftHoursMonth: hours}
		return nil
	}); err != nil {
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(result))
}
