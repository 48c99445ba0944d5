package handlers

import (
	"net/http"
	"time"

	staff "fasol.store/staffapp/staff/core"
	"fasol.store/staffapp/staff/model"
	"fasol.store/staffapp/utils"
	"fasol.store/staffapp/web/common"
	"fasol.store/staffapp/web/middlewares"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type DashboardDTO struct {
	FullName      string          `json:"fullName"`
	Role          string          `json:"role"`
	IsManager     bool            `json:"isManager"`
	ShiftActive   bool            `json:"shiftActive"`
	CanStartShift bool            `json:"canStartShift"`
	Completed     int             `json:"completed"`
	Total         int             `json:"total"`
	Tasks         []TaskStatusDTO `json:"tasks"`
}

// Dashboard is the landing screen read: greeting identity, shift state,
// today's progress and the tasks whose window is currently open.
func (ep *Endpoint) Dashboard(c *gin.Context) {
	session := middlewares.CurrentSession(c)
	now := time.Now()

	var (
		tasks     []model.Task
		done      map[uint]bool
		completed int
		active    *model.Shift
	)
	if err := ep.exec(c, func(db *gorm.DB) error {
		if err := db.Find(&tasks).Error; err != nil {
			return err
		}

		start, end := utils.DayRange(now)
		var err error
		done, err = staff.CompletedTaskIDs(db, session.EmployeeID, start, end)
		if err != nil {
			return err
		}
		completed, err = staff.CountCompletions(db, session.EmployeeID, start, end)
		if err != nil {
			return err
		}

		active, err = staff.ActiveShift(db, session.EmployeeID)
		return err
	}); err != nil {
		return
	}

	available := utils.Filter(tasks, func(t model.Task) bool {
		return staff.TaskWindowOpen(t, now)
	})
	statuses := utils.Map(available, func(t model.Task) TaskStatusDTO {
		return TaskStatusDTO{
			ID:        t.ID,
			Name:      t.Name,
			StartTime: t.StartTime,
			EndTime:   t.EndTime,
			Available: true,
			Started:   true,
			Completed: done[t.ID],
		}
	})

	shiftActive := active != nil
	c.JSON(http.StatusOK, common.NewSuccessResponse(DashboardDTO{
		FullName:      session.FullName,
		Role:          session.Role,
		IsManager:     session.Role == model.RoleManager,
		ShiftActive:   shiftActive,
		CanStartShift: staff.ShiftStartAllowed(now) && !shiftActive,
		Completed:     completed,
		Total:         len(tasks),
		Tasks:         statuses,
	}))
}
