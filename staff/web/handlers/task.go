package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	staff "fasol.store/staffapp/staff/core"
	"fasol.store/staffapp/staff/model"
	"fasol.store/staffapp/utils"
	"fasol.store/staffapp/web/common"
	"fasol.store/staffapp/web/middlewares"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type TaskStatusDTO struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Available bool   `json:"available"`
	Started   bool   `json:"started"`
	Completed bool   `json:"completed"`
}

// ListTasks returns the whole checklist with availability and the session
// employee's completed-today flags.
func (ep *Endpoint) ListTasks(c *gin.Context) {
	session := middlewares.CurrentSession(c)
	now := time.Now()

	var tasks []model.Task
	var done map[uint]bool
	if err := ep.exec(c, func(db *gorm.DB) error {
		if err := db.Find(&tasks).Error; err != nil {
			return err
		}
		start, end := utils.DayRange(now)
		var err error
		done, err = staff.CompletedTaskIDs(db, session.EmployeeID, start, end)
		return err
	}); err != nil {
		return
	}

	statuses := utils.Map(tasks, func(t model.Task) TaskStatusDTO {
		return TaskStatusDTO{
			ID:        t.ID,
			Name:      t.Name,
			StartTime: t.StartTime,
			EndTime:   t.EndTime,
			Available: staff.TaskWindowOpen(t, now),
			Started:   staff.TaskStarted(t, now),
			Completed: done[t.ID],
		}
	})

	c.JSON(http.StatusOK, common.NewSuccessResponse(statuses))
}

// CompleteTask marks the task done by the session's employee. Preconditions
// are answered with the messages the task screen shows.
func (ep *Endpoint) CompleteTask(c *gin.Context) {
	session := middlewares.CurrentSession(c)

	taskID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("Invalid id"))
		return
	}

	var record *model.CompletedTask
	execErr := ep.exec(c, func(db *gorm.DB) error {
		created, err := staff.MarkComplete(db, uint(taskID), session.EmployeeID, time.Now())
		switch {
		case errors.Is(err, staff.ErrNoOpenShift):
			c.JSON(http.StatusConflict, common.NewErrorResponse("Для выполнения задачи начните смену"))
			return nil
		case errors.Is(err, staff.ErrTaskNotStarted):
			c.JSON(http.StatusConflict, common.NewErrorResponse("Время начала задачи ещё не наступило"))
			return nil
		case errors.Is(err, staff.ErrAlreadyCompleted):
			c.JSON(http.StatusConflict, common.NewErrorResponse("Задача уже выполнена"))
			return nil
		case errors.Is(err, staff.ErrTaskNotFound):
			c.JSON(http.StatusNotFound, common.NewErrorResponse("Задача не найдена"))
			return nil
		case err != nil:
			return err
		}
		record = created
		return nil
	})
	if execErr != nil || record == nil {
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(record))
}
