package core

import (
	"errors"
	"time"

	"fasol.store/staffapp/staff/model"
	"fasol.store/staffapp/utils"
	"gorm.io/gorm"
)

var (
	ErrTaskNotFound     = errors.New("task not found")
	ErrTaskNotStarted   = errors.New("task window not yet open")
	ErrAlreadyCompleted = errors.New("task already completed today")
)

const dayLayout = "2006-01-02"

// MarkComplete records that the employee finished the task at now. It
// requires an open shift and a task whose start time has been reached, and
// it is idempotent per day: the second completion of the same task by the
// same employee on the same calendar day fails with ErrAlreadyCompleted.
// The unique index on completed_tasks backs the in-transaction check.
func MarkComplete(db *gorm.DB, taskID, employeeID uint, now time.Time) (*model.CompletedTask, error) {
	record := model.CompletedTask{
		TaskID:         taskID,
		EmployeeID:     employeeID,
		CompletionDate: utils.ToMillis(now),
		Day:            now.Format(dayLayout),
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		open, err := ActiveShift(tx, employeeID)
		if err != nil {
			return err
		}
		if open == nil {
			return ErrNoOpenShift
		}

		var task model.Task
		if err := tx.First(&task, taskID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTaskNotFound
			}
			return err
		}
		if !TaskStarted(task, now) {
			return ErrTaskNotStarted
		}

		var count int64
		if err := tx.Model(&model.CompletedTask{}).
			Where("task_id = ? AND employee_id = ? AND day = ?", taskID, employeeID, record.Day).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrAlreadyCompleted
		}

		if err := tx.Create(&record).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrAlreadyCompleted
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// CompletedTaskIDs returns the ids of tasks the employee completed within
// [startMillis, endMillis).
func CompletedTaskIDs(db *gorm.DB, employeeID uint, startMillis, endMillis int64) (map[uint]bool, error) {
	var records []model.CompletedTask
	if err := db.Where("employee_id = ? AND completion_date >= ? AND completion_date < ?",
		employeeID, startMillis, endMillis).
		Find(&records).Error; err != nil {
		return nil, err
	}

	done := make(map[uint]bool, len(records))
	for _, r := range records {
		done[r.TaskID] = true
	}
	return done, nil
}

// CountCompletions counts the employee's completions within
// [startMillis, endMillis).
func CountCompletions(db *gorm.DB, employeeID uint, startMillis, endMillis int64) (int, error) {
	var count int64
	err := db.Model(&model.CompletedTask{}).
		Where("employee_id = ? AND completion_date >= ? AND completion_date < ?",
			employeeID, startMillis, endMillis).
		Count(&count).Error
	return int(count), err
}
