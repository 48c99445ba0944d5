package model

// CompletedTask records one completion event. Day duplicates the calendar
// date of CompletionDate ("2006-01-02", local time) so the store can carry a
// unique index making completion idempotent per task, employee and day.
type CompletedTask struct {
	ID             uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	TaskID         uint   `gorm:"not null;uniqueIndex:idx_completion_per_day" json:"taskId"`
	EmployeeID     uint   `gorm:"not null;uniqueIndex:idx_completion_per_day" json:"employeeId"`
	CompletionDate int64  `gorm:"not null" json:"completionDate"`
	Day            string `gorm:"size:10;not null;uniqueIndex:idx_completion_per_day" json:"day"`
}

func (CompletedTask) TableName() string {
	return "completed_tasks"
}
