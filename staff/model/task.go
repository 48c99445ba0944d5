package model

// Task is one item of the daily checklist. StartTime and EndTime are
// wall-clock "HH:MM" strings without a date component; the window they
// describe is anchored to the current day when availability is evaluated.
type Task struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string `gorm:"size:128;not null" json:"name"`
	StartTime string `gorm:"column:start_time;size:8;not null" json:"startTime"`
	EndTime   string `gorm:"column:end_time;size:8;not null" json:"endTime"`
}

func (Task) TableName() string {
	return "tasks"
}
