package model

// Shift is one working session. EndTime is nil while the shift is open;
// at most one open shift may exist per employee.
type Shift struct {
	ID         uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	EmployeeID uint   `gorm:"index;not null" json:"employeeId"`
	StartTime  int64  `gorm:"not null" json:"startTime"`
	EndTime    *int64 `json:"endTime"`
}

func (Shift) TableName() string {
	return "shifts"
}

// DurationMillis is the length of a closed shift. Open shifts report 0.
func (s *Shift) DurationMillis() int64 {
	if s.EndTime == nil {
		return 0
	}
	return *s.EndTime - s.StartTime
}
