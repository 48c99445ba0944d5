package model

const (
	RoleCashier = "Кассир"
	RoleManager = "Руководитель"
)

type Employee struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Login        string `gorm:"size:64;uniqueIndex;not null" json:"login"`
	PasswordHash string `gorm:"size:80;not null" json:"-"`
	FullName     string `gorm:"size:128;not null" json:"fullName"`
	Role         string `gorm:"size:32;not null" json:"role"`
}

func (Employee) TableName() string {
	return "employees"
}
