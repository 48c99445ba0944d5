package core

import (
	"fmt"

	"fasol.store/staffapp/staff/model"
	"gorm.io/gorm"
)

// DefaultTasks is the fixed daily checklist seeded into an empty task table.
var DefaultTasks = []model.Task{
	{Name: "Открытие кассы", StartTime: "8:00", EndTime: "8:30"},
	{Name: "Выкладка товара", StartTime: "8:00", EndTime: "16:00"},
	{Name: "Фасовка товара", StartTime: "10:00", EndTime: "18:00"},
	{Name: "Расстановка ценников", StartTime: "8:00", EndTime: "18:00"},
	{Name: "Уборка", StartTime: "20:30", EndTime: "22:00"},
	{Name: "Закрытие кассы", StartTime: "21:30", EndTime: "22:05"},
	{Name: "Выкладка сигарет", StartTime: "11:00", EndTime: "16:00"},
	{Name: "Очистка кофемашины", StartTime: "8:00", EndTime: "22:00"},
}

type demoAccount struct {
	login    string
	password string
	fullName string
	role     string
}

var demoAccounts = []demoAccount{
	{login: "ivan", password: "pass123", fullName: "Иван Иванов", role: model.RoleCashier},
	{login: "anna", password: "pass456", fullName: "Анна Петрова", role: model.RoleManager},
}

// EnsureSchema creates any missing tables. The schema is additive-only.
func EnsureSchema(db *gorm.DB) error {
	models := []interface{}{
		&model.Employee{},
		&model.Task{},
		&model.Shift{},
		&model.CompletedTask{},
	}

	for _, m := range models {
		if !db.Migrator().HasTable(m) {
			if err := db.Migrator().CreateTable(m); err != nil {
				return fmt.Errorf("failed to create table for %T: %w", m, err)
			}
		}
	}
	return nil
}

// SeedTasks inserts the default catalog when the task table is empty.
func SeedTasks(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.Task{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	tasks := make([]model.Task, len(DefaultTasks))
	copy(tasks, DefaultTasks)
	return db.Create(&tasks).Error
}

// SeedEmployees inserts the demo accounts for any login not yet present.
func SeedEmployees(db *gorm.DB) error {
	for _, account := range demoAccounts {
		var count int64
		if err := db.Model(&model.Employee{}).Where("login = ?", account.login).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}

		hash, err := HashPassword(account.password)
		if err != nil {
			return err
		}
		emp := model.Employee{
			Login:        account.login,
			PasswordHash: hash,
			FullName:     account.fullName,
			Role:         account.role,
		}
		if err := db.Create(&emp).Error; err != nil {
			return err
		}
	}
	return nil
}

// Bootstrap prepares a fresh database: schema, task catalog, demo accounts.
func Bootstrap(db *gorm.DB) error {
	if err := EnsureSchema(db); err != nil {
		return err
	}
	if err := SeedTasks(db); err != nil {
		return fmt.Errorf("failed to seed tasks: %w", err)
	}
	if err := SeedEmployees(db); err != nil {
		return fmt.Errorf("failed to seed employees: %w", err)
	}
	return nil
}
