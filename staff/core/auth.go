package core

import (
	"errors"

	"fasol.store/staffapp/staff/model"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrInvalidCredentials = errors.New("invalid login or password")

// Authenticate looks the employee up by login and verifies the password
// against the stored bcrypt hash. Credentials are never persisted in
// plaintext.
func Authenticate(db *gorm.DB, login, password string) (*model.Employee, error) {
	var emp model.Employee
	result := db.Where("login = ?", login).First(&emp)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if result.Error != nil {
		return nil, result.Error
	}

	if bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return &emp, nil
}

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
