package security

import (
	"encoding/base64"
	"testing"
	"time"

	"fasol.store/staffapp/staff/model"
	"github.com/stretchr/testify/assert"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	rawSecret := []byte("unit-test-secret")
	base64Secret := base64.StdEncoding.EncodeToString(rawSecret)

	emp := &model.Employee{
		ID:       7,
		FullName: "Иван Иванов",
		Role:     model.RoleCashier,
	}

	token, err := CreateSessionToken(emp, base64Secret, time.Hour)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := ParseSessionToken(token, rawSecret)
	assert.NoError(t, err)
	assert.Equal(t, uint(7), claims.EmployeeID)
	assert.Equal(t, "Иван Иванов", claims.FullName)
	assert.Equal(t, model.RoleCashier, claims.Role)
	assert.NotEmpty(t, claims.ID)
}

func TestParseSessionTokenRejects(t *testing.T) {
	rawSecret := []byte("unit-test-secret")
	base64Secret := base64.StdEncoding.EncodeToString(rawSecret)
	emp := &model.Employee{ID: 1, FullName: "Анна Петрова", Role: model.RoleManager}

	t.Run("Wrong secret", func(t *testing.T) {
		token, err := CreateSessionToken(emp, base64Secret, time.Hour)
		assert.NoError(t, err)

		_, err = ParseSessionToken(token, []byte("other-secret"))
		assert.Error(t, err)
	})

	t.Run("Expired token", func(t *testing.T) {
		token, err := CreateSessionToken(emp, base64Secret, -time.Minute)
		assert.NoError(t, err)

		_, err = ParseSessionToken(token, rawSecret)
		assert.Error(t, err)
	})

	t.Run("Not a token", func(t *testing.T) {
		_, err := ParseSessionToken("garbage", rawSecret)
		assert.Error(t, err)
	})

	t.Run("Invalid base64 secret", func(t *testing.T) {
		_, err := CreateSessionToken(emp, "%%%not-base64%%%", time.Hour)
		assert.Error(t, err)
	})
}
