package security

import (
	"encoding/base64"
	"time"

	"fasol.store/staffapp/staff/model"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionClaims is the authenticated identity carried by every request:
// employee id, display name and role, plus the standard JWT fields.
type SessionClaims struct {
	EmployeeID uint   `json:"employeeId"`
	FullName   string `json:"fullName"`
	Role       string `json:"role"`
	jwt.RegisteredClaims
}

// CreateSessionToken mints an HS256 session token for the employee.
// The secret is base64-encoded, matching its storage in configuration.
func CreateSessionToken(emp *model.Employee, base64Secret string, ttl time.Duration) (string, error) {
	secret, err := base64.StdEncoding.DecodeString(base64Secret)
	if err != nil {
		return "", err
	}

	claims := SessionClaims{
		EmployeeID: emp.ID,
		FullName:   emp.FullName,
		Role:       emp.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "fasol-staff",
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ParseSessionToken validates the token signature and expiry and returns the
// session claims.
func ParseSessionToken(tokenStr string, secret []byte) (*SessionClaims, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}
