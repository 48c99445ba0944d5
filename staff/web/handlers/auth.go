package handlers

import (
	"errors"
	"net/http"
	"time"

	"fasol.store/staffapp/security"
	staff "fasol.store/staffapp/staff/core"
	"fasol.store/staffapp/staff/model"
	"fasol.store/staffapp/web/common"
	"fasol.store/staffapp/web/middlewares"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const sessionTTL = 24 * time.Hour

type LoginDTO struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponseDTO struct {
	Token    string          `json:"token"`
	Employee *model.Employee `json:"employee"`
}

// Login verifies credentials and opens a session: the token is returned in
// the body and set as a cookie for clients that prefer it.
func (ep *Endpoint) Login(c *gin.Context) {
	var body LoginDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("Введите логин и пароль"))
		return
	}

	var emp *model.Employee
	err := ep.exec(c, func(db *gorm.DB) error {
		found, err := staff.Authenticate(db, body.Login, body.Password)
		if errors.Is(err, staff.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, common.NewErrorResponse("Неверный логин или пароль"))
			return nil
		}
		if err != nil {
			return err
		}
		emp = found
		return nil
	})
	if err != nil || emp == nil {
		return
	}

	token, err := security.CreateSessionToken(emp, ep.secretB64, sessionTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(msgLoadFailed))
		return
	}

	c.SetCookie(middlewares.SessionCookie, token, int(sessionTTL.Seconds()), "/", "", false, true)
	c.JSON(http.StatusOK, common.NewSuccessResponse(LoginResponseDTO{Token: token, Employee: emp}))
}

// Logout ends the session explicitly by expiring the cookie. Bearer tokens
// simply stop being presented.
func (ep *Endpoint) Logout(c *gin.Context) {
	c.SetCookie(middlewares.SessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, common.NewSuccessResponse(gin.H{}))
}
