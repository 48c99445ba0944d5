package handlers

import (
	"encoding/base64"
	"log"
	"net/http"

	"fasol.store/staffapp/core"
	"fasol.store/staffapp/staff/model"
	"fasol.store/staffapp/web/common"
	"fasol.store/staffapp/web/middlewares"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Store failures are reported with one generic message; the cause stays in
// the server log, not the response.
const msgLoadFailed = "Не удалось загрузить данные"

type Endpoint struct {
	dm        *core.DatabaseManager
	secret    []byte
	secretB64 string
}

// Register wires the staff API onto the engine: a public login, the
// session-protected employee surface, and the manager-only admin surface.
func Register(r *gin.Engine, dm *core.DatabaseManager, base64Secret string) error {
	secret, err := base64.StdEncoding.DecodeString(base64Secret)
	if err != nil {
		return err
	}

	ep := &Endpoint{dm: dm, secret: secret, secretB64: base64Secret}

	r.POST("/api/staff/v1.0/login", ep.Login)
	r.POST("/api/staff/v1.0/logout", ep.Logout)

	protected := r.Group("/api/staff/v1.0")
	protected.Use(middlewares.Authentication(secret))
	{
		protected.GET("/dashboard", ep.Dashboard)
		protected.POST("/shifts/clockin", ep.ClockIn)
		protected.POST("/shifts/clockout", ep.ClockOut)
		protected.GET("/shifts/active", ep.ActiveShift)
		protected.GET("/tasks", ep.ListTasks)
		protected.POST("/tasks/:id/complete", ep.CompleteTask)
		protected.GET("/statistics", ep.Statistics)
	}

	admin := protected.Group("/admin")
	admin.Use(middlewares.RequireRole(model.RoleManager))
	{
		admin.GET("/employees", ep.ListEmployees)
		admin.POST("/employees", ep.CreateEmployee)
		admin.PUT("/employees/:id", ep.UpdateEmployee)
		admin.DELETE("/employees/:id", ep.DeleteEmployee)

		admin.POST("/tasks", ep.CreateTask)
		admin.PUT("/tasks/:id", ep.UpdateTask)
		admin.DELETE("/tasks/:id", ep.DeleteTask)

		admin.GET("/shifts", ep.ListShifts)
		admin.DELETE("/shifts/:id", ep.DeleteShift)

		admin.GET("/completions", ep.ListCompletions)
		admin.POST("/completions/search", ep.SearchCompletions)
		admin.POST("/completions/export", ep.ExportCompletions)
		admin.DELETE("/completions/:id", ep.DeleteCompletion)

		admin.GET("/statistics", ep.AdminStatistics)
	}

	return nil
}

// exec runs fn on a request-scoped store connection. A store failure is
// answered with the generic load-failed message; fn signals handled
// responses by returning nil.
func (ep *Endpoint) exec(c *gin.Context, fn func(db *gorm.DB) error) error {
	err := ep.dm.Exec(c.Request.Context(), fn)
	if err != nil {
		log.Printf("%s %s: %v", c.Request.Method, c.FullPath(), err)
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(msgLoadFailed))
	}
	return err
}
