package handlers

import (
	"errors"
	"net/http"
	"strconv"

	staff "fasol.store/staffapp/staff/core"
	"fasol.store/staffapp/staff/model"
	"fasol.store/staffapp/web/common"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("Invalid id"))
		return 0, false
	}
	return uint(id), true
}

type EmployeeDTO struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password"`
	FullName string `json:"fullName" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

func validRole(role string) bool {
	return role == model.RoleCashier || role == model.RoleManager
}

func (ep *Endpoint) ListEmployees(c *gin.Context) {
	var employees []model.Employee
	if err := ep.exec(c, func(db *gorm.DB) error {
		return db.Order("id").Find(&employees).Error
	}); err != nil {
		return
	}
	c.JSON(http.StatusOK, common.NewSuccessResponse(employees))
}

func (ep *Endpoint) CreateEmployee(c *gin.Context) {
	var body EmployeeDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}
	if body.Password == "" {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("Field 'password' is required"))
		return
	}
	if !validRole(body.Role) {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("Некорректная роль"))
		return
	}

	hash, err := staff.HashPassword(body.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(msgLoadFailed))
		return
	}

	emp := model.Employee{
		Login:        body.Login,
		PasswordHash: hash,
		FullName:     body.FullName,
		Role:         body.Role,
	}
	if err := ep.exec(c, func(db *gorm.DB) error {
		if err := db.Create(&emp).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				c.JSON(http.StatusConflict, common.NewErrorResponse("Логин уже занят"))
				return nil
			}
			return err
		}
		c.JSON(http.StatusOK, common.NewSuccessResponse(emp))
		return nil
	}); err != nil {
		return
	}
}

func (ep *Endpoint) UpdateEmployee(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var body EmployeeDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}
	if !validRole(body.Role) {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("Некорректная роль"))
		return
	}

	if err := ep.exec(c, func(db *gorm.DB) error {
		var emp model.Employee
		if err := db.First(&emp, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, common.NewErrorResponse("Сотрудник не найден"))
				return nil
			}
			return err
		}

		emp.Login = body.Login
		emp.FullName = body.FullName
		emp.Role = body.Role
		if body.Password != "" {
			hash, err := staff.HashPassword(body.Password)
			if err != nil {
				return err
			}
			emp.PasswordHash = hash
		}

		if err := db.Save(&emp).Error; err != nil {
			return err
		}
		c.JSON(http.StatusOK, common.NewSuccessResponse(emp))
		return nil
	}); err != nil {
		return
	}
}

// DeleteEmployee removes the employee row. Shifts and completion records
// referencing the id are left in place, mirroring the store's lack of
// cascade deletes.
func (ep *Endpoint) DeleteEmployee(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	ep.deleteByID(c, &model.Employee{}, id)
}

type TaskDTO struct {
	Name      string `json:"name" binding:"required"`
	StartTime string `json:"startTime" binding:"required"`
	EndTime   string `json:"endTime" binding:"required"`
}

func (ep *Endpoint) CreateTask(c *gin.Context) {
	var body TaskDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	task := model.Task{Name: body.Name, StartTime: body.StartTime, EndTime: body.EndTime}
	if err := ep.exec(c, func(db *gorm.DB) error {
		return db.Create(&task).Error
	}); err != nil {
		return
	}
	c.JSON(http.StatusOK, common.NewSuccessResponse(task))
}

func (ep *Endpoint) UpdateTask(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var body TaskDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	if err := ep.exec(c, func(db *gorm.DB) error {
		var task model.Task
		if err := db.First(&task, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, common.NewErrorResponse("Задача не найдена"))
				return nil
			}
			return err
		}

		task.Name = body.Name
		task.StartTime = body.StartTime
		task.EndTime = body.EndTime
		if err := db.Save(&task).Error; err != nil {
			return err
		}
		c.JSON(http.StatusOK, common.NewSuccessResponse(task))
		return nil
	}); err != nil {
		return
	}
}

func (ep *Endpoint) DeleteTask(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	ep.deleteByID(c, &model.Task{}, id)
}

func (ep *Endpoint) ListShifts(c *gin.Context) {
	var shifts []model.Shift
	var total int64
	if err := ep.exec(c, func(db *gorm.DB) error {
		if err := db.Model(&model.Shift{}).Count(&total).Error; err != nil {
			return err
		}
		return db.Order("start_time DESC").Find(&shifts).Error
	}); err != nil {
		return
	}
	c.JSON(http.StatusOK, common.NewSearchResponse(shifts, total))
}

func (ep *Endpoint) DeleteShift(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	ep.deleteByID(c, &model.Shift{}, id)
}

func (ep *Endpoint) ListCompletions(c *gin.Context) {
	var records []model.CompletedTask
	var total int64
	if err := ep.exec(c, func(db *gorm.DB) error {
		if err := db.Model(&model.CompletedTask{}).Count(&total).Error; err != nil {
			return err
		}
		return db.Order("completion_date DESC").Find(&records).Error
	}); err != nil {
		return
	}
	c.JSON(http.StatusOK, common.NewSearchResponse(records, total))
}

func (ep *Endpoint) DeleteCompletion(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	ep.deleteByID(c, &model.CompletedTask{}, id)
}

func (ep *Endpoint) deleteByID(c *gin.Context, target interface{}, id uint) {
	if err := ep.exec(c, func(db *gorm.DB) error {
		result := db.Delete(target, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, common.NewErrorResponse("Запись не найдена"))
			return nil
		}
		c.JSON(http.StatusOK, common.NewSuccessResponse(gin.H{}))
		return nil
	}); err != nil {
		return
	}
}
