package handlers

import (
	"fmt"
	"net/http"

	"fasol.store/staffapp/staff/model"
	"fasol.store/staffapp/utils"
	"fasol.store/staffapp/web/common"
	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

type CompletionSearchParams struct {
	StartDate *common.DateOnly `json:"startDate" binding:"required"`
	EndDate   *common.DateOnly `json:"endDate" binding:"required"`
	Employees []uint           `json:"employees"`
}

// SearchCompletions returns completion records within [startDate, endDate],
// optionally narrowed to specific employees.
func (ep *Endpoint) SearchCompletions(c *gin.Context) {
	var params CompletionSearchParams
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	var records []model.CompletedTask
	var total int64
	if err := ep.exec(c, func(db *gorm.DB) error {
		query := completionRangeQuery(db, params)
		if err := query.Model(&model.CompletedTask{}).Count(&total).Error; err != nil {
			return err
		}
		return query.Order("completion_date").Find(&records).Error
	}); err != nil {
		return
	}

	c.JSON(http.StatusOK, common.NewSearchResponse(records, total))
}

// ExportCompletions streams the same range as an XLSX workbook with
// employee and task names resolved.
func (ep *Endpoint) ExportCompletions(c *gin.Context) {
	var params CompletionSearchParams
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	var (
		records       []model.CompletedTask
		employeeNames map[uint]string
		taskNames     map[uint]string
	)
	if err := ep.exec(c, func(db *gorm.DB) error {
		if err := completionRangeQuery(db, params).Order("completion_date").Find(&records).Error; err != nil {
			return err
		}

		var employees []model.Employee
		if err := db.Find(&employees).Error; err != nil {
			return err
		}
		var tasks []model.Task
		if err := db.Find(&tasks).Error; err != nil {
			return err
		}

		employeeNames = make(map[uint]string, len(employees))
		for _, e := range employees {
			employeeNames[e.ID] = e.FullName
		}
		taskNames = make(map[uint]string, len(tasks))
		for _, t := range tasks {
			taskNames[t.ID] = t.Name
		}
		return nil
	}); err != nil {
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Completions"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"ID", "Сотрудник", "Задача", "Дата", "Время"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for row, r := range records {
		employee, ok := employeeNames[r.EmployeeID]
		if !ok {
			employee = fmt.Sprintf("#%d", r.EmployeeID)
		}
		task, ok := taskNames[r.TaskID]
		if !ok {
			task = "Неизвестная задача"
		}
		completedAt := utils.FromMillis(r.CompletionDate)

		values := []interface{}{
			r.ID,
			employee,
			task,
			completedAt.Format("2006-01-02"),
			completedAt.Format("15:04:05"),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	filename := fmt.Sprintf("completions_%s_%s.xlsx",
		params.StartDate.Format("2006-01-02"), params.EndDate.Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if err := f.Write(c.Writer); err != nil {
		c.Status(http.StatusInternalServerError)
	}
}

func completionRangeQuery(db *gorm.DB, params CompletionSearchParams) *gorm.DB {
	start := utils.ToMillis(utils.StartOfDay(params.StartDate.Time))
	end := utils.ToMillis(utils.StartOfDay(params.EndDate.Time).AddDate(0, 0, 1))

	query := db.Where("completion_date >= ? AND completion_date < ?", start, end)
	if len(params.Employees) > 0 {
		query = query.Where("employee_id IN ?", params.Employees)
	}
	return query
}
