package core

import (
	"sort"
	"time"

	"fasol.store/staffapp/staff/model"
	"fasol.store/staffapp/utils"
	"gorm.io/gorm"
)

type DailyStats struct {
	Completed  int `json:"completed"`
	Total      int `json:"total"`
	Percentage int `json:"percentage"`
}

type ShiftStatus struct {
	Active  bool  `json:"active"`
	Hours   int64 `json:"hours"`
	Minutes int64 `json:"minutes"`
}

type RankingStats struct {
	Position   int `json:"position"`
	Total      int `json:"total"`
	Percentage int `json:"percentage"`
}

// Summary is the per-employee statistics screen: today's completion rate,
// the running shift duration, the trailing-week KPI, today's ranking among
// all employees, and the most frequently completed tasks of the week.
type Summary struct {
	Today         DailyStats  `json:"today"`
	CurrentShift  ShiftStatus `json:"currentShift"`
	WeeklyKPI     int         `json:"weeklyKpi"`
	Ranking       RankingStats `json:"ranking"`
	FrequentTasks []TaskCount `json:"frequentTasks"`
}

func BuildSummary(db *gorm.DB, employeeID uint, now time.Time) (*Summary, error) {
	var tasks []model.Task
	if err := db.Find(&tasks).Error; err != nil {
		return nil, err
	}

	today, err := dailyStats(db, employeeID, now, len(tasks))
	if err != nil {
		return nil, err
	}

	shiftStatus, err := currentShiftStatus(db, employeeID, now)
	if err != nil {
		return nil, err
	}

	kpi, err := weeklyKPI(db, employeeID, now, len(tasks))
	if err != nil {
		return nil, err
	}

	ranking, err := todayRanking(db, employeeID, now, len(tasks))
	if err != nil {
		return nil, err
	}

	frequent, err := frequentTasks(db, employeeID, now, tasks)
	if err != nil {
		return nil, err
	}

	return &Summary{
		Today:         today,
		CurrentShift:  shiftStatus,
		WeeklyKPI:     kpi,
		Ranking:       ranking,
		FrequentTasks: frequent,
	}, nil
}

func dailyStats(db *gorm.DB, employeeID uint, now time.Time, totalTasks int) (DailyStats, error) {
	start, end := utils.DayRange(now)
	completed, err := CountCompletions(db, employeeID, start, end)
	if err != nil {
		return DailyStats{}, err
	}
	return DailyStats{
		Completed:  completed,
		Total:      totalTasks,
		Percentage: Percentage(completed, totalTasks),
	}, nil
}

func currentShiftStatus(db *gorm.DB, employeeID uint, now time.Time) (ShiftStatus, error) {
	shift, err := ActiveShift(db, employeeID)
	if err != nil {
		return ShiftStatus{}, err
	}
	if shift == nil {
		return ShiftStatus{}, nil
	}

	elapsed := utils.ToMillis(now) - shift.StartTime
	return ShiftStatus{
		Active:  true,
		Hours:   elapsed / (1000 * 60 * 60),
		Minutes: (elapsed / (1000 * 60)) % 60,
	}, nil
}

// weeklyKPI averages the daily completion percentage over today and the six
// preceding calendar days.
func weeklyKPI(db *gorm.DB, employeeID uint, now time.Time, totalTasks int) (int, error) {
	if totalTasks == 0 {
		return 0, nil
	}

	daily := make([]int, 0, 7)
	for offset := 0; offset < 7; offset++ {
		day := now.AddDate(0, 0, -offset)
		start, end := utils.DayRange(day)
		completed, err := CountCompletions(db, employeeID, start, end)
		if err != nil {
			return 0, err
		}
		daily = append(daily, Percentage(completed, totalTasks))
	}
	return WeeklyKPI(daily), nil
}

func todayRanking(db *gorm.DB, employeeID uint, now time.Time, totalTasks int) (RankingStats, error) {
	if totalTasks == 0 {
		return RankingStats{Position: 1, Total: 1, Percentage: 0}, nil
	}

	var employees []model.Employee
	if err := db.Find(&employees).Error; err != nil {
		return RankingStats{}, err
	}

	start, end := utils.DayRange(now)
	scores := make([]EmployeeScore, 0, len(employees))
	for _, emp := range employees {
		completed, err := CountCompletions(db, emp.ID, start, end)
		if err != nil {
			return RankingStats{}, err
		}
		scores = append(scores, EmployeeScore{
			EmployeeID: emp.ID,
			FullName:   emp.FullName,
			Percentage: Percentage(completed, totalTasks),
		})
	}

	position, percentage := Rank(scores, employeeID)
	return RankingStats{
		Position:   position,
		Total:      len(employees),
		Percentage: percentage,
	}, nil
}

func frequentTasks(db *gorm.DB, employeeID uint, now time.Time, tasks []model.Task) ([]TaskCount, error) {
	weekAgo := utils.ToMillis(utils.StartOfDay(now).AddDate(0, 0, -7))

	var records []model.CompletedTask
	if err := db.Where("employee_id = ? AND completion_date >= ?", employeeID, weekAgo).
		Order("id").
		Find(&records).Error; err != nil {
		return nil, err
	}

	names := make(map[uint]string, len(tasks))
	for _, t := range tasks {
		names[t.ID] = t.Name
	}

	return TopTasks(records, names, 2), nil
}

type EmployeeActivity struct {
	EmployeeID uint   `json:"employeeId"`
	FullName   string `json:"fullName"`
	Count      int    `json:"count"`
}

// TopEmployeesByMonth ranks employees by completion count over the trailing
// month, ending at the start of today.
func TopEmployeesByMonth(db *gorm.DB, now time.Time, n int) ([]EmployeeActivity, error) {
	endOfWindow := utils.ToMillis(utils.StartOfDay(now))
	startOfWindow := utils.ToMillis(utils.StartOfDay(now).AddDate(0, -1, 0))

	var employees []model.Employee
	if err := db.Find(&employees).Error; err != nil {
		return nil, err
	}

	activity := make([]EmployeeActivity, 0, len(employees))
	for _, emp := range employees {
		count, err := CountCompletions(db, emp.ID, startOfWindow, endOfWindow)
		if err != nil {
			return nil, err
		}
		activity = append(activity, EmployeeActivity{EmployeeID: emp.ID, FullName: emp.FullName, Count: count})
	}

	return topActivity(activity, n), nil
}

// TopEmployeesByOpenShift ranks employees by completions made during their
// currently open shifts.
func TopEmployeesByOpenShift(db *gorm.DB, now time.Time, n int) ([]EmployeeActivity, error) {
	var employees []model.Employee
	if err := db.Find(&employees).Error; err != nil {
		return nil, err
	}

	var openShifts []model.Shift
	if err := db.Where("end_time IS NULL").Find(&openShifts).Error; err != nil {
		return nil, err
	}
	shiftsByEmployee := utils.GroupBy(openShifts, func(s model.Shift) uint { return s.EmployeeID })

	nowMillis := utils.ToMillis(now)
	activity := make([]EmployeeActivity, 0, len(employees))
	for _, emp := range employees {
		total := 0
		for _, shift := range shiftsByEmployee[emp.ID] {
			count, err := CountCompletions(db, emp.ID, shift.StartTime, nowMillis)
			if err != nil {
				return nil, err
			}
			total += count
		}
		activity = append(activity, EmployeeActivity{EmployeeID: emp.ID, FullName: emp.FullName, Count: total})
	}

	return topActivity(activity, n), nil
}

type EmployeeShiftHours struct {
	EmployeeID uint    `json:"employeeId"`
	FullName   string  `json:"fullName"`
	Hours      float64 `json:"hours"`
}

// MonthlyShiftHours sums each employee's closed-shift hours over the
// trailing month, ending at the start of today.
func MonthlyShiftHours(db *gorm.DB, now time.Time) ([]EmployeeShiftHours, error) {
	endOfWindow := utils.ToMillis(utils.StartOfDay(now))
	startOfWindow := utils.ToMillis(utils.StartOfDay(now).AddDate(0, -1, 0))

	var employees []model.Employee
	if err := db.Find(&employees).Error; err != nil {
		return nil, err
	}

	var shifts []model.Shift
	if err := db.Where("start_time >= ? AND start_time < ? AND end_time IS NOT NULL",
		startOfWindow, endOfWindow).
		Find(&shifts).Error; err != nil {
		return nil, err
	}
	shiftsByEmployee := utils.GroupBy(shifts, func(s model.Shift) uint { return s.EmployeeID })

	hours := make([]EmployeeShiftHours, 0, len(employees))
	for _, emp := range employees {
		hours = append(hours, EmployeeShiftHours{
			EmployeeID: emp.ID,
			FullName:   emp.FullName,
			Hours:      ShiftHours(shiftsByEmployee[emp.ID]),
		})
	}
	return hours, nil
}

func topActivity(activity []EmployeeActivity, n int) []EmployeeActivity {
	sort.SliceStable(activity, func(i, j int) bool {
		return activity[i].Count > activity[j].Count
	})
	if len(activity) > n {
		activity = activity[:n]
	}
	return activity
}
