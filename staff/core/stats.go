package core

import (
	"sort"

	"fasol.store/staffapp/staff/model"
)

// Percentage is the completion rate as a whole number, using truncating
// integer division so 1 of 3 reads 33, never 34. A zero total reads 0.
func Percentage(completed, total int) int {
	if total <= 0 {
		return 0
	}
	return completed * 100 / total
}

// WeeklyKPI is the truncating mean of the per-day percentages. Seven equal
// days of P yield exactly P.
func WeeklyKPI(dailyPercentages []int) int {
	if len(dailyPercentages) == 0 {
		return 0
	}
	total := 0
	for _, p := range dailyPercentages {
		total += p
	}
	return total / len(dailyPercentages)
}

type EmployeeScore struct {
	EmployeeID uint
	FullName   string
	Percentage int
}

// Rank sorts scores descending by percentage and returns the 1-based
// position and percentage of the given employee. The sort is stable, so
// tied employees keep their enumeration order: first enumerated wins.
// An employee absent from scores ranks 0 with percentage 0.
func Rank(scores []EmployeeScore, employeeID uint) (int, int) {
	ranked := make([]EmployeeScore, len(scores))
	copy(ranked, scores)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Percentage > ranked[j].Percentage
	})

	for i, s := range ranked {
		if s.EmployeeID == employeeID {
			return i + 1, s.Percentage
		}
	}
	return 0, 0
}

type TaskCount struct {
	TaskID uint   `json:"taskId"`
	Name   string `json:"name"`
	Count  int    `json:"count"`
}

// UnknownTaskName labels counts whose task row no longer exists (the store
// does not cascade task deletion into completion records).
const UnknownTaskName = "Неизвестная задача"

// TopTasks counts completion records per task and returns the n most
// frequent, ties kept in first-seen record order.
func TopTasks(records []model.CompletedTask, names map[uint]string, n int) []TaskCount {
	counts := make(map[uint]int)
	var order []uint
	for _, r := range records {
		if _, seen := counts[r.TaskID]; !seen {
			order = append(order, r.TaskID)
		}
		counts[r.TaskID]++
	}

	result := make([]TaskCount, 0, len(order))
	for _, taskID := range order {
		name, ok := names[taskID]
		if !ok {
			name = UnknownTaskName
		}
		result = append(result, TaskCount{TaskID: taskID, Name: name, Count: counts[taskID]})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Count > result[j].Count
	})

	if len(result) > n {
		result = result[:n]
	}
	return result
}

// ShiftHours sums the durations of closed shifts as fractional hours.
// Open shifts contribute nothing.
func ShiftHours(shifts []model.Shift) float64 {
	var totalMillis int64
	for i := range shifts {
		totalMillis += shifts[i].DurationMillis()
	}
	return float64(totalMillis) / 3_600_000
}
