package core

import (
	"testing"

	"fasol.store/staffapp/staff/model"
	"github.com/stretchr/testify/assert"
)

func TestPercentage(t *testing.T) {
	tests := []struct {
		name      string
		completed int
		total     int
		expected  int
	}{
		{name: "Zero of zero", completed: 0, total: 0, expected: 0},
		{name: "Zero completed", completed: 0, total: 8, expected: 0},
		{name: "One third truncates down", completed: 1, total: 3, expected: 33},
		{name: "Two thirds truncates down", completed: 2, total: 3, expected: 66},
		{name: "All done", completed: 8, total: 8, expected: 100},
		{name: "Seven of eight", completed: 7, total: 8, expected: 87},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Percentage(tt.completed, tt.total))
		})
	}
}

func TestWeeklyKPI(t *testing.T) {
	tests := []struct {
		name     string
		daily    []int
		expected int
	}{
		{name: "Empty", daily: nil, expected: 0},
		{name: "Constant percentage is preserved", daily: []int{40, 40, 40, 40, 40, 40, 40}, expected: 40},
		{name: "Mean truncates", daily: []int{33, 33, 33, 33, 33, 33, 34}, expected: 33},
		{name: "Mixed week", daily: []int{100, 0, 50, 0, 0, 0, 0}, expected: 21},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, WeeklyKPI(tt.daily))
		})
	}
}

func TestRank(t *testing.T) {
	scores := []EmployeeScore{
		{EmployeeID: 1, FullName: "A", Percentage: 50},
		{EmployeeID: 2, FullName: "B", Percentage: 80},
		{EmployeeID: 3, FullName: "C", Percentage: 80},
	}

	tests := []struct {
		name         string
		employeeID   uint
		wantPosition int
		wantPercent  int
	}{
		{name: "First enumerated wins the tie", employeeID: 2, wantPosition: 1, wantPercent: 80},
		{name: "Second of the tied pair", employeeID: 3, wantPosition: 2, wantPercent: 80},
		{name: "Lower score ranks below both", employeeID: 1, wantPosition: 3, wantPercent: 50},
		{name: "Unknown employee", employeeID: 9, wantPosition: 0, wantPercent: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			position, percentage := Rank(scores, tt.employeeID)
			assert.Equal(t, tt.wantPosition, position)
			assert.Equal(t, tt.wantPercent, percentage)
		})
	}

	t.Run("Input slice is not reordered", func(t *testing.T) {
		Rank(scores, 1)
		assert.Equal(t, uint(1), scores[0].EmployeeID)
	})
}

func TestTopTasks(t *testing.T) {
	names := map[uint]string{1: "Уборка", 2: "Открытие кассы", 3: "Фасовка товара"}

	records := []model.CompletedTask{
		{TaskID: 2}, {TaskID: 1}, {TaskID: 1}, {TaskID: 3}, {TaskID: 3}, {TaskID: 1},
	}

	t.Run("Top two by count", func(t *testing.T) {
		top := TopTasks(records, names, 2)
		assert.Equal(t, []TaskCount{
			{TaskID: 1, Name: "Уборка", Count: 3},
			{TaskID: 3, Name: "Фасовка товара", Count: 2},
		}, top)
	})

	t.Run("Ties keep first-seen order", func(t *testing.T) {
		tied := []model.CompletedTask{{TaskID: 2}, {TaskID: 1}, {TaskID: 2}, {TaskID: 1}}
		top := TopTasks(tied, names, 2)
		assert.Equal(t, uint(2), top[0].TaskID)
		assert.Equal(t, uint(1), top[1].TaskID)
	})

	t.Run("Deleted task falls back to placeholder name", func(t *testing.T) {
		top := TopTasks([]model.CompletedTask{{TaskID: 42}}, names, 2)
		assert.Equal(t, []TaskCount{{TaskID: 42, Name: UnknownTaskName, Count: 1}}, top)
	})

	t.Run("No records", func(t *testing.T) {
		assert.Empty(t, TopTasks(nil, names, 2))
	})
}

func TestShiftHours(t *testing.T) {
	end := func(ms int64) *int64 { return &ms }

	tests := []struct {
		name     string
		shifts   []model.Shift
		expected float64
	}{
		{name: "No shifts", shifts: nil, expected: 0},
		{
			name:     "Single closed shift",
			shifts:   []model.Shift{{StartTime: 0, EndTime: end(2 * 3_600_000)}},
			expected: 2,
		},
		{
			name: "Open shift contributes nothing",
			shifts: []model.Shift{
				{StartTime: 0, EndTime: end(90 * 60 * 1000)},
				{StartTime: 0, EndTime: nil},
			},
			expected: 1.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, ShiftHours(tt.shifts), 1e-9)
		})
	}
}
