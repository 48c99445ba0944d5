package core

import (
	"testing"
	"time"

	"fasol.store/staffapp/staff/model"
	"github.com/stretchr/testify/assert"
)

func at(hour, minute int) time.Time {
	return time.Date(2025, 10, 14, hour, minute, 0, 0, time.UTC)
}

func TestShiftStartAllowed(t *testing.T) {
	tests := []struct {
		name     string
		now      time.Time
		expected bool
	}{
		{name: "One minute before opening", now: at(7, 59), expected: false},
		{name: "Opening boundary", now: at(8, 0), expected: true},
		{name: "Midday", now: at(13, 30), expected: true},
		{name: "Closing boundary", now: at(19, 0), expected: true},
		{name: "One minute after closing", now: at(19, 1), expected: false},
		{name: "Midnight", now: at(0, 0), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ShiftStartAllowed(tt.now))
		})
	}
}

func TestParseTimeOnDate(t *testing.T) {
	base := time.Date(2025, 10, 14, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		input    string
		expected time.Time
		wantErr  bool
	}{
		{name: "Two-digit hour", input: "21:30", expected: at(21, 30)},
		{name: "Single-digit hour", input: "8:00", expected: at(8, 0)},
		{name: "Midnight", input: "00:00", expected: at(0, 0)},
		{name: "Garbage", input: "not a time", wantErr: true},
		{name: "Empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimeOnDate(base, tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestTaskWindowOpen(t *testing.T) {
	cleaning := model.Task{Name: "Уборка", StartTime: "20:30", EndTime: "22:00"}
	overnight := model.Task{Name: "Ночная приёмка", StartTime: "22:00", EndTime: "02:00"}
	malformed := model.Task{Name: "Сломанное окно", StartTime: "25:99", EndTime: "xx"}

	tests := []struct {
		name     string
		task     model.Task
		now      time.Time
		expected bool
	}{
		{name: "Inside evening window", task: cleaning, now: at(21, 0), expected: true},
		{name: "Start boundary", task: cleaning, now: at(20, 30), expected: true},
		{name: "End boundary", task: cleaning, now: at(22, 0), expected: true},
		{name: "After evening window", task: cleaning, now: at(23, 0), expected: false},
		{name: "Before evening window", task: cleaning, now: at(12, 0), expected: false},
		{name: "Overnight window before midnight", task: overnight, now: at(23, 30), expected: true},
		{name: "Overnight window end rolls to next day", task: overnight, now: time.Date(2025, 10, 15, 1, 30, 0, 0, time.UTC), expected: false},
		{name: "Overnight window before start", task: overnight, now: at(12, 0), expected: false},
		{name: "Malformed window is never open", task: malformed, now: at(21, 0), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TaskWindowOpen(tt.task, tt.now))
		})
	}
}

func TestTaskStarted(t *testing.T) {
	task := model.Task{Name: "Выкладка сигарет", StartTime: "11:00", EndTime: "16:00"}

	tests := []struct {
		name     string
		task     model.Task
		now      time.Time
		expected bool
	}{
		{name: "Before start", task: task, now: at(10, 59), expected: false},
		{name: "At start", task: task, now: at(11, 0), expected: true},
		{name: "After end still counts as started", task: task, now: at(18, 0), expected: true},
		{name: "Malformed start", task: model.Task{StartTime: "??"}, now: at(12, 0), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TaskStarted(tt.task, tt.now))
		})
	}
}
