package core

import (
	"time"

	"fasol.store/staffapp/staff/model"
	"fasol.store/staffapp/utils"
)

// Shifts may only be started between 08:00 and 19:00 wall-clock, both ends
// inclusive.
const (
	ShiftStartOpens  = 8 * 60
	ShiftStartCloses = 19 * 60
)

// ShiftStartAllowed reports whether a shift may be started at now.
func ShiftStartAllowed(now time.Time) bool {
	minutes := utils.MinutesOfDay(now)
	return minutes >= ShiftStartOpens && minutes <= ShiftStartCloses
}

// ParseTimeOnDate combines a base date with a wall-clock string ("08:00").
// Single-digit hours ("8:00") are accepted; the seeded catalog uses them.
func ParseTimeOnDate(baseDate time.Time, timeStr string) (time.Time, error) {
	t, err := time.Parse("15:04", timeStr)
	if err != nil {
		t, err = time.Parse("3:04", timeStr)
	}
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(baseDate.Year(), baseDate.Month(), baseDate.Day(), t.Hour(), t.Minute(), 0, 0, baseDate.Location()), nil
}

// TaskWindowOpen reports whether now lies inside the task's daily window,
// both ends inclusive. The window is anchored to now's calendar date; an end
// time numerically before the start time means the window crosses midnight
// and the end rolls over to the next day. A malformed window is never open.
func TaskWindowOpen(task model.Task, now time.Time) bool {
	dateBase := utils.StartOfDay(now)

	start, err := ParseTimeOnDate(dateBase, task.StartTime)
	if err != nil {
		return false
	}
	end, err := ParseTimeOnDate(dateBase, task.EndTime)
	if err != nil {
		return false
	}

	if end.Before(start) {
		end = end.AddDate(0, 0, 1)
	}

	return !now.Before(start) && !now.After(end)
}

// TaskStarted reports whether the task's start time has been reached today.
// Marking a task complete only requires the window to have opened, not that
// it is still open. A malformed start time means not started.
func TaskStarted(task model.Task, now time.Time) bool {
	start, err := ParseTimeOnDate(utils.StartOfDay(now), task.StartTime)
	if err != nil {
		return false
	}
	return !now.Before(start)
}
