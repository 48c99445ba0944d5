package core

import (
	"errors"
	"time"

	"fasol.store/staffapp/staff/model"
	"fasol.store/staffapp/utils"
	"gorm.io/gorm"
)

var (
	ErrShiftAlreadyOpen   = errors.New("shift already open")
	ErrNoOpenShift        = errors.New("no open shift")
	ErrOutsideStartWindow = errors.New("outside shift start window")
)

// ActiveShift returns the employee's open shift, or nil if there is none.
func ActiveShift(db *gorm.DB, employeeID uint) (*model.Shift, error) {
	var shift model.Shift
	result := db.Where("employee_id = ? AND end_time IS NULL", employeeID).First(&shift)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		return nil, result.Error
	}
	return &shift, nil
}

// ClockIn opens a new shift for the employee. It fails with
// ErrShiftAlreadyOpen if one is already open, and with ErrOutsideStartWindow
// if now is not between 08:00 and 19:00 inclusive. The check and the insert
// run in one transaction.
func ClockIn(db *gorm.DB, employeeID uint, now time.Time) (*model.Shift, error) {
	if !ShiftStartAllowed(now) {
		return nil, ErrOutsideStartWindow
	}

	shift := model.Shift{
		EmployeeID: employeeID,
		StartTime:  utils.ToMillis(now),
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		open, err := ActiveShift(tx, employeeID)
		if err != nil {
			return err
		}
		if open != nil {
			return ErrShiftAlreadyOpen
		}
		return tx.Create(&shift).Error
	})
	if err != nil {
		return nil, err
	}
	return &shift, nil
}

// ClockOut closes the employee's open shift, setting its end to now.
// Shifts are never closed automatically; one left open past midnight stays
// open until this is called.
func ClockOut(db *gorm.DB, employeeID uint, now time.Time) (*model.Shift, error) {
	var shift *model.Shift
	err := db.Transaction(func(tx *gorm.DB) error {
		open, err := ActiveShift(tx, employeeID)
		if err != nil {
			return err
		}
		if open == nil {
			return ErrNoOpenShift
		}
		open.EndTime = utils.Ptr(utils.ToMillis(now))
		shift = open
		return tx.Save(open).Error
	})
	if err != nil {
		return nil, err
	}
	return shift, nil
}
