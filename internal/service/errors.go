package service

import "errors"

var (
	// ErrCheckinNotFound hides both missing check-ins and other users' check-ins
	ErrCheckinNotFound = errors.New("checkin not found")
	// ErrDuplicateCheckin means the user already checked in for that date
	ErrDuplicateCheckin = errors.New("checkin already exists for this date")
	// ErrFutureCheckinDate means the date is more than one day ahead
	ErrFutureCheckinDate = errors.New("checkin date cannot be in the future")
	// ErrAlertNotFound hides both missing alerts and other users' alerts
	ErrAlertNotFound = errors.New("alert not found")
)
