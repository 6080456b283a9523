package attendance

import "errors"

// Attendance domain errors
var (
	// Clock errors
	ErrAlreadyClockedIn  = errors.New("you have already clocked in today")
	ErrNotClockedIn      = errors.New("you have not clocked in yet")
	ErrAlreadyClockedOut = errors.New("you have already clocked out")

	// General errors
	ErrSessionNotFound = errors.New("attendance session not found")
	ErrUnauthorized    = errors.New("unauthorized to access this attendance session")
)
