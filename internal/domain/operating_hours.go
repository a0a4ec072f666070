package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ParkingService/pkg/types"
)

var (
	// ErrInvalidFormat is returned when operating hours are not HH:MM
	ErrInvalidFormat = fmt.Errorf("%w: operating hours must be in HH:MM format", ErrInvalidInput)

	// ErrStartAfterEnd is returned when the opening time is later than the closing time
	ErrStartAfterEnd = fmt.Errorf("%w: start time is greater than end time", ErrInvalidInput)
)

// ValidateOperatingHours parses both bounds and returns the normalized window
func ValidateOperatingHours(start, end string) (OperatingHours, error) {
	startTime, err := types.NewTimeStringFromString(start)
	if err != nil {
		return OperatingHours{}, fmt.Errorf("%w: start %q", ErrInvalidFormat, start)
	}

	endTime, err := types.NewTimeStringFromString(end)
	if err != nil {
		return OperatingHours{}, fmt.Errorf("%w: end %q", ErrInvalidFormat, end)
	}

	if startTime.IsAfter(endTime) {
		return OperatingHours{}, ErrStartAfterEnd
	}

	return OperatingHours{Start: startTime, End: endTime}, nil
}

// IsClosedAt reports whether now (already in the meter's time zone) is past the closing instant,
// seconds included: with End "15:00", 15:00:00 is open and 15:00:01 is closed.
// Only the closing bound is checked; arriving before opening time is allowed.
func (h OperatingHours) IsClosedAt(now time.Time) bool {
	minutes, err := h.End.Minutes()
	if err != nil {
		return false
	}
	y, m, d := now.Date()
	closing := time.Date(y, m, d, minutes/60, minutes%60, 0, 0, now.Location())
	return now.After(closing)
}
