package domain

import (
	"fmt"
	"math"
	"time"
)

// ErrInvalidInterval is returned when a charge is requested for an end before its start
var ErrInvalidInterval = fmt.Errorf("%w: end time is before start time", ErrInvalidInput)

// ComputeCharge prices a session from start to end.
// Elapsed time is counted in whole minutes, rounded up to whole hours with a
// minimum of one: the first hour costs rate.FirstHour, each further hour rate.AdditionalHour.
func ComputeCharge(start, end time.Time, rate Rate) (float64, error) {
	if end.Before(start) {
		return 0, ErrInvalidInterval
	}

	elapsedMinutes := int64(end.Sub(start) / time.Minute)
	billableHours := BillableHours(elapsedMinutes)

	if billableHours <= 1 {
		return rate.FirstHour, nil
	}

	return rate.FirstHour + float64(billableHours-1)*rate.AdditionalHour, nil
}

// BillableHours rounds elapsed minutes up to whole hours, never below one
func BillableHours(elapsedMinutes int64) int64 {
	hours := int64(math.Ceil(float64(elapsedMinutes) / 60.0))
	if hours < 1 {
		return 1
	}
	return hours
}
