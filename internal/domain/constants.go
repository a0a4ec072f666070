package domain

import "time"

// GracePeriod is how long after start a ticket can still be cancelled
const GracePeriod = 5 * time.Minute

// Pagination defaults
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Time format constants
const (
	TimeFormat       = "15:04"      // HH:MM
	DateFormat       = "2006-01-02" // YYYY-MM-DD
	HourBucketFormat = "2006-01-02 15"
)
