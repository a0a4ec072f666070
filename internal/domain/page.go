package domain

import (
	"fmt"
	"time"
)

// ErrInvalidRange is returned when a date range begins after it ends
var ErrInvalidRange = fmt.Errorf("%w: start date is after end date", ErrInvalidInput)

// Page is an offset/limit window over an ordered result
type Page struct {
	Number int // from 0
	Size   int
}

// NewPage clamps the size to [1, MaxPageSize] and the number to >= 0
func NewPage(number, size int) Page {
	if number < 0 {
		number = 0
	}
	if size <= 0 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	return Page{Number: number, Size: size}
}

// Offset returns the number of items to skip
func (p Page) Offset() int {
	return p.Number * p.Size
}

// Paginate slices an in-memory result. Out-of-range pages are empty.
func Paginate[T any](items []T, p Page) []T {
	from := p.Offset()
	if from >= len(items) {
		return []T{}
	}
	to := from + p.Size
	if to > len(items) {
		to = len(items)
	}
	return items[from:to]
}

// DayStart truncates t to midnight in its location
func DayStart(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// DateRange converts inclusive calendar days [begin, end] into the half-open
// instant window [begin 00:00, end+1 00:00)
func DateRange(begin, end time.Time) (time.Time, time.Time) {
	return DayStart(begin), DayStart(end).AddDate(0, 0, 1)
}

// CalendarDay returns midnight of t's calendar date in loc, keeping the date as written
func CalendarDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// ResolveDateRange validates inclusive calendar days [begin, end] and returns the
// half-open window in loc. A nil end means the day of now.
func ResolveDateRange(begin time.Time, end *time.Time, now time.Time, loc *time.Location) (time.Time, time.Time, error) {
	from := CalendarDay(begin, loc)

	to := DayStart(now.In(loc))
	if end != nil {
		to = CalendarDay(*end, loc)
	}

	if from.After(to) {
		return time.Time{}, time.Time{}, ErrInvalidRange
	}

	from, to = DateRange(from, to)
	return from, to, nil
}
