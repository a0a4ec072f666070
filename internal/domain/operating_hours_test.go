package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/pkg/types"
)

func TestValidateOperatingHours(t *testing.T) {
	hours, err := ValidateOperatingHours("5:00", "15:00")
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("05:00"), hours.Start)
	assert.Equal(t, types.TimeString("15:00"), hours.End)

	_, err = ValidateOperatingHours("08:00", "08:00")
	assert.NoError(t, err)
}

func TestValidateOperatingHoursErrors(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  error
	}{
		{name: "non numeric", start: "aa:00", end: "15:00", want: ErrInvalidFormat},
		{name: "wrong arity", start: "08", end: "15:00", want: ErrInvalidFormat},
		{name: "bad end", start: "08:00", end: "15:00:00", want: ErrInvalidFormat},
		{name: "start after end", start: "16:00", end: "15:00", want: ErrStartAfterEnd},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateOperatingHours(tt.start, tt.end)
			assert.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestOperatingHoursIsClosedAt(t *testing.T) {
	hours := OperatingHours{Start: "05:00", End: "15:00"}
	day := time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC)

	assert.False(t, hours.IsClosedAt(day.Add(9*time.Hour)))
	assert.False(t, hours.IsClosedAt(day.Add(15*time.Hour)), "15:00:00 itself is still open")
	assert.True(t, hours.IsClosedAt(day.Add(15*time.Hour+time.Second)))
	assert.True(t, hours.IsClosedAt(day.Add(15*time.Hour+59*time.Second)))
	assert.True(t, hours.IsClosedAt(day.Add(15*time.Hour+time.Minute)))
	// opening bound is not enforced
	assert.False(t, hours.IsClosedAt(day.Add(4*time.Hour)))
}
