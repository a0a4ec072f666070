package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testRate = Rate{FirstHour: 5.0, AdditionalHour: 10.0}

func TestComputeCharge(t *testing.T) {
	start := time.Date(2025, 5, 10, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		elapsed time.Duration
		want    float64
	}{
		{name: "immediately", elapsed: 0, want: 5.0},
		{name: "under a minute", elapsed: 59 * time.Second, want: 5.0},
		{name: "45 minutes", elapsed: 45 * time.Minute, want: 5.0},
		{name: "exactly one hour", elapsed: time.Hour, want: 5.0},
		{name: "one hour and seconds are truncated", elapsed: time.Hour + 30*time.Second, want: 5.0},
		{name: "61 minutes", elapsed: 61 * time.Minute, want: 15.0},
		{name: "90 minutes", elapsed: 90 * time.Minute, want: 15.0},
		{name: "two hours", elapsed: 2 * time.Hour, want: 15.0},
		{name: "five hours and one minute", elapsed: 5*time.Hour + time.Minute, want: 55.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeCharge(start, start.Add(tt.elapsed), testRate)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestComputeChargeUpToOneHourIsFirstHourRate(t *testing.T) {
	start := time.Date(2025, 5, 10, 9, 0, 0, 0, time.UTC)
	for minutes := 0; minutes <= 60; minutes++ {
		got, err := ComputeCharge(start, start.Add(time.Duration(minutes)*time.Minute), testRate)
		require.NoError(t, err)
		assert.Equal(t, testRate.FirstHour, got, "minutes=%d", minutes)
	}
}

func TestComputeChargeRejectsReversedInterval(t *testing.T) {
	start := time.Date(2025, 5, 10, 9, 0, 0, 0, time.UTC)

	_, err := ComputeCharge(start, start.Add(-time.Minute), testRate)

	assert.ErrorIs(t, err, ErrInvalidInterval)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestBillableHours(t *testing.T) {
	assert.EqualValues(t, 1, BillableHours(0))
	assert.EqualValues(t, 1, BillableHours(60))
	assert.EqualValues(t, 2, BillableHours(61))
	assert.EqualValues(t, 3, BillableHours(121))
}
