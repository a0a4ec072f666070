package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "canonical", input: "05:00", want: "05:00"},
		{name: "single digit hour", input: "9:30", want: "09:30"},
		{name: "end of day", input: "23:59", want: "23:59"},
		{name: "non numeric", input: "ab:cd", wantErr: true},
		{name: "missing minutes", input: "10", wantErr: true},
		{name: "seconds are not allowed", input: "10:00:00", wantErr: true},
		{name: "hour out of range", input: "24:00", wantErr: true},
		{name: "minute out of range", input: "10:60", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeStringComparisons(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("15:00"))
	assert.False(t, TimeString("15:00").IsBefore("15:00"))
	assert.True(t, TimeString("15:01").IsAfter("15:00"))
	assert.False(t, TimeString("bad").IsAfter("15:00"))
	assert.False(t, TimeString("bad").IsBefore("15:00"))
}
