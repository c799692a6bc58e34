package types

import (
	"testing"
	"time"

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
		{name: "canonical", input: "09:30", want: "09:30"},
		{name: "single digit hour is normalized", input: "9:00", want: "09:00"},
		{name: "end of day", input: "23:59", want: "23:59"},
		{name: "hour overflow", input: "24:00", wantErr: true},
		{name: "garbage", input: "nine", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_Arithmetic(t *testing.T) {
	start := TimeString("09:00")

	next, err := start.AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("09:30"), next)
	assert.True(t, start.IsBefore(next))
	assert.True(t, next.IsAfter(start))
	assert.False(t, start.IsBefore(start))

	_, err = TimeString("23:45").AddMinutes(30)
	assert.ErrorIs(t, err, ErrTimeOutOfRange)

	_, err = TimeString("bad").AddMinutes(30)
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_Minutes(t *testing.T) {
	assert.Equal(t, 0, TimeString("00:00").Minutes())
	assert.Equal(t, 9*60+45, TimeString("09:45").Minutes())
	assert.Equal(t, -1, TimeString("").Minutes())
	assert.False(t, TimeString("25:00").IsValid())
}

func TestFromMinutes(t *testing.T) {
	got, err := FromMinutes(9*60 + 5)
	require.NoError(t, err)
	assert.Equal(t, TimeString("09:05"), got)

	_, err = FromMinutes(24 * 60)
	assert.ErrorIs(t, err, ErrTimeOutOfRange)
	_, err = FromMinutes(-1)
	assert.ErrorIs(t, err, ErrTimeOutOfRange)
}

func TestDateString(t *testing.T) {
	d, err := NewDateStringFromString("2026-10-15")
	require.NoError(t, err)
	assert.Equal(t, DateString("2026-10-15"), d)

	_, err = NewDateStringFromString("15.10.2026")
	assert.ErrorIs(t, err, ErrInvalidDateString)

	assert.Equal(t, DateString("2026-01-02"), NewDateString(time.Date(2026, 1, 2, 23, 0, 0, 0, time.UTC)))
	assert.False(t, DateString("2026-13-01").IsValid())
}
