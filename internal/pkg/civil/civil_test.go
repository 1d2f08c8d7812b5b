package civil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "valid date",
			input: "2025-06-01",
			want:  time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "wrong separator",
			input:   "2025/06/01",
			wantErr: true,
		},
		{
			name:    "day-first format",
			input:   "01-06-2025",
			wantErr: true,
		},
		{
			name:    "impossible day",
			input:   "2025-02-30",
			wantErr: true,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatDateRoundTrip(t *testing.T) {
	d, err := ParseDate("2025-12-31")
	require.NoError(t, err)
	assert.Equal(t, "2025-12-31", FormatDate(d))
}

func TestZoneClockToday(t *testing.T) {
	loc, err := time.LoadLocation("Pacific/Auckland")
	require.NoError(t, err)

	// 11:30 UTC on June 1st is already June 2nd in Auckland (UTC+12).
	clock := &zoneClock{
		loc: loc,
		now: func() time.Time { return time.Date(2025, 6, 1, 11, 30, 0, 0, time.UTC) },
	}

	assert.Equal(t, time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), clock.Today())
}

func TestNewClockFallsBackToUTC(t *testing.T) {
	clock := NewClock("Not/AZone", "AlsoNot/AZone")
	zc, ok := clock.(*zoneClock)
	require.True(t, ok)
	assert.Equal(t, time.UTC, zc.loc)
}

func TestNewClockPrefersFirstResolvableZone(t *testing.T) {
	clock := NewClock("Not/AZone", "Pacific/Auckland")
	zc, ok := clock.(*zoneClock)
	require.True(t, ok)
	assert.Equal(t, "Pacific/Auckland", zc.loc.String())
}

func TestFixedClock(t *testing.T) {
	d := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, d, FixedClock{Date: d}.Today())
}
