package timewindow

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedNow(value string) func() time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return t }
}

func TestOffsetMinutes(t *testing.T) {
	tests := []struct {
		offset string
		want   int
	}{
		{"+07:00", 420},
		{"+0700", 420},
		{"-03:30", -210},
		{"+00:00", 0},
		{"garbage", 0},
		{"", 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, OffsetMinutes(tt.offset), "offset %q", tt.offset)
	}
}

func TestIsValidDateString(t *testing.T) {
	assert.True(t, IsValidDateString("2026-01-07"))
	assert.True(t, IsValidDateString("2024-02-29"))

	assert.False(t, IsValidDateString("2026-1-7"))
	assert.False(t, IsValidDateString("2026-02-30"))
	assert.False(t, IsValidDateString("2026-13-01"))
	assert.False(t, IsValidDateString("07-01-2026"))
	assert.False(t, IsValidDateString(""))
}

func TestDayWindow(t *testing.T) {
	r := NewResolver("+07:00")

	win, err := r.DayWindow("2026-01-07")
	require.NoError(t, err)

	// Local midnight in Jakarta is 17:00 UTC of the previous day.
	assert.Equal(t, "2026-01-06T17:00:00Z", win.Start.Format(time.RFC3339))
	assert.Equal(t, "2026-01-07T16:59:59.999Z", win.End.UTC().Format("2006-01-02T15:04:05.999Z"))
}

func TestDayWindowUTC(t *testing.T) {
	r := NewResolver("+00:00")

	win, err := r.DayWindow("2026-01-07")
	require.NoError(t, err)

	assert.Equal(t, "2026-01-07T00:00:00Z", win.Start.Format(time.RFC3339))
	assert.Equal(t, time.Date(2026, 1, 7, 23, 59, 59, int(999*time.Millisecond), time.UTC), win.End)
}

func TestDayWindowInvalidDate(t *testing.T) {
	r := NewResolver("+07:00")

	_, err := r.DayWindow("not-a-date")
	assert.Error(t, err)

	_, err = r.DayWindow("2026-02-30")
	assert.Error(t, err)
}

func TestRangeWindowInclusive(t *testing.T) {
	r := NewResolver("+07:00")

	win, err := r.RangeWindow("2026-01-01", "2026-01-07")
	require.NoError(t, err)

	assert.Equal(t, "2025-12-31T17:00:00Z", win.Start.Format(time.RFC3339))
	assert.Equal(t, time.Date(2026, 1, 7, 16, 59, 59, int(999*time.Millisecond), time.UTC), win.End)

	_, err = r.RangeWindow("2026-01-07", "2026-01-01")
	assert.Error(t, err)
}

func TestWeekRangeForDate(t *testing.T) {
	tests := []struct {
		date string
		from string
		to   string
	}{
		{"2026-01-07", "2026-01-05", "2026-01-11"}, // Wednesday
		{"2026-01-05", "2026-01-05", "2026-01-11"}, // Monday
		{"2026-01-11", "2026-01-05", "2026-01-11"}, // Sunday stays in the ending week
		{"2026-01-01", "2025-12-29", "2026-01-04"}, // crosses the year boundary
	}

	for _, tt := range tests {
		got, err := WeekRangeForDate(tt.date)
		require.NoError(t, err)
		assert.Equal(t, DateRange{From: tt.from, To: tt.to}, got, "date %s", tt.date)
	}
}

func TestMonthRangeForDate(t *testing.T) {
	got, err := MonthRangeForDate("2026-02-15")
	require.NoError(t, err)
	assert.Equal(t, DateRange{From: "2026-02-01", To: "2026-02-28"}, got)

	got, err = MonthRangeForDate("2024-02-10")
	require.NoError(t, err)
	assert.Equal(t, DateRange{From: "2024-02-01", To: "2024-02-29"}, got)

	got, err = MonthRangeForDate("2026-12-31")
	require.NoError(t, err)
	assert.Equal(t, DateRange{From: "2026-12-01", To: "2026-12-31"}, got)
}

func TestLastCompleteWeekRange(t *testing.T) {
	tests := []struct {
		name string
		now  string
		from string
		to   string
	}{
		{
			// Wednesday Jan 7 in business time: last complete week ended Sunday Jan 4.
			name: "midweek",
			now:  "2026-01-07T05:00:00Z",
			from: "2025-12-29",
			to:   "2026-01-04",
		},
		{
			// Sunday in business time counts the week ending today as complete.
			name: "sunday",
			now:  "2026-01-11T03:00:00Z",
			from: "2026-01-05",
			to:   "2026-01-11",
		},
		{
			// 23:00 UTC Monday is already Tuesday in +07:00 business time.
			name: "offset pushes into next day",
			now:  "2026-01-05T23:00:00Z",
			from: "2025-12-29",
			to:   "2026-01-04",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewResolver("+07:00")
			r.now = fixedNow(tt.now)

			got := r.LastCompleteWeekRange()
			assert.Equal(t, DateRange{From: tt.from, To: tt.to}, got)
		})
	}
}

func TestDaysAgo(t *testing.T) {
	r := NewResolver("+07:00")
	r.now = fixedNow("2026-01-07T20:00:00Z") // Jan 8 in business time

	assert.Equal(t, "2026-01-08", r.DaysAgo(0))
	assert.Equal(t, "2026-01-01", r.DaysAgo(7))
}

func TestDatesBetween(t *testing.T) {
	dates, err := DatesBetween("2026-01-30", "2026-02-02")
	require.NoError(t, err)
	assert.Equal(t, []string{"2026-01-30", "2026-01-31", "2026-02-01", "2026-02-02"}, dates)

	dates, err = DatesBetween("2026-01-07", "2026-01-07")
	require.NoError(t, err)
	assert.Equal(t, []string{"2026-01-07"}, dates)

	dates, err = DatesBetween("2026-01-07", "2026-01-01")
	require.NoError(t, err)
	assert.Empty(t, dates)
}
