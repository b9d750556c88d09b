package timewindow

import (
	"fmt"
	"regexp"
	"time"
)

const dateLayout = "2006-01-02"

var (
	dateRe   = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	offsetRe = regexp.MustCompile(`^([+-])(\d{2}):?(\d{2})$`)
)

// Window is an absolute UTC interval, inclusive of both instants.
type Window struct {
	Start time.Time
	End   time.Time
}

// DateRange is a pair of business-local calendar dates, inclusive.
type DateRange struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// OffsetMinutes parses a fixed UTC offset such as "+07:00" or "-0330".
// Unparseable offsets resolve to 0 (UTC).
func OffsetMinutes(offset string) int {
	m := offsetRe.FindStringSubmatch(offset)
	if m == nil {
		return 0
	}

	sign := 1
	if m[1] == "-" {
		sign = -1
	}

	var hours, minutes int
	fmt.Sscanf(m[2], "%d", &hours)
	fmt.Sscanf(m[3], "%d", &minutes)

	return sign * (hours*60 + minutes)
}

// Resolver converts business-local calendar dates into UTC windows using a
// fixed business timezone offset.
type Resolver struct {
	offsetMinutes int
	now           func() time.Time
}

func NewResolver(offset string) *Resolver {
	return &Resolver{
		offsetMinutes: OffsetMinutes(offset),
		now:           time.Now,
	}
}

// OffsetMinutes exposes the configured offset for queries that group rows
// by business-local day.
func (r *Resolver) OffsetMinutes() int {
	return r.offsetMinutes
}

// IsValidDateString reports whether s matches YYYY-MM-DD and is a real
// calendar date.
func IsValidDateString(s string) bool {
	if !dateRe.MatchString(s) {
		return false
	}
	_, err := time.Parse(dateLayout, s)
	return err == nil
}

// ParseDate parses a YYYY-MM-DD date as UTC midnight.
func ParseDate(s string) (time.Time, error) {
	if !dateRe.MatchString(s) {
		return time.Time{}, fmt.Errorf("invalid date format: %q", s)
	}

	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date: %q: %w", s, err)
	}

	return t, nil
}

func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// DayWindow resolves a business-local calendar date to its UTC window:
// local midnight through local 23:59:59.999.
func (r *Resolver) DayWindow(date string) (Window, error) {
	day, err := ParseDate(date)
	if err != nil {
		return Window{}, err
	}

	offset := time.Duration(r.offsetMinutes) * time.Minute
	start := day.Add(-offset)
	end := day.Add(24*time.Hour - time.Millisecond).Add(-offset)

	return Window{Start: start, End: end}, nil
}

// RangeWindow resolves an inclusive (from, to) date pair to a single UTC
// window spanning local midnight of from through local end-of-day of to.
func (r *Resolver) RangeWindow(from, to string) (Window, error) {
	startWin, err := r.DayWindow(from)
	if err != nil {
		return Window{}, err
	}

	endWin, err := r.DayWindow(to)
	if err != nil {
		return Window{}, err
	}

	if endWin.End.Before(startWin.Start) {
		return Window{}, fmt.Errorf("range end %q before start %q", to, from)
	}

	return Window{Start: startWin.Start, End: endWin.End}, nil
}

// WeekRangeForDate returns the Monday–Sunday week containing date.
func WeekRangeForDate(date string) (DateRange, error) {
	day, err := ParseDate(date)
	if err != nil {
		return DateRange{}, err
	}

	weekday := int(day.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday closes the week
	}

	from := day.AddDate(0, 0, -(weekday - 1))
	to := from.AddDate(0, 0, 6)

	return DateRange{From: FormatDate(from), To: FormatDate(to)}, nil
}

// MonthRangeForDate returns the first and last calendar day of the month
// containing date.
func MonthRangeForDate(date string) (DateRange, error) {
	day, err := ParseDate(date)
	if err != nil {
		return DateRange{}, err
	}

	first := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	return DateRange{From: FormatDate(first), To: FormatDate(last)}, nil
}

// LastCompleteWeekRange returns the most recently concluded Monday–Sunday
// week in business time. On a business-time Sunday the week ending today
// counts as complete.
func (r *Resolver) LastCompleteWeekRange() DateRange {
	bizNow := r.now().UTC().Add(time.Duration(r.offsetMinutes) * time.Minute)
	end := time.Date(bizNow.Year(), bizNow.Month(), bizNow.Day(), 0, 0, 0, 0, time.UTC)

	if wd := int(end.Weekday()); wd != 0 {
		end = end.AddDate(0, 0, -wd)
	}

	start := end.AddDate(0, 0, -6)

	return DateRange{From: FormatDate(start), To: FormatDate(end)}
}

// DaysAgo returns the business-local date n days before now.
func (r *Resolver) DaysAgo(n int) string {
	bizNow := r.now().UTC().Add(time.Duration(r.offsetMinutes) * time.Minute)
	return FormatDate(bizNow.AddDate(0, 0, -n))
}

// DatesBetween returns every date from from through to, inclusive.
func DatesBetween(from, to string) ([]string, error) {
	start, err := ParseDate(from)
	if err != nil {
		return nil, err
	}

	end, err := ParseDate(to)
	if err != nil {
		return nil, err
	}

	dates := make([]string, 0)
	for cur := start; !cur.After(end); cur = cur.AddDate(0, 0, 1) {
		dates = append(dates, FormatDate(cur))
	}

	return dates, nil
}
