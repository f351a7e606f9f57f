package domain

import (
	"fmt"
	"strings"
	"time"
)

const (
	DateLayout  = "20060102"
	MonthLayout = "200601"
)

// Date returns the calendar day as UTC midnight.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// TruncateDay drops the time-of-day component, keeping the calendar day of t.
func TruncateDay(t time.Time) time.Time {
	return Date(t.Year(), t.Month(), t.Day())
}

func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// DaysBetween counts calendar days in [start, end], both inclusive.
func DaysBetween(start, end time.Time) int {
	return int(TruncateDay(end).Sub(TruncateDay(start))/(24*time.Hour)) + 1
}

// Month identifies a calendar month.
type Month struct {
	Year  int
	Month time.Month
}

func NewMonth(year int, month time.Month) (Month, error) {
	if month < time.January || month > time.December || year < 1 {
		return Month{}, fmt.Errorf("%w: %04d%02d", ErrInvalidMonth, year, int(month))
	}
	return Month{Year: year, Month: month}, nil
}

func ParseMonth(s string) (Month, error) {
	t, err := time.Parse(MonthLayout, strings.TrimSpace(s))
	if err != nil {
		return Month{}, fmt.Errorf("%w: %q", ErrInvalidMonth, s)
	}
	m := Month{Year: t.Year(), Month: t.Month()}
	if !m.Valid() {
		return Month{}, fmt.Errorf("%w: %q", ErrInvalidMonth, s)
	}
	return m, nil
}

func (m Month) Valid() bool {
	return m.Year >= 1 && m.Month >= time.January && m.Month <= time.December
}

// Start is the first day of the month.
func (m Month) Start() time.Time {
	return Date(m.Year, m.Month, 1)
}

// End is the last day of the month, inclusive.
func (m Month) End() time.Time {
	return m.Start().AddDate(0, 1, -1)
}

func (m Month) Days() int {
	return m.End().Day()
}

func (m Month) String() string {
	return fmt.Sprintf("%04d%02d", m.Year, int(m.Month))
}
