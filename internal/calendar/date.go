package calendar

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/MyelinBots/stillalive-go/internal/faults"
)

const layout = "2006-01-02"

// Date is a civil calendar date with no time of day and no zone.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// New returns the date or a validation fault when it does not exist on the
// calendar (2023-02-29, 2024-04-31, month 13...).
func New(year int, month time.Month, day int) (Date, error) {
	if !IsValid(year, month, day) {
		return Date{}, faults.Validation("invalid date %04d-%02d-%02d", year, int(month), day)
	}
	return Date{Year: year, Month: month, Day: day}, nil
}

func Parse(s string) (Date, error) {
	t, err := time.Parse(layout, s)
	if err != nil {
		return Date{}, faults.Validation("invalid date %q, want YYYY-MM-DD", s)
	}
	d := FromTime(t)
	if !IsValid(d.Year, d.Month, d.Day) {
		return Date{}, faults.Validation("invalid date %q", s)
	}
	return d, nil
}

// FromTime takes the calendar date of t in t's own location.
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Today is the current date in loc.
func Today(now time.Time, loc *time.Location) Date {
	if loc == nil {
		loc = time.UTC
	}
	return FromTime(now.In(loc))
}

func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func (d Date) AddDays(n int) Date {
	return FromTime(d.Time().AddDate(0, 0, n))
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// DaysIn returns the number of days in the month, 28 through 31.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func IsValid(year int, month time.Month, day int) bool {
	if year < 1 || year > 9999 || month < time.January || month > time.December {
		return false
	}
	return day >= 1 && day <= DaysIn(year, month)
}

// MonthRange returns the first day of the month and the first day of the
// following month. The end is exclusive and must itself be a valid date, so
// December 9999 has no range: "10000-01-01" does not sort after it as text.
func MonthRange(year int, month time.Month) (Date, Date, error) {
	start, err := New(year, month, 1)
	if err != nil {
		return Date{}, Date{}, faults.Validation("invalid month %04d-%02d", year, int(month))
	}
	end := FromTime(start.Time().AddDate(0, 1, 0))
	if !IsValid(end.Year, end.Month, end.Day) {
		return Date{}, Date{}, faults.Validation("month %04d-%02d is out of range", year, int(month))
	}
	return start, end, nil
}

// Value stores the date as YYYY-MM-DD, which orders correctly as text on
// SQLite and is accepted for DATE columns on PostgreSQL.
func (d Date) Value() (driver.Value, error) {
	return d.String(), nil
}

func (d *Date) Scan(value interface{}) error {
	switch v := value.(type) {
	case time.Time:
		// drivers hand back a zero time for DATE values they cannot parse
		if v.IsZero() {
			return fmt.Errorf("unreadable date value")
		}
		*d = FromTime(v)
		return nil
	case string:
		return d.parseInto(v)
	case []byte:
		return d.parseInto(string(v))
	case nil:
		*d = Date{}
		return nil
	default:
		return fmt.Errorf("unsupported type for Date: %T", value)
	}
}

func (d *Date) parseInto(s string) error {
	if len(s) > len(layout) {
		s = s[:len(layout)]
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Date) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
