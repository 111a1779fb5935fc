package date

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Layout is the textual form of a Date at every boundary (JSON, SQL, files).
const Layout = "2006-01-02"

// Date is a calendar day without time of day or zone.
type Date struct {
	t time.Time
}

// New builds a Date, normalising overflowing days the same way time.Date does.
func New(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Of truncates t to its calendar day in t's own location.
func Of(t time.Time) Date {
	y, m, d := t.Date()
	return New(y, m, d)
}

// Today returns the current calendar day in loc (UTC when nil).
func Today(loc *time.Location) Date {
	if loc == nil {
		loc = time.UTC
	}
	return Of(time.Now().In(loc))
}

// Parse reads a YYYY-MM-DD string.
func Parse(value string) (Date, error) {
	t, err := time.Parse(Layout, strings.TrimSpace(value))
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", value, err)
	}
	return Date{t: t}, nil
}

// MonthRange returns the first day of the month and the first day of the next one.
func MonthRange(year int, month time.Month) (Date, Date) {
	start := New(year, month, 1)
	return start, start.AddMonths(1)
}

func (d Date) Year() int { return d.t.Year() }
func (d Date) Month() time.Month { return d.t.Month() }
func (d Date) Day() int { return d.t.Day() }
func (d Date) IsZero() bool { return d.t.IsZero() }
func (d Date) Time() time.Time { return d.t }
func (d Date) String() string { return d.t.Format(Layout) }
func (d Date) Before(o Date) bool { return d.t.Before(o.t) }
func (d Date) After(o Date) bool { return d.t.After(o.t) }
func (d Date) Equal(o Date) bool { return d.t.Equal(o.t) }
func (d Date) AddDays(n int) Date { return Date{t: d.t.AddDate(0, 0, n)} }
func (d Date) AddMonths(n int) Date { return Date{t: d.t.AddDate(0, n, 0)} }

// Compact renders the date as YYYYMMDD, used in export file names.
func (d Date) Compact() string {
	return d.t.Format("20060102")
}

// Value stores the date as YYYY-MM-DD text so range comparisons stay lexical on SQLite.
func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.String(), nil
}

// Scan accepts the text, byte and timestamp forms different drivers return.
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*d = Date{}
		return nil
	case time.Time:
		*d = Of(v.UTC())
		return nil
	case string:
		return d.scanText(v)
	case []byte:
		return d.scanText(string(v))
	default:
		return fmt.Errorf("cannot scan %T into date", src)
	}
}

func (d *Date) scanText(value string) error {
	value = strings.TrimSpace(value)
	if len(value) > len(Layout) {
		// timestamp-shaped text written by some drivers, e.g. "2026-10-01 00:00:00+00:00"
		value = value[:len(Layout)]
	}
	parsed, err := Parse(value)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var raw *string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil || strings.TrimSpace(*raw) == "" {
		*d = Date{}
		return nil
	}
	parsed, err := Parse(*raw)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
