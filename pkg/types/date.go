package types

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the ISO calendar date format used by memo headers.
const DateLayout = "2006-01-02"

// Date is a calendar date without a time component. Invalid dates (missing
// or unparseable values read from the store) keep Valid=false.
type Date struct {
	Time  time.Time
	Valid bool
}

// NewDate builds a valid Date from the calendar components.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC), Valid: true}
}

// ParseDate parses an ISO date. Longer timestamps are truncated to their date part.
func ParseDate(value string) (Date, error) {
	value = strings.TrimSpace(value)
	if len(value) > len(DateLayout) {
		value = value[:len(DateLayout)]
	}
	parsed, err := time.Parse(DateLayout, value)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", value, err)
	}
	return Date{Time: parsed, Valid: true}, nil
}

// MustParseDate is ParseDate for fixtures and tests.
func MustParseDate(value string) Date {
	d, err := ParseDate(value)
	if err != nil {
		panic(err)
	}
	return d
}

// String returns the ISO form, or an empty string for invalid dates.
func (d Date) String() string {
	if !d.Valid {
		return ""
	}
	return d.Time.Format(DateLayout)
}

// Before orders dates; invalid dates sort before every valid date.
func (d Date) Before(other Date) bool {
	switch {
	case !d.Valid && !other.Valid:
		return false
	case !d.Valid:
		return true
	case !other.Valid:
		return false
	}
	return d.Time.Before(other.Time)
}

// Scan implements sql.Scanner. Unparseable values degrade to an invalid date.
func (d *Date) Scan(value any) error {
	*d = Date{}
	switch v := value.(type) {
	case nil:
		return nil
	case time.Time:
		*d = Date{Time: time.Date(v.Year(), v.Month(), v.Day(), 0, 0, 0, 0, time.UTC), Valid: true}
	case string:
		if parsed, err := ParseDate(v); err == nil {
			*d = parsed
		}
	case []byte:
		if parsed, err := ParseDate(string(v)); err == nil {
			*d = parsed
		}
	default:
		return fmt.Errorf("unsupported date type %T", value)
	}
	return nil
}

// Value implements driver.Valuer.
func (d Date) Value() (driver.Value, error) {
	if !d.Valid {
		return nil, nil
	}
	return d.String(), nil
}

// MarshalJSON implements json.Marshaler.
func (d Date) MarshalJSON() ([]byte, error) {
	if !d.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Date) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*d = Date{}
		return nil
	}
	var raw string
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return err
	}
	if strings.TrimSpace(raw) == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(raw)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
