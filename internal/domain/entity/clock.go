package entity

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

const (
	DateFormat  = "2006-01-02"
	ClockFormat = "15:04"

	minutesPerDay = 24 * 60
)

// Clock is a wall-clock time of day in minutes since midnight.
type Clock int

func NewClock(hour, minute int) Clock {
	return Clock(hour*60 + minute)
}

// ParseClock parses "HH:MM" (seconds are accepted and ignored).
func ParseClock(s string) (Clock, error) {
	var hour, minute int
	if len(s) < 5 || s[2] != ':' {
		return 0, fmt.Errorf("invalid time %q, use HH:MM", s)
	}
	if _, err := fmt.Sscanf(s[:5], "%02d:%02d", &hour, &minute); err != nil {
		return 0, fmt.Errorf("invalid time %q, use HH:MM", s)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("invalid time %q, use HH:MM", s)
	}
	return NewClock(hour, minute), nil
}

func (c Clock) Hour() int   { return int(c) / 60 }
func (c Clock) Minute() int { return int(c) % 60 }

// Add returns the clock advanced by the given number of minutes.
func (c Clock) Add(minutes int) Clock {
	return c + Clock(minutes)
}

// Valid reports whether the clock falls within a single day.
func (c Clock) Valid() bool {
	return c >= 0 && c < minutesPerDay
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute())
}

// On places the clock on the given calendar date in loc.
func (c Clock) On(date time.Time, loc *time.Location) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), c.Hour(), c.Minute(), 0, 0, loc)
}

// Value implements driver.Valuer for postgres time columns
func (c Clock) Value() (driver.Value, error) {
	return c.String() + ":00", nil
}

// Scan implements sql.Scanner
func (c *Clock) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*c = 0
		return nil
	case string:
		parsed, err := ParseClock(v)
		if err != nil {
			return err
		}
		*c = parsed
		return nil
	case []byte:
		return c.Scan(string(v))
	case time.Time:
		*c = NewClock(v.Hour(), v.Minute())
		return nil
	case int64:
		// microseconds since midnight
		*c = Clock(v / int64(time.Minute/time.Microsecond))
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Clock", value)
	}
}

func (c Clock) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *Clock) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseClock(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// DateOnly truncates t to its calendar date at UTC midnight, the representation
// used for date columns.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, use YYYY-MM-DD", s)
	}
	return d, nil
}
