package apiclient

import (
	"bytes"
	"fmt"
	"time"
)

const (
	dateLayout = "2006-01-02"

	// naiveLayout is a timestamp without an offset, read as UTC.
	naiveLayout = "2006-01-02T15:04:05.999999999"
)

// Time decodes backend timestamps with or without a UTC offset.
type Time struct {
	time.Time
}

func (t *Time) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	s := string(bytes.Trim(data, `"`))
	if parsed, err := time.Parse(time.RFC3339Nano, s); err == nil {
		t.Time = parsed
		return nil
	}
	parsed, err := time.ParseInLocation(naiveLayout, s, time.UTC)
	if err != nil {
		return fmt.Errorf("invalid timestamp %q: %w", s, err)
	}
	t.Time = parsed
	return nil
}

// Date is a calendar date sent as "YYYY-MM-DD". Timestamps are accepted on decode.
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses "YYYY-MM-DD".
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q, want YYYY-MM-DD: %w", s, err)
	}
	return Date{Time: t}, nil
}

func (d Date) String() string {
	return d.Format(dateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	s := string(bytes.Trim(data, `"`))
	if parsed, err := time.Parse(dateLayout, s); err == nil {
		d.Time = parsed
		return nil
	}
	var ts Time
	if err := ts.UnmarshalJSON(data); err != nil {
		return fmt.Errorf("invalid date %q: %w", s, err)
	}
	d.Time = ts.Time
	return nil
}
