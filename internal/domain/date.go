package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// EventDate is either NoDate or DatedAt(t). The zero value is NoDate.
//
// Absence of a date is meaningful: the consistency checks treat undated
// events differently from dated ones, so there is no "empty string" form.
type EventDate struct {
	at  time.Time
	set bool
}

// NoDate returns an EventDate without a point in time.
func NoDate() EventDate { return EventDate{} }

// DatedAt returns an EventDate set to t, normalized to UTC.
func DatedAt(t time.Time) EventDate { return EventDate{at: t.UTC(), set: true} }

// ParseEventDate parses an RFC 3339 timestamp. An empty string yields NoDate.
func ParseEventDate(s string) (EventDate, error) {
	if s == "" {
		return NoDate(), nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return EventDate{}, fmt.Errorf("date %q: %w", s, ErrValidation)
	}
	return DatedAt(t), nil
}

// IsSet reports whether the date carries a point in time.
func (d EventDate) IsSet() bool { return d.set }

// Time returns the point in time and true, or the zero time and false.
func (d EventDate) Time() (time.Time, bool) { return d.at, d.set }

// Before reports whether both dates are set and d is strictly earlier than o.
func (d EventDate) Before(o EventDate) bool {
	return d.set && o.set && d.at.Before(o.at)
}

// Equal reports whether both dates are unset, or both are set to the same instant.
func (d EventDate) Equal(o EventDate) bool {
	if d.set != o.set {
		return false
	}
	return !d.set || d.at.Equal(o.at)
}

// Ptr returns the time as a pointer, nil for NoDate.
func (d EventDate) Ptr() *time.Time {
	if !d.set {
		return nil
	}
	t := d.at
	return &t
}

// EventDateFromPtr is the inverse of Ptr.
func EventDateFromPtr(t *time.Time) EventDate {
	if t == nil {
		return NoDate()
	}
	return DatedAt(*t)
}

func (d EventDate) String() string {
	if !d.set {
		return "no date"
	}
	return d.at.Format(time.RFC3339)
}

// MarshalJSON encodes NoDate as null and a set date as RFC 3339.
func (d EventDate) MarshalJSON() ([]byte, error) {
	if !d.set {
		return []byte("null"), nil
	}
	return json.Marshal(d.at.Format(time.RFC3339Nano))
}

// UnmarshalJSON accepts null, "" and RFC 3339 strings.
func (d *EventDate) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		*d = NoDate()
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("date: %w", ErrValidation)
	}
	parsed, err := ParseEventDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
