// Package schedule models apothecary opening hours: one slot per weekday
// interval, minute precision. Slot overlap is not validated here.
package schedule

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Weekday is 1-7, Monday-first (ISO 8601).
type Weekday int16

const (
	Monday Weekday = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var ErrInvalidWeekday = errors.New("invalid weekday")

func NewWeekday(n int16) (Weekday, error) {
	if n < 1 || n > 7 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidWeekday, n)
	}
	return Weekday(n), nil
}

func (w Weekday) String() string {
	names := [...]string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}
	if w < 1 || w > 7 {
		return fmt.Sprintf("weekday(%d)", int16(w))
	}
	return names[w-1]
}

// TimeOfDay is a wall-clock time with minute precision.
type TimeOfDay struct {
	Hour   int
	Minute int
}

var ErrInvalidTimeOfDay = errors.New("invalid time of day")

func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return TimeOfDay{}, fmt.Errorf("%w: %02d:%02d", ErrInvalidTimeOfDay, hour, minute)
	}
	return TimeOfDay{Hour: hour, Minute: minute}, nil
}

// ParseTimeOfDay accepts "HH:MM" and "HH:MM:SS" (seconds discarded), the
// textual forms postgres produces for time columns.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	var hour, minute, second int
	if _, err := fmt.Sscanf(s, "%d:%d:%d", &hour, &minute, &second); err != nil {
		if _, err := fmt.Sscanf(s, "%d:%d", &hour, &minute); err != nil {
			return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
		}
	}
	return NewTimeOfDay(hour, minute)
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// Slot is one opening interval of an apothecary.
type Slot struct {
	ID      uuid.UUID
	Weekday Weekday
	Start   TimeOfDay
	End     TimeOfDay
}
