// Package timespan provides time intervals that keep their declared unit.
//
// A Span pairs an integer value with a Unit, so "2 minutes" stays "2
// minutes" through arithmetic and rendering instead of collapsing into
// nanoseconds. Spans of different units compare by their total duration:
// Minutes(2) equals Seconds(120).
package timespan

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// ErrBadSpan is returned when text does not parse as "<integer><unit>".
var ErrBadSpan = errors.New("invalid time span")

// Unit is a time-interval unit.
type Unit int

const (
	Millisecond Unit = iota
	Second
	Minute
	Hour
	Day
	Week
)

var unitExtents = [...]time.Duration{
	Millisecond: time.Millisecond,
	Second:      time.Second,
	Minute:      time.Minute,
	Hour:        time.Hour,
	Day:         24 * time.Hour,
	Week:        7 * 24 * time.Hour,
}

var unitSuffixes = [...]string{
	Millisecond: "ms",
	Second:      "s",
	Minute:      "m",
	Hour:        "h",
	Day:         "d",
	Week:        "w",
}

var unitNames = [...]string{
	Millisecond: "millisecond",
	Second:      "second",
	Minute:      "minute",
	Hour:        "hour",
	Day:         "day",
	Week:        "week",
}

// Duration returns the extent of one unit.
func (u Unit) Duration() time.Duration { return unitExtents[u] }

// Suffix returns the compact suffix used in the text form ("ms", "s", ...).
func (u Unit) Suffix() string { return unitSuffixes[u] }

func (u Unit) String() string { return unitNames[u] }

// Span is a time interval expressed in a particular unit.
type Span struct {
	Value int64
	Unit  Unit
}

// Constructors, one per unit.
func Milliseconds(v int64) Span { return Span{Value: v, Unit: Millisecond} }
func Seconds(v int64) Span      { return Span{Value: v, Unit: Second} }
func Minutes(v int64) Span      { return Span{Value: v, Unit: Minute} }
func Hours(v int64) Span        { return Span{Value: v, Unit: Hour} }
func Days(v int64) Span         { return Span{Value: v, Unit: Day} }
func Weeks(v int64) Span        { return Span{Value: v, Unit: Week} }

// Duration returns the span's total extent.
func (s Span) Duration() time.Duration {
	return time.Duration(s.Value) * s.Unit.Duration()
}

// In expresses the span in another unit without truncation.
func (s Span) In(u Unit) float64 {
	return float64(s.Duration()) / float64(u.Duration())
}

// Convert re-expresses the span in another unit, truncating toward zero:
// Seconds(90).Convert(Minute) is Minutes(1).
func (s Span) Convert(u Unit) Span {
	return Span{Value: int64(s.Duration() / u.Duration()), Unit: u}
}

// Add returns s + o expressed in s's unit (truncating).
func (s Span) Add(o Span) Span {
	return Span{Value: int64((s.Duration() + o.Duration()) / s.Unit.Duration()), Unit: s.Unit}
}

// Sub returns s - o expressed in s's unit (truncating).
func (s Span) Sub(o Span) Span {
	return Span{Value: int64((s.Duration() - o.Duration()) / s.Unit.Duration()), Unit: s.Unit}
}

// Compare orders spans by total duration, ignoring units.
func (s Span) Compare(o Span) int {
	switch d, e := s.Duration(), o.Duration(); {
	case d < e:
		return -1
	case d > e:
		return 1
	default:
		return 0
	}
}

// Equal reports whether two spans cover the same duration, whatever their
// units: Minutes(2).Equal(Seconds(120)) is true.
func (s Span) Equal(o Span) bool {
	return s.Duration() == o.Duration()
}

// String renders the compact text form, e.g. "5m" or "250ms".
func (s Span) String() string {
	return strconv.FormatInt(s.Value, 10) + s.Unit.Suffix()
}

var spanPattern = regexp.MustCompile(`^(-?\d+)(ms|s|m|h|d|w)$`)

// Parse parses the compact text form produced by String: an integer
// followed by a unit suffix ("250ms", "90s", "5m", "2h", "1d", "4w").
// Compound forms like "1h30m" are not accepted; use time.ParseDuration for
// those.
func Parse(text string) (Span, error) {
	m := spanPattern.FindStringSubmatch(text)
	if m == nil {
		return Span{}, fmt.Errorf("%w: %q", ErrBadSpan, text)
	}

	value, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return Span{}, fmt.Errorf("%w: %q: %v", ErrBadSpan, text, err)
	}

	for u, suffix := range unitSuffixes {
		if suffix == m[2] {
			return Span{Value: value, Unit: Unit(u)}, nil
		}
	}
	return Span{}, fmt.Errorf("%w: %q", ErrBadSpan, text)
}
