// Package datecmp orders loosely-typed date and timestamp values.
//
// Filter tokens routinely compare a typed item value (time.Time, epoch
// milliseconds) against a token value produced by a date picker (an ISO
// string, often without a zone). Comparisons here are three-way and report
// whether both operands parsed at all; callers treat an unparsable operand
// as "no match" rather than as an error.
package datecmp

import "time"

// Layouts accepted for string operands without a zone, tried after RFC 3339.
const (
	layoutDateTime      = "2006-01-02T15:04:05"
	layoutDateTimeSpace = "2006-01-02 15:04:05"
	layoutDate          = "2006-01-02"
)

// Date compares a and b by calendar date, ignoring time of day. Each
// operand's calendar day is taken in its own location, so "the same moment"
// on opposite sides of midnight compares unequal, matching what a user
// looking at rendered dates expects. cmp is negative, zero or positive as
// a's day is before, the same as or after b's; ok is false when either
// operand fails to parse.
func Date(a, b any) (cmp int, ok bool) {
	at, aok := ParseTime(a)
	bt, bok := ParseTime(b)
	if !aok || !bok {
		return 0, false
	}

	ay, am, ad := at.Date()
	by, bm, bd := bt.Date()
	switch {
	case ay != by:
		return sign(ay - by), true
	case am != bm:
		return sign(int(am) - int(bm)), true
	default:
		return sign(ad - bd), true
	}
}

// Timestamp compares a and b as points in time with millisecond precision.
// cmp is negative, zero or positive as a is before, equal to or after b;
// ok is false when either operand fails to parse.
func Timestamp(a, b any) (cmp int, ok bool) {
	at, aok := ParseTime(a)
	bt, bok := ParseTime(b)
	if !aok || !bok {
		return 0, false
	}

	ams, bms := at.UnixMilli(), bt.UnixMilli()
	switch {
	case ams < bms:
		return -1, true
	case ams > bms:
		return 1, true
	default:
		return 0, true
	}
}

// ParseTime interprets v as a point in time.
//
// Accepted forms:
//   - time.Time, returned as-is
//   - RFC 3339 strings ("2024-03-01T10:30:00Z", with or without fraction)
//   - zone-less datetimes ("2024-03-01T10:30:00", "2024-03-01 10:30:00"),
//     interpreted in the local location, the way date-time pickers emit them
//   - date-only strings ("2024-03-01"), local midnight
//   - numeric values, as epoch milliseconds
func ParseTime(v any) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, true
	case string:
		return parseString(t)
	case int:
		return time.UnixMilli(int64(t)), true
	case int64:
		return time.UnixMilli(t), true
	case float64:
		return time.UnixMilli(int64(t)), true
	default:
		return time.Time{}, false
	}
}

func parseString(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	if t, err := time.ParseInLocation(layoutDateTime, s, time.Local); err == nil {
		return t, true
	}
	if t, err := time.ParseInLocation(layoutDateTimeSpace, s, time.Local); err == nil {
		return t, true
	}
	if t, err := time.ParseInLocation(layoutDate, s, time.Local); err == nil {
		return t, true
	}
	return time.Time{}, false
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}
