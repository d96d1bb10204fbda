package propfilter

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// looseEqual implements the permissive cross-type equality behind the = and
// != operators, chosen so that tokens produced from text inputs ("5") match
// numerically-typed item values (5) and vice versa:
//
//   - nil equals only nil
//   - booleans coerce to 1/0 and compare numerically
//   - numbers compare as float64; NaN equals nothing
//   - a number and a string compare numerically when the string parses as a
//     number (the empty string parses to 0); otherwise they are unequal
//   - two strings compare exactly, case-sensitive, with no numeric coercion
//   - two time.Time values compare chronologically
//   - two values of any other type compare by their fmt "%v" rendering; a
//     value of such a type never equals a string or a number
//
// Note the asymmetry: "5" equals 5, and 5 equals "05", but "5" does not
// equal "05". The relation is not transitive across the string/number
// boundary.
func looseEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if ab, ok := a.(bool); ok {
		return looseEqual(boolToFloat(ab), b)
	}
	if bb, ok := b.(bool); ok {
		return looseEqual(a, boolToFloat(bb))
	}
	if at, ok := a.(time.Time); ok {
		if bt, ok := b.(time.Time); ok {
			return at.Equal(bt)
		}
	}

	af, aNum := toFloat(a)
	bf, bNum := toFloat(b)
	as, aStr := a.(string)
	bs, bStr := b.(string)

	switch {
	case aNum && bNum:
		return af == bf
	case aStr && bStr:
		return as == bs
	case aNum && bStr:
		f, ok := parseNumeric(bs)
		return ok && af == f
	case aStr && bNum:
		f, ok := parseNumeric(as)
		return ok && f == bf
	case !aNum && !aStr && !bNum && !bStr:
		return fmt.Sprintf("%v", a) == fmt.Sprintf("%v", b)
	default:
		return false
	}
}

// relationalCompare orders a and b for the <, <=, > and >= operators.
//
// Two strings order lexicographically by byte value, even when both look
// numeric. Otherwise both operands coerce to float64: booleans as 1/0, nil
// as 0, strings by parsing (the empty string parses to 0), time.Time as
// epoch milliseconds. Operands that do not coerce, or coerce to NaN, are
// incomparable and ok is false; every relational operator treats an
// incomparable pair as a non-match.
func relationalCompare(a, b any) (cmp int, ok bool) {
	as, aStr := a.(string)
	bs, bStr := b.(string)
	if aStr && bStr {
		return strings.Compare(as, bs), true
	}
	af, aok := toNumber(a)
	bf, bok := toNumber(b)
	if !aok || !bok || math.IsNaN(af) || math.IsNaN(bf) {
		return 0, false
	}
	switch {
	case af < bf:
		return -1, true
	case af > bf:
		return 1, true
	default:
		return 0, true
	}
}

// matchText reports whether itemValue contains tokenValue as a substring,
// comparing the stringified forms case-insensitively.
func matchText(itemValue, tokenValue any) bool {
	return strings.Contains(strings.ToLower(stringify(itemValue)), strings.ToLower(stringify(tokenValue)))
}

// matchPrefix reports whether itemValue starts with tokenValue, comparing
// the stringified forms case-insensitively.
func matchPrefix(itemValue, tokenValue any) bool {
	return strings.HasPrefix(strings.ToLower(stringify(itemValue)), strings.ToLower(stringify(tokenValue)))
}

// toNumber applies the relational coercion: numbers widen, booleans map to
// 1/0, nil maps to 0, strings parse via parseNumeric, time.Time maps to
// epoch milliseconds. Anything else is not a number.
func toNumber(v any) (float64, bool) {
	if v == nil {
		return 0, true
	}
	switch t := v.(type) {
	case bool:
		return boolToFloat(t), true
	case string:
		return parseNumeric(t)
	case time.Time:
		return float64(t.UnixMilli()), true
	}
	return toFloat(v)
}

// toFloat widens any Go numeric value to float64.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// parseNumeric parses s the way the coercing comparisons expect:
// surrounding whitespace is ignored and an empty or all-whitespace string
// parses to 0. Decimal and exponent forms are accepted. "NaN" parses to
// NaN, which the callers reject separately.
func parseNumeric(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// stringify renders v for the substring and prefix operators: strings
// unchanged, booleans as "true"/"false", integers in decimal, floats in
// plain decimal form (exponent form only from 1e21 upward), nil as the
// empty string, time.Time in RFC 3339, anything else via fmt "%v".
func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case time.Time:
		return t.Format(time.RFC3339)
	case float32:
		return formatFloat(float64(t))
	case float64:
		return formatFloat(t)
	case int:
		return strconv.FormatInt(int64(t), 10)
	case int8:
		return strconv.FormatInt(int64(t), 10)
	case int16:
		return strconv.FormatInt(int64(t), 10)
	case int32:
		return strconv.FormatInt(int64(t), 10)
	case int64:
		return strconv.FormatInt(t, 10)
	case uint:
		return strconv.FormatUint(uint64(t), 10)
	case uint8:
		return strconv.FormatUint(uint64(t), 10)
	case uint16:
		return strconv.FormatUint(uint64(t), 10)
	case uint32:
		return strconv.FormatUint(uint64(t), 10)
	case uint64:
		return strconv.FormatUint(t, 10)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// formatFloat prefers plain decimal notation so substring matches against
// float-valued properties behave like matches against their displayed form.
func formatFloat(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) || math.Abs(f) >= 1e21 {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// fixupFalsy normalizes an item value ahead of the built-in comparisons.
// Booleans render as "true"/"false" so equality against their textual form
// works, numeric zero passes through, and the remaining falsy values (nil,
// the empty string, NaN) collapse to the empty string.
func fixupFalsy(v any) any {
	switch t := v.(type) {
	case nil:
		return ""
	case bool:
		return strconv.FormatBool(t)
	case float32:
		if math.IsNaN(float64(t)) {
			return ""
		}
	case float64:
		if math.IsNaN(t) {
			return ""
		}
	}
	return v
}
