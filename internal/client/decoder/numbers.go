package decoder

import (
	"math"
	"strconv"
	"strings"
)

const nullLiteral = "null"

// ParseOptionalInt parses an integer field value. Empty input, the null
// literal and anything that is not a number report false. Integral decimals
// such as "9.0" are accepted.
func ParseOptionalInt(value string) (int, bool) {
	value = strings.TrimSpace(value)
	if value == "" || value == nullLiteral {
		return 0, false
	}
	if n, err := strconv.Atoi(value); err == nil {
		return n, true
	}
	f, ok := ParseOptionalDouble(value)
	if !ok || f != math.Trunc(f) || f > math.MaxInt32 || f < math.MinInt32 {
		return 0, false
	}
	return int(f), true
}

// ParseOptionalDouble parses a decimal field value with the same absence rules
// as ParseOptionalInt. NaN and infinities are treated as absent.
func ParseOptionalDouble(value string) (float64, bool) {
	value = strings.TrimSpace(value)
	if value == "" || value == nullLiteral {
		return 0, false
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// firstOf returns the value of the first key present in obj with a non-empty,
// non-null value.
func firstOf(obj map[string]string, keys ...string) string {
	for _, k := range keys {
		if v, ok := obj[k]; ok && v != "" && v != nullLiteral {
			return v
		}
	}
	return ""
}
