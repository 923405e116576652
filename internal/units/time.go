package units

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/hazelcast/cache-config-engine/api/v1alpha1"
)

var (
	timeSuffix = map[v1alpha1.TimeUnit]string{
		v1alpha1.Milliseconds: "ms",
		v1alpha1.Seconds:      "s",
		v1alpha1.Minutes:      "m",
		v1alpha1.Hours:        "h",
		v1alpha1.Days:         "d",
	}
)

// RenderTime writes a duration in the wire format. The second result is false when the value is
// zero, telling the compiler to leave the field out. Unknown units are rendered as milliseconds.
func RenderTime(value float64, unit v1alpha1.TimeUnit) (string, bool) {
	if value == 0 || math.IsNaN(value) {
		return "", false
	}
	if value == v1alpha1.Unbounded {
		return "-1", true
	}
	suffix, ok := timeSuffix[unit]
	if !ok {
		suffix = timeSuffix[v1alpha1.Milliseconds]
	}
	return formatNumber(value) + suffix, true
}

// ParseTime reads a duration written by RenderTime. A bare number is in milliseconds and -1 is
// the disabled sentinel.
func ParseTime(input string) (float64, v1alpha1.TimeUnit, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return 0, "", formatError(input, "empty duration")
	}

	unit := v1alpha1.Milliseconds
	number := s
	if i := strings.IndexFunc(s, unicode.IsLetter); i >= 0 {
		var ok bool
		unit, ok = lookupTimeUnit(strings.ToLower(s[i:]))
		if !ok {
			return 0, "", formatError(input, "unknown unit "+strconv.Quote(s[i:]))
		}
		number = strings.TrimSpace(s[:i])
	}

	v, err := parseMagnitude(number)
	if err != nil {
		return 0, "", formatError(input, "magnitude is not a number")
	}
	if v == v1alpha1.Unbounded {
		return v1alpha1.Unbounded, v1alpha1.Milliseconds, nil
	}
	if v < 0 {
		return 0, "", formatError(input, "negative magnitude")
	}
	return v, unit, nil
}

func lookupTimeUnit(suffix string) (v1alpha1.TimeUnit, bool) {
	for _, u := range v1alpha1.TimeUnits {
		if timeSuffix[u] == suffix {
			return u, true
		}
	}
	return "", false
}
