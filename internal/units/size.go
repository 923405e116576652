package units

import (
	"math"
	"math/big"
	"strconv"
	"strings"
	"unicode"

	"k8s.io/apimachinery/pkg/api/resource"

	"github.com/hazelcast/cache-config-engine/api/v1alpha1"
	n "github.com/hazelcast/cache-config-engine/internal/naming"
)

var (
	unitFactor = map[v1alpha1.MaxSizeUnit]int64{
		v1alpha1.KB:  1000,
		v1alpha1.MB:  1000 * 1000,
		v1alpha1.GB:  1000 * 1000 * 1000,
		v1alpha1.TB:  1000 * 1000 * 1000 * 1000,
		v1alpha1.KiB: 1 << 10,
		v1alpha1.MiB: 1 << 20,
		v1alpha1.GiB: 1 << 30,
		v1alpha1.TiB: 1 << 40,
	}

	// quantitySuffix maps a size unit to its resource.Quantity suffix.
	quantitySuffix = map[v1alpha1.MaxSizeUnit]string{
		v1alpha1.KB:  "k",
		v1alpha1.MB:  "M",
		v1alpha1.GB:  "G",
		v1alpha1.TB:  "T",
		v1alpha1.KiB: "Ki",
		v1alpha1.MiB: "Mi",
		v1alpha1.GiB: "Gi",
		v1alpha1.TiB: "Ti",
	}
)

// ParseSize reads "<decimal-number><unit>" where unit is one of the eight size units, in any case.
// The literal -1, with or without a unit, is the unbounded sentinel and yields (-1, KB).
func ParseSize(input string) (float64, v1alpha1.MaxSizeUnit, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return 0, "", formatError(input, "empty quantity")
	}

	i := strings.IndexFunc(s, unicode.IsLetter)
	if i < 0 {
		if v, err := strconv.ParseFloat(s, 64); err == nil && v == v1alpha1.Unbounded {
			return v1alpha1.Unbounded, v1alpha1.KB, nil
		}
		return 0, "", formatError(input, "missing unit")
	}

	unit, ok := lookupSizeUnit(s[i:])
	if !ok {
		return 0, "", formatError(input, "unknown unit "+strconv.Quote(s[i:]))
	}
	v, err := parseMagnitude(strings.TrimSpace(s[:i]))
	if err != nil {
		return 0, "", formatError(input, "magnitude is not a number")
	}
	if v == v1alpha1.Unbounded {
		return v1alpha1.Unbounded, v1alpha1.KB, nil
	}
	if v < 0 {
		return 0, "", formatError(input, "negative magnitude")
	}
	return v, unit, nil
}

// RenderSize writes a size in the wire format. It returns "null" when the value or the unit is
// missing, telling the compiler to leave the field out.
func RenderSize(value *float64, unit v1alpha1.MaxSizeUnit) string {
	if value == nil || unit == "" {
		return n.OmittedValue
	}
	if *value == v1alpha1.Unbounded {
		return "-1"
	}
	return formatNumber(*value) + string(unit)
}

// Bytes returns the exact number of bytes of a size, rounded up to a whole byte.
// The unbounded sentinel is returned unchanged.
func Bytes(value float64, unit v1alpha1.MaxSizeUnit) (int64, error) {
	if value == v1alpha1.Unbounded {
		return v1alpha1.Unbounded, nil
	}
	suffix, ok := quantitySuffix[unit]
	if !ok {
		return 0, formatError(formatNumber(value)+string(unit), "unknown unit "+strconv.Quote(string(unit)))
	}
	text := formatNumber(value) + string(unit)
	if math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
		return 0, formatError(text, "magnitude must be a non-negative finite number")
	}
	if value*float64(unitFactor[unit]) >= math.MaxInt64 {
		return 0, formatError(text, "size does not fit in 64 bits")
	}
	q, err := resource.ParseQuantity(formatNumber(value) + suffix)
	if err != nil {
		return 0, formatError(text, err.Error())
	}
	return q.Value(), nil
}

// ConvertSize expresses a size in another unit, converting between decimal and binary scales with
// rational arithmetic. The unbounded sentinel is returned unchanged.
func ConvertSize(value float64, from, to v1alpha1.MaxSizeUnit) (float64, error) {
	if value == v1alpha1.Unbounded {
		return v1alpha1.Unbounded, nil
	}
	ff, ok := unitFactor[from]
	if !ok {
		return 0, formatError(string(from), "unknown unit")
	}
	tf, ok := unitFactor[to]
	if !ok {
		return 0, formatError(string(to), "unknown unit")
	}
	r := new(big.Rat)
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, formatError(formatNumber(value)+string(from), "magnitude must be finite")
	}
	r.SetFloat64(value)
	r.Mul(r, new(big.Rat).SetInt64(ff))
	r.Quo(r, new(big.Rat).SetInt64(tf))
	f, _ := r.Float64()
	return f, nil
}

// ParseSizeUnit reads a size unit name, in any case.
func ParseSizeUnit(s string) (v1alpha1.MaxSizeUnit, error) {
	unit, ok := lookupSizeUnit(strings.TrimSpace(s))
	if !ok {
		return "", formatError(s, "unknown unit")
	}
	return unit, nil
}

func lookupSizeUnit(s string) (v1alpha1.MaxSizeUnit, bool) {
	for _, u := range v1alpha1.MaxSizeUnits {
		if strings.EqualFold(string(u), s) {
			return u, true
		}
	}
	return "", false
}

func parseMagnitude(s string) (float64, error) {
	if s == "" {
		return 0, strconv.ErrSyntax
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, strconv.ErrRange
	}
	return v, nil
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
