package units

import (
	"math"
	"strconv"
	"strings"
)

// Validation is the outcome of checking a number typed into a form.
type Validation string

const (
	ValidationSuccess Validation = "success"
	ValidationError   Validation = "error"
)

// ValidateNumber accepts positive finite numbers, and only whole ones when integerOnly is set.
// Any other input yields (ValidationError, -1).
func ValidateNumber(text string, integerOnly bool) (Validation, float64) {
	s := strings.TrimSpace(text)
	if s == "" {
		return ValidationError, -1
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return ValidationError, -1
	}
	if integerOnly && v != math.Trunc(v) {
		return ValidationError, -1
	}
	return ValidationSuccess, v
}
