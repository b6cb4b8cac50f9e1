package css

import (
	"github.com/shopspring/decimal"
)

// Page geometry defaults, A4 with one inch margins, in twips.
const (
	DefaultPageWidth  = 11906
	DefaultPageHeight = 16838
	DefaultMargin     = 1440
)

const twipToCentimeter = 0.0017638889

// FormatDecimal rounds value half up to three decimal places and drops
// trailing zeros.
func FormatDecimal(value float64) string {
	return decimal.NewFromFloat(value).Round(3).String()
}

// Length is a CSS length rounded to three decimal places.
type Length struct {
	value decimal.Decimal
	unit  string
}

// Points makes length in points.
func Points(value float64) *Length {
	return &Length{value: decimal.NewFromFloat(value).Round(3), unit: "pt"}
}

// Twips converts twentieths of a point, nil stays nil.
func Twips(twips *int) *Length {
	if twips == nil {
		return nil
	}
	return Points(float64(*twips) / 20)
}

// HalfPoints converts font size measured in half points, nil stays nil.
func HalfPoints(size *int) *Length {
	if size == nil {
		return nil
	}
	return Points(float64(*size) / 2)
}

// Negate returns length with opposite sign.
func (l *Length) Negate() *Length {
	return &Length{value: l.value.Neg(), unit: l.unit}
}

// Equal compares lengths by value, both may be nil.
func (l *Length) Equal(other *Length) bool {
	if l == nil || other == nil {
		return l == other
	}
	return l.unit == other.unit && l.value.Equal(other.value)
}

// String renders length, zero is rendered without unit.
func (l *Length) String() string {
	if l.value.Abs().LessThan(decimal.New(5, -4)) {
		return "0"
	}
	return l.value.String() + l.unit
}

// Centimeters converts twips to CSS centimeters.
func Centimeters(twips int) string {
	return FormatDecimal(float64(twips)*twipToCentimeter) + "cm"
}
