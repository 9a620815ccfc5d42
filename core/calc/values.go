package calc

import (
	"math"
	"strings"

	"VecKit/core/geom"

	"github.com/dustin/go-humanize"
)

// Value is anything an expression can evaluate to.
type Value interface {
	IsValue()
}

type Scalar float64

func (Scalar) IsValue() {}

type Bool bool

func (Bool) IsValue() {}

// Symbol is a bare identifier used as a constructor tag, e.g. cartesian or polar.
type Symbol string

func (Symbol) IsValue() {}

type List []Value

func (List) IsValue() {}

// Named is a keyword argument, k=v.
type Named struct {
	Key string
	Val Value
}

func (Named) IsValue() {}

type VectorValue struct {
	geom.Vector
}

func (VectorValue) IsValue() {}

// DefaultDigits is the number of decimals Format keeps.
const DefaultDigits = 6

// MaxDigits is the most decimals FormatDigits can print.
const MaxDigits = 6

// Format renders v the way the calculator prints it.
func Format(v Value) string {
	return FormatDigits(v, DefaultDigits)
}

// FormatDigits is Format with numbers rounded to digits decimals, at most
// MaxDigits; trailing zeros are dropped.
func FormatDigits(v Value, digits int) string {
	digits = min(max(digits, 0), MaxDigits)
	formatFloat := func(f float64) string {
		return humanize.FtoaWithDigits(roundTo(f, digits), digits)
	}

	switch val := v.(type) {
	case Scalar:
		return formatFloat(float64(val))
	case Bool:
		if val {
			return "true"
		}
		return "false"
	case Symbol:
		return string(val)
	case Named:
		return val.Key + "=" + FormatDigits(val.Val, digits)
	case List:
		parts := make([]string, len(val))
		for i, item := range val {
			parts[i] = FormatDigits(item, digits)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case VectorValue:
		return "Vector(" + formatFloat(val.X()) + ", " + formatFloat(val.Y()) + ")"
	case nil:
		return "nil"
	}
	return "?"
}

func typeName(v Value) string {
	switch v.(type) {
	case Scalar:
		return "number"
	case Bool:
		return "bool"
	case Symbol:
		return "symbol"
	case List:
		return "list"
	case Named:
		return "named argument"
	case VectorValue:
		return "vector"
	}
	return "nothing"
}

// roundTo rounds f half away from zero to the given number of decimals.
// Values too large to carry a fraction are returned as they are.
func roundTo(f float64, digits int) float64 {
	if math.Abs(f) >= 1<<52 || math.IsNaN(f) {
		return f
	}
	p := math.Pow10(digits)
	r := math.Round(f*p) / p
	if r == 0 {
		return 0
	}
	return r
}
