package geom

import (
	"fmt"
	"math"
	"math/big"
)

// Simplify treats x/y as a fraction and returns it reduced to lowest terms,
// numerator as x and denominator as y. The denominator is always positive.
// Vector(10, 5) simplifies to Vector(2, 1); Vector(0.5, 0.75) to Vector(2, 3).
// A fraction whose reduced terms are not exactly representable as float64,
// like 0.1/0.3, is an invalid argument.
func (v Vector) Simplify() (Vector, error) {
	s := v
	if _, err := s.SimplifyInPlace(); err != nil {
		return Vector{}, err
	}
	return s, nil
}

// SimplifyInPlace is Simplify applied to v. On error v is unchanged.
func (v *Vector) SimplifyInPlace() (*Vector, error) {
	if math.IsNaN(v.x) || math.IsInf(v.x, 0) || math.IsNaN(v.y) || math.IsInf(v.y, 0) {
		return v, fmt.Errorf("%w: cannot simplify non-finite %s", ErrInvalidArgument, v)
	}
	if v.y == 0 {
		return v, fmt.Errorf("%w: cannot simplify %s with zero y", ErrInvalidArgument, v)
	}

	ratio := new(big.Rat).Quo(new(big.Rat).SetFloat64(v.x), new(big.Rat).SetFloat64(v.y))
	num, numAcc := new(big.Float).SetInt(ratio.Num()).Float64()
	den, denAcc := new(big.Float).SetInt(ratio.Denom()).Float64()
	if numAcc != big.Exact || denAcc != big.Exact {
		return v, fmt.Errorf("%w: %s reduces to %s/%s, which floats cannot hold exactly",
			ErrInvalidArgument, v, ratio.Num(), ratio.Denom())
	}

	v.x, v.y = num, den
	v.recalcPolar()
	return v, nil
}
