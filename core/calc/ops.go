package calc

import (
	"fmt"

	"VecKit/core/geom"
)

var ErrInvalidArgument = geom.ErrInvalidArgument

type Op string

const (
	OpAdd Op = "+"
	OpSub Op = "-"
	OpMul Op = "*"
	OpDiv Op = "/"
	OpEq  Op = "=="
)

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidArgument}, args...)...)
}

// Construct builds a vector from one of the accepted argument layouts:
//
//	x, y
//	[x, y]
//	vector
//	cartesian, x, y
//	polar, angle=a, magnitude=m   (keyword arguments, in any order)
//
// Vectors are created in frame f.
func Construct(f *geom.Frame, args ...Value) (geom.Vector, error) {
	switch len(args) {
	case 1:
		switch arg := args[0].(type) {
		case List:
			x, y, ok := scalarPair(arg)
			if !ok {
				return geom.Vector{}, invalid("expected a list of two numbers, got %s", Format(arg))
			}
			return f.Cartesian(x, y), nil
		case VectorValue:
			return f.Adopt(arg.Vector), nil
		}
	case 2:
		if x, y, ok := scalarPair(args); ok {
			return f.Cartesian(x, y), nil
		}
	case 3:
		switch args[0] {
		case Symbol("cartesian"):
			if x, y, ok := scalarPair(args[1:]); ok {
				return f.Cartesian(x, y), nil
			}
			return geom.Vector{}, invalid("cartesian needs two numbers")
		case Symbol("polar"):
			p, err := polarArgs(args[1:])
			if err != nil {
				return geom.Vector{}, err
			}
			return f.Polar(p), nil
		}
	}
	return geom.Vector{}, invalid("no vector layout takes (%s)", describe(args))
}

func describe(args []Value) string {
	s := ""
	for i, arg := range args {
		if i > 0 {
			s += ", "
		}
		s += typeName(arg)
	}
	return s
}

func scalarPair(vals []Value) (float64, float64, bool) {
	if len(vals) != 2 {
		return 0, 0, false
	}
	x, okx := vals[0].(Scalar)
	y, oky := vals[1].(Scalar)
	return float64(x), float64(y), okx && oky
}

// polarArgs reads angle and magnitude from keyword arguments. Positional
// polar coordinates are rejected since their order is easy to get wrong.
func polarArgs(args []Value) (geom.Polar, error) {
	var p geom.Polar
	var haveAngle, haveMag bool
	for _, arg := range args {
		n, ok := arg.(Named)
		if !ok {
			return p, invalid("polar coordinates must be named, e.g. polar, angle=0.5, magnitude=2")
		}
		s, ok := n.Val.(Scalar)
		if !ok {
			return p, invalid("%s must be a number, got %s", n.Key, typeName(n.Val))
		}
		switch n.Key {
		case "a", "angle":
			p.Angle, haveAngle = float64(s), true
		case "m", "magnitude", "length":
			p.Magnitude, haveMag = float64(s), true
		default:
			return p, invalid("unknown polar coordinate %q", n.Key)
		}
	}
	if !haveAngle || !haveMag {
		return p, invalid("polar needs both angle and magnitude")
	}
	return p, nil
}

// Negate is unary minus.
func Negate(v Value) (Value, error) {
	switch val := v.(type) {
	case Scalar:
		return -val, nil
	case VectorValue:
		return VectorValue{val.Neg()}, nil
	}
	return nil, invalid("cannot negate %s", typeName(v))
}

// Binary applies op to lhs and rhs.
//
// Vectors add and subtract only with vectors. A vector times a number scales
// it, a vector times a vector is their dot product. Vectors divide only by
// numbers. == never fails: values of different kinds are simply unequal.
func Binary(op Op, lhs, rhs Value) (Value, error) {
	if op == OpEq {
		return Equal(lhs, rhs), nil
	}

	switch l := lhs.(type) {
	case Scalar:
		switch r := rhs.(type) {
		case Scalar:
			return scalarOp(op, l, r)
		case VectorValue:
			if op == OpMul {
				return VectorValue{r.Mul(float64(l))}, nil
			}
		}
	case VectorValue:
		switch r := rhs.(type) {
		case VectorValue:
			switch op {
			case OpAdd:
				return VectorValue{l.Add(r.Vector)}, nil
			case OpSub:
				return VectorValue{l.Sub(r.Vector)}, nil
			case OpMul:
				return Scalar(l.Dot(r.Vector)), nil
			}
		case Scalar:
			switch op {
			case OpMul:
				return VectorValue{l.Mul(float64(r))}, nil
			case OpDiv:
				return VectorValue{l.Div(float64(r))}, nil
			}
		}
	}
	return nil, invalid("cannot apply %s to %s and %s", op, typeName(lhs), typeName(rhs))
}

func scalarOp(op Op, l, r Scalar) (Value, error) {
	switch op {
	case OpAdd:
		return l + r, nil
	case OpSub:
		return l - r, nil
	case OpMul:
		return l * r, nil
	case OpDiv:
		return l / r, nil
	}
	return nil, invalid("unknown operator %s", op)
}

// Equal compares two values. Vectors compare by cartesian coordinates.
func Equal(lhs, rhs Value) Bool {
	switch l := lhs.(type) {
	case VectorValue:
		r, ok := rhs.(VectorValue)
		return Bool(ok && l.Equal(r.Vector))
	case Scalar:
		r, ok := rhs.(Scalar)
		return Bool(ok && l == r)
	case Bool:
		r, ok := rhs.(Bool)
		return Bool(ok && l == r)
	case Symbol:
		r, ok := rhs.(Symbol)
		return Bool(ok && l == r)
	case List:
		r, ok := rhs.(List)
		if !ok || len(l) != len(r) {
			return false
		}
		for i := range l {
			if !Equal(l[i], r[i]) {
				return false
			}
		}
		return true
	}
	return false
}
