package geom

import "math"

// Results of binary operations are bound to the receiver's frame.

func (v Vector) Neg() Vector {
	return v.frame.Cartesian(-v.x, -v.y)
}

func (v Vector) Add(other Vector) Vector {
	return v.frame.Cartesian(v.x+other.x, v.y+other.y)
}

func (v Vector) Sub(other Vector) Vector {
	return v.frame.Cartesian(v.x-other.x, v.y-other.y)
}

// Mul scales both components by s.
func (v Vector) Mul(s float64) Vector {
	return v.frame.Cartesian(v.x*s, v.y*s)
}

func (v Vector) Div(s float64) Vector {
	return v.frame.Cartesian(v.x/s, v.y/s)
}

func (v Vector) Dot(other Vector) float64 {
	return v.x*other.x + v.y*other.y
}

// Det returns the signed area of the parallelogram spanned by v and other.
func (v Vector) Det(other Vector) float64 {
	return v.x*other.y - v.y*other.x
}

// Cross returns a vector whose magnitude is the area of the parallelogram
// spanned by v and other. Only the magnitude is meaningful.
func (v Vector) Cross(other Vector) Vector {
	return v.frame.Cartesian(v.Det(other), 0)
}

func (v Vector) Scale(s float64) Vector {
	return v.ScaleXY(s, s)
}

func (v Vector) ScaleXY(sx, sy float64) Vector {
	return v.frame.Cartesian(v.x*sx, v.y*sy)
}

func (v *Vector) ScaleInPlace(s float64) *Vector {
	return v.ScaleXYInPlace(s, s)
}

func (v *Vector) ScaleXYInPlace(sx, sy float64) *Vector {
	v.x *= sx
	v.y *= sy
	v.recalcPolar()
	return v
}

// Unit returns a vector of magnitude 1 with the same angle as v.
// The zero vector has no direction and stays zero.
func (v Vector) Unit() Vector {
	u := v
	u.UnitInPlace()
	return u
}

func (v *Vector) UnitInPlace() *Vector {
	if v.m == 0 {
		return v
	}
	v.m = 1
	v.recalcCartesian()
	return v
}

// Normal returns the vector perpendicular to v, rotated clockwise.
func (v Vector) Normal() Vector {
	return v.frame.Cartesian(v.y, -v.x)
}

// NormalAt reports whether v is perpendicular to other.
func (v Vector) NormalAt(other Vector) bool {
	return v.Dot(other) == 0
}

// EnclosedAngle returns the angle between v and other in [0, π].
// The reflex angle is 2π minus the result. NaN if either vector is zero.
func (v Vector) EnclosedAngle(other Vector) float64 {
	if v.m == 0 || other.m == 0 {
		return math.NaN()
	}
	cos := v.Unit().Dot(other.Unit())
	return math.Acos(math.Max(-1, math.Min(1, cos)))
}

// Equal compares cartesian coordinates only; frames are ignored.
func (v Vector) Equal(other Vector) bool {
	return v.x == other.x && v.y == other.y
}

func (v Vector) ApproxEqual(other Vector, epsilon float64) bool {
	return math.Abs(v.x-other.x) <= epsilon && math.Abs(v.y-other.y) <= epsilon
}

func (v Vector) DistTo(other Vector) float64 {
	return v.Sub(other).Magnitude()
}

func limit(value, ll, ul float64) float64 {
	if value < ll {
		return ll
	} else if value > ul {
		return ul
	}
	return value
}

// limits vector coordinates to the given rectangle
func (v Vector) Limited(lx, ly, ux, uy float64) Vector {
	return v.frame.Cartesian(limit(v.x, lx, ux), limit(v.y, ly, uy))
}
