package geom

import (
	"errors"
	"math"
	"strconv"

	"golang.org/x/exp/constraints"
)

const (
	HalfPi    = math.Pi / 2
	QuarterPi = math.Pi / 4
	DoublePi  = math.Pi * 2
	FourPi    = math.Pi * 4
)

var ErrInvalidArgument = errors.New("invalid argument")

// Number is any numeric type a vector can be built from.
type Number interface {
	constraints.Integer | constraints.Float
}

// Polar holds polar coordinates. The angle is measured in the phase of the
// frame the coordinates are used with.
type Polar struct {
	Magnitude float64
	Angle     float64
}

// Vector is a 2D vector with both a cartesian and a polar view.
// Both views are kept in sync: every setter recomputes the other view before
// returning. The angle is stored without the phase so that changing the
// phase of the vector's frame moves the reported angle of every vector bound
// to it while the cartesian coordinates stay put.
//
// The zero value is the origin in a frame with phase 0.
type Vector struct {
	x, y  float64
	m     float64
	raw   float64 // atan2(y, x)
	frame *Frame
}

func FromCartesian(x, y float64) Vector {
	return (*Frame)(nil).Cartesian(x, y)
}

// Of builds a vector from any numeric pair.
func Of[T Number](x, y T) Vector {
	return FromCartesian(float64(x), float64(y))
}

func FromPair[T Number](p [2]T) Vector {
	return Of(p[0], p[1])
}

// CopyOf returns a vector with the same coordinates and frame as v.
func CopyOf(v Vector) Vector {
	return v.frame.Cartesian(v.x, v.y)
}

func FromPolar(p Polar) Vector {
	return (*Frame)(nil).Polar(p)
}

func (v *Vector) recalcPolar() {
	v.m = math.Sqrt(v.x*v.x + v.y*v.y)
	v.raw = math.Atan2(v.y, v.x)
}

// recalcCartesian derives x and y from m and raw. A negative magnitude points
// the other way, so the polar view is then rebuilt from the result.
func (v *Vector) recalcCartesian() {
	v.x = v.m * math.Cos(v.raw)
	v.y = v.m * math.Sin(v.raw)
	if v.m < 0 {
		v.recalcPolar()
	}
}

func (v Vector) X() float64 { return v.x }
func (v Vector) Y() float64 { return v.y }

// Coord returns both cartesian coordinates.
func (v Vector) Coord() (float64, float64) {
	return v.x, v.y
}

func (v Vector) Magnitude() float64 { return v.m }

// Length is an alias for Magnitude.
func (v Vector) Length() float64 { return v.m }

// Angle returns the polar angle in radians, offset by the frame phase.
func (v Vector) Angle() float64 {
	return v.raw + v.frame.Phase()
}

func (v Vector) Polar() Polar {
	return Polar{Magnitude: v.m, Angle: v.Angle()}
}

// Frame returns the frame the vector is bound to, nil for the default frame.
func (v Vector) Frame() *Frame { return v.frame }

// In returns a copy of v bound to f. The cartesian coordinates are kept.
func (v Vector) In(f *Frame) Vector {
	return f.Cartesian(v.x, v.y)
}

func (v *Vector) SetX(x float64) {
	v.x = x
	v.recalcPolar()
}

func (v *Vector) SetY(y float64) {
	v.y = y
	v.recalcPolar()
}

func (v *Vector) SetMagnitude(m float64) {
	v.m = m
	v.recalcCartesian()
}

// SetLength is an alias for SetMagnitude.
func (v *Vector) SetLength(m float64) {
	v.SetMagnitude(m)
}

// SetAngle sets the polar angle, interpreted in the phase of the vector's frame.
func (v *Vector) SetAngle(a float64) {
	v.raw = a - v.frame.Phase()
	v.recalcCartesian()
}

func (v *Vector) SetPolar(p Polar) {
	v.m = p.Magnitude
	v.raw = p.Angle - v.frame.Phase()
	v.recalcCartesian()
}

func (v Vector) String() string {
	return "Vector(" + strconv.FormatFloat(v.x, 'g', -1, 64) + ", " +
		strconv.FormatFloat(v.y, 'g', -1, 64) + ")"
}
