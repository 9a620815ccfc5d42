// Package interop converts vectors to and from the point types of other
// graphics packages. Conversions carry cartesian coordinates only; results
// are in the default frame.
package interop

import (
	"image"
	"math"

	"VecKit/core/geom"

	rl "github.com/gen2brain/raylib-go/raylib"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/math/fixed"
)

func ToRaylib(v geom.Vector) rl.Vector2 {
	return rl.NewVector2(float32(v.X()), float32(v.Y()))
}

func FromRaylib(v rl.Vector2) geom.Vector {
	return geom.Of(v.X, v.Y)
}

func ToF64(v geom.Vector) f64.Vec2 {
	return f64.Vec2{v.X(), v.Y()}
}

func FromF64(v f64.Vec2) geom.Vector {
	return geom.FromPair(v)
}

// ToFixed converts to 26.6 fixed point, rounding to the nearest 1/64.
func ToFixed(v geom.Vector) fixed.Point26_6 {
	return fixed.Point26_6{X: toInt26_6(v.X()), Y: toInt26_6(v.Y())}
}

func toInt26_6(f float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(f * 64))
}

func FromFixed(p fixed.Point26_6) geom.Vector {
	return geom.FromCartesian(float64(p.X)/64, float64(p.Y)/64)
}

// ToImagePoint rounds to the nearest integer point.
func ToImagePoint(v geom.Vector) image.Point {
	return image.Pt(int(math.Round(v.X())), int(math.Round(v.Y())))
}

func FromImagePoint(p image.Point) geom.Vector {
	return geom.Of(p.X, p.Y)
}
