package geom

import (
	"math"
	"sync/atomic"
)

// Frame is a coordinate system context. Its phase is added to every angle
// read from a vector bound to it and subtracted from every angle written.
//
// A nil *Frame is valid and has phase 0.
type Frame struct {
	phase atomic.Uint64
}

func NewFrame(phase float64) *Frame {
	f := &Frame{}
	f.SetPhase(phase)
	return f
}

// ScreenFrame returns a frame with phase -π/2, where angle 0 points along +y.
func ScreenFrame() *Frame {
	return NewFrame(-HalfPi)
}

func (f *Frame) Phase() float64 {
	if f == nil {
		return 0
	}
	return math.Float64frombits(f.phase.Load())
}

// SetPhase changes the phase. Vectors already bound to f report their angle
// in the new phase; their cartesian coordinates do not change.
func (f *Frame) SetPhase(p float64) {
	f.phase.Store(math.Float64bits(p))
}

func (f *Frame) Cartesian(x, y float64) Vector {
	v := Vector{x: x, y: y, frame: f}
	v.recalcPolar()
	return v
}

// Polar builds a vector from polar coordinates measured in this frame.
func (f *Frame) Polar(p Polar) Vector {
	v := Vector{m: p.Magnitude, raw: p.Angle - f.Phase(), frame: f}
	v.recalcCartesian()
	return v
}

// Adopt returns a copy of v bound to f.
func (f *Frame) Adopt(v Vector) Vector {
	return v.In(f)
}
