package interop

import (
	"image"
	"testing"

	"VecKit/core/geom"

	rl "github.com/gen2brain/raylib-go/raylib"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/math/fixed"
)

func TestRaylib(t *testing.T) {
	v := geom.Of(4.5, -3)
	r := ToRaylib(v)
	if r.X != 4.5 || r.Y != -3 {
		t.Errorf("got %v want {4.5 -3}", r)
	}
	if back := FromRaylib(rl.Vector2{X: 4.5, Y: -3}); !back.Equal(v) {
		t.Errorf("got %s want %s", back, v)
	}
}

func TestF64(t *testing.T) {
	v := geom.Of(0.1, 0.2)
	if got := ToF64(v); got != (f64.Vec2{0.1, 0.2}) {
		t.Errorf("got %v", got)
	}
	if back := FromF64(f64.Vec2{0.1, 0.2}); !back.Equal(v) {
		t.Errorf("got %s want %s", back, v)
	}
}

func TestFixed_Table(t *testing.T) {
	tests := []struct {
		name string
		vec  geom.Vector
		want fixed.Point26_6
	}{
		{"integers", geom.Of(1, 2), fixed.P(1, 2)},
		{"halves", geom.Of(0.5, -0.5), fixed.Point26_6{X: 32, Y: -32}},
		{"rounding", geom.Of(1.0/128+1.0/1000, 0), fixed.Point26_6{X: 1, Y: 0}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := ToFixed(test.vec); got != test.want {
				t.Errorf("got %v want %v", got, test.want)
			}
		})
	}

	if back := FromFixed(fixed.Point26_6{X: 96, Y: -64}); !back.Equal(geom.Of(1.5, -1)) {
		t.Errorf("got %s want Vector(1.5, -1)", back)
	}
}

func TestImagePoint(t *testing.T) {
	if got := ToImagePoint(geom.Of(2.6, -1.4)); got != image.Pt(3, -1) {
		t.Errorf("got %v want (3,-1)", got)
	}
	if back := FromImagePoint(image.Pt(7, 8)); !back.Equal(geom.Of(7, 8)) {
		t.Errorf("got %s want Vector(7, 8)", back)
	}
}
