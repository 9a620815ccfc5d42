package calc

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"math"
	"strings"
	"testing"
)

func evalAll(t *testing.T, s *Session, lines ...string) Value {
	t.Helper()
	var last Value
	for _, line := range lines {
		v, err := s.Eval(line)
		if err != nil {
			t.Fatalf("%q: unexpected error: %s", line, err)
		}
		last = v
	}
	return last
}

func TestEval_Table(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"vec(4, 8) + vec(4, 9)", "Vector(8, 17)"},
		{"vec(4, 8) - vec(9, 4)", "Vector(-5, 4)"},
		{"vec(4, 3) * vec(1, 2)", "10"},
		{"vec(3, 4) * 10", "Vector(30, 40)"},
		{"vec(21, 28) / 7", "Vector(3, 4)"},
		{"-vec(2, 1)", "Vector(-2, -1)"},
		{"m(vec(4, 3))", "5"},
		{"length(vec([4, 3]))", "5"},
		{"vec(4, 3) == vec([4, 3])", "true"},
		{"vec(vec(4, 3)) == vec(cartesian, 4, 3)", "true"},
		{"vec(4, 3) == 5", "false"},
		{"simplify(vec(10, 5))", "Vector(2, 1)"},
		{"scale(vec(4, 8), 2, 3)", "Vector(8, 24)"},
		{"scale(vec(4, 8), 4)", "Vector(16, 32)"},
		{"normal(vec(3, 4))", "Vector(4, -3)"},
		{"normal_at?(vec(5, 0), vec(0, 5))", "true"},
		{"normal_at?(vec(5, 0), vec(48, 49))", "false"},
		{"m(cross(vec(2, 0), vec(0, 1)))", "2"},
		{"m(unit(vec(15, 36)))", "1"},
		{"x(vec(polar, angle=0, magnitude=3))", "3"},
		{"limit(vec(6, -1), 0, 0, 4, 4)", "Vector(4, 0)"},
		{"dist(vec(1, 1), vec(4, 5))", "5"},
		{"2 * (3 + 4)", "14"},
		{"1 - -1", "2"},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			got, err := NewSession(0).Eval(test.input)
			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
			if Format(got) != test.want {
				t.Errorf("got %s want %s", Format(got), test.want)
			}
		})
	}
}

func TestEval_EnclosedAngle(t *testing.T) {
	got := evalAll(t, NewSession(0), "enclosed_angle(vec(5, 0), vec(0, 5))")
	if math.Abs(float64(got.(Scalar))-math.Pi/2) > 1e-9 {
		t.Errorf("got %s want pi/2", Format(got))
	}
}

func TestEval_Errors(t *testing.T) {
	tests := []struct {
		input string
		want  error
	}{
		{"vec(4, 8) / vec(4, 9)", ErrInvalidArgument},
		{"vec(4, 8) + 1", ErrInvalidArgument},
		{"vec(48)", ErrInvalidArgument},
		{"vec()", ErrInvalidArgument},
		{"vec(raphaels_coordinate_system, in, sane)", ErrInvalidArgument},
		{"vec(polar, 1, 5)", ErrInvalidArgument},
		{"simplify(vec(5, 0))", ErrInvalidArgument},
		{"scale(vec(1, 1))", ErrInvalidArgument},
		{"unit!(vec(1, 2))", ErrInvalidArgument},
		{"unit!(nothing)", ErrInvalidArgument},
		{"frobnicate(1)", ErrUnknownFunction},
		{"cartesian = 1", ErrInvalidArgument},
		{"polar = vec(1, 2)", ErrInvalidArgument},
		{"pi = 3", ErrInvalidArgument},
		{"vec(1, 2", ErrSyntax},
		{"1 +", ErrSyntax},
		{"(1, 2)", ErrSyntax},
		{"1 2", ErrSyntax},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			_, err := NewSession(0).Eval(test.input)
			if !errors.Is(err, test.want) {
				t.Errorf("got %v want %v", err, test.want)
			}
		})
	}
}

func TestSession_Assignment(t *testing.T) {
	s := NewSession(0)
	evalAll(t, s, "a = vec(4, 8)", "b = vec(4, 9)", "c = a + b")

	c, ok := s.Lookup("c")
	if !ok {
		t.Fatalf("c not defined")
	}
	if Format(c) != "Vector(8, 17)" {
		t.Errorf("got %s want Vector(8, 17)", Format(c))
	}
	if got := strings.Join(s.Vars(), ","); got != "a,b,c" {
		t.Errorf("got vars %s", got)
	}
}

func TestSession_ReservedNamesKeepTags(t *testing.T) {
	s := NewSession(0)
	if _, err := s.Eval("cartesian = 1"); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("got %v want ErrInvalidArgument", err)
	}
	if _, ok := s.Lookup("cartesian"); ok {
		t.Errorf("cartesian was stored")
	}
	got, err := s.Eval("vec(cartesian, 1, 2)")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if Format(got) != "Vector(1, 2)" {
		t.Errorf("got %s want Vector(1, 2)", Format(got))
	}
}

func TestSession_InPlace(t *testing.T) {
	s := NewSession(0)
	evalAll(t, s,
		"a = vec(10, 5)",
		"simplify!(a)",
		"b = vec(2, 3)",
		"scale!(b, 5, 2)",
		"c = vec(2, 3)",
		"unit!(c)",
	)

	tests := []struct {
		name string
		want string
	}{
		{"a", "Vector(2, 1)"},
		{"b", "Vector(10, 6)"},
	}
	for _, test := range tests {
		got, _ := s.Lookup(test.name)
		if Format(got) != test.want {
			t.Errorf("%s: got %s want %s", test.name, Format(got), test.want)
		}
	}

	c, _ := s.Lookup("c")
	if m := c.(VectorValue).Magnitude(); m != 1 {
		t.Errorf("c: got magnitude %v want 1", m)
	}
}

func TestSession_SimplifyLeavesOriginal(t *testing.T) {
	s := NewSession(0)
	evalAll(t, s, "a = vec(10, 5)", "b = simplify(a)")
	a, _ := s.Lookup("a")
	if Format(a) != "Vector(10, 5)" {
		t.Errorf("got %s want Vector(10, 5)", Format(a))
	}
}

func TestSession_PhaseChangesExistingAngles(t *testing.T) {
	s := NewSession(0)
	evalAll(t, s, "a = vec(5, 0)", "b = vec(0, 5)")

	evalAll(t, s, "screen()")
	if got := evalAll(t, s, "angle(a)"); math.Abs(float64(got.(Scalar))+math.Pi/2) > 1e-9 {
		t.Errorf("angle(a): got %s want -pi/2", Format(got))
	}
	if got := evalAll(t, s, "angle(b)"); got != Scalar(0) {
		t.Errorf("angle(b): got %s want 0", Format(got))
	}
	if got := evalAll(t, s, "a"); Format(got) != "Vector(5, 0)" {
		t.Errorf("phase change moved a to %s", Format(got))
	}

	evalAll(t, s, "phase(0)")
	if got := evalAll(t, s, "phase()"); got != Scalar(0) {
		t.Errorf("phase(): got %s want 0", Format(got))
	}
	if got := evalAll(t, s, "a(a)"); got != Scalar(0) {
		t.Errorf("a(a): got %s want 0", Format(got))
	}
}

func TestSession_Logging(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(nil) })

	s := NewSession(0)
	evalAll(t, s, "vec(1, 2)")
	_, _ = s.Eval("vec(1)")

	out := buf.String()
	if !strings.Contains(out, "level=DEBUG") || !strings.Contains(out, "level=WARN") {
		t.Errorf("expected debug and warn records, got:\n%s", out)
	}
}

func TestLoggerDefaultSilent(t *testing.T) {
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Errorf("default logger should be disabled")
	}
}
