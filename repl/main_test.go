package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"VecKit/config"
	"VecKit/core/calc"
	"VecKit/core/geom"
	"VecKit/core/wire"
)

func TestRun_Args(t *testing.T) {
	var out bytes.Buffer
	err := run([]string{"a = vec(4, 8)", "a + vec(4, 9)", "a * vec(1, 0)"}, nil, &out, config.Default())
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	want := "Vector(4, 8)\nVector(8, 17)\n4\n"
	if out.String() != want {
		t.Errorf("got %q want %q", out.String(), want)
	}
}

func TestRun_ArgsStopOnError(t *testing.T) {
	var out bytes.Buffer
	err := run([]string{"vec(4, 8) / vec(4, 9)", "vec(1, 1)"}, nil, &out, config.Default())
	if !errors.Is(err, calc.ErrInvalidArgument) {
		t.Errorf("got %v want ErrInvalidArgument", err)
	}
	if out.Len() != 0 {
		t.Errorf("nothing should be printed, got %q", out.String())
	}
}

func TestRun_Interactive(t *testing.T) {
	in := strings.NewReader("a = vec(10, 5)\n\n# comment\nsimplify!(a)\nvec(1)\nvars\nquit\nvec(9, 9)\n")
	var out bytes.Buffer
	if err := run(nil, in, &out, config.Default()); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	got := out.String()
	for _, want := range []string{"Vector(10, 5)\n", "Vector(2, 1)\n", "error: invalid argument", "a = Vector(2, 1)\n"} {
		if !strings.Contains(got, want) {
			t.Errorf("output %q does not contain %q", got, want)
		}
	}
	if strings.Contains(got, "Vector(9, 9)") {
		t.Errorf("input after quit was evaluated")
	}
}

func TestFormatResult(t *testing.T) {
	vec := calc.VectorValue{Vector: geom.Of(4, 3)}

	cfg := config.Default()
	cfg.Format = config.FormatWire
	got, err := formatResult(vec, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if want := "0900000000000010401100000000000008" + "40"; got != want {
		t.Errorf("wire: got %s want %s", got, want)
	}
	if got, _ := formatResult(calc.Scalar(2), cfg); got != "2" {
		t.Errorf("wire scalar: got %s want 2", got)
	}

	cfg.Format = config.FormatJSON
	got, err = formatResult(vec, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	back, err := wire.UnmarshalJSON([]byte(got))
	if err != nil || !back.Equal(geom.Of(4, 3)) {
		t.Errorf("json: %s decoded to %s, %v", got, back, err)
	}
	if got, _ := formatResult(calc.Bool(true), cfg); got != "true" {
		t.Errorf("json bool: got %s want true", got)
	}

	cfg.Format = config.FormatText
	cfg.Precision = 2
	if got, _ := formatResult(calc.Scalar(1.23456), cfg); got != "1.23" {
		t.Errorf("text: got %s want 1.23", got)
	}
}
