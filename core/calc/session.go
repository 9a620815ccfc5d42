package calc

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"VecKit/core/geom"
)

var ErrUnknownFunction = errors.New("unknown function")

// reserved names cannot be assigned: constants and the vec layout tags.
var reserved = map[string]bool{
	"pi": true, "true": true, "false": true,
	"cartesian": true, "polar": true,
}

// Session evaluates statements against a set of variables. Every vector it
// creates is bound to the session's frame, so SetPhase changes the angle of
// all of them at once.
type Session struct {
	frame *geom.Frame
	vars  map[string]Value
}

func NewSession(phase float64) *Session {
	return &Session{
		frame: geom.NewFrame(phase),
		vars:  make(map[string]Value),
	}
}

func (s *Session) Frame() *geom.Frame { return s.frame }

func (s *Session) Phase() float64 { return s.frame.Phase() }

func (s *Session) SetPhase(p float64) {
	s.frame.SetPhase(p)
	Logger().Info("phase changed", "phase", p)
}

func (s *Session) Lookup(name string) (Value, bool) {
	v, ok := s.vars[name]
	return v, ok
}

func (s *Session) Set(name string, v Value) {
	if vec, ok := v.(VectorValue); ok {
		v = VectorValue{s.frame.Adopt(vec.Vector)}
	}
	s.vars[name] = v
}

// Vars returns the defined variable names in sorted order.
func (s *Session) Vars() []string {
	names := make([]string, 0, len(s.vars))
	for name := range s.vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Eval parses and evaluates one statement. An assignment stores its value
// and returns it.
func (s *Session) Eval(line string) (Value, error) {
	stmt, err := parse(line)
	if err != nil {
		Logger().Warn("parse failed", "input", line, "error", err)
		return nil, err
	}

	var val Value
	if a, ok := stmt.(assignNode); ok {
		if reserved[a.name] {
			err = invalid("%s is reserved and cannot be assigned", a.name)
		} else {
			val, err = s.eval(a.x)
		}
		if err == nil {
			s.Set(a.name, val)
			val, _ = s.Lookup(a.name)
		}
	} else {
		val, err = s.eval(stmt)
	}

	if err != nil {
		Logger().Warn("eval failed", "input", line, "error", err)
		return nil, err
	}
	Logger().Debug("eval", "input", line, "result", Format(val))
	return val, nil
}

func (s *Session) eval(n node) (Value, error) {
	switch n := n.(type) {
	case numberNode:
		return Scalar(n), nil
	case identNode:
		if v, ok := s.vars[string(n)]; ok {
			return v, nil
		}
		switch n {
		case "pi":
			return Scalar(math.Pi), nil
		case "true":
			return Bool(true), nil
		case "false":
			return Bool(false), nil
		}
		return Symbol(n), nil
	case listNode:
		return s.evalList(n)
	case namedNode:
		v, err := s.eval(n.val)
		if err != nil {
			return nil, err
		}
		return Named{Key: n.key, Val: v}, nil
	case negNode:
		v, err := s.eval(n.x)
		if err != nil {
			return nil, err
		}
		return Negate(v)
	case binaryNode:
		l, err := s.eval(n.l)
		if err != nil {
			return nil, err
		}
		r, err := s.eval(n.r)
		if err != nil {
			return nil, err
		}
		return Binary(n.op, l, r)
	case callNode:
		return s.call(n)
	}
	return nil, fmt.Errorf("%w: cannot evaluate %T", ErrSyntax, n)
}

func (s *Session) evalList(nodes []node) (List, error) {
	vals := make(List, len(nodes))
	for i, n := range nodes {
		v, err := s.eval(n)
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	return vals, nil
}

func (s *Session) call(c callNode) (Value, error) {
	if fn, ok := inPlace[c.name]; ok {
		return s.callInPlace(c, fn)
	}
	fn, ok := builtins[c.name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFunction, c.name)
	}
	args, err := s.evalList(c.args)
	if err != nil {
		return nil, err
	}
	return fn(s, args)
}

// callInPlace runs a mutating builtin on the vector stored in the variable
// named by the first argument and stores the result back.
func (s *Session) callInPlace(c callNode, fn inPlaceFunc) (Value, error) {
	if len(c.args) == 0 {
		return nil, invalid("%s needs a variable", c.name)
	}
	name, ok := c.args[0].(identNode)
	if !ok {
		return nil, invalid("%s needs a variable, not an expression", c.name)
	}
	cur, ok := s.vars[string(name)]
	if !ok {
		return nil, invalid("%s is not defined", name)
	}
	vec, ok := cur.(VectorValue)
	if !ok {
		return nil, invalid("%s holds a %s, not a vector", name, typeName(cur))
	}
	rest, err := s.evalList(c.args[1:])
	if err != nil {
		return nil, err
	}

	v := vec.Vector
	if err := fn(&v, rest); err != nil {
		return nil, err
	}
	s.vars[string(name)] = VectorValue{v}
	return VectorValue{v}, nil
}

type builtinFunc func(s *Session, args []Value) (Value, error)

type inPlaceFunc func(v *geom.Vector, args []Value) error

var builtins map[string]builtinFunc

var inPlace = map[string]inPlaceFunc{
	"scale!": func(v *geom.Vector, args []Value) error {
		sx, sy, err := scaleFactors(args)
		if err != nil {
			return err
		}
		v.ScaleXYInPlace(sx, sy)
		return nil
	},
	"unit!": func(v *geom.Vector, args []Value) error {
		if len(args) != 0 {
			return invalid("unit! takes only the variable")
		}
		v.UnitInPlace()
		return nil
	},
	"simplify!": func(v *geom.Vector, args []Value) error {
		if len(args) != 0 {
			return invalid("simplify! takes only the variable")
		}
		_, err := v.SimplifyInPlace()
		return err
	},
}

func init() {
	builtins = map[string]builtinFunc{
		"vec": func(s *Session, args []Value) (Value, error) {
			v, err := Construct(s.frame, args...)
			if err != nil {
				return nil, err
			}
			return VectorValue{v}, nil
		},
		"cross": vectorPair(func(a, b geom.Vector) Value { return VectorValue{a.Cross(b)} }),
		"dot":   vectorPair(func(a, b geom.Vector) Value { return Scalar(a.Dot(b)) }),
		"dist":  vectorPair(func(a, b geom.Vector) Value { return Scalar(a.DistTo(b)) }),
		"normal_at?": vectorPair(func(a, b geom.Vector) Value {
			return Bool(a.NormalAt(b))
		}),
		"enclosed_angle": vectorPair(func(a, b geom.Vector) Value {
			return Scalar(a.EnclosedAngle(b))
		}),
		"unit":   oneVector("unit", func(v geom.Vector) Value { return VectorValue{v.Unit()} }),
		"normal": oneVector("normal", func(v geom.Vector) Value { return VectorValue{v.Normal()} }),
		"x":      oneVector("x", func(v geom.Vector) Value { return Scalar(v.X()) }),
		"y":      oneVector("y", func(v geom.Vector) Value { return Scalar(v.Y()) }),
		"m":      oneVector("m", func(v geom.Vector) Value { return Scalar(v.Magnitude()) }),
		"a":      oneVector("a", func(v geom.Vector) Value { return Scalar(v.Angle()) }),
		"simplify": func(s *Session, args []Value) (Value, error) {
			v, err := vectorArg("simplify", args, 1)
			if err != nil {
				return nil, err
			}
			simple, err := v.Simplify()
			if err != nil {
				return nil, err
			}
			return VectorValue{simple}, nil
		},
		"scale": func(s *Session, args []Value) (Value, error) {
			if len(args) == 0 {
				return nil, invalid("scale needs a vector")
			}
			v, err := vectorArg("scale", args[:1], 1)
			if err != nil {
				return nil, err
			}
			sx, sy, err := scaleFactors(args[1:])
			if err != nil {
				return nil, err
			}
			return VectorValue{v.ScaleXY(sx, sy)}, nil
		},
		"limit": func(s *Session, args []Value) (Value, error) {
			if len(args) != 5 {
				return nil, invalid("limit takes a vector and four bounds")
			}
			v, err := vectorArg("limit", args[:1], 1)
			if err != nil {
				return nil, err
			}
			var b [4]float64
			for i, arg := range args[1:] {
				f, ok := arg.(Scalar)
				if !ok {
					return nil, invalid("limit bounds must be numbers, got %s", typeName(arg))
				}
				b[i] = float64(f)
			}
			return VectorValue{v.Limited(b[0], b[1], b[2], b[3])}, nil
		},
		"phase": func(s *Session, args []Value) (Value, error) {
			switch len(args) {
			case 0:
				return Scalar(s.Phase()), nil
			case 1:
				p, ok := args[0].(Scalar)
				if !ok {
					return nil, invalid("phase must be a number, got %s", typeName(args[0]))
				}
				s.SetPhase(float64(p))
				return p, nil
			}
			return nil, invalid("phase takes at most one number")
		},
		"screen": func(s *Session, args []Value) (Value, error) {
			if len(args) != 0 {
				return nil, invalid("screen takes no arguments")
			}
			s.SetPhase(-geom.HalfPi)
			return Scalar(s.Phase()), nil
		},
	}
	builtins["length"] = builtins["m"]
	builtins["magnitude"] = builtins["m"]
	builtins["angle"] = builtins["a"]
	builtins["rubygame"] = builtins["screen"]
}

func vectorArg(name string, args []Value, want int) (geom.Vector, error) {
	if len(args) != want {
		return geom.Vector{}, invalid("%s takes %d vector(s), got %d arguments", name, want, len(args))
	}
	v, ok := args[0].(VectorValue)
	if !ok {
		return geom.Vector{}, invalid("%s needs a vector, got %s", name, typeName(args[0]))
	}
	return v.Vector, nil
}

func oneVector(name string, fn func(geom.Vector) Value) builtinFunc {
	return func(s *Session, args []Value) (Value, error) {
		v, err := vectorArg(name, args, 1)
		if err != nil {
			return nil, err
		}
		return fn(v), nil
	}
}

func vectorPair(fn func(a, b geom.Vector) Value) builtinFunc {
	return func(s *Session, args []Value) (Value, error) {
		if len(args) != 2 {
			return nil, invalid("expected two vectors, got %d arguments", len(args))
		}
		a, oka := args[0].(VectorValue)
		b, okb := args[1].(VectorValue)
		if !oka || !okb {
			return nil, invalid("expected two vectors, got %s and %s", typeName(args[0]), typeName(args[1]))
		}
		return fn(a.Vector, b.Vector), nil
	}
}

// scaleFactors reads sx and an optional sy, which defaults to sx.
func scaleFactors(args []Value) (float64, float64, error) {
	if len(args) != 1 && len(args) != 2 {
		return 0, 0, invalid("scale takes one or two factors, got %d", len(args))
	}
	sx, ok := args[0].(Scalar)
	if !ok {
		return 0, 0, invalid("scale factor must be a number, got %s", typeName(args[0]))
	}
	sy := sx
	if len(args) == 2 {
		if sy, ok = args[1].(Scalar); !ok {
			return 0, 0, invalid("scale factor must be a number, got %s", typeName(args[1]))
		}
	}
	return float64(sx), float64(sy), nil
}
