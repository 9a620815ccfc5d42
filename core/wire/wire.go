// Package wire encodes vectors in the protocol buffers wire format:
//
//	message Vector {
//	  double x = 1;
//	  double y = 2;
//	  double phase = 3;
//	}
//
//	message VectorList {
//	  repeated Vector vectors = 1;
//	}
package wire

import (
	"errors"
	"fmt"
	"math"

	"VecKit/core/geom"

	"google.golang.org/protobuf/encoding/protowire"
)

const (
	fieldX     protowire.Number = 1
	fieldY     protowire.Number = 2
	fieldPhase protowire.Number = 3

	fieldVectors protowire.Number = 1
)

var ErrMalformed = errors.New("malformed vector message")

func appendDouble(b []byte, num protowire.Number, f float64) []byte {
	b = protowire.AppendTag(b, num, protowire.Fixed64Type)
	return protowire.AppendFixed64(b, math.Float64bits(f))
}

func appendVector(b []byte, v geom.Vector) []byte {
	// proto3 omits zero scalars; -0 has a sign bit and is kept
	if math.Float64bits(v.X()) != 0 {
		b = appendDouble(b, fieldX, v.X())
	}
	if math.Float64bits(v.Y()) != 0 {
		b = appendDouble(b, fieldY, v.Y())
	}
	if p := v.Frame().Phase(); p != 0 {
		b = appendDouble(b, fieldPhase, p)
	}
	return b
}

// Serialize encodes v, including the phase of its frame.
func Serialize(v geom.Vector) []byte {
	return appendVector(nil, v)
}

// Deserialize decodes a Vector message. A non-zero phase puts the vector in
// a new frame with that phase. Unknown fields are skipped.
func Deserialize(msg []byte) (geom.Vector, error) {
	var x, y, phase float64
	for len(msg) > 0 {
		num, typ, n := protowire.ConsumeTag(msg)
		if n < 0 {
			return geom.Vector{}, fmt.Errorf("%w: %v", ErrMalformed, protowire.ParseError(n))
		}
		msg = msg[n:]

		var dst *float64
		switch num {
		case fieldX:
			dst = &x
		case fieldY:
			dst = &y
		case fieldPhase:
			dst = &phase
		}

		if dst == nil {
			n = protowire.ConsumeFieldValue(num, typ, msg)
		} else {
			if typ != protowire.Fixed64Type {
				return geom.Vector{}, fmt.Errorf("%w: field %d has wire type %d, want fixed64", ErrMalformed, num, typ)
			}
			var bits uint64
			bits, n = protowire.ConsumeFixed64(msg)
			*dst = math.Float64frombits(bits)
		}
		if n < 0 {
			return geom.Vector{}, fmt.Errorf("%w: %v", ErrMalformed, protowire.ParseError(n))
		}
		msg = msg[n:]
	}

	if phase == 0 {
		return geom.FromCartesian(x, y), nil
	}
	return geom.NewFrame(phase).Cartesian(x, y), nil
}

func SerializeList(vs []geom.Vector) []byte {
	var b []byte
	for _, v := range vs {
		b = protowire.AppendTag(b, fieldVectors, protowire.BytesType)
		b = protowire.AppendBytes(b, appendVector(nil, v))
	}
	return b
}

// DeserializeList decodes a VectorList message. Vectors that carried the same
// phase share one frame.
func DeserializeList(msg []byte) ([]geom.Vector, error) {
	var vs []geom.Vector
	frames := make(map[float64]*geom.Frame)
	for len(msg) > 0 {
		num, typ, n := protowire.ConsumeTag(msg)
		if n < 0 {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, protowire.ParseError(n))
		}
		msg = msg[n:]

		if num != fieldVectors {
			n = protowire.ConsumeFieldValue(num, typ, msg)
			if n < 0 {
				return nil, fmt.Errorf("%w: %v", ErrMalformed, protowire.ParseError(n))
			}
			msg = msg[n:]
			continue
		}
		if typ != protowire.BytesType {
			return nil, fmt.Errorf("%w: field %d has wire type %d, want bytes", ErrMalformed, num, typ)
		}

		inner, n := protowire.ConsumeBytes(msg)
		if n < 0 {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, protowire.ParseError(n))
		}
		msg = msg[n:]

		v, err := Deserialize(inner)
		if err != nil {
			return nil, err
		}
		if f := v.Frame(); f != nil {
			shared, ok := frames[f.Phase()]
			if !ok {
				shared = f
				frames[f.Phase()] = f
			}
			v = v.In(shared)
		}
		vs = append(vs, v)
	}
	return vs, nil
}
