package wire

import (
	"fmt"

	"VecKit/core/geom"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

// ToStruct describes v with both of its views and its frame phase.
func ToStruct(v geom.Vector) (*structpb.Struct, error) {
	return structpb.NewStruct(map[string]any{
		"x":         v.X(),
		"y":         v.Y(),
		"magnitude": v.Magnitude(),
		"angle":     v.Angle(),
		"phase":     v.Frame().Phase(),
	})
}

// FromStruct rebuilds a vector from x, y and an optional phase.
// The polar fields are derived and ignored.
func FromStruct(s *structpb.Struct) (geom.Vector, error) {
	fields := s.GetFields()
	number := func(key string, required bool) (float64, error) {
		val, ok := fields[key]
		if !ok {
			if required {
				return 0, fmt.Errorf("%w: missing %q", ErrMalformed, key)
			}
			return 0, nil
		}
		if _, ok := val.GetKind().(*structpb.Value_NumberValue); !ok {
			return 0, fmt.Errorf("%w: %q is not a number", ErrMalformed, key)
		}
		return val.GetNumberValue(), nil
	}

	x, err := number("x", true)
	if err != nil {
		return geom.Vector{}, err
	}
	y, err := number("y", true)
	if err != nil {
		return geom.Vector{}, err
	}
	phase, err := number("phase", false)
	if err != nil {
		return geom.Vector{}, err
	}

	if phase == 0 {
		return geom.FromCartesian(x, y), nil
	}
	return geom.NewFrame(phase).Cartesian(x, y), nil
}

func MarshalJSON(v geom.Vector) ([]byte, error) {
	s, err := ToStruct(v)
	if err != nil {
		return nil, err
	}
	return protojson.Marshal(s)
}

func UnmarshalJSON(data []byte) (geom.Vector, error) {
	s := &structpb.Struct{}
	if err := protojson.Unmarshal(data, s); err != nil {
		return geom.Vector{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return FromStruct(s)
}
