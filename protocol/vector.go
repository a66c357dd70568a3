package protocol

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

var (
	// ErrInvalidArgument is the parent of every validation failure. Callers
	// can match the whole family with errors.Is(err, ErrInvalidArgument).
	ErrInvalidArgument = errors.New("Invalid argument")

	ErrNotFinite    = fmt.Errorf("Coordinate is not a finite number: %w", ErrInvalidArgument)
	ErrNegativeSize = fmt.Errorf("Size must not be negative: %w", ErrInvalidArgument)
	ErrBadColor     = fmt.Errorf("Color must be a non-negative id or a VMD color name: %w", ErrInvalidArgument)
)

// Vector is a fixed-arity 3-D coordinate. VMD writes these as Tcl brace
// groups, e.g. `{1 2 3}`.
type Vector [3]float64

// V builds a Vector from its components.
func V(x, y, z float64) Vector {
	return Vector{x, y, z}
}

// Validate returns ErrNotFinite if any component is NaN or infinite.
func (v Vector) Validate() error {
	for _, c := range v {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return fmt.Errorf("%v: %w", v, ErrNotFinite)
		}
	}

	return nil
}

func (v Vector) String() string {
	return string(v.appendTo(nil))
}

// appendTo appends the brace-group form of v to b.
func (v Vector) appendTo(b []byte) []byte {
	b = append(b, '{')
	b = appendFloat(b, v[0])
	b = append(b, ' ')
	b = appendFloat(b, v[1])
	b = append(b, ' ')
	b = appendFloat(b, v[2])
	return append(b, '}')
}

// appendFloat writes the shortest decimal form that parses back to exactly
// the same float64.
func appendFloat(b []byte, f float64) []byte {
	return strconv.AppendFloat(b, f, 'g', -1, 64)
}

func appendInt(b []byte, i int) []byte {
	return strconv.AppendInt(b, int64(i), 10)
}

func validFinite(name string, f float64) error {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("%s %v: %w", name, f, ErrNotFinite)
	}

	return nil
}

func validSize(name string, f float64) error {
	if err := validFinite(name, f); err != nil {
		return err
	}

	if f < 0 {
		return fmt.Errorf("%s %v: %w", name, f, ErrNegativeSize)
	}

	return nil
}
