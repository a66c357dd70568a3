package protocol

import (
	"fmt"
	"strconv"
)

// Hard coded values from VMD 1.9. Ids 0 to StartColorID-1 are the fixed
// named colors, ids StartColorID to StartColorID+NumScaleColors-1 make up
// the color scale.
const (
	StartColorID   = 33
	NumScaleColors = 1024
)

// Color identifies a VMD color, either by numeric id or by name
// (e.g. "red"). The zero value is color id 0 (blue in a stock VMD).
type Color struct {
	ID   int
	Name string
}

// ColorID references a color by numeric id.
func ColorID(id int) Color {
	return Color{ID: id}
}

// ColorName references one of VMD's named colors.
func ColorName(name string) Color {
	return Color{Name: name}
}

// Validate returns ErrBadColor for negative ids. Names are passed through
// verbatim, VMD reports unknown names itself.
func (c Color) Validate() error {
	if c.Name != "" {
		return nil
	}

	if c.ID < 0 {
		return fmt.Errorf("id %d: %w", c.ID, ErrBadColor)
	}

	return nil
}

func (c Color) appendTo(b []byte) []byte {
	if c.Name != "" {
		return append(b, c.Name...)
	}

	return strconv.AppendInt(b, int64(c.ID), 10)
}

func (c Color) String() string {
	return string(c.appendTo(nil))
}
