package client

import (
	"github.com/hockyg/vmdstream/protocol"
)

// setColorOption emits the `draw color` line for a colour option, if one
// was given, before the primitive it styles.
func (s *Stream) setColorOption(o drawOptions) error {
	if o.color == nil {
		return nil
	}

	return s.Do(&protocol.ColorCommand{Color: *o.color})
}

// DrawPoint draws a point. VMD points have no size of their own, so a point
// with WithSize is rendered as a sphere of that radius.
func (s *Stream) DrawPoint(at protocol.Vector, opts ...DrawOption) error {
	o := applyOptions(opts)

	if err := s.setColorOption(o); err != nil {
		return err
	}

	if o.size > 0 {
		return s.Do(&protocol.SphereCommand{Center: at, Radius: o.size, Resolution: o.resolution})
	}

	return s.Do(&protocol.PointCommand{At: at})
}

// DrawLine draws a line between two points.
func (s *Stream) DrawLine(from, to protocol.Vector, opts ...DrawOption) error {
	o := applyOptions(opts)

	if err := s.setColorOption(o); err != nil {
		return err
	}

	return s.Do(&protocol.LineCommand{From: from, To: to, Width: o.width})
}

// DrawSphere draws a sphere.
func (s *Stream) DrawSphere(center protocol.Vector, radius float64, opts ...DrawOption) error {
	o := applyOptions(opts)

	if err := s.setColorOption(o); err != nil {
		return err
	}

	return s.Do(&protocol.SphereCommand{
		Center:     center,
		Radius:     radius,
		Resolution: o.resolution,
	})
}

// DrawCylinder draws a cylinder, filled unless WithUnfilled is given.
func (s *Stream) DrawCylinder(from, to protocol.Vector, radius float64, opts ...DrawOption) error {
	o := applyOptions(opts)

	if err := s.setColorOption(o); err != nil {
		return err
	}

	return s.Do(&protocol.CylinderCommand{
		From:       from,
		To:         to,
		Radius:     radius,
		Resolution: o.resolution,
		Filled:     !o.unfilled,
	})
}

// DrawTriangle draws a filled triangle.
func (s *Stream) DrawTriangle(a, b, c protocol.Vector, opts ...DrawOption) error {
	o := applyOptions(opts)

	if err := s.setColorOption(o); err != nil {
		return err
	}

	return s.Do(&protocol.TriangleCommand{A: a, B: b, C: c})
}

// DrawText draws a text label.
func (s *Stream) DrawText(at protocol.Vector, text string, opts ...DrawOption) error {
	o := applyOptions(opts)

	if err := s.setColorOption(o); err != nil {
		return err
	}

	return s.Do(&protocol.TextCommand{At: at, Text: text, Size: o.size})
}

// SetColor sets the pen for every subsequent primitive.
func (s *Stream) SetColor(c protocol.Color) error {
	return s.Do(&protocol.ColorCommand{Color: c})
}

// Clear deletes every drawn primitive.
func (s *Stream) Clear() error {
	return s.Do(&protocol.DeleteAllCommand{})
}
