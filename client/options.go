package client

import (
	"github.com/hockyg/vmdstream/protocol"
)

// DrawOption adjusts the styling of a single draw call.
type DrawOption func(*drawOptions)

type drawOptions struct {
	color      *protocol.Color
	width      float64
	size       float64
	resolution int
	unfilled   bool
}

// WithColor sets the pen before the primitive is drawn. Because VMD
// primitives never embed their own colour this emits a separate
// `draw color` line ahead of the primitive's line.
func WithColor(c protocol.Color) DrawOption {
	return func(o *drawOptions) {
		o.color = &c
	}
}

// WithColorID is shorthand for WithColor(protocol.ColorID(id)).
func WithColorID(id int) DrawOption {
	return WithColor(protocol.ColorID(id))
}

// WithWidth sets the line width for DrawLine.
func WithWidth(w float64) DrawOption {
	return func(o *drawOptions) {
		o.width = w
	}
}

// WithSize sets the point size for DrawPoint and the text size for DrawText.
func WithSize(s float64) DrawOption {
	return func(o *drawOptions) {
		o.size = s
	}
}

// WithResolution sets the tessellation resolution for DrawSphere and
// DrawCylinder.
func WithResolution(res int) DrawOption {
	return func(o *drawOptions) {
		o.resolution = res
	}
}

// WithUnfilled draws a cylinder as a tube without end caps.
func WithUnfilled() DrawOption {
	return func(o *drawOptions) {
		o.unfilled = true
	}
}

func applyOptions(opts []DrawOption) drawOptions {
	var o drawOptions

	for _, opt := range opts {
		opt(&o)
	}

	return o
}
