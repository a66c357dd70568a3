package protocol

// Kind names a drawing primitive within the `draw` command family.
type Kind string

const (
	KindPoint     Kind = "point"
	KindLine      Kind = "line"
	KindSphere    Kind = "sphere"
	KindCylinder  Kind = "cylinder"
	KindTriangle  Kind = "triangle"
	KindText      Kind = "text"
	KindColor     Kind = "color"
	KindDeleteAll Kind = "delete"
)

// Command is a single drawing instruction. It is ephemeral, a command is
// built, serialised into exactly one wire line and discarded.
type Command interface {
	GetKind() Kind

	// Line validates the command's arguments and returns its wire form
	// without the trailing newline. Invalid arguments surface as errors
	// matching ErrInvalidArgument.
	Line() ([]byte, error)
}

type PointCommand struct {
	At Vector
}

func (c *PointCommand) GetKind() Kind {
	return KindPoint
}

func (c *PointCommand) Line() ([]byte, error) {
	if err := c.At.Validate(); err != nil {
		return nil, err
	}

	b := append([]byte("draw point "), c.At.appendTo(nil)...)
	return b, nil
}

type LineCommand struct {
	From Vector
	To   Vector

	// Width of 0 leaves the width token out and VMD uses its default.
	Width float64
}

func (c *LineCommand) GetKind() Kind {
	return KindLine
}

func (c *LineCommand) Line() ([]byte, error) {
	if err := c.From.Validate(); err != nil {
		return nil, err
	}
	if err := c.To.Validate(); err != nil {
		return nil, err
	}
	if err := validSize("width", c.Width); err != nil {
		return nil, err
	}

	b := []byte("draw line ")
	b = c.From.appendTo(b)
	b = append(b, ' ')
	b = c.To.appendTo(b)

	if c.Width > 0 {
		b = append(b, " width "...)
		b = appendFloat(b, c.Width)
		b = append(b, " style solid"...)
	}

	return b, nil
}

type SphereCommand struct {
	Center Vector
	Radius float64

	// Resolution of 0 leaves the resolution token out.
	Resolution int
}

func (c *SphereCommand) GetKind() Kind {
	return KindSphere
}

func (c *SphereCommand) Line() ([]byte, error) {
	if err := c.Center.Validate(); err != nil {
		return nil, err
	}
	if err := validSize("radius", c.Radius); err != nil {
		return nil, err
	}

	b := []byte("draw sphere ")
	b = c.Center.appendTo(b)
	b = append(b, " radius "...)
	b = appendFloat(b, c.Radius)

	if c.Resolution > 0 {
		b = append(b, " resolution "...)
		b = appendInt(b, c.Resolution)
	}

	return b, nil
}

type CylinderCommand struct {
	From   Vector
	To     Vector
	Radius float64

	Resolution int
	Filled     bool
}

func (c *CylinderCommand) GetKind() Kind {
	return KindCylinder
}

func (c *CylinderCommand) Line() ([]byte, error) {
	if err := c.From.Validate(); err != nil {
		return nil, err
	}
	if err := c.To.Validate(); err != nil {
		return nil, err
	}
	if err := validSize("radius", c.Radius); err != nil {
		return nil, err
	}

	b := []byte("draw cylinder ")
	b = c.From.appendTo(b)
	b = append(b, ' ')
	b = c.To.appendTo(b)
	b = append(b, " radius "...)
	b = appendFloat(b, c.Radius)

	if c.Resolution > 0 {
		b = append(b, " resolution "...)
		b = appendInt(b, c.Resolution)
	}

	if c.Filled {
		b = append(b, " filled yes"...)
	}

	return b, nil
}

type TriangleCommand struct {
	A Vector
	B Vector
	C Vector
}

func (c *TriangleCommand) GetKind() Kind {
	return KindTriangle
}

func (c *TriangleCommand) Line() ([]byte, error) {
	for _, v := range []Vector{c.A, c.B, c.C} {
		if err := v.Validate(); err != nil {
			return nil, err
		}
	}

	b := []byte("draw triangle ")
	b = c.A.appendTo(b)
	b = append(b, ' ')
	b = c.B.appendTo(b)
	b = append(b, ' ')
	b = c.C.appendTo(b)

	return b, nil
}

type TextCommand struct {
	At   Vector
	Text string

	// Size of 0 leaves the size token out.
	Size float64
}

func (c *TextCommand) GetKind() Kind {
	return KindText
}

func (c *TextCommand) Line() ([]byte, error) {
	if err := c.At.Validate(); err != nil {
		return nil, err
	}
	if err := validSize("size", c.Size); err != nil {
		return nil, err
	}

	b := []byte("draw text ")
	b = c.At.appendTo(b)
	b = append(b, ' ', '"')
	b = append(b, c.Text...)
	b = append(b, '"')

	if c.Size > 0 {
		b = append(b, " size "...)
		b = appendFloat(b, c.Size)
	}

	return b, nil
}

// ColorCommand sets the pen for every subsequent primitive.
type ColorCommand struct {
	Color Color
}

func (c *ColorCommand) GetKind() Kind {
	return KindColor
}

func (c *ColorCommand) Line() ([]byte, error) {
	if err := c.Color.Validate(); err != nil {
		return nil, err
	}

	return c.Color.appendTo([]byte("draw color ")), nil
}

// DeleteAllCommand removes every drawn primitive from the top molecule.
type DeleteAllCommand struct{}

func (c *DeleteAllCommand) GetKind() Kind {
	return KindDeleteAll
}

func (c *DeleteAllCommand) Line() ([]byte, error) {
	return []byte("draw delete all"), nil
}

var _ Command = (*PointCommand)(nil)
var _ Command = (*LineCommand)(nil)
var _ Command = (*SphereCommand)(nil)
var _ Command = (*CylinderCommand)(nil)
var _ Command = (*TriangleCommand)(nil)
var _ Command = (*TextCommand)(nil)
var _ Command = (*ColorCommand)(nil)
var _ Command = (*DeleteAllCommand)(nil)
