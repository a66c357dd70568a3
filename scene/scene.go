package scene

import (
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/hockyg/vmdstream/protocol"
)

var (
	// ErrLengthMismatch is returned when a per-atom attribute slice does not
	// match the number of coordinates.
	ErrLengthMismatch = fmt.Errorf("Attribute length does not match the number of atoms: %w",
		protocol.ErrInvalidArgument)

	// ErrMissingTypes is returned when an option requires atom types that
	// were not provided.
	ErrMissingTypes = fmt.Errorf("Option requires atom types: %w", protocol.ErrInvalidArgument)
)

// Sender is the slice of a client.Stream that Scene needs.
type Sender interface {
	Do(cmd protocol.Command) error
	SendLine(line []byte) error
}

// Atoms describes one configuration of atoms to render. Coords is the only
// required field, everything else styles the rendering per atom or per atom
// type.
type Atoms struct {
	Coords []protocol.Vector

	// Types maps each atom to a numeric atom type, used to index Radii and
	// as the colour when no colour list is given.
	Types []int

	// Radii gives a radius per atom type.
	Radii []float64

	// RadiusList gives a radius per atom, overriding Radii.
	RadiusList []float64

	// ColorIDs gives a colour-scale slot per atom, in the range
	// 0..NumScaleColors-1. The StartColorID offset is applied on the wire.
	ColorIDs []int

	// ColorValues gives a colour per atom as a fraction in [0,1] mapped
	// onto the colour scale. Overrides ColorIDs.
	ColorValues []float64

	// Bonds lists index pairs to connect with cylinders.
	Bonds [][2]int

	// SegmentTypes connects consecutive atoms of any listed type with
	// cylinders.
	SegmentTypes []int
}

func (a *Atoms) validate() error {
	n := len(a.Coords)

	for _, v := range a.Coords {
		if err := v.Validate(); err != nil {
			return err
		}
	}

	if a.Types != nil && len(a.Types) != n {
		return fmt.Errorf("types: %w", ErrLengthMismatch)
	}
	if a.RadiusList != nil && len(a.RadiusList) != n {
		return fmt.Errorf("radius list: %w", ErrLengthMismatch)
	}
	if a.ColorIDs != nil && len(a.ColorIDs) != n {
		return fmt.Errorf("color ids: %w", ErrLengthMismatch)
	}
	if a.ColorValues != nil && len(a.ColorValues) != n {
		return fmt.Errorf("color values: %w", ErrLengthMismatch)
	}

	for _, t := range a.Types {
		if t < 0 {
			return fmt.Errorf("atom type %d: %w", t, protocol.ErrInvalidArgument)
		}

		if a.Radii != nil && t >= len(a.Radii) {
			return fmt.Errorf("atom type %d has no radius, only %d given: %w",
				t, len(a.Radii), protocol.ErrInvalidArgument)
		}
	}

	if a.Radii != nil && a.Types == nil {
		return fmt.Errorf("per-type radii: %w", ErrMissingTypes)
	}
	if a.SegmentTypes != nil && a.Types == nil {
		return fmt.Errorf("connecting segments: %w", ErrMissingTypes)
	}

	for _, b := range a.Bonds {
		if b[0] < 0 || b[0] >= n || b[1] < 0 || b[1] >= n {
			return fmt.Errorf("bond %v out of range: %w", b, protocol.ErrInvalidArgument)
		}
	}

	return nil
}

// Options styles a DrawAtomic call. The zero value gives sensible defaults
// for a bare configuration.
type Options struct {
	// DefaultRadius is used when no per-type or per-atom radius applies.
	// Defaults to 0.5.
	DefaultRadius float64

	// SphereResolution defaults to 30.
	SphereResolution int

	// CylinderRadiusFraction scales bond cylinders relative to the sphere
	// radius. Defaults to 0.5.
	CylinderRadiusFraction float64

	// Material defaults to HardPlastic.
	Material string

	// KeepView skips the resetview/rescale commands after drawing, useful
	// when stepping through trajectory frames under a fixed camera.
	KeepView bool

	// KeepScene skips the initial display setup and delete, drawing on top
	// of whatever is already rendered.
	KeepScene bool
}

func (o Options) withDefaults() Options {
	if o.DefaultRadius == 0 {
		o.DefaultRadius = 0.5
	}
	if o.SphereResolution == 0 {
		o.SphereResolution = 30
	}
	if o.CylinderRadiusFraction == 0 {
		o.CylinderRadiusFraction = 0.5
	}
	if o.Material == "" {
		o.Material = "HardPlastic"
	}

	return o
}

// Scene renders atomic configurations through a command channel.
type Scene struct {
	sender Sender
	log    *zap.Logger
}

// New builds a Scene on top of an open command channel. A nil logger
// disables logging.
func New(sender Sender, log *zap.Logger) *Scene {
	if log == nil {
		log = zap.NewNop()
	}

	return &Scene{sender: sender, log: log}
}

// DrawAtomic renders one configuration: a sphere per atom, cylinders for
// bonds and connecting segments, coloured and sized per the Atoms fields.
func (s *Scene) DrawAtomic(atoms Atoms, opts Options) error {
	if err := atoms.validate(); err != nil {
		return err
	}

	o := opts.withDefaults()

	s.log.Debug("Drawing atomic configuration",
		zap.Int("atoms", len(atoms.Coords)),
		zap.Int("bonds", len(atoms.Bonds)))

	if !o.KeepScene {
		if err := s.setupDisplay(o); err != nil {
			return err
		}
	}

	colorIDs := atoms.ColorIDs
	if atoms.ColorValues != nil {
		colorIDs = make([]int, len(atoms.ColorValues))
		for i, v := range atoms.ColorValues {
			colorIDs[i] = scaleSlot(v)
		}
	}

	for _, bond := range atoms.Bonds {
		i, j := bond[0], bond[1]

		if err := s.setAtomColor(atoms, colorIDs, i); err != nil {
			return err
		}

		radius := atomRadius(atoms, o, i) * o.CylinderRadiusFraction
		if err := s.drawBond(atoms.Coords[i], atoms.Coords[j], radius, o); err != nil {
			return err
		}
	}

	for i, coord := range atoms.Coords {
		if err := s.setAtomColor(atoms, colorIDs, i); err != nil {
			return err
		}

		radius := atomRadius(atoms, o, i)

		err := s.sender.Do(&protocol.SphereCommand{
			Center:     coord,
			Radius:     radius,
			Resolution: o.SphereResolution,
		})
		if err != nil {
			return err
		}

		if i+1 < len(atoms.Coords) && s.segmentAt(atoms, i) {
			err := s.drawBond(coord, atoms.Coords[i+1], radius*o.CylinderRadiusFraction, o)
			if err != nil {
				return err
			}
		}
	}

	if !o.KeepView {
		if err := s.sender.SendLine(protocol.ResetView()); err != nil {
			return err
		}

		line, err := protocol.ScaleBy(1.3)
		if err != nil {
			return err
		}

		if err := s.sender.SendLine(line); err != nil {
			return err
		}
	}

	return nil
}

func (s *Scene) setupDisplay(o Options) error {
	resize, err := protocol.Resize(800, 800)
	if err != nil {
		return err
	}

	for _, line := range [][]byte{
		protocol.AxesOff(),
		protocol.ProjectionOrthographic(),
		resize,
	} {
		if err := s.sender.SendLine(line); err != nil {
			return err
		}
	}

	if err := s.sender.Do(&protocol.DeleteAllCommand{}); err != nil {
		return err
	}

	if err := s.sender.SendLine(protocol.Materials(true)); err != nil {
		return err
	}

	return s.sender.SendLine(protocol.Material(o.Material))
}

// setAtomColor emits a draw color line for atom i when the Atoms carry any
// colour information.
func (s *Scene) setAtomColor(atoms Atoms, colorIDs []int, i int) error {
	switch {
	case colorIDs != nil:
		return s.sender.Do(&protocol.ColorCommand{
			Color: protocol.ColorID(colorIDs[i] + protocol.StartColorID),
		})

	case atoms.Types != nil:
		return s.sender.Do(&protocol.ColorCommand{
			Color: protocol.ColorID(atoms.Types[i]),
		})
	}

	return nil
}

func (s *Scene) drawBond(from, to protocol.Vector, radius float64, o Options) error {
	return s.sender.Do(&protocol.CylinderCommand{
		From:       from,
		To:         to,
		Radius:     radius,
		Resolution: o.SphereResolution,
		Filled:     true,
	})
}

// segmentAt reports whether atoms i and i+1 share a type listed in
// SegmentTypes.
func (s *Scene) segmentAt(atoms Atoms, i int) bool {
	for _, t := range atoms.SegmentTypes {
		if atoms.Types[i] == t && atoms.Types[i+1] == t {
			return true
		}
	}

	return false
}

func atomRadius(atoms Atoms, o Options, i int) float64 {
	switch {
	case atoms.Radii != nil && atoms.Types != nil:
		return atoms.Radii[atoms.Types[i]]

	case atoms.RadiusList != nil:
		return atoms.RadiusList[i]

	default:
		return o.DefaultRadius
	}
}

// scaleSlot maps a fraction in [0,1] to a colour-scale slot, clamping out
// of range values.
func scaleSlot(v float64) int {
	slot := int(math.Floor(v * protocol.NumScaleColors))

	if slot < 0 {
		return 0
	}
	if slot >= protocol.NumScaleColors {
		return protocol.NumScaleColors - 1
	}

	return slot
}

// SetColorScale redefines the colour-scale ids through cmap, so that colour
// values in [0,1] render as cmap's colours.
func (s *Scene) SetColorScale(cmap Colormap) error {
	if cmap == nil {
		return errors.New("nil colormap")
	}

	for i := 0; i < protocol.NumScaleColors; i++ {
		frac := float64(i) / float64(protocol.NumScaleColors)
		r, g, b := cmap(frac)

		line, err := protocol.ColorChangeRGB(protocol.StartColorID+i, r, g, b)
		if err != nil {
			return err
		}

		if err := s.sender.SendLine(line); err != nil {
			return err
		}
	}

	return nil
}

// ResetColorScale restores VMD's stock RGB colour scale.
func (s *Scene) ResetColorScale() error {
	return s.sender.SendLine(protocol.ColorScaleMethod("RGB"))
}

// RenderTachyon renders the current scene with the Tachyon ray tracer into
// prefix.dat.tga. An empty tachyonBin falls back to finding tachyon on the
// PATH.
func (s *Scene) RenderTachyon(prefix, tachyonBin string) error {
	if tachyonBin == "" {
		tachyonBin = "tachyon"
	}

	return s.sender.SendLine(protocol.RenderTachyon(prefix, tachyonBin))
}
