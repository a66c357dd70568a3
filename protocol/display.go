package protocol

import (
	"fmt"
)

// Display and color-scale commands share the one-line wire syntax with the
// draw family but take no coordinates, so they are built as plain lines
// rather than Command values.

// Materials toggles material rendering for drawn primitives.
func Materials(on bool) []byte {
	if on {
		return []byte("draw materials on")
	}

	return []byte("draw materials off")
}

// Material selects the material used for drawn primitives, e.g. "HardPlastic".
func Material(name string) []byte {
	return []byte(fmt.Sprintf("draw material %q", name))
}

// ColorChangeRGB redefines a single color id. Components are clamped by VMD
// to [0,1] and are written with three decimals, which is what VMD's own
// scripts do.
func ColorChangeRGB(id int, r, g, b float64) ([]byte, error) {
	if id < 0 {
		return nil, fmt.Errorf("id %d: %w", id, ErrBadColor)
	}

	for _, c := range []float64{r, g, b} {
		if err := validFinite("component", c); err != nil {
			return nil, err
		}
	}

	return []byte(fmt.Sprintf("color change rgb %d %0.3f %0.3f %0.3f", id, r, g, b)), nil
}

// ColorScaleMethod selects one of VMD's built in color scales ("RGB",
// "GWR", ...). Resetting to "RGB" restores the stock scale.
func ColorScaleMethod(method string) []byte {
	return []byte("color scale method " + method)
}

func AxesOff() []byte {
	return []byte("axes location off")
}

func ProjectionOrthographic() []byte {
	return []byte("display projection orthographic")
}

func Resize(w, h int) ([]byte, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("display size %dx%d: %w", w, h, ErrNegativeSize)
	}

	return []byte(fmt.Sprintf("display resize %d %d", w, h)), nil
}

func ResetView() []byte {
	return []byte("display resetview")
}

func ScaleBy(f float64) ([]byte, error) {
	if err := validSize("scale", f); err != nil {
		return nil, err
	}

	b := append([]byte("scale by "), appendFloat(nil, f)...)
	return b, nil
}

// RenderTachyon renders the current scene with the external Tachyon ray
// tracer, writing PREFIX.dat then PREFIX.dat.tga.
func RenderTachyon(prefix, tachyonBin string) []byte {
	return []byte(fmt.Sprintf(
		"render Tachyon %s.dat %q -aasamples 12 %%s -format TARGA -o %%s.tga",
		prefix, tachyonBin))
}

// Exit asks the VMD process to quit.
func Exit() []byte {
	return []byte("exit")
}
