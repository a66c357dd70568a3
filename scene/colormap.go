package scene

// Colormap maps a fraction in [0,1] to red, green and blue components in
// [0,1].
type Colormap func(frac float64) (r, g, b float64)

// Jet is a piecewise linear port of the classic matplotlib jet colormap,
// dark blue through cyan, yellow and red.
func Jet(frac float64) (r, g, b float64) {
	return interp(jetRed, frac), interp(jetGreen, frac), interp(jetBlue, frac)
}

// Grayscale runs linearly from black to white.
func Grayscale(frac float64) (r, g, b float64) {
	frac = clamp01(frac)
	return frac, frac, frac
}

type stop struct {
	at    float64
	value float64
}

// Anchor points from matplotlib's _jet_data.
var (
	jetRed = []stop{
		{0, 0}, {0.35, 0}, {0.66, 1}, {0.89, 1}, {1, 0.5},
	}
	jetGreen = []stop{
		{0, 0}, {0.125, 0}, {0.375, 1}, {0.64, 1}, {0.91, 0}, {1, 0},
	}
	jetBlue = []stop{
		{0, 0.5}, {0.11, 1}, {0.34, 1}, {0.65, 0}, {1, 0},
	}
)

func interp(stops []stop, frac float64) float64 {
	frac = clamp01(frac)

	for i := 1; i < len(stops); i++ {
		if frac > stops[i].at {
			continue
		}

		lo, hi := stops[i-1], stops[i]
		t := (frac - lo.at) / (hi.at - lo.at)
		return lo.value + t*(hi.value-lo.value)
	}

	return stops[len(stops)-1].value
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}

	return f
}
