package protocol_test

import (
	"errors"
	"math"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/hockyg/vmdstream/protocol"
)

var _ = Describe("Commands", func() {
	Describe("PointCommand", func() {
		It("serialises to a single draw point line", func() {
			cmd := &protocol.PointCommand{At: protocol.V(1.0, 2.0, 3.0)}
			Expect(cmd.Line()).To(Equal([]byte("draw point {1 2 3}")))
		})

		It("keeps full float precision", func() {
			cmd := &protocol.PointCommand{At: protocol.V(0.1, -2.25, 1e-9)}
			Expect(cmd.Line()).To(Equal([]byte("draw point {0.1 -2.25 1e-09}")))
		})

		It("rejects non-finite coordinates", func() {
			cmd := &protocol.PointCommand{At: protocol.V(math.NaN(), 0, 0)}
			_, err := cmd.Line()
			Expect(errors.Is(err, protocol.ErrNotFinite)).To(BeTrue())
			Expect(errors.Is(err, protocol.ErrInvalidArgument)).To(BeTrue())

			cmd = &protocol.PointCommand{At: protocol.V(0, math.Inf(1), 0)}
			_, err = cmd.Line()
			Expect(errors.Is(err, protocol.ErrNotFinite)).To(BeTrue())
		})
	})

	Describe("LineCommand", func() {
		It("encodes both endpoints in order on one line", func() {
			cmd := &protocol.LineCommand{
				From: protocol.V(0, 0, 0),
				To:   protocol.V(1, 1, 1),
			}
			Expect(cmd.Line()).To(Equal([]byte("draw line {0 0 0} {1 1 1}")))
		})

		It("appends width and style when a width is set", func() {
			cmd := &protocol.LineCommand{
				From:  protocol.V(0, 0, 0),
				To:    protocol.V(1, 1, 1),
				Width: 3,
			}
			Expect(cmd.Line()).To(Equal([]byte("draw line {0 0 0} {1 1 1} width 3 style solid")))
		})

		It("rejects a negative width", func() {
			cmd := &protocol.LineCommand{
				From:  protocol.V(0, 0, 0),
				To:    protocol.V(1, 1, 1),
				Width: -1,
			}
			_, err := cmd.Line()
			Expect(errors.Is(err, protocol.ErrNegativeSize)).To(BeTrue())
		})
	})

	Describe("SphereCommand", func() {
		It("serialises center and radius", func() {
			cmd := &protocol.SphereCommand{Center: protocol.V(0, 0, 0), Radius: 2.0}
			Expect(cmd.Line()).To(Equal([]byte("draw sphere {0 0 0} radius 2")))
		})

		It("appends the resolution when set", func() {
			cmd := &protocol.SphereCommand{
				Center:     protocol.V(1.5, 0, -1),
				Radius:     0.5,
				Resolution: 30,
			}
			Expect(cmd.Line()).To(Equal([]byte("draw sphere {1.5 0 -1} radius 0.5 resolution 30")))
		})

		It("rejects a negative radius", func() {
			cmd := &protocol.SphereCommand{Center: protocol.V(0, 0, 0), Radius: -0.5}
			_, err := cmd.Line()
			Expect(errors.Is(err, protocol.ErrNegativeSize)).To(BeTrue())
		})
	})

	Describe("CylinderCommand", func() {
		It("serialises endpoints, radius, resolution and fill", func() {
			cmd := &protocol.CylinderCommand{
				From:       protocol.V(0, 0, 0),
				To:         protocol.V(0, 0, 1),
				Radius:     0.25,
				Resolution: 30,
				Filled:     true,
			}
			Expect(cmd.Line()).To(Equal(
				[]byte("draw cylinder {0 0 0} {0 0 1} radius 0.25 resolution 30 filled yes")))
		})
	})

	Describe("TriangleCommand", func() {
		It("serialises the three corners in order", func() {
			cmd := &protocol.TriangleCommand{
				A: protocol.V(0, 0, 0),
				B: protocol.V(1, 0, 0),
				C: protocol.V(0, 1, 0),
			}
			Expect(cmd.Line()).To(Equal([]byte("draw triangle {0 0 0} {1 0 0} {0 1 0}")))
		})
	})

	Describe("TextCommand", func() {
		It("quotes the text", func() {
			cmd := &protocol.TextCommand{At: protocol.V(0, 0, 0), Text: "hello vmd"}
			Expect(cmd.Line()).To(Equal([]byte(`draw text {0 0 0} "hello vmd"`)))
		})

		It("appends the size when set", func() {
			cmd := &protocol.TextCommand{At: protocol.V(0, 0, 0), Text: "x", Size: 2}
			Expect(cmd.Line()).To(Equal([]byte(`draw text {0 0 0} "x" size 2`)))
		})
	})

	Describe("ColorCommand", func() {
		It("serialises a numeric color id", func() {
			cmd := &protocol.ColorCommand{Color: protocol.ColorID(4)}
			Expect(cmd.Line()).To(Equal([]byte("draw color 4")))
		})

		It("serialises a named color", func() {
			cmd := &protocol.ColorCommand{Color: protocol.ColorName("red")}
			Expect(cmd.Line()).To(Equal([]byte("draw color red")))
		})

		It("rejects negative color ids", func() {
			cmd := &protocol.ColorCommand{Color: protocol.ColorID(-1)}
			_, err := cmd.Line()
			Expect(errors.Is(err, protocol.ErrBadColor)).To(BeTrue())
		})
	})

	Describe("DeleteAllCommand", func() {
		It("serialises to draw delete all", func() {
			cmd := &protocol.DeleteAllCommand{}
			Expect(cmd.Line()).To(Equal([]byte("draw delete all")))
		})
	})

	Describe("display helpers", func() {
		It("builds color change rgb lines with three decimals", func() {
			line, err := protocol.ColorChangeRGB(33, 0, 0, 0.5161)
			Expect(err).To(Succeed())
			Expect(string(line)).To(Equal("color change rgb 33 0.000 0.000 0.516"))
		})

		It("rejects negative color ids for color change rgb", func() {
			_, err := protocol.ColorChangeRGB(-1, 0, 0, 0)
			Expect(errors.Is(err, protocol.ErrBadColor)).To(BeTrue())
		})

		It("builds display lines", func() {
			Expect(string(protocol.AxesOff())).To(Equal("axes location off"))
			Expect(string(protocol.ProjectionOrthographic())).To(Equal("display projection orthographic"))
			Expect(string(protocol.ResetView())).To(Equal("display resetview"))
			Expect(string(protocol.ColorScaleMethod("RGB"))).To(Equal("color scale method RGB"))
			Expect(string(protocol.Materials(true))).To(Equal("draw materials on"))
			Expect(string(protocol.Material("HardPlastic"))).To(Equal(`draw material "HardPlastic"`))
			Expect(string(protocol.Exit())).To(Equal("exit"))

			line, err := protocol.Resize(800, 800)
			Expect(err).To(Succeed())
			Expect(string(line)).To(Equal("display resize 800 800"))

			line, err = protocol.ScaleBy(1.3)
			Expect(err).To(Succeed())
			Expect(string(line)).To(Equal("scale by 1.3"))
		})
	})
})
