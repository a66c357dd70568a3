package protocol_test

import (
	"bytes"
	"errors"
	"io"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/hockyg/vmdstream/protocol"
)

var _ = Describe("Parsing", func() {
	Describe("ReadCommand()", func() {
		It("returns an error if the reader cannot find a newline", func() {
			data := bytes.NewReader([]byte("I have no new line"))
			_, err := protocol.ReadCommand(data)
			Expect(err).To(MatchError(io.EOF))
		})

		It("parses a terminated draw line", func() {
			data := bytes.NewReader([]byte("draw delete all\n"))
			cmd, err := protocol.ReadCommand(data)
			Expect(err).To(Succeed())
			Expect(cmd.GetKind()).To(Equal(protocol.KindDeleteAll))
		})
	})

	Describe("ParseDraw()", func() {
		It("returns an error for lines outside the draw family", func() {
			_, err := protocol.ParseDraw([]byte("display resetview"))
			Expect(errors.Is(err, protocol.ErrNotDrawCommand)).To(BeTrue())
		})

		It("returns an error for unknown primitives", func() {
			_, err := protocol.ParseDraw([]byte("draw dodecahedron {0 0 0}"))
			Expect(errors.Is(err, protocol.ErrUnknownCommand)).To(BeTrue())
		})

		It("parses a valid point command", func() {
			cmd, err := protocol.ParseDraw([]byte("draw point {1 2 3}\n"))
			Expect(err).To(Succeed())

			point, ok := cmd.(*protocol.PointCommand)
			Expect(ok).To(BeTrue())
			Expect(point.At).To(Equal(protocol.V(1, 2, 3)))
		})

		It("rejects a point with a malformed coordinate", func() {
			_, err := protocol.ParseDraw([]byte("draw point {1 2}"))
			Expect(errors.Is(err, protocol.ErrMalformedVector)).To(BeTrue())

			_, err = protocol.ParseDraw([]byte("draw point {1 2 banana}"))
			Expect(errors.Is(err, protocol.ErrMalformedVector)).To(BeTrue())

			_, err = protocol.ParseDraw([]byte("draw point {1 2 3"))
			Expect(errors.Is(err, protocol.ErrMalformedVector)).To(BeTrue())
		})

		It("parses a valid line command with attributes", func() {
			cmd, err := protocol.ParseDraw([]byte("draw line {0 0 0} {1 1 1} width 3 style solid"))
			Expect(err).To(Succeed())

			line, ok := cmd.(*protocol.LineCommand)
			Expect(ok).To(BeTrue())
			Expect(line.From).To(Equal(protocol.V(0, 0, 0)))
			Expect(line.To).To(Equal(protocol.V(1, 1, 1)))
			Expect(line.Width).To(Equal(3.0))
		})

		It("parses a valid sphere command", func() {
			cmd, err := protocol.ParseDraw([]byte("draw sphere {1.5 0 -1} radius 0.5 resolution 30"))
			Expect(err).To(Succeed())

			sphere, ok := cmd.(*protocol.SphereCommand)
			Expect(ok).To(BeTrue())
			Expect(sphere.Center).To(Equal(protocol.V(1.5, 0, -1)))
			Expect(sphere.Radius).To(Equal(0.5))
			Expect(sphere.Resolution).To(Equal(30))
		})

		It("parses a valid cylinder command", func() {
			cmd, err := protocol.ParseDraw(
				[]byte("draw cylinder {0 0 0} {0 0 1} radius 0.25 resolution 30 filled yes"))
			Expect(err).To(Succeed())

			cyl, ok := cmd.(*protocol.CylinderCommand)
			Expect(ok).To(BeTrue())
			Expect(cyl.Radius).To(Equal(0.25))
			Expect(cyl.Filled).To(BeTrue())
		})

		It("parses numeric and named colors", func() {
			cmd, err := protocol.ParseDraw([]byte("draw color 4"))
			Expect(err).To(Succeed())
			Expect(cmd.(*protocol.ColorCommand).Color).To(Equal(protocol.ColorID(4)))

			cmd, err = protocol.ParseDraw([]byte("draw color red"))
			Expect(err).To(Succeed())
			Expect(cmd.(*protocol.ColorCommand).Color).To(Equal(protocol.ColorName("red")))
		})

		It("rejects a dangling attribute keyword", func() {
			_, err := protocol.ParseDraw([]byte("draw sphere {0 0 0} radius"))
			Expect(errors.Is(err, protocol.ErrMalformedAttr)).To(BeTrue())
		})
	})

	Describe("round trips", func() {
		It("parses a formatted point back to the identical triple", func() {
			for _, at := range []protocol.Vector{
				protocol.V(1.0, 2.0, 3.0),
				protocol.V(0.1, -2.25, 1e-9),
				protocol.V(-1234.5678, 3.14159265358979, 0),
			} {
				line, err := (&protocol.PointCommand{At: at}).Line()
				Expect(err).To(Succeed())

				cmd, err := protocol.ParseDraw(line)
				Expect(err).To(Succeed())
				Expect(cmd.(*protocol.PointCommand).At).To(Equal(at))
			}
		})

		It("parses a formatted sphere back unchanged", func() {
			in := &protocol.SphereCommand{
				Center:     protocol.V(0.25, -0.5, 12.125),
				Radius:     0.45,
				Resolution: 30,
			}

			line, err := in.Line()
			Expect(err).To(Succeed())

			out, err := protocol.ParseDraw(line)
			Expect(err).To(Succeed())
			Expect(out).To(Equal(in))
		})
	})
})
