package protocol_test

import (
	"bytes"
	"errors"
	"math"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/hockyg/vmdstream/protocol"
)

var _ = Describe("Writer", func() {
	Describe("WriteCommand", func() {
		It("writes exactly one terminated line", func() {
			w := bytes.NewBuffer([]byte{})

			cmd := &protocol.PointCommand{At: protocol.V(1, 2, 3)}
			Expect(protocol.WriteCommand(w, cmd)).To(Succeed())
			Expect(w.String()).To(Equal("draw point {1 2 3}\n"))
		})

		It("writes nothing when the command is invalid", func() {
			w := bytes.NewBuffer([]byte{})

			cmd := &protocol.PointCommand{At: protocol.V(math.NaN(), 0, 0)}
			err := protocol.WriteCommand(w, cmd)
			Expect(errors.Is(err, protocol.ErrInvalidArgument)).To(BeTrue())
			Expect(w.Len()).To(Equal(0))
		})
	})

	Describe("WriteLine", func() {
		It("appends the terminator", func() {
			w := bytes.NewBuffer([]byte{})

			Expect(protocol.WriteLine(w, []byte("display resetview"))).To(Succeed())
			Expect(w.String()).To(Equal("display resetview\n"))
		})
	})

	Describe("WriteRaw", func() {
		It("writes the text verbatim plus the terminator", func() {
			w := bytes.NewBuffer([]byte{})

			Expect(protocol.WriteRaw(w, "arbitrary text")).To(Succeed())
			Expect(w.String()).To(Equal("arbitrary text\n"))
		})

		It("does not double the terminator", func() {
			w := bytes.NewBuffer([]byte{})

			Expect(protocol.WriteRaw(w, "mol new waterbox.pdb\n")).To(Succeed())
			Expect(w.String()).To(Equal("mol new waterbox.pdb\n"))
		})
	})
})
