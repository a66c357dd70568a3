package xyz_test

import (
	"errors"
	"io"
	"strings"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/hockyg/vmdstream/protocol"
	"github.com/hockyg/vmdstream/xyz"
)

const sample = `3 frame one
1 A 0.0 0.0 0.0
2 B 1.0 0.0 0.0
3 A 0.0 1.0 0.0
10.0 10.0 10.0
3 frame two
1 A 0.5 0.0 0.0
2 B 1.5 0.0 0.0
3 A 0.5 1.0 0.0
10.0 10.0 10.0
`

var _ = Describe("Read", func() {
	It("reads every frame of a concatenated trajectory", func() {
		traj, err := xyz.Read(strings.NewReader(sample))
		Expect(err).To(Succeed())

		Expect(traj.Frames).To(HaveLen(2))
		Expect(traj.TypeLabels).To(Equal([]string{"A", "B"}))

		first := traj.Frames[0]
		Expect(first.Coords).To(Equal([]protocol.Vector{
			protocol.V(0, 0, 0),
			protocol.V(1, 0, 0),
			protocol.V(0, 1, 0),
		}))
		Expect(first.Types).To(Equal([]int{0, 1, 0}))
		Expect(first.Box).To(Equal([3]float64{10, 10, 10}))

		Expect(traj.Frames[1].Coords[0]).To(Equal(protocol.V(0.5, 0, 0)))
	})

	It("keeps type ids stable across frames", func() {
		// Second frame lists B before A, ids must not swap.
		reordered := `2 one
1 A 0 0 0
2 B 1 0 0
5 5 5
2 two
1 B 1 0 0
2 A 0 0 0
5 5 5
`

		traj, err := xyz.Read(strings.NewReader(reordered))
		Expect(err).To(Succeed())
		Expect(traj.Frames[0].Types).To(Equal([]int{0, 1}))
		Expect(traj.Frames[1].Types).To(Equal([]int{1, 0}))
	})

	It("returns an empty trajectory for empty input", func() {
		traj, err := xyz.Read(strings.NewReader(""))
		Expect(err).To(Succeed())
		Expect(traj.Frames).To(BeEmpty())
	})

	It("rejects a malformed header", func() {
		_, err := xyz.Read(strings.NewReader("banana\n"))
		Expect(errors.Is(err, xyz.ErrBadHeader)).To(BeTrue())
	})

	It("rejects a truncated frame", func() {
		_, err := xyz.Read(strings.NewReader("2 frame\n1 A 0 0 0\n"))
		Expect(errors.Is(err, io.ErrUnexpectedEOF)).To(BeTrue())
	})

	It("rejects a malformed atom row", func() {
		_, err := xyz.Read(strings.NewReader("1 frame\n1 A 0 zero 0\n5 5 5\n"))
		Expect(errors.Is(err, xyz.ErrBadAtom)).To(BeTrue())
	})

	It("rejects a malformed box row", func() {
		_, err := xyz.Read(strings.NewReader("1 frame\n1 A 0 0 0\n5 5\n"))
		Expect(errors.Is(err, xyz.ErrBadBox)).To(BeTrue())
	})
})
