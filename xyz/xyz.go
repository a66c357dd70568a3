package xyz

// This package reads the simple xyz trajectory format used by the example
// inputs:
//
//   N ANYTHING
//   atomid1 atomtype1 x1 y1 z1
//   ...
//   atomidN atomtypeN xN yN zN
//   Lx Ly Lz
//
// Frames may be concatenated. Atom type labels are arbitrary strings and are
// mapped to dense numeric ids in first seen order, so the ids are stable
// across the frames of one file.

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/hockyg/vmdstream/protocol"
)

var (
	ErrBadHeader = errors.New("Frame header is malformed, expected an atom count")
	ErrBadAtom   = errors.New("Atom row is malformed, expected 'id type x y z'")
	ErrBadBox    = errors.New("Box row is malformed, expected 'Lx Ly Lz'")
)

// Frame is one configuration from a trajectory.
type Frame struct {
	Coords []protocol.Vector

	// Types holds dense numeric atom type ids, one per atom.
	Types []int

	// Box holds the simulation box dimensions.
	Box [3]float64
}

// Trajectory is an ordered series of frames plus the label each numeric
// atom type id was derived from.
type Trajectory struct {
	Frames []Frame

	// TypeLabels maps numeric type id back to the label in the file.
	TypeLabels []string
}

// ReadFile reads a trajectory from path.
func ReadFile(path string) (*Trajectory, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	traj, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return traj, nil
}

// Read reads every frame from r.
func Read(r io.Reader) (*Trajectory, error) {
	scanner := bufio.NewScanner(r)

	traj := &Trajectory{}
	labels := map[string]int{}

	for {
		header, ok := nextLine(scanner)
		if !ok {
			break
		}

		fields := strings.Fields(header)
		if len(fields) == 0 {
			return nil, fmt.Errorf("'%s': %w", header, ErrBadHeader)
		}

		n, err := strconv.Atoi(fields[0])
		if err != nil || n < 0 {
			return nil, fmt.Errorf("'%s': %w", header, ErrBadHeader)
		}

		frame := Frame{
			Coords: make([]protocol.Vector, n),
			Types:  make([]int, n),
		}

		for i := 0; i < n; i++ {
			row, ok := nextLine(scanner)
			if !ok {
				return nil, fmt.Errorf("atom %d of %d: %w", i+1, n, io.ErrUnexpectedEOF)
			}

			fields := strings.Fields(row)
			if len(fields) < 5 {
				return nil, fmt.Errorf("'%s': %w", row, ErrBadAtom)
			}

			for c := 0; c < 3; c++ {
				if frame.Coords[i][c], err = strconv.ParseFloat(fields[2+c], 64); err != nil {
					return nil, fmt.Errorf("'%s': %w", row, ErrBadAtom)
				}
			}

			label := fields[1]

			id, seen := labels[label]
			if !seen {
				id = len(traj.TypeLabels)
				labels[label] = id
				traj.TypeLabels = append(traj.TypeLabels, label)
			}

			frame.Types[i] = id
		}

		box, ok := nextLine(scanner)
		if !ok {
			return nil, fmt.Errorf("box row: %w", io.ErrUnexpectedEOF)
		}

		fields = strings.Fields(box)
		if len(fields) < 3 {
			return nil, fmt.Errorf("'%s': %w", box, ErrBadBox)
		}

		for c := 0; c < 3; c++ {
			if frame.Box[c], err = strconv.ParseFloat(fields[c], 64); err != nil {
				return nil, fmt.Errorf("'%s': %w", box, ErrBadBox)
			}
		}

		traj.Frames = append(traj.Frames, frame)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return traj, nil
}

// nextLine returns the next non-empty line.
func nextLine(scanner *bufio.Scanner) (string, bool) {
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			return line, true
		}
	}

	return "", false
}
