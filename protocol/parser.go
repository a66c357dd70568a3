package protocol

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
)

var (
	ErrUnknownCommand  = errors.New("Unknown command could not be parsed")
	ErrNotDrawCommand  = errors.New("Line is not a draw command")
	ErrMalformedVector = errors.New("Coordinate is malformed, expected a brace group of three numbers")
	ErrMalformedAttr   = errors.New("Attribute is malformed, expected a keyword followed by a value")

	prefixDraw = []byte("draw")
)

// ReadCommand reads one line from the provided Reader and parses it as a
// draw command.
//
// To avoid unbounded buffering, the provided Reader should be wrapped in an
// io.LimitReader or similar when reading from an untrusted peer.
func ReadCommand(data io.Reader) (Command, error) {
	r := bufio.NewReader(data)

	line, err := r.ReadBytes('\n')
	if err != nil {
		return nil, err
	}

	return ParseDraw(line)
}

// ParseDraw parses a single wire line from the draw family back into a typed
// Command. It is the inverse of Command.Line for every primitive this
// package can serialise.
func ParseDraw(line []byte) (Command, error) {
	line = bytes.TrimRight(line, "\r\n")

	tokens, err := splitTokens(line)
	if err != nil {
		return nil, err
	}

	if len(tokens) < 2 || !bytes.Equal(tokens[0], prefixDraw) {
		return nil, fmt.Errorf("Failed to parse '%s': %w", string(line), ErrNotDrawCommand)
	}

	kind := Kind(tokens[1])
	args := tokens[2:]

	switch kind {
	case KindPoint:
		if len(args) != 1 {
			return nil, malformed(line, ErrMalformedVector)
		}

		at, err := parseVector(args[0])
		if err != nil {
			return nil, malformed(line, err)
		}

		return &PointCommand{At: at}, nil

	case KindLine:
		if len(args) < 2 {
			return nil, malformed(line, ErrMalformedVector)
		}

		from, err := parseVector(args[0])
		if err != nil {
			return nil, malformed(line, err)
		}

		to, err := parseVector(args[1])
		if err != nil {
			return nil, malformed(line, err)
		}

		cmd := &LineCommand{From: from, To: to}

		attrs, err := parseAttrs(args[2:])
		if err != nil {
			return nil, malformed(line, err)
		}

		if w, ok := attrs["width"]; ok {
			if cmd.Width, err = strconv.ParseFloat(w, 64); err != nil {
				return nil, malformed(line, ErrMalformedAttr)
			}
		}

		return cmd, nil

	case KindSphere:
		if len(args) < 1 {
			return nil, malformed(line, ErrMalformedVector)
		}

		center, err := parseVector(args[0])
		if err != nil {
			return nil, malformed(line, err)
		}

		cmd := &SphereCommand{Center: center}

		attrs, err := parseAttrs(args[1:])
		if err != nil {
			return nil, malformed(line, err)
		}

		if r, ok := attrs["radius"]; ok {
			if cmd.Radius, err = strconv.ParseFloat(r, 64); err != nil {
				return nil, malformed(line, ErrMalformedAttr)
			}
		}

		if res, ok := attrs["resolution"]; ok {
			if cmd.Resolution, err = strconv.Atoi(res); err != nil {
				return nil, malformed(line, ErrMalformedAttr)
			}
		}

		return cmd, nil

	case KindCylinder:
		if len(args) < 2 {
			return nil, malformed(line, ErrMalformedVector)
		}

		from, err := parseVector(args[0])
		if err != nil {
			return nil, malformed(line, err)
		}

		to, err := parseVector(args[1])
		if err != nil {
			return nil, malformed(line, err)
		}

		cmd := &CylinderCommand{From: from, To: to}

		attrs, err := parseAttrs(args[2:])
		if err != nil {
			return nil, malformed(line, err)
		}

		if r, ok := attrs["radius"]; ok {
			if cmd.Radius, err = strconv.ParseFloat(r, 64); err != nil {
				return nil, malformed(line, ErrMalformedAttr)
			}
		}

		if res, ok := attrs["resolution"]; ok {
			if cmd.Resolution, err = strconv.Atoi(res); err != nil {
				return nil, malformed(line, ErrMalformedAttr)
			}
		}

		cmd.Filled = attrs["filled"] == "yes"

		return cmd, nil

	case KindTriangle:
		if len(args) != 3 {
			return nil, malformed(line, ErrMalformedVector)
		}

		var vs [3]Vector
		for i, arg := range args {
			if vs[i], err = parseVector(arg); err != nil {
				return nil, malformed(line, err)
			}
		}

		return &TriangleCommand{A: vs[0], B: vs[1], C: vs[2]}, nil

	case KindColor:
		if len(args) != 1 {
			return nil, malformed(line, ErrMalformedAttr)
		}

		if id, err := strconv.Atoi(string(args[0])); err == nil {
			return &ColorCommand{Color: ColorID(id)}, nil
		}

		return &ColorCommand{Color: ColorName(string(args[0]))}, nil

	case KindDeleteAll:
		if len(args) != 1 || string(args[0]) != "all" {
			return nil, malformed(line, ErrUnknownCommand)
		}

		return &DeleteAllCommand{}, nil

	default:
		return nil, malformed(line, ErrUnknownCommand)
	}
}

func malformed(line []byte, err error) error {
	return fmt.Errorf("Failed to parse '%s': %w", string(line), err)
}

// splitTokens splits a line on spaces, keeping each `{...}` brace group
// together as one token.
func splitTokens(line []byte) ([][]byte, error) {
	var tokens [][]byte

	for i := 0; i < len(line); {
		switch line[i] {
		case ' ':
			i++

		case '{':
			end := bytes.IndexByte(line[i:], '}')
			if end < 0 {
				return nil, ErrMalformedVector
			}

			tokens = append(tokens, line[i:i+end+1])
			i += end + 1

		default:
			end := bytes.IndexByte(line[i:], ' ')
			if end < 0 {
				tokens = append(tokens, line[i:])
				i = len(line)
				break
			}

			tokens = append(tokens, line[i:i+end])
			i += end
		}
	}

	return tokens, nil
}

// parseVector parses a `{x y z}` brace group.
func parseVector(token []byte) (Vector, error) {
	var v Vector

	if len(token) < 2 || token[0] != '{' || token[len(token)-1] != '}' {
		return v, ErrMalformedVector
	}

	fields := bytes.Fields(token[1 : len(token)-1])
	if len(fields) != 3 {
		return v, ErrMalformedVector
	}

	for i, f := range fields {
		c, err := strconv.ParseFloat(string(f), 64)
		if err != nil {
			return v, ErrMalformedVector
		}

		v[i] = c
	}

	return v, nil
}

// parseAttrs reads trailing `keyword value` pairs, e.g. `radius 0.5
// resolution 30 filled yes`. The `style` keyword's value is accepted and
// ignored as VMD only supports solid lines here.
func parseAttrs(tokens [][]byte) (map[string]string, error) {
	attrs := make(map[string]string, len(tokens)/2)

	if len(tokens)%2 != 0 {
		return nil, ErrMalformedAttr
	}

	for i := 0; i < len(tokens); i += 2 {
		attrs[string(tokens[i])] = string(tokens[i+1])
	}

	return attrs, nil
}
