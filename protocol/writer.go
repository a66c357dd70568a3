package protocol

import (
	"io"
)

// Terminal ends every wire line.
var Terminal = []byte("\n")

// WriteCommand serialises cmd and writes it, newline terminated, in a single
// Write call so a command is never split across writes.
func WriteCommand(w io.Writer, cmd Command) error {
	line, err := cmd.Line()
	if err != nil {
		return err
	}

	return WriteLine(w, line)
}

// WriteLine writes line with the terminator appended. The input must not
// already be terminated.
func WriteLine(w io.Writer, line []byte) error {
	b := make([]byte, 0, len(line)+1)
	b = append(b, line...)
	b = append(b, '\n')

	_, err := w.Write(b)
	return err
}

// WriteRaw writes s verbatim, adding the terminator only when s does not end
// in one. No tokens are added or rewritten.
func WriteRaw(w io.Writer, s string) error {
	b := []byte(s)

	if len(b) == 0 || b[len(b)-1] != '\n' {
		b = append(b, '\n')
	}

	_, err := w.Write(b)
	return err
}
