package protocol

// This package implements serialising, and parsing, the text commands that
// vmdstream sends to a running VMD instance.
//
// VMD can be told to listen on a TCP port and evaluate every incoming line
// with its embedded Tcl interpreter (see the remote_ctl script that ships
// with VMD's script library). There is no framing and no handshake: the
// entire wire format is
//
// - one command per line
// - lines are `\n` delimited
// - tokens are space separated
// - 3-D coordinates are written as Tcl brace groups, e.g. `{1 2 3}`
//
// === Drawing commands
//
// The `draw` family creates graphics primitives in the top molecule:
//
//   ```
//     draw point {x y z}
//     draw line {x1 y1 z1} {x2 y2 z2} width W style solid
//     draw sphere {x y z} radius R resolution N
//     draw cylinder {x1 y1 z1} {x2 y2 z2} radius R resolution N filled yes
//     draw triangle {x1 y1 z1} {x2 y2 z2} {x3 y3 z3}
//     draw text {x y z} "some text" size S
//     draw color 4
//     draw color red
//     draw delete all
//   ```
//
// `draw color` sets the pen for every subsequent primitive. A primitive line
// never embeds its own colour, so callers that want a coloured sphere send
// two lines, the `draw color` first.
//
// === Colour scale commands
//
// VMD 1.9 reserves colour ids 0-32 for named colours and ids 33-1056 for the
// colour scale. `color change rgb` redefines a single id, components in the
// range 0-1:
//
//   ```
//     color change rgb 33 0.000 0.000 0.516
//     color scale method RGB
//   ```
//
// === Display commands
//
// Display state is driven with the same one-line syntax (`display resize
// 800 800`, `display resetview`, `axes location off`, `scale by 1.3`, ...).
// These take no coordinates and are emitted by the helpers in display.go.
//
// Floats are formatted with strconv's shortest round-trippable 'g' form, so
// a parsed coordinate compares equal to the one that was written.
