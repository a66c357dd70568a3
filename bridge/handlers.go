package bridge

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/hockyg/vmdstream/protocol"
)

// Request bodies are kept small, a draw request is a few hundred bytes at
// most.
const maxBodySize = 1 << 20

var errBadBody = errors.New("Request body is not a JSON object")

// handleDraw builds one primitive from a JSON body and forwards it.
//
//   {"kind": "sphere", "at": [0, 0, 0], "radius": 2, "color": 4}
//   {"kind": "line", "from": [0, 0, 0], "to": [1, 1, 1], "width": 3}
//
func (s *Server) handleDraw(c *gin.Context) {
	body, ok := s.readBody(c)
	if !ok {
		return
	}

	cmd, err := commandFromJSON(body)
	if err != nil {
		writeError(c, http.StatusBadRequest, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if color := body.Get("color"); color.Exists() {
		err := s.stream.Do(&protocol.ColorCommand{Color: colorFromJSON(color)})
		if err != nil {
			s.forwardError(c, err)
			return
		}
	}

	if err := s.stream.Do(cmd); err != nil {
		s.forwardError(c, err)
		return
	}

	writeOk(c)
}

// handleCommand forwards a raw scripting line: {"command": "mol new x.pdb"}.
func (s *Server) handleCommand(c *gin.Context) {
	body, ok := s.readBody(c)
	if !ok {
		return
	}

	raw := body.Get("command")
	if !raw.Exists() || raw.Type != gjson.String {
		writeError(c, http.StatusBadRequest, errors.New("missing command field"))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.stream.Send(raw.String()); err != nil {
		s.forwardError(c, err)
		return
	}

	writeOk(c)
}

func (s *Server) handleClear(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.stream.Do(&protocol.DeleteAllCommand{}); err != nil {
		s.forwardError(c, err)
		return
	}

	writeOk(c)
}

func (s *Server) readBody(c *gin.Context) (gjson.Result, bool) {
	raw, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBodySize))
	if err != nil {
		writeError(c, http.StatusBadRequest, err)
		return gjson.Result{}, false
	}

	if !gjson.ValidBytes(raw) {
		writeError(c, http.StatusBadRequest, errBadBody)
		return gjson.Result{}, false
	}

	body := gjson.ParseBytes(raw)
	if !body.IsObject() {
		writeError(c, http.StatusBadRequest, errBadBody)
		return gjson.Result{}, false
	}

	return body, true
}

// forwardError maps stream failures to 502, invalid geometry to 400.
func (s *Server) forwardError(c *gin.Context, err error) {
	status := http.StatusBadGateway
	if errors.Is(err, protocol.ErrInvalidArgument) {
		status = http.StatusBadRequest
	}

	writeError(c, status, err)
}

func commandFromJSON(body gjson.Result) (protocol.Command, error) {
	kind := protocol.Kind(body.Get("kind").String())

	switch kind {
	case protocol.KindPoint:
		at, err := vectorFromJSON(body, "at")
		if err != nil {
			return nil, err
		}

		return &protocol.PointCommand{At: at}, nil

	case protocol.KindLine:
		from, err := vectorFromJSON(body, "from")
		if err != nil {
			return nil, err
		}

		to, err := vectorFromJSON(body, "to")
		if err != nil {
			return nil, err
		}

		return &protocol.LineCommand{
			From:  from,
			To:    to,
			Width: body.Get("width").Float(),
		}, nil

	case protocol.KindSphere:
		at, err := vectorFromJSON(body, "at")
		if err != nil {
			return nil, err
		}

		return &protocol.SphereCommand{
			Center:     at,
			Radius:     body.Get("radius").Float(),
			Resolution: int(body.Get("resolution").Int()),
		}, nil

	case protocol.KindCylinder:
		from, err := vectorFromJSON(body, "from")
		if err != nil {
			return nil, err
		}

		to, err := vectorFromJSON(body, "to")
		if err != nil {
			return nil, err
		}

		return &protocol.CylinderCommand{
			From:       from,
			To:         to,
			Radius:     body.Get("radius").Float(),
			Resolution: int(body.Get("resolution").Int()),
			Filled:     true,
		}, nil

	case protocol.KindText:
		at, err := vectorFromJSON(body, "at")
		if err != nil {
			return nil, err
		}

		return &protocol.TextCommand{
			At:   at,
			Text: body.Get("text").String(),
			Size: body.Get("size").Float(),
		}, nil

	default:
		return nil, fmt.Errorf("unknown primitive kind '%s': %w",
			kind, protocol.ErrInvalidArgument)
	}
}

func vectorFromJSON(body gjson.Result, field string) (protocol.Vector, error) {
	var v protocol.Vector

	coords := body.Get(field).Array()
	if len(coords) != 3 {
		return v, fmt.Errorf("field '%s' must be an [x, y, z] array: %w",
			field, protocol.ErrInvalidArgument)
	}

	for i, c := range coords {
		if c.Type != gjson.Number {
			return v, fmt.Errorf("field '%s' must be an [x, y, z] array: %w",
				field, protocol.ErrInvalidArgument)
		}

		v[i] = c.Float()
	}

	return v, nil
}

func colorFromJSON(color gjson.Result) protocol.Color {
	if color.Type == gjson.String {
		return protocol.ColorName(color.String())
	}

	return protocol.ColorID(int(color.Int()))
}

func writeOk(c *gin.Context) {
	body, _ := sjson.Set("", "status", "ok")
	c.Data(http.StatusOK, "application/json", []byte(body))
}

func writeError(c *gin.Context, status int, err error) {
	body, _ := sjson.Set("", "status", "error")
	body, _ = sjson.Set(body, "error", err.Error())
	c.Data(status, "application/json", []byte(body))
}
