package client

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/hockyg/vmdstream/protocol"
)

// Defaults match the listener that VMD's remote_ctl script opens.
const (
	DefaultHost = "127.0.0.1"
	DefaultPort = 5555
)

var (
	// ErrConnect wraps a failure to establish the initial connection.
	ErrConnect = errors.New("Could not connect to VMD")

	// ErrClosed is returned by every operation once the stream has been
	// closed, locally or by the remote end.
	ErrClosed = errors.New("Stream is closed")

	// ErrWrite wraps a send that failed mid-operation, e.g. a broken pipe.
	ErrWrite = errors.New("Failed to write to VMD")
)

type Config struct {
	// Host of the listening VMD instance. Defaults to DefaultHost.
	Host string

	// Port VMD is listening on. Defaults to DefaultPort.
	Port int

	// SendTimeout bounds each write. Zero means block until the OS accepts
	// the bytes.
	SendTimeout time.Duration

	// ReadTimeout bounds each ReadLine. Zero means block until a line
	// arrives.
	ReadTimeout time.Duration
}

func (c Config) Addr() string {
	host := c.Host
	if host == "" {
		host = DefaultHost
	}

	port := c.Port
	if port == 0 {
		port = DefaultPort
	}

	return net.JoinHostPort(host, strconv.Itoa(port))
}

// Stream is a command channel to one running VMD instance. It owns exactly
// one TCP socket, writes are synchronous and commands arrive in the order
// they were issued. A Stream is not safe for concurrent use.
type Stream struct {
	conn *net.TCPConn
	r    *bufio.Reader

	sendTimeout time.Duration
	readTimeout time.Duration

	closed bool

	log *zap.Logger
}

// Dial connects to the VMD instance described by cfg. A single attempt is
// made, failures are returned immediately wrapped in ErrConnect. A nil
// logger disables logging.
func Dial(ctx context.Context, cfg Config, log *zap.Logger) (*Stream, error) {
	if log == nil {
		log = zap.NewNop()
	}

	var d net.Dialer

	conn, err := d.DialContext(ctx, "tcp", cfg.Addr())
	if err != nil {
		return nil, fmt.Errorf("%s: %v: %w", cfg.Addr(), err, ErrConnect)
	}

	return &Stream{
		conn:        conn.(*net.TCPConn),
		r:           bufio.NewReader(conn),
		sendTimeout: cfg.SendTimeout,
		readTimeout: cfg.ReadTimeout,
		log:         log,
	}, nil
}

// writeDeadline arms the configured send timeout ahead of one write.
func (s *Stream) writeDeadline() error {
	if s.sendTimeout == 0 {
		return nil
	}

	return s.conn.SetWriteDeadline(time.Now().Add(s.sendTimeout))
}

// Addr returns the remote address the stream is connected to.
func (s *Stream) Addr() string {
	return s.conn.RemoteAddr().String()
}

// Do serialises cmd and sends it as one wire line.
func (s *Stream) Do(cmd protocol.Command) error {
	line, err := cmd.Line()
	if err != nil {
		return err
	}

	return s.SendLine(line)
}

// SendLine sends one unterminated wire line, appending the terminator.
func (s *Stream) SendLine(line []byte) error {
	if s.closed {
		return ErrClosed
	}

	if err := s.writeDeadline(); err != nil {
		return fmt.Errorf("%v: %w", err, ErrWrite)
	}

	if err := protocol.WriteLine(s.conn, line); err != nil {
		return fmt.Errorf("%v: %w", err, ErrWrite)
	}

	s.log.Debug("Sent command", zap.ByteString("line", line))

	return nil
}

// Send writes raw verbatim, terminator included if missing. It is the
// escape hatch for any VMD scripting command this package has no builder
// for.
func (s *Stream) Send(raw string) error {
	if s.closed {
		return ErrClosed
	}

	if err := s.writeDeadline(); err != nil {
		return fmt.Errorf("%v: %w", err, ErrWrite)
	}

	if err := protocol.WriteRaw(s.conn, raw); err != nil {
		return fmt.Errorf("%v: %w", err, ErrWrite)
	}

	s.log.Debug("Sent raw command", zap.String("raw", raw))

	return nil
}

// ReadLine reads one pending line of text from VMD, without the terminator.
// It blocks until a line is available. If the connection has been closed it
// returns ErrClosed.
func (s *Stream) ReadLine() (string, error) {
	if s.closed {
		return "", ErrClosed
	}

	if s.readTimeout != 0 {
		if err := s.conn.SetReadDeadline(time.Now().Add(s.readTimeout)); err != nil {
			return "", err
		}
	}

	line, err := s.r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, net.ErrClosed) {
			return "", fmt.Errorf("%v: %w", err, ErrClosed)
		}

		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}

// Close releases the socket. It is safe to call more than once; operations
// after the first Close return ErrClosed.
func (s *Stream) Close() error {
	if s.closed {
		return nil
	}

	s.closed = true

	return s.conn.Close()
}

// Quit asks VMD to exit, then closes the stream. The exit command is best
// effort, the socket is released either way.
func (s *Stream) Quit() (err error) {
	if s.closed {
		return ErrClosed
	}

	if werr := protocol.WriteLine(s.conn, protocol.Exit()); werr != nil {
		err = multierr.Append(err, fmt.Errorf("%v: %w", werr, ErrWrite))
	}

	return multierr.Append(err, s.Close())
}
