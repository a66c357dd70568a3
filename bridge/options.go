package bridge

import (
	"go.uber.org/zap"

	"github.com/hockyg/vmdstream/protocol"
)

// Sender is the slice of a client.Stream the bridge forwards into. The
// bridge serialises access, the underlying stream stays singly owned.
type Sender interface {
	Do(cmd protocol.Command) error
	Send(raw string) error
}

type Options struct {
	// Host to listen on
	Host string

	// Port to listen for HTTP requests on
	Port string

	// Stream is the open command channel every request is forwarded to.
	Stream Sender

	// DebugHTTP leaves gin in debug mode
	DebugHTTP bool

	Log *zap.Logger
}
