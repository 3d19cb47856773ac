package ports

import (
	"io"

	"github.com/aalvaropc/gendata/internal/domain"
)

// Sink is an output stream. Close must flush whatever was written, even after
// a failed Write.
type Sink interface {
	io.Writer
	Close() error
}

// SinkOpener creates (or truncates) the output destination.
type SinkOpener interface {
	Open(path string, c domain.Compression) (Sink, error)
}
