package filesink

import (
	"bufio"
	"errors"
	"io"
	"os"

	"github.com/aalvaropc/gendata/internal/domain"
	"github.com/aalvaropc/gendata/internal/ports"
)

const defaultBufferSize = 64 * 1024

type Opener struct {
	bufSize int
	perm    os.FileMode
}

type Option func(*Opener)

func WithBufferSize(n int) Option {
	return func(o *Opener) {
		if n > 0 {
			o.bufSize = n
		}
	}
}

func WithPerm(perm os.FileMode) Option {
	return func(o *Opener) { o.perm = perm }
}

func NewOpener(opts ...Option) *Opener {
	o := &Opener{
		bufSize: defaultBufferSize,
		perm:    0o644,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

var _ ports.SinkOpener = (*Opener)(nil)

// Open creates or truncates path. Output never appends to a previous run.
func (o *Opener) Open(path string, c domain.Compression) (ports.Sink, error) {
	codec := ResolveCompression(path, c)
	if _, err := domain.ParseCompression(string(codec)); err != nil {
		return nil, err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, o.perm)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "filesink.open",
			Kind: domain.KindOutputWrite,
			Path: path,
			Err:  err,
		}
	}

	buf := bufio.NewWriterSize(f, o.bufSize)
	enc, err := newEncoder(codec, buf)
	if err != nil {
		_ = f.Close()
		return nil, &domain.OpError{
			Op:   "filesink.encoder",
			Kind: domain.KindOutputWrite,
			Path: path,
			Err:  err,
		}
	}

	s := &Sink{path: path, codec: codec, file: f, buf: buf, enc: enc, w: buf}
	if enc != nil {
		s.w = enc
	}
	return s, nil
}

// Sink writes through an optional encoder into a buffered file.
type Sink struct {
	path  string
	codec domain.Compression
	file  *os.File
	buf   *bufio.Writer
	enc   io.WriteCloser
	w     io.Writer

	written int64
	closed  bool
}

var _ ports.Sink = (*Sink)(nil)

func (s *Sink) Write(p []byte) (int, error) {
	if s.closed {
		return 0, s.wrap("filesink.write", os.ErrClosed)
	}
	n, err := s.w.Write(p)
	s.written += int64(n)
	if err != nil {
		return n, s.wrap("filesink.write", err)
	}
	return n, nil
}

// Written is the number of uncompressed bytes accepted so far.
func (s *Sink) Written() int64 { return s.written }

func (s *Sink) Compression() domain.Compression { return s.codec }

// Close finishes the encoder, flushes the buffer and closes the file. All three
// steps run even if an earlier one fails; the first error is returned.
func (s *Sink) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	var errs []error
	if s.enc != nil {
		if err := s.enc.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if err := s.buf.Flush(); err != nil {
		errs = append(errs, err)
	}
	if err := s.file.Close(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) == 0 {
		return nil
	}
	return s.wrap("filesink.close", errs[0])
}

func (s *Sink) wrap(op string, err error) error {
	var oe *domain.OpError
	if errors.As(err, &oe) {
		return err
	}
	return &domain.OpError{
		Op:   op,
		Kind: domain.KindOutputWrite,
		Path: s.path,
		Err:  err,
	}
}
