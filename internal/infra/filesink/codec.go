package filesink

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/golang/snappy"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	"github.com/aalvaropc/gendata/internal/domain"
)

// ResolveCompression turns auto into a concrete codec based on the output extension.
// An unset codec means plain output whatever the extension.
func ResolveCompression(path string, c domain.Compression) domain.Compression {
	if c == "" {
		return domain.CompressionNone
	}
	if c != domain.CompressionAuto {
		return c
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		return domain.CompressionGzip
	case ".zst":
		return domain.CompressionZstd
	case ".sz", ".snappy":
		return domain.CompressionSnappy
	default:
		return domain.CompressionNone
	}
}

// newEncoder wraps w with the codec. A nil encoder means plain output.
func newEncoder(c domain.Compression, w io.Writer) (io.WriteCloser, error) {
	switch c {
	case domain.CompressionNone:
		return nil, nil
	case domain.CompressionGzip:
		return gzip.NewWriter(w), nil
	case domain.CompressionZstd:
		return zstd.NewWriter(w)
	case domain.CompressionSnappy:
		return snappy.NewBufferedWriter(w), nil
	default:
		_, err := domain.ParseCompression(string(c))
		return nil, err
	}
}
