package textcorpus

import (
	"os"
	"path/filepath"

	"github.com/aalvaropc/gendata/internal/domain"
	"github.com/aalvaropc/gendata/internal/ports"
)

// Loader reads a seed corpus from a plain text file.
type Loader struct {
	baseDir string
}

type Option func(*Loader)

// WithBaseDir resolves relative corpus paths against dir instead of the working directory.
func WithBaseDir(dir string) Option {
	return func(l *Loader) { l.baseDir = dir }
}

func NewLoader(opts ...Option) *Loader {
	l := &Loader{}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

var _ ports.CorpusLoader = (*Loader)(nil)

// LoadCorpus reads the whole file before returning; the handle is not kept.
func (l *Loader) LoadCorpus(path string) (domain.Corpus, error) {
	p := resolve(l.baseDir, path)

	b, err := os.ReadFile(p)
	if err != nil {
		return domain.Corpus{}, &domain.OpError{
			Op:   "textcorpus.load",
			Kind: domain.KindInputRead,
			Path: p,
			Err:  err,
		}
	}

	return domain.ParseCorpus(string(b)), nil
}

func resolve(baseDir, p string) string {
	if baseDir == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(baseDir, p)
}
