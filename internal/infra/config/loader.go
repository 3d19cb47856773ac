package config

import (
	"os"
	"path/filepath"

	"github.com/aalvaropc/gendata/internal/domain"
	"github.com/aalvaropc/gendata/internal/ports"
	"gopkg.in/yaml.v3"
)

type Loader struct {
	dir string
}

type Option func(*Loader)

// WithDir resolves relative config paths against dir.
func WithDir(dir string) Option {
	return func(l *Loader) { l.dir = dir }
}

func NewLoader(opts ...Option) *Loader {
	l := &Loader{}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

var _ ports.ConfigLoader = (*Loader)(nil)

// LoadConfig returns defaults overlaid with the YAML file at path. Nothing is read
// when path is empty, so a run without --config never picks up a stray file.
func (l *Loader) LoadConfig(path string) (domain.Config, error) {
	cfg := domain.DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	if l.dir != "" && !filepath.IsAbs(path) {
		path = filepath.Join(l.dir, path)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y YAMLFile
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return MapConfig(path, cfg, y)
}
