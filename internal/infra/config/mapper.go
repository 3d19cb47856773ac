package config

import (
	"fmt"

	"github.com/aalvaropc/gendata/internal/domain"
)

// MapConfig applies parsed values on top of base and validates the result.
func MapConfig(path string, base domain.Config, y YAMLFile) (domain.Config, error) {
	cfg := base
	g := y.Gendata

	if g.Input != "" {
		cfg.Paths.Input = g.Input
	}
	if g.Output != "" {
		cfg.Paths.Output = g.Output
	}
	if g.Report != "" {
		cfg.Paths.Report = g.Report
	}
	if g.Iterations != nil {
		if *g.Iterations < 0 {
			return base, invalidField(path, "gendata.iterations", fmt.Sprintf("must be >= 0, got %d", *g.Iterations))
		}
		cfg.Generate.Iterations = *g.Iterations
	}
	if g.MaxRun != nil {
		if *g.MaxRun < 0 {
			return base, invalidField(path, "gendata.max_run", fmt.Sprintf("must be >= 0, got %d", *g.MaxRun))
		}
		cfg.Generate.MaxRun = *g.MaxRun
	}
	if g.Seed != nil {
		cfg.Generate.Seed = *g.Seed
	}
	if g.Compression != "" {
		c, err := domain.ParseCompression(g.Compression)
		if err != nil {
			return base, invalidField(path, "gendata.compression", fmt.Sprintf("unknown value %q", g.Compression))
		}
		cfg.Generate.Compression = c
	}

	return cfg, nil
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "config.map",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s", field, msg),
	}
}
