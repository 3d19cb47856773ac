package domain

import (
	"errors"
	"fmt"
	"strings"
)

const (
	DefaultInputPath  = "gendata.md"
	DefaultOutputPath = "data.md"
	DefaultIterations = 32000
	DefaultMaxRun     = 20

	// DefaultConfigFileName is what `gendata init` writes. It is only read when
	// passed with --config.
	DefaultConfigFileName = "gendata.yaml"
)

// Compression selects how the output stream is encoded. Output is plain text
// unless a codec is asked for; auto picks one from the output extension.
type Compression string

const (
	CompressionAuto   Compression = "auto"
	CompressionNone   Compression = "none"
	CompressionGzip   Compression = "gzip"
	CompressionZstd   Compression = "zstd"
	CompressionSnappy Compression = "snappy"
)

// ParseCompression accepts the names above, case-insensitively. Empty means none.
func ParseCompression(s string) (Compression, error) {
	c := Compression(strings.ToLower(strings.TrimSpace(s)))
	switch c {
	case "":
		return CompressionNone, nil
	case CompressionAuto, CompressionNone, CompressionGzip, CompressionZstd, CompressionSnappy:
		return c, nil
	default:
		return "", &OpError{
			Op:   "domain.parsecompression",
			Kind: KindInvalidConfig,
			Err:  fmt.Errorf("unknown compression %q", s),
		}
	}
}

// Config holds everything a generation run needs.
type Config struct {
	Paths    PathsConfig
	Generate GenerateConfig
}

type PathsConfig struct {
	Input  string
	Output string
	Report string
}

type GenerateConfig struct {
	Iterations  int
	MaxRun      int
	Seed        int64 // 0 picks a time-based seed
	Compression Compression
}

// DefaultConfig matches the behavior of running the generator with no arguments.
func DefaultConfig() Config {
	return Config{
		Paths: PathsConfig{
			Input:  DefaultInputPath,
			Output: DefaultOutputPath,
		},
		Generate: GenerateConfig{
			Iterations:  DefaultIterations,
			MaxRun:      DefaultMaxRun,
			Compression: CompressionNone,
		},
	}
}

// Validate rejects values the sampler cannot run with.
func (c Config) Validate() error {
	var problems []string
	if strings.TrimSpace(c.Paths.Input) == "" {
		problems = append(problems, "input path is empty")
	}
	if strings.TrimSpace(c.Paths.Output) == "" {
		problems = append(problems, "output path is empty")
	}
	if c.Generate.Iterations < 0 {
		problems = append(problems, fmt.Sprintf("iterations must be >= 0 (got %d)", c.Generate.Iterations))
	}
	if c.Generate.MaxRun < 0 {
		problems = append(problems, fmt.Sprintf("max run must be >= 0 (got %d)", c.Generate.MaxRun))
	}
	if _, err := ParseCompression(string(c.Generate.Compression)); err != nil {
		problems = append(problems, fmt.Sprintf("unknown compression %q", c.Generate.Compression))
	}
	if len(problems) == 0 {
		return nil
	}
	return &OpError{
		Op:   "domain.config.validate",
		Kind: KindInvalidConfig,
		Err:  errors.New(strings.Join(problems, "; ")),
	}
}
