package ports

import "github.com/aalvaropc/gendata/internal/domain"

// ConfigLoader resolves the generator configuration. An empty path means
// built-in defaults; no file is read.
type ConfigLoader interface {
	LoadConfig(path string) (domain.Config, error)
}
