package ports

import "github.com/aalvaropc/gendata/internal/domain"

// CorpusLoader loads the seed corpus from a source (e.g., filesystem).
type CorpusLoader interface {
	LoadCorpus(path string) (domain.Corpus, error)
}
