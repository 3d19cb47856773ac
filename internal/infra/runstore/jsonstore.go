package runstore

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/aalvaropc/gendata/internal/domain"
	"github.com/aalvaropc/gendata/internal/ports"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const indexFileName = "index.jsonl"

type JSONStore struct {
	writeIndex bool
	now        func() time.Time
}

type Option func(*JSONStore)

// WithIndex enables a JSONL index next to each report: <dir>/index.jsonl
func WithIndex(enabled bool) Option {
	return func(s *JSONStore) { s.writeIndex = enabled }
}

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *JSONStore) { s.now = now }
}

func NewJSONStore(opts ...Option) *JSONStore {
	s := &JSONStore{
		writeIndex: false,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.ReportStore = (*JSONStore)(nil)

func (s *JSONStore) SaveReport(path string, report domain.RunReport) error {
	if strings.TrimSpace(path) == "" {
		return &domain.OpError{
			Op:   "runstore.save",
			Kind: domain.KindInvalidConfig,
			Err:  os.ErrInvalid,
		}
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &domain.OpError{
			Op:   "runstore.mkdir",
			Kind: domain.KindOutputWrite,
			Path: dir,
			Err:  err,
		}
	}

	if report.StartedAt.IsZero() {
		report.StartedAt = s.now()
	}
	if report.FinishedAt.IsZero() {
		report.FinishedAt = s.now()
	}

	b, err := json.MarshalIndent(toDTO(report), "", "  ")
	if err != nil {
		return &domain.OpError{
			Op:   "runstore.marshal",
			Kind: domain.KindOutputWrite,
			Path: path,
			Err:  err,
		}
	}
	b = append(b, '\n')

	// Atomic-ish write: tmp then rename.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return &domain.OpError{
			Op:   "runstore.write",
			Kind: domain.KindOutputWrite,
			Path: tmp,
			Err:  err,
		}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return &domain.OpError{
			Op:   "runstore.rename",
			Kind: domain.KindOutputWrite,
			Path: path,
			Err:  err,
		}
	}

	if s.writeIndex {
		_ = s.appendIndex(dir, filepath.Base(path), report)
	}

	return nil
}

func (s *JSONStore) appendIndex(dir, filename string, report domain.RunReport) error {
	type idx struct {
		File      string    `json:"file"`
		Output    string    `json:"output"`
		Seed      int64     `json:"seed"`
		Bytes     int64     `json:"bytes_written"`
		StartedAt time.Time `json:"started_at"`
	}
	line, err := json.Marshal(idx{
		File:      filename,
		Output:    report.Output,
		Seed:      report.Stats.Seed,
		Bytes:     report.Stats.BytesWritten,
		StartedAt: report.StartedAt.UTC(),
	})
	if err != nil {
		return err
	}

	indexPath := filepath.Join(dir, indexFileName)
	f, err := os.OpenFile(indexPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(append(line, '\n'))
	return err
}
