package runstore

import (
	"time"

	"github.com/aalvaropc/gendata/internal/domain"
)

type reportDTO struct {
	StartedAt   time.Time `json:"started_at"`
	FinishedAt  time.Time `json:"finished_at"`
	Input       string    `json:"input"`
	Output      string    `json:"output"`
	Compression string    `json:"compression"`
	Iterations  int       `json:"iterations"`
	MaxRun      int       `json:"max_run"`
	Seed        int64     `json:"seed"`

	CorpusLines  int       `json:"corpus_lines"`
	LinesWritten int       `json:"lines_written"`
	Blanks       blanksDTO `json:"blanks"`
	BytesWritten int64     `json:"bytes_written"`
	LongestRun   int       `json:"longest_run"`
}

type blanksDTO struct {
	OutOfRange int `json:"out_of_range"`
	RunLapsed  int `json:"run_lapsed"`
	EmptyLine  int `json:"empty_line"`
}

func toDTO(r domain.RunReport) reportDTO {
	return reportDTO{
		StartedAt:   r.StartedAt.UTC(),
		FinishedAt:  r.FinishedAt.UTC(),
		Input:       r.Input,
		Output:      r.Output,
		Compression: string(r.Compression),
		Iterations:  r.Stats.Iterations,
		MaxRun:      r.MaxRun,
		Seed:        r.Stats.Seed,

		CorpusLines:  r.Stats.CorpusLines,
		LinesWritten: r.Stats.LinesWritten,
		Blanks: blanksDTO{
			OutOfRange: r.Stats.Blanks.OutOfRange,
			RunLapsed:  r.Stats.Blanks.RunLapsed,
			EmptyLine:  r.Stats.Blanks.EmptyLine,
		},
		BytesWritten: r.Stats.BytesWritten,
		LongestRun:   r.Stats.LongestRun,
	}
}

// MarshalReport renders a report in the same shape SaveReport writes.
func MarshalReport(r domain.RunReport) ([]byte, error) {
	return json.MarshalIndent(toDTO(r), "", "  ")
}
