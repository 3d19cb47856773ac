package domain

import "time"

// BlankCounts tallies blanks by reason.
type BlankCounts struct {
	OutOfRange int
	RunLapsed  int
	EmptyLine  int
}

func (b BlankCounts) Total() int { return b.OutOfRange + b.RunLapsed + b.EmptyLine }

// RunStats summarizes a generation run.
type RunStats struct {
	Iterations   int
	CorpusLines  int
	LinesWritten int
	Blanks       BlankCounts
	BytesWritten int64
	LongestRun   int
	Seed         int64

	currentRun int
}

// Record accounts for one emission that was written successfully.
func (s *RunStats) Record(e Emission) {
	s.Iterations++
	s.BytesWritten += int64(len(e.Output()))

	if !e.Blank {
		s.LinesWritten++
		s.currentRun++
		if s.currentRun > s.LongestRun {
			s.LongestRun = s.currentRun
		}
		return
	}

	s.currentRun = 0
	switch e.Reason {
	case BlankOutOfRange:
		s.Blanks.OutOfRange++
	case BlankRunLapsed:
		s.Blanks.RunLapsed++
	case BlankEmptyLine:
		s.Blanks.EmptyLine++
	}
}

// RunReport is persisted after a run for reproducibility.
type RunReport struct {
	StartedAt  time.Time
	FinishedAt time.Time

	Input       string
	Output      string
	Compression Compression
	MaxRun      int

	Stats RunStats
}
