package domain

import "fmt"

// BlankReason says why an iteration wrote a newline instead of a line.
type BlankReason string

const (
	BlankOutOfRange BlankReason = "out_of_range"
	BlankRunLapsed  BlankReason = "run_lapsed"
	BlankEmptyLine  BlankReason = "empty_line"
)

// Emission is what a single iteration writes.
type Emission struct {
	Blank  bool
	Reason BlankReason // set only when Blank
	Text   string      // set only when !Blank
}

// Output is the exact text written for the emission.
func (e Emission) Output() string {
	if e.Blank {
		return "\n"
	}
	return e.Text
}

// RunCounter bounds consecutive non-blank writes.
//
// It is decremented after every line and only checked for < 0, so with a
// maximum of m up to m+1 lines are written between two blanks.
type RunCounter struct {
	max  int
	left int
}

func NewRunCounter(max int) RunCounter {
	return RunCounter{max: max, left: max}
}

func (r RunCounter) Lapsed() bool { return r.left < 0 }
func (r *RunCounter) Reset() { r.left = r.max }
func (r *RunCounter) Decrement() { r.left-- }
func (r RunCounter) Remaining() int { return r.left }

// Sampler turns draws in [0, n] into emissions.
type Sampler struct {
	corpus  Corpus
	counter RunCounter
}

func NewSampler(corpus Corpus, maxRun int) *Sampler {
	return &Sampler{
		corpus:  corpus,
		counter: NewRunCounter(maxRun),
	}
}

// Bound is the inclusive upper limit of valid draws. A draw equal to Bound
// forces a blank.
func (s *Sampler) Bound() int { return s.corpus.Len() }

func (s *Sampler) Counter() RunCounter { return s.counter }

// Step applies one draw and updates the run counter.
func (s *Sampler) Step(idx int) (Emission, error) {
	n := s.corpus.Len()
	if idx < 0 || idx > n {
		return Emission{}, fmt.Errorf("draw %d outside [0, %d]", idx, n)
	}

	var reason BlankReason
	switch {
	case idx == n:
		reason = BlankOutOfRange
	case s.counter.Lapsed():
		reason = BlankRunLapsed
	default:
		if line, _ := s.corpus.Line(idx); line != "" {
			s.counter.Decrement()
			return Emission{Text: line}, nil
		}
		reason = BlankEmptyLine
	}

	s.counter.Reset()
	return Emission{Blank: true, Reason: reason}, nil
}
