package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aalvaropc/gendata/internal/domain"
	"github.com/aalvaropc/gendata/internal/ports"
)

// GenerateRequest describes one generation run.
type GenerateRequest struct {
	Input       string
	Output      string
	ReportPath  string // optional
	Iterations  int
	MaxRun      int
	Seed        int64 // recorded in the report; the IndexSource is already seeded
	Compression domain.Compression
}

// RequestFromConfig maps a resolved config into a GenerateRequest.
func RequestFromConfig(cfg domain.Config) GenerateRequest {
	return GenerateRequest{
		Input:       cfg.Paths.Input,
		Output:      cfg.Paths.Output,
		ReportPath:  cfg.Paths.Report,
		Iterations:  cfg.Generate.Iterations,
		MaxRun:      cfg.Generate.MaxRun,
		Seed:        cfg.Generate.Seed,
		Compression: cfg.Generate.Compression,
	}
}

type GenerateData struct {
	corpus  ports.CorpusLoader
	sinks   ports.SinkOpener
	source  ports.IndexSource
	reports ports.ReportStore
	log     *slog.Logger
	now     func() time.Time
}

type GenerateOption func(*GenerateData)

func WithLogger(l *slog.Logger) GenerateOption {
	return func(uc *GenerateData) {
		if l != nil {
			uc.log = l
		}
	}
}

func WithReportStore(rs ports.ReportStore) GenerateOption {
	return func(uc *GenerateData) { uc.reports = rs }
}

// WithClock is useful for tests.
func WithClock(now func() time.Time) GenerateOption {
	return func(uc *GenerateData) {
		if now != nil {
			uc.now = now
		}
	}
}

func NewGenerateData(cl ports.CorpusLoader, so ports.SinkOpener, src ports.IndexSource, opts ...GenerateOption) *GenerateData {
	uc := &GenerateData{
		corpus: cl,
		sinks:  so,
		source: src,
		log:    slog.New(slog.NewJSONHandler(io.Discard, nil)),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute loads the corpus, then performs exactly req.Iterations draws, writing one
// emission per draw. The output is closed on every path so partial output is
// flushed. The returned report is filled in as far as the run got.
func (uc *GenerateData) Execute(ctx context.Context, req GenerateRequest) (report domain.RunReport, err error) {
	report = domain.RunReport{
		StartedAt:   uc.now(),
		Input:       req.Input,
		Output:      req.Output,
		Compression: req.Compression,
		MaxRun:      req.MaxRun,
	}
	report.Stats.Seed = req.Seed
	defer func() { report.FinishedAt = uc.now() }()

	uc.log.Info("generate.start",
		"input", req.Input,
		"output", req.Output,
		"iterations", req.Iterations,
		"max_run", req.MaxRun,
		"seed", req.Seed,
	)

	corpus, err := uc.corpus.LoadCorpus(req.Input)
	if err != nil {
		return report, err
	}
	report.Stats.CorpusLines = corpus.Len()
	uc.log.Debug("corpus.loaded", "path", req.Input, "lines", corpus.Len())

	if err := uc.run(ctx, req, corpus, &report); err != nil {
		uc.log.Error("generate.failed", "err", err, "iterations_done", report.Stats.Iterations)
		return report, err
	}

	uc.log.Info("generate.done",
		"output", req.Output,
		"lines", report.Stats.LinesWritten,
		"blanks", report.Stats.Blanks.Total(),
		"bytes", report.Stats.BytesWritten,
		"longest_run", report.Stats.LongestRun,
	)

	if req.ReportPath != "" && uc.reports != nil {
		report.FinishedAt = uc.now()
		if err := uc.reports.SaveReport(req.ReportPath, report); err != nil {
			return report, err
		}
		uc.log.Info("report.saved", "path", req.ReportPath)
	}

	return report, nil
}

func (uc *GenerateData) run(ctx context.Context, req GenerateRequest, corpus domain.Corpus, report *domain.RunReport) (err error) {
	sink, err := uc.sinks.Open(req.Output, req.Compression)
	if err != nil {
		return err
	}
	if cs, ok := sink.(compressedSink); ok {
		report.Compression = cs.Compression()
	}
	defer func() {
		if cerr := sink.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	sampler := domain.NewSampler(corpus, req.MaxRun)
	for i := 0; i < req.Iterations; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		e, err := sampler.Step(uc.source.Draw(sampler.Bound()))
		if err != nil {
			return fmt.Errorf("iteration %d: %w", i, err)
		}

		if _, err := io.WriteString(sink, e.Output()); err != nil {
			return asOutputError(req.Output, err)
		}
		report.Stats.Record(e)
	}
	return nil
}

// compressedSink is implemented by sinks that resolve the codec themselves.
type compressedSink interface {
	Compression() domain.Compression
}

func asOutputError(path string, err error) error {
	var oe *domain.OpError
	if errors.As(err, &oe) {
		return err
	}
	return &domain.OpError{
		Op:   "usecase.generate.write",
		Kind: domain.KindOutputWrite,
		Path: path,
		Err:  err,
	}
}
