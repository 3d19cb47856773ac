package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/gendata/internal/domain"
	"github.com/aalvaropc/gendata/internal/infra/config"
	"github.com/aalvaropc/gendata/internal/infra/filesink"
	"github.com/aalvaropc/gendata/internal/infra/logger"
	"github.com/aalvaropc/gendata/internal/infra/randsource"
	"github.com/aalvaropc/gendata/internal/infra/runstore"
	"github.com/aalvaropc/gendata/internal/infra/textcorpus"
	"github.com/aalvaropc/gendata/internal/usecase"
)

type generateOptions struct {
	configPath  string
	input       string
	iterations  int
	maxRun      int
	seed        int64
	compression string
	report      string
	reportIndex bool
	format      string

	logFile string
	debug   bool
}

func (o *generateOptions) bind(cmd *cobra.Command) {
	def := domain.DefaultConfig()

	f := cmd.Flags()
	f.StringVar(&o.configPath, "config", "", "YAML config file (optional; built-in defaults when omitted)")
	f.StringVarP(&o.input, "input", "i", def.Paths.Input, "Seed corpus to sample lines from")
	f.IntVarP(&o.iterations, "iterations", "n", def.Generate.Iterations, "Number of writes (lines or blanks)")
	f.IntVar(&o.maxRun, "max-run", def.Generate.MaxRun, "Run counter reset value; up to max-run+1 lines between blanks")
	f.Int64Var(&o.seed, "seed", 0, "Random seed (0 = time-based)")
	f.StringVar(&o.compression, "compress", string(def.Generate.Compression), "Output encoding: auto|none|gzip|zstd|snappy")
	f.StringVar(&o.report, "report", "", "Write a JSON run report to this path")
	f.BoolVar(&o.reportIndex, "report-index", false, "Append a line to index.jsonl next to the report")
	f.StringVar(&o.format, "format", "none", "Summary printed to stdout: none|pretty|json")

	pf := cmd.PersistentFlags()
	pf.StringVar(&o.logFile, "log-file", "", "Write logs to a rotated file instead of stderr")
	pf.BoolVar(&o.debug, "debug", false, "Enable verbose logging")
}

// resolve layers flags and the positional output path over cfg. Only flags the
// user actually set override the config file.
func (o *generateOptions) resolve(cmd *cobra.Command, cfg domain.Config, args []string) (domain.Config, error) {
	f := cmd.Flags()

	if f.Changed("input") {
		cfg.Paths.Input = o.input
	}
	if f.Changed("iterations") {
		cfg.Generate.Iterations = o.iterations
	}
	if f.Changed("max-run") {
		cfg.Generate.MaxRun = o.maxRun
	}
	if f.Changed("seed") {
		cfg.Generate.Seed = o.seed
	}
	if f.Changed("compress") {
		c, err := domain.ParseCompression(o.compression)
		if err != nil {
			return cfg, err
		}
		cfg.Generate.Compression = c
	}
	if f.Changed("report") {
		cfg.Paths.Report = o.report
	}
	if len(args) > 0 {
		cfg.Paths.Output = args[0]
	}

	return cfg, cfg.Validate()
}

func runGenerate(cmd *cobra.Command, o *generateOptions, args []string) error {
	if err := checkFormat(o.format); err != nil {
		return err
	}

	cleanup, err := logger.Setup(logger.Config{
		File:   o.logFile,
		Debug:  o.debug,
		Stderr: cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}
	defer func() { _ = cleanup() }()

	cfg, err := config.NewLoader().LoadConfig(o.configPath)
	if err != nil {
		return err
	}
	cfg, err = o.resolve(cmd, cfg, args)
	if err != nil {
		return err
	}

	src := randsource.New(cfg.Generate.Seed)
	cfg.Generate.Seed = src.Seed()

	uc := usecase.NewGenerateData(
		textcorpus.NewLoader(),
		filesink.NewOpener(),
		src,
		usecase.WithLogger(logger.L()),
		usecase.WithReportStore(runstore.NewJSONStore(runstore.WithIndex(o.reportIndex))),
	)

	report, err := uc.Execute(cmd.Context(), usecase.RequestFromConfig(cfg))
	if err != nil {
		return err
	}

	return printReport(cmd.OutOrStdout(), report, o.format)
}

func checkFormat(format string) error {
	switch format {
	case "none", "", "pretty", "json":
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected none|pretty|json)", format)
	}
}

func printReport(w io.Writer, r domain.RunReport, format string) error {
	switch format {
	case "json":
		b, err := runstore.MarshalReport(r)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	case "pretty":
		printPrettyReport(w, r)
		return nil
	case "none", "":
		return nil
	default:
		return checkFormat(format)
	}
}

func printPrettyReport(w io.Writer, r domain.RunReport) {
	total := r.FinishedAt.Sub(r.StartedAt)
	if r.StartedAt.IsZero() || r.FinishedAt.IsZero() {
		total = 0
	}
	s := r.Stats

	fmt.Fprintf(w, "Input:       %s (%d lines)\n", r.Input, s.CorpusLines)
	fmt.Fprintf(w, "Output:      %s\n", r.Output)
	if r.Compression != "" && r.Compression != domain.CompressionNone {
		fmt.Fprintf(w, "Compression: %s\n", r.Compression)
	}
	fmt.Fprintf(w, "Seed:        %d\n", s.Seed)
	fmt.Fprintf(w, "Writes:      %d (%d lines, %d blanks)\n", s.Iterations, s.LinesWritten, s.Blanks.Total())
	fmt.Fprintf(w, "  blanks:    %d out of range / %d run lapsed / %d empty line\n",
		s.Blanks.OutOfRange, s.Blanks.RunLapsed, s.Blanks.EmptyLine)
	fmt.Fprintf(w, "Longest run: %d (max run %d)\n", s.LongestRun, r.MaxRun)
	fmt.Fprintf(w, "Bytes:       %d\n", s.BytesWritten)
	fmt.Fprintf(w, "Duration:    %s\n", total.Round(time.Millisecond))
}
