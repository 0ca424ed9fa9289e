package main

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/trialign/align"
	"github.com/katalvlaran/trialign/fasta"
	"github.com/katalvlaran/trialign/internal/config"
	"github.com/katalvlaran/trialign/internal/output"
	"github.com/katalvlaran/trialign/internal/telemetry"
)

// flags are the command-line settings of one root command.
type flags struct {
	configPath      string
	gap             int
	workers         int
	maxCells        int
	format          string
	logLevel        string
	logFormat       string
	metricsTextfile string
	verify          bool
}

func newRootCmd() *cobra.Command {
	f := &flags{}
	cmd := &cobra.Command{
		Use:   "trialign [flags] <fasta1> <fasta2> <fasta3>",
		Short: "Optimal global alignment of three DNA sequences",
		Long: `trialign fills the three-dimensional dynamic-programming lattice of three
sequences over {A,G,C,T}, then traces back one optimal alignment.

Each input file holds one sequence; '>' header lines are skipped, "-" reads
standard input and *.gz files are decompressed.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			return run(cmd, f, args)
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.configPath, "config", "c", "", "YAML file with gap_penalty, substitution, workers and max_cells")
	fl.IntVarP(&f.gap, "gap", "g", align.DefaultGapPenalty, "penalty per gap character")
	fl.IntVarP(&f.workers, "workers", "w", align.DefaultWorkers, "wavefront workers (0 = GOMAXPROCS, 1 = serial)")
	fl.IntVar(&f.maxCells, "max-cells", align.DefaultMaxCells, "largest lattice to allocate (0 = unlimited)")
	fl.StringVarP(&f.format, "format", "f", string(output.Text), "output format: text, json or fasta")
	fl.StringVar(&f.logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	fl.StringVar(&f.logFormat, "log-format", "text", "log format: text or json")
	fl.StringVar(&f.metricsTextfile, "metrics-textfile", "", "write Prometheus metrics to this file")
	fl.BoolVar(&f.verify, "verify", false, "rescore the alignment and check it against the lattice")

	cmd.AddCommand(newConfigCmd())

	return cmd
}

// loadConfig reads --config, if given, and applies the flags the user set.
func loadConfig(cmd *cobra.Command, f *flags) (*config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		var err error
		if cfg, err = config.Load(f.configPath); err != nil {
			return nil, err
		}
	}

	fl := cmd.Flags()
	if fl.Changed("gap") {
		cfg.GapPenalty = f.gap
	}
	if fl.Changed("workers") {
		cfg.Workers = f.workers
	}
	if fl.Changed("max-cells") {
		cfg.MaxCells = f.maxCells
	}

	return cfg, cfg.Validate()
}

func run(cmd *cobra.Command, f *flags, args []string) (err error) {
	log, err := telemetry.NewLogger(cmd.ErrOrStderr(), f.logLevel, f.logFormat)
	if err != nil {
		return err
	}
	runID := uuid.NewString()
	log = log.With("run_id", runID)

	// From here on errors are reported through the logger.
	cmd.SilenceErrors = true
	metrics := telemetry.NewMetrics()
	defer func() {
		if err != nil {
			log.Error("alignment failed", "error", err)
			metrics.Done(outcome(err))
		}
		if f.metricsTextfile != "" {
			if werr := metrics.WriteTextfile(f.metricsTextfile); werr != nil {
				log.Error("failed to write metrics", "path", f.metricsTextfile, "error", werr)
				err = errors.Join(err, werr)
			}
		}
	}()

	cfg, err := loadConfig(cmd, f)
	if err != nil {
		return err
	}
	format, err := output.ParseFormat(f.format)
	if err != nil {
		return err
	}

	entries, err := readInputs(args)
	if err != nil {
		return err
	}
	seqs := [3]string{}
	meta := output.Meta{RunID: runID}
	for r, e := range entries {
		seqs[r] = string(e.Sequence)
		meta.Names[r] = e.Header
		log.Debug("read sequence", "file", args[r], "header", e.Header, "length", len(e.Sequence))
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	start := time.Now()
	t, err := align.Fill(seqs[0], seqs[1], seqs[2], cfg.ScoringOptions()...)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)
	metrics.ObserveFill(workers, t.Cells(), elapsed)

	aln, err := align.Traceback(seqs[0], seqs[1], seqs[2], t)
	if err != nil {
		return err
	}
	if f.verify {
		if err = aln.Verify(seqs[0], seqs[1], seqs[2], cfg.Table(), cfg.GapPenalty); err != nil {
			return err
		}
	}
	log.Info("aligned",
		slog.Int("score", aln.Score),
		slog.Int("columns", aln.Len()),
		slog.Int("cells", t.Cells()),
		slog.Int("workers", workers),
		slog.Duration("fill", elapsed),
	)

	if err = output.Write(cmd.OutOrStdout(), format, aln, meta); err != nil {
		return err
	}
	metrics.Columns.Set(float64(aln.Len()))
	metrics.Done(telemetry.OutcomeOK)

	return nil
}

// readInputs reads the three FASTA files concurrently. Standard input may be
// named at most once.
func readInputs(paths []string) ([3]fasta.Entry, error) {
	var entries [3]fasta.Entry
	stdin := 0
	for _, p := range paths {
		if p == "-" {
			stdin++
		}
	}
	if stdin > 1 {
		return entries, errors.New("standard input can be read only once")
	}

	var g errgroup.Group
	for r, p := range paths {
		r, p := r, p
		g.Go(func() error {
			e, err := fasta.ReadFile(p, align.Alphabet)
			if err != nil {
				return fmt.Errorf("seq%d: %w", r+1, err)
			}
			entries[r] = e

			return nil
		})
	}

	return entries, g.Wait()
}

// outcome maps an error to a metrics label.
func outcome(err error) string {
	switch {
	case errors.Is(err, fasta.ErrBadSymbol), errors.Is(err, align.ErrInvalidSymbol),
		errors.Is(err, config.ErrInvalid), errors.Is(err, align.ErrBadScoring):
		return telemetry.OutcomeInvalid
	case errors.Is(err, align.ErrTableTooLarge):
		return telemetry.OutcomeTooLarge
	case errors.Is(err, align.ErrMalformedAlignment):
		return telemetry.OutcomeUnverified
	}

	return telemetry.OutcomeInternalErr
}
