// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"orfscan-core/codon"
	"orfscan/internal/cli"
	"orfscan/internal/config"
	"orfscan/internal/pipeline"
	"orfscan/internal/writers"
)

// Exit codes: 0 success, --no-orf-exit-code when nothing was found,
// 2 usage/input/data errors, 3 write errors, 130 cancellation.

// RunContext parses argv, runs the scan, and returns the process exit code.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	exit := 0
	root := cli.NewRootCmd(func(cmd *cobra.Command, args []string) error {
		cfg, err := config.New()
		if err != nil {
			exit = 2
			return err
		}
		if err := cfg.Validate(); err != nil {
			exit = 2
			return err
		}
		if len(args) == 0 {
			exit = 2
			return errors.New("at least one FASTA file (or '-') is required")
		}
		exit = run(cmd.Context(), cfg, args, stdout, stderr)
		return nil
	})
	root.SetArgs(argv)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.ExecuteContext(parent); err != nil {
		fmt.Fprintln(stderr, err)
		if exit == 0 {
			exit = 2
		}
	}
	return exit
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func run(ctx context.Context, cfg config.Config, seqFiles []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr)
	switch {
	case cfg.Verbose:
		logger.SetLevel(log.DebugLevel)
	case cfg.Quiet:
		logger.SetLevel(log.ErrorLevel)
	default:
		logger.SetLevel(log.InfoLevel)
	}

	table, err := codon.ByName(cfg.Table)
	if err != nil {
		logger.Error("bad codon table", "err", err)
		return 2
	}
	logger.Debug("resolved codon table", "name", table.Name(), "starts", table.StartCodons())

	thr := cfg.Threads
	if thr <= 0 {
		thr = runtime.NumCPU()
	}

	outw := bufio.NewWriter(stdout)
	inCh, writeErr := writers.StartORFWriter(outw, cfg.Output, !cfg.NoHeader, cfg.Pretty, thr*4)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	emitted := 0
	stats, perr := pipeline.ForEachORF(ctx, pipeline.Config{
		Threads:       thr,
		Table:         table,
		MinProteinLen: cfg.MinProteinLength,
		Policy:        cfg.Policy(),
		Strict:        cfg.Strict,
	}, seqFiles, func(o pipeline.ScannedORF) error {
		select {
		case inCh <- o:
			emitted++
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	})
	close(inCh)

	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		return 0
	} else if werr != nil {
		fmt.Fprintln(stderr, werr)
		return 3
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		fmt.Fprintln(stderr, e)
		return 3
	}

	if perr != nil {
		if errors.Is(perr, context.Canceled) || errors.Is(perr, context.DeadlineExceeded) {
			return 130
		}
		var te *codon.TranslationError
		if errors.As(perr, &te) {
			logger.Error("scan aborted on untranslatable codon",
				"codon", te.Codon, "codon_index", te.Index)
		} else {
			logger.Error("scan failed", "err", perr)
		}
		return 2
	}

	for _, s := range stats.Skips {
		logger.Warn("skipped untranslatable ORF",
			"sequence", s.SequenceID, "codon", s.Codon, "codon_index", s.Index)
	}
	logger.Info("scan complete",
		"sequences", stats.Sequences,
		"frames", stats.Frames,
		"orfs_found", stats.Found,
		"translated", stats.Translated,
		"skipped", len(stats.Skips),
		"written", emitted,
	)

	if emitted == 0 {
		return cfg.NoORFExitCode
	}
	return 0
}
