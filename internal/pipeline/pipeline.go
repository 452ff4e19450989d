// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"orfscan-core/codon"
	"orfscan-core/fasta"
	"orfscan-core/orf"
	"orfscan-core/seq"
)

// Config controls the scanning pipeline.
type Config struct {
	Threads       int // worker goroutines (>=1)
	Table         *codon.Table
	MinProteinLen int
	Policy        orf.Policy
	Strict        bool // reject IUPAC ambiguity codes at sequence load
}

// ScannedORF ties one scan result to the record and file it came from.
type ScannedORF struct {
	SourceFile string
	SequenceID string
	orf.ORF
}

// Skip notes one ORF dropped for an untranslatable codon.
type Skip struct {
	SequenceID string
	Codon      string
	Index      int
}

// Stats aggregates counters across all scanned records.
type Stats struct {
	Sequences  int
	Frames     int
	Found      int
	Translated int
	Skips      []Skip
}

// ForEachORF streams ORFs from seqFiles through visit in canonical order:
// file order, record order within a file, then frame order and ascending
// span start within a record. Scanning runs on cfg.Threads workers; the
// collector re-sorts completion order back to record order before visiting,
// so output never depends on scheduling.
//
// The first error stops the whole run: an invalid sequence, an aborted
// translation, an unreadable file, a failed visit, or cancellation.
func ForEachORF(ctx context.Context, cfg Config, seqFiles []string, visit func(ScannedORF) error) (Stats, error) {
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}

	type job struct {
		idx  int
		file string
		rec  fasta.Record
	}
	type batch struct {
		idx   int
		seqID string
		orfs  []ScannedORF
		stats orf.Stats
	}

	jobs := make(chan job, cfg.Threads*2)
	results := make(chan batch, cfg.Threads*2)

	g, ctx := errgroup.WithContext(ctx)

	// Producer: streams records from every file, in order.
	g.Go(func() error {
		defer close(jobs)
		idx := 0
		for _, path := range seqFiles {
			err := fasta.StreamPathCtx(ctx, path, func(r fasta.Record) error {
				select {
				case jobs <- job{idx: idx, file: path, rec: r}:
					idx++
					return nil
				case <-ctx.Done():
					return ctx.Err()
				}
			})
			if err != nil {
				return err
			}
		}
		return nil
	})

	scan := func(j job) (batch, error) {
		var (
			s   seq.Sequence
			err error
		)
		if cfg.Strict {
			s, err = seq.New(j.rec.Seq)
		} else {
			s, err = seq.NewIUPAC(j.rec.Seq)
		}
		if err != nil {
			return batch{}, fmt.Errorf("%s: record %q: %w", j.file, j.rec.ID, err)
		}
		orfs, st, err := orf.Scan(s, cfg.Table, cfg.MinProteinLen, cfg.Policy)
		if err != nil {
			return batch{}, fmt.Errorf("%s: record %q: %w", j.file, j.rec.ID, err)
		}
		out := make([]ScannedORF, 0, len(orfs))
		for _, o := range orfs {
			out = append(out, ScannedORF{SourceFile: j.file, SequenceID: j.rec.ID, ORF: o})
		}
		return batch{idx: j.idx, seqID: j.rec.ID, orfs: out, stats: st}, nil
	}

	var wwg sync.WaitGroup
	for w := 0; w < cfg.Threads; w++ {
		wwg.Add(1)
		g.Go(func() error {
			defer wwg.Done()
			for j := range jobs {
				b, err := scan(j)
				if err != nil {
					return err
				}
				select {
				case results <- b:
				case <-ctx.Done():
					return ctx.Err()
				}
			}
			return nil
		})
	}
	go func() {
		wwg.Wait()
		close(results)
	}()

	// Collector: reassembles record order and aggregates stats.
	var stats Stats
	g.Go(func() error {
		pending := make(map[int]batch)
		next := 0
		for b := range results {
			pending[b.idx] = b
			for {
				nb, ok := pending[next]
				if !ok {
					break
				}
				delete(pending, next)
				next++

				stats.Sequences++
				stats.Frames += nb.stats.Frames
				stats.Found += nb.stats.Found
				stats.Translated += nb.stats.Translated
				for _, te := range nb.stats.Skips {
					stats.Skips = append(stats.Skips, Skip{
						SequenceID: nb.seqID,
						Codon:      te.Codon,
						Index:      te.Index,
					})
				}
				for _, o := range nb.orfs {
					if err := visit(o); err != nil {
						return err
					}
				}
			}
		}
		return nil
	})

	err := g.Wait()
	return stats, err
}
