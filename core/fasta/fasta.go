// core/fasta/fasta.go
package fasta

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
)

// Record is one parsed FASTA record. Seq is the raw sequence bytes exactly
// as read; validation is the caller's concern.
type Record struct {
	ID  string
	Seq []byte
}

// StreamRecordsCtx parses FASTA from r and emits whole records in file
// order. Records are never windowed: a reading-frame scan needs the full
// sequence to keep codon phase. Cancellation via ctx is honored between
// lines; a non-nil error from emit stops the stream.
func StreamRecordsCtx(ctx context.Context, r io.Reader, emit func(Record) error) error {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)
	buf := make([]byte, 64*1024)
	sc.Buffer(buf, maxLine)

	var (
		id  string
		any bool
		seq = make([]byte, 0, 1<<20)
	)

	flush := func() error {
		if !any {
			return nil
		}
		return emit(Record{ID: id, Seq: append([]byte(nil), seq...)})
	}

	for sc.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			if err := flush(); err != nil {
				return err
			}
			id = parseHeaderID(line[1:])
			any = true
			seq = seq[:0]
			continue
		}
		line = bytes.TrimSpace(line)
		if len(line) > 0 {
			seq = append(seq, line...)
			any = true
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("fasta scan: %w", err)
	}
	return flush()
}

// StreamPathCtx opens path ("-" reads stdin; gzip is detected by magic
// number or .gz suffix) and streams its records.
func StreamPathCtx(ctx context.Context, path string, emit func(Record) error) error {
	rc, err := openReader(path)
	if err != nil {
		return err
	}
	defer rc.Close()
	return StreamRecordsCtx(ctx, rc, emit)
}

// Records is the channel wrapper around StreamPathCtx. Open errors for
// non-stdin paths are reported before any goroutine starts; scan-time
// errors are delivered on the second channel after the record channel
// closes.
func Records(ctx context.Context, path string) (<-chan Record, <-chan error, error) {
	if path != "-" {
		rc, err := openReader(path)
		if err != nil {
			return nil, nil, err
		}
		_ = rc.Close()
	}

	out := make(chan Record, 8)
	errCh := make(chan error, 1)
	go func() {
		defer close(out)
		errCh <- StreamPathCtx(ctx, path, func(r Record) error {
			select {
			case out <- r:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
	}()
	return out, errCh, nil
}

func parseHeaderID(hdr []byte) string {
	hdr = bytes.TrimSpace(hdr)
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return string(hdr[:i])
	}
	return string(hdr)
}
