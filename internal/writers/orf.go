// internal/writers/orf.go
package writers

import (
	"fmt"
	"io"

	"orfscan/internal/output"
	"orfscan/internal/pipeline"
	"orfscan/internal/pretty"
)

// StartORFWriter spins up a writer goroutine consuming scanned ORFs. The
// pipeline already delivers canonical order, so text and fasta stream row
// by row; json buffers to emit one array. The error channel yields exactly
// one value after the input channel is closed and drained.
func StartORFWriter(out io.Writer, format string, header, prettyMode bool, bufSize int) (chan<- pipeline.ScannedORF, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan pipeline.ScannedORF, bufSize)
	errCh := make(chan error, 1)

	go func() {
		var err error
		switch format {
		case "json":
			var buf []pipeline.ScannedORF
			for o := range in {
				buf = append(buf, o)
			}
			err = output.WriteJSON(out, buf)

		case "fasta":
			err = output.StreamFASTA(out, in)

		case "text":
			var render output.Renderer
			if prettyMode {
				render = pretty.RenderORF
			}
			err = output.StreamText(out, in, header, render)

		default:
			err = fmt.Errorf("unsupported output %q", format)
		}
		// Drain so producers never block after a writer error.
		for range in {
		}
		errCh <- err
	}()

	return in, errCh
}
