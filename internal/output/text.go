// internal/output/text.go
package output

import (
	"fmt"
	"io"

	"orfscan/internal/pipeline"
)

// Renderer turns one ORF into an extra display block under its row.
type Renderer func(pipeline.ScannedORF) string

// StreamText writes one TSV row per ORF as they arrive. When render is
// non-nil its block is printed after each row.
func StreamText(w io.Writer, in <-chan pipeline.ScannedORF, header bool, render Renderer) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for o := range in {
		if _, err := fmt.Fprintln(w, FormatRowTSV(o)); err != nil {
			return err
		}
		if render != nil {
			if _, err := io.WriteString(w, render(o)); err != nil {
				return err
			}
		}
	}
	return nil
}

// WriteText is the slice counterpart of StreamText.
func WriteText(w io.Writer, list []pipeline.ScannedORF, header bool, render Renderer) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for _, o := range list {
		if _, err := fmt.Fprintln(w, FormatRowTSV(o)); err != nil {
			return err
		}
		if render != nil {
			if _, err := io.WriteString(w, render(o)); err != nil {
				return err
			}
		}
	}
	return nil
}
