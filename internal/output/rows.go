// internal/output/rows.go
package output

import (
	"fmt"

	"orfscan/internal/pipeline"
)

// FormatRowTSV returns the base columns for one ORF (no trailing newline).
func FormatRowTSV(o pipeline.ScannedORF) string {
	return fmt.Sprintf("%s\t%s\t%s\t%d\t%d\t%d\t%d\t%d\t%s",
		o.SourceFile, o.SequenceID,
		o.Strand, o.Offset,
		o.Start, o.End, o.Length(),
		len(o.Protein), o.Protein,
	)
}
