// internal/output/fasta.go
package output

import (
	"fmt"
	"io"

	"orfscan/internal/pipeline"
)

// StreamFASTA streams protein FASTA records from a channel to the writer.
// Record ids are <sequence_id>_orf<N> with strand/frame/coordinates in the
// description.
func StreamFASTA(w io.Writer, in <-chan pipeline.ScannedORF) error {
	idx := 1
	for o := range in {
		if err := writeFastaRecord(w, o, idx); err != nil {
			return err
		}
		idx++
	}
	return nil
}

// WriteFASTA writes a slice of ORFs as protein FASTA records.
func WriteFASTA(w io.Writer, list []pipeline.ScannedORF) error {
	for i, o := range list {
		if err := writeFastaRecord(w, o, i+1); err != nil {
			return err
		}
	}
	return nil
}

func writeFastaRecord(w io.Writer, o pipeline.ScannedORF, idx int) error {
	_, err := fmt.Fprintf(w,
		">%s_orf%d strand=%s frame=%d start=%d end=%d len=%d\n%s\n",
		o.SequenceID, idx, o.Strand, o.Offset, o.Start, o.End, o.Length(), o.Protein,
	)
	return err
}
