// internal/output/json.go
package output

import (
	"encoding/json"
	"io"

	"orfscan/internal/pipeline"
	"orfscan/pkg/api"
)

// ToAPIORF converts a scanned ORF to the stable wire schema (v1).
func ToAPIORF(o pipeline.ScannedORF) api.ORFV1 {
	return api.ORFV1{
		SequenceID: o.SequenceID,
		Strand:     o.Strand.String(),
		Frame:      o.Offset,
		Start:      o.Start,
		End:        o.End,
		Length:     o.Length(),
		Protein:    o.Protein,
		Seq:        o.Nt,
		SourceFile: o.SourceFile,
	}
}

// WriteJSON writes a single pretty-indented JSON array of v1 ORFs.
func WriteJSON(w io.Writer, list []pipeline.ScannedORF) error {
	out := make([]api.ORFV1, 0, len(list))
	for _, o := range list {
		out = append(out, ToAPIORF(o))
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
