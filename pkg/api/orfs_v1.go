// pkg/api/orfs_v1.go
package api

// ORFV1 is the stable JSON schema for scanned open reading frames.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type ORFV1 struct {
	SequenceID string `json:"sequence_id"`
	Strand     string `json:"strand"` // "+" | "-"
	Frame      int    `json:"frame"`  // offset 0..2 within the strand
	Start      int    `json:"start"`  // 0-based, forward-reference coordinates
	End        int    `json:"end"`    // exclusive, stop codon not included
	Length     int    `json:"length"` // nt length of the span
	Protein    string `json:"protein"`
	Seq        string `json:"seq,omitempty"`
	SourceFile string `json:"source_file,omitempty"`
}
