// internal/pretty/pretty.go
package pretty

import (
	"strings"

	"orfscan/internal/pipeline"
)

// Options controls the rendered block.
type Options struct {
	CodonsPerLine int
}

var DefaultOptions = Options{CodonsPerLine: 15}

// RenderORF renders a codon-aligned block for one ORF: the span's
// nucleotides grouped as codons with the translated amino acid under each
// codon's first base.
//
//	ATG AAA TGG
//	M   K   W
func RenderORF(o pipeline.ScannedORF) string {
	return RenderORFWithOptions(o, DefaultOptions)
}

func RenderORFWithOptions(o pipeline.ScannedORF, opt Options) string {
	per := opt.CodonsPerLine
	if per <= 0 {
		per = DefaultOptions.CodonsPerLine
	}

	nt := o.Nt
	aa := o.Protein
	var b strings.Builder
	for line := 0; line*3*per < len(nt); line++ {
		var nts, aas []string
		for c := line * per; c < (line+1)*per && c*3 < len(nt); c++ {
			nts = append(nts, nt[c*3:min(c*3+3, len(nt))])
			if c < len(aa) {
				aas = append(aas, string(aa[c])+"  ")
			}
		}
		b.WriteString("  ")
		b.WriteString(strings.Join(nts, " "))
		b.WriteByte('\n')
		b.WriteString("  ")
		b.WriteString(strings.TrimRight(strings.Join(aas, " "), " "))
		b.WriteByte('\n')
	}
	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
