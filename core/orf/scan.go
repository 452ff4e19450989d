// core/orf/scan.go
package orf

import (
	"errors"
	"strings"

	"orfscan-core/codon"
	"orfscan-core/seq"
)

// Span is a half-open codon-index range [Start, Stop) within one frame,
// delimited by a start codon at Start and the nearest following stop codon
// at Stop. The stop codon itself is excluded.
type Span struct {
	Start int
	Stop  int
}

// Len is the span length in codons.
func (s Span) Len() int { return s.Stop - s.Start }

// FindORFs scans one frame's codons left to right. At each unconsumed index
// holding a start codon it searches forward for the nearest stop codon,
// emits the span, and resumes strictly after the consumed stop. A start with
// no following stop yields no span: the ORF is unterminated and dropped.
//
// The result is deterministic, pairwise non-overlapping, and strictly
// increasing in start index. Start codons inside an emitted span's interior
// are never treated as independent openings; this is the greedy first-match
// policy, not an exhaustive enumeration of start/stop pairings.
func FindORFs(f Frame, table *codon.Table) []Span {
	var spans []Span
	for i := 0; i < len(f.Codons); i++ {
		if !table.IsStart(f.Codons[i]) {
			continue
		}
		stop := -1
		for j := i + 1; j < len(f.Codons); j++ {
			if table.IsStop(f.Codons[j]) {
				stop = j
				break
			}
		}
		if stop < 0 {
			// No stop remains anywhere in the frame, so no later start
			// can terminate either.
			break
		}
		spans = append(spans, Span{Start: i, Stop: stop})
		i = stop // loop increment resumes at stop+1
	}
	return spans
}

// TranslateSpan maps the span's codons through the table. It fails with a
// *codon.TranslationError naming the offending codon and its frame index;
// the caller decides whether to skip the ORF or abort.
func TranslateSpan(f Frame, sp Span, table *codon.Table) (string, error) {
	var b strings.Builder
	b.Grow(sp.Len())
	for i := sp.Start; i < sp.Stop; i++ {
		aa, ok := table.Lookup(f.Codons[i])
		if !ok {
			return "", &codon.TranslationError{Codon: f.Codons[i], Index: i}
		}
		b.WriteByte(aa)
	}
	return b.String(), nil
}

// Policy selects how Scan treats an ORF whose translation fails.
type Policy int

const (
	// SkipUntranslatable drops the offending ORF and keeps scanning.
	SkipUntranslatable Policy = iota
	// AbortOnUntranslatable fails the whole scan with no results.
	AbortOnUntranslatable
)

// ORF is one qualifying open reading frame found by Scan.
type ORF struct {
	Strand  Strand
	Offset  int
	Span    Span
	Start   int    // 0-based nt start on the forward reference, inclusive
	End     int    // nt end on the forward reference, exclusive of the stop codon
	Nt      string // nucleotide sequence of the span, in strand orientation
	Protein string
}

// Length is the ORF length in nucleotides, excluding the stop codon.
func (o ORF) Length() int { return len(o.Nt) }

// Stats counts the work done by one Scan call.
type Stats struct {
	Frames     int
	Found      int
	Translated int
	Skips      []codon.TranslationError
}

// Skipped is the number of ORFs dropped under SkipUntranslatable.
func (s Stats) Skipped() int { return len(s.Skips) }

// Scan builds the six frames of s, finds the ORFs in each, translates them
// through table, and keeps those whose protein is at least minProteinLen
// amino acids long. Results follow frame order (forward 0,1,2 then reverse
// 0,1,2) and ascending span start within a frame; rerunning on the same
// input yields identical output.
//
// Under AbortOnUntranslatable the first translation failure is returned
// with no results; under SkipUntranslatable it is recorded in Stats.Skips
// and scanning continues.
func Scan(s seq.Sequence, table *codon.Table, minProteinLen int, policy Policy) ([]ORF, Stats, error) {
	var (
		out   []ORF
		stats Stats
	)
	for _, f := range BuildFrames(s) {
		stats.Frames++
		for _, sp := range FindORFs(f, table) {
			stats.Found++
			protein, err := TranslateSpan(f, sp, table)
			if err != nil {
				if policy == AbortOnUntranslatable {
					return nil, stats, err
				}
				var te *codon.TranslationError
				if errors.As(err, &te) {
					stats.Skips = append(stats.Skips, *te)
				}
				continue
			}
			stats.Translated++
			if len(protein) < minProteinLen {
				continue
			}
			out = append(out, newORF(len(s), f, sp, protein))
		}
	}
	return out, stats, nil
}

func newORF(seqLen int, f Frame, sp Span, protein string) ORF {
	// Strand-local nt coordinates of the span.
	local := f.Offset + 3*sp.Start
	localEnd := f.Offset + 3*sp.Stop

	start, end := local, localEnd
	if f.Strand == Reverse {
		// Map back onto the forward reference.
		start, end = seqLen-localEnd, seqLen-local
	}

	return ORF{
		Strand:  f.Strand,
		Offset:  f.Offset,
		Span:    sp,
		Start:   start,
		End:     end,
		Nt:      strings.Join(f.Codons[sp.Start:sp.Stop], ""),
		Protein: protein,
	}
}
