// core/orf/frame.go
package orf

import "orfscan-core/seq"

// Strand selects the forward sequence or its reverse complement.
type Strand int

const (
	Forward Strand = iota
	Reverse
)

func (s Strand) String() string {
	if s == Forward {
		return "+"
	}
	return "-"
}

// Frame is one of the six reading frames: a strand and a 0/1/2 offset.
// Codons holds the non-overlapping 3-nt codons read from the strand
// sequence starting at Offset; a trailing fragment shorter than a codon is
// dropped.
type Frame struct {
	Strand Strand
	Offset int
	Codons []string
}

// BuildFrames derives the six reading frames of s in canonical order:
// forward offsets 0,1,2 then reverse-complement offsets 0,1,2. An empty or
// very short sequence yields six frames with few or no codons.
func BuildFrames(s seq.Sequence) []Frame {
	strands := []struct {
		strand Strand
		nts    seq.Sequence
	}{
		{Forward, s},
		{Reverse, s.RevComp()},
	}

	frames := make([]Frame, 0, 6)
	for _, st := range strands {
		for off := 0; off < 3; off++ {
			frames = append(frames, Frame{
				Strand: st.strand,
				Offset: off,
				Codons: codons(st.nts, off),
			})
		}
	}
	return frames
}

func codons(nts seq.Sequence, off int) []string {
	n := (len(nts) - off) / 3
	if n <= 0 {
		return nil
	}
	out := make([]string, 0, n)
	for i := off; i+3 <= len(nts); i += 3 {
		out = append(out, string(nts[i:i+3]))
	}
	return out
}
