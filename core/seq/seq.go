// core/seq/seq.go
package seq

import "fmt"

// Sequence is a validated, uppercase nucleotide sequence. Construct one with
// New or NewIUPAC; callers must not mutate it afterwards, and no function in
// this module ever does.
type Sequence []byte

// InvalidSequenceError reports the earliest symbol outside the accepted
// alphabet. Pos is 0-based.
type InvalidSequenceError struct {
	Sym byte
	Pos int
}

func (e *InvalidSequenceError) Error() string {
	return fmt.Sprintf("invalid nucleotide %q at position %d", e.Sym, e.Pos)
}

// Complement table over the IUPAC nucleotide codes. A zero entry marks a
// symbol that is not a nucleotide code at all.
var complement [256]byte

func init() {
	set := func(a, b byte) { complement[a] = b; complement[b] = a }
	set('A', 'T')
	set('C', 'G')
	set('R', 'Y') // puRine / pYrimidine
	set('K', 'M')
	set('B', 'V')
	set('D', 'H')
	complement['S'] = 'S'
	complement['W'] = 'W'
	complement['N'] = 'N'
}

func isStrict(b byte) bool {
	return b == 'A' || b == 'C' || b == 'G' || b == 'T'
}

// New validates raw against the strict {A,C,G,T} alphabet and returns an
// uppercase copy. Lowercase input is accepted; anything else fails with an
// *InvalidSequenceError at the first offending position.
func New(raw []byte) (Sequence, error) {
	return build(raw, false)
}

// NewIUPAC is like New but admits the full IUPAC ambiguity alphabet
// (R, Y, S, W, K, M, B, D, H, V, N) alongside A/C/G/T. Real genome files
// routinely carry N runs; use this constructor for them and let translation
// decide what to do with ambiguous codons.
func NewIUPAC(raw []byte) (Sequence, error) {
	return build(raw, true)
}

// NewFromString is a convenience wrapper around New for literals.
func NewFromString(raw string) (Sequence, error) {
	return New([]byte(raw))
}

func build(raw []byte, iupac bool) (Sequence, error) {
	out := make([]byte, len(raw))
	for i, b := range raw {
		if b >= 'a' && b <= 'z' {
			b -= 'a' - 'A'
		}
		if complement[b] == 0 || (!iupac && !isStrict(b)) {
			return nil, &InvalidSequenceError{Sym: raw[i], Pos: i}
		}
		out[i] = b
	}
	return Sequence(out), nil
}

// RevComp returns the reverse complement as an independent Sequence; the
// receiver is left untouched. Applying it twice yields the original.
func (s Sequence) RevComp() Sequence {
	n := len(s)
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = complement[s[n-1-i]]
	}
	return Sequence(out)
}

func (s Sequence) Len() int { return len(s) }

func (s Sequence) String() string { return string(s) }
