// core/codon/table.go
package codon

import (
	"fmt"
	"sort"
)

// Stop is the sentinel amino-acid symbol for stop codons.
const Stop = '*'

// Table maps well-formed codons to amino-acid symbols (Stop for stop
// codons) and carries the designated start-codon set. Codons containing
// ambiguity codes have no entry.
type Table struct {
	name    string
	forward map[string]byte
	starts  map[string]struct{}
}

// TranslationError reports a codon with no entry in the table, e.g. one
// containing an ambiguity code. Index is the codon index within the frame
// being translated.
type TranslationError struct {
	Codon string
	Index int
}

func (e *TranslationError) Error() string {
	return fmt.Sprintf("untranslatable codon %q at codon index %d", e.Codon, e.Index)
}

func (t *Table) Name() string { return t.name }

// Lookup returns the amino-acid symbol for codon, or false when the codon
// has no entry.
func (t *Table) Lookup(codon string) (byte, bool) {
	aa, ok := t.forward[codon]
	return aa, ok
}

func (t *Table) IsStart(codon string) bool {
	_, ok := t.starts[codon]
	return ok
}

func (t *Table) IsStop(codon string) bool {
	return t.forward[codon] == Stop
}

// StartCodons returns the start set in sorted order.
func (t *Table) StartCodons() []string {
	out := make([]string, 0, len(t.starts))
	for c := range t.starts {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}
