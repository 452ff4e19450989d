// core/codon/tables.go
package codon

import (
	"fmt"
	"strconv"
	"strings"

	polycodon "github.com/bebop/poly/synthesis/codon"
)

// Builtin table names accepted by ByName.
const (
	Standard                = "standard"
	VertebrateMitochondrial = "vertebrate-mitochondrial"
	Bacterial               = "bacterial"
)

// NCBI genetic-code ids for the builtin names.
var builtins = map[string]int{
	Standard:                1,
	VertebrateMitochondrial: 2,
	Bacterial:               11,
}

// FromNCBI builds a Table from the NCBI translation table with the given id,
// keeping that table's own start-codon set (bacterial tables designate GTG
// and TTG alongside ATG).
func FromNCBI(id int) (*Table, error) {
	pt, err := polycodon.NewTranslationTable(id)
	if err != nil {
		return nil, fmt.Errorf("codon table %d: %w", id, err)
	}

	forward := make(map[string]byte, 64)
	const bases = "TCAG"
	for _, a := range bases {
		for _, b := range bases {
			for _, c := range bases {
				triplet := string([]byte{byte(a), byte(b), byte(c)})
				aa, err := pt.Translate(triplet)
				if err != nil || aa == "" {
					continue
				}
				forward[triplet] = aa[0]
			}
		}
	}

	starts := make(map[string]struct{}, len(pt.StartCodons))
	for _, c := range pt.StartCodons {
		starts[strings.ToUpper(c)] = struct{}{}
	}

	return &Table{
		name:    fmt.Sprintf("ncbi-%d", id),
		forward: forward,
		starts:  starts,
	}, nil
}

// ByName resolves a builtin name ("standard", "vertebrate-mitochondrial",
// "bacterial"; spaces and case are forgiven) or a numeric NCBI table id.
//
// The standard table's start set is forced to {ATG}: the NCBI data lists TTG
// and CTG as rare alternative starts, but the basic scanner treats only ATG
// as an opening codon.
func ByName(name string) (*Table, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.ReplaceAll(key, " ", "-")
	key = strings.ReplaceAll(key, "_", "-")

	if id, ok := builtins[key]; ok {
		t, err := FromNCBI(id)
		if err != nil {
			return nil, err
		}
		t.name = key
		if key == Standard {
			t.starts = map[string]struct{}{"ATG": {}}
		}
		return t, nil
	}
	if id, err := strconv.Atoi(key); err == nil {
		return FromNCBI(id)
	}
	return nil, fmt.Errorf("unknown codon table %q", name)
}
