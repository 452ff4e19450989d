package seq

import (
	"errors"
	"testing"
)

func TestNewNormalizesCase(t *testing.T) {
	s, err := New([]byte("acgtACGT"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if s.String() != "ACGTACGT" {
		t.Fatalf("got %q, want ACGTACGT", s)
	}
}

func TestNewRejectsAmbiguity(t *testing.T) {
	_, err := New([]byte("ACGNACGT"))
	var ise *InvalidSequenceError
	if !errors.As(err, &ise) {
		t.Fatalf("expected InvalidSequenceError, got %v", err)
	}
	if ise.Sym != 'N' || ise.Pos != 3 {
		t.Fatalf("wrong error detail: %+v", ise)
	}
}

func TestNewRejectsGarbage(t *testing.T) {
	for _, in := range []string{"ACG-T", "AC GT", "ACGU", "ACG1"} {
		if _, err := New([]byte(in)); err == nil {
			t.Errorf("New(%q): expected error", in)
		}
		if _, err := NewIUPAC([]byte(in)); err == nil {
			t.Errorf("NewIUPAC(%q): expected error", in)
		}
	}
}

func TestNewIUPACAcceptsAmbiguity(t *testing.T) {
	s, err := NewIUPAC([]byte("acgtnRYSWKMBDHV"))
	if err != nil {
		t.Fatalf("NewIUPAC: %v", err)
	}
	if s.String() != "ACGTNRYSWKMBDHV" {
		t.Fatalf("got %q", s)
	}
}

func TestEmptySequence(t *testing.T) {
	s, err := New(nil)
	if err != nil {
		t.Fatalf("New(nil): %v", err)
	}
	if s.Len() != 0 || s.RevComp().Len() != 0 {
		t.Fatal("empty sequence should stay empty")
	}
}

// Snapshot: RevComp over the full ambiguity alphabet + ACGT. Asserts the
// exact bytes the current complement table produces.
func TestComplementTable_Snapshot(t *testing.T) {
	s, err := NewIUPAC([]byte("RYSWKMBDHVNACGT"))
	if err != nil {
		t.Fatalf("NewIUPAC: %v", err)
	}
	want := "ACGTNBDHVKMWSRY"
	if got := s.RevComp().String(); got != want {
		t.Fatalf("complement table changed:\n got  %s\n want %s", got, want)
	}
}

func TestRevCompRoundTrip(t *testing.T) {
	for _, in := range []string{"", "A", "AC", "ACGT", "TCTCTACGATGCTGAAAATTGTTACTCGGGCTGGACACACAGCTAGAATATCGTGAA"} {
		s, err := New([]byte(in))
		if err != nil {
			t.Fatalf("New(%q): %v", in, err)
		}
		if got := s.RevComp().RevComp().String(); got != in {
			t.Errorf("round trip of %q gave %q", in, got)
		}
	}
}

func TestRevCompKnownStrand(t *testing.T) {
	s, err := New([]byte("TCTCTACGATGCTGAAAATTGTTACTCGGGCTGGACACACAGCTAGAATATCGTGAA"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	want := "TTCACGATATTCTAGCTGTGTGTCCAGCCCGAGTAACAATTTTCAGCATCGTAGAGA"
	if got := s.RevComp().String(); got != want {
		t.Fatalf("revcomp mismatch:\n got  %s\n want %s", got, want)
	}
}

func TestRevCompDoesNotShareState(t *testing.T) {
	s, _ := New([]byte("ACGT"))
	rc := s.RevComp()
	rc[0] = 'G'
	if s.String() != "ACGT" {
		t.Fatal("RevComp must not alias the original sequence")
	}
}
