package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"orfscan-core/codon"
	"orfscan-core/orf"
	"orfscan-core/seq"
)

func writeFasta(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func standard(t *testing.T) *codon.Table {
	t.Helper()
	tab, err := codon.ByName("standard")
	if err != nil {
		t.Fatalf("codon.ByName: %v", err)
	}
	return tab
}

func TestForEachORFOrderedAcrossWorkers(t *testing.T) {
	// Many records, several workers: visit order must still be record
	// order regardless of which worker finishes first.
	data := ""
	for i := 0; i < 20; i++ {
		data += ">r" + string(rune('a'+i)) + "\nATGAAATAA\n"
	}
	path := writeFasta(t, "many.fa", data)

	cfg := Config{Threads: 8, Table: standard(t), Policy: orf.SkipUntranslatable}
	var ids []string
	stats, err := ForEachORF(context.Background(), cfg, []string{path}, func(o ScannedORF) error {
		ids = append(ids, o.SequenceID)
		return nil
	})
	if err != nil {
		t.Fatalf("ForEachORF: %v", err)
	}
	if stats.Sequences != 20 || stats.Frames != 120 {
		t.Fatalf("stats = %+v", stats)
	}
	if len(ids) != 20 {
		t.Fatalf("got %d ORFs, want 20", len(ids))
	}
	for i, id := range ids {
		want := "r" + string(rune('a'+i))
		if id != want {
			t.Fatalf("ids[%d] = %s, want %s (completion order leaked)", i, id, want)
		}
	}
}

func TestForEachORFSpansMultipleFiles(t *testing.T) {
	a := writeFasta(t, "a.fa", ">one\nATGAAATAA\n")
	b := writeFasta(t, "b.fa", ">two\nTTATTTCAT\n")

	cfg := Config{Threads: 2, Table: standard(t)}
	var got []ScannedORF
	_, err := ForEachORF(context.Background(), cfg, []string{a, b}, func(o ScannedORF) error {
		got = append(got, o)
		return nil
	})
	if err != nil {
		t.Fatalf("ForEachORF: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("orfs = %+v", got)
	}
	if got[0].SourceFile != a || got[1].SourceFile != b {
		t.Errorf("file order not preserved: %s then %s", got[0].SourceFile, got[1].SourceFile)
	}
	if got[1].Strand != orf.Reverse {
		t.Errorf("second ORF should sit on the reverse strand")
	}
}

func TestForEachORFSkipPolicyRecordsSkips(t *testing.T) {
	path := writeFasta(t, "amb.fa", ">amb\nATGANATAAATGAAAAAATAA\n")

	cfg := Config{Threads: 1, Table: standard(t), Policy: orf.SkipUntranslatable}
	var proteins []string
	stats, err := ForEachORF(context.Background(), cfg, []string{path}, func(o ScannedORF) error {
		proteins = append(proteins, o.Protein)
		return nil
	})
	if err != nil {
		t.Fatalf("ForEachORF: %v", err)
	}
	if len(stats.Skips) != 1 || stats.Skips[0].Codon != "ANA" || stats.Skips[0].SequenceID != "amb" {
		t.Fatalf("skips = %+v", stats.Skips)
	}
	found := false
	for _, p := range proteins {
		if p == "MKK" {
			found = true
		}
	}
	if !found {
		t.Fatalf("clean ORF lost under skip policy: %v", proteins)
	}
}

func TestForEachORFAbortPolicyFailsRun(t *testing.T) {
	path := writeFasta(t, "amb.fa", ">amb\nATGANATAA\n")

	cfg := Config{Threads: 1, Table: standard(t), Policy: orf.AbortOnUntranslatable}
	_, err := ForEachORF(context.Background(), cfg, []string{path}, func(ScannedORF) error {
		return nil
	})
	var te *codon.TranslationError
	if !errors.As(err, &te) {
		t.Fatalf("expected TranslationError, got %v", err)
	}
}

func TestForEachORFStrictRejectsAmbiguity(t *testing.T) {
	path := writeFasta(t, "n.fa", ">n\nATGNNNTAA\n")

	cfg := Config{Threads: 1, Table: standard(t), Strict: true}
	_, err := ForEachORF(context.Background(), cfg, []string{path}, func(ScannedORF) error {
		return nil
	})
	var ise *seq.InvalidSequenceError
	if !errors.As(err, &ise) {
		t.Fatalf("expected InvalidSequenceError, got %v", err)
	}
}

func TestForEachORFVisitErrorStopsRun(t *testing.T) {
	path := writeFasta(t, "v.fa", ">v\nATGAAATAAATGCCCTGA\n")

	boom := errors.New("downstream closed")
	cfg := Config{Threads: 1, Table: standard(t)}
	_, err := ForEachORF(context.Background(), cfg, []string{path}, func(ScannedORF) error {
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}
}

func TestForEachORFMissingFile(t *testing.T) {
	cfg := Config{Threads: 1, Table: standard(t)}
	if _, err := ForEachORF(context.Background(), cfg, []string{"no/such.fa"}, func(ScannedORF) error { return nil }); err == nil {
		t.Fatal("expected error for missing file")
	}
}
