package board

import (
	"bytes"
	"io"
	"testing"

	"github.com/cellwise/nurikabe/internal/grid"
)

func TestEncodeDecodeBatchRoundTrip(t *testing.T) {
	cc := NewCellChanges()
	cc.Add(CellChange{Coord: grid.Coord{Row: 0, Col: 0}, Before: Empty, After: Wall, Reason: "r1"})
	cc.Add(CellChange{Coord: grid.Coord{Row: 1, Col: 2}, Before: Empty, After: Garden, Reason: "r2"})

	data, err := EncodeBatch(cc)
	if err != nil {
		t.Fatal(err)
	}
	got, err := DecodeBatch(data)
	if err != nil {
		t.Fatal(err)
	}
	if got.Len() != cc.Len() {
		t.Fatalf("decoded %d changes, want %d", got.Len(), cc.Len())
	}
	for i, c := range got.All() {
		want := cc.All()[i]
		if c != want {
			t.Errorf("change %d = %+v, want %+v", i, c, want)
		}
	}
}

func TestJournalMultipleBatchesAndEOF(t *testing.T) {
	var buf bytes.Buffer
	jw := NewJournalWriter(&buf)
	first := NewCellChanges()
	first.Add(CellChange{Coord: grid.Coord{Row: 0, Col: 0}, Before: Empty, After: Wall, Reason: "a"})
	second := NewCellChanges()
	second.Add(CellChange{Coord: grid.Coord{Row: 0, Col: 1}, Before: Empty, After: Garden, Reason: "b"})

	if err := jw.WriteBatch(first); err != nil {
		t.Fatal(err)
	}
	if err := jw.WriteBatch(second); err != nil {
		t.Fatal(err)
	}
	if err := jw.Close(); err != nil {
		t.Fatal(err)
	}

	jr, err := NewJournalReader(&buf)
	if err != nil {
		t.Fatal(err)
	}
	defer jr.Close()

	b1, err := jr.ReadBatch()
	if err != nil {
		t.Fatal(err)
	}
	if b1.Len() != 1 || b1.All()[0].Reason != "a" {
		t.Errorf("first batch = %+v, want reason \"a\"", b1.All())
	}
	b2, err := jr.ReadBatch()
	if err != nil {
		t.Fatal(err)
	}
	if b2.Len() != 1 || b2.All()[0].Reason != "b" {
		t.Errorf("second batch = %+v, want reason \"b\"", b2.All())
	}
	if _, err := jr.ReadBatch(); err != io.EOF {
		t.Errorf("ReadBatch after stream end = %v, want io.EOF", err)
	}
}
