package board

import (
	"bytes"
	"compress/gzip"
	"encoding/gob"
	"errors"
	"fmt"
	"io"

	"github.com/cellwise/nurikabe/internal/grid"
)

// gobChange is the wire representation of a CellChange: board.CellState
// and grid.Coord are plain exported structs of ints, so gob handles them
// natively, but we keep a dedicated type here in case the in-memory
// representation ever grows fields that should not be serialized.
type gobChange struct {
	Row, Col      int
	Before, After int
	Reason        string
}

// JournalWriter serializes a stream of CellChanges batches (gzip + gob),
// the cell-change analogue of gruid's frame recording (recording.go),
// re-targeted at board mutations instead of screen pixels: a host can
// persist a solve run and later replay it without re-running the solver.
type JournalWriter struct {
	gzw *gzip.Writer
	enc *gob.Encoder
}

// NewJournalWriter returns a JournalWriter writing to w. The caller must
// call Close when done to flush the gzip stream.
func NewJournalWriter(w io.Writer) *JournalWriter {
	gzw := gzip.NewWriter(w)
	return &JournalWriter{gzw: gzw, enc: gob.NewEncoder(gzw)}
}

// WriteBatch encodes one CellChanges batch to the stream.
func (jw *JournalWriter) WriteBatch(cc *CellChanges) error {
	batch := make([]gobChange, 0, cc.Len())
	for _, c := range cc.All() {
		batch = append(batch, gobChange{
			Row: c.Coord.Row, Col: c.Coord.Col,
			Before: int(c.Before), After: int(c.After),
			Reason: c.Reason,
		})
	}
	if err := jw.enc.Encode(batch); err != nil {
		return fmt.Errorf("journal: encode batch: %w", err)
	}
	return nil
}

// Close flushes and closes the underlying gzip stream.
func (jw *JournalWriter) Close() error {
	return jw.gzw.Close()
}

// JournalReader reads back a stream written by JournalWriter.
type JournalReader struct {
	gzr *gzip.Reader
	dec *gob.Decoder
}

// NewJournalReader returns a JournalReader reading from r.
func NewJournalReader(r io.Reader) (*JournalReader, error) {
	gzr, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("journal: gzip: %w", err)
	}
	return &JournalReader{gzr: gzr, dec: gob.NewDecoder(gzr)}, nil
}

// ReadBatch decodes the next CellChanges batch from the stream. It returns
// io.EOF when the stream is exhausted.
func (jr *JournalReader) ReadBatch() (*CellChanges, error) {
	var batch []gobChange
	if err := jr.dec.Decode(&batch); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("journal: decode batch: %w", err)
	}
	cc := NewCellChanges()
	for _, g := range batch {
		cc.Add(CellChange{
			Coord:  grid.Coord{Row: g.Row, Col: g.Col},
			Before: CellState(g.Before),
			After:  CellState(g.After),
			Reason: g.Reason,
		})
	}
	return cc, nil
}

// Close closes the underlying gzip reader.
func (jr *JournalReader) Close() error {
	return jr.gzr.Close()
}

// EncodeBatch is a convenience wrapper around JournalWriter for a single
// in-memory batch, useful for tests and for CLI "--dump-journal" style
// features.
func EncodeBatch(cc *CellChanges) ([]byte, error) {
	var buf bytes.Buffer
	jw := NewJournalWriter(&buf)
	if err := jw.WriteBatch(cc); err != nil {
		return nil, err
	}
	if err := jw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecodeBatch is the inverse of EncodeBatch.
func DecodeBatch(data []byte) (*CellChanges, error) {
	jr, err := NewJournalReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer jr.Close()
	return jr.ReadBatch()
}
