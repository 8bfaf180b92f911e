package board

// History is the board's reversible change journal: a sequence of
// "pending" changes accumulated since the last Commit, plus a stack of
// committed batches (typically one batch per solver run) that can be
// walked backward (Undo) and forward (Redo).
//
// It supplements the dropped undo_redo_control.py: that file wired a
// keyboard-driven undo/redo stack of board snapshots to the screen, which
// is out of scope here, but the underlying navigation logic - a cursor
// into a stack of reversible batches, with Redo truncating anything past
// the cursor once a new batch is committed - is exactly the data structure
// spec.md's round-trip invariant (§8.8) needs, and is grounded on the
// forward/backward frame navigation in gruid's replay Model (replay.go),
// adapted from video frames to cell-change batches.
type History struct {
	pending []CellChange
	batches []*CellChanges
	cursor  int // index of the next batch Redo would apply
}

func newHistory() *History {
	return &History{}
}

// record appends a single low-level change to the pending batch. Called by
// Board.SetCellState; not exported because external callers should build
// changes through the board, not the history directly.
func (h *History) record(change CellChange) {
	if change.IsNoop() {
		return
	}
	h.pending = append(h.pending, change)
}

// Pending returns the changes accumulated since the last Commit.
func (h *History) Pending() *CellChanges {
	cc := NewCellChanges()
	cc.AddAll(h.pending)
	return cc
}

// Commit seals the pending changes into a new batch on top of the undo
// stack, discarding any batches beyond the current cursor (the classic
// "making a new edit truncates redo history" rule), and clears pending.
// It returns the committed batch; if there were no pending changes it
// returns an empty, uncommitted batch and leaves the stack untouched.
func (h *History) Commit() *CellChanges {
	if len(h.pending) == 0 {
		return NewCellChanges()
	}
	cc := NewCellChanges()
	cc.AddAll(h.pending)
	h.pending = nil
	h.batches = append(h.batches[:h.cursor], cc)
	h.cursor = len(h.batches)
	return cc
}

// CanUndo reports whether there is a committed batch to undo.
func (h *History) CanUndo() bool {
	return h.cursor > 0
}

// CanRedo reports whether there is an undone batch to redo.
func (h *History) CanRedo() bool {
	return h.cursor < len(h.batches)
}

// Undo reverts the most recently committed (and not yet undone) batch onto
// b, and moves the cursor back. It is a no-op if CanUndo is false.
func (h *History) Undo(b *Board) {
	if !h.CanUndo() {
		return
	}
	h.cursor--
	batch := h.batches[h.cursor]
	reversed := batch.Reverse()
	suppressed := h.suppressRecording()
	for _, c := range reversed.All() {
		b.SetCellState(c.Coord, c.After, c.Reason)
	}
	suppressed()
}

// Redo reapplies the next undone batch onto b, and moves the cursor
// forward. It is a no-op if CanRedo is false.
func (h *History) Redo(b *Board) {
	if !h.CanRedo() {
		return
	}
	batch := h.batches[h.cursor]
	h.cursor++
	suppressed := h.suppressRecording()
	for _, c := range batch.All() {
		b.SetCellState(c.Coord, c.After, c.Reason)
	}
	suppressed()
}

// suppressRecording temporarily drops whatever Undo/Redo itself records
// into pending (replaying an old batch should not itself become a new
// pending change), returning a function that restores normal recording.
func (h *History) suppressRecording() func() {
	saved := h.pending
	h.pending = nil
	return func() {
		h.pending = saved
	}
}
