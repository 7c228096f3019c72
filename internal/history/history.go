// Package history keeps per-game undo/redo snapshots and a short
// repetition window used to veto shuffling moves.
package history

import "github.com/premkumardevadason/chess-go/internal/model"

const (
	windowSize  = 6
	trackedKeys = 20
)

// Stack is an undo/redo pair of position snapshots. Recording a new
// committed move invalidates everything on the redo side.
type Stack struct {
	undo []model.Snapshot
	redo []model.Snapshot
}

func NewStack() *Stack {
	return &Stack{}
}

// Record pushes the pre-move snapshot and clears the redo stack.
func (s *Stack) Record(snap model.Snapshot) {
	s.undo = append(s.undo, snap)
	s.redo = nil
}

// Undo exchanges the live snapshot for the most recently recorded one.
// It returns false when there is nothing to undo.
func (s *Stack) Undo(current model.Snapshot) (model.Snapshot, bool) {
	if len(s.undo) == 0 {
		return model.Snapshot{}, false
	}
	top := s.undo[len(s.undo)-1]
	s.undo = s.undo[:len(s.undo)-1]
	s.redo = append(s.redo, current)
	return top, true
}

// Redo is the inverse of Undo.
func (s *Stack) Redo(current model.Snapshot) (model.Snapshot, bool) {
	if len(s.redo) == 0 {
		return model.Snapshot{}, false
	}
	top := s.redo[len(s.redo)-1]
	s.redo = s.redo[:len(s.redo)-1]
	s.undo = append(s.undo, current)
	return top, true
}

func (s *Stack) CanUndo() bool { return len(s.undo) > 0 }

func (s *Stack) CanRedo() bool { return len(s.redo) > 0 }

func (s *Stack) Reset() {
	s.undo = nil
	s.redo = nil
}

// Window tracks the keys of recently committed moves so the arbiter
// can refuse candidates that shuffle a piece back and forth.
type Window struct {
	keys   []string
	counts map[string]int
}

func NewWindow() *Window {
	return &Window{counts: make(map[string]int)}
}

// TrackMove appends the move to the rolling window and bumps its
// repetition count. Once the count map grows past its cap the key of
// the oldest window entry is evicted.
func (w *Window) TrackMove(m model.Move) {
	key := m.Key()
	w.keys = append(w.keys, key)
	if len(w.keys) > windowSize {
		w.keys = w.keys[1:]
	}
	w.counts[key]++
	if len(w.counts) > trackedKeys {
		delete(w.counts, w.keys[0])
	}
}

// IsFlipFlop reports whether the move exactly reverses the previous
// tracked move or has already been played twice recently.
func (w *Window) IsFlipFlop(m model.Move) bool {
	if len(w.keys) > 0 && m.Reverse().Key() == w.keys[len(w.keys)-1] {
		return true
	}
	return w.counts[m.Key()] >= 2
}

// Clone returns an independent copy for readers that outlive the
// caller's lock.
func (w *Window) Clone() *Window {
	c := NewWindow()
	c.keys = append([]string(nil), w.keys...)
	for k, n := range w.counts {
		c.counts[k] = n
	}
	return c
}

func (w *Window) Reset() {
	w.keys = nil
	w.counts = make(map[string]int)
}
