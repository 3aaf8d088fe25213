//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package history owns the chronological stack of Positions for a game:
// an append-only vector with a current-ply cursor, supporting undo, redo
// and null-move skip without recomputation of prior plies.
package history

import (
	"fmt"

	. "github.com/fkopp/chesscore/position"
	. "github.com/fkopp/chesscore/types"
)

// GameHistory is an append-only vector of Positions with a current-ply
// cursor. Index cursor names the live Position; entries after cursor are
// the redo buffer and are truncated by the next MakeMove.
type GameHistory struct {
	positions []*Position
	cursor    int
}

// NewGameHistory creates a GameHistory starting at the given Position.
func NewGameHistory(start *Position) *GameHistory {
	return &GameHistory{
		positions: []*Position{start},
		cursor:    0,
	}
}

// Current returns the Position at the cursor.
func (h *GameHistory) Current() *Position {
	return h.positions[h.cursor]
}

// Len returns the number of plies currently reachable by Undo, i.e. the
// history length up to and including the cursor.
func (h *GameHistory) Len() int {
	return h.cursor + 1
}

// Cursor returns the current ply index.
func (h *GameHistory) Cursor() int {
	return h.cursor
}

// CanUndo reports whether Undo has a predecessor to move to.
func (h *GameHistory) CanUndo() bool {
	return h.cursor > 0
}

// CanRedo reports whether a previously undone move is still available.
func (h *GameHistory) CanRedo() bool {
	return h.cursor < len(h.positions)-1
}

// MakeMove derives a new Position from Current by applying m, pushes it
// onto the history and advances the cursor to it. Any redo tail past the
// cursor is discarded first, per the history invariant: after MakeMove,
// history length = cursor + 1.
func (h *GameHistory) MakeMove(m Move) *Position {
	h.positions = h.positions[:h.cursor+1]
	next := h.Current().Clone()
	next.DoMove(m)
	h.positions = append(h.positions, next)
	h.cursor++
	return next
}

// SkipTurn applies a null move: side-to-move flips, en-passant is
// cleared, the half-move clock is left unchanged. Attackers and legal
// moves are not cached on a Position, so nothing is recomputed here.
// Like MakeMove it truncates any redo tail.
func (h *GameHistory) SkipTurn() *Position {
	h.positions = h.positions[:h.cursor+1]
	next := h.Current().Clone()
	next.DoNullMove()
	h.positions = append(h.positions, next)
	h.cursor++
	return next
}

// Undo moves the cursor back one ply without recomputing anything; the
// Position that was current is preserved in the redo buffer.
func (h *GameHistory) Undo() (*Position, error) {
	if !h.CanUndo() {
		return nil, fmt.Errorf("history: no move to undo")
	}
	h.cursor--
	return h.Current(), nil
}

// Redo moves the cursor forward to a Position previously reached and
// then undone. It fails if no such Position exists, i.e. the last move
// was not yet undone or has since been overwritten by a new MakeMove.
func (h *GameHistory) Redo() (*Position, error) {
	if !h.CanRedo() {
		return nil, fmt.Errorf("history: no move to redo")
	}
	h.cursor++
	return h.Current(), nil
}

// At returns the Position at the given absolute ply index, regardless of
// the current cursor. It does not move the cursor.
func (h *GameHistory) At(ply int) (*Position, error) {
	if ply < 0 || ply >= len(h.positions) {
		return nil, fmt.Errorf("history: ply %d out of range [0,%d]", ply, len(h.positions)-1)
	}
	return h.positions[ply], nil
}
