/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package history

import (
	"os"
	"path"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fkopp/chesscore/config"
	. "github.com/fkopp/chesscore/position"
	. "github.com/fkopp/chesscore/types"
)

// make tests run in the projects root directory
func init() {
	_, filename, _, _ := runtime.Caller(0)
	dir := path.Join(path.Dir(filename), "..")
	err := os.Chdir(dir)
	if err != nil {
		panic(err)
	}
}

func TestMain(m *testing.M) {
	config.Setup()
	os.Exit(m.Run())
}

func TestNewGameHistory(t *testing.T) {
	start := NewPosition()
	h := NewGameHistory(start)
	assert.Equal(t, 1, h.Len())
	assert.Equal(t, 0, h.Cursor())
	assert.False(t, h.CanUndo())
	assert.False(t, h.CanRedo())
	assert.Equal(t, start.ZobristKey(), h.Current().ZobristKey())
}

func TestMakeMoveAndUndo(t *testing.T) {
	h := NewGameHistory(NewPosition())
	startKey := h.Current().ZobristKey()

	m := CreateMove(SqE2, SqE4, Normal, PtNone)
	next := h.MakeMove(m)
	assert.Equal(t, 2, h.Len())
	assert.Equal(t, 1, h.Cursor())
	assert.Equal(t, next.ZobristKey(), h.Current().ZobristKey())
	assert.NotEqual(t, startKey, h.Current().ZobristKey())
	assert.Equal(t, Black, h.Current().NextPlayer())

	prev, err := h.Undo()
	assert.NoError(t, err)
	assert.Equal(t, 0, h.Cursor())
	assert.Equal(t, startKey, prev.ZobristKey())
	assert.False(t, h.CanUndo())
	assert.True(t, h.CanRedo())

	_, err = h.Undo()
	assert.Error(t, err)
}

func TestRedo(t *testing.T) {
	h := NewGameHistory(NewPosition())
	m := CreateMove(SqE2, SqE4, Normal, PtNone)
	pushed := h.MakeMove(m)
	_, err := h.Undo()
	assert.NoError(t, err)

	redone, err := h.Redo()
	assert.NoError(t, err)
	assert.Equal(t, pushed.ZobristKey(), redone.ZobristKey())
	assert.False(t, h.CanRedo())

	_, err = h.Redo()
	assert.Error(t, err)
}

func TestMakeMoveTruncatesRedoTail(t *testing.T) {
	h := NewGameHistory(NewPosition())
	h.MakeMove(CreateMove(SqE2, SqE4, Normal, PtNone))
	_, err := h.Undo()
	assert.NoError(t, err)
	assert.True(t, h.CanRedo())

	h.MakeMove(CreateMove(SqD2, SqD4, Normal, PtNone))
	assert.False(t, h.CanRedo())
	assert.Equal(t, 2, h.Len())
}

func TestSkipTurn(t *testing.T) {
	h := NewGameHistory(NewPosition())
	before := h.Current().NextPlayer()
	next := h.SkipTurn()
	assert.NotEqual(t, before, next.NextPlayer())
	assert.Equal(t, SqNone, next.GetEnPassantSquare())
}

func TestAt(t *testing.T) {
	h := NewGameHistory(NewPosition())
	h.MakeMove(CreateMove(SqE2, SqE4, Normal, PtNone))
	p, err := h.At(0)
	assert.NoError(t, err)
	assert.Equal(t, White, p.NextPlayer())

	_, err = h.At(5)
	assert.Error(t, err)
}
