/*
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

package types

import (
	"fmt"
	"strings"
)

// Move encodes a chess move as a single 32 bit value:
//
//	bits  0- 5: to square
//	bits  6-11: from square
//	bits 12-13: promotion piece index (0=Knight, 1=Bishop, 2=Rook, 3=Queen)
//	bits 14-15: move type
//	bits 16-31: sort value used by move ordering during search
type Move uint32

// MoveType distinguishes the four kinds of moves a Move can encode.
type MoveType uint32

// Constants for move types.
const (
	Normal    MoveType = 0
	Promotion MoveType = 1
	EnPassant MoveType = 2
	Castling  MoveType = 3
)

// MoveNone represents the absence of a move.
const MoveNone Move = 0

const (
	moveToMask    = 0x3F
	moveFromShift = 6
	moveFromMask  = 0x3F
	movePromShift = 12
	movePromMask  = 0x3
	moveTypeShift = 14
	moveTypeMask  = 0x3
	moveValShift  = 16
)

// CreateMove creates a new Move from the given from/to squares, move type
// and (for promotions) the promotion piece type.
func CreateMove(from Square, to Square, t MoveType, promType PieceType) Move {
	m := Move(to) | Move(from)<<moveFromShift | Move(t)<<moveTypeShift
	if t == Promotion {
		m |= Move(promType-Knight) << movePromShift
	}
	return m
}

// CreateMoveValue creates a new Move like CreateMove but also encodes a
// sort value used by move ordering during search.
func CreateMoveValue(from Square, to Square, t MoveType, promType PieceType, value Value) Move {
	m := CreateMove(from, to, t, promType)
	m.SetValue(value)
	return m
}

// MoveOf returns the move stripped of its sort value, i.e. just the
// from/to/promotion/type bits. Used to compare or store moves (e.g. in the
// transposition table or as a killer move) independent of the transient
// value a search attached to them.
func (m Move) MoveOf() Move {
	return m & (Move(1)<<moveValShift - 1)
}

// From returns the origin square of the move.
func (m Move) From() Square {
	return Square((m >> moveFromShift) & moveFromMask)
}

// To returns the destination square of the move.
func (m Move) To() Square {
	return Square(m & moveToMask)
}

// MoveType returns the type of the move.
func (m Move) MoveType() MoveType {
	return MoveType((m >> moveTypeShift) & moveTypeMask)
}

// PromotionType returns the piece type a pawn is promoted to.
// Returns PtNone if the move is not a promotion.
func (m Move) PromotionType() PieceType {
	if m.MoveType() != Promotion {
		return PtNone
	}
	return PieceType((m>>movePromShift)&movePromMask) + Knight
}

// SetValue stores a sort value (e.g. for move ordering) into the move and
// returns the updated move. The value is shifted into the positive range
// (0 .. ValueInf-ValueNA) before encoding so that the move slice's unsigned
// bit comparison in Sort still orders moves by their true (possibly
// negative) value.
func (m *Move) SetValue(v Value) Move {
	if *m == MoveNone {
		return *m
	}
	*m = (*m &^ (Move(0xFFFF) << moveValShift)) | (Move(uint16(v-ValueNA)) << moveValShift)
	return *m
}

// ValueOf returns the sort value stored in the move.
func (m Move) ValueOf() Value {
	return Value(uint16(m>>moveValShift)) + ValueNA
}

// IsValid checks that the move encodes a plausible from/to pair.
func (m Move) IsValid() bool {
	return m != MoveNone && m.From().IsValid() && m.To().IsValid() && m.From() != m.To()
}

// Str returns the move in a compact algebraic notation (e.g. "e2e4" or
// "a2a1Q" for a promotion).
func (m Move) Str() string {
	if m == MoveNone {
		return "no move"
	}
	s := m.From().String() + m.To().String()
	if m.MoveType() == Promotion {
		s += m.PromotionType().Char()
	}
	return s
}

// StringUci returns the move formatted as required by the UCI protocol,
// where a promotion piece is given in lower case (e.g. "e7e8q").
func (m Move) StringUci() string {
	if m == MoveNone {
		return "no move"
	}
	s := m.From().String() + m.To().String()
	if m.MoveType() == Promotion {
		s += strings.ToLower(m.PromotionType().Char())
	}
	return s
}

// String returns a verbose string representation including the move's
// sort value, useful for logging and debugging.
func (m Move) String() string {
	if m == MoveNone {
		return "no move"
	}
	return fmt.Sprintf("%s (%s)", m.Str(), m.ValueOf().String())
}

// StrBits returns a string breaking down the bit fields of the move,
// useful when debugging move encoding.
func (m Move) StrBits() string {
	return fmt.Sprintf("value=%016b type=%02b promo=%02b from=%06b to=%06b (%s)",
		uint16(m>>moveValShift),
		(m>>moveTypeShift)&moveTypeMask,
		(m>>movePromShift)&movePromMask,
		(m>>moveFromShift)&moveFromMask,
		m&moveToMask,
		m.Str())
}
