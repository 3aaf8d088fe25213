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

// Package types contains the user defined data types and the corresponding
// functionality needed to represent a chess position: squares, pieces,
// bitboards, moves and the pre computed attack tables built on top of them.
// Many of these would be perfect enum candidates but GO does not provide enums.
package types

import (
	myLogging "github.com/fkopp/chesscore/logging"
)

var log = myLogging.GetLog()

var initialized = false

// init initializes pre computed data structures, e.g. bitboards and
// piece square tables. Keeps an initialized flag to avoid re-running the
// (fairly expensive) magic bitboard setup more than once.
func init() {
	if initialized {
		return
	}
	log.Debug("initializing chess board data types")
	initBb()
	initPosValues()
	initialized = true
}

const (
	// SqLength is the number of squares on a board.
	SqLength int = 64

	// MaxDepth is the maximum search depth supported by move values and
	// check mate scoring.
	MaxDepth = 128

	// MaxMoves is the maximum number of half moves tracked for a single
	// game, and therefore also the capacity reserved for move lists.
	MaxMoves = 512

	// KB is 1024 bytes.
	KB uint64 = 1024

	// MB is KB * KB.
	MB uint64 = KB * KB

	// GB is KB * MB.
	GB uint64 = KB * MB

	// GamePhaseMax is the maximum game phase value. Game phase is used to
	// interpolate between middle game and end game piece square values
	// and is calculated from the number of officers on the board.
	GamePhaseMax = 24
)
