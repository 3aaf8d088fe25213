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

package transpositiontable

import (
	. "github.com/fkopp/chesscore/types"
)

// TtEntry struct is the data structure for each entry in the transposition
// table. Each entry has 16-bytes (128-bits).
type TtEntry struct {
	Key        Key       // 64-bit Zobrist Key
	Move       Move      // 32-bit Move, the high 16 bits hold the stored value
	Depth      int8      // 7-bit 0-127
	Age        int8      // 3-bit 0-7, 0=fresh, 1=generated not yet used, >1 older generation
	Type       ValueType // 2-bit None, Exact, Alpha (upper), Beta (lower)
	MateThreat bool      // 1-bit
}

// TtEntrySize is the size in bytes for each TtEntry
const TtEntrySize = 16
