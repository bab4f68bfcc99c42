/*
 * Chess-Engine - a bitboard chess engine core in GO
 *
 * MIT License
 *
 * Copyright (c) 2025 Amit Sarussi
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

import "strings"

// CastlingRights encodes the castling availability of both sides as a
// 4-bit mask.
//
//	bin   dec
//	0001  1   white king may castle king side
//	0010  2   white king may castle queen side
//	0100  4   black king may castle king side
//	1000  8   black king may castle queen side
type CastlingRights uint8

// CastlingRights constants
const (
	CastlingNone     CastlingRights = 0
	CastlingWhiteOO  CastlingRights = 1
	CastlingWhiteOOO CastlingRights = 2
	CastlingBlackOO  CastlingRights = 4
	CastlingBlackOOO CastlingRights = 8
	CastlingAll      CastlingRights = 15
)

// Has checks if the bits of the given castling right are all set
func (cr CastlingRights) Has(rights CastlingRights) bool {
	return cr&rights == rights
}

// Add sets the bits of the given castling right
func (cr *CastlingRights) Add(rights CastlingRights) {
	*cr |= rights
}

// Remove clears the bits of the given castling right
func (cr *CastlingRights) Remove(rights CastlingRights) {
	*cr &^= rights
}

// String returns the fen field of the castling rights ("KQkq", "-", ...)
func (cr CastlingRights) String() string {
	if cr == CastlingNone {
		return "-"
	}
	var sb strings.Builder
	if cr.Has(CastlingWhiteOO) {
		sb.WriteString("K")
	}
	if cr.Has(CastlingWhiteOOO) {
		sb.WriteString("Q")
	}
	if cr.Has(CastlingBlackOO) {
		sb.WriteString("k")
	}
	if cr.Has(CastlingBlackOOO) {
		sb.WriteString("q")
	}
	return sb.String()
}

// CastlingRightsMask is AND-applied to the castling rights whenever a
// square is moved from or moved to. Moving the king or a rook - or
// capturing a rook on its home square - erodes the matching rights.
//
//	                           castling   move    in      in
//	                              right   update  binary  decimal
//	king & rooks didn't move:      1111 & 1111  = 1111    15
//	        white king moved:      1111 & 1100  = 1100    12
//	 white king's rook moved:      1111 & 1110  = 1110    14
//	white queen's rook moved:      1111 & 1101  = 1101    13
//	        black king moved:      1111 & 0011  = 0011     3
//	 black king's rook moved:      1111 & 1011  = 1011    11
//	black queen's rook moved:      1111 & 0111  = 0111     7
var CastlingRightsMask = [SqLength]CastlingRights{
	13, 15, 15, 15, 12, 15, 15, 14,
	15, 15, 15, 15, 15, 15, 15, 15,
	15, 15, 15, 15, 15, 15, 15, 15,
	15, 15, 15, 15, 15, 15, 15, 15,
	15, 15, 15, 15, 15, 15, 15, 15,
	15, 15, 15, 15, 15, 15, 15, 15,
	15, 15, 15, 15, 15, 15, 15, 15,
	7, 15, 15, 15, 3, 15, 15, 11,
}
