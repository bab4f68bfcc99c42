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

// Color represents the side of a player or piece. Both is used to
// index the combined occupancy bitboard.
type Color int8

// Color constants
const (
	White Color = 0
	Black Color = 1
	Both  Color = 2
)

// ColorLength number of player colors
const ColorLength int = 2

// Flip returns the opposite color. Only valid for White and Black.
func (c Color) Flip() Color {
	return c ^ 1
}

// IsValid checks if c is a valid player color (White or Black)
func (c Color) IsValid() bool {
	return c == White || c == Black
}

// MoveDirection returns the direction of pawn moves as a square delta:
// +8 for White (up the board), -8 for Black.
func (c Color) MoveDirection() Square {
	if c == White {
		return 8
	}
	return -8
}

// PawnStartRank returns the rank pawns of this color double push from
func (c Color) PawnStartRank() Rank {
	if c == White {
		return Rank2
	}
	return Rank7
}

// PromotionRank returns the rank pawns of this color promote on
func (c Color) PromotionRank() Rank {
	if c == White {
		return Rank8
	}
	return Rank1
}

// String returns a string representation of color as "w" or "b"
func (c Color) String() string {
	switch c {
	case White:
		return "w"
	case Black:
		return "b"
	}
	return "-"
}

// Name returns a long string representation ("white", "black", "both")
func (c Color) Name() string {
	switch c {
	case White:
		return "white"
	case Black:
		return "black"
	case Both:
		return "both"
	}
	return "invalid"
}
