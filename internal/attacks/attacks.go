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

// Package attacks holds the precomputed attack tables of the engine:
// leaper attacks (pawn, knight, king) and magic bitboard lookups for
// the sliding pieces. All tables are filled once during package
// initialization and are immutable afterwards. They are safe to share
// by reference across any number of goroutines.
package attacks

import (
	. "github.com/Amit-Sarussi/Chess-Engine/internal/types"
)

// leaper attack tables, indexed [color][square] resp. [square]
var (
	pawnAttacks   [ColorLength][SqLength]Bitboard
	knightAttacks [SqLength]Bitboard
	kingAttacks   [SqLength]Bitboard
)

func init() {
	initLeaperAttacks()
	initSliderAttacks()
}

// PawnAttacks returns the squares a pawn of the given color attacks
// from the given square.
func PawnAttacks(c Color, sq Square) Bitboard {
	return pawnAttacks[c][sq]
}

// KnightAttacks returns the squares a knight attacks from the given square
func KnightAttacks(sq Square) Bitboard {
	return knightAttacks[sq]
}

// KingAttacks returns the squares a king attacks from the given square
func KingAttacks(sq Square) Bitboard {
	return kingAttacks[sq]
}

// MaskPawnAttacks computes the pawn attack mask for a square from
// scratch. Used to build the lookup table - prefer PawnAttacks.
func MaskPawnAttacks(c Color, sq Square) Bitboard {
	b := sq.Bb()
	var attacks Bitboard
	if c == White {
		attacks |= (b << 7) & NotFileH_Bb
		attacks |= (b << 9) & NotFileA_Bb
	} else {
		attacks |= (b >> 7) & NotFileA_Bb
		attacks |= (b >> 9) & NotFileH_Bb
	}
	return attacks
}

// MaskKnightAttacks computes the knight attack mask for a square from
// scratch. Used to build the lookup table - prefer KnightAttacks.
func MaskKnightAttacks(sq Square) Bitboard {
	b := sq.Bb()
	var attacks Bitboard
	attacks |= (b << 17) & NotFileA_Bb
	attacks |= (b << 15) & NotFileH_Bb
	attacks |= (b << 10) & NotFileAB_Bb
	attacks |= (b << 6) & NotFileGH_Bb
	attacks |= (b >> 6) & NotFileAB_Bb
	attacks |= (b >> 10) & NotFileGH_Bb
	attacks |= (b >> 15) & NotFileA_Bb
	attacks |= (b >> 17) & NotFileH_Bb
	return attacks
}

// MaskKingAttacks computes the king attack mask for a square from
// scratch. Used to build the lookup table - prefer KingAttacks.
func MaskKingAttacks(sq Square) Bitboard {
	b := sq.Bb()
	var attacks Bitboard
	attacks |= b >> 8
	attacks |= b << 8
	attacks |= (b >> 9) & NotFileH_Bb
	attacks |= (b << 9) & NotFileA_Bb
	attacks |= (b >> 7) & NotFileA_Bb
	attacks |= (b << 7) & NotFileH_Bb
	attacks |= (b >> 1) & NotFileH_Bb
	attacks |= (b << 1) & NotFileA_Bb
	return attacks
}

// MaskBishopAttacks returns the relevant occupancy mask of a bishop:
// its attack rays on an empty board with the board edges trimmed off.
func MaskBishopAttacks(sq Square) Bitboard {
	var attacks Bitboard
	tr, tf := int(sq.RankOf()), int(sq.FileOf())
	for _, d := range [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}} {
		r, f := tr+d[0], tf+d[1]
		for r >= 1 && r <= 6 && f >= 1 && f <= 6 {
			attacks |= BbOne << uint(r*8+f)
			r += d[0]
			f += d[1]
		}
	}
	return attacks
}

// MaskRookAttacks returns the relevant occupancy mask of a rook:
// its attack rays on an empty board with the board edges trimmed off.
func MaskRookAttacks(sq Square) Bitboard {
	var attacks Bitboard
	tr, tf := int(sq.RankOf()), int(sq.FileOf())
	for r := tr + 1; r <= 6; r++ {
		attacks |= BbOne << uint(r*8+tf)
	}
	for r := tr - 1; r >= 1; r-- {
		attacks |= BbOne << uint(r*8+tf)
	}
	for f := tf + 1; f <= 6; f++ {
		attacks |= BbOne << uint(tr*8+f)
	}
	for f := tf - 1; f >= 1; f-- {
		attacks |= BbOne << uint(tr*8+f)
	}
	return attacks
}

// BishopAttacksOnTheFly computes bishop attacks by walking the four
// diagonal rays, stopping at (and including) the first blocker.
// Too slow for move generation - used to fill the magic tables and as
// the reference in tests.
func BishopAttacksOnTheFly(sq Square, blockers Bitboard) Bitboard {
	var attacks Bitboard
	tr, tf := int(sq.RankOf()), int(sq.FileOf())
	for _, d := range [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}} {
		r, f := tr+d[0], tf+d[1]
		for r >= 0 && r <= 7 && f >= 0 && f <= 7 {
			b := BbOne << uint(r*8+f)
			attacks |= b
			if blockers&b != 0 {
				break
			}
			r += d[0]
			f += d[1]
		}
	}
	return attacks
}

// RookAttacksOnTheFly computes rook attacks by walking the four
// straight rays, stopping at (and including) the first blocker.
// Too slow for move generation - used to fill the magic tables and as
// the reference in tests.
func RookAttacksOnTheFly(sq Square, blockers Bitboard) Bitboard {
	var attacks Bitboard
	tr, tf := int(sq.RankOf()), int(sq.FileOf())
	for _, d := range [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
		r, f := tr+d[0], tf+d[1]
		for r >= 0 && r <= 7 && f >= 0 && f <= 7 {
			b := BbOne << uint(r*8+f)
			attacks |= b
			if blockers&b != 0 {
				break
			}
			r += d[0]
			f += d[1]
		}
	}
	return attacks
}

// SetOccupancy materializes the occupancy variation with the given
// index by scattering the index bits onto the set bits of the mask in
// LSB first order.
func SetOccupancy(index int, bitsInMask int, mask Bitboard) Bitboard {
	var occupancy Bitboard
	for count := 0; count < bitsInMask; count++ {
		sq := mask.PopLsb()
		if index&(1<<uint(count)) != 0 {
			occupancy.PushSquare(sq)
		}
	}
	return occupancy
}

func initLeaperAttacks() {
	for sq := SqA1; sq <= SqH8; sq++ {
		pawnAttacks[White][sq] = MaskPawnAttacks(White, sq)
		pawnAttacks[Black][sq] = MaskPawnAttacks(Black, sq)
		knightAttacks[sq] = MaskKnightAttacks(sq)
		kingAttacks[sq] = MaskKingAttacks(sq)
	}
}
