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

package position

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/Amit-Sarussi/Chess-Engine/internal/types"
)

// checkInvariants asserts the structural invariants every reachable
// position must satisfy: disjoint piece bitboards, consistent
// occupancies and exactly one king per side.
func checkInvariants(t *testing.T, p *Position) {
	t.Helper()
	var union, white, black Bitboard
	for pc := WhitePawn; pc <= BlackKing; pc++ {
		bb := p.PieceBb(pc)
		assert.Equal(t, BbZero, union&bb, "piece bitboards overlap at %s", pc.Char())
		union |= bb
		if pc.ColorOf() == White {
			white |= bb
		} else {
			black |= bb
		}
	}
	assert.Equal(t, white, p.OccupiedBb(White))
	assert.Equal(t, black, p.OccupiedBb(Black))
	assert.Equal(t, union, p.OccupiedBb(Both))
	assert.Equal(t, BbZero, p.OccupiedBb(White)&p.OccupiedBb(Black))
	assert.Equal(t, 1, p.PieceBb(WhiteKing).PopCount())
	assert.Equal(t, 1, p.PieceBb(BlackKing).PopCount())
	// no pawns on the first or last rank
	assert.Equal(t, BbZero, (p.PieceBb(WhitePawn)|p.PieceBb(BlackPawn))&(Rank1_Bb|Rank8_Bb))
}

func TestNewStartPosition(t *testing.T) {
	p := NewStartPosition()
	checkInvariants(t, p)

	assert.Equal(t, White, p.NextPlayer())
	assert.Equal(t, CastlingAll, p.CastlingRights())
	assert.Equal(t, SqNone, p.EnPassantSquare())
	assert.Equal(t, 0, p.HalfMoveClock())
	assert.Equal(t, 1, p.FullMoveNumber())

	assert.Equal(t, 8, p.PieceBb(WhitePawn).PopCount())
	assert.Equal(t, 8, p.PieceBb(BlackPawn).PopCount())
	assert.Equal(t, Rank2_Bb, p.PieceBb(WhitePawn))
	assert.Equal(t, Rank7_Bb, p.PieceBb(BlackPawn))
	assert.Equal(t, SqE1.Bb(), p.PieceBb(WhiteKing))
	assert.Equal(t, SqE8.Bb(), p.PieceBb(BlackKing))
	assert.Equal(t, Rank1_Bb|Rank2_Bb, p.OccupiedBb(White))
	assert.Equal(t, Rank7_Bb|Rank8_Bb, p.OccupiedBb(Black))

	assert.Equal(t, WhiteQueen, p.PieceOn(SqD1))
	assert.Equal(t, BlackKnight, p.PieceOn(SqG8))
	assert.Equal(t, PieceNone, p.PieceOn(SqE4))
}

func TestIsSquareAttacked(t *testing.T) {
	p := NewStartPosition()

	// rank 3 squares are attacked by white pawns, rank 6 by black pawns
	assert.True(t, p.IsSquareAttacked(SqE3, White))
	assert.True(t, p.IsSquareAttacked(SqE6, Black))
	assert.False(t, p.IsSquareAttacked(SqE4, White))
	assert.False(t, p.IsSquareAttacked(SqE3, Black))

	// knights cover a3/c3 resp. a6/c6
	assert.True(t, p.IsSquareAttacked(SqC3, White))
	assert.True(t, p.IsSquareAttacked(SqA6, Black))

	// slider attacks respect blockers
	q, err := NewPosition("k7/8/8/3q4/8/8/8/K2R4 w - - 0 1")
	assert.NoError(t, err)
	assert.True(t, q.IsSquareAttacked(SqD1, Black), "queen sees down the open file")
	assert.True(t, q.IsSquareAttacked(SqA5, Black))
	assert.True(t, q.IsSquareAttacked(SqH1, Black))
	assert.True(t, q.IsSquareAttacked(SqD5, White), "rook attacks the queen")
	assert.False(t, q.IsSquareAttacked(SqD8, White), "rook ray stops at the queen")
}

func TestIsKingInCheck(t *testing.T) {
	p := NewStartPosition()
	assert.False(t, p.IsKingInCheck(White))
	assert.False(t, p.IsKingInCheck(Black))

	// scholar's mate
	p, err := NewPosition("r1bqkb1r/pppp1Qpp/2n2n2/4p3/2B1P3/8/PPPP1PPP/RNB1K1NR b KQkq - 0 4")
	assert.NoError(t, err)
	assert.True(t, p.IsKingInCheck(Black))
	assert.False(t, p.IsKingInCheck(White))
}

func TestSnapshotRestore(t *testing.T) {
	p, err := NewPosition(TrickyFen)
	assert.NoError(t, err)

	state := p.Snapshot()
	before := p.Fen()

	// play a few legal moves, then roll everything back
	moves := []Move{
		EncodeMove(SqE2, SqA6, WhiteBishop, PieceNone, true, false, false, false),
		EncodeMove(SqB4, SqC3, BlackPawn, PieceNone, true, false, false, false),
		EncodeMove(SqE5, SqG6, WhiteKnight, PieceNone, true, false, false, false),
	}
	for _, m := range moves {
		assert.True(t, p.MakeMove(m), "move %s not legal", m)
		checkInvariants(t, p)
	}
	assert.NotEqual(t, before, p.Fen())

	p.Restore(state)
	assert.Equal(t, before, p.Fen())
	assert.Equal(t, state, p.Snapshot())
}

func TestClone(t *testing.T) {
	p := NewStartPosition()
	clone := p.Clone()

	// mutating the clone must not touch the original
	assert.True(t, clone.MakeMove(EncodeMove(SqE2, SqE4, WhitePawn, PieceNone, false, true, false, false)))
	assert.Equal(t, StartFen, p.Fen())
	assert.NotEqual(t, p.Fen(), clone.Fen())
}
