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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeMoveFields(t *testing.T) {
	m := EncodeMove(SqE2, SqE4, WhitePawn, PieceNone, false, true, false, false)
	assert.Equal(t, SqE2, m.From())
	assert.Equal(t, SqE4, m.To())
	assert.Equal(t, WhitePawn, m.Piece())
	assert.Equal(t, PieceNone, m.Promoted())
	assert.False(t, m.IsCapture())
	assert.True(t, m.IsDoublePush())
	assert.False(t, m.IsEnPassant())
	assert.False(t, m.IsCastling())

	m = EncodeMove(SqE7, SqD8, WhitePawn, WhiteQueen, true, false, false, false)
	assert.Equal(t, WhiteQueen, m.Promoted())
	assert.True(t, m.IsCapture())

	m = EncodeMove(SqE5, SqD6, WhitePawn, PieceNone, true, false, true, false)
	assert.True(t, m.IsEnPassant())
	assert.True(t, m.IsCapture())

	m = EncodeMove(SqE1, SqG1, WhiteKing, PieceNone, false, false, false, true)
	assert.True(t, m.IsCastling())
}

func TestMoveFitsIn24Bits(t *testing.T) {
	m := EncodeMove(SqH8, SqA1, BlackKing, BlackQueen, true, true, true, true)
	assert.True(t, uint32(m) < 1<<24)
}

func TestMoveString(t *testing.T) {
	assert.Equal(t, "e2e4", EncodeMove(SqE2, SqE4, WhitePawn, PieceNone, false, true, false, false).String())
	assert.Equal(t, "e7e8q", EncodeMove(SqE7, SqE8, WhitePawn, WhiteQueen, false, false, false, false).String())
	assert.Equal(t, "a2a1n", EncodeMove(SqA2, SqA1, BlackPawn, BlackKnight, false, false, false, false).String())
	assert.Equal(t, "-", MoveNone.String())
}

func TestCastlingRights(t *testing.T) {
	cr := CastlingNone
	cr.Add(CastlingWhiteOO)
	cr.Add(CastlingBlackOOO)
	assert.True(t, cr.Has(CastlingWhiteOO))
	assert.False(t, cr.Has(CastlingWhiteOOO))
	assert.Equal(t, "Kq", cr.String())
	cr.Remove(CastlingWhiteOO)
	assert.Equal(t, "q", cr.String())
	assert.Equal(t, "-", CastlingNone.String())
	assert.Equal(t, "KQkq", CastlingAll.String())
}

func TestCastlingRightsMask(t *testing.T) {
	// moving the white king erodes both white rights
	assert.Equal(t, CastlingRights(12), CastlingRightsMask[SqE1])
	// rook home squares erode a single right
	assert.Equal(t, CastlingRights(14), CastlingRightsMask[SqH1])
	assert.Equal(t, CastlingRights(13), CastlingRightsMask[SqA1])
	assert.Equal(t, CastlingRights(3), CastlingRightsMask[SqE8])
	assert.Equal(t, CastlingRights(11), CastlingRightsMask[SqH8])
	assert.Equal(t, CastlingRights(7), CastlingRightsMask[SqA8])
	// all other squares leave the rights untouched
	assert.Equal(t, CastlingAll, CastlingRightsMask[SqE4])
	assert.Equal(t, CastlingAll, CastlingRightsMask[SqB1])
}
