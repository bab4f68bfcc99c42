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

package player

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Amit-Sarussi/Chess-Engine/internal/position"
	"github.com/Amit-Sarussi/Chess-Engine/internal/scorestore"
	. "github.com/Amit-Sarussi/Chess-Engine/internal/types"
)

const mateFen = "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3"

func TestRandomPlayerMakesLegalMove(t *testing.T) {
	p := position.NewStartPosition()
	rp := NewRandomPlayer(White, 1)

	move, ok := rp.MakePlayerMove(p)
	assert.True(t, ok)
	assert.NotEqual(t, MoveNone, move)
	assert.Equal(t, Black, p.NextPlayer(), "the move is committed to the position")
	assert.False(t, p.IsKingInCheck(White))
}

func TestRandomPlayerNoMoveOnMate(t *testing.T) {
	p, err := position.NewPosition(mateFen)
	assert.NoError(t, err)
	before := p.Fen()

	move, ok := NewRandomPlayer(White, 1).MakePlayerMove(p)
	assert.False(t, ok)
	assert.Equal(t, MoveNone, move)
	assert.Equal(t, before, p.Fen(), "the position is left unchanged")
}

func TestHeuristicsPlayerTakesHangingQueen(t *testing.T) {
	p, err := position.NewPosition("k7/8/8/3q4/4P3/8/8/K7 w - - 0 1")
	assert.NoError(t, err)

	move, ok := NewHeuristicsPlayer(White).MakePlayerMove(p)
	assert.True(t, ok)
	assert.Equal(t, "e4d5", move.String(), "capturing the queen wins the most material")
	assert.Equal(t, BbZero, p.PieceBb(BlackQueen))
}

func TestHeuristicsPlayerNoMoveOnMate(t *testing.T) {
	p, err := position.NewPosition(mateFen)
	assert.NoError(t, err)

	_, ok := NewHeuristicsPlayer(White).MakePlayerMove(p)
	assert.False(t, ok)
}

func TestTablePlayerPrefersStoredEvaluation(t *testing.T) {
	store, err := scorestore.OpenInMemory()
	assert.NoError(t, err)
	defer store.Close()

	p, err := position.NewPosition("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	assert.NoError(t, err)

	// store a high evaluation for the position after Kd2
	probe := p.Clone()
	assert.True(t, probe.MakeMove(EncodeMove(SqE1, SqD2, WhiteKing, PieceNone, false, false, false, false)))
	assert.NoError(t, store.Put(probe.ToPackedArray(), scorestore.Score{Eval: 5, Count: 1}))

	move, ok := NewTablePlayer(White, store).MakePlayerMove(p)
	assert.True(t, ok)
	assert.Equal(t, "e1d2", move.String())
}

func TestEvaluateMaterial(t *testing.T) {
	p := position.NewStartPosition()
	assert.Equal(t, 0, evaluateMaterial(p, White))

	p, err := position.NewPosition("k7/8/8/3q4/4P3/8/8/K7 w - - 0 1")
	assert.NoError(t, err)
	// white: king+pawn, black: king+queen
	assert.Equal(t, -8, evaluateMaterial(p, White))
	assert.Equal(t, 8, evaluateMaterial(p, Black))
}
