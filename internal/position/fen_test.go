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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/Amit-Sarussi/Chess-Engine/internal/types"
)

func TestFenRoundTrip(t *testing.T) {
	for _, fen := range []string{
		StartFen,
		TrickyFen,
		KillerFen,
		CmkFen,
		"8/8/8/8/8/8/8/R3K2R w KQ - 12 34",
		"4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 2",
	} {
		p, err := NewPosition(fen)
		assert.NoError(t, err, "fen %q must parse", fen)
		assert.Equal(t, fen, p.Fen(), "fen %q must round trip", fen)
	}
}

func TestParseFenFields(t *testing.T) {
	p, err := NewPosition(KillerFen)
	assert.NoError(t, err)
	assert.Equal(t, White, p.NextPlayer())
	assert.Equal(t, SqE6, p.EnPassantSquare())
	assert.Equal(t, CastlingAll, p.CastlingRights())

	p, err = NewPosition(CmkFen)
	assert.NoError(t, err)
	assert.Equal(t, Black, p.NextPlayer())
	assert.Equal(t, CastlingNone, p.CastlingRights())
	assert.Equal(t, 0, p.HalfMoveClock())
	assert.Equal(t, 9, p.FullMoveNumber())
}

func TestValidateFen(t *testing.T) {
	assert.NoError(t, ValidateFen(StartFen))
	assert.NoError(t, ValidateFen(TrickyFen))

	invalid := []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -",      // 4 fields
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1",           // 7 ranks
		"rnbqkbnr/pppppppp/9/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",  // rank sums to 9
		"rnbqkbnr/ppppppp1/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1p", // bad fullmove
		"rnbqkbnr/pppppppx/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",  // unknown piece
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",  // bad side
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQxq - 0 1",  // bad castling
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq e4 0 1", // ep not on rank 3/6
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - -1 1", // negative halfmove
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 0",  // fullmove < 1
	}
	for _, fen := range invalid {
		err := ValidateFen(fen)
		assert.Error(t, err, "fen %q must not validate", fen)
		var ife *InvalidFenError
		assert.True(t, errors.As(err, &ife), "error must be an InvalidFenError")
	}
}

func TestNewPositionInvalidFenLeavesNoPosition(t *testing.T) {
	p, err := NewPosition("not a fen")
	assert.Error(t, err)
	assert.Nil(t, p)
}
