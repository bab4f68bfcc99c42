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

func TestBitboardPushPop(t *testing.T) {
	b := BbZero
	b.PushSquare(SqE4)
	assert.True(t, b.Has(SqE4))
	assert.Equal(t, 1, b.PopCount())

	// pushing twice does not change anything
	b.PushSquare(SqE4)
	assert.Equal(t, 1, b.PopCount())

	b.PushSquare(SqA1)
	b.PushSquare(SqH8)
	assert.Equal(t, 3, b.PopCount())

	b.PopSquare(SqE4)
	assert.False(t, b.Has(SqE4))

	// popping a cleared square does not change anything
	b.PopSquare(SqE4)
	assert.Equal(t, 2, b.PopCount())
}

func TestBitboardLsb(t *testing.T) {
	b := SqH8.Bb() | SqE4.Bb() | SqC2.Bb()
	assert.Equal(t, SqC2, b.Lsb())

	assert.Equal(t, SqC2, b.PopLsb())
	assert.Equal(t, SqE4, b.PopLsb())
	assert.Equal(t, SqH8, b.PopLsb())
	assert.Equal(t, SqNone, b.PopLsb())
	assert.Equal(t, BbZero, b)
}

func TestBitboardFileMasks(t *testing.T) {
	// the literal wrap around masks of the move generator
	assert.Equal(t, Bitboard(18374403900871474942), NotFileA_Bb)
	assert.Equal(t, Bitboard(9187201950435737471), NotFileH_Bb)
	assert.Equal(t, Bitboard(18229723555195321596), NotFileAB_Bb)
	assert.Equal(t, Bitboard(4557430888798830399), NotFileGH_Bb)
}

func TestBitboardFileRankBb(t *testing.T) {
	assert.Equal(t, FileE_Bb, FileE.Bb())
	assert.Equal(t, Rank4_Bb, Rank4.Bb())
	assert.True(t, FileE.Bb().Has(SqE4))
	assert.True(t, Rank4.Bb().Has(SqE4))
	assert.Equal(t, 8, FileA_Bb.PopCount())
	assert.Equal(t, 8, Rank8_Bb.PopCount())
}

func TestBitboardStrGrp(t *testing.T) {
	b := SqA1.Bb()
	assert.Equal(t, "10000000.00000000.00000000.00000000.00000000.00000000.00000000.00000000 (1)", b.StrGrp())
}
