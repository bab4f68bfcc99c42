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

package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Amit-Sarussi/Chess-Engine/internal/player"
	"github.com/Amit-Sarussi/Chess-Engine/internal/scorestore"
	. "github.com/Amit-Sarussi/Chess-Engine/internal/types"
)

func TestRandomSelfplayFinishes(t *testing.T) {
	g := NewGame(
		player.NewRandomPlayer(White, 7),
		player.NewRandomPlayer(Black, 11),
	)
	result := g.Play()

	assert.NotEqual(t, NoResult, result)
	assert.Equal(t, result, g.Result())
	assert.NotEmpty(t, g.Trace())
	// every trace entry is a packed array of 69 values
	for _, entry := range g.Trace() {
		assert.Regexp(t, `^\[(-?\d+,){68}-?\d+\]$`, entry)
	}
}

func TestGameResultString(t *testing.T) {
	assert.Equal(t, "1-0", WhiteWon.String())
	assert.Equal(t, "0-1", BlackWon.String())
	assert.Equal(t, "1/2-1/2", Stalemate.String())
	assert.Equal(t, "cutoff", Cutoff.String())
	assert.Equal(t, "*", NoResult.String())
}

func TestSaveToAggregatesScores(t *testing.T) {
	store, err := scorestore.OpenInMemory()
	assert.NoError(t, err)
	defer store.Close()

	g := NewGame(
		player.NewRandomPlayer(White, 3),
		player.NewRandomPlayer(Black, 5),
	)
	g.Play()
	assert.NoError(t, g.SaveTo(store))

	keys, err := store.Keys()
	assert.NoError(t, err)
	assert.NotEmpty(t, keys)

	// counts reflect the observations of this game
	total := uint32(0)
	for _, key := range keys {
		score, found, err := store.Get(key)
		assert.NoError(t, err)
		assert.True(t, found)
		assert.GreaterOrEqual(t, score.Count, uint32(1))
		total += score.Count
	}
	assert.Equal(t, uint32(len(g.Trace())), total)

	// saving a second game on top accumulates
	g2 := NewGame(
		player.NewRandomPlayer(White, 13),
		player.NewRandomPlayer(Black, 17),
	)
	g2.Play()
	assert.NoError(t, g2.SaveTo(store))

	keys, err = store.Keys()
	assert.NoError(t, err)
	total = 0
	for _, key := range keys {
		score, _, err := store.Get(key)
		assert.NoError(t, err)
		total += score.Count
	}
	assert.Equal(t, uint32(len(g.Trace())+len(g2.Trace())), total)
}
