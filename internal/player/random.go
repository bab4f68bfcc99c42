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
	"math/rand"

	"github.com/Amit-Sarussi/Chess-Engine/internal/movegen"
	"github.com/Amit-Sarussi/Chess-Engine/internal/position"
	. "github.com/Amit-Sarussi/Chess-Engine/internal/types"
)

// RandomPlayer plays a uniformly random legal move
type RandomPlayer struct {
	color Color
	rng   *rand.Rand
}

// NewRandomPlayer creates a random player for the given side. The
// seed makes games reproducible.
func NewRandomPlayer(c Color, seed int64) *RandomPlayer {
	return &RandomPlayer{
		color: c,
		rng:   rand.New(rand.NewSource(seed)),
	}
}

// Color returns the side this player plays
func (rp *RandomPlayer) Color() Color {
	return rp.color
}

// MakePlayerMove picks random candidates until one sticks
func (rp *RandomPlayer) MakePlayerMove(p *position.Position) (Move, bool) {
	candidates := movegen.GeneratePseudoLegalMoves(p)
	for candidates.Len() > 0 {
		i := rp.rng.Intn(candidates.Len())
		move := candidates.At(i)
		if p.MakeMove(move) {
			return move, true
		}
		// swap the illegal candidate out and retry
		candidates.Set(i, candidates.At(candidates.Len()-1))
		candidates.PopBack()
	}
	return MoveNone, false
}
