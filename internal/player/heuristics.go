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
	"github.com/Amit-Sarussi/Chess-Engine/internal/movegen"
	"github.com/Amit-Sarussi/Chess-Engine/internal/position"
	. "github.com/Amit-Sarussi/Chess-Engine/internal/types"
)

// HeuristicsPlayer plays the move that maximizes the material balance
// from its own perspective after one ply.
type HeuristicsPlayer struct {
	color Color
}

// NewHeuristicsPlayer creates a material counting player for the
// given side
func NewHeuristicsPlayer(c Color) *HeuristicsPlayer {
	return &HeuristicsPlayer{color: c}
}

// Color returns the side this player plays
func (hp *HeuristicsPlayer) Color() Color {
	return hp.color
}

// MakePlayerMove evaluates every legal move one ply deep and commits
// the best one. Ties keep the earliest generated move.
func (hp *HeuristicsPlayer) MakePlayerMove(p *position.Position) (Move, bool) {
	state := p.Snapshot()
	best := MoveNone
	bestScore := 0
	for _, move := range movegen.GeneratePseudoLegalMoves(p) {
		if !p.MakeMove(move) {
			continue
		}
		score := evaluateMaterial(p, hp.color)
		p.Restore(state)
		if best == MoveNone || score > bestScore {
			best = move
			bestScore = score
		}
	}
	if best == MoveNone {
		return MoveNone, false
	}
	p.MakeMove(best)
	return best, true
}
