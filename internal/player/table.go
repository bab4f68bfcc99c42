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
	"github.com/Amit-Sarussi/Chess-Engine/internal/logging"
	"github.com/Amit-Sarussi/Chess-Engine/internal/movegen"
	"github.com/Amit-Sarussi/Chess-Engine/internal/position"
	"github.com/Amit-Sarussi/Chess-Engine/internal/scorestore"
	. "github.com/Amit-Sarussi/Chess-Engine/internal/types"
)

var log = logging.GetGameLog()

// TablePlayer plays the move leading to the position with the best
// stored evaluation. Positions missing from the store count as 0.
type TablePlayer struct {
	color Color
	store *scorestore.Store
}

// NewTablePlayer creates a table lookup player for the given side
// reading from the given score store.
func NewTablePlayer(c Color, store *scorestore.Store) *TablePlayer {
	return &TablePlayer{color: c, store: store}
}

// Color returns the side this player plays
func (tp *TablePlayer) Color() Color {
	return tp.color
}

// MakePlayerMove looks up the packed array encoding of every legal
// successor position in the score store and commits the move with the
// highest stored evaluation.
func (tp *TablePlayer) MakePlayerMove(p *position.Position) (Move, bool) {
	state := p.Snapshot()
	best := MoveNone
	var bestEval float32
	for _, move := range movegen.GeneratePseudoLegalMoves(p) {
		if !p.MakeMove(move) {
			continue
		}
		key := p.ToPackedArray()
		p.Restore(state)

		score, err := tp.store.GetOrDefault(key, scorestore.Score{})
		if err != nil {
			log.Warningf("score store lookup failed: %s", err)
		}
		if best == MoveNone || score.Eval > bestEval {
			best = move
			bestEval = score.Eval
		}
	}
	if best == MoveNone {
		return MoveNone, false
	}
	p.MakeMove(best)
	return best, true
}
