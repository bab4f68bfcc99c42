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

// Package game drives a full self play game between two players and
// records the visited positions for the score store.
package game

import (
	"github.com/Amit-Sarussi/Chess-Engine/internal/logging"
	"github.com/Amit-Sarussi/Chess-Engine/internal/player"
	"github.com/Amit-Sarussi/Chess-Engine/internal/position"
	"github.com/Amit-Sarussi/Chess-Engine/internal/scorestore"
	. "github.com/Amit-Sarussi/Chess-Engine/internal/types"
)

var log = logging.GetGameLog()

// Result is the outcome of a finished game
type Result int8

// Result constants
const (
	// NoResult means the game is still running
	NoResult Result = iota
	// WhiteWon by checkmate
	WhiteWon
	// BlackWon by checkmate
	BlackWon
	// Stalemate - the side to move has no legal move but is not in check
	Stalemate
	// Cutoff - the game was stopped by the halfmove clock
	Cutoff
)

// String returns a human readable result
func (r Result) String() string {
	switch r {
	case WhiteWon:
		return "1-0"
	case BlackWon:
		return "0-1"
	case Stalemate:
		return "1/2-1/2"
	case Cutoff:
		return "cutoff"
	}
	return "*"
}

// halfmoveCutoff stops a game once the halfmove clock exceeds this
// many plies. This keeps the original engine's literal threshold of
// 50 plies without capture or pawn move (not the standard rule's 100).
const halfmoveCutoff = 50

// Game is a self play game between two players starting from the
// standard starting position.
type Game struct {
	board  *position.Position
	white  player.Player
	black  player.Player
	result Result
	// packed array encodings of every position after a move
	trace []string
}

// NewGame creates a game between the two given players
func NewGame(white player.Player, black player.Player) *Game {
	return &Game{
		board:  position.NewStartPosition(),
		white:  white,
		black:  black,
		result: NoResult,
		trace:  []string{},
	}
}

// Board exposes the game's position (for inspection between moves)
func (g *Game) Board() *position.Position {
	return g.board
}

// Result returns the current result of the game
func (g *Game) Result() Result {
	return g.result
}

// Trace returns the packed array encodings of all positions visited
// after each move
func (g *Game) Trace() []string {
	return g.trace
}

// Play runs the game loop until checkmate, stalemate or the halfmove
// cutoff and returns the result.
func (g *Game) Play() Result {
	for g.result == NoResult && g.board.HalfMoveClock() <= halfmoveCutoff {
		var current player.Player
		if g.board.NextPlayer() == White {
			current = g.white
		} else {
			current = g.black
		}

		move, ok := current.MakePlayerMove(g.board)
		if !ok {
			// no legal move: mate if the mover is in check, else stalemate
			if g.board.IsKingInCheck(g.board.NextPlayer()) {
				if g.board.NextPlayer() == White {
					g.result = BlackWon
				} else {
					g.result = WhiteWon
				}
			} else {
				g.result = Stalemate
			}
			break
		}

		log.Debugf("%s played %s", current.Color().Name(), move.String())
		g.trace = append(g.trace, g.board.ToPackedArray())
	}

	if g.result == NoResult {
		g.result = Cutoff
	}
	log.Infof("game finished: %s after %d positions", g.result, len(g.trace))
	return g.result
}

// SaveTo folds the game outcome into the score store: every visited
// position gets the result added to its running evaluation and its
// observation count increased. White wins count +1, black wins -1,
// draws and cutoffs 0.
func (g *Game) SaveTo(store *scorestore.Store) error {
	var delta float32
	switch g.result {
	case WhiteWon:
		delta = 1
	case BlackWon:
		delta = -1
	}

	entries := make(map[string]scorestore.Score, len(g.trace))
	for _, key := range g.trace {
		score, err := store.GetOrDefault(key, scorestore.Score{})
		if err != nil {
			return err
		}
		// aggregate across duplicates within this game as well
		if pending, ok := entries[key]; ok {
			score = pending
		}
		score.Eval += delta
		score.Count++
		entries[key] = score
	}
	return store.PutBatch(entries)
}
