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

// Package player holds the player strategies that drive a position
// from the outside. A player observes the position through the move
// generator and mutates it through MakeMove - the engine core knows
// nothing about players.
package player

import (
	"github.com/Amit-Sarussi/Chess-Engine/internal/position"
	. "github.com/Amit-Sarussi/Chess-Engine/internal/types"
)

// Player is the capability the game driver needs from a strategy:
// pick a legal move and commit it to the position. ok is false when
// no legal move exists (checkmate or stalemate for the side to move).
type Player interface {
	// Color returns the side this player plays
	Color() Color
	// MakePlayerMove picks a legal move, applies it to the position
	// and returns it. Returns ok=false and leaves the position
	// unchanged when the side to move has no legal move.
	MakePlayerMove(p *position.Position) (move Move, ok bool)
}

// material values used by the evaluating players
const (
	pawnScore   = 1
	knightScore = 3
	bishopScore = 3
	rookScore   = 5
	queenScore  = 9
	kingScore   = 200
)

// evaluateMaterial returns the material balance of the position from
// the given side's perspective.
func evaluateMaterial(p *position.Position, us Color) int {
	score := kingScore*(p.PieceBb(WhiteKing).PopCount()-p.PieceBb(BlackKing).PopCount()) +
		queenScore*(p.PieceBb(WhiteQueen).PopCount()-p.PieceBb(BlackQueen).PopCount()) +
		rookScore*(p.PieceBb(WhiteRook).PopCount()-p.PieceBb(BlackRook).PopCount()) +
		bishopScore*(p.PieceBb(WhiteBishop).PopCount()-p.PieceBb(BlackBishop).PopCount()) +
		knightScore*(p.PieceBb(WhiteKnight).PopCount()-p.PieceBb(BlackKnight).PopCount()) +
		pawnScore*(p.PieceBb(WhitePawn).PopCount()-p.PieceBb(BlackPawn).PopCount())
	if us == Black {
		return -score
	}
	return score
}
