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
	. "github.com/Amit-Sarussi/Chess-Engine/internal/types"
)

// MoveFilter selects which moves MakeMoveFiltered accepts
type MoveFilter uint8

// MoveFilter constants
const (
	AllMoves MoveFilter = iota
	CapturesOnly
)

// MakeMove applies a pseudo legal move to the position. It returns
// false and leaves the position unchanged when the move would leave
// the mover's own king in check. An illegal move is not an error -
// callers generate pseudo legal moves and let MakeMove finalize
// legality.
func (p *Position) MakeMove(m Move) bool {
	return p.MakeMoveFiltered(m, AllMoves)
}

// MakeMoveFiltered is MakeMove with a filter: in CapturesOnly mode non
// capture moves are rejected without any state change.
func (p *Position) MakeMoveFiltered(m Move, filter MoveFilter) bool {
	if filter == CapturesOnly && !m.IsCapture() {
		return false
	}

	state := p.Snapshot()

	from := m.From()
	to := m.To()
	pc := m.Piece()

	// move the piece
	p.bitboards[pc].PopSquare(from)
	p.bitboards[pc].PushSquare(to)

	// remove a captured piece from the target square. The en passant
	// victim does not stand on the target square and is handled below.
	if m.IsCapture() && !m.IsEnPassant() {
		first, last := BlackPawn, BlackKing
		if p.turn == Black {
			first, last = WhitePawn, WhiteKing
		}
		for victim := first; victim <= last; victim++ {
			if p.bitboards[victim].Has(to) {
				p.bitboards[victim].PopSquare(to)
				break
			}
		}
	}

	// a promotion replaces the pawn on the target square
	if promoted := m.Promoted(); promoted != PieceNone {
		p.bitboards[pc].PopSquare(to)
		p.bitboards[promoted].PushSquare(to)
	}

	// en passant captures the pawn one rank behind the target square
	if m.IsEnPassant() {
		if p.turn == White {
			p.bitboards[BlackPawn].PopSquare(to - 8)
		} else {
			p.bitboards[WhitePawn].PopSquare(to + 8)
		}
	}

	// the en passant square only lives for one ply
	p.enPassant = SqNone
	if m.IsDoublePush() {
		if p.turn == White {
			p.enPassant = to - 8
		} else {
			p.enPassant = to + 8
		}
	}

	// castling also hops the rook
	if m.IsCastling() {
		switch to {
		case SqG1:
			p.bitboards[WhiteRook].PopSquare(SqH1)
			p.bitboards[WhiteRook].PushSquare(SqF1)
		case SqC1:
			p.bitboards[WhiteRook].PopSquare(SqA1)
			p.bitboards[WhiteRook].PushSquare(SqD1)
		case SqG8:
			p.bitboards[BlackRook].PopSquare(SqH8)
			p.bitboards[BlackRook].PushSquare(SqF8)
		case SqC8:
			p.bitboards[BlackRook].PopSquare(SqA8)
			p.bitboards[BlackRook].PushSquare(SqD8)
		}
	}

	// erode castling rights when a relevant square is left or entered
	p.castle &= CastlingRightsMask[from]
	p.castle &= CastlingRightsMask[to]

	p.updateOccupancies()

	// clocks
	p.halfmove++
	if m.IsCapture() || pc == WhitePawn || pc == BlackPawn {
		p.halfmove = 0
	}
	if p.turn == Black {
		p.fullmove++
	}

	p.turn = p.turn.Flip()

	// the mover may not leave their own king in check
	if p.IsKingInCheck(p.turn.Flip()) {
		p.Restore(state)
		return false
	}
	return true
}
