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

// Package position represents a chess position as twelve piece
// bitboards plus derived occupancies, side to move, castling rights,
// en passant square and the half/full move clocks.
//
// A Position is exclusively owned by its caller: mutations (MakeMove,
// Restore, fen parsing) require exclusive access. Snapshots are plain
// value copies and independent of further mutation. The shared attack
// tables are immutable and need no synchronization.
package position

import (
	"fmt"
	"strings"

	"github.com/Amit-Sarussi/Chess-Engine/internal/assert"
	"github.com/Amit-Sarussi/Chess-Engine/internal/attacks"
	. "github.com/Amit-Sarussi/Chess-Engine/internal/types"
)

// State is a full value copy of the mutable fields of a Position.
// It is the snapshot used to roll back moves - there is no separate
// unmake. Callers that try many moves take a snapshot once, try a
// move, then restore.
type State struct {
	Bitboards   [PieceLength]Bitboard
	Occupancies [3]Bitboard
	Turn        Color
	Castle      CastlingRights
	EnPassant   Square
	Halfmove    int
	Fullmove    int
}

// Position represents the chess board and its state.
// Needs to be created with NewPosition() or NewStartPosition().
type Position struct {
	// one bitboard per piece, indexed by types.Piece
	bitboards [PieceLength]Bitboard
	// occupied squares for White, Black and Both
	occupancies [3]Bitboard

	turn      Color
	castle    CastlingRights
	enPassant Square
	halfmove  int
	fullmove  int
}

// NewStartPosition creates a new position with the standard chess
// starting position.
func NewStartPosition() *Position {
	p, err := NewPosition(StartFen)
	if err != nil {
		panic(fmt.Sprintf("start position fen must parse: %s", err))
	}
	return p
}

// NewPosition creates a new position from the given fen string.
// Returns an InvalidFenError if the fen is malformed or semantically
// invalid.
func NewPosition(fen string) (*Position, error) {
	p := &Position{}
	if err := p.parseFen(fen); err != nil {
		return nil, err
	}
	return p, nil
}

// NextPlayer returns the side to move
func (p *Position) NextPlayer() Color {
	return p.turn
}

// PieceBb returns the bitboard of the given piece
func (p *Position) PieceBb(pc Piece) Bitboard {
	return p.bitboards[pc]
}

// OccupiedBb returns the occupancy bitboard of the given side
// (White, Black or Both)
func (p *Position) OccupiedBb(c Color) Bitboard {
	return p.occupancies[c]
}

// CastlingRights returns the current castling rights mask
func (p *Position) CastlingRights() CastlingRights {
	return p.castle
}

// EnPassantSquare returns the current en passant target square or
// SqNone
func (p *Position) EnPassantSquare() Square {
	return p.enPassant
}

// HalfMoveClock returns the number of half moves since the last
// capture or pawn move (50 move rule clock)
func (p *Position) HalfMoveClock() int {
	return p.halfmove
}

// FullMoveNumber returns the move counter, starting at 1 and
// incremented after each black move
func (p *Position) FullMoveNumber() int {
	return p.fullmove
}

// PieceOn returns the piece on the given square or PieceNone
func (p *Position) PieceOn(sq Square) Piece {
	for pc := WhitePawn; pc <= BlackKing; pc++ {
		if p.bitboards[pc].Has(sq) {
			return pc
		}
	}
	return PieceNone
}

// Snapshot returns a full value copy of the mutable position state.
// The returned State is independent of the Position and stays valid
// beyond the Position's next mutation.
func (p *Position) Snapshot() State {
	return State{
		Bitboards:   p.bitboards,
		Occupancies: p.occupancies,
		Turn:        p.turn,
		Castle:      p.castle,
		EnPassant:   p.enPassant,
		Halfmove:    p.halfmove,
		Fullmove:    p.fullmove,
	}
}

// Restore resets the position to a previously taken snapshot
func (p *Position) Restore(s State) {
	p.bitboards = s.Bitboards
	p.occupancies = s.Occupancies
	p.turn = s.Turn
	p.castle = s.Castle
	p.enPassant = s.EnPassant
	p.halfmove = s.Halfmove
	p.fullmove = s.Fullmove
}

// Clone returns an independent copy of the position. All fields are
// value types, so a struct copy is a deep copy.
func (p *Position) Clone() *Position {
	clone := *p
	return &clone
}

// IsSquareAttacked determines if the given square is attacked by any
// piece of the given side. Slider probes use the combined occupancy.
func (p *Position) IsSquareAttacked(sq Square, by Color) bool {
	occ := p.occupancies[Both]

	if by == White {
		return attacks.QueenAttacks(sq, occ)&p.bitboards[WhiteQueen] != 0 ||
			attacks.BishopAttacks(sq, occ)&p.bitboards[WhiteBishop] != 0 ||
			attacks.RookAttacks(sq, occ)&p.bitboards[WhiteRook] != 0 ||
			attacks.KnightAttacks(sq)&p.bitboards[WhiteKnight] != 0 ||
			attacks.KingAttacks(sq)&p.bitboards[WhiteKing] != 0 ||
			attacks.PawnAttacks(Black, sq)&p.bitboards[WhitePawn] != 0
	}
	return attacks.QueenAttacks(sq, occ)&p.bitboards[BlackQueen] != 0 ||
		attacks.BishopAttacks(sq, occ)&p.bitboards[BlackBishop] != 0 ||
		attacks.RookAttacks(sq, occ)&p.bitboards[BlackRook] != 0 ||
		attacks.KnightAttacks(sq)&p.bitboards[BlackKnight] != 0 ||
		attacks.KingAttacks(sq)&p.bitboards[BlackKing] != 0 ||
		attacks.PawnAttacks(White, sq)&p.bitboards[BlackPawn] != 0
}

// IsKingInCheck checks if the king of the given side is attacked by
// the other side.
func (p *Position) IsKingInCheck(side Color) bool {
	kingBb := p.bitboards[MakePiece(side, WhiteKing)]
	if assert.DEBUG {
		assert.Assert(kingBb != BbZero, "position has no %s king", side.Name())
	}
	return p.IsSquareAttacked(kingBb.Lsb(), side.Flip())
}

// String returns a string representing the position: the board matrix
// with figurines plus turn, en passant and castling state.
func (p *Position) String() string {
	var os strings.Builder
	for r := Rank8; r >= Rank1; r-- {
		os.WriteString(r.String())
		os.WriteString(" ")
		for f := FileA; f <= FileH; f++ {
			pc := p.PieceOn(SquareOf(f, r))
			if pc == PieceNone {
				os.WriteString(". ")
			} else {
				os.WriteString(pc.Symbol())
				os.WriteString(" ")
			}
		}
		os.WriteString("\n")
	}
	os.WriteString("  a b c d e f g h\n\n")
	os.WriteString(fmt.Sprintf("  Turn: %s\n", p.turn.Name()))
	os.WriteString(fmt.Sprintf("  En passant: %s\n", p.enPassant.String()))
	os.WriteString(fmt.Sprintf("  Castle: %s\n", p.castle.String()))
	return os.String()
}

// updateOccupancies rebuilds the three occupancy bitboards from the
// twelve piece bitboards
func (p *Position) updateOccupancies() {
	p.occupancies[White] = BbZero
	p.occupancies[Black] = BbZero
	for pc := WhitePawn; pc <= WhiteKing; pc++ {
		p.occupancies[White] |= p.bitboards[pc]
	}
	for pc := BlackPawn; pc <= BlackKing; pc++ {
		p.occupancies[Black] |= p.bitboards[pc]
	}
	p.occupancies[Both] = p.occupancies[White] | p.occupancies[Black]
}
