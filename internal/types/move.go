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

import "strings"

// Move is a chess move packed into the lower 24 bits of an integer.
// The layout is opaque to callers - use EncodeMove and the accessors.
//
//	0000 0000 0000 0000 0011 1111   from square       0x3f
//	0000 0000 0000 1111 1100 0000   to square         0xfc0
//	0000 0000 1111 0000 0000 0000   piece             0xf000
//	0000 1111 0000 0000 0000 0000   promoted piece    0xf0000
//	0001 0000 0000 0000 0000 0000   capture flag      0x100000
//	0010 0000 0000 0000 0000 0000   double push flag  0x200000
//	0100 0000 0000 0000 0000 0000   en passant flag   0x400000
//	1000 0000 0000 0000 0000 0000   castling flag     0x800000
type Move uint32

// MoveNone is the sentinel for "no move". No legal chess move encodes
// to zero (a white pawn standing still on a1).
const MoveNone Move = 0

const (
	fromMask     Move = 0x3f
	toShift      uint = 6
	pieceShift   uint = 12
	promShift    uint = 16
	captureFlag  Move = 1 << 20
	doubleFlag   Move = 1 << 21
	epFlag       Move = 1 << 22
	castlingFlag Move = 1 << 23
)

// EncodeMove packs a move into its 24-bit integer representation.
// For non promotion moves promoted must be PieceNone.
func EncodeMove(from Square, to Square, pc Piece, promoted Piece, capture bool, doublePush bool, enPassant bool, castling bool) Move {
	m := Move(from) | Move(to)<<toShift | Move(pc)<<pieceShift
	if promoted != PieceNone {
		m |= Move(promoted) << promShift
	}
	if capture {
		m |= captureFlag
	}
	if doublePush {
		m |= doubleFlag
	}
	if enPassant {
		m |= epFlag
	}
	if castling {
		m |= castlingFlag
	}
	return m
}

// From returns the source square of the move
func (m Move) From() Square {
	return Square(m & fromMask)
}

// To returns the target square of the move
func (m Move) To() Square {
	return Square((m >> toShift) & fromMask)
}

// Piece returns the moving piece
func (m Move) Piece() Piece {
	return Piece((m >> pieceShift) & 0xf)
}

// Promoted returns the promotion piece or PieceNone if the move is not
// a promotion. A promotion can never be to a white pawn so the zero
// field value is unambiguous.
func (m Move) Promoted() Piece {
	p := Piece((m >> promShift) & 0xf)
	if p == WhitePawn {
		return PieceNone
	}
	return p
}

// IsCapture checks the capture flag of the move
func (m Move) IsCapture() bool {
	return m&captureFlag != 0
}

// IsDoublePush checks the double pawn push flag of the move
func (m Move) IsDoublePush() bool {
	return m&doubleFlag != 0
}

// IsEnPassant checks the en passant capture flag of the move
func (m Move) IsEnPassant() bool {
	return m&epFlag != 0
}

// IsCastling checks the castling flag of the move
func (m Move) IsCastling() bool {
	return m&castlingFlag != 0
}

// String renders the move in long algebraic notation, e.g. "e2e4" or
// "e7e8q" for promotions.
func (m Move) String() string {
	if m == MoveNone {
		return "-"
	}
	s := m.From().String() + m.To().String()
	if promoted := m.Promoted(); promoted != PieceNone {
		s += strings.ToLower(promoted.Char())
	}
	return s
}
