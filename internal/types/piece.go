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

// Piece indexes the twelve piece bitboards of a position.
// Indices 0-5 are the white pieces, 6-11 the black pieces.
type Piece int8

// Piece constants
const (
	WhitePawn Piece = iota
	WhiteKnight
	WhiteBishop
	WhiteRook
	WhiteQueen
	WhiteKing
	BlackPawn
	BlackKnight
	BlackBishop
	BlackRook
	BlackQueen
	BlackKing
)

// PieceNone is the sentinel for "no piece"
const PieceNone Piece = -1

// PieceLength number of distinct pieces
const PieceLength int = 12

const asciiPieces = "PNBRQKpnbrqk"

var unicodePieces = [PieceLength]string{
	"♙", "♘", "♗", "♖", "♕", "♔",
	"♟", "♞", "♝", "♜", "♛", "♚",
}

// IsValid checks if pc is one of the twelve pieces
func (pc Piece) IsValid() bool {
	return pc >= WhitePawn && pc <= BlackKing
}

// ColorOf returns the color of the piece
func (pc Piece) ColorOf() Color {
	if pc < BlackPawn {
		return White
	}
	return Black
}

// MakePiece returns the piece of the given color with the same kind
// as the given white piece (e.g. MakePiece(Black, WhiteRook) == BlackRook)
func MakePiece(c Color, whitePc Piece) Piece {
	return whitePc + Piece(int8(c)*6)
}

// PieceFromChar returns the piece for a fen character (e.g. 'n' for the
// black knight). Returns PieceNone for any other character.
func PieceFromChar(c byte) Piece {
	for i := 0; i < PieceLength; i++ {
		if asciiPieces[i] == c {
			return Piece(i)
		}
	}
	return PieceNone
}

// Char returns the fen character of the piece (e.g. "n")
func (pc Piece) Char() string {
	if !pc.IsValid() {
		return "."
	}
	return string(asciiPieces[pc])
}

// Symbol returns the unicode figurine of the piece
func (pc Piece) Symbol() string {
	if !pc.IsValid() {
		return "."
	}
	return unicodePieces[pc]
}
