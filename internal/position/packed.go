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
	"strconv"
	"strings"

	. "github.com/Amit-Sarussi/Chess-Engine/internal/types"
)

// The packed array is the secondary board encoding used to key learned
// evaluators: a bracketed comma separated list of 69 integers.
//
//	indices 0..63  piece on square rank*8+file as piece+1, 0 = empty
//	indices 64..67 castling flags in order WK, WQ, BK, BQ
//	index 68       en passant square, 0 when there is none
//
// Square a1 can never be an en passant square, so 0 is unambiguous.

const packedArrayLen = 69

// ToPackedArray serializes the position into the packed array string,
// e.g. "[4,2,3,5,6,3,2,4,1,...,0]".
func (p *Position) ToPackedArray() string {
	var sb strings.Builder
	sb.WriteString("[")
	for sq := SqA1; sq <= SqH8; sq++ {
		if sq > SqA1 {
			sb.WriteString(",")
		}
		sb.WriteString(strconv.Itoa(int(p.PieceOn(sq)) + 1))
	}
	for _, right := range [4]CastlingRights{CastlingWhiteOO, CastlingWhiteOOO, CastlingBlackOO, CastlingBlackOOO} {
		if p.castle.Has(right) {
			sb.WriteString(",1")
		} else {
			sb.WriteString(",0")
		}
	}
	sb.WriteString(",")
	if p.enPassant == SqNone {
		sb.WriteString("0")
	} else {
		sb.WriteString(strconv.Itoa(int(p.enPassant)))
	}
	sb.WriteString("]")
	return sb.String()
}

// FromPackedArray builds a position from a packed array string.
// The encoding carries no side to move and no clocks: the decoded
// position is always white to move with clocks "0 1".
func FromPackedArray(s string) (*Position, error) {
	trimmed := strings.TrimSpace(s)
	trimmed = strings.TrimPrefix(trimmed, "[")
	trimmed = strings.TrimSuffix(trimmed, "]")
	fields := strings.Split(trimmed, ",")
	if len(fields) != packedArrayLen {
		return nil, invalidFen("packed array must hold " + strconv.Itoa(packedArrayLen) + " integers, got " + strconv.Itoa(len(fields)))
	}
	values := make([]int, packedArrayLen)
	for i, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, invalidFen("packed array holds a non integer: " + f)
		}
		values[i] = v
	}

	// rebuild the board part of a fen from the square values
	var board strings.Builder
	for r := Rank8; r >= Rank1; r-- {
		empty := 0
		for f := FileA; f <= FileH; f++ {
			v := values[SquareOf(f, r)]
			if v == 0 {
				empty++
				continue
			}
			if v < 1 || v > PieceLength {
				return nil, invalidFen("packed array holds an invalid piece value: " + strconv.Itoa(v))
			}
			if empty > 0 {
				board.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			board.WriteString(Piece(v - 1).Char())
		}
		if empty > 0 {
			board.WriteString(strconv.Itoa(empty))
		}
		if r > Rank1 {
			board.WriteString("/")
		}
	}

	var castle CastlingRights
	for i, right := range [4]CastlingRights{CastlingWhiteOO, CastlingWhiteOOO, CastlingBlackOO, CastlingBlackOOO} {
		if values[64+i] != 0 {
			castle.Add(right)
		}
	}
	castleField := castle.String()

	epField := "-"
	if ep := values[68]; ep != 0 {
		sq := Square(ep)
		if !sq.IsValid() {
			return nil, invalidFen("packed array holds an invalid en passant square: " + strconv.Itoa(ep))
		}
		epField = sq.String()
	}

	return NewPosition(board.String() + " w " + castleField + " " + epField + " 0 1")
}
