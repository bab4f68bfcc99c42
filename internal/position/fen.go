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

// InvalidFenError is returned when a fen string is malformed or
// semantically invalid. No partial position is left behind.
type InvalidFenError struct {
	Reason string
}

func (e *InvalidFenError) Error() string {
	return "invalid fen: " + e.Reason
}

func invalidFen(reason string) error {
	return &InvalidFenError{Reason: reason}
}

// ValidateFen checks a fen string for the standard six fields without
// building a position. Returns nil or an InvalidFenError with the
// reason of the first violation.
func ValidateFen(fen string) error {
	parts := strings.Fields(fen)
	if len(parts) != 6 {
		return invalidFen("expected 6 fields, got " + strconv.Itoa(len(parts)))
	}

	// piece placement: eight ranks, each summing to exactly 8 files
	ranks := strings.Split(parts[0], "/")
	if len(ranks) != 8 {
		return invalidFen("expected 8 ranks, got " + strconv.Itoa(len(ranks)))
	}
	for _, rank := range ranks {
		fileCount := 0
		for i := 0; i < len(rank); i++ {
			c := rank[i]
			switch {
			case c >= '1' && c <= '8':
				fileCount += int(c - '0')
			case PieceFromChar(c) != PieceNone:
				fileCount++
			default:
				return invalidFen("unknown character in piece placement: " + string(c))
			}
		}
		if fileCount != 8 {
			return invalidFen("rank \"" + rank + "\" does not sum to 8 files")
		}
	}

	// side to move
	if parts[1] != "w" && parts[1] != "b" {
		return invalidFen("side to move must be w or b")
	}

	// castling rights
	if parts[2] != "-" {
		for i := 0; i < len(parts[2]); i++ {
			if !strings.ContainsRune("KQkq", rune(parts[2][i])) {
				return invalidFen("castling field contains invalid character: " + string(parts[2][i]))
			}
		}
	}

	// en passant square
	if parts[3] != "-" {
		if len(parts[3]) != 2 ||
			parts[3][0] < 'a' || parts[3][0] > 'h' ||
			(parts[3][1] != '3' && parts[3][1] != '6') {
			return invalidFen("en passant field must be - or a square on rank 3 or 6")
		}
	}

	// half move clock
	halfmove, err := strconv.Atoi(parts[4])
	if err != nil || halfmove < 0 {
		return invalidFen("halfmove clock must be a non negative number")
	}

	// full move number
	fullmove, err := strconv.Atoi(parts[5])
	if err != nil || fullmove < 1 {
		return invalidFen("fullmove number must be a positive number")
	}

	return nil
}

// parseFen sets up the position from a fen string. The position is
// only modified when the fen validates.
func (p *Position) parseFen(fen string) error {
	if err := ValidateFen(fen); err != nil {
		return err
	}
	parts := strings.Fields(fen)

	// reset board state
	p.bitboards = [PieceLength]Bitboard{}
	p.occupancies = [3]Bitboard{}
	p.enPassant = SqNone
	p.castle = CastlingNone

	// piece placement - fen starts at a8 and runs to h1
	rank, file := Rank8, FileA
	for i := 0; i < len(parts[0]); i++ {
		c := parts[0][i]
		switch {
		case c == '/':
			rank--
			file = FileA
		case c >= '1' && c <= '8':
			file += File(c - '0')
		default:
			pc := PieceFromChar(c)
			p.bitboards[pc].PushSquare(SquareOf(file, rank))
			file++
		}
	}

	// side to move
	if parts[1] == "w" {
		p.turn = White
	} else {
		p.turn = Black
	}

	// castling rights
	if parts[2] != "-" {
		for i := 0; i < len(parts[2]); i++ {
			switch parts[2][i] {
			case 'K':
				p.castle.Add(CastlingWhiteOO)
			case 'Q':
				p.castle.Add(CastlingWhiteOOO)
			case 'k':
				p.castle.Add(CastlingBlackOO)
			case 'q':
				p.castle.Add(CastlingBlackOOO)
			}
		}
	}

	// en passant square
	if parts[3] != "-" {
		p.enPassant = MakeSquare(parts[3])
	}

	// clocks - validated above
	p.halfmove, _ = strconv.Atoi(parts[4])
	p.fullmove, _ = strconv.Atoi(parts[5])

	p.updateOccupancies()
	return nil
}

// Fen returns the canonical fen serialization of the position
func (p *Position) Fen() string {
	var fen strings.Builder

	for r := Rank8; r >= Rank1; r-- {
		emptySquares := 0
		for f := FileA; f <= FileH; f++ {
			pc := p.PieceOn(SquareOf(f, r))
			if pc == PieceNone {
				emptySquares++
				continue
			}
			if emptySquares > 0 {
				fen.WriteString(strconv.Itoa(emptySquares))
				emptySquares = 0
			}
			fen.WriteString(pc.Char())
		}
		if emptySquares > 0 {
			fen.WriteString(strconv.Itoa(emptySquares))
		}
		if r > Rank1 {
			fen.WriteString("/")
		}
	}

	fen.WriteString(" ")
	fen.WriteString(p.turn.String())
	fen.WriteString(" ")
	fen.WriteString(p.castle.String())
	fen.WriteString(" ")
	fen.WriteString(p.enPassant.String())
	fen.WriteString(" ")
	fen.WriteString(strconv.Itoa(p.halfmove))
	fen.WriteString(" ")
	fen.WriteString(strconv.Itoa(p.fullmove))

	return fen.String()
}
