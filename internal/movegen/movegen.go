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

// Package movegen generates moves for a chess position.
//
// GeneratePseudoLegalMoves does not filter moves that leave the own
// king in check - legality is finalized by Position.MakeMove. The
// emission order is deterministic: piece by piece (pawns, knights,
// bishops, rooks, queens, castling, king), within a piece source
// square ascending, then target square ascending.
package movegen

import (
	"github.com/Amit-Sarussi/Chess-Engine/internal/attacks"
	"github.com/Amit-Sarussi/Chess-Engine/internal/moveslice"
	"github.com/Amit-Sarussi/Chess-Engine/internal/position"
	. "github.com/Amit-Sarussi/Chess-Engine/internal/types"
)

// typical number of pseudo legal moves in a middle game position
const avgMoves = 48

// GeneratePseudoLegalMoves returns all pseudo legal moves for the side
// to move.
func GeneratePseudoLegalMoves(p *position.Position) moveslice.MoveSlice {
	moves := moveslice.New(avgMoves)
	us := p.NextPlayer()
	if us == White {
		generatePawnMoves(p, White, &moves)
		generatePieceMoves(p, White, &moves)
	} else {
		generatePawnMoves(p, Black, &moves)
		generatePieceMoves(p, Black, &moves)
	}
	return moves
}

// GenerateLegalMoves returns all strictly legal moves for the side to
// move by trying each pseudo legal move and rolling back. An empty
// result means checkmate if the side to move is in check, stalemate
// otherwise.
func GenerateLegalMoves(p *position.Position) moveslice.MoveSlice {
	pseudo := GeneratePseudoLegalMoves(p)
	legal := moveslice.New(pseudo.Len())
	state := p.Snapshot()
	for _, m := range pseudo {
		if p.MakeMove(m) {
			legal.PushBack(m)
			p.Restore(state)
		}
	}
	return legal
}

// HasLegalMove checks if the side to move has at least one legal move
func HasLegalMove(p *position.Position) bool {
	pseudo := GeneratePseudoLegalMoves(p)
	state := p.Snapshot()
	for _, m := range pseudo {
		if p.MakeMove(m) {
			p.Restore(state)
			return true
		}
	}
	return false
}

func generatePawnMoves(p *position.Position, us Color, moves *moveslice.MoveSlice) {
	pawn := MakePiece(us, WhitePawn)
	them := us.Flip()
	bothOcc := p.OccupiedBb(Both)
	dir := us.MoveDirection()

	for bb := p.PieceBb(pawn); bb != BbZero; {
		from := bb.PopLsb()
		to := from + dir

		// single and double pushes
		if to.IsValid() && !bothOcc.Has(to) {
			if to.RankOf() == us.PromotionRank() {
				for _, prom := range promotionPieces(us) {
					moves.PushBack(EncodeMove(from, to, pawn, prom, false, false, false, false))
				}
			} else {
				moves.PushBack(EncodeMove(from, to, pawn, PieceNone, false, false, false, false))
				if from.RankOf() == us.PawnStartRank() && !bothOcc.Has(to+dir) {
					moves.PushBack(EncodeMove(from, to+dir, pawn, PieceNone, false, true, false, false))
				}
			}
		}

		// captures
		for caps := attacks.PawnAttacks(us, from) & p.OccupiedBb(them); caps != BbZero; {
			to := caps.PopLsb()
			if to.RankOf() == us.PromotionRank() {
				for _, prom := range promotionPieces(us) {
					moves.PushBack(EncodeMove(from, to, pawn, prom, true, false, false, false))
				}
			} else {
				moves.PushBack(EncodeMove(from, to, pawn, PieceNone, true, false, false, false))
			}
		}

		// en passant
		if ep := p.EnPassantSquare(); ep != SqNone && attacks.PawnAttacks(us, from).Has(ep) {
			moves.PushBack(EncodeMove(from, ep, pawn, PieceNone, true, false, true, false))
		}
	}
}

func generatePieceMoves(p *position.Position, us Color, moves *moveslice.MoveSlice) {
	ownOcc := p.OccupiedBb(us)
	bothOcc := p.OccupiedBb(Both)

	knight := MakePiece(us, WhiteKnight)
	for bb := p.PieceBb(knight); bb != BbZero; {
		from := bb.PopLsb()
		pushTargets(moves, knight, from, attacks.KnightAttacks(from)&^ownOcc, bothOcc)
	}

	bishop := MakePiece(us, WhiteBishop)
	for bb := p.PieceBb(bishop); bb != BbZero; {
		from := bb.PopLsb()
		pushTargets(moves, bishop, from, attacks.BishopAttacks(from, bothOcc)&^ownOcc, bothOcc)
	}

	rook := MakePiece(us, WhiteRook)
	for bb := p.PieceBb(rook); bb != BbZero; {
		from := bb.PopLsb()
		pushTargets(moves, rook, from, attacks.RookAttacks(from, bothOcc)&^ownOcc, bothOcc)
	}

	queen := MakePiece(us, WhiteQueen)
	for bb := p.PieceBb(queen); bb != BbZero; {
		from := bb.PopLsb()
		pushTargets(moves, queen, from, attacks.QueenAttacks(from, bothOcc)&^ownOcc, bothOcc)
	}

	generateCastlingMoves(p, us, moves)

	king := MakePiece(us, WhiteKing)
	for bb := p.PieceBb(king); bb != BbZero; {
		from := bb.PopLsb()
		pushTargets(moves, king, from, attacks.KingAttacks(from)&^ownOcc, bothOcc)
	}
}

// pushTargets emits one move per target square, flagged as capture
// when the target is occupied (own pieces are already masked out).
func pushTargets(moves *moveslice.MoveSlice, pc Piece, from Square, targets Bitboard, bothOcc Bitboard) {
	for targets != BbZero {
		to := targets.PopLsb()
		moves.PushBack(EncodeMove(from, to, pc, PieceNone, bothOcc.Has(to), false, false, false))
	}
}

// generateCastlingMoves emits king and queen side castling when the
// right is intact, the squares between king and rook are empty and
// neither the king's origin nor its transit square is attacked. The
// landing square is checked by MakeMove like for any other move.
func generateCastlingMoves(p *position.Position, us Color, moves *moveslice.MoveSlice) {
	bothOcc := p.OccupiedBb(Both)
	them := us.Flip()

	if us == White {
		if p.CastlingRights().Has(CastlingWhiteOO) &&
			!bothOcc.Has(SqF1) && !bothOcc.Has(SqG1) &&
			!p.IsSquareAttacked(SqE1, them) && !p.IsSquareAttacked(SqF1, them) {
			moves.PushBack(EncodeMove(SqE1, SqG1, WhiteKing, PieceNone, false, false, false, true))
		}
		if p.CastlingRights().Has(CastlingWhiteOOO) &&
			!bothOcc.Has(SqB1) && !bothOcc.Has(SqC1) && !bothOcc.Has(SqD1) &&
			!p.IsSquareAttacked(SqE1, them) && !p.IsSquareAttacked(SqD1, them) {
			moves.PushBack(EncodeMove(SqE1, SqC1, WhiteKing, PieceNone, false, false, false, true))
		}
		return
	}

	if p.CastlingRights().Has(CastlingBlackOO) &&
		!bothOcc.Has(SqF8) && !bothOcc.Has(SqG8) &&
		!p.IsSquareAttacked(SqE8, them) && !p.IsSquareAttacked(SqF8, them) {
		moves.PushBack(EncodeMove(SqE8, SqG8, BlackKing, PieceNone, false, false, false, true))
	}
	if p.CastlingRights().Has(CastlingBlackOOO) &&
		!bothOcc.Has(SqB8) && !bothOcc.Has(SqC8) && !bothOcc.Has(SqD8) &&
		!p.IsSquareAttacked(SqE8, them) && !p.IsSquareAttacked(SqD8, them) {
		moves.PushBack(EncodeMove(SqE8, SqC8, BlackKing, PieceNone, false, false, false, true))
	}
}

func promotionPieces(us Color) [4]Piece {
	if us == White {
		return [4]Piece{WhiteQueen, WhiteRook, WhiteBishop, WhiteKnight}
	}
	return [4]Piece{BlackQueen, BlackRook, BlackBishop, BlackKnight}
}
