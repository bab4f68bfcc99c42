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

// Package moveslice provides a slice facade to be used with chess
// moves.
package moveslice

import (
	"strings"

	. "github.com/Amit-Sarussi/Chess-Engine/internal/types"
)

// MoveSlice represents a data structure (go slice) for Move.
type MoveSlice []Move

// New creates a new move slice with the given capacity and 0 elements.
// Is identical to MoveSlice(make([]Move, 0, cap))
func New(cap int) MoveSlice {
	return make([]Move, 0, cap)
}

// PushBack appends a move at the end of the slice
func (ms *MoveSlice) PushBack(m Move) {
	*ms = append(*ms, m)
}

// PopBack removes and returns the move from the back of the slice.
// If the slice is empty, the call panics.
func (ms *MoveSlice) PopBack() Move {
	if len(*ms) <= 0 {
		panic("MoveSlice: PopBack() called on empty slice")
	}
	backMove := (*ms)[len(*ms)-1]
	*ms = (*ms)[:len(*ms)-1]
	return backMove
}

// At returns the move at index i in the slice without removing it.
// Index will not be checked against bounds.
func (ms *MoveSlice) At(i int) Move {
	return (*ms)[i]
}

// Set puts a move at index i in the slice. Set shares the same
// purpose as At() but performs the opposite operation.
// Index will not be checked against bounds.
func (ms *MoveSlice) Set(i int, m Move) {
	(*ms)[i] = m
}

// Len returns the number of moves in the slice
func (ms *MoveSlice) Len() int {
	return len(*ms)
}

// Clear removes all moves but keeps the underlying memory
func (ms *MoveSlice) Clear() {
	*ms = (*ms)[:0]
}

// Contains checks if the slice holds the given move
func (ms *MoveSlice) Contains(m Move) bool {
	for _, move := range *ms {
		if move == m {
			return true
		}
	}
	return false
}

// Find returns the first move for which the predicate holds or
// MoveNone
func (ms *MoveSlice) Find(pred func(Move) bool) Move {
	for _, move := range *ms {
		if pred(move) {
			return move
		}
	}
	return MoveNone
}

// String returns all moves of the slice in long algebraic notation
// separated by spaces
func (ms *MoveSlice) String() string {
	parts := make([]string, 0, len(*ms))
	for _, move := range *ms {
		parts = append(parts, move.String())
	}
	return strings.Join(parts, " ")
}
