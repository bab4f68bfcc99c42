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

package attacks

import (
	. "github.com/Amit-Sarussi/Chess-Engine/internal/types"
)

// Offline search for the magic numbers baked into magic.go. Not called
// at runtime - the engine always uses the literal tables.

// PrnG is a xorshift64star pseudo random number generator.
// Based on original code written and dedicated to the public domain by
// Sebastiano Vigna (2014). Period is 2^64 - 1, no warm-up needed.
type PrnG struct {
	s uint64
}

// NewPrnG creates a new instance of the pseudo random generator.
// The seed must not be zero.
func NewPrnG(seed uint64) *PrnG {
	return &PrnG{s: seed}
}

// Rand64 returns the next pseudo random 64-bit number
func (r *PrnG) Rand64() uint64 {
	r.s ^= r.s >> 12
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	return r.s * 2685821657736338717
}

// SparseRand returns a pseudo random number with only about 1/8th of
// its bits set on average. Sparse numbers make good magic candidates.
func (r *PrnG) SparseRand() uint64 {
	return r.Rand64() & r.Rand64() & r.Rand64()
}

const maxMagicCandidates = 1_000_000_000

// FindMagicNumber searches a magic number for the given square that
// maps every occupancy subset of the relevant mask to a distinct table
// index (collisions are allowed only between equal attack sets).
// Returns 0 if no magic was found within the candidate budget.
func FindMagicNumber(rng *PrnG, sq Square, relevantBits int, bishop bool) uint64 {
	var occupancies [4096]Bitboard
	var attackSets [4096]Bitboard
	var usedAttacks [4096]Bitboard

	var mask Bitboard
	if bishop {
		mask = MaskBishopAttacks(sq)
	} else {
		mask = MaskRookAttacks(sq)
	}

	occupancyIndices := 1 << uint(relevantBits)
	for index := 0; index < occupancyIndices; index++ {
		occupancies[index] = SetOccupancy(index, relevantBits, mask)
		if bishop {
			attackSets[index] = BishopAttacksOnTheFly(sq, occupancies[index])
		} else {
			attackSets[index] = RookAttacksOnTheFly(sq, occupancies[index])
		}
	}

	for try := 0; try < maxMagicCandidates; try++ {
		magic := rng.SparseRand()

		// skip candidates that do not spread the mask into the high bits
		if (Bitboard(magic) * mask >> 56).PopCount() < 6 {
			continue
		}

		for i := range usedAttacks {
			usedAttacks[i] = BbZero
		}

		fail := false
		for index := 0; index < occupancyIndices && !fail; index++ {
			magicIndex := occupancies[index] * Bitboard(magic) >> uint(64-relevantBits)
			if usedAttacks[magicIndex] == BbZero {
				usedAttacks[magicIndex] = attackSets[index]
			} else if usedAttacks[magicIndex] != attackSets[index] {
				fail = true
			}
		}
		if !fail {
			return magic
		}
	}
	return 0
}
