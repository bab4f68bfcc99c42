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

package movegen

import (
	"sync/atomic"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/Amit-Sarussi/Chess-Engine/internal/position"
)

var out = message.NewPrinter(language.English)

// Perft recursively counts the number of legal move sequences of the
// given depth. A standard correctness benchmark for move generation
// and make/unmake.
func Perft(p *position.Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	var nodes uint64
	state := p.Snapshot()
	for _, m := range GeneratePseudoLegalMoves(p) {
		if p.MakeMove(m) {
			nodes += Perft(p, depth-1)
			p.Restore(state)
		}
	}
	return nodes
}

// PerftDivide is the split perft variant: it prints one count per
// legal root move plus the total and returns the total.
func PerftDivide(p *position.Position, depth int) uint64 {
	var total uint64
	state := p.Snapshot()
	for _, m := range GeneratePseudoLegalMoves(p) {
		if p.MakeMove(m) {
			nodes := Perft(p, depth-1)
			out.Printf("%s: %d\n", m.String(), nodes)
			p.Restore(state)
			total += nodes
		}
	}
	out.Printf("\nTotal nodes: %d\n", total)
	return total
}

// PerftParallel splits the perft at the root and counts the subtrees
// concurrently. Every worker owns its own copy of the position - the
// shared attack tables are immutable, so no further synchronization
// is needed.
func PerftParallel(p *position.Position, depth int) uint64 {
	if depth <= 1 {
		return Perft(p, depth)
	}
	var nodes uint64
	var g errgroup.Group
	state := p.Snapshot()
	for _, m := range GeneratePseudoLegalMoves(p) {
		if p.MakeMove(m) {
			worker := p.Clone()
			p.Restore(state)
			g.Go(func() error {
				atomic.AddUint64(&nodes, Perft(worker, depth-1))
				return nil
			})
		}
	}
	// workers never return an error
	_ = g.Wait()
	return nodes
}
