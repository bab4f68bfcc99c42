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

// Magic bitboard lookup for sliding piece attacks.
// https://www.chessprogramming.org/Magic_Bitboards
//
// For each square the relevant occupancy (occ & mask) is hashed with a
// precomputed magic multiplier into an index of the attack table:
//
//	attacks[sq][((occ & mask[sq]) * magic[sq]) >> (64 - relevantBits[sq])]
//
// The multiplication wraps modulo 2^64. The magic numbers below were
// found offline with FindMagicNumber.

// slider attack tables and their per square masks
var (
	bishopMasks [SqLength]Bitboard
	rookMasks   [SqLength]Bitboard

	bishopAttackTable [SqLength][512]Bitboard
	rookAttackTable   [SqLength][4096]Bitboard
)

// bishopRelevantBits is the popcount of the bishop relevant occupancy
// mask for every square on the board
var bishopRelevantBits = [SqLength]int{
	6, 5, 5, 5, 5, 5, 5, 6,
	5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 7, 7, 7, 7, 5, 5,
	5, 5, 7, 9, 9, 7, 5, 5,
	5, 5, 7, 9, 9, 7, 5, 5,
	5, 5, 7, 7, 7, 7, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5,
	6, 5, 5, 5, 5, 5, 5, 6,
}

// rookRelevantBits is the popcount of the rook relevant occupancy
// mask for every square on the board
var rookRelevantBits = [SqLength]int{
	12, 11, 11, 11, 11, 11, 11, 12,
	11, 10, 10, 10, 10, 10, 10, 11,
	11, 10, 10, 10, 10, 10, 10, 11,
	11, 10, 10, 10, 10, 10, 10, 11,
	11, 10, 10, 10, 10, 10, 10, 11,
	11, 10, 10, 10, 10, 10, 10, 11,
	11, 10, 10, 10, 10, 10, 10, 11,
	12, 11, 11, 11, 11, 11, 11, 12,
}

var bishopMagicNumbers = [SqLength]uint64{
	0x820420460402A080, 0x0020021200451400, 0x0010011200218000, 0x0004040888100800,
	0x0006211001000400, 0x0401042240021400, 0x0884029888090060, 0x0024202808080810,
	0x0020242038024080, 0x0080021081010102, 0x100004090C030120, 0x00210C0420814205,
	0x0408311040061010, 0x4900011016100900, 0x6841020D30461020, 0x0220112088080800,
	0x8040000802080628, 0x4A48000408480040, 0x2010000E00B20060, 0x1004020809409102,
	0x0001011090400801, 0x2002000420842000, 0xA01200443A090402, 0x01010082A4020221,
	0x7118C00204100682, 0x2223440021040C00, 0xA208018C08020142, 0x0004404004010200,
	0x0014840004802000, 0x0204016024100401, 0x23021A0005451020, 0x0204222022C10410,
	0x00122010002002B0, 0x0002501000022200, 0x84002804001800A1, 0x1002080800060A00,
	0x0040018020120220, 0x41108881004A0100, 0x800C041410224502, 0x4001020080006403,
	0x0205091140081002, 0x491210901C001808, 0x0400084048001000, 0x0008824200910800,
	0xCA00400408228102, 0x2042240800221200, 0x0054082081000405, 0x0001010202004291,
	0x4040A40920100100, 0x4802060101082C10, 0x0208002623100105, 0x1000E2C084040010,
	0x202302400682008A, 0x20820C50024A0C10, 0x200C20020C090100, 0x0684010822028800,
	0x400E002101482012, 0x0800804218044242, 0x08A0040201008820, 0xC000000024420200,
	0x3404102090C20200, 0x8000840810104981, 0x80330810D0009101, 0x0004011001020084,
}

var rookMagicNumbers = [SqLength]uint64{
	0x0880081080C00020, 0x210020C000308100, 0x0080082001100280, 0x01001000A0050108,
	0x0200041029600A00, 0x5100010008220400, 0x8280120001000D80, 0x1880012100014080,
	0x3040800340008020, 0x0400400050026003, 0x0021002000104902, 0x020900200A100100,
	0x000D800802840080, 0x0002808004000600, 0x0024001002110814, 0x2000800541000480,
	0x8000EE8002400080, 0x0024C04010002005, 0x822002401000C800, 0x2040808010000800,
	0x804080800C000802, 0x02A0080110402004, 0x201044000810010A, 0x4080020004004483,
	0x4D84400180228000, 0x1406400880200880, 0x0000801200402203, 0x1080080280100084,
	0x0402140080080080, 0x0A880C0080020080, 0x0342000200080405, 0x20004A8200050044,
	0x8280C00020800889, 0x8002201000400940, 0x044A200101001542, 0x0088090021005000,
	0x3008004200C00400, 0x0284120080800400, 0x4462106804000201, 0x1008240382000061,
	0x0080400080208002, 0x0020100040004020, 0x4000802042020010, 0x040A002042120008,
	0x012A008820120004, 0x0006000408020010, 0x0002008405020008, 0x80100C0040820003,
	0x0002800100446100, 0x00A0982002400080, 0x09A0080010014040, 0x380C209200420A00,
	0x0C04008108000580, 0xC002008004002280, 0x002900842A000100, 0x040100008A004300,
	0x00010211800020C3, 0x0000A08412050242, 0x2001004010200489, 0x0A00081000210045,
	0x4512002810204402, 0x8C22000401102802, 0x0485000082005401, 0x00000100208400CE,
}

// BishopAttacks returns the bishop attack set for the given square and
// board occupancy using the magic lookup tables.
func BishopAttacks(sq Square, occupancy Bitboard) Bitboard {
	occupancy &= bishopMasks[sq]
	occupancy *= Bitboard(bishopMagicNumbers[sq])
	occupancy >>= uint(64 - bishopRelevantBits[sq])
	return bishopAttackTable[sq][occupancy]
}

// RookAttacks returns the rook attack set for the given square and
// board occupancy using the magic lookup tables.
func RookAttacks(sq Square, occupancy Bitboard) Bitboard {
	occupancy &= rookMasks[sq]
	occupancy *= Bitboard(rookMagicNumbers[sq])
	occupancy >>= uint(64 - rookRelevantBits[sq])
	return rookAttackTable[sq][occupancy]
}

// QueenAttacks returns the queen attack set for the given square and
// board occupancy (bishop rays or rook rays).
func QueenAttacks(sq Square, occupancy Bitboard) Bitboard {
	return BishopAttacks(sq, occupancy) | RookAttacks(sq, occupancy)
}

// BishopRelevantBits returns the number of relevant occupancy bits of
// a bishop on the given square
func BishopRelevantBits(sq Square) int {
	return bishopRelevantBits[sq]
}

// RookRelevantBits returns the number of relevant occupancy bits of
// a rook on the given square
func RookRelevantBits(sq Square) int {
	return rookRelevantBits[sq]
}

func initSliderAttacks() {
	for sq := SqA1; sq <= SqH8; sq++ {
		bishopMasks[sq] = MaskBishopAttacks(sq)
		rookMasks[sq] = MaskRookAttacks(sq)

		relevantBits := bishopRelevantBits[sq]
		for index := 0; index < 1<<uint(relevantBits); index++ {
			occupancy := SetOccupancy(index, relevantBits, bishopMasks[sq])
			magicIndex := occupancy * Bitboard(bishopMagicNumbers[sq]) >> uint(64-relevantBits)
			bishopAttackTable[sq][magicIndex] = BishopAttacksOnTheFly(sq, occupancy)
		}

		relevantBits = rookRelevantBits[sq]
		for index := 0; index < 1<<uint(relevantBits); index++ {
			occupancy := SetOccupancy(index, relevantBits, rookMasks[sq])
			magicIndex := occupancy * Bitboard(rookMagicNumbers[sq]) >> uint(64-relevantBits)
			rookAttackTable[sq][magicIndex] = RookAttacksOnTheFly(sq, occupancy)
		}
	}
}
