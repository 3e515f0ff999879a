package main

// Sliding attacks are answered from per-square tables indexed by PEXT of the
// occupancy against the square's relevant-occupancy mask. Ray squares on the
// board edge never change the attack set, so they are excluded from the mask
// and the table for a square holds 2^popcount(mask) entries.

const (
	rookTableSize   = 102400
	bishopTableSize = 5248
)

var knightAttackBoards [64]Bitboard
var kingAttackBoards [64]Bitboard
var pawnAttackBoards [2][64]Bitboard

var rookRays [64]Bitboard
var bishopRays [64]Bitboard

var rookMasks [64]Bitboard
var bishopMasks [64]Bitboard
var rookOffsets [64]uint32
var bishopOffsets [64]uint32
var rookAttackTable [rookTableSize]Bitboard
var bishopAttackTable [bishopTableSize]Bitboard

func InitializeMoveBoards() {
	InitializeStepBoards()
	FillSlidingAttacks(&bishopSteps, &bishopRays)
	FillSlidingAttacks(&rookSteps, &rookRays)
	bishopEnd := fillPextTable(&bishopRays, &bishopSteps, &bishopMasks, &bishopOffsets, bishopAttackTable[:])
	if bishopEnd != bishopTableSize {
		panic("bishop attack table size mismatch")
	}
	rookEnd := fillPextTable(&rookRays, &rookSteps, &rookMasks, &rookOffsets, rookAttackTable[:])
	if rookEnd != rookTableSize {
		panic("rook attack table size mismatch")
	}
	var square Square
	for square = 0; square < 64; square++ {
		var bitboard Bitboard = EmptyBitboard
		for _, step := range kingSteps {
			if square.tryStep(step) {
				bitboard |= 1 << square.Step(step)
			}
		}
		kingAttackBoards[square] = bitboard
		bitboard = EmptyBitboard
		for _, step := range knightSteps {
			if square.tryStep(step) {
				bitboard |= 1 << square.Step(step)
			}
		}
		knightAttackBoards[square] = bitboard
		bitboard = EmptyBitboard
		for _, step := range [2]Step{UpLeftStep, UpRightStep} {
			if square.tryStep(step) {
				bitboard |= 1 << square.Step(step)
			}
		}
		pawnAttackBoards[White][square] = bitboard
		bitboard = EmptyBitboard
		for _, step := range [2]Step{DownLeftStep, DownRightStep} {
			if square.tryStep(step) {
				bitboard |= 1 << square.Step(step)
			}
		}
		pawnAttackBoards[Black][square] = bitboard
	}
}

func fillPextTable(rays *[64]Bitboard, steps *[4]Step, masks *[64]Bitboard, offsets *[64]uint32, table []Bitboard) uint32 {
	var offset uint32 = 0
	var square Square
	for square = 0; square < 64; square++ {
		mask := rays[square] & (^(Rank0 | Rank7) | ranks[square.Rank()]) & (^(File0 | File7) | files[square.File()])
		masks[square] = mask
		offsets[square] = offset
		subsetCount := uint32(1) << BitCount(mask)
		subIter := NewSubsetIterator(mask)
		for i := uint32(0); i < subsetCount; i++ {
			subset := subIter.getSubset()
			table[offset+uint32(Pext(uint64(subset), uint64(mask)))] = findBlockedSlidingAttack(square, steps, subset)
			subIter.nextSubset()
		}
		offset += subsetCount
	}
	return offset
}

func FillSlidingAttacks(steps *[4]Step, resultBitboards *[64]Bitboard) {
	var square Square
	for _, step := range steps {
		for square = 0; square < 64; square++ {
			var stepSquare Square = square
			for stepSquare.tryStep(step) {
				stepSquare = stepSquare.Step(step)
				resultBitboards[square] |= 1 << stepSquare
			}
		}
	}
}

func findBlockedSlidingAttack(square Square, steps *[4]Step, occupied Bitboard) Bitboard {
	var result Bitboard = 0
	if (1<<square)&occupied != 0 {
		occupied = occupied ^ (1 << square)
	}
	for _, step := range steps {
		var stepSquare Square = square
		for stepSquare.tryStep(step) && ((1<<stepSquare)&occupied == 0) {
			stepSquare = stepSquare.Step(step)
			result |= 1 << stepSquare
		}
	}
	return result
}

func getRookAttacks(square Square, occupied Bitboard) Bitboard {
	return rookAttackTable[rookOffsets[square]+uint32(Pext(uint64(occupied), uint64(rookMasks[square])))]
}

func getBishopAttacks(square Square, occupied Bitboard) Bitboard {
	return bishopAttackTable[bishopOffsets[square]+uint32(Pext(uint64(occupied), uint64(bishopMasks[square])))]
}

func getQueenAttacks(square Square, occupied Bitboard) Bitboard {
	return getRookAttacks(square, occupied) | getBishopAttacks(square, occupied)
}
