package engine

// Precomputed attack masks used by the exchange evaluator. Slider attacks are
// computed on the fly from the current occupancy via dragontoothmg's magic
// bitboard helpers; only the fixed-pattern pieces need tables.

var knightMasks [64]uint64
var kingMasks [64]uint64

// pawnAttackersMask[side][sq] holds the squares from which a pawn of that
// side (0 = white, 1 = black) attacks sq.
var pawnAttackersMask [2][64]uint64

const (
	fileABB uint64 = 0x0101010101010101
	fileHBB uint64 = 0x8080808080808080
)

func init() {
	initAttackMasks()
}

func initAttackMasks() {
	for sq := 0; sq < 64; sq++ {
		bb := uint64(1) << uint(sq)

		north := bb << 8
		south := bb >> 8
		east := (bb << 1) &^ fileABB
		west := (bb >> 1) &^ fileHBB
		northEast := (bb << 9) &^ fileABB
		northWest := (bb << 7) &^ fileHBB
		southEast := (bb >> 7) &^ fileABB
		southWest := (bb >> 9) &^ fileHBB
		kingMasks[sq] = north | south | east | west | northEast | northWest | southEast | southWest

		var knight uint64
		knight |= (bb << 17) &^ fileABB
		knight |= (bb << 15) &^ fileHBB
		knight |= (bb << 10) &^ (fileABB | fileABB<<1)
		knight |= (bb << 6) &^ (fileHBB | fileHBB>>1)
		knight |= (bb >> 17) &^ fileHBB
		knight |= (bb >> 15) &^ fileABB
		knight |= (bb >> 10) &^ (fileHBB | fileHBB>>1)
		knight |= (bb >> 6) &^ (fileABB | fileABB<<1)
		knightMasks[sq] = knight

		file := sq % 8
		// A white pawn attacking sq sits one rank below it, a black pawn
		// one rank above.
		if sq >= 8 {
			if file > 0 {
				pawnAttackersMask[0][sq] |= uint64(1) << uint(sq-9)
			}
			if file < 7 {
				pawnAttackersMask[0][sq] |= uint64(1) << uint(sq-7)
			}
		}
		if sq < 56 {
			if file > 0 {
				pawnAttackersMask[1][sq] |= uint64(1) << uint(sq+7)
			}
			if file < 7 {
				pawnAttackersMask[1][sq] |= uint64(1) << uint(sq+9)
			}
		}
	}
}
