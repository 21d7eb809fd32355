package engine

import (
	"math/bits"

	"github.com/dylhunn/dragontoothmg"
)

// seeCapture statically evaluates the full exchange sequence a capture opens
// on its destination square. Non-captures score 0. The simulation is
// value-only: attackers are consumed from a local occupancy mask and sliders
// recompute their reach over it, so the real board is never touched.
func seeCapture(b *dragontoothmg.Board, move dragontoothmg.Move) int32 {
	if !dragontoothmg.IsCapture(move, b) {
		return 0
	}

	from := uint8(move.From())
	to := uint8(move.To())

	var own, opp *dragontoothmg.Bitboards
	if b.Wtomove {
		own, opp = &b.White, &b.Black
	} else {
		own, opp = &b.Black, &b.White
	}

	attacker, _ := pieceTypeAt(from, own)
	victim, occupied := pieceTypeAt(to, opp)
	if !occupied {
		// En passant: the captured pawn is not on the destination square.
		victim = dragontoothmg.Pawn
	}

	// The first capture is forced; the recursion values the opponent's best
	// continuation with the mover's piece now standing on the target.
	occ := (b.White.All | b.Black.All) &^ (uint64(1) << uint(from))
	return pieceValue[victim] - seeExchange(b, to, occ, !b.Wtomove, pieceValue[attacker])
}

// seeExchange returns the value the side to move can extract from continuing
// the capture sequence on the target square, never less than standing pat.
func seeExchange(b *dragontoothmg.Board, target uint8, occ uint64, whiteToCapture bool, captureValue int32) int32 {
	attackerSq, attackerType, ok := leastValuableAttacker(b, target, occ, whiteToCapture)
	if !ok {
		return 0
	}

	occ &^= uint64(1) << uint(attackerSq)
	score := captureValue - seeExchange(b, target, occ, !whiteToCapture, pieceValue[attackerType])
	if score < 0 {
		// Capturing at a loss is never forced.
		return 0
	}
	return score
}

// leastValuableAttacker finds the cheapest piece of the given side that
// attacks the target square under the reduced occupancy. Removed attackers
// are absent from occ, so sliders x-ray through squares vacated earlier in
// the sequence.
func leastValuableAttacker(b *dragontoothmg.Board, target uint8, occ uint64, white bool) (uint8, dragontoothmg.Piece, bool) {
	var bbs *dragontoothmg.Bitboards
	side := 1
	if white {
		bbs = &b.White
		side = 0
	} else {
		bbs = &b.Black
	}

	if hits := pawnAttackersMask[side][target] & bbs.Pawns & occ; hits != 0 {
		return uint8(bits.TrailingZeros64(hits)), dragontoothmg.Pawn, true
	}
	if hits := knightMasks[target] & bbs.Knights & occ; hits != 0 {
		return uint8(bits.TrailingZeros64(hits)), dragontoothmg.Knight, true
	}

	diagonal := dragontoothmg.CalculateBishopMoveBitboard(target, occ)
	if hits := diagonal & bbs.Bishops & occ; hits != 0 {
		return uint8(bits.TrailingZeros64(hits)), dragontoothmg.Bishop, true
	}

	orthogonal := dragontoothmg.CalculateRookMoveBitboard(target, occ)
	if hits := orthogonal & bbs.Rooks & occ; hits != 0 {
		return uint8(bits.TrailingZeros64(hits)), dragontoothmg.Rook, true
	}
	if hits := (diagonal | orthogonal) & bbs.Queens & occ; hits != 0 {
		return uint8(bits.TrailingZeros64(hits)), dragontoothmg.Queen, true
	}
	if hits := kingMasks[target] & bbs.Kings & occ; hits != 0 {
		return uint8(bits.TrailingZeros64(hits)), dragontoothmg.King, true
	}

	return 0, dragontoothmg.Nothing, false
}
