package engine

import (
	"math/bits"

	"github.com/dylhunn/dragontoothmg"
)

// pieceValue is indexed by dragontoothmg.Piece (Nothing..King), in centipawns.
var pieceValue = [7]int32{0, 100, 320, 330, 500, 900, 20000}

// Piece-square tables, written rank 8 first so the visual layout matches the
// board from White's side. White pieces index with sq^56, black with sq.
var pawnTable = [64]int32{
	0, 0, 0, 0, 0, 0, 0, 0,
	50, 50, 50, 50, 50, 50, 50, 50,
	10, 10, 20, 30, 30, 20, 10, 10,
	5, 5, 10, 25, 25, 10, 5, 5,
	0, 0, 0, 20, 20, 0, 0, 0,
	5, -5, -10, 0, 0, -10, -5, 5,
	5, 10, 10, -20, -20, 10, 10, 5,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var knightTable = [64]int32{
	-50, -40, -30, -30, -30, -30, -40, -50,
	-40, -20, 0, 0, 0, 0, -20, -40,
	-30, 0, 10, 15, 15, 10, 0, -30,
	-30, 5, 15, 20, 20, 15, 5, -30,
	-30, 0, 15, 20, 20, 15, 0, -30,
	-30, 5, 10, 15, 15, 10, 5, -30,
	-40, -20, 0, 5, 5, 0, -20, -40,
	-50, -40, -30, -30, -30, -30, -40, -50,
}

var bishopTable = [64]int32{
	-20, -10, -10, -10, -10, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 10, 10, 10, 10, 0, -10,
	-10, 5, 5, 10, 10, 5, 5, -10,
	-10, 0, 5, 10, 10, 5, 0, -10,
	-10, 5, 5, 5, 5, 5, 5, -10,
	-10, 0, 5, 0, 0, 5, 0, -10,
	-20, -10, -10, -10, -10, -10, -10, -20,
}

var rookTable = [64]int32{
	0, 0, 0, 0, 0, 0, 0, 0,
	5, 10, 10, 10, 10, 10, 10, 5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	0, 0, 0, 5, 5, 0, 0, 0,
}

var queenTable = [64]int32{
	-20, -10, -10, -5, -5, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 5, 5, 5, 0, -10,
	-5, 0, 5, 5, 5, 5, 0, -5,
	0, 0, 5, 5, 5, 5, 0, -5,
	-10, 5, 5, 5, 5, 5, 0, -10,
	-10, 0, 5, 0, 0, 0, 0, -10,
	-20, -10, -10, -5, -5, -10, -10, -20,
}

var kingMiddleGameTable = [64]int32{
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-20, -30, -30, -40, -40, -30, -30, -20,
	-10, -20, -20, -20, -20, -20, -20, -10,
	20, 20, 0, 0, 0, 0, 20, 20,
	20, 30, 10, 0, 0, 10, 30, 20,
}

var kingEndGameTable = [64]int32{
	-50, -40, -30, -20, -20, -30, -40, -50,
	-30, -20, -10, 0, 0, -10, -20, -30,
	-30, -10, 20, 30, 30, 20, -10, -30,
	-30, -10, 30, 40, 40, 30, -10, -30,
	-30, -10, 30, 40, 40, 30, -10, -30,
	-30, -10, 20, 30, 30, 20, -10, -30,
	-30, -30, 0, 0, 0, 0, -30, -30,
	-50, -30, -30, -30, -30, -30, -30, -50,
}

// pieceTypeAt returns the piece type occupying a square of one side's
// bitboards, if any.
func pieceTypeAt(sq uint8, bbs *dragontoothmg.Bitboards) (dragontoothmg.Piece, bool) {
	bit := uint64(1) << uint(sq)
	switch {
	case bbs.Pawns&bit != 0:
		return dragontoothmg.Pawn, true
	case bbs.Knights&bit != 0:
		return dragontoothmg.Knight, true
	case bbs.Bishops&bit != 0:
		return dragontoothmg.Bishop, true
	case bbs.Rooks&bit != 0:
		return dragontoothmg.Rook, true
	case bbs.Queens&bit != 0:
		return dragontoothmg.Queen, true
	case bbs.Kings&bit != 0:
		return dragontoothmg.King, true
	}
	return dragontoothmg.Nothing, false
}

// isEndgame reports whether the position should use the endgame king table:
// both queens absent, or at most six non-king, non-pawn pieces remaining.
func isEndgame(b *dragontoothmg.Board) bool {
	if b.White.Queens == 0 && b.Black.Queens == 0 {
		return true
	}
	minorMajor := b.White.Knights | b.White.Bishops | b.White.Rooks | b.White.Queens |
		b.Black.Knights | b.Black.Bishops | b.Black.Rooks | b.Black.Queens
	return bits.OnesCount64(minorMajor) <= 6
}

// Evaluate scores the position from the perspective of the side to move:
// material plus piece-square bonuses, with the king table switching between
// middlegame and endgame placement. Terminal positions short-circuit to the
// mate/stalemate scores so that the evaluator and the search agree on them.
func Evaluate(b *dragontoothmg.Board) int32 {
	if !hasLegalMoves(b) {
		if b.OurKingInCheck() {
			return -MateScore
		}
		return DrawScore
	}
	return staticEval(b)
}

// staticEval is Evaluate without the terminal check, for callers that have
// already generated the move list and know the position is not terminal.
func staticEval(b *dragontoothmg.Board) int32 {
	endgame := isEndgame(b)

	white := sideScore(&b.White, true, endgame)
	black := sideScore(&b.Black, false, endgame)

	score := white - black
	if !b.Wtomove {
		return -score
	}
	return score
}

func sideScore(bbs *dragontoothmg.Bitboards, white bool, endgame bool) int32 {
	var score int32

	score += pstSum(bbs.Pawns, white, pieceValue[dragontoothmg.Pawn], &pawnTable)
	score += pstSum(bbs.Knights, white, pieceValue[dragontoothmg.Knight], &knightTable)
	score += pstSum(bbs.Bishops, white, pieceValue[dragontoothmg.Bishop], &bishopTable)
	score += pstSum(bbs.Rooks, white, pieceValue[dragontoothmg.Rook], &rookTable)
	score += pstSum(bbs.Queens, white, pieceValue[dragontoothmg.Queen], &queenTable)
	if endgame {
		score += pstSum(bbs.Kings, white, pieceValue[dragontoothmg.King], &kingEndGameTable)
	} else {
		score += pstSum(bbs.Kings, white, pieceValue[dragontoothmg.King], &kingMiddleGameTable)
	}

	return score
}

func pstSum(pieces uint64, white bool, value int32, table *[64]int32) int32 {
	var score int32
	for x := pieces; x != 0; x &= x - 1 {
		sq := bits.TrailingZeros64(x)
		if white {
			sq ^= 56
		}
		score += value + table[sq]
	}
	return score
}

func hasLegalMoves(b *dragontoothmg.Board) bool {
	return len(b.GenerateLegalMoves()) > 0
}
