package engine

import (
	"golang.org/x/exp/slices"

	"github.com/dylhunn/dragontoothmg"
)

// deltaMargin is the safety margin for delta pruning in quiescence.
const deltaMargin int32 = 200

// quiescence resolves capture sequences so the horizon never lands on a
// position mid-exchange. The static evaluation acts as a stand-pat bound,
// then captures are searched best victim first; losing captures and captures
// that cannot recover alpha are pruned once the search is out of check.
func (e *Engine) quiescence(b *dragontoothmg.Board, alpha, beta int32, ply int8) int32 {
	e.nodes++

	moves := b.GenerateLegalMoves()
	if len(moves) == 0 {
		if b.OurKingInCheck() {
			return -MateScore + int32(ply)
		}
		return DrawScore
	}

	standPat := staticEval(b)
	if ply >= MaxPly {
		return standPat
	}
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	inCheck := b.OurKingInCheck()

	scored := make([]scoredMove, 0, len(moves))
	for _, move := range moves {
		if !dragontoothmg.IsCapture(move, b) {
			continue
		}
		attacker, _ := pieceTypeAt(uint8(move.From()), occupiedSide(b))
		victim, ok := pieceTypeAt(uint8(move.To()), enemySide(b))
		if !ok {
			victim = dragontoothmg.Pawn // en passant
		}
		score := mvvLva[attacker][victim]

		see := seeCapture(b, move)
		if see < 0 {
			if ply > 2 && !inCheck {
				continue
			}
			score += see
		}

		// Delta pruning: skip captures that cannot lift the stand-pat
		// score back to alpha even with the margin.
		if !inCheck {
			gain := pieceValue[victim]
			if promo := move.Promote(); promo != dragontoothmg.Nothing {
				gain += pieceValue[promo] - pieceValue[dragontoothmg.Pawn]
			}
			if standPat+gain+deltaMargin <= alpha {
				continue
			}
		}

		scored = append(scored, scoredMove{move: move, score: score})
	}
	slices.SortFunc(scored, func(a, b scoredMove) int {
		return int(b.score) - int(a.score)
	})

	for _, sm := range scored {
		unapply := b.Apply(sm.move)
		score := -e.quiescence(b, -beta, -alpha, ply+1)
		unapply()

		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}
	return alpha
}
