package engine

import (
	"fmt"
	"time"

	"github.com/dylhunn/dragontoothmg"
)

// Search runs iterative deepening to maxDepth plies and returns the best
// move found. After each completed depth it emits a UCI info line and
// snapshots the principal variation for move ordering at the next depth.
func (e *Engine) Search(b *dragontoothmg.Board, maxDepth int8) dragontoothmg.Move {
	maxDepth = Clamp(maxDepth, 1, MaxPly-1)

	e.nodes = 0
	e.tt.incrementAge()
	e.pv.Clear()
	for d := range e.pvTable {
		e.pvTable[d].Clear()
	}
	e.pvDepth = 0

	start := time.Now()
	var line PVLine
	for depth := int8(1); depth <= maxDepth; depth++ {
		score := e.pvSearch(b, depth, 0, -Infinity, Infinity, &line, 0)

		e.pv = line.Clone()
		e.pvTable[depth] = line.Clone()
		e.pvDepth = depth

		elapsed := time.Since(start)
		fmt.Printf("info depth %d score %s nodes %d time %d nps %d pv %s\n",
			depth, mateOrCPScore(score), e.nodes, elapsed.Milliseconds(),
			nodesPerSecond(e.nodes, elapsed), e.pv.String())
	}
	return e.pv.BestMove()
}

// pvSearch is a fail-soft principal variation search. The first move of
// every node is searched with the full window; later moves get a null-window
// probe at a possibly reduced depth and are re-searched only when they beat
// alpha.
func (e *Engine) pvSearch(b *dragontoothmg.Board, depth int8, ply int8, alpha, beta int32, pvl *PVLine, lastMove dragontoothmg.Move) int32 {
	e.nodes++
	pvl.Clear()

	hash := b.Hash()
	var ttMove dragontoothmg.Move
	if ply > 0 {
		score, move, usable := e.tt.probe(hash, depth, alpha, beta, ply)
		if usable {
			return score
		}
		ttMove = move
	}

	if ply >= MaxPly-1 {
		return Evaluate(b)
	}

	moves := b.GenerateLegalMoves()
	if len(moves) == 0 {
		if b.OurKingInCheck() {
			return -MateScore + int32(ply)
		}
		return DrawScore
	}

	if depth <= 0 {
		e.nodes-- // the quiescence node counts itself
		return e.quiescence(b, alpha, beta, ply)
	}

	inCheck := b.OurKingInCheck()

	// Node-level extensions: evading check, and forced replies.
	nodeExt := int8(0)
	if inCheck {
		nodeExt = 1
	} else if len(moves) == 1 && depth >= 2 {
		nodeExt = 1
	}

	scored := e.orderedMoves(b, moves, ttMove, lastMove, ply, depth)

	origAlpha := alpha
	bestScore := -Infinity
	var bestMove dragontoothmg.Move
	var childLine PVLine

	for i := range scored {
		move := scored[i].move
		isCapture := dragontoothmg.IsCapture(move, b)

		moveExt := nodeExt
		if moveExt == 0 && isCapture && lastMove != 0 && move.To() == lastMove.To() {
			moveExt = 1 // recapture
		}
		if moveExt == 0 && pushesToSeventh(b, move) {
			moveExt = 1
		}

		// Late move reductions, decided before the move is applied. PV
		// moves, checks and extended moves are never reduced; losing
		// captures get a flat one-ply reduction at any index.
		adj := int8(0)
		if moveExt == 0 && !inCheck && !e.isPVMove(move, ply) {
			losing := isCapture && seeCapture(b, move) < 0
			adj = lateMoveReduction(i, isCapture, losing)
		}

		childDepth := depth - 1 + moveExt

		unapply := b.Apply(move)
		var score int32
		if i == 0 {
			score = -e.pvSearch(b, childDepth, ply+1, -beta, -alpha, &childLine, move)
		} else {
			reduced := childDepth + adj
			if reduced < 0 {
				reduced = 0
			}
			score = -e.pvSearch(b, reduced, ply+1, -(alpha + 1), -alpha, &childLine, move)
			if score > alpha && adj < 0 {
				score = -e.pvSearch(b, childDepth, ply+1, -(alpha + 1), -alpha, &childLine, move)
			}
			if score > alpha && score < beta {
				score = -e.pvSearch(b, childDepth, ply+1, -beta, -alpha, &childLine, move)
			}
		}
		unapply()

		if score > bestScore {
			bestScore = score
			bestMove = move
		}
		if score > alpha {
			alpha = score
			pvl.Update(move, childLine)
		}
		if alpha >= beta {
			if !isCapture {
				e.killers.Insert(move, ply)
				e.storeCounter(b.Wtomove, lastMove, move)
				e.incrementHistory(b.Wtomove, move, depth)
			}
			e.tt.store(hash, depth, ply, move, bestScore, BetaFlag)
			return bestScore
		}
	}

	flag := AlphaFlag
	if alpha > origAlpha {
		flag = ExactFlag
	}
	e.tt.store(hash, depth, ply, bestMove, bestScore, flag)
	return bestScore
}

// lateMoveReduction returns the depth adjustment for a non-PV, non-extended
// move: captures that lose material are reduced one ply regardless of index,
// winning captures are never reduced, and quiet moves reduce by the ordering
// index bands, capped at two plies.
func lateMoveReduction(idx int, isCapture bool, losingCapture bool) int8 {
	if isCapture {
		if losingCapture {
			return -1
		}
		return 0
	}
	if idx < 3 {
		return 0
	}
	reduction := int8(1)
	switch {
	case idx >= 12:
		reduction = 3
	case idx >= 6:
		reduction = 2
	}
	if reduction > 2 {
		reduction = 2
	}
	return -reduction
}

// isPVMove reports whether move sits at this ply of the best line from the
// last completed iteration.
func (e *Engine) isPVMove(move dragontoothmg.Move, ply int8) bool {
	return int(ply) < len(e.pv.Moves) && e.pv.Moves[ply] == move
}

// pushesToSeventh reports whether move advances a pawn to its seventh rank,
// one square from promotion.
func pushesToSeventh(b *dragontoothmg.Board, move dragontoothmg.Move) bool {
	piece, ok := pieceTypeAt(uint8(move.From()), occupiedSide(b))
	if !ok || piece != dragontoothmg.Pawn {
		return false
	}
	to := uint8(move.To())
	if b.Wtomove {
		return to >= 48 && to < 56
	}
	return to >= 8 && to < 16
}
