package engine

import (
	"golang.org/x/exp/slices"

	"github.com/dylhunn/dragontoothmg"
)

// mvvLva[attacker][victim] ranks captures by most-valuable-victim, then
// least-valuable-attacker. Index 0 is unused (Nothing).
var mvvLva = [7][7]int32{
	{},
	{0, 105, 205, 305, 405, 505, 605}, // pawn takes p n b r q k
	{0, 104, 204, 304, 404, 504, 604}, // knight
	{0, 103, 203, 303, 403, 503, 603}, // bishop
	{0, 102, 202, 302, 402, 502, 602}, // rook
	{0, 101, 201, 301, 401, 501, 601}, // queen
	{0, 100, 200, 300, 400, 500, 600}, // king
}

// Move ordering score bands, highest tried first.
const (
	ttMoveScore       int32 = 10000000
	pvMoveScore       int32 = 9000000
	winningCapture    int32 = 4000000
	losingCapture     int32 = 3000000
	counterMoveScore  int32 = 2500000
	firstKillerScore  int32 = 2000100
	secondKillerScore int32 = 2000000
)

type scoredMove struct {
	move  dragontoothmg.Move
	score int32
}

// orderedMoves scores and sorts the move list for one node, best first.
// At depth >= 3, captures the exchange evaluator scores worse than losing
// two pawns are dropped entirely rather than scored.
func (e *Engine) orderedMoves(b *dragontoothmg.Board, moves []dragontoothmg.Move, ttMove dragontoothmg.Move, lastMove dragontoothmg.Move, ply int8, depth int8) []scoredMove {
	scored := make([]scoredMove, 0, len(moves))
	for _, move := range moves {
		if depth >= 3 && move != ttMove && dragontoothmg.IsCapture(move, b) {
			if seeCapture(b, move) < -2*pieceValue[dragontoothmg.Pawn] {
				continue
			}
		}
		scored = append(scored, scoredMove{move: move, score: e.scoreMove(b, move, ttMove, lastMove, ply)})
	}
	if len(scored) == 0 {
		// Every legal move was a pruned capture; keep them all rather than
		// search an empty node.
		for _, move := range moves {
			scored = append(scored, scoredMove{move: move, score: e.scoreMove(b, move, ttMove, lastMove, ply)})
		}
	}
	slices.SortFunc(scored, func(a, b scoredMove) int {
		return int(b.score) - int(a.score)
	})
	return scored
}

func (e *Engine) scoreMove(b *dragontoothmg.Board, move dragontoothmg.Move, ttMove dragontoothmg.Move, lastMove dragontoothmg.Move, ply int8) int32 {
	if move == ttMove {
		return ttMoveScore
	}

	// Principal variation moves from earlier iterations, deepest line first.
	for d := e.pvDepth; d >= 1; d-- {
		line := &e.pvTable[d]
		if int(ply) < len(line.Moves) && line.Moves[ply] == move {
			return pvMoveScore + 1000*int32(d)
		}
	}

	if dragontoothmg.IsCapture(move, b) {
		see := seeCapture(b, move)
		if see >= 0 {
			return winningCapture + see
		}
		attacker, _ := pieceTypeAt(uint8(move.From()), occupiedSide(b))
		victim, ok := pieceTypeAt(uint8(move.To()), enemySide(b))
		if !ok {
			victim = dragontoothmg.Pawn // en passant
		}
		return losingCapture + mvvLva[attacker][victim]
	}

	if lastMove != 0 && e.counterTo(b.Wtomove, lastMove) == move {
		return counterMoveScore
	}
	if e.killers.First(ply) == move {
		return firstKillerScore
	}
	if e.killers.Second(ply) == move {
		return secondKillerScore
	}
	return e.historyScore(b.Wtomove, move)
}

func occupiedSide(b *dragontoothmg.Board) *dragontoothmg.Bitboards {
	if b.Wtomove {
		return &b.White
	}
	return &b.Black
}

func enemySide(b *dragontoothmg.Board) *dragontoothmg.Bitboards {
	if b.Wtomove {
		return &b.Black
	}
	return &b.White
}
