package engine

import (
	"github.com/dylhunn/dragontoothmg"
)

// KillerTable keeps, per ply, the two most recent quiet moves that caused a
// beta cutoff there. Slot 0 is the most recent.
type KillerTable struct {
	moves [MaxPly][2]dragontoothmg.Move
}

func (k *KillerTable) Insert(move dragontoothmg.Move, ply int8) {
	if ply < 0 || int(ply) >= MaxPly {
		return
	}
	// A move already in slot 0 is not re-inserted.
	if k.moves[ply][0] == move {
		return
	}
	k.moves[ply][1] = k.moves[ply][0]
	k.moves[ply][0] = move
}

func (k *KillerTable) First(ply int8) dragontoothmg.Move  { return k.moves[ply][0] }
func (k *KillerTable) Second(ply int8) dragontoothmg.Move { return k.moves[ply][1] }

func (k *KillerTable) Clear() {
	var nilMove dragontoothmg.Move
	for ply := 0; ply < MaxPly; ply++ {
		k.moves[ply][0] = nilMove
		k.moves[ply][1] = nilMove
	}
}

/*
HISTORY/COUNTER MOVES
When a quiet move causes a beta cutoff we remember two things: the move as a
response to the opponent's previous move (counter move) and an accumulating
per-(side, from, to) score used to order quiet moves that have no other
ranking (history heuristic).
*/

func (e *Engine) storeCounter(wtomove bool, prevMove, move dragontoothmg.Move) {
	if prevMove == 0 {
		return
	}
	e.counters[sideIndex(wtomove)][prevMove.From()][prevMove.To()] = move
}

func (e *Engine) counterTo(wtomove bool, prevMove dragontoothmg.Move) dragontoothmg.Move {
	if prevMove == 0 {
		var nilMove dragontoothmg.Move
		return nilMove
	}
	return e.counters[sideIndex(wtomove)][prevMove.From()][prevMove.To()]
}

// incrementHistory bumps a cutoff-causing quiet move by depth*depth. Whenever any
// entry crosses the ceiling the whole table is halved, which bounds the
// magnitudes while preserving relative order.
func (e *Engine) incrementHistory(wtomove bool, move dragontoothmg.Move, depth int8) {
	side := sideIndex(wtomove)
	e.history[side][move.From()][move.To()] += int(depth) * int(depth)
	if e.history[side][move.From()][move.To()] > historyCeiling {
		e.ageHistory()
	}
}

func (e *Engine) historyScore(wtomove bool, move dragontoothmg.Move) int32 {
	return int32(e.history[sideIndex(wtomove)][move.From()][move.To()])
}

func (e *Engine) ageHistory() {
	for side := 0; side < 2; side++ {
		for from := 0; from < 64; from++ {
			for to := 0; to < 64; to++ {
				e.history[side][from][to] /= 2
			}
		}
	}
}
