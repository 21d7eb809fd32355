package engine

import (
	"github.com/dylhunn/dragontoothmg"
)

// =============================================================================
// SCORE CONSTANTS
// =============================================================================
const (
	// Infinity bounds the search window; no real score ever reaches it.
	Infinity int32 = 1000000

	// MateScore is the base checkmate score. A mate found at ply p scores
	// MateScore - p, so shorter mates sort as more extreme.
	MateScore int32 = 100000

	DrawScore int32 = 0

	// MaxPly is the hard ceiling on search depth, extensions included.
	MaxPly = 64
)

// mateBound separates mate scores from ordinary centipawn scores.
const mateBound = MateScore - int32(MaxPly)

// historyCeiling triggers a global halving of the history table.
const historyCeiling = 10000

// Engine owns all search state with engine-lifetime scope: the transposition
// table, the killer/counter/history heuristic tables and the principal
// variation snapshots from previous iterative-deepening iterations. Multiple
// Engine instances are fully independent.
type Engine struct {
	tt TransTable

	killers  KillerTable
	counters [2][64][64]dragontoothmg.Move
	history  [2][64][64]int

	// pv is the best line from the last completed iteration; pvTable keeps
	// one snapshot per completed depth so move ordering can raise PV moves
	// from multiple historical depths.
	pv      PVLine
	pvTable [MaxPly + 1]PVLine
	pvDepth int8

	nodes uint64
}

// NewEngine returns an engine with an initialized transposition table and
// empty heuristic tables.
func NewEngine() *Engine {
	e := &Engine{}
	e.tt.init()
	return e
}

// Nodes reports the node count of the last Search call.
func (e *Engine) Nodes() uint64 { return e.nodes }

// ResetForNewGame clears every table that carries state between searches.
// The heuristic tables are never cleared mid-game, only here.
func (e *Engine) ResetForNewGame() {
	e.tt.clear()
	e.tt.init()
	e.killers.Clear()
	var nilMove dragontoothmg.Move
	for from := 0; from < 64; from++ {
		for to := 0; to < 64; to++ {
			e.counters[0][from][to] = nilMove
			e.counters[1][from][to] = nilMove
			e.history[0][from][to] = 0
			e.history[1][from][to] = 0
		}
	}
	e.pv.Clear()
	for d := range e.pvTable {
		e.pvTable[d].Clear()
	}
	e.pvDepth = 0
}

func sideIndex(wtomove bool) int {
	if wtomove {
		return 0
	}
	return 1
}
