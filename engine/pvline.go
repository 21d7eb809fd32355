package engine

import (
	"strings"

	"github.com/dylhunn/dragontoothmg"
)

// PVLine holds the principal variation from some node down to the deepest
// still-forced line. Each recursion level owns one buffer; a parent rebuilds
// its line by prepending the new best move to the child's line.
type PVLine struct {
	Moves []dragontoothmg.Move
}

func (pv *PVLine) Clear() {
	pv.Moves = pv.Moves[:0]
}

// Update replaces the line with move followed by the child's line.
func (pv *PVLine) Update(move dragontoothmg.Move, child PVLine) {
	pv.Moves = pv.Moves[:0]
	pv.Moves = append(pv.Moves, move)
	pv.Moves = append(pv.Moves, child.Moves...)
}

func (pv PVLine) Clone() PVLine {
	cloned := PVLine{Moves: make([]dragontoothmg.Move, len(pv.Moves))}
	copy(cloned.Moves, pv.Moves)
	return cloned
}

// BestMove returns the first move of the line, or the null move if empty.
func (pv PVLine) BestMove() dragontoothmg.Move {
	if len(pv.Moves) == 0 {
		var nilMove dragontoothmg.Move
		return nilMove
	}
	return pv.Moves[0]
}

func (pv PVLine) String() string {
	var sb strings.Builder
	for i := range pv.Moves {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(pv.Moves[i].String())
	}
	return sb.String()
}
