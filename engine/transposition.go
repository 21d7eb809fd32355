package engine

import (
	"unsafe"

	"github.com/dylhunn/dragontoothmg"
)

const (
	// Node classification flags
	AlphaFlag uint8 = iota
	BetaFlag
	ExactFlag

	// In MB
	ttSizeMB    = 64
	clusterSize = 4
)

type TTEntry struct {
	Hash  uint64
	Score int32
	Move  dragontoothmg.Move
	Depth int8
	Flag  uint8
	Age   uint8
}

// TransTable is a fixed-size clustered transposition table with generational
// replacement: probing prefers exact key matches, storing prefers the same
// key, then an empty slot, then a stale generation, then the shallowest entry.
type TransTable struct {
	entries      []TTEntry
	clusterCount uint64
	age          uint8
}

func (tt *TransTable) init() {
	entrySize := uint64(unsafe.Sizeof(TTEntry{}))
	clusterCount := uint64(ttSizeMB) * 1024 * 1024 / (entrySize * clusterSize)
	if clusterCount == 0 {
		clusterCount = 1
	}
	tt.clusterCount = clusterCount
	tt.entries = make([]TTEntry, clusterCount*clusterSize)
}

func (tt *TransTable) clear() {
	tt.entries = nil
	tt.clusterCount = 0
	tt.age = 0
}

// incrementAge starts a new search generation; entries from older
// generations become preferred replacement victims.
func (tt *TransTable) incrementAge() {
	tt.age++
}

// probe returns a usable cached score for this position, honoring the node
// classification: an EXACT entry of sufficient depth is always usable, an
// ALPHA entry only when it proves a fail-low against the requested alpha,
// a BETA entry only when it proves a fail-high against the requested beta.
// The stored best move is returned whenever the key matches, usable or not.
func (tt *TransTable) probe(hash uint64, depth int8, alpha, beta int32, ply int8) (score int32, move dragontoothmg.Move, usable bool) {
	entry := tt.find(hash)
	if entry == nil {
		return 0, 0, false
	}
	move = entry.Move

	if entry.Depth < depth {
		return 0, move, false
	}

	// Mate scores are stored relative to the storing node; shift them back
	// to be relative to the root through this ply.
	stored := entry.Score
	if stored > mateBound {
		stored -= int32(ply)
	} else if stored < -mateBound {
		stored += int32(ply)
	}

	switch entry.Flag {
	case ExactFlag:
		return stored, move, true
	case AlphaFlag:
		if stored <= alpha {
			return alpha, move, true
		}
	case BetaFlag:
		if stored >= beta {
			return beta, move, true
		}
	}
	return 0, move, false
}

func (tt *TransTable) find(hash uint64) *TTEntry {
	if tt.clusterCount == 0 {
		return nil
	}
	base := int(hash % tt.clusterCount * clusterSize)
	for i := 0; i < clusterSize; i++ {
		entry := &tt.entries[base+i]
		if entry.Hash == hash {
			return entry
		}
	}
	return nil
}

func (tt *TransTable) store(hash uint64, depth int8, ply int8, move dragontoothmg.Move, score int32, flag uint8) {
	if tt.clusterCount == 0 {
		return
	}
	base := int(hash % tt.clusterCount * clusterSize)

	if score > mateBound {
		score += int32(ply)
	} else if score < -mateBound {
		score -= int32(ply)
	}

	target := -1
	for i := 0; i < clusterSize; i++ {
		if tt.entries[base+i].Hash == hash {
			target = base + i
			break
		}
	}
	if target == -1 {
		for i := 0; i < clusterSize; i++ {
			if tt.entries[base+i].Hash == 0 {
				target = base + i
				break
			}
		}
	}
	if target == -1 {
		for i := 0; i < clusterSize; i++ {
			if tt.entries[base+i].Age != tt.age {
				target = base + i
				break
			}
		}
	}
	if target == -1 {
		target = base
		minDepth := tt.entries[base].Depth
		for i := 1; i < clusterSize; i++ {
			if tt.entries[base+i].Depth < minDepth {
				minDepth = tt.entries[base+i].Depth
				target = base + i
			}
		}
	}

	entry := &tt.entries[target]
	entry.Hash = hash
	entry.Score = score
	entry.Move = move
	entry.Depth = depth
	entry.Flag = flag
	entry.Age = tt.age
}
