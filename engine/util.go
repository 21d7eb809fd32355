package engine

import (
	"fmt"
	"time"

	"golang.org/x/exp/constraints"
)

func Min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

func Max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// mateOrCPScore renders a score the UCI way: "mate N" in full moves when the
// score encodes a forced mate, "cp N" otherwise.
func mateOrCPScore(score int32) string {
	if score > mateBound {
		pliesToMate := MateScore - score
		return fmt.Sprintf("mate %d", (pliesToMate+1)/2)
	}
	if score < -mateBound {
		pliesToMate := MateScore + score
		return fmt.Sprintf("mate %d", -(pliesToMate+1)/2)
	}
	return fmt.Sprintf("cp %d", score)
}

func nodesPerSecond(nodes uint64, elapsed time.Duration) uint64 {
	ns := elapsed.Nanoseconds()
	if ns <= 0 {
		return 0
	}
	return nodes * uint64(time.Second) / uint64(ns)
}
