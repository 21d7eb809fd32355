package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"golang.org/x/exp/slices"

	"github.com/dylhunn/dragontoothmg"
)

func main() {
	fen := flag.String("fen", dragontoothmg.Startpos, "FEN string (defaults to initial position)")
	depth := flag.Int("depth", 0, "perft depth (required)")
	divide := flag.Bool("divide", false, "print per-move node counts at root")
	flag.Parse()

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}

	board := dragontoothmg.ParseFen(*fen)

	if *divide {
		type rootCount struct {
			move  string
			nodes uint64
		}
		moves := board.GenerateLegalMoves()
		counts := make([]rootCount, 0, len(moves))
		var total uint64
		for i := range moves {
			unapply := board.Apply(moves[i])
			n := perft(&board, *depth-1)
			unapply()
			counts = append(counts, rootCount{move: moves[i].String(), nodes: n})
			total += n
		}
		slices.SortFunc(counts, func(a, b rootCount) int {
			if a.move < b.move {
				return -1
			}
			if a.move > b.move {
				return 1
			}
			return 0
		})
		for _, c := range counts {
			fmt.Printf("%s: %d\n", c.move, c.nodes)
		}
		fmt.Printf("Total: %d\n", total)
		return
	}

	start := time.Now()
	total := perft(&board, *depth)
	elapsed := time.Since(start)
	fmt.Printf("perft(%d) = %d in %v\n", *depth, total, elapsed)
}

func perft(b *dragontoothmg.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := b.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for i := range moves {
		unapply := b.Apply(moves[i])
		nodes += perft(b, depth-1)
		unapply()
	}
	return nodes
}
