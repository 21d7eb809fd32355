package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/danefroelicher2/chess-engine-fresh/engine"
	"github.com/dylhunn/dragontoothmg"
)

// A small mixed suite: openings, middlegames and endgames.
var benchFens = []string{
	dragontoothmg.Startpos,
	"r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 0 3",
	"r2q1rk1/ppp2ppp/2np1n2/2b1p1B1/2B1P1b1/2NP1N2/PPP2PPP/R2Q1RK1 w - - 0 8",
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	"4k3/8/8/8/8/8/4P3/4K3 w - - 0 1",
	"6k1/5ppp/8/8/8/8/8/R6K w - - 0 1",
}

func main() {
	depthFlag := flag.Int("depth", 7, "search depth in plies")
	workersFlag := flag.Int("workers", runtime.NumCPU(), "positions searched in parallel")
	fenFlag := flag.String("fen", "", "single FEN to search instead of the suite")
	flag.Parse()

	if *depthFlag <= 0 || *depthFlag >= engine.MaxPly {
		log.Fatalf("depth must be in [1, %d], got %d", engine.MaxPly-1, *depthFlag)
	}

	fens := benchFens
	if *fenFlag != "" {
		fens = []string{*fenFlag}
	}

	depth := int8(*depthFlag)
	var totalNodes atomic.Uint64

	start := time.Now()
	var g errgroup.Group
	g.SetLimit(engine.Max(*workersFlag, 1))
	for i, fen := range fens {
		i, fen := i, fen
		g.Go(func() error {
			// Every position gets its own engine so the searches share
			// nothing and can run concurrently.
			eng := engine.NewEngine()
			board := dragontoothmg.ParseFen(fen)

			posStart := time.Now()
			best := eng.Search(&board, depth)
			elapsed := time.Since(posStart)

			totalNodes.Add(eng.Nodes())
			fmt.Printf("position %d bestmove %s nodes %d time %dms\n",
				i+1, best.String(), eng.Nodes(), elapsed.Milliseconds())
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}

	elapsed := time.Since(start)
	nodes := totalNodes.Load()
	nps := uint64(0)
	if ns := elapsed.Nanoseconds(); ns > 0 {
		nps = nodes * uint64(time.Second) / uint64(ns)
	}
	fmt.Printf("total: %d positions depth %d nodes %d time %dms nps %d\n",
		len(fens), depth, nodes, elapsed.Milliseconds(), nps)
}
