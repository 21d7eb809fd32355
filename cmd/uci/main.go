package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/danefroelicher2/chess-engine-fresh/engine"
	"github.com/dylhunn/dragontoothmg"
)

const defaultDepth = 6

func main() {
	uciLoop()
}

func uciLoop() {
	scanner := bufio.NewScanner(os.Stdin)
	board := dragontoothmg.ParseFen(dragontoothmg.Startpos)
	eng := engine.NewEngine()

	for scanner.Scan() {
		tokens := strings.Fields(scanner.Text())
		if len(tokens) == 0 {
			continue
		}
		switch strings.ToLower(tokens[0]) {
		case "uci":
			fmt.Println("id name Fresh 1.0")
			fmt.Println("id author Dane Froelicher")
			fmt.Println("uciok")
		case "isready":
			fmt.Println("readyok")
		case "ucinewgame":
			board = dragontoothmg.ParseFen(dragontoothmg.Startpos)
			eng.ResetForNewGame()
		case "position":
			b, err := parsePosition(tokens[1:])
			if err != nil {
				fmt.Println("info string", err)
				continue
			}
			board = b
		case "go":
			depth := defaultDepth
			for i := 1; i < len(tokens)-1; i++ {
				if tokens[i] == "depth" {
					if d, err := strconv.Atoi(tokens[i+1]); err == nil && d > 0 {
						depth = d
					}
				}
			}
			best := eng.Search(&board, int8(engine.Min(depth, engine.MaxPly-1)))
			fmt.Printf("bestmove %s\n", best.String())
		case "eval":
			fmt.Printf("info string static eval %d\n", engine.Evaluate(&board))
		case "quit":
			return
		}
	}
}

// parsePosition handles "position startpos [moves ...]" and
// "position fen <fen> [moves ...]".
func parsePosition(tokens []string) (dragontoothmg.Board, error) {
	var board dragontoothmg.Board
	if len(tokens) == 0 {
		return board, fmt.Errorf("position: missing startpos or fen")
	}

	movesAt := -1
	for i, tok := range tokens {
		if tok == "moves" {
			movesAt = i
			break
		}
	}

	switch tokens[0] {
	case "startpos":
		board = dragontoothmg.ParseFen(dragontoothmg.Startpos)
	case "fen":
		end := len(tokens)
		if movesAt != -1 {
			end = movesAt
		}
		if end < 2 {
			return board, fmt.Errorf("position fen: missing fen fields")
		}
		board = dragontoothmg.ParseFen(strings.Join(tokens[1:end], " "))
	default:
		return board, fmt.Errorf("position: unknown subcommand %q", tokens[0])
	}

	if movesAt != -1 {
		for _, uci := range tokens[movesAt+1:] {
			move, ok := findLegalMove(&board, uci)
			if !ok {
				return board, fmt.Errorf("position: illegal move %q", uci)
			}
			board.Apply(move)
		}
	}
	return board, nil
}

func findLegalMove(b *dragontoothmg.Board, uci string) (dragontoothmg.Move, bool) {
	moves := b.GenerateLegalMoves()
	for i := range moves {
		if moves[i].String() == uci {
			return moves[i], true
		}
	}
	return 0, false
}
