package engine

import (
	"testing"

	"github.com/dylhunn/dragontoothmg"
)

func TestOrderingWinningCaptureFirst(t *testing.T) {
	e := NewEngine()
	b := dragontoothmg.ParseFen("7k/8/8/3q4/4P3/8/8/7K w - - 0 1")
	moves := b.GenerateLegalMoves()
	scored := e.orderedMoves(&b, moves, 0, 0, 0, 1)
	if len(scored) == 0 {
		t.Fatal("no moves scored")
	}
	if got := scored[0].move.String(); got != "e4d5" {
		t.Errorf("queen capture should be tried first, got %s", got)
	}
	if scored[0].score < winningCapture {
		t.Errorf("winning capture scored %d, want >= %d", scored[0].score, winningCapture)
	}
}

func TestOrderingTTMoveFirst(t *testing.T) {
	e := NewEngine()
	b := dragontoothmg.ParseFen(dragontoothmg.Startpos)
	moves := b.GenerateLegalMoves()
	ttMove := moves[len(moves)-1]
	scored := e.orderedMoves(&b, moves, ttMove, 0, 0, 1)
	if scored[0].move != ttMove {
		t.Errorf("hash move should be tried first, got %s", scored[0].move.String())
	}
	if scored[0].score != ttMoveScore {
		t.Errorf("hash move scored %d, want %d", scored[0].score, ttMoveScore)
	}
}

func TestOrderingCounterMoveOutranksKillers(t *testing.T) {
	e := NewEngine()
	b := dragontoothmg.ParseFen(dragontoothmg.Startpos)
	moves := b.GenerateLegalMoves()

	prev := moves[0]
	counter := moves[4]
	killer := moves[5]

	e.storeCounter(b.Wtomove, prev, counter)
	e.killers.Insert(killer, 0)

	scored := e.orderedMoves(&b, moves, 0, prev, 0, 1)
	if scored[0].move != counter || scored[0].score != counterMoveScore {
		t.Errorf("stored reply to the previous move should rank first, got %s score %d",
			scored[0].move.String(), scored[0].score)
	}
	if scored[1].move != killer || scored[1].score != firstKillerScore {
		t.Errorf("killer should rank right below the counter move, got %s score %d",
			scored[1].move.String(), scored[1].score)
	}

	// Without the matching previous move the counter band must not fire.
	other := moves[7]
	plain := e.orderedMoves(&b, moves, 0, other, 0, 1)
	if plain[0].move != killer {
		t.Errorf("counter move fired for the wrong previous move: got %s", plain[0].move.String())
	}
}

func TestKillerTable(t *testing.T) {
	var k KillerTable
	b := dragontoothmg.ParseFen(dragontoothmg.Startpos)
	moves := b.GenerateLegalMoves()
	m1, m2, m3 := moves[0], moves[1], moves[2]

	k.Insert(m1, 3)
	if k.First(3) != m1 {
		t.Error("first killer not stored")
	}
	k.Insert(m2, 3)
	if k.First(3) != m2 || k.Second(3) != m1 {
		t.Error("second insert should shift the first killer down")
	}
	// Re-inserting the current first killer must not duplicate it.
	k.Insert(m2, 3)
	if k.First(3) != m2 || k.Second(3) != m1 {
		t.Error("re-inserting the first killer changed the table")
	}
	// A third distinct move drops the oldest; only the two most recent stay.
	k.Insert(m3, 3)
	if k.First(3) != m3 || k.Second(3) != m2 {
		t.Error("third insert should retain the two most recent killers")
	}
	// Out-of-range plies are ignored rather than panicking.
	k.Insert(m1, MaxPly)
	k.Insert(m1, MaxPly+3)
}

func TestHistoryIncrementAndAging(t *testing.T) {
	e := NewEngine()
	b := dragontoothmg.ParseFen(dragontoothmg.Startpos)
	moves := b.GenerateLegalMoves()
	m := moves[0]

	e.incrementHistory(true, m, 4)
	first := e.historyScore(true, m)
	if first != 16 {
		t.Errorf("history after one depth-4 cutoff = %d, want 16", first)
	}
	e.incrementHistory(true, m, 4)
	if got := e.historyScore(true, m); got <= first {
		t.Errorf("history should grow with repeated cutoffs, got %d after %d", got, first)
	}

	// Push past the ceiling and confirm the table is rescaled, not wrapped,
	// and that halving preserves the relative order of distinct entries.
	weaker := moves[1]
	e.incrementHistory(true, weaker, 3)
	for i := 0; i < 200; i++ {
		e.incrementHistory(true, m, 10)
	}
	if got := e.historyScore(true, m); got <= 0 || got > historyCeiling {
		t.Errorf("history after aging = %d, want in (0, %d]", got, historyCeiling)
	}
	if e.historyScore(true, m) <= e.historyScore(true, weaker) {
		t.Error("halving should preserve the relative order of history entries")
	}
}

func TestMvvLvaVictimDominates(t *testing.T) {
	// Any capture of a bigger victim outranks any capture of a smaller one,
	// regardless of the attacker.
	for victim := dragontoothmg.Knight; victim <= dragontoothmg.Queen; victim++ {
		for a1 := dragontoothmg.Pawn; a1 <= dragontoothmg.King; a1++ {
			for a2 := dragontoothmg.Pawn; a2 <= dragontoothmg.King; a2++ {
				if mvvLva[a1][victim] <= mvvLva[a2][victim-1] {
					t.Fatalf("mvvLva[%d][%d]=%d not above mvvLva[%d][%d]=%d",
						a1, victim, mvvLva[a1][victim], a2, victim-1, mvvLva[a2][victim-1])
				}
			}
		}
	}
	if mvvLva[dragontoothmg.Pawn][dragontoothmg.Queen] <= mvvLva[dragontoothmg.Queen][dragontoothmg.Queen] {
		t.Error("cheaper attacker should outrank for the same victim")
	}
}
