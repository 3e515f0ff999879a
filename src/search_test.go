package main

import (
	"bytes"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

func searchBestMove(t *testing.T, fen string, depth int) (Move, string) {
	t.Helper()
	p := mustPosition(t, fen)
	var out bytes.Buffer
	var stop atomic.Bool
	searcher := NewSearcher()
	move := searcher.Search(p, SearchLimits{Depth: depth}, &stop, &out)
	return move, out.String()
}

func TestSearchFindsMateInOne(t *testing.T) {
	move, _ := searchBestMove(t, "6k1/8/6K1/8/8/8/8/R7 w - - 0 1", 3)
	if move.String() != "a1a8" {
		t.Errorf("best move = %s, want a1a8", move)
	}
}

func TestSearchReturnsLegalMoveWithInfo(t *testing.T) {
	move, output := searchBestMove(t, startingFen, 2)
	p := StartingPosition()
	found := false
	for _, legal := range p.LegalMoves() {
		if legal == move {
			found = true
		}
	}
	if !found {
		t.Errorf("search returned illegal move %s", move)
	}
	if !strings.Contains(output, "info depth 2 score cp ") {
		t.Errorf("missing depth 2 info line in output:\n%s", output)
	}
}

func TestSearchPrefersCapturingHangingQueen(t *testing.T) {
	move, _ := searchBestMove(t, "k7/8/8/3q4/3R4/8/8/K7 w - - 0 1", 4)
	if move.String() != "d4d5" {
		t.Errorf("best move = %s, want d4d5", move)
	}
}

func TestSearchAvoidsStalemateTrap(t *testing.T) {
	// White is up a queen; any sane line keeps a winning score.
	p := mustPosition(t, "k7/8/1Q6/8/8/8/8/K7 w - - 0 1")
	var stop atomic.Bool
	searcher := NewSearcher()
	move := searcher.Search(p, SearchLimits{Depth: 4}, &stop, nil)
	p.MakeMove(move)
	if len(p.LegalMoves()) == 0 && !p.InCheck(p.turn) {
		t.Errorf("search stalemated the opponent with %s", move)
	}
}

func TestSearchStopsOnFlag(t *testing.T) {
	p := StartingPosition()
	var stop atomic.Bool
	searcher := NewSearcher()
	done := make(chan Move, 1)
	go func() {
		done <- searcher.Search(p, SearchLimits{Infinite: true}, &stop, nil)
	}()
	time.Sleep(30 * time.Millisecond)
	start := time.Now()
	stop.Store(true)
	select {
	case move := <-done:
		if time.Since(start) > 100*time.Millisecond {
			t.Error("search took more than 100ms to honor the stop flag")
		}
		if move == NilMove {
			t.Error("stopped search returned no move")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("search never honored the stop flag")
	}
}

func TestSearchPlaysFromRepeatedPosition(t *testing.T) {
	// The root key is already in the seen-key set. The repetition draw is
	// only scored below the root, so the search still returns a move.
	p := StartingPosition()
	for _, token := range []string{"g1f3", "g8f6", "f3g1", "f6g8"} {
		if !applyMoveToken(p, token) {
			t.Fatalf("could not play %s", token)
		}
	}
	if !p.isRepetition() {
		t.Fatal("start position should be a repetition here")
	}
	var stop atomic.Bool
	searcher := NewSearcher()
	if move := searcher.Search(p, SearchLimits{Depth: 3}, &stop, nil); move == NilMove {
		t.Error("search returned no move from a repeated but live position")
	}
}

func TestHistoryUpdateClamps(t *testing.T) {
	searcher := NewSearcher()
	move := BuildMove(SFS("e2"), SFS("e4"), MakeColoredPiece(White, Pawn), Empty, Empty)
	for i := 0; i < 1000; i++ {
		searcher.updateHistory(White, move, 4096)
	}
	if got := searcher.history[White][SFS("e2")][SFS("e4")]; got > HistoryMax {
		t.Errorf("history value %d exceeds the clamp", got)
	}
	for i := 0; i < 2000; i++ {
		searcher.updateHistory(White, move, -4096)
	}
	if got := searcher.history[White][SFS("e2")][SFS("e4")]; got < -HistoryMax {
		t.Errorf("history value %d exceeds the negative clamp", got)
	}
}

func TestKillerTableShifts(t *testing.T) {
	searcher := NewSearcher()
	first := BuildMove(SFS("b1"), SFS("c3"), MakeColoredPiece(White, Knight), Empty, Empty)
	second := BuildMove(SFS("g1"), SFS("f3"), MakeColoredPiece(White, Knight), Empty, Empty)
	searcher.addKiller(first, 5)
	searcher.addKiller(second, 5)
	if searcher.killers[5][0] != second || searcher.killers[5][1] != first {
		t.Error("killer slots did not shift")
	}
	searcher.addKiller(second, 5)
	if searcher.killers[5][1] != first {
		t.Error("re-adding the first killer clobbered the second slot")
	}
}

func TestTranspositionTableRoundTrip(t *testing.T) {
	tt := NewTranspositionTable()
	move := BuildMove(SFS("e2"), SFS("e4"), MakeColoredPiece(White, Pawn), Empty, Empty)
	tt.AddState(0xdeadbeef, 42, move, 7, ExactNode)
	entry, found := tt.SearchState(0xdeadbeef)
	if !found || entry.score != 42 || entry.bestMove != move || entry.depth != 7 || entry.nodeType != ExactNode {
		t.Fatalf("tt round trip failed: %+v found=%v", entry, found)
	}
	// A different key mapping to the same slot must miss.
	if _, found := tt.SearchState(0xdeadbeef + tableSize); found {
		t.Error("tt hit on a colliding key")
	}
}
