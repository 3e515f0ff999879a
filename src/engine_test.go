package main

import (
	"sync/atomic"
	"testing"
)

func TestMaterialEngineGrabsHangingQueen(t *testing.T) {
	p := mustPosition(t, "k7/8/8/3q4/3R4/8/8/K7 w - - 0 1")
	var stop atomic.Bool
	var engine Engine = MaterialEngine{}
	move := engine.BestMove(p, SearchLimits{}, &stop, nil)
	if move.String() != "d4d5" {
		t.Errorf("material engine played %s, want d4d5", move)
	}
}

func TestMaterialEngineEvaluate(t *testing.T) {
	p := mustPosition(t, "k7/8/8/8/8/8/8/KQ6 w - - 0 1")
	var engine Engine = MaterialEngine{}
	if got := engine.Evaluate(p); got != queenValue {
		t.Errorf("material evaluation = %d, want %d", got, queenValue)
	}
}

func TestRandomEnginePlaysLegalMoves(t *testing.T) {
	p := StartingPosition()
	var stop atomic.Bool
	var engine Engine = NewRandomEngine()
	legal := map[Move]bool{}
	for _, move := range p.LegalMoves() {
		legal[move] = true
	}
	for i := 0; i < 50; i++ {
		if move := engine.BestMove(p, SearchLimits{}, &stop, nil); !legal[move] {
			t.Fatalf("random engine played illegal move %s", move)
		}
	}
}

func TestRandomEngineNoMoves(t *testing.T) {
	p := mustPosition(t, "k7/8/1Q6/8/8/8/8/K7 b - - 0 1")
	var stop atomic.Bool
	if move := NewRandomEngine().BestMove(p, SearchLimits{}, &stop, nil); move != NilMove {
		t.Errorf("random engine invented %s in a stalemate", move)
	}
}

// All engine variants answer the same capability set, so the controller can
// drive any of them.
func TestEnginesShareInterface(t *testing.T) {
	engines := []Engine{NewAlphaBetaEngine(), MaterialEngine{}, NewRandomEngine()}
	for _, engine := range engines {
		if engine.Name() == "" || engine.Author() == "" {
			t.Errorf("%T has an empty identity", engine)
		}
		engine.NewGame()
		if engine.SetOption("NoSuchOption", "1") {
			t.Errorf("%T accepted an unknown option", engine)
		}
	}
}
