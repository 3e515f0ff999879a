package main

import "testing"

func TestSeeWinningCapture(t *testing.T) {
	p := mustPosition(t, "1k6/8/3p4/8/3R4/8/8/1K6 w - - 0 1")
	move := findMove(t, p, "d4d6")
	if got := p.see(move); got != pawnValue {
		t.Errorf("see of a free pawn = %d, want %d", got, pawnValue)
	}
}

func TestSeeLosingCapture(t *testing.T) {
	p := mustPosition(t, "1k6/2p5/3p4/8/3R4/8/8/1K6 w - - 0 1")
	move := findMove(t, p, "d4d6")
	if got := p.see(move); got != pawnValue-rookValue {
		t.Errorf("see of a defended pawn = %d, want %d", got, pawnValue-rookValue)
	}
}

func TestSeeEqualExchange(t *testing.T) {
	p := mustPosition(t, "1k6/8/2p5/3p4/4P3/8/8/1K6 w - - 0 1")
	move := findMove(t, p, "e4d5")
	if got := p.see(move); got != 0 {
		t.Errorf("see of a pawn trade = %d, want 0", got)
	}
}

func TestSeeDefendedRookLoses(t *testing.T) {
	p := mustPosition(t, "2kr4/8/8/8/8/8/3Q4/1K6 w - - 0 1")
	move := findMove(t, p, "d2d8")
	if got := p.see(move); got != rookValue-queenValue {
		t.Errorf("see of queen takes defended rook = %d, want %d", got, rookValue-queenValue)
	}
}

// The rook on d1 x-rays the target through the queen's own square, so the
// king declines the recapture and the queen keeps the rook.
func TestSeeXray(t *testing.T) {
	p := mustPosition(t, "2kr4/8/8/8/8/8/3Q4/1K1R4 w - - 0 1")
	move := findMove(t, p, "d2d8")
	if got := p.see(move); got != rookValue {
		t.Errorf("see with x-ray support = %d, want %d", got, rookValue)
	}
}
