package main

var leastValuableOrder = [6]PieceKind{Pawn, Knight, Bishop, Rook, Queen, King}

// see simulates the capture sequence on the move's destination square,
// always recapturing with the least valuable attacker and letting either
// side stand pat, and returns the exchange value from the capturer's
// viewpoint. Recomputing the attacker set after every removal picks up
// x-ray attackers.
func (p *Position) see(move Move) int32 {
	to := move.DestinationSquare()
	from := move.OriginSquare()
	var gain [32]int32
	occupied := p.occupied()
	gain[0] = pieceValue(move.CapturedKind())
	if move.IsEnPassant() {
		occupied &^= boardFromSquare(behindSquare(to, p.turn))
	}
	piece := move.MovingKind()
	if promotion := move.PromotionKind(); promotion != Empty {
		piece = promotion
	}
	occupied &^= boardFromSquare(from)
	attackers := p.attackersTo(to, occupied) & occupied
	side := p.turn ^ 1
	d := 0
	for {
		d++
		myAttackers := attackers & p.colors[side]
		if myAttackers == 0 {
			break
		}
		var attackerSquare Square
		var attackerKind PieceKind
		found := false
		for _, kind := range leastValuableOrder {
			subset := myAttackers & p.pieces[kind]
			if subset != 0 {
				attackerSquare = GetLSB(subset)
				attackerKind = kind
				found = true
				break
			}
		}
		if !found {
			break
		}
		gain[d] = pieceValue(piece) - gain[d-1]
		piece = attackerKind
		occupied &^= boardFromSquare(attackerSquare)
		attackers = p.attackersTo(to, occupied) & occupied
		side ^= 1
	}
	for d--; d > 0; d-- {
		if -gain[d] < gain[d-1] {
			gain[d-1] = -gain[d]
		}
	}
	return gain[0]
}
