package main

const maxMoves = 256

type MoveList struct {
	moves      [maxMoves]Move
	firstEmpty int
}

func (moveList *MoveList) addMove(move Move) {
	if moveList.firstEmpty >= maxMoves {
		panic("Too Many Moves")
	}
	moveList.moves[moveList.firstEmpty] = move
	moveList.firstEmpty++
}

func (moveList *MoveList) len() int {
	return moveList.firstEmpty
}

func (moveList *MoveList) reset() {
	moveList.firstEmpty = 0
}

func (moveList *MoveList) slice() []Move {
	return moveList.moves[:moveList.firstEmpty]
}
