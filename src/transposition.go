package main

type NodeType uint8

const (
	ExactNode      NodeType = 0
	LowerBoundNode NodeType = 1
	UpperBoundNode NodeType = 2

	// Entries, not bytes. Direct mapped; collisions overwrite.
	tableSize uint64 = 1 << 22
)

type TableEntry struct {
	key      uint64
	bestMove Move
	score    int32
	depth    int16
	nodeType NodeType
}

type TranspositionTable []TableEntry

func NewTranspositionTable() TranspositionTable {
	return make(TranspositionTable, tableSize)
}

func (tt TranspositionTable) AddState(hash uint64, score int32, bestMove Move, depth int16, nodeType NodeType) {
	tt[hash&(tableSize-1)] = TableEntry{key: hash, bestMove: bestMove, score: score, depth: depth, nodeType: nodeType}
}

// The full key is stored so an overwritten slot is never mistaken for a hit.
func (tt TranspositionTable) SearchState(hash uint64) (TableEntry, bool) {
	entry := tt[hash&(tableSize-1)]
	if entry.key == hash {
		return entry, true
	}
	return TableEntry{}, false
}

func (tt TranspositionTable) Clear() {
	for i := range tt {
		tt[i] = TableEntry{}
	}
}
