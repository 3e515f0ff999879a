package main

import (
	"fmt"
	"io"
	"sort"
	"sync/atomic"
	"time"
)

const (
	MaxPly     = 64
	HistoryMax = 16384

	infinityScore int32 = 1 << 24

	scoreHashMove int32 = 1 << 30
	scoreCapture  int32 = 1 << 20
	scoreKiller1  int32 = 100000
	scoreKiller2  int32 = 99999

	// Conservative effective-branching-factor estimate: the next depth is
	// only started if ten times the last one still fits the budget.
	branchingEstimate = 10
	timeBuffer        = 20 * time.Millisecond
)

type KillerTable [MaxPly][2]Move
type HistoryTable [2][64][64]int32

type SearchLimits struct {
	Depth     int
	MoveTime  int64
	WhiteTime int64
	BlackTime int64
	WhiteInc  int64
	BlackInc  int64
	Infinite  bool
}

type Searcher struct {
	tt        TranspositionTable
	killers   KillerTable
	history   HistoryTable
	nodes     uint64
	pos       *Position
	stop      *atomic.Bool
	out       io.Writer
	startTime time.Time
}

func NewSearcher() *Searcher {
	return &Searcher{tt: NewTranspositionTable()}
}

func (s *Searcher) NewGame() {
	s.tt.Clear()
	s.killers = KillerTable{}
	s.history = HistoryTable{}
}

func (s *Searcher) stopped() bool {
	return s.stop != nil && s.stop.Load()
}

func allocateBudget(limits SearchLimits, side Color) time.Duration {
	if limits.Infinite {
		return 0
	}
	if limits.MoveTime > 0 {
		return time.Duration(limits.MoveTime) * time.Millisecond
	}
	remaining := limits.WhiteTime
	if side == Black {
		remaining = limits.BlackTime
	}
	if remaining <= 0 {
		return 0
	}
	return time.Duration(remaining) * time.Millisecond / 10
}

// Search runs iterative deepening on p and returns the best move found. A
// stop request unwinds cleanly with the best move so far; before any result
// exists the first legal root move stands in.
func (s *Searcher) Search(p *Position, limits SearchLimits, stop *atomic.Bool, out io.Writer) Move {
	s.pos = p
	s.stop = stop
	s.out = out
	s.nodes = 0
	s.startTime = time.Now()
	budget := allocateBudget(limits, p.turn)
	maxDepth := limits.Depth
	if maxDepth <= 0 || maxDepth > MaxPly {
		maxDepth = MaxPly
	}
	legal := p.LegalMoves()
	if len(legal) == 0 {
		return NilMove
	}
	bestMove := legal[0]
	for depth := 2; depth <= maxDepth; depth++ {
		depthStart := time.Now()
		move, completed := s.searchRoot(depth)
		if move != NilMove {
			bestMove = move
		}
		if !completed {
			break
		}
		depthElapsed := time.Since(depthStart)
		if budget > 0 && (depthElapsed*branchingEstimate+timeBuffer >= budget || time.Since(s.startTime) >= budget) {
			break
		}
	}
	return bestMove
}

func (s *Searcher) searchRoot(depth int) (Move, bool) {
	p := s.pos
	alpha, beta := -infinityScore, infinityScore
	hashMove := NilMove
	if entry, found := s.tt.SearchState(p.hashcode); found {
		hashMove = entry.bestMove
	}
	var list MoveList
	p.genMoves(&list, false)
	moves := s.orderMoves(&list, hashMove, 0)
	bestMove := NilMove
	raisedAlpha := false
	moveCount := 0
	for _, move := range moves {
		if s.stopped() {
			return bestMove, false
		}
		p.MakeMove(move)
		if p.InCheck(p.turn ^ 1) {
			p.UnmakeMove(move)
			continue
		}
		var score int32
		if moveCount == 0 {
			score = -s.negamax(depth-1, 1, -beta, -alpha)
		} else {
			score = -s.negamax(depth-1, 1, -alpha-1, -alpha)
			if score > alpha && score < beta {
				score = -s.negamax(depth-1, 1, -beta, -alpha)
			}
		}
		p.UnmakeMove(move)
		moveCount++
		if s.stopped() {
			// The interrupted subtree's score cannot be trusted.
			return bestMove, false
		}
		if score > alpha {
			alpha = score
			bestMove = move
			raisedAlpha = true
			s.printInfo(depth, score, bestMove)
		}
	}
	if moveCount == 0 {
		return NilMove, true
	}
	nodeType := UpperBoundNode
	if raisedAlpha {
		nodeType = ExactNode
	}
	s.tt.AddState(p.hashcode, alpha, bestMove, int16(depth), nodeType)
	return bestMove, true
}

func (s *Searcher) negamax(depth int, ply int, alpha int32, beta int32) int32 {
	// A stop request reads as depth exhaustion so the tree unwinds cleanly.
	if s.stopped() {
		return alpha
	}
	s.nodes++
	p := s.pos
	if depth <= 0 {
		return s.quiesce(alpha, beta, ply)
	}
	if p.halfMoveClock >= 100 || p.isRepetition() || p.insufficientMaterial() {
		return 0
	}
	hashMove := NilMove
	if entry, found := s.tt.SearchState(p.hashcode); found {
		hashMove = entry.bestMove
		if int(entry.depth) >= depth {
			switch entry.nodeType {
			case ExactNode:
				return entry.score
			case LowerBoundNode:
				if entry.score >= beta {
					return beta
				}
			case UpperBoundNode:
				if entry.score <= alpha {
					return alpha
				}
			}
		}
	}
	inCheckBefore := p.InCheck(p.turn)
	var list MoveList
	p.genMoves(&list, false)
	moves := s.orderMoves(&list, hashMove, ply)
	bestMove := NilMove
	raisedAlpha := false
	legalFound := false
	moveCount := 0
	var quietsSearched [maxMoves]Move
	quietCount := 0
	for _, move := range moves {
		p.MakeMove(move)
		if p.InCheck(p.turn ^ 1) {
			p.UnmakeMove(move)
			continue
		}
		legalFound = true
		isQuiet := !move.IsCapture() && move.PromotionKind() == Empty
		var score int32
		if moveCount == 0 {
			score = -s.negamax(depth-1, ply+1, -beta, -alpha)
		} else {
			childDepth := depth - 1
			// Late move reduction: quiet moves with neither side in check
			// that are not killers get a shallower null-window look first.
			if depth >= 3 && isQuiet && !inCheckBefore && !p.InCheck(p.turn) && !s.isKiller(move, ply) {
				childDepth -= min(2, depth/2)
			}
			score = -s.negamax(childDepth, ply+1, -alpha-1, -alpha)
			if score > alpha && score < beta {
				score = -s.negamax(depth-1, ply+1, -beta, -alpha)
			}
		}
		p.UnmakeMove(move)
		moveCount++
		if score >= beta {
			if isQuiet {
				s.addKiller(move, ply)
				bonus := int32(depth * depth)
				s.updateHistory(p.turn, move, bonus)
				for i := 0; i < quietCount; i++ {
					s.updateHistory(p.turn, quietsSearched[i], -bonus)
				}
			}
			s.tt.AddState(p.hashcode, beta, move, int16(depth), LowerBoundNode)
			return beta
		}
		if isQuiet {
			quietsSearched[quietCount] = move
			quietCount++
		}
		if score > alpha {
			alpha = score
			bestMove = move
			raisedAlpha = true
		}
	}
	if !legalFound {
		if inCheckBefore {
			// Mates further from the root score worse, so the search
			// prefers the shortest one.
			return -mateScore + int32(ply)
		}
		return 0
	}
	nodeType := UpperBoundNode
	if raisedAlpha {
		nodeType = ExactNode
	}
	s.tt.AddState(p.hashcode, alpha, bestMove, int16(depth), nodeType)
	return alpha
}

func (s *Searcher) quiesce(alpha int32, beta int32, ply int) int32 {
	s.nodes++
	p := s.pos
	standingPat := p.Evaluate()
	if standingPat >= beta {
		return beta
	}
	if standingPat > alpha {
		alpha = standingPat
	}
	if ply >= MaxPly {
		return alpha
	}
	var list MoveList
	p.genMoves(&list, true)
	moves := list.slice()
	sort.SliceStable(moves, func(i, j int) bool {
		return captureScore(moves[i]) > captureScore(moves[j])
	})
	for _, move := range moves {
		// Exchanges that lose material even after every recapture are not
		// worth expanding.
		if move.IsCapture() && p.see(move) < 0 {
			continue
		}
		p.MakeMove(move)
		if p.InCheck(p.turn ^ 1) {
			p.UnmakeMove(move)
			continue
		}
		score := -s.quiesce(-beta, -alpha, ply+1)
		p.UnmakeMove(move)
		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}
	return alpha
}

func captureScore(move Move) int32 {
	return 10*pieceValue(move.CapturedKind()) - pieceValue(move.MovingKind()) + pieceValue(move.PromotionKind())
}

func (s *Searcher) orderMoves(list *MoveList, hashMove Move, ply int) []Move {
	moves := list.slice()
	scores := make([]int32, len(moves))
	for i, move := range moves {
		switch {
		case move == hashMove:
			scores[i] = scoreHashMove
		case move.IsCapture() || move.PromotionKind() != Empty:
			scores[i] = scoreCapture + captureScore(move)
		case move == s.killers[ply][0]:
			scores[i] = scoreKiller1
		case move == s.killers[ply][1]:
			scores[i] = scoreKiller2
		default:
			scores[i] = s.history[move.MovingColor()][move.OriginSquare()][move.DestinationSquare()]
		}
	}
	for i := 1; i < len(moves); i++ {
		move := moves[i]
		score := scores[i]
		j := i - 1
		for j >= 0 && scores[j] < score {
			moves[j+1] = moves[j]
			scores[j+1] = scores[j]
			j--
		}
		moves[j+1] = move
		scores[j+1] = score
	}
	return moves
}

func (s *Searcher) isKiller(move Move, ply int) bool {
	return move == s.killers[ply][0] || move == s.killers[ply][1]
}

func (s *Searcher) addKiller(move Move, ply int) {
	if ply >= MaxPly || s.killers[ply][0] == move {
		return
	}
	s.killers[ply][1] = s.killers[ply][0]
	s.killers[ply][0] = move
}

// Smoothed toward the bonus so values decay instead of saturating.
func (s *Searcher) updateHistory(side Color, move Move, bonus int32) {
	entry := &s.history[side][move.OriginSquare()][move.DestinationSquare()]
	magnitude := bonus
	if magnitude < 0 {
		magnitude = -magnitude
	}
	*entry = clampInt32(*entry+bonus-*entry*magnitude/HistoryMax, -HistoryMax, HistoryMax)
}

func (p *Position) insufficientMaterial() bool {
	if p.pieces[Pawn]|p.pieces[Rook]|p.pieces[Queen] != 0 {
		return false
	}
	return BitCount(p.pieces[Knight]|p.pieces[Bishop]) <= 1
}

func (s *Searcher) printInfo(depth int, score int32, bestMove Move) {
	if s.out == nil {
		return
	}
	elapsed := time.Since(s.startTime)
	nps := int64(0)
	if elapsed > 0 {
		nps = int64(float64(s.nodes) / elapsed.Seconds())
	}
	fmt.Fprintf(s.out, "info depth %d score cp %d time %d nodes %d nps %d pv %s\n",
		depth, score, elapsed.Milliseconds(), s.nodes, nps, bestMove)
}
