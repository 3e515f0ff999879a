package main

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// Controller owns the game position and the engine and isolates a running
// search from the command stream. Commands are handled on the caller's
// task; a "go" hands the shared state to a single worker goroutine, and
// every command that would touch that state waits for the worker to join.
type Controller struct {
	engine Engine
	pos    *Position
	out    io.Writer
	errOut io.Writer
	stop   atomic.Bool
	wg     sync.WaitGroup
}

func NewController(engine Engine, out io.Writer, errOut io.Writer) *Controller {
	InitializeTables()
	return &Controller{engine: engine, pos: StartingPosition(), out: out, errOut: errOut}
}

// StartSearch launches the worker. At most one worker runs at a time; a new
// "go" waits for the previous one to terminate.
func (c *Controller) StartSearch(limits SearchLimits) {
	c.wg.Wait()
	c.stop.Store(false)
	var deadline *time.Timer
	if budget := allocateBudget(limits, c.pos.turn); budget > 0 {
		deadline = time.AfterFunc(budget, func() { c.stop.Store(true) })
	}
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		move := c.engine.BestMove(c.pos, limits, &c.stop, c.out)
		if deadline != nil {
			deadline.Stop()
		}
		fmt.Fprintln(c.out, "bestmove", move)
	}()
}

// StopSearch requests termination and joins the worker. The search polls
// the flag between nodes, commits its best move so far, and exits.
func (c *Controller) StopSearch() {
	c.stop.Store(true)
	c.wg.Wait()
}

func (c *Controller) NewGame() {
	c.StopSearch()
	c.engine.NewGame()
	c.pos = StartingPosition()
}

// SetPosition replaces the game position. A malformed FEN falls back to the
// initial position with a warning; an unplayable move token is skipped and
// the rest of the list still applies.
func (c *Controller) SetPosition(fen string, moveTokens []string) {
	c.wg.Wait()
	p, err := FenPosition(fen)
	if err != nil {
		fmt.Fprintln(c.errOut, "invalid fen, using start position:", err)
		p = StartingPosition()
	}
	for _, token := range moveTokens {
		if !applyMoveToken(p, token) {
			fmt.Fprintln(c.errOut, "skipping unplayable move:", token)
		}
	}
	c.pos = p
}

func applyMoveToken(p *Position, token string) bool {
	for _, move := range p.LegalMoves() {
		if strings.EqualFold(move.String(), token) {
			previousCastle := p.castle
			p.MakeMove(move)
			p.RecordPlayedMove(move, previousCastle)
			return true
		}
	}
	return false
}
