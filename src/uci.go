package main

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
)

// Run reads UCI commands until quit or end of input. Command tokens are
// case-insensitive; unknown commands are ignored, per the protocol.
func (c *Controller) Run(in *bufio.Scanner) {
	for in.Scan() {
		line := strings.TrimSpace(in.Text())
		if line == "" {
			continue
		}
		if !c.handleCommand(line) {
			return
		}
	}
	c.StopSearch()
}

func (c *Controller) handleCommand(line string) bool {
	parts := strings.Fields(line)
	switch strings.ToLower(parts[0]) {
	case "uci":
		fmt.Fprintln(c.out, "id name", c.engine.Name())
		fmt.Fprintln(c.out, "id author", c.engine.Author())
		printOptions(c.out)
		fmt.Fprintln(c.out, "uciok")
	case "isready":
		fmt.Fprintln(c.out, "readyok")
	case "ucinewgame":
		c.NewGame()
	case "setoption":
		c.wg.Wait()
		name, value := parseSetOption(parts)
		if name != "" && !c.engine.SetOption(name, value) {
			fmt.Fprintf(c.errOut, "option %q unchanged\n", name)
		}
	case "position":
		c.handlePosition(parts)
	case "go":
		c.StartSearch(parseGoLimits(parts))
	case "stop":
		c.StopSearch()
	case "quit":
		c.StopSearch()
		return false
	case "perft":
		c.handlePerft(parts)
	case "d", "display":
		c.wg.Wait()
		fmt.Fprintln(c.out, c.pos)
		fmt.Fprintln(c.out, c.pos.fenString())
	case "eval":
		c.wg.Wait()
		fmt.Fprintln(c.out, c.engine.Evaluate(c.pos))
	}
	return true
}

func (c *Controller) handlePosition(parts []string) {
	c.wg.Wait()
	if len(parts) < 2 {
		return
	}
	fen := startingFen
	rest := parts[2:]
	if strings.EqualFold(parts[1], "fen") {
		fenParts := []string{}
		for len(rest) > 0 && !strings.EqualFold(rest[0], "moves") {
			fenParts = append(fenParts, rest[0])
			rest = rest[1:]
		}
		fen = strings.Join(fenParts, " ")
	} else if !strings.EqualFold(parts[1], "startpos") {
		return
	}
	moveTokens := []string{}
	if len(rest) > 0 && strings.EqualFold(rest[0], "moves") {
		moveTokens = rest[1:]
	}
	c.SetPosition(fen, moveTokens)
}

func parseGoLimits(parts []string) SearchLimits {
	limits := SearchLimits{}
	for i := 1; i < len(parts); i++ {
		switch strings.ToLower(parts[i]) {
		case "depth":
			if i+1 < len(parts) {
				i++
				if strings.EqualFold(parts[i], "infinite") {
					limits.Depth = MaxPly
				} else {
					limits.Depth, _ = strconv.Atoi(parts[i])
				}
			}
		case "wtime":
			if i+1 < len(parts) {
				limits.WhiteTime, _ = strconv.ParseInt(parts[i+1], 10, 64)
				i++
			}
		case "btime":
			if i+1 < len(parts) {
				limits.BlackTime, _ = strconv.ParseInt(parts[i+1], 10, 64)
				i++
			}
		case "winc":
			if i+1 < len(parts) {
				limits.WhiteInc, _ = strconv.ParseInt(parts[i+1], 10, 64)
				i++
			}
		case "binc":
			if i+1 < len(parts) {
				limits.BlackInc, _ = strconv.ParseInt(parts[i+1], 10, 64)
				i++
			}
		case "movetime":
			if i+1 < len(parts) {
				limits.MoveTime, _ = strconv.ParseInt(parts[i+1], 10, 64)
				i++
			}
		case "infinite":
			limits.Infinite = true
		}
	}
	return limits
}

func parseSetOption(parts []string) (string, string) {
	nameStart, nameEnd, valueStart := -1, -1, -1
	for i, p := range parts {
		if strings.EqualFold(p, "name") && nameStart == -1 {
			nameStart = i + 1
			continue
		}
		if strings.EqualFold(p, "value") && nameStart != -1 && nameEnd == -1 {
			nameEnd = i
			valueStart = i + 1
			break
		}
	}
	if nameStart == -1 {
		return "", ""
	}
	if nameEnd == -1 {
		return strings.Join(parts[nameStart:], " "), ""
	}
	if nameStart >= nameEnd {
		return "", ""
	}
	return strings.Join(parts[nameStart:nameEnd], " "), strings.Join(parts[valueStart:], " ")
}

// perft [depth] prints the leaf count under every root move, the way the
// engine has always been debugged.
func (c *Controller) handlePerft(parts []string) {
	c.wg.Wait()
	depth := 4
	if len(parts) > 1 {
		if parsed, err := strconv.Atoi(parts[1]); err == nil && parsed > 0 {
			depth = parsed
		}
	}
	var total int64 = 0
	for _, move := range c.pos.LegalMoves() {
		c.pos.MakeMove(move)
		nodes := Perft(c.pos, depth-1)
		c.pos.UnmakeMove(move)
		fmt.Fprintf(c.out, "%s: %d\n", move, nodes)
		total += nodes
	}
	fmt.Fprintln(c.out, "Total:", total)
}
