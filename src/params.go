package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Every evaluation weight is a registered spin option so the search can be
// tuned over UCI without rebuilding.
type Option struct {
	name     string
	value    *int32
	def      int32
	min, max int32
}

var options []*Option
var optionIndex = map[string]*Option{}

var (
	pawnValue   int32
	knightValue int32
	bishopValue int32
	rookValue   int32
	queenValue  int32
	kingValue   int32
	mateScore   int32

	restrictKingBonus    int32
	kingShieldBonus      int32
	airyKingPenalty      int32
	supportedPawnBonus   int32
	supportingPawnBonus  int32
	passedPawnBonus      int32
	supportingPieceBonus int32
	doubledPawnPenalty   int32
	isolatedPawnPenalty  int32
	checkedPenalty       int32
	checkingBonus        int32
	bishopPairBonus      int32
	rookOpenFileBonus    int32
)

var kindValues = [7]*int32{nil, &pawnValue, &knightValue, &bishopValue, &rookValue, &queenValue, &kingValue}

func pieceValue(k PieceKind) int32 {
	if k == Empty {
		return 0
	}
	return *kindValues[k]
}

func registerOption(name string, value *int32, def int32, min int32, max int32) {
	option := &Option{name: name, value: value, def: def, min: min, max: max}
	*value = def
	options = append(options, option)
	optionIndex[strings.ToLower(name)] = option
}

func init() {
	registerOption("PawnValue", &pawnValue, 100, 0, 2000)
	registerOption("KnightValue", &knightValue, 320, 0, 2000)
	registerOption("BishopValue", &bishopValue, 330, 0, 2000)
	registerOption("RookValue", &rookValue, 500, 0, 2000)
	registerOption("QueenValue", &queenValue, 900, 0, 2000)
	registerOption("KingValue", &kingValue, 2000, 0, 4000)
	registerOption("MateScore", &mateScore, 100000, 50000, 200000)
	registerOption("RestrictKingBonus", &restrictKingBonus, 10, 0, 200)
	registerOption("KingShieldBonus", &kingShieldBonus, 50, 0, 200)
	registerOption("AiryKingPenalty", &airyKingPenalty, -25, -200, 0)
	registerOption("SupportedPawnBonus", &supportedPawnBonus, 8, 0, 200)
	registerOption("SupportingPawnBonus", &supportingPawnBonus, 6, 0, 200)
	registerOption("PassedPawnBonus", &passedPawnBonus, 25, 0, 200)
	registerOption("SupportingPieceBonus", &supportingPieceBonus, 5, 0, 200)
	registerOption("DoubledPawnPenalty", &doubledPawnPenalty, -20, -200, 0)
	registerOption("IsolatedPawnPenalty", &isolatedPawnPenalty, -15, -200, 0)
	registerOption("CheckedPenalty", &checkedPenalty, -30, -200, 0)
	registerOption("CheckingBonus", &checkingBonus, 30, 0, 200)
	registerOption("BishopPairBonus", &bishopPairBonus, 30, 0, 200)
	registerOption("RookOpenFileBonus", &rookOpenFileBonus, 20, 0, 200)
}

// SetOptionValue updates a registered option. Unknown names and values out
// of range leave everything untouched and report false.
func SetOptionValue(name string, value string) bool {
	option, ok := optionIndex[strings.ToLower(name)]
	if !ok {
		return false
	}
	parsed, err := strconv.ParseInt(value, 10, 32)
	if err != nil || int32(parsed) < option.min || int32(parsed) > option.max {
		return false
	}
	*option.value = int32(parsed)
	return true
}

func printOptions(w io.Writer) {
	for _, option := range options {
		fmt.Fprintf(w, "option name %s type spin default %d min %d max %d\n", option.name, option.def, option.min, option.max)
	}
}

func resetOptions() {
	for _, option := range options {
		*option.value = option.def
	}
}
