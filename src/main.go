package main

import (
	"bufio"
	"os"
)

func main() {
	InitializeTables()
	controller := NewController(NewAlphaBetaEngine(), os.Stdout, os.Stderr)
	controller.Run(bufio.NewScanner(os.Stdin))
}
