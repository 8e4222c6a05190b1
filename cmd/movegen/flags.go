// flags.go - Command-line flag definitions
package main

import "flag"

var (
	// Output options
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	jsonOutput = flag.Bool("J", false, "Output position and moves in JSON format")
	fenOnly    = flag.Bool("fen", false, "Output only the FEN of the position")
	showBoard  = flag.Bool("board", false, "Render the board before the move list")

	// Mode options
	playMode  = flag.Bool("play", false, "Interactive mode: read moves from stdin and apply them")
	debugDump = flag.Bool("debug", false, "Dump the full game state to stderr")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)
