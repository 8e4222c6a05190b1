// movegen lists the pseudo-legal moves of a chess position and can
// play out move sequences interactively.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"

	"github.com/lgbarn/movegen-go/internal/chess"
	"github.com/lgbarn/movegen-go/internal/output"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("movegen version %s\n", programVersion)
		os.Exit(0)
	}

	out := setupOutput()
	defer func() {
		if closer, ok := out.(io.Closer); ok && out != os.Stdout {
			closer.Close()
		}
	}()

	game := chess.NewGame()

	// Positional arguments are moves to apply before reporting, e.g.
	//   movegen e2e4 e7e5
	for _, arg := range flag.Args() {
		if err := applyNotated(game, arg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	if *debugDump {
		spew.Fdump(os.Stderr, game)
	}

	if *playMode {
		if err := playLoop(game, os.Stdin, out); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := report(out, game); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		os.Exit(1)
	}
}

// setupOutput opens the output file, or returns stdout.
func setupOutput() io.Writer {
	if *outputFile == "" {
		return os.Stdout
	}
	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	return file
}

// applyNotated parses one coordinate-notation move and applies it if
// it is in the position's move list.
func applyNotated(game *chess.Game, notation string) error {
	move, err := chess.ParseMove(notation)
	if err != nil {
		return err
	}
	for _, candidate := range game.ListMoves() {
		if candidate == move {
			return game.Apply(move)
		}
	}
	return fmt.Errorf("move %s is not available for %s", move, game.CurrentTurn())
}

// report writes the position in the selected format.
func report(w io.Writer, game *chess.Game) error {
	switch {
	case *jsonOutput:
		return output.WritePositionJSON(w, game)
	case *fenOnly:
		_, err := fmt.Fprintln(w, output.EncodeFEN(game))
		return err
	default:
		if *showBoard {
			if err := output.WriteBoard(w, game); err != nil {
				return err
			}
		}
		return output.WriteMoves(w, game.ListMoves())
	}
}

// playLoop reads moves from in and applies them one at a time,
// printing the position after each. A blank line or EOF ends the loop.
func playLoop(game *chess.Game, in io.Reader, out io.Writer) error {
	if err := report(out, game); err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprintf(out, "%s to move> ", game.CurrentTurn())
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		if line == "" || line == "quit" {
			break
		}

		if err := applyNotated(game, line); err != nil {
			fmt.Fprintf(out, "%v\n", err)
			continue
		}
		if err := report(out, game); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func usage() {
	fmt.Fprintf(os.Stderr, `movegen - pseudo-legal chess move generator

Usage: movegen [options] [moves...]

Moves are given in coordinate notation (e.g. e2e4) and applied in
order from the initial position before the report is produced.

Options:
`)
	flag.PrintDefaults()
}
