package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/lgbarn/movegen-go/internal/chess"
	"github.com/lgbarn/movegen-go/internal/testutil"
)

func TestWriteBoardInitialPosition(t *testing.T) {
	var buf bytes.Buffer
	testutil.AssertNoError(t, WriteBoard(&buf, chess.NewGame()))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 17 {
		t.Fatalf("got %d lines, want 17 (8 ranks + 9 separators)", len(lines))
	}

	const separator = "---------------------------------"
	for i := 0; i < len(lines); i += 2 {
		if lines[i] != separator {
			t.Errorf("line %d = %q, want separator", i, lines[i])
		}
	}

	// Rank 0 (White's back rank) is drawn first.
	if got, want := lines[1], "| R | N | B | Q | K | B | N | R |"; got != want {
		t.Errorf("first rank = %q, want %q", got, want)
	}
	if got, want := lines[3], "| P | P | P | P | P | P | P | P |"; got != want {
		t.Errorf("second rank = %q, want %q", got, want)
	}
	if got, want := lines[5], "|   |   |   |   |   |   |   |   |"; got != want {
		t.Errorf("empty rank = %q, want %q", got, want)
	}
}

func TestWriteMoves(t *testing.T) {
	moves := []chess.Move{
		{FromRank: 1, FromFile: 4, ToRank: 3, ToFile: 4},
		{FromRank: 0, FromFile: 6, ToRank: 2, ToFile: 5},
	}

	var buf bytes.Buffer
	testutil.AssertNoError(t, WriteMoves(&buf, moves))
	testutil.AssertEqual(t, buf.String(), "e2e4\ng1f3\n")
}

func TestEncodeFEN(t *testing.T) {
	t.Run("starting position", func(t *testing.T) {
		got := EncodeFEN(chess.NewGame())
		want := "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1"
		testutil.AssertEqual(t, got, want)
	})

	t.Run("after one move", func(t *testing.T) {
		g := chess.NewGame()
		testutil.AssertNoError(t, g.Apply(chess.Move{FromRank: 1, FromFile: 4, ToRank: 3, ToFile: 4}))

		got := EncodeFEN(g)
		want := "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b - - 0 1"
		testutil.AssertEqual(t, got, want)
	})

	t.Run("fullmove number advances per White move", func(t *testing.T) {
		g := chess.NewGame()
		for _, notation := range []string{"e2e4", "e7e5", "g1f3"} {
			m, err := chess.ParseMove(notation)
			testutil.AssertNoError(t, err)
			testutil.AssertNoError(t, g.Apply(m))
		}
		testutil.AssertContains(t, EncodeFEN(g), " b - - 0 2")
	})

	t.Run("empty board", func(t *testing.T) {
		g := &chess.Game{Board: chess.NewBoard(), Round: 1}
		got := EncodeFEN(g)
		want := "8/8/8/8/8/8/8/8 w - - 0 1"
		testutil.AssertEqual(t, got, want)
	})
}

func TestPositionToJSON(t *testing.T) {
	jp := PositionToJSON(chess.NewGame())

	testutil.AssertEqual(t, jp.ToMove, "White")
	testutil.AssertEqual(t, jp.Round, uint(1))
	if len(jp.Moves) != 20 {
		t.Errorf("got %d moves, want 20", len(jp.Moves))
	}
	testutil.AssertContains(t, jp.FEN, "RNBQKBNR w")
}

func TestWritePositionJSON(t *testing.T) {
	var buf bytes.Buffer
	testutil.AssertNoError(t, WritePositionJSON(&buf, chess.NewGame()))

	var decoded JSONPosition
	testutil.AssertNoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	testutil.AssertEqual(t, decoded.ToMove, "White")
	if len(decoded.Moves) != 20 {
		t.Errorf("got %d moves, want 20", len(decoded.Moves))
	}

	// Moves carry split from/to squares.
	found := false
	for _, m := range decoded.Moves {
		if m.From == "e2" && m.To == "e4" {
			found = true
		}
	}
	if !found {
		t.Error("move e2-e4 missing from JSON move list")
	}
}
