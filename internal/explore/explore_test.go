package explore

import (
	"context"
	"sync"
	"testing"

	"github.com/lgbarn/movegen-go/internal/chess"
	"github.com/lgbarn/movegen-go/internal/config"
	"github.com/lgbarn/movegen-go/internal/store"
)

// fakeStore is an in-memory PositionStore keyed by FEN.
type fakeStore struct {
	mu       sync.Mutex
	ids      map[string]int64
	edges    int
	exceeded bool
	failWith error
}

func newFakeStore() *fakeStore {
	return &fakeStore{ids: make(map[string]int64)}
}

func (f *fakeStore) insert(fen string) store.Child {
	if id, ok := f.ids[fen]; ok {
		return store.Child{ID: id}
	}
	id := int64(len(f.ids) + 1)
	f.ids[fen] = id
	return store.Child{ID: id, Created: true}
}

func (f *fakeStore) InsertRoot(_ context.Context, fen string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.insert(fen).ID, nil
}

func (f *fakeStore) InsertChildren(_ context.Context, _ int64, fens []string) ([]store.Child, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	children := make([]store.Child, len(fens))
	for i, fen := range fens {
		children[i] = f.insert(fen)
		f.edges++
	}
	return children, nil
}

func (f *fakeStore) SizeExceeded(context.Context) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.exceeded, nil
}

func (f *fakeStore) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.ids)
}

func testConfig(depth int) *config.Config {
	cfg := config.NewConfig()
	cfg.Depth = depth
	cfg.Workers = 2
	return cfg
}

func TestRunDepthOne(t *testing.T) {
	st := newFakeStore()
	explorer := New(st, testConfig(1))

	stats, err := explorer.Run(context.Background(), chess.NewGame())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	// The starting position has 20 successors, all distinct.
	if len(stats.Levels) != 2 {
		t.Fatalf("got %d levels, want 2", len(stats.Levels))
	}
	if stats.Levels[0] != 1 || stats.Levels[1] != 20 {
		t.Errorf("levels = %v, want [1 20]", stats.Levels)
	}
	if stats.Total != 21 {
		t.Errorf("Total = %d, want 21", stats.Total)
	}
	if st.count() != 21 {
		t.Errorf("store holds %d positions, want 21", st.count())
	}
	if stats.Truncated {
		t.Error("Truncated = true for a completed run")
	}
}

func TestRunDepthTwo(t *testing.T) {
	st := newFakeStore()
	explorer := New(st, testConfig(2))

	stats, err := explorer.Run(context.Background(), chess.NewGame())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	// 20 replies each to 20 first moves, all positions distinct two
	// half-moves in.
	if stats.Levels[2] != 400 {
		t.Errorf("Levels[2] = %d, want 400", stats.Levels[2])
	}
	if stats.Total != 421 {
		t.Errorf("Total = %d, want 421", stats.Total)
	}
}

func TestRunDepthZero(t *testing.T) {
	st := newFakeStore()
	explorer := New(st, testConfig(0))

	stats, err := explorer.Run(context.Background(), chess.NewGame())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if stats.Total != 1 {
		t.Errorf("Total = %d, want 1 (root only)", stats.Total)
	}
	if st.count() != 1 {
		t.Errorf("store holds %d positions, want 1", st.count())
	}
}

func TestRunStopsOnSizeLimit(t *testing.T) {
	st := newFakeStore()
	st.exceeded = true
	explorer := New(st, testConfig(3))

	stats, err := explorer.Run(context.Background(), chess.NewGame())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !stats.Truncated {
		t.Error("Truncated = false with the size limit exceeded")
	}
	if stats.Total != 1 {
		t.Errorf("Total = %d, want 1", stats.Total)
	}
}

func TestRunStopsOnCancelledContext(t *testing.T) {
	st := newFakeStore()
	explorer := New(st, testConfig(5))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	stats, err := explorer.Run(ctx, chess.NewGame())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !stats.Truncated {
		t.Error("Truncated = false after cancellation")
	}
}

func TestRunPropagatesStoreError(t *testing.T) {
	st := newFakeStore()
	st.failWith = context.DeadlineExceeded
	explorer := New(st, testConfig(2))

	_, err := explorer.Run(context.Background(), chess.NewGame())
	if err == nil {
		t.Fatal("Run succeeded, want store error")
	}
}
