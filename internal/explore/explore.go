// Package explore expands the game tree breadth-first from a starting
// position, recording every distinct position and edge in a store.
package explore

import (
	"context"

	"github.com/lgbarn/movegen-go/internal/chess"
	"github.com/lgbarn/movegen-go/internal/config"
	"github.com/lgbarn/movegen-go/internal/output"
	"github.com/lgbarn/movegen-go/internal/store"
	"github.com/lgbarn/movegen-go/internal/worker"
)

// PositionStore is the storage the explorer writes to. *store.Store
// satisfies it; tests use an in-memory fake.
type PositionStore interface {
	InsertRoot(ctx context.Context, fen string) (int64, error)
	InsertChildren(ctx context.Context, parentID int64, fens []string) ([]store.Child, error)
	SizeExceeded(ctx context.Context) (bool, error)
}

// Stats reports what one exploration run covered.
type Stats struct {
	// Levels[d] is the number of positions first reached at depth d
	// half-moves from the root; Levels[0] is always 1.
	Levels []int

	// Total is the number of distinct positions stored.
	Total int64

	// Truncated is true if the run stopped before reaching full depth
	// (size limit hit or context cancelled).
	Truncated bool
}

// Explorer expands positions level by level. Workers expand positions
// in parallel; all store writes happen on the coordinating goroutine.
type Explorer struct {
	store     PositionStore
	depth     int
	workers   int
	batchSize int
}

// New creates an explorer writing to st, configured by cfg.
func New(st PositionStore, cfg *config.Config) *Explorer {
	return &Explorer{
		store:     st,
		depth:     cfg.Depth,
		workers:   cfg.Workers,
		batchSize: cfg.BatchSize,
	}
}

// expand generates every successor of one position.
func expand(item worker.WorkItem) worker.ExpandResult {
	moves := item.Game.ListMoves()
	children := make([]*chess.Game, 0, len(moves))
	for _, m := range moves {
		child := item.Game.Copy()
		if err := child.Apply(m); err != nil {
			return worker.ExpandResult{Item: item, Err: err}
		}
		children = append(children, child)
	}
	return worker.ExpandResult{Item: item, Children: children}
}

// Run explores breadth-first from root down to the configured depth.
// Positions already stored are recorded as edges but not re-expanded,
// so transpositions do not multiply the work.
func (e *Explorer) Run(ctx context.Context, root *chess.Game) (*Stats, error) {
	rootID, err := e.store.InsertRoot(ctx, output.EncodeFEN(root))
	if err != nil {
		return nil, err
	}

	stats := &Stats{Levels: []int{1}, Total: 1}
	queue := []worker.WorkItem{{Game: root, ID: rootID, Depth: 0}}

	for depth := 0; depth < e.depth && len(queue) > 0; depth++ {
		if ctx.Err() != nil {
			stats.Truncated = true
			return stats, nil
		}

		exceeded, err := e.store.SizeExceeded(ctx)
		if err != nil {
			return stats, err
		}
		if exceeded {
			stats.Truncated = true
			return stats, nil
		}

		next, created, err := e.expandLevel(ctx, queue)
		if err != nil {
			return stats, err
		}
		if ctx.Err() != nil {
			stats.Truncated = true
			return stats, nil
		}

		stats.Levels = append(stats.Levels, created)
		stats.Total += int64(created)
		queue = next
	}

	return stats, nil
}

// expandLevel expands one whole level through the worker pool and
// returns the newly created positions forming the next level.
func (e *Explorer) expandLevel(ctx context.Context, queue []worker.WorkItem) ([]worker.WorkItem, int, error) {
	pool := worker.NewPool(expand,
		worker.WithWorkers(e.workers),
		worker.WithBufferSize(e.batchSize))
	pool.Start()

	go func() {
		for _, item := range queue {
			pool.Submit(item)
		}
		pool.Close()
	}()

	var next []worker.WorkItem
	created := 0
	var firstErr error

	for result := range pool.Results() {
		if firstErr != nil || ctx.Err() != nil {
			continue // Drain so the pool can shut down
		}
		if result.Err != nil {
			firstErr = result.Err
			pool.Stop()
			continue
		}

		fens := make([]string, len(result.Children))
		for i, child := range result.Children {
			fens[i] = output.EncodeFEN(child)
		}

		children, err := e.store.InsertChildren(ctx, result.Item.ID, fens)
		if err != nil {
			firstErr = err
			pool.Stop()
			continue
		}

		for i, child := range children {
			if !child.Created {
				continue
			}
			created++
			next = append(next, worker.WorkItem{
				Game:  result.Children[i],
				ID:    child.ID,
				Depth: result.Item.Depth + 1,
			})
		}
	}

	if firstErr != nil {
		return nil, 0, firstErr
	}
	return next, created, nil
}
