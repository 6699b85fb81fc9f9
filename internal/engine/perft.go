package engine

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/lgbarn/checkers-go/internal/draughts"
)

// PerftCache stores subtree node counts keyed by position and depth.
// Implementations used with ParallelPerft must be safe for concurrent use.
type PerftCache interface {
	Lookup(pos *draughts.Position, depth int) (uint64, bool)
	Store(pos *draughts.Position, depth int, nodes uint64)
}

// Perft counts the leaf nodes of the legal-move tree of pos to the given
// depth. Each applied move is one ply, including a capture after which the
// same side moves again.
func Perft(pos *draughts.Position, depth int) uint64 {
	return perft(pos, depth, nil)
}

// PerftCached is Perft with subtree counts looked up in and stored to cache.
func PerftCached(pos *draughts.Position, depth int, cache PerftCache) uint64 {
	return perft(pos, depth, cache)
}

func perft(pos *draughts.Position, depth int, cache PerftCache) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := LegalMoves(pos)
	if depth == 1 {
		return uint64(len(moves))
	}
	if cache != nil {
		if nodes, ok := cache.Lookup(pos, depth); ok {
			return nodes
		}
	}

	var nodes uint64
	for _, m := range moves {
		child := play(pos, m)
		nodes += perft(&child, depth-1, cache)
	}

	if cache != nil {
		cache.Store(pos, depth, nodes)
	}
	return nodes
}

// DivideEntry is the subtree count below one root move.
type DivideEntry struct {
	Move  draughts.Move `json:"move"`
	Nodes uint64        `json:"nodes"`
}

// ParallelPerft computes the per-root-move counts of Perft, searching root
// moves concurrently on up to workers goroutines. Every goroutine works on
// its own child Position. The returned entries follow LegalMoves order.
// cache may be nil.
func ParallelPerft(ctx context.Context, pos *draughts.Position, depth, workers int, cache PerftCache) ([]DivideEntry, uint64, error) {
	if depth <= 0 {
		return nil, 1, nil
	}
	if workers < 1 {
		workers = 1
	}

	moves := LegalMoves(pos)
	entries := make([]DivideEntry, len(moves))
	var total uint64

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, m := range moves {
		i, m := i, m
		child := play(pos, m)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			nodes := perft(&child, depth-1, cache)
			entries[i] = DivideEntry{Move: m, Nodes: nodes}
			atomic.AddUint64(&total, nodes)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}
