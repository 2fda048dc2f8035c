package engine

import (
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// Perft counts the leaf nodes of the legal-move tree to the given depth.
// It is the standard correctness instrument for a move generator: the node
// counts for well-known positions are published and any generation bug
// shows up as a mismatch.
func Perft(p Position, depth int) int64 {
	if depth <= 0 {
		return 1
	}
	moves := LegalMoves(&p)
	if depth == 1 {
		return int64(len(moves))
	}
	var nodes int64
	for _, m := range moves {
		nodes += Perft(p.Apply(m), depth-1)
	}
	return nodes
}

// PerftParallel splits the root moves across goroutines, one subtree per
// root move. Positions are independent values, so the subtrees share no
// state and need no locking beyond the node counter.
func PerftParallel(p Position, depth int) int64 {
	if depth <= 1 {
		return Perft(p, depth)
	}
	var nodes atomic.Int64
	var g errgroup.Group
	for _, m := range LegalMoves(&p) {
		child := p.Apply(m)
		g.Go(func() error {
			nodes.Add(Perft(child, depth-1))
			return nil
		})
	}
	g.Wait()
	return nodes.Load()
}
