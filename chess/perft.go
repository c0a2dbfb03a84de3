package chess

import "golang.org/x/sync/errgroup"

// Perft counts the leaf nodes of the legal-move tree to the given depth.
// The node counts for well-known positions are published, which makes
// this the standard correctness check for a move generator.
func Perft(p Position, depth int) int {
	if depth <= 0 {
		return 1
	}
	moves := LegalMoves(p)
	if depth == 1 {
		return len(moves)
	}
	nodes := 0
	for _, m := range moves {
		nodes += Perft(applyUnchecked(p, m), depth-1)
	}
	return nodes
}

// PerftParallel splits the root moves across goroutines. Positions are
// values, so the subtrees share nothing and need no locking.
func PerftParallel(p Position, depth int) int {
	if depth <= 1 {
		return Perft(p, depth)
	}
	moves := LegalMoves(p)
	counts := make([]int, len(moves))
	var g errgroup.Group
	for i, m := range moves {
		i, m := i, m
		g.Go(func() error {
			counts[i] = Perft(applyUnchecked(p, m), depth-1)
			return nil
		})
	}
	_ = g.Wait() // workers never error
	nodes := 0
	for _, n := range counts {
		nodes += n
	}
	return nodes
}
