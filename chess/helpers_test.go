package chess

import "testing"

func mustBoard(t *testing.T, ranks [8]string) Board {
	t.Helper()
	b, err := BoardFromStrings(ranks)
	if err != nil {
		t.Fatalf("bad board fixture: %v", err)
	}
	return b
}

func mustMove(t *testing.T, notation string) Move {
	t.Helper()
	m, err := ParseMove(notation)
	if err != nil {
		t.Fatalf("bad move fixture %q: %v", notation, err)
	}
	return m
}

func mustSquare(t *testing.T, label string) Square {
	t.Helper()
	sq, err := SquareFromNotation(label)
	if err != nil {
		t.Fatalf("bad square fixture %q: %v", label, err)
	}
	return sq
}

// playMoves applies a sequence of moves in notation, failing the test on
// the first illegal one.
func playMoves(t *testing.T, p Position, notations ...string) Position {
	t.Helper()
	for _, n := range notations {
		next, err := Apply(p, mustMove(t, n))
		if err != nil {
			t.Fatalf("move %q: %v", n, err)
		}
		p = next
	}
	return p
}

func containsMove(moves []Move, m Move) bool {
	for _, have := range moves {
		if have == m {
			return true
		}
	}
	return false
}

func moveStrings(moves []Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	return out
}
