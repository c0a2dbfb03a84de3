package chess

import "fmt"

// Move is a source/destination pair plus an optional promotion kind. It
// fully determines the next position together with the position it is
// applied to. The canonical string form ("e2e4", "e7e8q") exists only at
// the boundary; comparisons happen on the value.
type Move struct {
	From, To  Square
	Promotion PieceKind // NoKind unless a promoting pawn move
}

// ParseMove parses four- or five-character move notation: source square,
// destination square and an optional lowercase promotion letter.
func ParseMove(notation string) (Move, error) {
	if len(notation) != 4 && len(notation) != 5 {
		return Move{}, fmt.Errorf("%w: move %q", ErrMalformedSquare, notation)
	}
	from, err := SquareFromNotation(notation[:2])
	if err != nil {
		return Move{}, err
	}
	to, err := SquareFromNotation(notation[2:4])
	if err != nil {
		return Move{}, err
	}
	m := Move{From: from, To: to}
	if len(notation) == 5 {
		kind, ok := promotionKind(notation[4])
		if !ok {
			return Move{}, fmt.Errorf("%w: promotion piece %q in %q", ErrMalformedSquare, notation[4], notation)
		}
		m.Promotion = kind
	}
	return m, nil
}

// String renders the canonical notation ParseMove accepts.
func (m Move) String() string {
	s := m.From.Notation() + m.To.Notation()
	if m.Promotion != NoKind {
		s += string(promotionChar(m.Promotion))
	}
	return s
}
