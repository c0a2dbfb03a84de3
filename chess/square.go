package chess

import "fmt"

// Square is a board coordinate. Row 0 is rank 8 (black's back rank) and
// row 7 is rank 1; column 0 is the a-file. Both are in [0,8).
type Square struct {
	Row, Col int
}

// NoSquare marks the absence of a square, e.g. no en passant target.
var NoSquare = Square{Row: -1, Col: -1}

func (s Square) valid() bool {
	return s.Row >= 0 && s.Row < 8 && s.Col >= 0 && s.Col < 8
}

// Notation renders the square as a file/rank label like "e4".
func (s Square) Notation() string {
	return fmt.Sprintf("%c%c", byte('a'+s.Col), byte('8'-s.Row))
}

func (s Square) String() string { return s.Notation() }

// SquareFromNotation parses a two-character file/rank label like "e4".
// It is the exact inverse of Notation.
func SquareFromNotation(label string) (Square, error) {
	if len(label) != 2 {
		return NoSquare, fmt.Errorf("%w: %q", ErrMalformedSquare, label)
	}
	file, rank := label[0], label[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return NoSquare, fmt.Errorf("%w: %q", ErrMalformedSquare, label)
	}
	return Square{Row: int('8' - rank), Col: int(file - 'a')}, nil
}
