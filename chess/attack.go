package chess

// Direction and offset tables shared by the attack probes and the move
// generators. Deltas are (row, col) steps.
var (
	rookDirs      = []Square{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}
	bishopDirs    = []Square{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	knightOffsets = []Square{{2, 1}, {2, -1}, {-2, 1}, {-2, -1}, {1, 2}, {1, -2}, {-1, 2}, {-1, -2}}
	kingOffsets   = []Square{{0, 1}, {0, -1}, {1, 0}, {-1, 0}, {1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
)

// SquareAttacked reports whether any piece of the given color attacks sq.
// It probes pawn capture offsets, knight jumps, orthogonal and diagonal
// rays (stopping at the first occupied square) and adjacent kings; any
// single attacker suffices.
func (b Board) SquareAttacked(sq Square, by Color) bool {
	// White pawns capture toward row 0, so a white attacker sits one row
	// below the target; black attackers one row above.
	pawnRow := sq.Row - 1
	if by == White {
		pawnRow = sq.Row + 1
	}
	for _, dc := range []int{-1, 1} {
		from := Square{Row: pawnRow, Col: sq.Col + dc}
		if from.valid() && b.At(from) == (Piece{Kind: Pawn, Color: by}) {
			return true
		}
	}

	for _, off := range knightOffsets {
		from := Square{Row: sq.Row + off.Row, Col: sq.Col + off.Col}
		if from.valid() && b.At(from) == (Piece{Kind: Knight, Color: by}) {
			return true
		}
	}

	for _, dir := range rookDirs {
		from := Square{Row: sq.Row + dir.Row, Col: sq.Col + dir.Col}
		for from.valid() {
			if piece := b.At(from); !piece.IsEmpty() {
				if piece.Color == by && (piece.Kind == Rook || piece.Kind == Queen) {
					return true
				}
				break
			}
			from = Square{Row: from.Row + dir.Row, Col: from.Col + dir.Col}
		}
	}

	for _, dir := range bishopDirs {
		from := Square{Row: sq.Row + dir.Row, Col: sq.Col + dir.Col}
		for from.valid() {
			if piece := b.At(from); !piece.IsEmpty() {
				if piece.Color == by && (piece.Kind == Bishop || piece.Kind == Queen) {
					return true
				}
				break
			}
			from = Square{Row: from.Row + dir.Row, Col: from.Col + dir.Col}
		}
	}

	for _, off := range kingOffsets {
		from := Square{Row: sq.Row + off.Row, Col: sq.Col + off.Col}
		if from.valid() && b.At(from) == (Piece{Kind: King, Color: by}) {
			return true
		}
	}

	return false
}

// KingInCheck reports whether the king of the given color is attacked.
// A board without that king reports false; the engine assumes both kings
// are always present.
func (b Board) KingInCheck(c Color) bool {
	sq, ok := b.findKing(c)
	if !ok {
		return false
	}
	return b.SquareAttacked(sq, c.Opposite())
}
