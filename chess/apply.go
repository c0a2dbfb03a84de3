package chess

import "fmt"

// Apply derives the position after playing m. The move must be a member
// of LegalMoves(p); anything else is rejected with ErrIllegalMove. A move
// is never partially applied: either a full new position comes back, or
// the error does.
func Apply(p Position, m Move) (Position, error) {
	if !moveIsLegal(p, m) {
		return Position{}, fmt.Errorf("%w: %s", ErrIllegalMove, m)
	}
	return applyUnchecked(p, m), nil
}

func moveIsLegal(p Position, m Move) bool {
	for _, legal := range LegalMoves(p) {
		if legal == m {
			return true
		}
	}
	return false
}

// applyUnchecked derives the next position assuming m is legal.
func applyUnchecked(p Position, m Move) Position {
	mover := p.Board.At(m.From)
	capture := !p.Board.At(m.To).IsEmpty()

	next := p
	next.Board = p.Board.apply(m)
	next.Turn = p.Turn.Opposite()
	next.Castling = narrowCastling(p.Castling, p.Board, m)

	next.EnPassant = NoSquare
	if mover.Kind == Pawn && (m.To.Row-m.From.Row == 2 || m.From.Row-m.To.Row == 2) {
		next.EnPassant = Square{Row: (m.From.Row + m.To.Row) / 2, Col: m.From.Col}
	}

	if mover.Kind == Pawn || capture {
		next.HalfmoveClock = 0
	} else {
		next.HalfmoveClock = p.HalfmoveClock + 1
	}
	if p.Turn == Black {
		next.FullmoveNumber = p.FullmoveNumber + 1
	}
	return next
}

// apply plays the move on the board alone: piece relocation, promotion
// substitution, en passant victim removal and rook relocation on a
// two-square king move. The receiver is a value, so the caller's board is
// untouched; the legality filter runs candidates through this step too.
func (b Board) apply(m Move) Board {
	mover := b.At(m.From)

	// A pawn landing diagonally on an empty square is capturing en
	// passant; the victim sits on the source rank in the target file.
	if mover.Kind == Pawn && m.From.Col != m.To.Col && b.At(m.To).IsEmpty() {
		b[m.From.Row][m.To.Col] = Piece{}
	}

	b[m.From.Row][m.From.Col] = Piece{}
	placed := mover
	if m.Promotion != NoKind {
		placed = Piece{Kind: m.Promotion, Color: mover.Color}
	}
	b[m.To.Row][m.To.Col] = placed

	if mover.Kind == King && abs(m.To.Col-m.From.Col) == 2 {
		switch m.To.Col {
		case 6:
			b[m.To.Row][5] = b[m.To.Row][7]
			b[m.To.Row][7] = Piece{}
		case 2:
			b[m.To.Row][3] = b[m.To.Row][0]
			b[m.To.Row][0] = Piece{}
		}
	}
	return b
}

// narrowCastling clears rights lost by m: a king leaving its home square
// drops both of its color's rights, and a rook leaving its home corner, or
// being captured on it, drops that single right. Rights are never restored.
func narrowCastling(rights CastlingRights, b Board, m Move) CastlingRights {
	if mover := b.At(m.From); mover.Kind == King {
		if mover.Color == White {
			rights &^= WhiteKingside | WhiteQueenside
		} else {
			rights &^= BlackKingside | BlackQueenside
		}
	}
	for _, sq := range []Square{m.From, m.To} {
		switch sq {
		case Square{Row: 7, Col: 0}:
			rights &^= WhiteQueenside
		case Square{Row: 7, Col: 7}:
			rights &^= WhiteKingside
		case Square{Row: 0, Col: 0}:
			rights &^= BlackQueenside
		case Square{Row: 0, Col: 7}:
			rights &^= BlackKingside
		}
	}
	return rights
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
