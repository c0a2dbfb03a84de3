package chess

// pseudoMoves generates the geometrically valid moves for the piece on
// from, ignoring whether the mover's king ends up attacked. En passant
// and castling consult position state beyond the board and live in their
// own generators.
func pseudoMoves(b Board, from Square) []Move {
	switch b.At(from).Kind {
	case Pawn:
		return pawnMoves(b, from)
	case Knight:
		return knightMoves(b, from)
	case Bishop:
		return bishopMoves(b, from)
	case Rook:
		return rookMoves(b, from)
	case Queen:
		return queenMoves(b, from)
	case King:
		return kingMoves(b, from)
	}
	return nil
}

func rookMoves(b Board, from Square) []Move {
	moves := []Move{}
	mover := b.At(from)
	for _, dir := range rookDirs {
		to := Square{Row: from.Row + dir.Row, Col: from.Col + dir.Col}
		for to.valid() {
			target := b.At(to)
			if !target.IsEmpty() {
				if target.Color != mover.Color {
					moves = append(moves, Move{From: from, To: to})
				}
				break
			}
			moves = append(moves, Move{From: from, To: to})
			to = Square{Row: to.Row + dir.Row, Col: to.Col + dir.Col}
		}
	}
	return moves
}

func bishopMoves(b Board, from Square) []Move {
	moves := []Move{}
	mover := b.At(from)
	for _, dir := range bishopDirs {
		to := Square{Row: from.Row + dir.Row, Col: from.Col + dir.Col}
		for to.valid() {
			target := b.At(to)
			if !target.IsEmpty() {
				if target.Color != mover.Color {
					moves = append(moves, Move{From: from, To: to})
				}
				break
			}
			moves = append(moves, Move{From: from, To: to})
			to = Square{Row: to.Row + dir.Row, Col: to.Col + dir.Col}
		}
	}
	return moves
}

func queenMoves(b Board, from Square) []Move {
	return append(rookMoves(b, from), bishopMoves(b, from)...)
}

func knightMoves(b Board, from Square) []Move {
	moves := []Move{}
	mover := b.At(from)
	for _, off := range knightOffsets {
		to := Square{Row: from.Row + off.Row, Col: from.Col + off.Col}
		if !to.valid() {
			continue
		}
		if target := b.At(to); target.IsEmpty() || target.Color != mover.Color {
			moves = append(moves, Move{From: from, To: to})
		}
	}
	return moves
}

func kingMoves(b Board, from Square) []Move {
	moves := []Move{}
	mover := b.At(from)
	for _, off := range kingOffsets {
		to := Square{Row: from.Row + off.Row, Col: from.Col + off.Col}
		if !to.valid() {
			continue
		}
		if target := b.At(to); target.IsEmpty() || target.Color != mover.Color {
			moves = append(moves, Move{From: from, To: to})
		}
	}
	return moves
}

func pawnMoves(b Board, from Square) []Move {
	moves := []Move{}
	mover := b.At(from)
	dir, homeRow := 1, 1
	if mover.Color == White {
		dir, homeRow = -1, 6
	}

	one := Square{Row: from.Row + dir, Col: from.Col}
	if one.valid() && b.At(one).IsEmpty() {
		moves = appendPawnMove(moves, mover.Color, Move{From: from, To: one})
		if from.Row == homeRow {
			two := Square{Row: from.Row + 2*dir, Col: from.Col}
			if b.At(two).IsEmpty() {
				moves = append(moves, Move{From: from, To: two})
			}
		}
	}

	for _, dc := range []int{-1, 1} {
		to := Square{Row: from.Row + dir, Col: from.Col + dc}
		if !to.valid() {
			continue
		}
		if target := b.At(to); !target.IsEmpty() && target.Color != mover.Color {
			moves = appendPawnMove(moves, mover.Color, Move{From: from, To: to})
		}
	}
	return moves
}

var promotionKinds = []PieceKind{Queen, Rook, Bishop, Knight}

// appendPawnMove appends m, expanding moves that land on the opponent's
// back rank into the four promotion variants.
func appendPawnMove(moves []Move, c Color, m Move) []Move {
	backRow := 7
	if c == White {
		backRow = 0
	}
	if m.To.Row != backRow {
		return append(moves, m)
	}
	for _, kind := range promotionKinds {
		m.Promotion = kind
		moves = append(moves, m)
	}
	return moves
}

// enPassantMoves emits the capture onto the position's en passant target
// if the pawn on from is adjacent to it. The captured pawn stands on the
// mover's rank in the target's file, not on the target square; Apply
// removes it there.
func enPassantMoves(p Position, from Square) []Move {
	if p.EnPassant == NoSquare {
		return nil
	}
	captureRow := 4 // black pawns capture en passant from row 4
	if p.Board.At(from).Color == White {
		captureRow = 3
	}
	if from.Row != captureRow {
		return nil
	}
	if from.Col-p.EnPassant.Col != 1 && p.EnPassant.Col-from.Col != 1 {
		return nil
	}
	return []Move{{From: from, To: p.EnPassant}}
}

// castleMoves emits the two-square king moves available to the side to
// move: the right must still be held, the rook must be on its corner, the
// squares between must be empty, and neither the king's square nor the
// squares it crosses or lands on may be attacked. Rook relocation is part
// of move application, not of the move itself.
func castleMoves(p Position) []Move {
	row := 0
	kingside, queenside := BlackKingside, BlackQueenside
	if p.Turn == White {
		row = 7
		kingside, queenside = WhiteKingside, WhiteQueenside
	}

	kingFrom := Square{Row: row, Col: 4}
	if p.Board.At(kingFrom) != (Piece{Kind: King, Color: p.Turn}) {
		return nil
	}
	enemy := p.Turn.Opposite()
	if p.Board.SquareAttacked(kingFrom, enemy) {
		return nil
	}

	moves := []Move{}
	if p.Castling.Has(kingside) &&
		p.Board.At(Square{Row: row, Col: 7}) == (Piece{Kind: Rook, Color: p.Turn}) &&
		p.Board.At(Square{Row: row, Col: 5}).IsEmpty() &&
		p.Board.At(Square{Row: row, Col: 6}).IsEmpty() &&
		!p.Board.SquareAttacked(Square{Row: row, Col: 5}, enemy) &&
		!p.Board.SquareAttacked(Square{Row: row, Col: 6}, enemy) {
		moves = append(moves, Move{From: kingFrom, To: Square{Row: row, Col: 6}})
	}
	if p.Castling.Has(queenside) &&
		p.Board.At(Square{Row: row, Col: 0}) == (Piece{Kind: Rook, Color: p.Turn}) &&
		p.Board.At(Square{Row: row, Col: 1}).IsEmpty() &&
		p.Board.At(Square{Row: row, Col: 2}).IsEmpty() &&
		p.Board.At(Square{Row: row, Col: 3}).IsEmpty() &&
		!p.Board.SquareAttacked(Square{Row: row, Col: 3}, enemy) &&
		!p.Board.SquareAttacked(Square{Row: row, Col: 2}, enemy) {
		moves = append(moves, Move{From: kingFrom, To: Square{Row: row, Col: 2}})
	}
	return moves
}
