package chess

// LegalMoves returns every legal move for the side to move: pseudo-legal
// moves from all own pieces plus en passant and castling, minus anything
// that leaves the mover's own king attacked. This is the single legality
// oracle; the returned order is unspecified.
func LegalMoves(p Position) []Move {
	moves := []Move{}
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			from := Square{Row: r, Col: c}
			piece := p.Board.At(from)
			if piece.IsEmpty() || piece.Color != p.Turn {
				continue
			}
			moves = append(moves, pseudoMoves(p.Board, from)...)
			if piece.Kind == Pawn {
				moves = append(moves, enPassantMoves(p, from)...)
			}
		}
	}
	moves = append(moves, castleMoves(p)...)

	legal := moves[:0]
	for _, m := range moves {
		if scratch := p.Board.apply(m); !scratch.KingInCheck(p.Turn) {
			legal = append(legal, m)
		}
	}
	return legal
}

// LegalMovesFrom filters LegalMoves down to the moves starting on from,
// for "show destinations for this piece" callers.
func LegalMovesFrom(p Position, from Square) []Move {
	moves := []Move{}
	for _, m := range LegalMoves(p) {
		if m.From == from {
			moves = append(moves, m)
		}
	}
	return moves
}
