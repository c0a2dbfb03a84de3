package chess

// IsCheckmate reports whether the side to move is in check with no legal
// reply.
func IsCheckmate(p Position) bool {
	return p.Board.KingInCheck(p.Turn) && len(LegalMoves(p)) == 0
}

// IsStalemate reports whether the side to move has no legal move while
// not in check.
func IsStalemate(p Position) bool {
	return !p.Board.KingInCheck(p.Turn) && len(LegalMoves(p)) == 0
}

// IsInsufficientMaterial reports the material draws this engine claims:
// bare kings, a single minor piece, or exactly two bishops standing on
// same-colored squares. Other known drawn endings are not claimed.
func IsInsufficientMaterial(p Position) bool {
	var rest []Square
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			piece := p.Board[r][c]
			if piece.IsEmpty() || piece.Kind == King {
				continue
			}
			if piece.Kind != Knight && piece.Kind != Bishop {
				return false
			}
			rest = append(rest, Square{Row: r, Col: c})
		}
	}
	switch len(rest) {
	case 0, 1:
		return true
	case 2:
		if p.Board.At(rest[0]).Kind != Bishop || p.Board.At(rest[1]).Kind != Bishop {
			return false
		}
		return (rest[0].Row+rest[0].Col)%2 == (rest[1].Row+rest[1].Col)%2
	}
	return false
}

// IsFiftyMoveDraw reports whether a hundred halfmoves have passed since
// the last pawn move or capture.
func IsFiftyMoveDraw(p Position) bool {
	return p.HalfmoveClock >= 100
}
