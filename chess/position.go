package chess

// CastlingRights is a set over the four castling options. Rights are only
// ever lost over the course of a game, never regained.
type CastlingRights uint8

const (
	WhiteKingside CastlingRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside

	AllCastlingRights = WhiteKingside | WhiteQueenside | BlackKingside | BlackQueenside
)

func (r CastlingRights) Has(f CastlingRights) bool { return r&f != 0 }

// Position is a complete game state: piece placement, side to move,
// castling rights, en passant target and the move counters. It is an
// immutable value; Apply derives a new Position and leaves the old one
// intact, so history entries stay valid forever.
type Position struct {
	Board          Board
	Turn           Color
	Castling       CastlingRights
	EnPassant      Square // NoSquare when no target
	HalfmoveClock  int    // plies since the last pawn move or capture
	FullmoveNumber int
}

// StartingPosition returns the standard initial position, white to move.
func StartingPosition() Position {
	return Position{
		Board:          StartingBoard(),
		Turn:           White,
		Castling:       AllCastlingRights,
		EnPassant:      NoSquare,
		FullmoveNumber: 1,
	}
}
