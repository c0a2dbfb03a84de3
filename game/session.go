package game

import (
	"github.com/Sahil-Chhoker/chess-engine/chess"
)

// record pairs a played move with the position it produced. Keeping the
// move alongside the position means the history never has to recover
// notation by diffing boards, which is ambiguous for castling and en
// passant. The first record holds the starting position and a zero move.
type record struct {
	move chess.Move
	pos  chess.Position
}

// Session owns a single game: the current position and every position
// that led to it. A session does no internal locking; it is meant to be
// owned by one goroutine, with any concurrent embedding (one session per
// client, say) serializing access around it.
type Session struct {
	ID      string
	history []record
}

// NewSession starts a session at the standard initial position.
func NewSession(id string) *Session {
	return &Session{
		ID:      id,
		history: []record{{pos: chess.StartingPosition()}},
	}
}

// Position returns the current position, the last entry in the history.
func (s *Session) Position() chess.Position {
	return s.history[len(s.history)-1].pos
}

// LegalMoves returns the canonical notation of every legal move in the
// current position. Order is unspecified.
func (s *Session) LegalMoves() []string {
	return notations(chess.LegalMoves(s.Position()))
}

// LegalMovesFrom returns the legal moves starting on the given square
// label, for showing the destinations of one piece.
func (s *Session) LegalMovesFrom(square string) ([]string, error) {
	from, err := chess.SquareFromNotation(square)
	if err != nil {
		return nil, err
	}
	return notations(chess.LegalMovesFrom(s.Position(), from)), nil
}

func notations(moves []chess.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	return out
}

// MakeMove plays a move, given in notation, against the current position
// and appends the result to the history. Malformed notation reports
// chess.ErrMalformedSquare, a move outside the legal set reports
// chess.ErrIllegalMove; in both cases the session is unchanged.
func (s *Session) MakeMove(notation string) (chess.Position, error) {
	move, err := chess.ParseMove(notation)
	if err != nil {
		return chess.Position{}, err
	}
	next, err := chess.Apply(s.Position(), move)
	if err != nil {
		return chess.Position{}, err
	}
	s.history = append(s.history, record{move: move, pos: next})
	return next, nil
}

// Undo pops the last move and reports whether anything was undone. The
// starting position is never discarded.
func (s *Session) Undo() bool {
	if len(s.history) <= 1 {
		return false
	}
	s.history = s.history[:len(s.history)-1]
	return true
}

// MoveHistory returns the notation of every move played, oldest first.
func (s *Session) MoveHistory() []string {
	out := make([]string, 0, len(s.history)-1)
	for _, rec := range s.history[1:] {
		out = append(out, rec.move.String())
	}
	return out
}

func (s *Session) IsCheckmate() bool { return chess.IsCheckmate(s.Position()) }

func (s *Session) IsStalemate() bool { return chess.IsStalemate(s.Position()) }

// IsDraw reports whether the current position is drawn by stalemate,
// insufficient material or the fifty-move rule.
func (s *Session) IsDraw() bool {
	p := s.Position()
	return chess.IsStalemate(p) || chess.IsInsufficientMaterial(p) || chess.IsFiftyMoveDraw(p)
}

// Snapshot is the JSON view of a session handed to presentation layers.
// The board serializes as eight rank strings, rank 8 first, over the
// one-character piece alphabet.
type Snapshot struct {
	ID              string    `json:"id"`
	Board           [8]string `json:"board"`
	Turn            string    `json:"turn"`
	IsCheck         bool      `json:"isCheck"`
	LegalMoves      []string  `json:"legalMoves"`
	EnPassantTarget string    `json:"enPassantTarget,omitempty"`
	MoveHistory     []string  `json:"moveHistory"`
	Resolve         string    `json:"resolve,omitempty"`
	HalfmoveClock   int       `json:"halfmoveClock"`
	FullmoveNumber  int       `json:"fullmoveNumber"`
}

// Snapshot renders the current state of the session.
func (s *Session) Snapshot() Snapshot {
	p := s.Position()
	snap := Snapshot{
		ID:             s.ID,
		Board:          p.Board.Ranks(),
		Turn:           p.Turn.String(),
		IsCheck:        p.Board.KingInCheck(p.Turn),
		LegalMoves:     s.LegalMoves(),
		MoveHistory:    s.MoveHistory(),
		HalfmoveClock:  p.HalfmoveClock,
		FullmoveNumber: p.FullmoveNumber,
	}
	if p.EnPassant != chess.NoSquare {
		snap.EnPassantTarget = p.EnPassant.Notation()
	}
	switch {
	case chess.IsCheckmate(p):
		snap.Resolve = "checkmate"
	case chess.IsStalemate(p):
		snap.Resolve = "stalemate"
	case chess.IsInsufficientMaterial(p) || chess.IsFiftyMoveDraw(p):
		snap.Resolve = "draw"
	}
	return snap
}
