package chess

// Color is the side a piece belongs to.
type Color uint8

const (
	White Color = iota
	Black
)

func (c Color) Opposite() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// PieceKind is one of the six chess piece kinds. The zero value NoKind
// stands for an empty square.
type PieceKind uint8

const (
	NoKind PieceKind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// Piece is a kind/color pair. The zero value is the empty square.
type Piece struct {
	Kind  PieceKind
	Color Color
}

func (p Piece) IsEmpty() bool { return p.Kind == NoKind }

// EmptyChar is the serialized form of an empty square.
const EmptyChar = ' '

// Char serializes the piece to its one-character form: lowercase for
// black, uppercase for white, EmptyChar for an empty square. This is the
// wire and display encoding consumed by presentation layers.
func (p Piece) Char() byte {
	var ch byte
	switch p.Kind {
	case Pawn:
		ch = 'p'
	case Knight:
		ch = 'n'
	case Bishop:
		ch = 'b'
	case Rook:
		ch = 'r'
	case Queen:
		ch = 'q'
	case King:
		ch = 'k'
	default:
		return EmptyChar
	}
	if p.Color == White {
		ch -= 'a' - 'A'
	}
	return ch
}

// PieceFromChar inverts Char. The second result is false for characters
// outside the piece alphabet.
func PieceFromChar(ch byte) (Piece, bool) {
	if ch == EmptyChar {
		return Piece{}, true
	}
	color := Black
	if ch >= 'A' && ch <= 'Z' {
		color = White
		ch += 'a' - 'A'
	}
	var kind PieceKind
	switch ch {
	case 'p':
		kind = Pawn
	case 'n':
		kind = Knight
	case 'b':
		kind = Bishop
	case 'r':
		kind = Rook
	case 'q':
		kind = Queen
	case 'k':
		kind = King
	default:
		return Piece{}, false
	}
	return Piece{Kind: kind, Color: color}, true
}

// promotionKind maps a lowercase promotion letter to its piece kind.
func promotionKind(ch byte) (PieceKind, bool) {
	switch ch {
	case 'r':
		return Rook, true
	case 'n':
		return Knight, true
	case 'b':
		return Bishop, true
	case 'q':
		return Queen, true
	}
	return NoKind, false
}

func promotionChar(kind PieceKind) byte {
	switch kind {
	case Rook:
		return 'r'
	case Knight:
		return 'n'
	case Bishop:
		return 'b'
	case Queen:
		return 'q'
	}
	return '?'
}
