package chess

import (
	"fmt"
	"strings"
)

// Board is an 8x8 grid of pieces. It is a plain value: assignment copies
// the whole grid, so applying a move never disturbs earlier positions.
type Board [8][8]Piece

var startingRanks = [8]string{
	"rnbqkbnr", // 8
	"pppppppp", // 7
	"        ", // 6
	"        ", // 5
	"        ", // 4
	"        ", // 3
	"PPPPPPPP", // 2
	"RNBQKBNR", // 1
}

// StartingBoard returns the standard initial piece placement.
func StartingBoard() Board {
	b, err := BoardFromStrings(startingRanks)
	if err != nil {
		panic(err)
	}
	return b
}

// BoardFromStrings builds a board from eight rank strings, rank 8 first,
// over the Char piece alphabet.
func BoardFromStrings(ranks [8]string) (Board, error) {
	var b Board
	for r, rank := range ranks {
		if len(rank) != 8 {
			return Board{}, fmt.Errorf("rank %d: want 8 squares, got %d", 8-r, len(rank))
		}
		for c := 0; c < 8; c++ {
			piece, ok := PieceFromChar(rank[c])
			if !ok {
				return Board{}, fmt.Errorf("rank %d: unknown piece %q", 8-r, rank[c])
			}
			b[r][c] = piece
		}
	}
	return b, nil
}

// At returns the piece on the given square.
func (b Board) At(s Square) Piece {
	return b[s.Row][s.Col]
}

// Ranks serializes the board to eight rank strings, rank 8 first.
func (b Board) Ranks() [8]string {
	var ranks [8]string
	for r := 0; r < 8; r++ {
		var row [8]byte
		for c := 0; c < 8; c++ {
			row[c] = b[r][c].Char()
		}
		ranks[r] = string(row[:])
	}
	return ranks
}

func (b Board) String() string {
	ranks := b.Ranks()
	return strings.Join(ranks[:], "\n")
}

// findKing locates the king of the given color.
func (b Board) findKing(c Color) (Square, bool) {
	for r := 0; r < 8; r++ {
		for col := 0; col < 8; col++ {
			if b[r][col] == (Piece{Kind: King, Color: c}) {
				return Square{Row: r, Col: col}, true
			}
		}
	}
	return NoSquare, false
}
