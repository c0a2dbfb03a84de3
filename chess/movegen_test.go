package chess

import (
	"sort"
	"testing"

	"github.com/Sahil-Chhoker/chess-engine/internal/testutil"
)

func TestInitialPositionMoveCount(t *testing.T) {
	p := StartingPosition()
	moves := LegalMoves(p)
	if len(moves) != 20 {
		t.Fatalf("initial position has %d legal moves, want 20: %v", len(moves), moveStrings(moves))
	}

	pawnMoves, knightMoves := 0, 0
	for _, m := range moves {
		switch p.Board.At(m.From).Kind {
		case Pawn:
			pawnMoves++
		case Knight:
			knightMoves++
		default:
			t.Errorf("unexpected mover for %s", m)
		}
	}
	testutil.AssertEqual(t, pawnMoves, 16, "pawn moves")
	testutil.AssertEqual(t, knightMoves, 4, "knight moves")
}

func TestPawnDoublePushRequiresEmptyPath(t *testing.T) {
	blocked := Position{
		Board: mustBoard(t, [8]string{
			"    k   ",
			"        ",
			"        ",
			"        ",
			"        ",
			"    N   ",
			"    P   ",
			"    K   ",
		}),
		Turn:      White,
		EnPassant: NoSquare,
	}
	if got := LegalMovesFrom(blocked, mustSquare(t, "e2")); len(got) != 0 {
		t.Errorf("blocked pawn should have no moves, got %v", moveStrings(got))
	}

	// Off the home rank there is no double push.
	advanced := Position{
		Board: mustBoard(t, [8]string{
			"    k   ",
			"        ",
			"        ",
			"        ",
			"        ",
			"    P   ",
			"        ",
			"    K   ",
		}),
		Turn:      White,
		EnPassant: NoSquare,
	}
	got := moveStrings(LegalMovesFrom(advanced, mustSquare(t, "e3")))
	testutil.AssertEqual(t, got, []string{"e3e4"})
}

func TestPawnPromotionExpansion(t *testing.T) {
	p := Position{
		Board: mustBoard(t, [8]string{
			"    k   ",
			"P       ",
			"        ",
			"        ",
			"        ",
			"        ",
			"        ",
			"    K   ",
		}),
		Turn:      White,
		EnPassant: NoSquare,
	}
	got := moveStrings(LegalMovesFrom(p, mustSquare(t, "a7")))
	sort.Strings(got)
	testutil.AssertEqual(t, got, []string{"a7a8b", "a7a8n", "a7a8q", "a7a8r"})
}

func TestPawnCapturePromotion(t *testing.T) {
	p := Position{
		Board: mustBoard(t, [8]string{
			" r  k   ",
			"P       ",
			"        ",
			"        ",
			"        ",
			"        ",
			"        ",
			"    K   ",
		}),
		Turn:      White,
		EnPassant: NoSquare,
	}
	got := moveStrings(LegalMovesFrom(p, mustSquare(t, "a7")))
	sort.Strings(got)
	want := []string{
		"a7a8b", "a7a8n", "a7a8q", "a7a8r",
		"a7b8b", "a7b8n", "a7b8q", "a7b8r",
	}
	testutil.AssertEqual(t, got, want)
}

func TestKnightInCorner(t *testing.T) {
	p := Position{
		Board: mustBoard(t, [8]string{
			"    k   ",
			"        ",
			"        ",
			"        ",
			"        ",
			"        ",
			"        ",
			"N   K   ",
		}),
		Turn:      White,
		EnPassant: NoSquare,
	}
	got := moveStrings(LegalMovesFrom(p, mustSquare(t, "a1")))
	sort.Strings(got)
	testutil.AssertEqual(t, got, []string{"a1b3", "a1c2"})
}

func TestSliderStopsAtCaptures(t *testing.T) {
	p := Position{
		Board: mustBoard(t, [8]string{
			"    k   ",
			"        ",
			"        ",
			"   r    ",
			"        ",
			"   P    ",
			"        ",
			"    K   ",
		}),
		Turn:      Black,
		EnPassant: NoSquare,
	}
	got := moveStrings(LegalMovesFrom(p, mustSquare(t, "d5")))
	sort.Strings(got)
	want := []string{
		"d5a5", "d5b5", "d5c5",
		"d5d3", // capture ends the ray
		"d5d4",
		"d5d6", "d5d7", "d5d8",
		"d5e5", "d5f5", "d5g5", "d5h5",
	}
	testutil.AssertEqual(t, got, want)
}

func TestCastlingGeneration(t *testing.T) {
	base := Position{
		Board: mustBoard(t, [8]string{
			"r   k  r",
			"        ",
			"        ",
			"        ",
			"        ",
			"        ",
			"        ",
			"R   K  R",
		}),
		Turn:      White,
		Castling:  AllCastlingRights,
		EnPassant: NoSquare,
	}
	moves := LegalMoves(base)
	for _, notation := range []string{"e1g1", "e1c1"} {
		if !containsMove(moves, mustMove(t, notation)) {
			t.Errorf("expected %s in legal moves", notation)
		}
	}

	// Without the right, the same geometry yields no castle.
	noRights := base
	noRights.Castling = BlackKingside | BlackQueenside
	moves = LegalMoves(noRights)
	for _, notation := range []string{"e1g1", "e1c1"} {
		if containsMove(moves, mustMove(t, notation)) {
			t.Errorf("castle %s generated without the right", notation)
		}
	}

	black := base
	black.Turn = Black
	moves = LegalMoves(black)
	for _, notation := range []string{"e8g8", "e8c8"} {
		if !containsMove(moves, mustMove(t, notation)) {
			t.Errorf("expected %s in legal moves", notation)
		}
	}
}

func TestCastlingBlockedByAttacks(t *testing.T) {
	// A black rook on f8 covers f1, the square the king crosses
	// kingside. Queenside is unaffected.
	p := Position{
		Board: mustBoard(t, [8]string{
			"     r k",
			"        ",
			"        ",
			"        ",
			"        ",
			"        ",
			"        ",
			"R   K  R",
		}),
		Turn:      White,
		Castling:  WhiteKingside | WhiteQueenside,
		EnPassant: NoSquare,
	}
	moves := LegalMoves(p)
	if containsMove(moves, mustMove(t, "e1g1")) {
		t.Error("kingside castle generated through an attacked square")
	}
	if !containsMove(moves, mustMove(t, "e1c1")) {
		t.Error("queenside castle should still be available")
	}

	// A king in check cannot castle either way.
	inCheck := p
	inCheck.Board = mustBoard(t, [8]string{
		"    r  k",
		"        ",
		"        ",
		"        ",
		"        ",
		"        ",
		"        ",
		"R   K  R",
	})
	moves = LegalMoves(inCheck)
	if containsMove(moves, mustMove(t, "e1g1")) || containsMove(moves, mustMove(t, "e1c1")) {
		t.Error("castle generated while in check")
	}
}

func TestCastlingRequiresEmptyPath(t *testing.T) {
	p := StartingPosition()
	moves := LegalMoves(p)
	if containsMove(moves, mustMove(t, "e1g1")) || containsMove(moves, mustMove(t, "e1c1")) {
		t.Error("castle generated through occupied squares")
	}
}

func TestEnPassantGeneration(t *testing.T) {
	p := playMoves(t, StartingPosition(), "e2e4", "a7a6", "e4e5", "d7d5")
	testutil.AssertEqual(t, p.EnPassant, mustSquare(t, "d6"), "en passant target")

	if !containsMove(LegalMoves(p), mustMove(t, "e5d6")) {
		t.Fatalf("expected e5d6 in legal moves: %v", moveStrings(LegalMoves(p)))
	}

	// The target only lives for one ply.
	later := playMoves(t, p, "b1c3", "a6a5")
	if containsMove(LegalMoves(later), mustMove(t, "e5d6")) {
		t.Error("en passant capture survived past its ply")
	}
}
