package common

import (
	"testing"
)

func TestInitialMoves(t *testing.T) {
	var area = InitialPosition.ReversibleArea(Black)
	if PopCount(area) != 4 {
		t.Fatalf("got %v legal moves %v", PopCount(area), BitboardString(area))
	}
	var want = SquareMask(SquareD3) | SquareMask(SquareC4) |
		SquareMask(SquareF5) | SquareMask(SquareE6)
	if area != want {
		t.Errorf("got %v want %v", BitboardString(area), BitboardString(want))
	}
}

func TestSingleFlip(t *testing.T) {
	var b = NewBoard()
	var p = b.Play(Black, SquareC4)
	if p.White != SquareMask(SquareE5) {
		t.Errorf("white %v", BitboardString(p.White))
	}
	if p.Black&SquareMask(SquareD4) == 0 {
		t.Error("d4 not flipped")
	}
	var nBlack, nWhite = p.CountDisks()
	if nBlack != 4 || nWhite != 1 {
		t.Errorf("counts %v %v", nBlack, nWhite)
	}
}

func TestIsReversible(t *testing.T) {
	for _, p := range randomPositions(4, 10) {
		var b = NewBoardFrom(p)
		for _, side := range []Color{Black, White} {
			var area = ReversibleArea(side, p.Black, p.White)
			for sq := 0; sq < 64; sq++ {
				if b.IsReversible(side, sq) != (area&SquareMask(sq) != 0) {
					t.Fatalf("%v %v %v", p, side, SquareName(sq))
				}
			}
		}
	}
}

func TestInvariants(t *testing.T) {
	for _, p := range randomPositions(5, 30) {
		if p.Black&p.White != 0 {
			t.Fatalf("overlap %v", p)
		}
		var nBlack, nWhite = p.CountDisks()
		if nBlack+nWhite+PopCount(p.Empty()) != 64 {
			t.Fatalf("cells %v", p)
		}
	}
}

func TestApplyMoveUncommitted(t *testing.T) {
	var b = NewBoard()
	var child = b.ApplyMove(Black, SquareC4, b.Position(), false)
	if child == InitialPosition {
		t.Fatal("move not applied")
	}
	if b.Position() != InitialPosition || b.HistoryLen() != 0 {
		t.Error("uncommitted move changed the board")
	}
}

func TestUndoRedo(t *testing.T) {
	var b = NewBoard()
	var side = Black
	for _, s := range []string{"c4", "c5", "d6", "c3"} {
		var sq, err = ParseSquare(s)
		if err != nil {
			t.Fatal(err)
		}
		if !b.IsReversible(side, sq) {
			t.Fatalf("%v not legal for %v", s, side)
		}
		b.Play(side, sq)
		side = side.Opposite()
	}
	var before = b.Position()

	if steps := b.Undo(); steps != 2 {
		t.Fatalf("undo steps %v", steps)
	}
	if b.HistoryLen() != 2 || b.RedoLen() != 2 {
		t.Fatalf("history %v redo %v", b.HistoryLen(), b.RedoLen())
	}
	if steps := b.Redo(); steps != 2 {
		t.Fatalf("redo steps %v", steps)
	}
	if b.Position() != before {
		t.Errorf("got %v want %v", b.Position(), before)
	}
	if steps := b.Redo(); steps != 0 {
		t.Errorf("redo on empty log %v", steps)
	}
}

func TestUndoSingleMove(t *testing.T) {
	var b = NewBoard()
	var after = b.Play(Black, SquareE6)
	if steps := b.Undo(); steps != 1 {
		t.Fatalf("undo steps %v", steps)
	}
	if b.Position() != InitialPosition {
		t.Fatalf("got %v", b.Position())
	}
	if steps := b.Undo(); steps != 0 {
		t.Fatalf("undo past start %v", steps)
	}
	b.Redo()
	if b.Position() != after {
		t.Errorf("got %v want %v", b.Position(), after)
	}
}

func TestPlayClearsRedo(t *testing.T) {
	var b = NewBoard()
	b.Play(Black, SquareE6)
	b.Play(White, SquareF6)
	b.Undo()
	b.Play(Black, SquareC4)
	if b.RedoLen() != 0 {
		t.Errorf("redo log %v", b.RedoLen())
	}
}

func TestState(t *testing.T) {
	var b = NewBoard()
	b.Play(Black, SquareE6)
	b.Play(White, SquareF6)
	b.Undo()
	var state = b.State()

	var other = NewBoard()
	other.LoadState(state)
	if other.Position() != b.Position() || other.RedoLen() != 2 {
		t.Fatalf("got %v", other.State())
	}
	other.Redo()
	b.Redo()
	if other.Position() != b.Position() {
		t.Error("redo diverged")
	}
}

func TestParsePosition(t *testing.T) {
	var p, err = ParsePosition(InitialPosition.String())
	if err != nil {
		t.Fatal(err)
	}
	if p != InitialPosition {
		t.Errorf("got %v", p)
	}
	if _, err := ParsePosition("XO"); err == nil {
		t.Error("short position accepted")
	}
}
