package common

import (
	"math/rand"
	"testing"
)

// slowFlips walks rows and columns directly, it is obviously correct and
// obviously slow.
func slowFlips(own, opp uint64, sq int) uint64 {
	var result uint64
	for dr := -1; dr <= 1; dr++ {
		for df := -1; df <= 1; df++ {
			if dr == 0 && df == 0 {
				continue
			}
			var run uint64
			var r, f = Rank(sq) + dr, File(sq) + df
			for r >= 0 && r < 8 && f >= 0 && f < 8 && opp&SquareMask(MakeSquare(f, r)) != 0 {
				run |= SquareMask(MakeSquare(f, r))
				r += dr
				f += df
			}
			if r >= 0 && r < 8 && f >= 0 && f < 8 && own&SquareMask(MakeSquare(f, r)) != 0 {
				result |= run
			}
		}
	}
	return result
}

func slowReversibleArea(side Color, p Position) uint64 {
	var own, opp = p.Pieces(side)
	var result uint64
	for sq := 0; sq < 64; sq++ {
		if p.Empty()&SquareMask(sq) == 0 {
			continue
		}
		if slowFlips(own, opp, sq) != 0 {
			result |= SquareMask(sq)
		}
	}
	return result
}

func randomPositions(seed int64, games int) []Position {
	var rnd = rand.New(rand.NewSource(seed))
	var result []Position
	for g := 0; g < games; g++ {
		var p = InitialPosition
		var side = Black
		for !p.IsTerminal() {
			result = append(result, p)
			var moves = Squares(p.ReversibleArea(side))
			if len(moves) != 0 {
				p = p.MakeMove(side, moves[rnd.Intn(len(moves))])
			}
			side = side.Opposite()
		}
		result = append(result, p)
	}
	return result
}

func TestReversibleAreaMatchesSlow(t *testing.T) {
	for _, p := range randomPositions(1, 50) {
		for _, side := range []Color{Black, White} {
			var got = p.ReversibleArea(side)
			var want = slowReversibleArea(side, p)
			if got != want {
				t.Fatalf("%v %v: got %v want %v", p, side, BitboardString(got), BitboardString(want))
			}
		}
	}
}

func TestFlipsMatchesSlow(t *testing.T) {
	for _, p := range randomPositions(2, 50) {
		for _, side := range []Color{Black, White} {
			var own, opp = p.Pieces(side)
			for _, sq := range Squares(p.ReversibleArea(side)) {
				var got = Flips(own, opp, sq)
				var want = slowFlips(own, opp, sq)
				if got != want {
					t.Fatalf("%v %v %v: got %v want %v", p, side, SquareName(sq),
						BitboardString(got), BitboardString(want))
				}
			}
		}
	}
}

func TestReversibleAreaNoWrap(t *testing.T) {
	tests := []struct {
		name string
		pos  string
		side Color
		want uint64
	}{
		{
			// black on h1, white on a2: shifting h1 by one file must not reach a2.
			name: "row wrap",
			pos: "-------X/" +
				"OO------/" +
				"--------/" +
				"--------/" +
				"--------/" +
				"--------/" +
				"--------/" +
				"--------",
			side: Black,
			want: 0,
		},
		{
			name: "diagonal wrap",
			pos: "X-------/" +
				"--------/" +
				"--------/" +
				"--------/" +
				"--------/" +
				"--------/" +
				"--------/" +
				"-------O",
			side: Black,
			want: 0,
		},
		{
			name: "simple row",
			pos: "XO------/" +
				"--------/" +
				"--------/" +
				"--------/" +
				"--------/" +
				"--------/" +
				"--------/" +
				"--------",
			side: Black,
			want: SquareMask(SquareC1),
		},
		{
			name: "long diagonal",
			pos: "X-------/" +
				"-O------/" +
				"--O-----/" +
				"---O----/" +
				"----O---/" +
				"-----O--/" +
				"------O-/" +
				"--------",
			side: Black,
			want: SquareMask(SquareH8),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p, err = ParsePosition(tt.pos)
			if err != nil {
				t.Fatal(err)
			}
			if got := p.ReversibleArea(tt.side); got != tt.want {
				t.Errorf("ReversibleArea() = %v, want %v", BitboardString(got), BitboardString(tt.want))
			}
		})
	}
}

func TestReversibleAreaPure(t *testing.T) {
	var black, white = InitialBlack, InitialWhite
	var first = ReversibleArea(Black, black, white)
	for i := 0; i < 10; i++ {
		if got := ReversibleArea(Black, black, white); got != first {
			t.Fatalf("call %v: %x != %x", i, got, first)
		}
	}
	if black != InitialBlack || white != InitialWhite {
		t.Error("inputs changed")
	}
}
