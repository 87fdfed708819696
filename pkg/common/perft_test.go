package common

import (
	"testing"
)

// http://www.aartbik.com/MISC/reversi.html
func TestPerft(t *testing.T) {
	var tests = []struct {
		depth int
		nodes int
	}{
		{1, 4},
		{2, 12},
		{3, 56},
		{4, 244},
		{5, 1396},
		{6, 8200},
		{7, 55092},
	}
	for _, test := range tests {
		var nodes = Perft(InitialPosition, Black, test.depth)
		if nodes != test.nodes {
			t.Error(test, nodes)
		}
	}
}

// Perft counts leaves, a forced pass counts as a move.
func Perft(p Position, side Color, depth int) int {
	var moves = p.ReversibleArea(side)
	if moves == 0 {
		if !p.TurnPlayable(side.Opposite()) {
			return 1
		}
		if depth == 1 {
			return 1
		}
		return Perft(p, side.Opposite(), depth-1)
	}
	if depth == 1 {
		return PopCount(moves)
	}
	var result = 0
	for x := moves; x != 0; x &= x - 1 {
		result += Perft(p.MakeMove(side, FirstOne(x)), side.Opposite(), depth-1)
	}
	return result
}
