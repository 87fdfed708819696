package engine

import (
	. "github.com/ChizhovVadim/OthelloGo/pkg/common"
)

const (
	phaseOpening = iota
	phaseLate
)

// Cell weights in square order a1..h8. The opening table is used while no
// disk touches the border ring.
var weights = [2][64]int{
	{
		30, -12, 0, -1, -1, 0, -12, 30,
		-12, -15, -3, -3, -3, -3, -15, -12,
		0, -3, 0, -1, -1, 0, -3, 0,
		-1, -3, -1, -1, -1, -1, -3, -1,
		-1, -3, -1, -1, -1, -1, -3, -1,
		0, -3, 0, -1, -1, 0, -3, 0,
		-12, -15, -3, -3, -3, -3, -15, -12,
		30, -12, 0, -1, -1, 0, -12, 30,
	},
	{
		120, -20, 20, 5, 5, 20, -20, 120,
		-20, -40, -5, -5, -5, -5, -40, -20,
		20, -5, 15, 3, 3, 15, -5, 20,
		5, -5, 3, 3, 3, 3, -5, 5,
		5, -5, 3, 3, 3, 3, -5, 5,
		20, -5, 15, 3, 3, 15, -5, 20,
		-20, -40, -5, -5, -5, -5, -40, -20,
		120, -20, 20, 5, 5, 20, -20, 120,
	},
}

func phase(p Position) int {
	if (p.Black|p.White)&BorderRing != 0 {
		return phaseLate
	}
	return phaseOpening
}

// Evaluate is the static score of p for player: the weights of the
// opponent's disks minus the weights of the player's disks.
func Evaluate(p Position, player Color) int {
	var table = &weights[phase(p)]
	var own, opp = p.Pieces(player)
	var score = 0
	for x := opp; x != 0; x &= x - 1 {
		score += table[FirstOne(x)]
	}
	for x := own; x != 0; x &= x - 1 {
		score -= table[FirstOne(x)]
	}
	return score
}
