package engine

import (
	. "github.com/ChizhovVadim/OthelloGo/pkg/common"
)

const (
	valueDraw     = 0
	ValueWin      = 1_000_000
	ValueLoss     = -ValueWin
	ValueInfinity = ValueWin + 1
)

// RootCutoff is the cutoff that never prunes at the root of a search for
// side when player is the maximizing color.
func RootCutoff(player, side Color) int {
	if side == player {
		return ValueInfinity
	}
	return -ValueInfinity
}

// terminalScore scores a finished game from the player's point of view.
func terminalScore(p Position, player Color) int {
	var own, opp = p.Pieces(player)
	var nOwn, nOpp = PopCount(own), PopCount(opp)
	if nOwn > nOpp {
		return ValueWin
	}
	if nOwn < nOpp {
		return ValueLoss
	}
	return valueDraw
}
