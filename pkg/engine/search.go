package engine

import (
	. "github.com/ChizhovVadim/OthelloGo/pkg/common"
)

// main search method
//
// A node gets one bound from its parent, the parent's best score so far.
// A maximizing node gives up as soon as a child beats the bound, a
// minimizing node as soon as a child falls below it; either way the bound
// itself is returned and the node reports itself as cut. The true value of
// a cut node is strictly worse for the parent than the parent's best, so the
// parent skips it. Cut results are never cached.
func (e *Engine) minimax(p Position, side Color, depth, cutoff int) (score, move int, cut bool) {
	e.nodes++
	var key = TransKey{
		Black:  p.Black,
		White:  p.White,
		Player: e.Player,
		Turn:   side,
		Depth:  int8(depth),
	}
	if score, move, ok := e.transTable.Read(key); ok {
		e.cacheHits++
		return score, move, false
	}

	if depth <= 0 || p.IsTerminal() {
		return Evaluate(p, e.Player), SquareNone, false
	}

	var maximizing = side == e.Player
	var best int
	if maximizing {
		best = -ValueInfinity
	} else {
		best = ValueInfinity
	}

	var moves = p.ReversibleArea(side)
	if moves == 0 {
		// forced pass costs a ply like a move does
		score, _, _ = e.minimax(p, side.Opposite(), depth-1, best)
		return score, SquareNone, false
	}

	var bestMove = SquareNone
	var ties = 0
	for x := moves; x != 0; x &= x - 1 {
		var move = FirstOne(x)
		var child = p.MakeMove(side, move)
		var score int
		var childCut bool
		if child.IsTerminal() {
			score = terminalScore(child, e.Player)
		} else {
			score, _, childCut = e.minimax(child, side.Opposite(), depth-1, best)
		}

		if maximizing && score > cutoff ||
			!maximizing && score < cutoff {
			return cutoff, move, true
		}
		if childCut {
			continue
		}

		if maximizing && score > best ||
			!maximizing && score < best {
			best = score
			bestMove = move
			ties = 1
		} else if score == best {
			// uniform choice among equal moves
			ties++
			if e.rnd.Intn(ties) == 0 {
				bestMove = move
			}
		}
	}

	if depth >= e.CacheMinDepth {
		e.transTable.Update(key, best, bestMove)
	}
	return best, bestMove, false
}
