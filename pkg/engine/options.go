package engine

import (
	. "github.com/ChizhovVadim/OthelloGo/pkg/common"
)

type Options struct {
	// Player is the maximizing color. Scores are from its point of view.
	Player Color
	// Results of nodes searched at least this deep are cached.
	CacheMinDepth int
	// Seed of the tie-break generator. Zero seeds from the clock.
	Seed int64
}

func NewOptions() Options {
	return Options{
		Player:        Black,
		CacheMinDepth: 4,
	}
}
