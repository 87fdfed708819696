package arena

import (
	"strconv"

	"github.com/ChizhovVadim/OthelloGo/pkg/game"
	"github.com/ChizhovVadim/OthelloGo/pkg/strategy"
)

// StrategyPlayer builds a fresh strategy for each game from options.
// Options.Engine and Options.QTable must be nil: they are per game.
func StrategyPlayer(options strategy.Options) Player {
	var name = options.Kind.String()
	if options.Kind == strategy.AlphaBeta {
		name = name + "-" + strconv.Itoa(options.Depth)
	}
	return Player{
		Name: name,
		New: func(seed int64) game.MoveSelector {
			var so = options
			so.Seed = seed
			return strategy.New(so)
		},
	}
}

