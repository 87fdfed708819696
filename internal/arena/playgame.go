package arena

import (
	"context"
	"fmt"

	"github.com/ChizhovVadim/OthelloGo/pkg/common"
	"github.com/ChizhovVadim/OthelloGo/pkg/game"
)

// maxSteps bounds a game: 60 moves plus passes.
const maxSteps = 4 * 64

func playGame(
	ctx context.Context,
	playerA, playerB game.MoveSelector,
	info gameInfo,
) (gameResult, error) {

	var options = game.NewOptions()
	options.PlayerAuto = true
	options.PlayerStrategy = playerA
	options.OpponentStrategy = playerB
	options.Seed = info.seed
	if info.playerAIsBlack {
		options.Player = common.Black
	} else {
		options.Player = common.White
	}
	var g = game.New(options)

	for step := 0; ; step++ {
		if step >= maxSteps {
			return gameResult{}, fmt.Errorf("game %v does not end", info.gameNumber)
		}
		if err := ctx.Err(); err != nil {
			return gameResult{}, err
		}
		var done, err = g.Process()
		if err != nil {
			return gameResult{}, fmt.Errorf("game %v: %w", info.gameNumber, err)
		}
		if done {
			break
		}
	}

	var nBlack, nWhite = g.Position().CountDisks()
	var res = gameResult{
		gameInfo:   info,
		moves:      g.Moves(),
		blackDisks: nBlack,
		whiteDisks: nWhite,
		comment:    fmt.Sprintf("%v-%v", nBlack, nWhite),
	}
	switch {
	case nBlack > nWhite:
		res.result = gameResultBlackWins
	case nBlack < nWhite:
		res.result = gameResultWhiteWins
	default:
		res.result = gameResultDraw
	}
	return res, nil
}
