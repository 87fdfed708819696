package arena

import (
	"context"
	"math"
)

// PairStat is the score of A against B.
type PairStat struct {
	A, B                string
	Wins, Losses, Draws int
	Stat                GameStatistics
}

type Summary struct {
	Games int
	Pairs []PairStat
}

func newSummary(players []Player) *Summary {
	var s = &Summary{}
	for i := 0; i < len(players); i++ {
		for j := i + 1; j < len(players); j++ {
			s.Pairs = append(s.Pairs, PairStat{A: players[i].Name, B: players[j].Name})
		}
	}
	return s
}

// pairIndex finds the slot of pairing p in the order newSummary uses.
func pairIndex(n int, p pairing) int {
	var index = 0
	for i := 0; i < p.a; i++ {
		index += n - 1 - i
	}
	return index + p.b - p.a - 1
}

func (a *Arena) showResults(
	ctx context.Context,
	gameResults <-chan gameResult,
	summary *Summary,
) error {
	var totalGames = a.options.Rounds * len(summary.Pairs) * 2
	for gameResult := range gameResults {
		summary.Games++
		var info = gameResult.gameInfo
		var pair = &summary.Pairs[pairIndex(len(a.players), info.pairing)]
		a.log.Infof("Finished game %v of %v: %v %v {%v}",
			summary.Games, totalGames, pairName(pair, info.playerAIsBlack),
			gameResultString(gameResult.result), gameResult.comment)

		var score = gameResult.scoreA()
		switch score {
		case 1:
			pair.Wins++
		case 0:
			pair.Losses++
		default:
			pair.Draws++
		}
		pair.Stat = computeStat(pair.Wins, pair.Losses, pair.Draws)
		a.log.Infof("%v vs %v: %v - %v - %v  [%.3f] Elo difference: %.1f, LOS: %.1f %%",
			pair.A, pair.B, pair.Wins, pair.Losses, pair.Draws,
			pair.Stat.WinningFraction, pair.Stat.EloDifference, pair.Stat.LOS*100)

		a.options.Ratings.Update(pair.A, pair.B, 1, score)

		if a.options.Results != nil {
			var record = newGameRecord(a.ID(), a.players, gameResult)
			if err := a.options.Results.SaveGame(ctx, record); err != nil {
				a.log.Errorw("save game failed", "game", record.ID, "error", err)
			}
		}
	}
	for _, standing := range a.options.Ratings.Table() {
		a.log.Infof("%-12v %.1f", standing.Name, standing.Rating)
	}
	return nil
}

func pairName(pair *PairStat, aIsBlack bool) string {
	if aIsBlack {
		return pair.A + " - " + pair.B
	}
	return pair.B + " - " + pair.A
}

type GameStatistics struct {
	WinningFraction float64
	EloDifference   float64
	LOS             float64
}

//https://chessprogramming.wikispaces.com/Match%20Statistics
func computeStat(wins, losses, draws int) GameStatistics {
	var games = wins + losses + draws
	if games == 0 {
		return GameStatistics{WinningFraction: 0.5, LOS: 0.5}
	}
	var winningFraction = (float64(wins) + 0.5*float64(draws)) / float64(games)
	var eloDifference = -math.Log(1/winningFraction-1) * 400 / math.Ln10
	var los = 0.5
	if wins+losses != 0 {
		los = 0.5 + 0.5*math.Erf(float64(wins-losses)/math.Sqrt(2*float64(wins+losses)))
	}
	return GameStatistics{
		WinningFraction: winningFraction,
		EloDifference:   eloDifference,
		LOS:             los,
	}
}
