package arena

import (
	"github.com/google/uuid"

	"github.com/ChizhovVadim/OthelloGo/pkg/game"
)

const (
	gameResultDraw = iota
	gameResultBlackWins
	gameResultWhiteWins
)

// Player is a named strategy. New is called once per game so that workers
// never share engines or caches.
type Player struct {
	Name string
	New  func(seed int64) game.MoveSelector
}

type pairing struct {
	a, b int // indexes into players
}

type gameInfo struct {
	id             uuid.UUID
	pairing        pairing
	playerAIsBlack bool
	gameNumber     int
	seed           int64
}

type gameResult struct {
	gameInfo   gameInfo
	moves      []int
	blackDisks int
	whiteDisks int
	comment    string
	result     int
}

// scoreA is the result from the point of view of pairing.a: 1, 0.5 or 0.
func (r gameResult) scoreA() float64 {
	switch {
	case r.result == gameResultDraw:
		return 0.5
	case r.result == gameResultBlackWins && r.gameInfo.playerAIsBlack,
		r.result == gameResultWhiteWins && !r.gameInfo.playerAIsBlack:
		return 1
	}
	return 0
}

func gameResultString(v int) string {
	switch v {
	case gameResultBlackWins:
		return "1-0"
	case gameResultWhiteWins:
		return "0-1"
	case gameResultDraw:
		return "1/2-1/2"
	}
	return ""
}
