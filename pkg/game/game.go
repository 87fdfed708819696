package game

import (
	"errors"
	"math/rand"
	"time"

	"github.com/ChizhovVadim/OthelloGo/pkg/common"
	"github.com/ChizhovVadim/OthelloGo/pkg/strategy"
)

var (
	ErrIllegalMove = errors.New("illegal move")
	ErrGameOver    = errors.New("game over")
)

// Result is the outcome for the configured player.
type Result int

const (
	Pending Result = iota
	Win
	Lose
	Draw
)

func (r Result) String() string {
	switch r {
	case Win:
		return "WIN"
	case Lose:
		return "LOSE"
	case Draw:
		return "DRAW"
	}
	return ""
}

type MoveSelector interface {
	SelectMove(p common.Position, side common.Color) int
}

type Options struct {
	// Player is the color results are reported for.
	Player       common.Color
	RandomPlayer bool
	FirstMover   common.Color
	// PlayerAuto lets PlayerStrategy move for the player. Otherwise the
	// player's moves come from PutDisk.
	PlayerAuto       bool
	PlayerStrategy   MoveSelector
	OpponentStrategy MoveSelector
	Seed             int64
}

func NewOptions() Options {
	return Options{
		Player:     common.Black,
		FirstMover: common.Black,
	}
}

type Game struct {
	board         *common.Board
	player        common.Color
	firstMover    common.Color
	turn          common.Color
	passCount     int
	result        Result
	countPlayer   int
	countOpponent int
	countBlank    int
	reversible    uint64
	playerAuto    bool
	strategies    [2]MoveSelector // player, opponent
	moves         []int
}

func New(options Options) *Game {
	var seed = options.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	var rnd = rand.New(rand.NewSource(seed))
	var player = options.Player
	if options.RandomPlayer {
		player = common.Color(rnd.Intn(2))
	}
	var g = &Game{
		board:      common.NewBoard(),
		player:     player,
		firstMover: options.FirstMover,
		turn:       options.FirstMover,
		playerAuto: options.PlayerAuto,
		strategies: [2]MoveSelector{options.PlayerStrategy, options.OpponentStrategy},
	}
	for i := range g.strategies {
		if g.strategies[i] == nil {
			var so = strategy.NewOptions(strategy.Random)
			so.Seed = rnd.Int63()
			g.strategies[i] = strategy.New(so)
		}
	}
	g.updateCounts()
	g.reversible = g.board.ReversibleArea(g.turn)
	return g
}

func (g *Game) Board() *common.Board {
	return g.board
}

func (g *Game) Position() common.Position {
	return g.board.Position()
}

func (g *Game) Turn() common.Color {
	return g.turn
}

func (g *Game) PlayerColor() common.Color {
	return g.player
}

func (g *Game) Result() Result {
	return g.result
}

func (g *Game) IsOver() bool {
	return g.result != Pending
}

func (g *Game) PassCount() int {
	return g.passCount
}

// Counts are the disk counts of the player, of the opponent and the number
// of empty cells, as of the last refresh.
func (g *Game) Counts() (player, opponent, blank int) {
	return g.countPlayer, g.countOpponent, g.countBlank
}

// Reversible is the legal-move mask of the side to move.
func (g *Game) Reversible() uint64 {
	return g.reversible
}

func (g *Game) IsLegal(sq int) bool {
	return sq >= 0 && sq < 64 && g.board.IsReversible(g.turn, sq)
}

// Moves is the transcript of the game, SquareNone for a pass.
func (g *Game) Moves() []int {
	return append([]int(nil), g.moves...)
}

func (g *Game) SetPlayerAuto(auto bool) {
	g.playerAuto = auto
}

func (g *Game) SetStrategy(s MoveSelector, isPlayer bool) {
	if isPlayer {
		g.strategies[0] = s
	} else {
		g.strategies[1] = s
	}
}

// PutDisk plays sq for the side to move.
func (g *Game) PutDisk(sq int) error {
	if g.result != Pending {
		return ErrGameOver
	}
	if !g.IsLegal(sq) {
		return ErrIllegalMove
	}
	g.board.Play(g.turn, sq)
	g.moves = append(g.moves, sq)
	g.turn = g.turn.Opposite()
	g.passCount = 0
	g.updateCounts()
	g.reversible = g.board.ReversibleArea(g.turn)
	return nil
}

// Process advances the game by one step: a pass, or a move when an automated
// side is to move. It reports whether the game is over. A player's turn
// without PlayerAuto is left for PutDisk.
func (g *Game) Process() (bool, error) {
	if g.result != Pending {
		return true, nil
	}
	g.updateCounts()
	if g.judge() {
		return true, nil
	}

	g.reversible = g.board.ReversibleArea(g.turn)
	if g.reversible == 0 {
		g.moves = append(g.moves, common.SquareNone)
		g.turn = g.turn.Opposite()
		g.passCount++
		g.reversible = g.board.ReversibleArea(g.turn)
		return g.judge(), nil
	}

	var selector MoveSelector
	if g.turn == g.player {
		if !g.playerAuto {
			return false, nil
		}
		selector = g.strategies[0]
	} else {
		selector = g.strategies[1]
	}
	var move = selector.SelectMove(g.board.Position(), g.turn)
	if err := g.PutDisk(move); err != nil {
		return false, err
	}
	return g.judge(), nil
}

func (g *Game) updateCounts() {
	var nBlack, nWhite = g.board.CountDisks()
	if g.player == common.Black {
		g.countPlayer, g.countOpponent = nBlack, nWhite
	} else {
		g.countPlayer, g.countOpponent = nWhite, nBlack
	}
	g.countBlank = 64 - nBlack - nWhite
}

// judge ends the game after two passes in a row or on a full board.
func (g *Game) judge() bool {
	if g.result != Pending {
		return true
	}
	if g.passCount < 2 && g.countBlank != 0 {
		return false
	}
	switch {
	case g.countPlayer > g.countOpponent:
		g.result = Win
	case g.countPlayer < g.countOpponent:
		g.result = Lose
	default:
		g.result = Draw
	}
	return true
}

// Undo takes back up to two moves together with the passes between them.
func (g *Game) Undo() int {
	var steps = g.board.Undo()
	for removed := 0; removed < steps && len(g.moves) > 0; {
		var last = g.moves[len(g.moves)-1]
		g.moves = g.moves[:len(g.moves)-1]
		if last != common.SquareNone {
			removed++
		}
	}
	g.resync()
	return steps
}

// Redo replays moves taken back by Undo. Passes are restored from the colour
// of the replayed disks.
func (g *Game) Redo() int {
	var steps = g.board.Redo()
	var log = g.board.State().Log
	for i := len(log) - steps; i < len(log); i++ {
		var sq = placedSquare(log[i-1], log[i])
		var mover = common.Black
		if log[i].White&common.SquareMask(sq) != 0 {
			mover = common.White
		}
		if g.sideToMove() != mover {
			g.moves = append(g.moves, common.SquareNone)
		}
		g.moves = append(g.moves, sq)
	}
	g.resync()
	return steps
}

func (g *Game) sideToMove() common.Color {
	if len(g.moves)%2 == 0 {
		return g.firstMover
	}
	return g.firstMover.Opposite()
}

func (g *Game) resync() {
	g.turn = g.sideToMove()
	g.passCount = 0
	g.result = Pending
	g.updateCounts()
	g.reversible = g.board.ReversibleArea(g.turn)
}

func placedSquare(before, after common.Position) int {
	var placed = (after.Black | after.White) &^ (before.Black | before.White)
	if placed == 0 {
		return common.SquareNone
	}
	return common.FirstOne(placed)
}

// Grid is the board by rank and file: 1 black, -1 white, 0 empty.
func (g *Game) Grid() [8][8]int {
	var result [8][8]int
	var p = g.board.Position()
	for sq := 0; sq < 64; sq++ {
		var mask = common.SquareMask(sq)
		if p.Black&mask != 0 {
			result[common.Rank(sq)][common.File(sq)] = 1
		} else if p.White&mask != 0 {
			result[common.Rank(sq)][common.File(sq)] = -1
		}
	}
	return result
}
