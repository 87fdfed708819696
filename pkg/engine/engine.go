package engine

import (
	"io"
	"math/rand"
	"time"

	. "github.com/ChizhovVadim/OthelloGo/pkg/common"
)

// Engine is a depth-limited minimax searcher with a result cache. It is not
// safe for concurrent use; give every goroutine its own Engine and TransTable.
type Engine struct {
	Options
	transTable TransTable
	rnd        *rand.Rand
	nodes      int64
	cacheHits  int64
}

type TransTable interface {
	Len() int
	Clear()
	Read(key TransKey) (score, move int, ok bool)
	Update(key TransKey, score, move int)
	Load(r io.Reader) error
	Save(w io.Writer) error
}

type SearchInfo struct {
	Depth     int
	Score     int
	Move      int
	Nodes     int64
	CacheHits int64
	Time      time.Duration
}

// NewEngine builds an engine around tt. A nil tt gets a fresh table.
func NewEngine(options Options, tt TransTable) *Engine {
	if tt == nil {
		tt = NewTransTable()
	}
	var seed = options.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Engine{
		Options:    options,
		transTable: tt,
		rnd:        rand.New(rand.NewSource(seed)),
	}
}

func (e *Engine) TransTable() TransTable {
	return e.transTable
}

func (e *Engine) SetPlayer(player Color) {
	e.Player = player
}

// Clear drops cached results and counters.
func (e *Engine) Clear() {
	e.transTable.Clear()
	e.nodes = 0
	e.cacheHits = 0
}

func (e *Engine) Nodes() int64 {
	return e.nodes
}

func (e *Engine) CacheHits() int64 {
	return e.cacheHits
}

// Search returns the minimax score of p with side to move and the move that
// reaches it. Depth 0 and finished games return the static evaluation and
// SquareNone.
func (e *Engine) Search(p Position, side Color, depth, cutoff int) (score, move int) {
	score, move, _ = e.minimax(p, side, depth, cutoff)
	return score, move
}

// Think searches p for side to move as the maximizing player.
func (e *Engine) Think(p Position, side Color, depth int) SearchInfo {
	var start = time.Now()
	var nodes, hits = e.nodes, e.cacheHits
	e.Player = side
	var score, move, _ = e.minimax(p, side, depth, RootCutoff(side, side))
	return SearchInfo{
		Depth:     depth,
		Score:     score,
		Move:      move,
		Nodes:     e.nodes - nodes,
		CacheHits: e.cacheHits - hits,
		Time:      time.Since(start),
	}
}
