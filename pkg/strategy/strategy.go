package strategy

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/ChizhovVadim/OthelloGo/pkg/common"
	"github.com/ChizhovVadim/OthelloGo/pkg/engine"
)

type Kind int

const (
	Random Kind = iota
	Maximize
	Minimize
	AlphaBeta
	LearnedValue
)

var kindNames = [...]string{
	Random:       "random",
	Maximize:     "maximize",
	Minimize:     "minimize",
	AlphaBeta:    "minmax",
	LearnedValue: "qlearning",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

func Parse(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "random":
		return Random, nil
	case "maximize", "max":
		return Maximize, nil
	case "minimize", "min":
		return Minimize, nil
	case "minmax", "min-max", "alphabeta":
		return AlphaBeta, nil
	case "qlearning", "learned":
		return LearnedValue, nil
	}
	return Random, fmt.Errorf("unknown strategy %q", name)
}

type Options struct {
	Kind Kind
	// Search depth of AlphaBeta.
	Depth int
	Seed  int64
	// Engine used by AlphaBeta. Nil builds a private one.
	Engine *engine.Engine
	// Table used by LearnedValue. Nil builds an empty one.
	QTable  *QTable
	Alpha   float64
	Gamma   float64
	Epsilon float64
}

func NewOptions(kind Kind) Options {
	return Options{
		Kind:    kind,
		Depth:   3,
		Alpha:   0.5,
		Gamma:   0.9,
		Epsilon: 0.1,
	}
}

// Strategy picks moves for one side. The variant is fixed at construction.
type Strategy struct {
	Options
	rnd *rand.Rand
}

func New(options Options) *Strategy {
	var seed = options.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	var rnd = rand.New(rand.NewSource(seed))
	switch options.Kind {
	case AlphaBeta:
		if options.Engine == nil {
			var engineOptions = engine.NewOptions()
			engineOptions.Seed = rnd.Int63()
			options.Engine = engine.NewEngine(engineOptions, nil)
		}
		if options.Depth <= 0 {
			options.Depth = 3
		}
	case LearnedValue:
		if options.QTable == nil {
			options.QTable = NewQTable()
		}
	}
	return &Strategy{
		Options: options,
		rnd:     rnd,
	}
}

func (s *Strategy) Name() string {
	return s.Kind.String()
}

// SelectMove returns a legal square for side, or SquareNone if side has to
// pass.
func (s *Strategy) SelectMove(p common.Position, side common.Color) int {
	var moves = p.ReversibleArea(side)
	if moves == 0 {
		return common.SquareNone
	}
	switch s.Kind {
	case Random:
		return s.random(moves)
	case Maximize:
		return s.greedy(p, side, moves, true)
	case Minimize:
		return s.greedy(p, side, moves, false)
	case AlphaBeta:
		var info = s.Engine.Think(p, side, s.Depth)
		return info.Move
	case LearnedValue:
		return s.learn(p, side, moves)
	}
	panic(fmt.Errorf("bad strategy kind %v", s.Kind))
}

func (s *Strategy) random(moves uint64) int {
	var squares = common.Squares(moves)
	return squares[s.rnd.Intn(len(squares))]
}

// greedy picks the move leaving side with the most (or fewest) disks.
func (s *Strategy) greedy(p common.Position, side common.Color, moves uint64, most bool) int {
	var best []int
	var bestCount int
	for x := moves; x != 0; x &= x - 1 {
		var move = common.FirstOne(x)
		var child = p.MakeMove(side, move)
		var own, _ = child.Pieces(side)
		var count = common.PopCount(own)
		if len(best) == 0 ||
			most && count > bestCount ||
			!most && count < bestCount {
			best = append(best[:0], move)
			bestCount = count
		} else if count == bestCount {
			best = append(best, move)
		}
	}
	return best[s.rnd.Intn(len(best))]
}
