package strategy

import (
	"encoding/gob"
	"io"

	"github.com/ChizhovVadim/OthelloGo/pkg/common"
)

type qKey struct {
	Own    uint64
	Opp    uint64
	Action int8
}

// QTable holds learned action values keyed by the mover's and the
// opponent's masks.
type QTable struct {
	values map[qKey]float64
}

func NewQTable() *QTable {
	return &QTable{values: make(map[qKey]float64)}
}

func (q *QTable) Len() int {
	return len(q.values)
}

func (q *QTable) Clear() {
	q.values = make(map[qKey]float64)
}

func (q *QTable) Value(own, opp uint64, action int) float64 {
	return q.values[qKey{own, opp, int8(action)}]
}

func (q *QTable) SetValue(own, opp uint64, action int, value float64) {
	q.values[qKey{own, opp, int8(action)}] = value
}

type qRecord struct {
	Key   qKey
	Value float64
}

// Load merges a table written by Save.
func (q *QTable) Load(r io.Reader) error {
	var records []qRecord
	if err := gob.NewDecoder(r).Decode(&records); err != nil {
		return err
	}
	for _, rec := range records {
		q.values[rec.Key] = rec.Value
	}
	return nil
}

func (q *QTable) Save(w io.Writer) error {
	var records = make([]qRecord, 0, len(q.values))
	for key, value := range q.values {
		records = append(records, qRecord{Key: key, Value: value})
	}
	return gob.NewEncoder(w).Encode(records)
}

// learn chooses an epsilon-greedy action and updates its value with the
// one-step Q-learning rule
//
//	Q(s,a) += alpha * (r + gamma*max Q(s',a') - Q(s,a))
//
// where s' is the position after the move seen from the same side.
func (s *Strategy) learn(p common.Position, side common.Color, moves uint64) int {
	var own, opp = p.Pieces(side)
	var action = s.selectAction(own, opp, moves)

	var next = p.MakeMove(side, action)
	var nextOwn, nextOpp = next.Pieces(side)
	var reward float64
	if next.IsTerminal() {
		var nOwn, nOpp = common.PopCount(nextOwn), common.PopCount(nextOpp)
		if nOwn > nOpp {
			reward = 1
		} else if nOwn < nOpp {
			reward = -1
		}
	}

	var maxNext float64
	var nextMoves = next.ReversibleArea(side)
	if nextMoves == 0 {
		maxNext = s.QTable.Value(nextOwn, nextOpp, action)
	} else {
		var first = true
		for x := nextMoves; x != 0; x &= x - 1 {
			var v = s.QTable.Value(nextOwn, nextOpp, common.FirstOne(x))
			if first || v > maxNext {
				maxNext = v
				first = false
			}
		}
	}

	var q = s.QTable.Value(own, opp, action)
	s.QTable.SetValue(own, opp, action, q+s.Alpha*(reward+s.Gamma*maxNext-q))
	return action
}

func (s *Strategy) selectAction(own, opp, moves uint64) int {
	if s.rnd.Float64() < s.Epsilon {
		return s.random(moves)
	}
	var best []int
	var bestValue float64
	var allZero = true
	for x := moves; x != 0; x &= x - 1 {
		var move = common.FirstOne(x)
		var v = s.QTable.Value(own, opp, move)
		if v != 0 {
			allZero = false
		}
		if len(best) == 0 || v > bestValue {
			best = append(best[:0], move)
			bestValue = v
		} else if v == bestValue {
			best = append(best, move)
		}
	}
	if allZero {
		return s.random(moves)
	}
	return best[s.rnd.Intn(len(best))]
}
