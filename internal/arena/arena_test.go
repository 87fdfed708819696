package arena

import (
	"bytes"
	"context"
	"math"
	"sync"
	"testing"

	"go.uber.org/zap"

	"github.com/ChizhovVadim/OthelloGo/pkg/common"
	"github.com/ChizhovVadim/OthelloGo/pkg/strategy"
)

func TestComputeStat(t *testing.T) {
	tests := []struct {
		name                string
		wins, losses, draws int
		fraction, elo, los  float64
	}{
		{"even", 5, 5, 0, 0.5, 0, 0.5},
		{"draws", 0, 0, 4, 0.5, 0, 0.5},
		{"ahead", 3, 1, 0, 0.75, 190.8, 0.8413},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stat = computeStat(tt.wins, tt.losses, tt.draws)
			if math.Abs(stat.WinningFraction-tt.fraction) > 1e-3 ||
				math.Abs(stat.EloDifference-tt.elo) > 0.1 ||
				math.Abs(stat.LOS-tt.los) > 1e-3 {
				t.Errorf("got %+v", stat)
			}
		})
	}
}

func TestPairIndex(t *testing.T) {
	var players = make([]Player, 4)
	for i := range players {
		players[i].Name = string(rune('a' + i))
	}
	var summary = newSummary(players)
	for i := 0; i < len(players); i++ {
		for j := i + 1; j < len(players); j++ {
			var pair = summary.Pairs[pairIndex(len(players), pairing{i, j})]
			if pair.A != players[i].Name || pair.B != players[j].Name {
				t.Errorf("pairing %v %v found %v %v", i, j, pair.A, pair.B)
			}
		}
	}
}

func TestRatings(t *testing.T) {
	var r = NewRatings()
	r.Add("a", "b")
	r.Update("a", "b", 1, 1)
	if r.Rating("a") != InitialRating+16 || r.Rating("b") != InitialRating-16 {
		t.Fatalf("table %v", r.Table())
	}
	var table = r.Table()
	if len(table) != 2 || table[0].Name != "a" {
		t.Errorf("table %v", table)
	}

	var buf bytes.Buffer
	if err := r.Save(&buf); err != nil {
		t.Fatal(err)
	}
	var loaded = NewRatings()
	if err := loaded.Load(&buf); err != nil {
		t.Fatal(err)
	}
	loaded.Add("a", "c")
	if loaded.Rating("a") != r.Rating("a") || loaded.Rating("c") != InitialRating {
		t.Errorf("loaded %v", loaded.Table())
	}
	loaded.Reset()
	if loaded.Rating("a") != InitialRating {
		t.Errorf("reset %v", loaded.Table())
	}
}

func TestPlayGame(t *testing.T) {
	var random = StrategyPlayer(strategy.NewOptions(strategy.Random))
	var greedy = StrategyPlayer(strategy.NewOptions(strategy.Maximize))
	var res, err = playGame(context.Background(), random.New(1), greedy.New(2),
		gameInfo{playerAIsBlack: false, gameNumber: 1, seed: 3})
	if err != nil {
		t.Fatal(err)
	}
	if n := res.blackDisks + res.whiteDisks; n > 64 || n < 4 {
		t.Errorf("%v disks after %v moves", res.blackDisks+res.whiteDisks, len(res.moves))
	}
	var want = gameResultDraw
	if res.blackDisks > res.whiteDisks {
		want = gameResultBlackWins
	} else if res.blackDisks < res.whiteDisks {
		want = gameResultWhiteWins
	}
	if res.result != want {
		t.Errorf("result %v for %v", gameResultString(res.result), res.comment)
	}
}

type memoryResults struct {
	mu      sync.Mutex
	records []GameRecord
}

func (m *memoryResults) SaveGame(ctx context.Context, record GameRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = append(m.records, record)
	return nil
}

func TestRun(t *testing.T) {
	var minmax = strategy.NewOptions(strategy.AlphaBeta)
	minmax.Depth = 1
	var players = []Player{
		StrategyPlayer(strategy.NewOptions(strategy.Random)),
		StrategyPlayer(strategy.NewOptions(strategy.Maximize)),
		StrategyPlayer(minmax),
	}
	var results = &memoryResults{}
	var a = New(zap.NewNop().Sugar(), players, Options{
		Concurrency: 2,
		Rounds:      2,
		Seed:        1,
		Results:     results,
	})
	summary, err := a.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if summary.Games != 12 || len(results.records) != 12 {
		t.Fatalf("%v games, %v records", summary.Games, len(results.records))
	}
	for _, pair := range summary.Pairs {
		if pair.Wins+pair.Losses+pair.Draws != 4 {
			t.Errorf("%+v", pair)
		}
	}

	var ids = make(map[string]bool)
	for _, record := range results.records {
		if ids[record.ID] || record.TournamentID != a.ID() {
			t.Errorf("record %+v", record)
		}
		ids[record.ID] = true
		for _, move := range record.Moves {
			if _, err := common.ParseSquare(move); err != nil {
				t.Errorf("move %q: %v", move, err)
			}
		}
	}

	var total float64
	for _, standing := range a.Ratings().Table() {
		total += standing.Rating
	}
	if math.Abs(total-3*InitialRating) > 1e-6 {
		t.Errorf("rating total %v", total)
	}
}

func TestRunCancelled(t *testing.T) {
	var ctx, cancel = context.WithCancel(context.Background())
	cancel()
	var players = []Player{
		StrategyPlayer(strategy.NewOptions(strategy.Random)),
		StrategyPlayer(strategy.NewOptions(strategy.Minimize)),
	}
	var a = New(zap.NewNop().Sugar(), players, Options{Rounds: 10, Seed: 1})
	if _, err := a.Run(ctx); err == nil {
		t.Error("cancelled run returned no error")
	}
}
