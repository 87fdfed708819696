package arena

import (
	"context"
	"math/rand"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Options struct {
	Concurrency int
	// Rounds is how many times every pair of players meets. A meeting is two
	// games with colors swapped.
	Rounds  int
	Seed    int64
	Ratings *Ratings
	// Results receives every finished game when set.
	Results ResultRepository
}

// Arena runs a round-robin tournament between strategies.
type Arena struct {
	log     *zap.SugaredLogger
	id      uuid.UUID
	players []Player
	options Options
}

func New(log *zap.SugaredLogger, players []Player, options Options) *Arena {
	if options.Concurrency <= 0 {
		options.Concurrency = 1
	}
	if options.Rounds <= 0 {
		options.Rounds = 1
	}
	if options.Seed == 0 {
		options.Seed = time.Now().UnixNano()
	}
	if options.Ratings == nil {
		options.Ratings = NewRatings()
	}
	var names = make([]string, len(players))
	for i := range players {
		names[i] = players[i].Name
	}
	options.Ratings.Add(names...)
	return &Arena{
		log:     log,
		id:      uuid.New(),
		players: players,
		options: options,
	}
}

func (a *Arena) ID() string {
	return a.id.String()
}

func (a *Arena) Ratings() *Ratings {
	return a.options.Ratings
}

func (a *Arena) Run(ctx context.Context) (*Summary, error) {
	a.log.Infow("arena started", "id", a.ID())
	defer a.log.Infow("arena finished", "id", a.ID())

	a.log.Infow("settings",
		"NumCPU", runtime.NumCPU(),
		"GOMAXPROCS", runtime.GOMAXPROCS(0),
		"concurrency", a.options.Concurrency,
		"rounds", a.options.Rounds,
		"players", len(a.players))

	g, ctx := errgroup.WithContext(ctx)

	var gameInfos = make(chan gameInfo)
	var gameResults = make(chan gameResult)
	var summary = newSummary(a.players)

	g.Go(func() error {
		defer close(gameInfos)
		return a.loadPairings(ctx, gameInfos)
	})

	g.Go(func() error {
		return a.showResults(ctx, gameResults, summary)
	})

	var wg = &sync.WaitGroup{}

	for i := 0; i < a.options.Concurrency; i++ {
		wg.Add(1)
		g.Go(func() error {
			defer wg.Done()
			return a.playGames(ctx, gameInfos, gameResults)
		})
	}

	g.Go(func() error {
		wg.Wait()
		close(gameResults)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return summary, nil
}

// loadPairings sends every pair of players, once with each color, for every
// round.
func (a *Arena) loadPairings(
	ctx context.Context,
	gameInfos chan<- gameInfo,
) error {
	var rnd = rand.New(rand.NewSource(a.options.Seed))
	var gameNumber = 0
	for round := 0; round < a.options.Rounds; round++ {
		for i := 0; i < len(a.players); i++ {
			for j := i + 1; j < len(a.players); j++ {
				for _, aIsBlack := range []bool{true, false} {
					gameNumber++
					var info = gameInfo{
						id:             uuid.New(),
						pairing:        pairing{a: i, b: j},
						playerAIsBlack: aIsBlack,
						gameNumber:     gameNumber,
						seed:           rnd.Int63(),
					}
					select {
					case <-ctx.Done():
						return ctx.Err()
					case gameInfos <- info:
					}
				}
			}
		}
	}
	return nil
}

func (a *Arena) playGames(
	ctx context.Context,
	gameInfos <-chan gameInfo,
	gameResults chan<- gameResult,
) error {
	for gameInfo := range gameInfos {
		var playerA = a.players[gameInfo.pairing.a].New(gameInfo.seed)
		var playerB = a.players[gameInfo.pairing.b].New(gameInfo.seed + 1)
		var res, err = playGame(ctx, playerA, playerB, gameInfo)
		if err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case gameResults <- res:
		}
	}
	return nil
}
