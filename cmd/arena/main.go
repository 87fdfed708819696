package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/pkg/profile"
	"go.uber.org/zap"

	"github.com/ChizhovVadim/OthelloGo/internal/arena"
	"github.com/ChizhovVadim/OthelloGo/internal/config"
	"github.com/ChizhovVadim/OthelloGo/internal/logger"
	"github.com/ChizhovVadim/OthelloGo/internal/store"
	"github.com/ChizhovVadim/OthelloGo/pkg/strategy"
)

const ratingsKey = "ratings"

type Config struct {
	ConfigPath   string
	Debug        bool
	CpuProfile   string
	Strategies   string
	Rounds       int
	Concurrency  int
	ResetRatings bool
}

var cliConfig Config

func main() {
	flag.StringVar(&cliConfig.ConfigPath, "config", "", "path to config file")
	flag.BoolVar(&cliConfig.Debug, "debug", false, "development logging")
	flag.StringVar(&cliConfig.CpuProfile, "cpuprofile", "", "write cpu profile to directory")
	flag.StringVar(&cliConfig.Strategies, "strategies", "random,maximize,minimize,minmax", "comma separated strategies")
	flag.IntVar(&cliConfig.Rounds, "rounds", 0, "times every pair meets")
	flag.IntVar(&cliConfig.Concurrency, "concurrency", 0, "number of threads")
	flag.BoolVar(&cliConfig.ResetRatings, "reset", false, "start ratings from scratch")
	flag.Parse()

	log, err := logger.New(cliConfig.Debug)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	if cliConfig.CpuProfile != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(cliConfig.CpuProfile), profile.NoShutdownHook).Stop()
	}

	if err := run(log); err != nil {
		log.Errorw("arena failed", "error", err)
		log.Sync()
		os.Exit(1)
	}
}

func run(logger *zap.SugaredLogger) error {
	cfg, err := config.Setup(cliConfig.ConfigPath)
	if err != nil {
		return err
	}
	if cliConfig.Rounds != 0 {
		cfg.Rounds = cliConfig.Rounds
	}
	if cliConfig.Concurrency != 0 {
		cfg.Concurrency = cliConfig.Concurrency
	}
	logger.Infof("%+v %+v", cliConfig, cfg)

	var players []arena.Player
	for _, name := range strings.Split(cliConfig.Strategies, ",") {
		var kind, err = strategy.Parse(name)
		if err != nil {
			return err
		}
		var options = strategy.NewOptions(kind)
		options.Depth = cfg.Depth
		options.Alpha = cfg.Alpha
		options.Gamma = cfg.Gamma
		options.Epsilon = cfg.Epsilon
		players = append(players, arena.StrategyPlayer(options))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := store.Open(ctx, cfg.RedisUrl, cfg.DataDir, logger)
	if err != nil {
		return err
	}
	defer st.Close()

	var ratings = arena.NewRatings()
	if !cliConfig.ResetRatings {
		if err := st.Load(ctx, ratingsKey, ratings); err != nil {
			return err
		}
	}

	var options = arena.Options{
		Concurrency: cfg.Concurrency,
		Rounds:      cfg.Rounds,
		Seed:        cfg.Seed,
		Ratings:     ratings,
	}
	if cfg.MongoUri != "" {
		results, err := arena.NewMongoResults(ctx, cfg.MongoUri, cfg.MongoDatabase, logger)
		if err != nil {
			return err
		}
		defer results.Close(context.Background())
		options.Results = results
	}

	var a = arena.New(logger, players, options)
	summary, err := a.Run(ctx)
	if err != nil {
		return err
	}
	logger.Infow("tournament done", "id", a.ID(), "games", summary.Games)

	return st.Save(context.Background(), ratingsKey, ratings)
}
