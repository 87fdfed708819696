package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"

	"go.uber.org/zap"

	"github.com/ChizhovVadim/OthelloGo/internal/config"
	"github.com/ChizhovVadim/OthelloGo/internal/logger"
	"github.com/ChizhovVadim/OthelloGo/internal/store"
	"github.com/ChizhovVadim/OthelloGo/pkg/common"
	"github.com/ChizhovVadim/OthelloGo/pkg/console"
	"github.com/ChizhovVadim/OthelloGo/pkg/engine"
	"github.com/ChizhovVadim/OthelloGo/pkg/strategy"
)

/*
OthelloGo Copyright (C) 2017-2023 Vadim Chizhov
This program is free software: you can redistribute it and/or modify it under the terms of the GNU General Public License as published by the Free Software Foundation, either version 3 of the License, or (at your option) any later version.
This program is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the GNU General Public License for more details.
You should have received a copy of the GNU General Public License along with this program. If not, see <http://www.gnu.org/licenses/>.
*/

const (
	name      = "OthelloGo"
	cacheKey  = "cache"
	qtableKey = "qtable"
)

var (
	versionName = "dev"
	buildDate   = "(null)"
	gitRevision = "(null)"
)

var (
	flgConfig   string
	flgDebug    bool
	flgColor    string
	flgStrategy string
	flgDepth    int
)

func main() {
	flag.StringVar(&flgConfig, "config", "", "path to config file")
	flag.BoolVar(&flgDebug, "debug", false, "development logging")
	flag.StringVar(&flgColor, "color", "", "black, white or random")
	flag.StringVar(&flgStrategy, "strategy", "", "opponent strategy")
	flag.IntVar(&flgDepth, "depth", 0, "search depth")
	flag.Parse()

	log, err := logger.New(flgDebug)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	if err := run(log); err != nil {
		log.Errorw("othello failed", "error", err)
		log.Sync()
		os.Exit(1)
	}
}

func run(logger *zap.SugaredLogger) error {
	logger.Infow(name,
		"VersionName", versionName,
		"BuildDate", buildDate,
		"GitRevision", gitRevision,
		"RuntimeVersion", runtime.Version(),
		"GOARCH", runtime.GOARCH,
		"GOOS", runtime.GOOS,
	)

	cfg, err := config.Setup(flgConfig)
	if err != nil {
		return err
	}
	if flgColor != "" {
		cfg.PlayerColor = flgColor
	}
	if flgStrategy != "" {
		cfg.OpponentStrategy = flgStrategy
	}
	if flgDepth != 0 {
		cfg.Depth = flgDepth
	}
	logger.Debugf("%+v", cfg)

	var options = console.Options{Seed: cfg.Seed}
	if strings.EqualFold(cfg.PlayerColor, "random") {
		options.RandomPlayer = true
	} else if options.Player, err = common.ParseColor(cfg.PlayerColor); err != nil {
		return err
	}
	kind, err := strategy.Parse(cfg.OpponentStrategy)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := store.Open(ctx, cfg.RedisUrl, cfg.DataDir, logger)
	if err != nil {
		return err
	}
	defer st.Close()

	var eng = engine.NewEngine(engine.Options{
		Player:        common.Black,
		CacheMinDepth: cfg.CacheMinDepth,
		Seed:          cfg.Seed,
	}, nil)
	var qtable = strategy.NewQTable()
	if err := st.Load(ctx, cacheKey, eng.TransTable()); err != nil {
		return err
	}
	if err := st.Load(ctx, qtableKey, qtable); err != nil {
		return err
	}

	options.Strategy = strategy.Options{
		Kind:    kind,
		Depth:   cfg.Depth,
		Seed:    cfg.Seed,
		Engine:  eng,
		QTable:  qtable,
		Alpha:   cfg.Alpha,
		Gamma:   cfg.Gamma,
		Epsilon: cfg.Epsilon,
	}
	var protocol = console.New(logger, os.Stdout, options)

	err = protocol.Run(ctx, os.Stdin)
	if errors.Is(err, context.Canceled) {
		logger.Info("interrupted")
		err = nil
	}

	// ctx may be cancelled by now
	var saveCtx = context.Background()
	if saveErr := st.Save(saveCtx, cacheKey, eng.TransTable()); saveErr != nil && err == nil {
		err = saveErr
	}
	if saveErr := st.Save(saveCtx, qtableKey, qtable); saveErr != nil && err == nil {
		err = saveErr
	}
	return err
}
