package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"stocktracker/config"
	"stocktracker/internal/portfolio"
	"stocktracker/internal/prompt"
	"stocktracker/internal/simulator"
	"stocktracker/logger"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

func main() {
	// viper config
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	// zap logger
	log, err := logger.New(cfg.Log)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer log.Sync()

	// default signal handling while waiting on stdin
	rounds, err := readRounds(os.Stdin, os.Stdout)
	if err != nil {
		log.Fatal("failed to read number of updates", zap.Error(err))
	}

	// The first SIGINT/SIGTERM cuts the pauses short; handling then
	// reverts to the default so a second one terminates.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	context.AfterFunc(ctx, stop)

	track(ctx, cfg, log, os.Stdout, rounds)
}

func readRounds(in io.Reader, out io.Writer) (int, error) {
	prompt.Welcome(out)
	return prompt.ReadRounds(in, out)
}

func track(ctx context.Context, cfg *config.Config, log *zap.Logger, out io.Writer, rounds int) {
	sim := simulator.NewSimulator(log, out,
		portfolio.New(portfolio.DefaultSeeds()),
		simulator.NewRand(cfg.Simulator.Seed),
		simulator.RealClock{},
		cfg.Simulator.Delay,
	)
	sim.Run(ctx, rounds)
}
