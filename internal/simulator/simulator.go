package simulator

import (
	"context"
	"fmt"
	"io"
	"time"

	"stocktracker/internal/portfolio"

	"go.uber.org/zap"
)

// MaxChange bounds a single update: draws fall in [-MaxChange, MaxChange).
const MaxChange = 2.0

// Simulator runs update rounds over a portfolio and prints its state.
type Simulator struct {
	logger    *zap.Logger
	out       io.Writer
	portfolio *portfolio.Portfolio
	rand      Rand
	clock     Clock
	delay     time.Duration
}

func NewSimulator(
	logger *zap.Logger,
	out io.Writer,
	p *portfolio.Portfolio,
	rnd Rand,
	clock Clock,
	delay time.Duration,
) *Simulator {
	return &Simulator{
		logger:    logger,
		out:       out,
		portfolio: p,
		rand:      rnd,
		clock:     clock,
		delay:     delay,
	}
}

// Update applies one random step to the stock price and clamps it to
// portfolio.MinPrice. It returns the raw draw.
func (s *Simulator) Update(stock *portfolio.Stock) float64 {
	change := (s.rand.Float64() * 2 * MaxChange) - MaxChange
	stock.Price += change
	if stock.Price < portfolio.MinPrice {
		stock.Price = portfolio.MinPrice
	}

	s.logger.Debug("price updated",
		zap.String("symbol", stock.Symbol()),
		zap.Float64("change", change),
		zap.Float64("price", stock.Price))
	return change
}

// Display writes the stock's current line to the output.
func (s *Simulator) Display(stock *portfolio.Stock) {
	fmt.Fprintln(s.out, portfolio.FormatLine(stock))
}

// Run performs the given number of rounds. Non-positive counts run none.
// An interrupted pause is reported and the loop carries on.
func (s *Simulator) Run(ctx context.Context, rounds int) {
	s.logger.Info("tracking started",
		zap.Int("rounds", rounds),
		zap.Strings("symbols", s.portfolio.Symbols()),
		zap.Duration("delay", s.delay))

	for i := 1; i <= rounds; i++ {
		fmt.Fprintf(s.out, "\nUpdate #%d:\n", i)

		for _, stock := range s.portfolio.Stocks() {
			s.Update(stock)
			s.Display(stock)
		}

		if err := s.clock.Sleep(ctx, s.delay); err != nil {
			fmt.Fprintln(s.out, "Update interrupted.")
			s.logger.Warn("pause interrupted", zap.Int("round", i), zap.Error(err))
		}

		s.logger.Info("round complete", zap.Int("round", i))
	}

	fmt.Fprintln(s.out, "\nTracking complete.")
}
