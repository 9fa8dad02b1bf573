package portfolio

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Portfolio is the ordered list of stocks; order is display order.
type Portfolio struct {
	stocks []*Stock
}

// DefaultSeeds returns the fixed five-stock portfolio the tracker starts with.
func DefaultSeeds() []Seed {
	return []Seed{
		{Symbol: "AAPL", Price: 175.00},
		{Symbol: "GOOGL", Price: 2800.00},
		{Symbol: "TSLA", Price: 730.00},
		{Symbol: "AMZN", Price: 3450.00},
		{Symbol: "MSFT", Price: 299.00},
	}
}

// New builds a Portfolio from seeds, taking the values as given.
func New(seeds []Seed) *Portfolio {
	stocks := make([]*Stock, 0, len(seeds))
	for _, seed := range seeds {
		stocks = append(stocks, &Stock{symbol: seed.Symbol, Price: seed.Price})
	}
	return &Portfolio{stocks: stocks}
}

// Stocks returns the portfolio entries in display order. The pointers are
// shared so callers can update prices in place.
func (p *Portfolio) Stocks() []*Stock {
	return p.stocks
}

// Symbols returns a copy of the symbols in display order.
func (p *Portfolio) Symbols() []string {
	out := make([]string, len(p.stocks))
	for i, s := range p.stocks {
		out[i] = s.symbol
	}
	return out
}

func (p *Portfolio) Len() int {
	return len(p.stocks)
}

// FormatLine renders a stock as "<symbol padded to 6> : $<price>".
func FormatLine(s *Stock) string {
	return fmt.Sprintf("%-6s : $%s", s.symbol, FormatPrice(s.Price))
}

// FormatPrice renders a price with exactly two decimals, rounding half away
// from zero on the shortest decimal representation (2.675 -> "2.68").
func FormatPrice(price float64) string {
	return decimal.NewFromFloat(price).StringFixed(2)
}
