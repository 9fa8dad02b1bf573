package portfolio

// MinPrice is the floor every stock price is clamped to after an update.
const MinPrice = 0.01

// Seed is a (symbol, initial price) pair used to build a Portfolio.
type Seed struct {
	Symbol string  `json:"symbol"` // Ticker symbol (e.g., "AAPL")
	Price  float64 `json:"price"`  // Starting price in dollars
}

// Stock is a tracked ticker. Symbol never changes after creation; Price is
// mutated in place by the simulator.
type Stock struct {
	symbol string
	Price  float64
}

func (s *Stock) Symbol() string {
	return s.symbol
}
