// Package market provides the display-only mock market catalog: a fixed set
// of tickers with synthetic price histories, plus the upcoming-matches board.
// Nothing here is user-mutable and no live feed is consulted.
package market

import (
	"fmt"

	"tradepulse/internal/domain"
)

// historyFactors generate each asset's short display series from its spot
// price. The final point equals the spot price itself.
var historyFactors = []float64{0.98, 1.01, 0.99, 1.02, 1.05, 1.00}

type assetSeed struct {
	symbol string
	name   string
	price  float64
	change float64
}

var assetSeeds = []assetSeed{
	{"BTC", "Bitcoin", 68432.12, 2.4},
	{"ETH", "Ethereum", 3452.88, -0.8},
	{"EUR/USD", "Euro / US Dollar", 1.0854, 0.02},
	{"GBP/JPY", "Pound / Yen", 191.24, 0.45},
	{"SOL", "Solana", 142.15, 8.12},
}

// Catalog is the read-only market data set.
type Catalog struct {
	assets  []domain.MarketAsset
	bySym   map[string]int
	matches []domain.Match
}

// NewCatalog builds the fixed catalog. The result is deterministic: the same
// assets, histories and matches on every call.
func NewCatalog() *Catalog {
	c := &Catalog{bySym: make(map[string]int, len(assetSeeds))}
	for i, seed := range assetSeeds {
		history := make([]domain.PricePoint, len(historyFactors))
		for j, f := range historyFactors {
			history[j] = domain.PricePoint{
				Time:  fmt.Sprintf("%dh", j+1),
				Value: seed.price * f,
			}
		}
		c.assets = append(c.assets, domain.MarketAsset{
			Symbol:  seed.symbol,
			Name:    seed.name,
			Price:   seed.price,
			Change:  seed.change,
			History: history,
		})
		c.bySym[seed.symbol] = i
	}

	c.matches = []domain.Match{
		{League: "UCL", Title: "Real Madrid vs Man City", Starts: "Tomorrow 20:00", Odds: []float64{2.45, 3.20, 2.10}},
		{League: "NBA", Title: "Lakers vs Warriors", Starts: "Tonight 03:00", Odds: []float64{1.85, 2.05}},
	}
	return c
}

// Assets returns the catalog's tickers in their fixed display order.
func (c *Catalog) Assets() []domain.MarketAsset {
	out := make([]domain.MarketAsset, len(c.assets))
	copy(out, c.assets)
	return out
}

// Get returns the asset with the given symbol.
func (c *Catalog) Get(symbol string) (domain.MarketAsset, bool) {
	i, ok := c.bySym[symbol]
	if !ok {
		return domain.MarketAsset{}, false
	}
	return c.assets[i], true
}

// Matches returns the upcoming fixtures with their betting odds.
func (c *Catalog) Matches() []domain.Match {
	out := make([]domain.Match, len(c.matches))
	copy(out, c.matches)
	return out
}
