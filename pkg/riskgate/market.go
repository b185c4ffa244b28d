package riskgate

// IsSafeEntry reports whether current market conditions allow opening a new
// position. Limits are inclusive ceilings: a value equal to its limit passes,
// only a strict overshoot rejects.
//
// Inputs are not sanitized. A NaN spread or volatility compares false under >
// and is therefore treated as safe; that follows plain float64 comparison
// semantics and callers relying on it should read this as a known edge
// behavior, not a guarantee of input validation.
func IsSafeEntry(spread, volatility, maxSpread, maxVolatility float64) bool {
	if spread > maxSpread {
		return false
	}
	if volatility > maxVolatility {
		return false
	}
	return true
}

// MarketLimits holds the configured market-condition ceilings.
type MarketLimits struct {
	MaxSpread     float64 `yaml:"max_spread" json:"maxSpread"`
	MaxVolatility float64 `yaml:"max_volatility" json:"maxVolatility"`
}

func (l MarketLimits) Safe(spread, volatility float64) bool {
	return IsSafeEntry(spread, volatility, l.MaxSpread, l.MaxVolatility)
}
