package riskrule

import (
	"fmt"

	"github.com/omnitrade/execution-engine/pkg/riskgate"
)

// MarketSnapshotSource returns the current spread and volatility.
type MarketSnapshotSource func() (spread, volatility float64)

// MarketConditionRule rejects every order while market conditions breach the
// configured ceilings. The order itself does not influence the decision.
type MarketConditionRule struct {
	limits riskgate.MarketLimits
	source MarketSnapshotSource
}

func NewMarketConditionRule(limits riskgate.MarketLimits, source MarketSnapshotSource) *MarketConditionRule {
	return &MarketConditionRule{limits: limits, source: source}
}

func (r *MarketConditionRule) Check(order *riskgate.Order) error {
	spread, volatility := r.source()
	if !r.limits.Safe(spread, volatility) {
		return fmt.Errorf("unsafe market conditions: spread=%v volatility=%v", spread, volatility)
	}
	return nil
}
