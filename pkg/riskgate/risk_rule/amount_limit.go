package riskrule

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/omnitrade/execution-engine/pkg/riskgate"
)

// AmountLimitRule rejects orders whose amount falls outside the bounds
// configured for their symbol. A symbol without its own entry uses the
// gate-wide fallback. MaxAmount == 0 means no upper bound.
type AmountLimitRule struct {
	Config   map[string]riskgate.OrderLimits
	fallback riskgate.OrderLimits
}

func NewAmountLimitRule(fallback riskgate.OrderLimits) *AmountLimitRule {
	return &AmountLimitRule{fallback: fallback}
}

// NewAmountLimitRuleFromFile loads per-symbol bounds from a JSON file keyed
// by symbol.
func NewAmountLimitRuleFromFile(path string, fallback riskgate.OrderLimits) (*AmountLimitRule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg map[string]riskgate.OrderLimits
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &AmountLimitRule{Config: cfg, fallback: fallback}, nil
}

func (r *AmountLimitRule) Check(order *riskgate.Order) error {
	limits, ok := r.Config[order.Symbol]
	if !ok { // no config -> gate-wide bounds
		limits = r.fallback
	}

	if order.Amount < limits.MinAmount {
		return fmt.Errorf("amount %v below minimum %v", order.Amount, limits.MinAmount)
	}
	if limits.MaxAmount != 0 && order.Amount > limits.MaxAmount {
		return fmt.Errorf("amount %v exceeds maximum %v", order.Amount, limits.MaxAmount)
	}
	return nil
}
