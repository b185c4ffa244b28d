package riskrule

import (
	"fmt"

	"github.com/omnitrade/execution-engine/pkg/riskgate"
)

// BalanceSource returns the funds currently available for new orders, in
// quote currency.
type BalanceSource func() float64

// NotionalBalanceRule rejects orders whose notional exceeds the available
// balance. Spending exactly the balance is allowed.
type NotionalBalanceRule struct {
	balance BalanceSource
}

func NewNotionalBalanceRule(balance BalanceSource) *NotionalBalanceRule {
	return &NotionalBalanceRule{balance: balance}
}

func (r *NotionalBalanceRule) Check(order *riskgate.Order) error {
	available := r.balance()
	if order.Notional() > available {
		return fmt.Errorf("notional %v exceeds available balance %v", order.Notional(), available)
	}
	return nil
}
