package riskrule

import "github.com/omnitrade/execution-engine/pkg/riskgate"

type RiskRule interface {
	Check(order *riskgate.Order) error
}
