package execution

import (
	"context"

	"github.com/omnitrade/execution-engine/config"
	"github.com/omnitrade/execution-engine/pkg/logging"
	"github.com/omnitrade/execution-engine/pkg/marketstats"
	"github.com/omnitrade/execution-engine/pkg/riskgate"
	riskrule "github.com/omnitrade/execution-engine/pkg/riskgate/risk_rule"
	"go.uber.org/zap"
)

// Decision is the gate outcome for one order.
type Decision struct {
	Accepted bool
	Reason   string
}

// Engine is the long-lived pre-trade gate of the execution service. The
// decision functions themselves are pure; the engine only binds them to
// configured limits, the live market-stats window and logging.
type Engine struct {
	orderLimits  riskgate.OrderLimits
	marketLimits riskgate.MarketLimits
	balance      riskrule.BalanceSource
	rules        []riskrule.RiskRule
	stats        *marketstats.Window
	logger       *logging.Logger
}

func NewEngine(cfg *config.AppConfig) (*Engine, error) {
	gateCfg := cfg.Gate

	e := &Engine{
		orderLimits:  gateCfg.OrderLimits,
		marketLimits: gateCfg.MarketLimits,
		balance:      func() float64 { return gateCfg.Balance },
		stats:        marketstats.NewWindow(gateCfg.StatsWindowSize),
		logger:       logging.NewLogger(logging.ParseLevel(cfg.LogLevel)),
	}

	if gateCfg.AmountLimitFile != "" {
		rule, err := riskrule.NewAmountLimitRuleFromFile(gateCfg.AmountLimitFile, gateCfg.OrderLimits)
		if err != nil {
			return nil, err
		}
		e.rules = append(e.rules, rule)
	}
	if gateCfg.GateMarketOnOrder {
		e.rules = append(e.rules, riskrule.NewMarketConditionRule(e.marketLimits, e.stats.Snapshot))
	}

	return e, nil
}

// SetBalanceSource replaces the static configured balance with a live feed.
func (e *Engine) SetBalanceSource(src riskrule.BalanceSource) {
	e.balance = src
}

// EvaluateOrder runs the core validity check and then any configured extra
// rules. The first failure decides the reported reason.
func (e *Engine) EvaluateOrder(ctx context.Context, order *riskgate.Order) Decision {
	ok, reason := e.orderLimits.Validate(order.Price, order.Amount, e.balance())
	if !ok {
		e.logger.Warn(ctx, "order rejected",
			zap.String("order_id", order.ID),
			zap.String("side", string(order.Side)),
			zap.String("reason", reason))
		return Decision{Accepted: false, Reason: reason}
	}

	for _, rule := range e.rules {
		if err := rule.Check(order); err != nil {
			e.logger.Warn(ctx, "order rejected by rule",
				zap.String("order_id", order.ID),
				zap.Error(err))
			return Decision{Accepted: false, Reason: err.Error()}
		}
	}

	e.logger.Debug(ctx, "order accepted", zap.String("order_id", order.ID))
	return Decision{Accepted: true, Reason: riskgate.ReasonValid}
}

// MarketSafe checks the current market-stats snapshot against the configured
// ceilings.
func (e *Engine) MarketSafe(ctx context.Context) bool {
	spread, volatility := e.stats.Snapshot()
	safe := e.marketLimits.Safe(spread, volatility)
	if !safe {
		e.logger.Warn(ctx, "market conditions unsafe",
			zap.Float64("spread", spread),
			zap.Float64("volatility", volatility))
	}
	return safe
}

// OnTick feeds a top-of-book observation into the stats window.
func (e *Engine) OnTick(t marketstats.Tick) {
	e.stats.Add(t)
}

// Heartbeat logs liveness together with the current market status.
func (e *Engine) Heartbeat(ctx context.Context) {
	spread, volatility := e.stats.Snapshot()
	e.logger.Info(ctx, "Heartbeat: Execution Engine is alive.",
		zap.Float64("spread", spread),
		zap.Float64("volatility", volatility),
		zap.Bool("market_safe", e.marketLimits.Safe(spread, volatility)))
}
