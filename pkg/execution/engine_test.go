package execution

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/omnitrade/execution-engine/config"
	"github.com/omnitrade/execution-engine/pkg/marketstats"
	"github.com/omnitrade/execution-engine/pkg/riskgate"
	"github.com/shopspring/decimal"
)

func testConfig() *config.AppConfig {
	return &config.AppConfig{
		ServiceName:      "test",
		LogLevel:         "error",
		HeartbeatSeconds: 60,
		Gate: &config.GateConfig{
			OrderLimits:     riskgate.OrderLimits{MinAmount: 1, MaxAmount: 10},
			MarketLimits:    riskgate.MarketLimits{MaxSpread: 0.5, MaxVolatility: 0.02},
			Balance:         1000,
			StatsWindowSize: 10,
		},
	}
}

func TestEngineAcceptsValidOrder(t *testing.T) {
	engine, err := NewEngine(testConfig())
	if err != nil {
		t.Fatal(err)
	}

	d := engine.EvaluateOrder(context.Background(), &riskgate.Order{ID: "1", Price: 100, Amount: 5, Side: riskgate.OrderSideBuy})
	if !d.Accepted || d.Reason != riskgate.ReasonValid {
		t.Fatalf("expected accept, got %+v", d)
	}
}

func TestEngineRejectsWithVerbatimReason(t *testing.T) {
	engine, err := NewEngine(testConfig())
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()

	cases := []struct {
		order  riskgate.Order
		reason string
	}{
		{riskgate.Order{ID: "1", Price: 100, Amount: 0.5}, riskgate.ReasonAmountBelowMin},
		{riskgate.Order{ID: "2", Price: 100, Amount: 20}, riskgate.ReasonAmountAboveMax},
		{riskgate.Order{ID: "3", Price: -5, Amount: 5}, riskgate.ReasonPriceNotPositive},
		{riskgate.Order{ID: "4", Price: 300, Amount: 5}, riskgate.ReasonInsufficientBalance},
	}

	for _, c := range cases {
		d := engine.EvaluateOrder(ctx, &c.order)
		if d.Accepted {
			t.Errorf("order %s: expected rejection", c.order.ID)
		}
		if d.Reason != c.reason {
			t.Errorf("order %s: expected reason %q, got %q", c.order.ID, c.reason, d.Reason)
		}
	}
}

func TestEngineBalanceSourceOverride(t *testing.T) {
	engine, err := NewEngine(testConfig())
	if err != nil {
		t.Fatal(err)
	}
	engine.SetBalanceSource(func() float64 { return 100 })

	d := engine.EvaluateOrder(context.Background(), &riskgate.Order{ID: "1", Price: 100, Amount: 5})
	if d.Accepted || d.Reason != riskgate.ReasonInsufficientBalance {
		t.Fatalf("expected insufficient balance with live source, got %+v", d)
	}
}

func TestEngineMarketSafe(t *testing.T) {
	engine, err := NewEngine(testConfig())
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()

	// empty window reports zeros -> safe
	if !engine.MarketSafe(ctx) {
		t.Fatal("empty window should be safe")
	}

	// widen the spread past the ceiling
	engine.OnTick(marketstats.Tick{
		Bid: decimal.NewFromFloat(100),
		Ask: decimal.NewFromFloat(101),
	})
	if engine.MarketSafe(ctx) {
		t.Fatal("spread 1.0 over ceiling 0.5 should be unsafe")
	}
}

func TestEngineAmountLimitFilePerSymbol(t *testing.T) {
	path := filepath.Join(t.TempDir(), "limits.json")
	content := `{"BTCUSDT": {"minAmount": 1, "maxAmount": 2}}`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg := testConfig()
	cfg.Gate.AmountLimitFile = path

	engine, err := NewEngine(cfg)
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()

	// 5 passes the gate-wide bounds but breaks the BTCUSDT file entry
	d := engine.EvaluateOrder(ctx, &riskgate.Order{ID: "1", Symbol: "BTCUSDT", Price: 100, Amount: 5})
	if d.Accepted {
		t.Fatalf("expected per-symbol rejection, got %+v", d)
	}

	// a symbol without a file entry falls back to the gate-wide bounds
	d = engine.EvaluateOrder(ctx, &riskgate.Order{ID: "2", Symbol: "ETHUSDT", Price: 100, Amount: 5})
	if !d.Accepted {
		t.Fatalf("expected fallback accept for unconfigured symbol, got %+v", d)
	}
}

func TestEngineGateMarketOnOrder(t *testing.T) {
	cfg := testConfig()
	cfg.Gate.GateMarketOnOrder = true

	engine, err := NewEngine(cfg)
	if err != nil {
		t.Fatal(err)
	}

	engine.OnTick(marketstats.Tick{
		Bid: decimal.NewFromFloat(100),
		Ask: decimal.NewFromFloat(101),
	})

	d := engine.EvaluateOrder(context.Background(), &riskgate.Order{ID: "1", Price: 100, Amount: 5})
	if d.Accepted {
		t.Fatalf("order must be rejected while market conditions are unsafe, got %+v", d)
	}
}
