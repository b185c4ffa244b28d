//go:build js && wasm

// Browser bridge. Build with GOOS=js GOARCH=wasm; the functions are attached
// to the JS global object and hold no state between calls.
package main

import (
	"syscall/js"

	"github.com/omnitrade/execution-engine/pkg/riskgate"
	"github.com/omnitrade/execution-engine/pkg/sim"
)

// isSafeEntry(currentPrice, spread, volatility, maxSpread, maxVolatility);
// currentPrice is accepted for caller parity and ignored.
func isSafeEntry(this js.Value, args []js.Value) any {
	return riskgate.IsSafeEntry(args[1].Float(), args[2].Float(), args[3].Float(), args[4].Float())
}

// validateOrder(price, amount, minAmount, maxAmount, balance) -> {valid, reason}
func validateOrder(this js.Value, args []js.Value) any {
	ok, reason := riskgate.ValidateOrder(args[0].Float(), args[1].Float(), args[2].Float(), args[3].Float(), args[4].Float())
	return map[string]any{
		"valid":  ok,
		"reason": reason,
	}
}

// runHeavySim(data) -> report string
func runHeavySim(this js.Value, args []js.Value) any {
	return sim.RunHeavySim(args[0].String())
}

func main() {
	js.Global().Set("isSafeEntry", js.FuncOf(isSafeEntry))
	js.Global().Set("validateOrder", js.FuncOf(validateOrder))
	js.Global().Set("runHeavySim", js.FuncOf(runHeavySim))

	// Keep the program alive so the exported functions stay callable.
	select {}
}
