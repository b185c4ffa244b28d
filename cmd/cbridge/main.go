// Scripting-language bridge. Build with -buildmode=c-shared and load the
// resulting library via the host language's FFI (ctypes, fiddle, ...).
// Every exported function is stateless and may be called repeatedly from any
// number of threads.
package main

/*
#include <stdlib.h>
*/
import "C"

import (
	"unsafe"

	"github.com/omnitrade/execution-engine/pkg/riskgate"
	"github.com/omnitrade/execution-engine/pkg/sim"
)

// is_safe_entry keeps current_price in the signature for caller parity even
// though the decision does not use it.
//
//export is_safe_entry
func is_safe_entry(currentPrice, spread, volatility, maxSpread, maxVolatility C.double) C.int {
	_ = currentPrice
	if riskgate.IsSafeEntry(float64(spread), float64(volatility), float64(maxSpread), float64(maxVolatility)) {
		return 1
	}
	return 0
}

// validate_order writes the reason string into *reason; the caller owns it
// and must release it with free_string.
//
//export validate_order
func validate_order(price, amount, minAmount, maxAmount, balance C.double, reason **C.char) C.int {
	ok, msg := riskgate.ValidateOrder(float64(price), float64(amount), float64(minAmount), float64(maxAmount), float64(balance))
	if reason != nil {
		*reason = C.CString(msg)
	}
	if ok {
		return 1
	}
	return 0
}

// run_heavy_sim returns a report string owned by the caller; release it with
// free_string.
//
//export run_heavy_sim
func run_heavy_sim(data *C.char) *C.char {
	return C.CString(sim.RunHeavySim(C.GoString(data)))
}

//export free_string
func free_string(s *C.char) {
	C.free(unsafe.Pointer(s))
}

func main() {}
