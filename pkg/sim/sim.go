package sim

import (
	"fmt"
	"math"
)

// Iterations is the fixed workload size. Changing it changes the reported
// score and breaks result comparisons across devices.
const Iterations = 1_000_000

// RunHeavySim is a self-contained CPU-throughput workload for constrained
// devices. It accumulates sin(sqrt(i)) over a fixed iteration count and
// reports the result; the report format is a stable contract and the input
// payload is echoed back untouched.
func RunHeavySim(data string) string {
	score := 0.0
	for i := 0; i < Iterations; i++ {
		score += math.Sin(math.Sqrt(float64(i)))
	}

	return fmt.Sprintf("Simulation Complete. Processed %d iterations. Score: %.4f. Data received: %s", Iterations, score, data)
}
