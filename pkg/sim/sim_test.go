package sim

import (
	"strings"
	"testing"
)

func TestRunHeavySimReportFormat(t *testing.T) {
	report := RunHeavySim("payload-123")

	if !strings.HasPrefix(report, "Simulation Complete. Processed 1000000 iterations. Score: ") {
		t.Errorf("unexpected report prefix: %q", report)
	}
	if !strings.HasSuffix(report, ". Data received: payload-123") {
		t.Errorf("input payload must be echoed back untouched: %q", report)
	}
}

func TestRunHeavySimDeterministic(t *testing.T) {
	a := RunHeavySim("x")
	b := RunHeavySim("x")
	if a != b {
		t.Fatalf("repeated runs must produce identical reports:\n%q\n%q", a, b)
	}
}

func TestRunHeavySimEmptyPayload(t *testing.T) {
	report := RunHeavySim("")
	if !strings.HasSuffix(report, ". Data received: ") {
		t.Errorf("empty payload should still be echoed: %q", report)
	}
}

func BenchmarkRunHeavySim(b *testing.B) {
	for i := 0; i < b.N; i++ {
		RunHeavySim("bench")
	}
}
