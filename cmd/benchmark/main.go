package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/omnitrade/execution-engine/pkg/riskgate"
	"github.com/omnitrade/execution-engine/pkg/sim"
)

const (
	numOrders = 1_000_000
	minPrice  = 100.0
	maxPrice  = 200.0
	minAmount = 0.0001
	maxAmount = 10.0
	balance   = 999999.0
)

func randomOrder(id int) *riskgate.Order {
	side := riskgate.OrderSideBuy
	if rand.Intn(2) == 0 {
		side = riskgate.OrderSideSell
	}
	price := minPrice + rand.Float64()*(maxPrice-minPrice)
	amount := rand.Float64() * 12 // some orders land outside the bounds

	return &riskgate.Order{
		ID:     fmt.Sprintf("ORD-%06d", id),
		Symbol: "ABC",
		Price:  float64(int(price*100)) / 100,
		Amount: amount,
		Side:   side,
	}
}

func main() {
	rand.Seed(time.Now().UnixNano())

	accepted := 0
	rejected := 0

	start := time.Now()
	for i := 0; i < numOrders; i++ {
		order := randomOrder(i + 1)
		ok, _ := riskgate.ValidateOrder(order.Price, order.Amount, minAmount, maxAmount, balance)
		if ok {
			accepted++
		} else {
			rejected++
		}
	}
	gateElapsed := time.Since(start)

	start = time.Now()
	report := sim.RunHeavySim("benchmark")
	simElapsed := time.Since(start)

	fmt.Println("--------")
	fmt.Printf("Total Orders   : %d\n", numOrders)
	fmt.Printf("Accepted       : %d\n", accepted)
	fmt.Printf("Rejected       : %d\n", rejected)
	fmt.Printf("Gate Time      : %s\n", gateElapsed)
	fmt.Println("--------")
	fmt.Println(report)
	fmt.Printf("Sim Time       : %s\n", simElapsed)
}
