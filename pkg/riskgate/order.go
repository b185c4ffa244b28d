package riskgate

type OrderSide string

const (
	OrderSideBuy  OrderSide = "BUY"
	OrderSideSell OrderSide = "SELL"
)

// Order is a candidate trade request. It is built by the caller right before
// a check, never mutated, and not retained by the gate.
type Order struct {
	ID     string
	Symbol string
	Price  float64
	Amount float64
	Side   OrderSide
}

// Notional is the order value in quote currency.
func (o *Order) Notional() float64 {
	return o.Amount * o.Price
}
