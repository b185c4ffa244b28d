package riskgate

// Rejection reasons returned by ValidateOrder. Callers pattern-match on these
// strings, so they must stay stable verbatim.
const (
	ReasonValid               = "Valid"
	ReasonAmountBelowMin      = "Amount below minimum limit"
	ReasonAmountAboveMax      = "Amount exceeds maximum limit"
	ReasonPriceNotPositive    = "Price must be positive"
	ReasonInsufficientBalance = "Insufficient balance"
)

// ValidateOrder checks a single order against amount bounds and available
// balance. Rules run in a fixed sequence and the first failing rule decides
// the reported reason:
//
//  1. amount below minAmount
//  2. amount above maxAmount
//  3. price not strictly positive
//  4. notional (amount*price) above balance
//
// Bounds are inclusive: amount equal to minAmount or maxAmount passes, and
// spending exactly the available balance passes. price == 0 is rejected.
// NaN or infinite inputs flow through plain float64 comparisons.
func ValidateOrder(price, amount, minAmount, maxAmount, balance float64) (bool, string) {
	if amount < minAmount {
		return false, ReasonAmountBelowMin
	}
	if amount > maxAmount {
		return false, ReasonAmountAboveMax
	}
	if price <= 0 {
		return false, ReasonPriceNotPositive
	}
	if amount*price > balance {
		return false, ReasonInsufficientBalance
	}
	return true, ReasonValid
}

// OrderLimits holds the configured per-order amount bounds.
type OrderLimits struct {
	MinAmount float64 `yaml:"min_amount" json:"minAmount"`
	MaxAmount float64 `yaml:"max_amount" json:"maxAmount"`
}

func (l OrderLimits) Validate(price, amount, balance float64) (bool, string) {
	return ValidateOrder(price, amount, l.MinAmount, l.MaxAmount, balance)
}
