package service

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/davidaanderson/PaymentScheduleGenerator/internal/domain/model"
)

// AllowedTerms lists the repayment terms a quote may be taken over.
var AllowedTerms = []int{12, 24, 36}

// MinimumDepositPercent is the deposit floor as a fraction of the vehicle price.
var MinimumDepositPercent = decimal.NewFromFloat(0.15)

// Violation describes one failed validation rule on a quote request.
type Violation struct {
	Field   string
	Message string
}

// QuoteValidator checks quote requests against the lending rules. All rules
// are evaluated on every call so the caller receives the complete set of
// violations at once rather than the first one found.
type QuoteValidator struct{}

// NewQuoteValidator creates a QuoteValidator.
func NewQuoteValidator() *QuoteValidator {
	return &QuoteValidator{}
}

// Validate applies every lending rule to the request and returns the
// violations, or nil when the request is acceptable. The caller supplies now
// so the delivery-date rule is deterministic; only the calendar dates are
// compared.
func (v *QuoteValidator) Validate(vehiclePrice, deposit decimal.Decimal, termInMonths int, deliveryDate, now time.Time) []Violation {
	var violations []Violation

	if !vehiclePrice.IsPositive() {
		violations = append(violations, Violation{
			Field:   "vehiclePrice",
			Message: "Vehicle price must be greater than zero.",
		})
	}

	if !v.termAllowed(termInMonths) {
		violations = append(violations, Violation{
			Field:   "termInMonths",
			Message: "The term must be 12, 24 or 36 months.",
		})
	}

	if deposit.LessThan(vehiclePrice.Mul(MinimumDepositPercent)) {
		violations = append(violations, Violation{
			Field:   "deposit",
			Message: "Deposit must be a minimum of 15% of the vehicle price.",
		})
	}

	if model.DateOnly(deliveryDate).Before(model.DateOnly(now)) {
		violations = append(violations, Violation{
			Field:   "deliveryDate",
			Message: "Delivery date must not be in the past.",
		})
	}

	return violations
}

func (v *QuoteValidator) termAllowed(termInMonths int) bool {
	for _, t := range AllowedTerms {
		if termInMonths == t {
			return true
		}
	}
	return false
}
