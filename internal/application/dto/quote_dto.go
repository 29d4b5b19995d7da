package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// CreatePaymentScheduleRequest carries the quote inputs into the application
// layer. Amounts arrive as decimals so no precision is lost at the boundary.
type CreatePaymentScheduleRequest struct {
	VehiclePrice decimal.Decimal
	Deposit      decimal.Decimal
	TermInMonths int
	DeliveryDate time.Time
}

// PaymentResponse is one installment of a computed schedule.
type PaymentResponse struct {
	DueDate string `json:"due_date"`
	Amount  string `json:"amount"`
}

// PaymentScheduleResponse is the computed repayment plan returned to callers.
type PaymentScheduleResponse struct {
	QuoteID      string            `json:"quote_id"`
	Currency     string            `json:"currency"`
	VehiclePrice string            `json:"vehicle_price"`
	Deposit      string            `json:"deposit"`
	TotalPayable string            `json:"total_payable"`
	Payments     []PaymentResponse `json:"payments"`
}

// Violation reports one failed validation rule.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries the full set of rule violations for a rejected
// request. It is a recoverable outcome, distinct from infrastructure failure.
type ValidationError struct {
	Violations []Violation
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	messages := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		messages[i] = v.Message
	}
	return fmt.Sprintf("quote validation failed: %s", strings.Join(messages, " "))
}

// QuoteTermsResponse describes the lending terms on offer.
type QuoteTermsResponse struct {
	Currency              string   `json:"currency"`
	ArrangementFee        string   `json:"arrangement_fee"`
	CompletionFee         string   `json:"completion_fee"`
	AvailableTerms        []int    `json:"available_terms"`
	MinimumDepositPercent string   `json:"minimum_deposit_percent"`
}
