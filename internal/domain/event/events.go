package event

import (
	"time"

	"github.com/davidaanderson/PaymentScheduleGenerator/internal/domain/model"
	"github.com/davidaanderson/PaymentScheduleGenerator/pkg/events"
)

// Event types for the quote aggregate.
const (
	EventTypePaymentScheduleCreated = "quote.payment_schedule.created"
)

const aggregateTypeQuote = "Quote"

// PaymentScheduleCreated is emitted after a repayment schedule has been
// computed for a quote. Amounts are serialized as fixed two-decimal strings
// and dates as calendar dates.
type PaymentScheduleCreated struct {
	events.BaseEvent
	VehiclePrice string `json:"vehicle_price"`
	Deposit      string `json:"deposit"`
	Currency     string `json:"currency"`
	TermInMonths int    `json:"term_in_months"`
	FirstDueDate string `json:"first_due_date"`
	TotalPayable string `json:"total_payable"`
}

// NewPaymentScheduleCreated builds the event from the quote and its computed
// schedule.
func NewPaymentScheduleCreated(quote model.Quote, schedule model.PaymentSchedule) (*PaymentScheduleCreated, error) {
	total, err := schedule.Total()
	if err != nil {
		return nil, err
	}

	payments := schedule.Payments()
	return &PaymentScheduleCreated{
		BaseEvent:    events.NewBaseEvent(EventTypePaymentScheduleCreated, quote.ID().String(), aggregateTypeQuote),
		VehiclePrice: quote.VehiclePrice().Amount().StringFixed(2),
		Deposit:      quote.Deposit().Amount().StringFixed(2),
		Currency:     quote.VehiclePrice().Currency().Code(),
		TermInMonths: quote.TermInMonths(),
		FirstDueDate: payments[0].DueDate().Format(time.DateOnly),
		TotalPayable: total.Amount().StringFixed(2),
	}, nil
}
