package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/davidaanderson/PaymentScheduleGenerator/pkg/money"
)

// Quote aggregates the financial inputs of a vehicle-finance quote and
// produces the repayment schedule. Constructed once from validated input,
// immutable thereafter.
type Quote struct {
	id             uuid.UUID
	vehiclePrice   money.Money
	deposit        money.Money
	arrangementFee money.Money
	completionFee  money.Money
	deliveryDate   time.Time
	termInMonths   int
}

// NewQuote creates a Quote. The upstream validation rule set guarantees the
// business constraints (deposit floor, permitted terms, future delivery date);
// this constructor only enforces the preconditions the schedule algorithm
// itself cannot survive without: a term with at least a first and a final
// installment, and a single currency across all four amounts.
func NewQuote(
	vehiclePrice, deposit, arrangementFee, completionFee money.Money,
	deliveryDate time.Time,
	termInMonths int,
) (Quote, error) {
	if termInMonths < 2 {
		return Quote{}, fmt.Errorf("term of %d months cannot produce a schedule: at least a first and a final installment are required", termInMonths)
	}

	currency := vehiclePrice.Currency()
	for _, m := range []money.Money{deposit, arrangementFee, completionFee} {
		if m.Currency() != currency {
			return Quote{}, fmt.Errorf("currency mismatch: quote amounts must all be in %s, got %s", currency, m.Currency())
		}
	}

	return Quote{
		id:             uuid.New(),
		vehiclePrice:   vehiclePrice,
		deposit:        deposit,
		arrangementFee: arrangementFee,
		completionFee:  completionFee,
		deliveryDate:   DateOnly(deliveryDate),
		termInMonths:   termInMonths,
	}, nil
}

// ID returns the quote identifier.
func (q Quote) ID() uuid.UUID { return q.id }

// VehiclePrice returns the vehicle price.
func (q Quote) VehiclePrice() money.Money { return q.vehiclePrice }

// Deposit returns the deposit.
func (q Quote) Deposit() money.Money { return q.deposit }

// ArrangementFee returns the fee added to the first installment.
func (q Quote) ArrangementFee() money.Money { return q.arrangementFee }

// CompletionFee returns the fee added to the final installment.
func (q Quote) CompletionFee() money.Money { return q.completionFee }

// DeliveryDate returns the vehicle delivery date.
func (q Quote) DeliveryDate() time.Time { return q.deliveryDate }

// TermInMonths returns the number of monthly installments.
func (q Quote) TermInMonths() int { return q.termInMonths }

// CalculatePaymentSchedule computes the repayment plan:
//
//  1. The loan value (price minus deposit) is split evenly across the term,
//     with the final part absorbing any rounding remainder.
//  2. The first installment falls on the first qualifying due date after
//     delivery and carries the arrangement fee.
//  3. Each subsequent installment falls on the next due date in the monthly
//     rolling chain; the final one carries the completion fee.
//
// The installment amounts always sum to loan value plus both fees, exact to
// the minor currency unit.
func (q Quote) CalculatePaymentSchedule() (PaymentSchedule, error) {
	payments, err := q.calculatePayments()
	if err != nil {
		return PaymentSchedule{}, err
	}
	return NewPaymentSchedule(q.vehiclePrice, q.deposit, payments), nil
}

func (q Quote) calculatePayments() ([]Payment, error) {
	loanValue, err := q.vehiclePrice.Subtract(q.deposit)
	if err != nil {
		return nil, err
	}

	monthlyValues, err := loanValue.DivideEvenly(q.termInMonths)
	if err != nil {
		return nil, err
	}

	firstDueDate := NextDueDate(q.deliveryDate)
	payments := make([]Payment, 0, q.termInMonths)

	first, err := q.firstPayment(monthlyValues[0], firstDueDate)
	if err != nil {
		return nil, err
	}
	payments = append(payments, first)

	dueDate := NextDueDate(firstDueDate)
	for month := 1; month < q.termInMonths-1; month++ {
		payments = append(payments, NewPayment(dueDate, monthlyValues[month]))
		dueDate = NextDueDate(dueDate)
	}

	final, err := q.finalPayment(monthlyValues[q.termInMonths-1], dueDate)
	if err != nil {
		return nil, err
	}
	payments = append(payments, final)

	return payments, nil
}

func (q Quote) firstPayment(value money.Money, dueDate time.Time) (Payment, error) {
	withFee, err := value.Add(q.arrangementFee)
	if err != nil {
		return Payment{}, err
	}
	return NewPayment(dueDate, withFee), nil
}

func (q Quote) finalPayment(value money.Money, dueDate time.Time) (Payment, error) {
	withFee, err := value.Add(q.completionFee)
	if err != nil {
		return Payment{}, err
	}
	return NewPayment(dueDate, withFee), nil
}
