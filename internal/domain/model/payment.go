package model

import (
	"time"

	"github.com/davidaanderson/PaymentScheduleGenerator/pkg/money"
)

// Payment is one installment of a payment schedule: an amount due on a date.
// Immutable.
type Payment struct {
	dueDate time.Time
	amount  money.Money
}

// NewPayment creates a Payment due on the given date.
func NewPayment(dueDate time.Time, amount money.Money) Payment {
	return Payment{dueDate: DateOnly(dueDate), amount: amount}
}

// DueDate returns the calendar date the payment falls due.
func (p Payment) DueDate() time.Time {
	return p.dueDate
}

// Amount returns the payment amount.
func (p Payment) Amount() money.Money {
	return p.amount
}

// PaymentSchedule is the computed repayment plan for a quote. It echoes the
// vehicle price and deposit for display alongside the ordered installments.
// Immutable.
type PaymentSchedule struct {
	vehiclePrice money.Money
	deposit      money.Money
	payments     []Payment
}

// NewPaymentSchedule assembles a schedule from its installments.
func NewPaymentSchedule(vehiclePrice, deposit money.Money, payments []Payment) PaymentSchedule {
	owned := make([]Payment, len(payments))
	copy(owned, payments)
	return PaymentSchedule{
		vehiclePrice: vehiclePrice,
		deposit:      deposit,
		payments:     owned,
	}
}

// VehiclePrice returns the vehicle price the schedule was computed from.
func (s PaymentSchedule) VehiclePrice() money.Money {
	return s.vehiclePrice
}

// Deposit returns the deposit the schedule was computed from.
func (s PaymentSchedule) Deposit() money.Money {
	return s.deposit
}

// Payments returns a copy of the ordered installments.
func (s PaymentSchedule) Payments() []Payment {
	out := make([]Payment, len(s.payments))
	copy(out, s.payments)
	return out
}

// Total returns the sum of all installment amounts: the financed loan value
// plus both fees.
func (s PaymentSchedule) Total() (money.Money, error) {
	total := money.Zero(s.vehiclePrice.Currency())
	var err error
	for _, p := range s.payments {
		total, err = total.Add(p.Amount())
		if err != nil {
			return money.Money{}, err
		}
	}
	return total, nil
}
