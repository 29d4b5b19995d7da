package model

import "time"

// dueWeekday is the weekday every installment falls on.
const dueWeekday = time.Monday

// DateOnly strips any time-of-day component, returning the calendar date at
// midnight UTC. Quote dates never carry a time of day.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// NextDueDate maps a calendar date to the next qualifying due date: the first
// Monday of the month after the one containing d. Rolling always advances into
// the following month, even when d itself is a qualifying Monday.
func NextDueDate(d time.Time) time.Time {
	firstOfNextMonth := time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	offset := (int(dueWeekday) - int(firstOfNextMonth.Weekday()) + 7) % 7
	return firstOfNextMonth.AddDate(0, 0, offset)
}
