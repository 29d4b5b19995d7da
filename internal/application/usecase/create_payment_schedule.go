package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/davidaanderson/PaymentScheduleGenerator/internal/application/dto"
	"github.com/davidaanderson/PaymentScheduleGenerator/internal/domain/event"
	"github.com/davidaanderson/PaymentScheduleGenerator/internal/domain/model"
	"github.com/davidaanderson/PaymentScheduleGenerator/internal/domain/port"
	"github.com/davidaanderson/PaymentScheduleGenerator/internal/domain/service"
	"github.com/davidaanderson/PaymentScheduleGenerator/pkg/money"
)

// QuoteSettings holds the commercial terms the service applies to every
// quote: the operating currency and the fees attached to the first and final
// installments.
type QuoteSettings struct {
	Currency       money.Currency
	ArrangementFee decimal.Decimal
	CompletionFee  decimal.Decimal
}

// CreatePaymentScheduleUseCase validates a quote request, computes its
// repayment schedule and announces the result.
type CreatePaymentScheduleUseCase struct {
	validator *service.QuoteValidator
	settings  QuoteSettings
	publisher port.EventPublisher
}

// NewCreatePaymentScheduleUseCase creates the use case.
func NewCreatePaymentScheduleUseCase(
	validator *service.QuoteValidator,
	settings QuoteSettings,
	publisher port.EventPublisher,
) *CreatePaymentScheduleUseCase {
	return &CreatePaymentScheduleUseCase{
		validator: validator,
		settings:  settings,
		publisher: publisher,
	}
}

// Execute runs the request through the lending rules and, when they pass,
// returns the computed schedule. Rule failures come back as a
// *dto.ValidationError carrying every violation at once.
func (uc *CreatePaymentScheduleUseCase) Execute(ctx context.Context, req dto.CreatePaymentScheduleRequest) (*dto.PaymentScheduleResponse, error) {
	now := time.Now().UTC()

	if violations := uc.validator.Validate(req.VehiclePrice, req.Deposit, req.TermInMonths, req.DeliveryDate, now); len(violations) > 0 {
		return nil, &dto.ValidationError{Violations: toDTOViolations(violations)}
	}

	quote, err := model.NewQuote(
		money.New(req.VehiclePrice, uc.settings.Currency),
		money.New(req.Deposit, uc.settings.Currency),
		money.New(uc.settings.ArrangementFee, uc.settings.Currency),
		money.New(uc.settings.CompletionFee, uc.settings.Currency),
		req.DeliveryDate,
		req.TermInMonths,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create quote: %w", err)
	}

	schedule, err := quote.CalculatePaymentSchedule()
	if err != nil {
		return nil, fmt.Errorf("failed to calculate payment schedule: %w", err)
	}

	total, err := schedule.Total()
	if err != nil {
		return nil, fmt.Errorf("failed to total payment schedule: %w", err)
	}

	created, err := event.NewPaymentScheduleCreated(quote, schedule)
	if err != nil {
		return nil, fmt.Errorf("failed to build schedule event: %w", err)
	}
	if err := uc.publisher.Publish(ctx, created); err != nil {
		// The schedule is already computed; losing the event must not fail
		// the request.
		slog.Error("failed to publish payment schedule event",
			"quote_id", quote.ID().String(),
			"error", err)
	}

	return toScheduleResponse(quote, schedule, total), nil
}

func toDTOViolations(violations []service.Violation) []dto.Violation {
	out := make([]dto.Violation, len(violations))
	for i, v := range violations {
		out[i] = dto.Violation{Field: v.Field, Message: v.Message}
	}
	return out
}

func toScheduleResponse(quote model.Quote, schedule model.PaymentSchedule, total money.Money) *dto.PaymentScheduleResponse {
	payments := schedule.Payments()
	resp := &dto.PaymentScheduleResponse{
		QuoteID:      quote.ID().String(),
		Currency:     quote.VehiclePrice().Currency().Code(),
		VehiclePrice: quote.VehiclePrice().Amount().StringFixed(2),
		Deposit:      quote.Deposit().Amount().StringFixed(2),
		TotalPayable: total.Amount().StringFixed(2),
		Payments:     make([]dto.PaymentResponse, len(payments)),
	}
	for i, p := range payments {
		resp.Payments[i] = dto.PaymentResponse{
			DueDate: p.DueDate().Format(time.DateOnly),
			Amount:  p.Amount().Amount().StringFixed(2),
		}
	}
	return resp
}
