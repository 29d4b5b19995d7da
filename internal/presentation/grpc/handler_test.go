package grpc

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/davidaanderson/PaymentScheduleGenerator/internal/application/usecase"
	"github.com/davidaanderson/PaymentScheduleGenerator/internal/domain/port"
	"github.com/davidaanderson/PaymentScheduleGenerator/internal/domain/service"
	"github.com/davidaanderson/PaymentScheduleGenerator/pkg/auth"
	"github.com/davidaanderson/PaymentScheduleGenerator/pkg/events"
	"github.com/davidaanderson/PaymentScheduleGenerator/pkg/money"
)

type noopPublisher struct{}

func (noopPublisher) Publish(context.Context, ...events.DomainEvent) error { return nil }

var _ port.EventPublisher = noopPublisher{}

func newTestHandler(t *testing.T) *Handler {
	t.Helper()

	validator := service.NewQuoteValidator()
	settings := usecase.QuoteSettings{
		Currency:       money.GBP,
		ArrangementFee: decimal.RequireFromString("88.00"),
		CompletionFee:  decimal.RequireFromString("20.00"),
	}

	return NewHandler(
		usecase.NewCreatePaymentScheduleUseCase(validator, settings, noopPublisher{}),
		usecase.NewValidateQuoteUseCase(validator),
		usecase.NewGetQuoteTermsUseCase(settings),
		slog.Default(),
		noop.NewMeterProvider().Meter("test"),
	)
}

func dealerContext() context.Context {
	return auth.ContextWithClaims(context.Background(), &auth.Claims{
		Roles: []string{auth.RoleDealer},
	})
}

func futureDateString() string {
	return time.Now().UTC().AddDate(0, 1, 0).Format(time.DateOnly)
}

func TestCreatePaymentSchedule_Succeeds(t *testing.T) {
	h := newTestHandler(t)

	resp, err := h.CreatePaymentSchedule(dealerContext(), &CreatePaymentScheduleRequest{
		VehiclePrice: "12000.00",
		Deposit:      "1800.00",
		TermInMonths: 12,
		DeliveryDate: futureDateString(),
	})
	require.NoError(t, err)
	require.NotNil(t, resp.Schedule)
	assert.Empty(t, resp.Violations)

	assert.Equal(t, "GBP", resp.Schedule.Currency)
	assert.Equal(t, "10308.00", resp.Schedule.TotalPayable)
	require.Len(t, resp.Schedule.Payments, 12)

	first, err := time.Parse(time.DateOnly, resp.Schedule.Payments[0].DueDate)
	require.NoError(t, err)
	assert.Equal(t, time.Monday, first.Weekday())
}

func TestCreatePaymentSchedule_ReturnsViolationsInResponse(t *testing.T) {
	h := newTestHandler(t)

	resp, err := h.CreatePaymentSchedule(dealerContext(), &CreatePaymentScheduleRequest{
		VehiclePrice: "12000.00",
		Deposit:      "100.00",
		TermInMonths: 13,
		DeliveryDate: futureDateString(),
	})
	require.NoError(t, err, "rule violations are a response, not a gRPC error")
	assert.Nil(t, resp.Schedule)
	require.Len(t, resp.Violations, 2)

	messages := []string{resp.Violations[0].Message, resp.Violations[1].Message}
	assert.Contains(t, messages, "The term must be 12, 24 or 36 months.")
	assert.Contains(t, messages, "Deposit must be a minimum of 15% of the vehicle price.")
}

func TestCreatePaymentSchedule_MalformedInput(t *testing.T) {
	h := newTestHandler(t)

	tests := []struct {
		name string
		req  *CreatePaymentScheduleRequest
	}{
		{
			name: "missing vehicle price",
			req:  &CreatePaymentScheduleRequest{Deposit: "1800.00", TermInMonths: 12, DeliveryDate: futureDateString()},
		},
		{
			name: "unparseable deposit",
			req:  &CreatePaymentScheduleRequest{VehiclePrice: "12000.00", Deposit: "lots", TermInMonths: 12, DeliveryDate: futureDateString()},
		},
		{
			name: "bad date format",
			req:  &CreatePaymentScheduleRequest{VehiclePrice: "12000.00", Deposit: "1800.00", TermInMonths: 12, DeliveryDate: "10/03/2021"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := h.CreatePaymentSchedule(dealerContext(), tt.req)
			require.Error(t, err)
			assert.Equal(t, codes.InvalidArgument, status.Code(err))
		})
	}
}

func TestCreatePaymentSchedule_RequiresAuthentication(t *testing.T) {
	h := newTestHandler(t)

	_, err := h.CreatePaymentSchedule(context.Background(), &CreatePaymentScheduleRequest{
		VehiclePrice: "12000.00",
		Deposit:      "1800.00",
		TermInMonths: 12,
		DeliveryDate: futureDateString(),
	})
	require.Error(t, err)
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestCreatePaymentSchedule_RequiresDealerRole(t *testing.T) {
	h := newTestHandler(t)
	ctx := auth.ContextWithClaims(context.Background(), &auth.Claims{
		Roles: []string{auth.RoleCustomer},
	})

	_, err := h.CreatePaymentSchedule(ctx, &CreatePaymentScheduleRequest{
		VehiclePrice: "12000.00",
		Deposit:      "1800.00",
		TermInMonths: 12,
		DeliveryDate: futureDateString(),
	})
	require.Error(t, err)
	assert.Equal(t, codes.PermissionDenied, status.Code(err))
}

func TestValidateQuote_Valid(t *testing.T) {
	h := newTestHandler(t)

	resp, err := h.ValidateQuote(dealerContext(), &ValidateQuoteRequest{
		VehiclePrice: "12000.00",
		Deposit:      "1800.00",
		TermInMonths: 24,
		DeliveryDate: futureDateString(),
	})
	require.NoError(t, err)
	assert.True(t, resp.Valid)
	assert.Empty(t, resp.Violations)
}

func TestValidateQuote_Invalid(t *testing.T) {
	h := newTestHandler(t)

	resp, err := h.ValidateQuote(dealerContext(), &ValidateQuoteRequest{
		VehiclePrice: "12000.00",
		Deposit:      "1800.00",
		TermInMonths: 18,
		DeliveryDate: futureDateString(),
	})
	require.NoError(t, err)
	assert.False(t, resp.Valid)
	require.Len(t, resp.Violations, 1)
	assert.Equal(t, "termInMonths", resp.Violations[0].Field)
}

func TestGetQuoteTerms(t *testing.T) {
	h := newTestHandler(t)

	resp, err := h.GetQuoteTerms(dealerContext(), &GetQuoteTermsRequest{})
	require.NoError(t, err)

	assert.Equal(t, "GBP", resp.Currency)
	assert.Equal(t, "88.00", resp.ArrangementFee)
	assert.Equal(t, "20.00", resp.CompletionFee)
	assert.Equal(t, []int32{12, 24, 36}, resp.AvailableTerms)
	assert.Equal(t, "0.15", resp.MinimumDepositPercent)
}
