package grpc

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/metric"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/davidaanderson/PaymentScheduleGenerator/internal/application/dto"
	"github.com/davidaanderson/PaymentScheduleGenerator/internal/application/usecase"
	"github.com/davidaanderson/PaymentScheduleGenerator/pkg/auth"
)

// requireRole checks that the caller has at least one of the given roles.
func requireRole(ctx context.Context, roles ...string) error {
	claims, ok := auth.ClaimsFromContext(ctx)
	if !ok {
		return status.Error(codes.Unauthenticated, "authentication required")
	}
	for _, role := range roles {
		if claims.HasRole(role) {
			return nil
		}
	}
	return status.Error(codes.PermissionDenied, "insufficient permissions")
}

// Compile-time assertion that Handler implements QuoteServiceServer.
var _ QuoteServiceServer = (*Handler)(nil)

// Handler implements the QuoteServiceServer gRPC interface.
type Handler struct {
	UnimplementedQuoteServiceServer
	createSchedule *usecase.CreatePaymentScheduleUseCase
	validateQuote  *usecase.ValidateQuoteUseCase
	getTerms       *usecase.GetQuoteTermsUseCase
	logger         *slog.Logger

	schedulesComputed metric.Int64Counter
}

// NewHandler creates a new gRPC Handler.
func NewHandler(
	createSchedule *usecase.CreatePaymentScheduleUseCase,
	validateQuote *usecase.ValidateQuoteUseCase,
	getTerms *usecase.GetQuoteTermsUseCase,
	logger *slog.Logger,
	meter metric.Meter,
) *Handler {
	schedulesComputed, err := meter.Int64Counter("payment_schedules_computed_total",
		metric.WithDescription("Number of payment schedules computed"))
	if err != nil {
		logger.Error("failed to create schedule counter", "error", err)
	}

	return &Handler{
		createSchedule:    createSchedule,
		validateQuote:     validateQuote,
		getTerms:          getTerms,
		logger:            logger,
		schedulesComputed: schedulesComputed,
	}
}

// Proto-aligned request/response message types.

// ViolationMsg represents the proto Violation message.
type ViolationMsg struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// PaymentMsg represents the proto Payment message.
type PaymentMsg struct {
	DueDate string `json:"due_date"`
	Amount  string `json:"amount"`
}

// PaymentScheduleMsg represents the proto PaymentSchedule message.
type PaymentScheduleMsg struct {
	QuoteID      string        `json:"quote_id"`
	Currency     string        `json:"currency"`
	VehiclePrice string        `json:"vehicle_price"`
	Deposit      string        `json:"deposit"`
	TotalPayable string        `json:"total_payable"`
	Payments     []*PaymentMsg `json:"payments"`
}

// CreatePaymentScheduleRequest represents the proto CreatePaymentScheduleRequest message.
type CreatePaymentScheduleRequest struct {
	VehiclePrice string `json:"vehicle_price"`
	Deposit      string `json:"deposit"`
	TermInMonths int32  `json:"term_in_months"`
	DeliveryDate string `json:"delivery_date"`
}

// CreatePaymentScheduleResponse represents the proto CreatePaymentScheduleResponse message.
// Exactly one of Schedule or Violations is populated.
type CreatePaymentScheduleResponse struct {
	Schedule   *PaymentScheduleMsg `json:"schedule,omitempty"`
	Violations []*ViolationMsg     `json:"violations,omitempty"`
}

// ValidateQuoteRequest represents the proto ValidateQuoteRequest message.
type ValidateQuoteRequest struct {
	VehiclePrice string `json:"vehicle_price"`
	Deposit      string `json:"deposit"`
	TermInMonths int32  `json:"term_in_months"`
	DeliveryDate string `json:"delivery_date"`
}

// ValidateQuoteResponse represents the proto ValidateQuoteResponse message.
type ValidateQuoteResponse struct {
	Valid      bool            `json:"valid"`
	Violations []*ViolationMsg `json:"violations,omitempty"`
}

// GetQuoteTermsRequest represents the proto GetQuoteTermsRequest message.
type GetQuoteTermsRequest struct{}

// GetQuoteTermsResponse represents the proto GetQuoteTermsResponse message.
type GetQuoteTermsResponse struct {
	Currency              string  `json:"currency"`
	ArrangementFee        string  `json:"arrangement_fee"`
	CompletionFee         string  `json:"completion_fee"`
	AvailableTerms        []int32 `json:"available_terms"`
	MinimumDepositPercent string  `json:"minimum_deposit_percent"`
}

// CreatePaymentSchedule validates the request and returns the computed
// repayment schedule. Rule violations come back inside the response so the
// caller can show them all to the customer; only malformed input is rejected
// with a gRPC error status.
func (h *Handler) CreatePaymentSchedule(ctx context.Context, req *CreatePaymentScheduleRequest) (*CreatePaymentScheduleResponse, error) {
	if err := requireRole(ctx, auth.RoleAdmin, auth.RoleDealer, auth.RoleAPIClient); err != nil {
		return nil, err
	}

	dtoReq, err := parseScheduleRequest(req.VehiclePrice, req.Deposit, req.TermInMonths, req.DeliveryDate)
	if err != nil {
		return nil, err
	}

	resp, err := h.createSchedule.Execute(ctx, dtoReq)
	if err != nil {
		var validationErr *dto.ValidationError
		if errors.As(err, &validationErr) {
			h.logger.Info("CreatePaymentSchedule rejected", "violations", len(validationErr.Violations))
			return &CreatePaymentScheduleResponse{
				Violations: toViolationMsgs(validationErr.Violations),
			}, nil
		}
		h.logger.Error("CreatePaymentSchedule failed", "error", err)
		return nil, status.Error(codes.Internal, "internal error")
	}

	if h.schedulesComputed != nil {
		h.schedulesComputed.Add(ctx, 1)
	}

	h.logger.Info("CreatePaymentSchedule succeeded",
		"quote_id", resp.QuoteID,
		"term_in_months", dtoReq.TermInMonths,
		"total_payable", resp.TotalPayable,
	)
	return &CreatePaymentScheduleResponse{Schedule: toScheduleMsg(resp)}, nil
}

// ValidateQuote runs the lending rules without computing a schedule.
func (h *Handler) ValidateQuote(ctx context.Context, req *ValidateQuoteRequest) (*ValidateQuoteResponse, error) {
	if err := requireRole(ctx, auth.RoleAdmin, auth.RoleDealer, auth.RoleCustomer, auth.RoleAPIClient); err != nil {
		return nil, err
	}

	dtoReq, err := parseScheduleRequest(req.VehiclePrice, req.Deposit, req.TermInMonths, req.DeliveryDate)
	if err != nil {
		return nil, err
	}

	violations := h.validateQuote.Execute(ctx, dtoReq)
	return &ValidateQuoteResponse{
		Valid:      len(violations) == 0,
		Violations: toViolationMsgs(violations),
	}, nil
}

// GetQuoteTerms returns the lending terms on offer.
func (h *Handler) GetQuoteTerms(ctx context.Context, _ *GetQuoteTermsRequest) (*GetQuoteTermsResponse, error) {
	if err := requireRole(ctx, auth.RoleAdmin, auth.RoleDealer, auth.RoleCustomer, auth.RoleAPIClient); err != nil {
		return nil, err
	}

	terms := h.getTerms.Execute(ctx)
	available := make([]int32, len(terms.AvailableTerms))
	for i, t := range terms.AvailableTerms {
		available[i] = int32(t)
	}

	return &GetQuoteTermsResponse{
		Currency:              terms.Currency,
		ArrangementFee:        terms.ArrangementFee,
		CompletionFee:         terms.CompletionFee,
		AvailableTerms:        available,
		MinimumDepositPercent: terms.MinimumDepositPercent,
	}, nil
}

func parseScheduleRequest(vehiclePrice, deposit string, termInMonths int32, deliveryDate string) (dto.CreatePaymentScheduleRequest, error) {
	if vehiclePrice == "" {
		return dto.CreatePaymentScheduleRequest{}, status.Error(codes.InvalidArgument, "vehicle_price is required")
	}
	price, err := decimal.NewFromString(vehiclePrice)
	if err != nil {
		return dto.CreatePaymentScheduleRequest{}, status.Errorf(codes.InvalidArgument, "invalid vehicle_price: %v", err)
	}

	if deposit == "" {
		return dto.CreatePaymentScheduleRequest{}, status.Error(codes.InvalidArgument, "deposit is required")
	}
	dep, err := decimal.NewFromString(deposit)
	if err != nil {
		return dto.CreatePaymentScheduleRequest{}, status.Errorf(codes.InvalidArgument, "invalid deposit: %v", err)
	}

	if deliveryDate == "" {
		return dto.CreatePaymentScheduleRequest{}, status.Error(codes.InvalidArgument, "delivery_date is required")
	}
	delivery, err := time.Parse(time.DateOnly, deliveryDate)
	if err != nil {
		return dto.CreatePaymentScheduleRequest{}, status.Errorf(codes.InvalidArgument, "invalid delivery_date, expected YYYY-MM-DD: %v", err)
	}

	return dto.CreatePaymentScheduleRequest{
		VehiclePrice: price,
		Deposit:      dep,
		TermInMonths: int(termInMonths),
		DeliveryDate: delivery,
	}, nil
}

func toViolationMsgs(violations []dto.Violation) []*ViolationMsg {
	if len(violations) == 0 {
		return nil
	}
	out := make([]*ViolationMsg, len(violations))
	for i, v := range violations {
		out[i] = &ViolationMsg{Field: v.Field, Message: v.Message}
	}
	return out
}

func toScheduleMsg(resp *dto.PaymentScheduleResponse) *PaymentScheduleMsg {
	payments := make([]*PaymentMsg, len(resp.Payments))
	for i, p := range resp.Payments {
		payments[i] = &PaymentMsg{DueDate: p.DueDate, Amount: p.Amount}
	}
	return &PaymentScheduleMsg{
		QuoteID:      resp.QuoteID,
		Currency:     resp.Currency,
		VehiclePrice: resp.VehiclePrice,
		Deposit:      resp.Deposit,
		TotalPayable: resp.TotalPayable,
		Payments:     payments,
	}
}
