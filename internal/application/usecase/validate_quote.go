package usecase

import (
	"context"
	"time"

	"github.com/davidaanderson/PaymentScheduleGenerator/internal/application/dto"
	"github.com/davidaanderson/PaymentScheduleGenerator/internal/domain/service"
)

// ValidateQuoteUseCase runs a quote request through the lending rules without
// computing a schedule. Dealers use it to pre-check affordability forms.
type ValidateQuoteUseCase struct {
	validator *service.QuoteValidator
}

// NewValidateQuoteUseCase creates the use case.
func NewValidateQuoteUseCase(validator *service.QuoteValidator) *ValidateQuoteUseCase {
	return &ValidateQuoteUseCase{validator: validator}
}

// Execute returns the violations for the request, or an empty slice when the
// request would be accepted.
func (uc *ValidateQuoteUseCase) Execute(_ context.Context, req dto.CreatePaymentScheduleRequest) []dto.Violation {
	now := time.Now().UTC()
	violations := uc.validator.Validate(req.VehiclePrice, req.Deposit, req.TermInMonths, req.DeliveryDate, now)
	return toDTOViolations(violations)
}
