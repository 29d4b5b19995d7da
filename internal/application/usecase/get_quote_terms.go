package usecase

import (
	"context"

	"github.com/davidaanderson/PaymentScheduleGenerator/internal/application/dto"
	"github.com/davidaanderson/PaymentScheduleGenerator/internal/domain/service"
)

// GetQuoteTermsUseCase reports the lending terms the service currently
// offers.
type GetQuoteTermsUseCase struct {
	settings QuoteSettings
}

// NewGetQuoteTermsUseCase creates the use case.
func NewGetQuoteTermsUseCase(settings QuoteSettings) *GetQuoteTermsUseCase {
	return &GetQuoteTermsUseCase{settings: settings}
}

// Execute returns the configured fees alongside the fixed rule parameters.
func (uc *GetQuoteTermsUseCase) Execute(_ context.Context) *dto.QuoteTermsResponse {
	terms := make([]int, len(service.AllowedTerms))
	copy(terms, service.AllowedTerms)

	return &dto.QuoteTermsResponse{
		Currency:              uc.settings.Currency.Code(),
		ArrangementFee:        uc.settings.ArrangementFee.StringFixed(2),
		CompletionFee:         uc.settings.CompletionFee.StringFixed(2),
		AvailableTerms:        terms,
		MinimumDepositPercent: service.MinimumDepositPercent.String(),
	}
}
