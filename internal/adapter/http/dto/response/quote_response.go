package response

import (
	"enviromaster/internal/domain/pricing"
	"enviromaster/internal/usecase"
)

// QuoteResponse is the wire form of a computed quote. Lines carry the
// text/calc/dollar interchange format consumed by document generation.
type QuoteResponse struct {
	ServiceID        string             `json:"service_id"`
	Method           string             `json:"method"`
	PerVisit         float64            `json:"per_visit"`
	FirstVisit       float64            `json:"first_visit"`
	MonthlyRecurring float64            `json:"monthly_recurring"`
	ContractTotal    float64            `json:"contract_total"`
	MinimumPerVisit  float64            `json:"minimum_per_visit"`
	Lines            []pricing.LineItem `json:"lines"`
}

func FromQuote(q pricing.Quote) QuoteResponse {
	return QuoteResponse{
		ServiceID:        q.ServiceID,
		Method:           q.Method,
		PerVisit:         q.PerVisit,
		FirstVisit:       q.FirstVisit,
		MonthlyRecurring: q.MonthlyRecurring,
		ContractTotal:    q.ContractTotal,
		MinimumPerVisit:  q.MinimumPerVisit,
		Lines:            q.Lines,
	}
}

type AgreementResponse struct {
	Quotes map[string]QuoteResponse `json:"quotes"`
	Totals pricing.AgreementTotals  `json:"totals"`
}

func FromAgreement(r usecase.AgreementResult) AgreementResponse {
	quotes := make(map[string]QuoteResponse, len(r.Quotes))
	for id, q := range r.Quotes {
		quotes[id] = FromQuote(q)
	}
	return AgreementResponse{Quotes: quotes, Totals: r.Totals}
}
