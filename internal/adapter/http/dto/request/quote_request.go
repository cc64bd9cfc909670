package request

import (
	"encoding/json"

	"enviromaster/internal/domain/pricing"
	"enviromaster/internal/usecase"
)

// QuotePreviewRequest prices a single service card from its current form
// state. Form is passed through opaquely; each calculator owns its schema.
type QuotePreviewRequest struct {
	ServiceID string          `json:"service_id" binding:"required"`
	Form      json.RawMessage `json:"form"`
}

type GlobalChargeRequest struct {
	Amount           float64 `json:"amount"`
	MonthlyFrequency float64 `json:"monthly_frequency"`
}

type AgreementServiceRequest struct {
	Form                     json.RawMessage `json:"form"`
	ContractMonthsOverridden bool            `json:"contract_months_overridden"`
}

// AgreementRequest carries every service card plus the agreement-level
// globals for a cross-service total.
type AgreementRequest struct {
	Services       map[string]AgreementServiceRequest `json:"services" binding:"required"`
	ContractMonths float64                            `json:"contract_months"`
	TripCharge     GlobalChargeRequest                `json:"trip_charge"`
	ParkingCharge  GlobalChargeRequest                `json:"parking_charge"`
}

func (r AgreementRequest) ToCommand() usecase.AgreementCommand {
	services := make(map[string]usecase.AgreementServiceInput, len(r.Services))
	for id, s := range r.Services {
		services[id] = usecase.AgreementServiceInput{
			Form:                     s.Form,
			ContractMonthsOverridden: s.ContractMonthsOverridden,
		}
	}
	return usecase.AgreementCommand{
		Services:       services,
		ContractMonths: r.ContractMonths,
		TripCharge:     pricing.GlobalCharge(r.TripCharge),
		ParkingCharge:  pricing.GlobalCharge(r.ParkingCharge),
	}
}
