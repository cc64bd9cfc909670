package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"enviromaster/internal/domain/pricing"
)

var (
	ErrInvalidFormPayload = errors.New("invalid form payload")
)

// AgreementServiceInput is one service card's contribution to an agreement:
// its raw form state plus the flag that keeps a locally pinned contract
// length from being overwritten by the global one.
type AgreementServiceInput struct {
	Form                     json.RawMessage `json:"form"`
	ContractMonthsOverridden bool            `json:"contract_months_overridden,omitempty"`
}

// AgreementCommand is the full input for a cross-service agreement total.
type AgreementCommand struct {
	Services       map[string]AgreementServiceInput `json:"services"`
	ContractMonths float64                          `json:"contract_months"`
	TripCharge     pricing.GlobalCharge             `json:"trip_charge"`
	ParkingCharge  pricing.GlobalCharge             `json:"parking_charge"`
}

// AgreementResult pairs the per-service quotes with the agreement roll-up.
type AgreementResult struct {
	Quotes map[string]pricing.Quote `json:"quotes"`
	Totals pricing.AgreementTotals  `json:"totals"`
}

// IQuoteUseCase runs the pricing calculators against resolved configs.

type IQuoteUseCase interface {
	Preview(ctx context.Context, serviceID string, form json.RawMessage) (pricing.Quote, error)
	ComputeAgreement(ctx context.Context, cmd AgreementCommand) (AgreementResult, error)
}

type QuoteUseCase struct {
	configs IServiceConfigUseCase
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(configs IServiceConfigUseCase) *QuoteUseCase {
	return &QuoteUseCase{configs: configs}
}

func (u *QuoteUseCase) Preview(ctx context.Context, serviceID string, form json.RawMessage) (pricing.Quote, error) {
	serviceID = strings.TrimSpace(serviceID)
	eng, err := pricing.Lookup(serviceID)
	if err != nil {
		return pricing.Quote{}, ErrInvalidServiceID
	}

	cfg := u.configs.ResolveRaw(ctx, serviceID)
	quote, err := eng.Quote(form, cfg)
	if err != nil {
		return pricing.Quote{}, ErrInvalidFormPayload
	}
	return quote, nil
}

func (u *QuoteUseCase) ComputeAgreement(ctx context.Context, cmd AgreementCommand) (AgreementResult, error) {
	quotes := make(map[string]pricing.Quote, len(cmd.Services))
	totals := make(map[string]pricing.Totals, len(cmd.Services))

	for serviceID, in := range cmd.Services {
		eng, err := pricing.Lookup(serviceID)
		if err != nil {
			return AgreementResult{}, ErrInvalidServiceID
		}

		form := in.Form
		if !in.ContractMonthsOverridden && cmd.ContractMonths > 0 {
			form = applyGlobalMonths(form, cmd.ContractMonths)
		}

		cfg := u.configs.ResolveRaw(ctx, serviceID)
		quote, err := eng.Quote(form, cfg)
		if err != nil {
			return AgreementResult{}, ErrInvalidFormPayload
		}
		quotes[serviceID] = quote
		if quote.Active() {
			totals[serviceID] = quote.Totals()
		}
	}

	return AgreementResult{
		Quotes: quotes,
		Totals: pricing.Aggregate(pricing.AgreementInput{
			Services:       totals,
			ContractMonths: cmd.ContractMonths,
			TripCharge:     cmd.TripCharge,
			ParkingCharge:  cmd.ParkingCharge,
		}),
	}, nil
}

// applyGlobalMonths writes the global contract length into a raw form. A
// service without a local override tracks every global change; the override
// flag on the service input is the only thing that suppresses this sync.
func applyGlobalMonths(form json.RawMessage, months float64) json.RawMessage {
	m := map[string]any{}
	if len(form) > 0 {
		if err := json.Unmarshal(form, &m); err != nil {
			return form
		}
	}
	m["contract_months"] = months
	out, err := json.Marshal(m)
	if err != nil {
		return form
	}
	return out
}
