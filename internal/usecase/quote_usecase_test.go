package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"enviromaster/internal/domain/pricing"
)

// staticConfigs serves canned raw configs; only ResolveRaw matters to the
// quote path.
type staticConfigs struct {
	raw map[string]json.RawMessage
}

func (s *staticConfigs) GetActive(context.Context, string) (ActiveConfig, error) {
	return ActiveConfig{}, nil
}

func (s *staticConfigs) Upsert(context.Context, string, json.RawMessage) (ActiveConfig, error) {
	return ActiveConfig{}, nil
}

func (s *staticConfigs) Refresh(context.Context, string) (ActiveConfig, error) {
	return ActiveConfig{}, nil
}

func (s *staticConfigs) ResolveRaw(_ context.Context, serviceID string) json.RawMessage {
	return s.raw[serviceID]
}

func TestQuoteUseCase_Preview(t *testing.T) {
	t.Run("unknown service", func(t *testing.T) {
		uc := NewQuoteUseCase(&staticConfigs{})
		_, err := uc.Preview(context.Background(), "window_tinting", nil)
		if !errors.Is(err, ErrInvalidServiceID) {
			t.Fatalf("expected ErrInvalidServiceID, got %v", err)
		}
	})

	t.Run("malformed form", func(t *testing.T) {
		uc := NewQuoteUseCase(&staticConfigs{})
		_, err := uc.Preview(context.Background(), pricing.ServiceSaniClean, json.RawMessage(`{"fixtures":`))
		if !errors.Is(err, ErrInvalidFormPayload) {
			t.Fatalf("expected ErrInvalidFormPayload, got %v", err)
		}
	})

	t.Run("defaults when no config is stored", func(t *testing.T) {
		uc := NewQuoteUseCase(&staticConfigs{})
		q, err := uc.Preview(context.Background(), pricing.ServiceSaniClean, json.RawMessage(`{"fixtures":20,"mode":"all_inclusive"}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.PerVisit != 160 {
			t.Fatalf("expected per-visit 160, got %v", q.PerVisit)
		}
	})

	t.Run("stored config feeds the calculator", func(t *testing.T) {
		uc := NewQuoteUseCase(&staticConfigs{raw: map[string]json.RawMessage{
			pricing.ServiceSaniClean: json.RawMessage(`{"all_inclusive_rate_per_fixture":10}`),
		}})
		q, err := uc.Preview(context.Background(), pricing.ServiceSaniClean, json.RawMessage(`{"fixtures":20,"mode":"all_inclusive"}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.PerVisit != 200 {
			t.Fatalf("expected per-visit 200, got %v", q.PerVisit)
		}
	})
}

func TestQuoteUseCase_ComputeAgreement(t *testing.T) {
	uc := NewQuoteUseCase(&staticConfigs{})
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	t.Run("unknown service", func(t *testing.T) {
		_, err := uc.ComputeAgreement(ctx, AgreementCommand{
			Services: map[string]AgreementServiceInput{"nope": {}},
		})
		if !errors.Is(err, ErrInvalidServiceID) {
			t.Fatalf("expected ErrInvalidServiceID, got %v", err)
		}
	})

	t.Run("global contract months sync into each service", func(t *testing.T) {
		res, err := uc.ComputeAgreement(ctx, AgreementCommand{
			Services: map[string]AgreementServiceInput{
				pricing.ServiceCarpet: {Form: json.RawMessage(`{"area_sq_ft":1200,"contract_months":6}`)},
			},
			ContractMonths: 24,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// Eight quarterly visits over the synced 24 months, not two over 6.
		if got := res.Quotes[pricing.ServiceCarpet].ContractTotal; got != 4000 {
			t.Fatalf("expected contract 4000, got %v", got)
		}
	})

	t.Run("local override survives the sync", func(t *testing.T) {
		res, err := uc.ComputeAgreement(ctx, AgreementCommand{
			Services: map[string]AgreementServiceInput{
				pricing.ServiceCarpet: {
					Form:                     json.RawMessage(`{"area_sq_ft":1200,"contract_months":6}`),
					ContractMonthsOverridden: true,
				},
			},
			ContractMonths: 24,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := res.Quotes[pricing.ServiceCarpet].ContractTotal; got != 1000 {
			t.Fatalf("expected contract 1000, got %v", got)
		}
	})

	t.Run("inactive services are excluded from the roll-up", func(t *testing.T) {
		res, err := uc.ComputeAgreement(ctx, AgreementCommand{
			Services: map[string]AgreementServiceInput{
				pricing.ServiceCarpet:    {Form: json.RawMessage(`{"area_sq_ft":1200}`)},
				pricing.ServiceSaniClean: {Form: json.RawMessage(`{}`)},
			},
			ContractMonths: 12,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.Quotes) != 2 {
			t.Fatalf("expected both quotes returned, got %d", len(res.Quotes))
		}
		if res.Totals.ContractTotal != 2000 {
			t.Fatalf("expected carpet-only contract 2000, got %v", res.Totals.ContractTotal)
		}
	})

	t.Run("global charges join the contract total", func(t *testing.T) {
		res, err := uc.ComputeAgreement(ctx, AgreementCommand{
			Services: map[string]AgreementServiceInput{
				pricing.ServiceCarpet: {Form: json.RawMessage(`{"area_sq_ft":1200}`)},
			},
			ContractMonths: 12,
			ParkingCharge:  pricing.GlobalCharge{Amount: 100},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Totals.ContractTotal != 2100 {
			t.Fatalf("expected contract 2100, got %v", res.Totals.ContractTotal)
		}
	})
}
