package pricing

import (
	"math"
	"testing"
)

func TestCalculateSaniClean(t *testing.T) {
	cfg := DefaultSaniCleanConfig()

	t.Run("zero fixtures prices as zero", func(t *testing.T) {
		q := CalculateSaniClean(SaniCleanForm{}, cfg)
		if q.Active() {
			t.Fatalf("expected inactive quote, got %+v", q)
		}
		if q.Lines[0].Value != "No restroom fixtures configured" {
			t.Fatalf("unexpected note: %q", q.Lines[0].Value)
		}
	})

	t.Run("invalid fixture count prices as zero", func(t *testing.T) {
		q := CalculateSaniClean(SaniCleanForm{Fixtures: math.NaN()}, cfg)
		if q.Active() {
			t.Fatalf("expected inactive quote, got %+v", q)
		}
	})

	t.Run("all inclusive", func(t *testing.T) {
		q := CalculateSaniClean(SaniCleanForm{Fixtures: 20, Mode: SaniCleanModeAllInclusive}, cfg)
		if q.Method != "all_inclusive" {
			t.Fatalf("expected all_inclusive, got %q", q.Method)
		}
		if q.PerVisit != 160 {
			t.Fatalf("expected per-visit 160, got %v", q.PerVisit)
		}
		// The flat rate absorbs add-ons and the trip charge.
		foundWaived := false
		for _, l := range q.Lines {
			if l.Label == "Trip charge" && l.Value == "Waived" {
				foundWaived = true
			}
		}
		if !foundWaived {
			t.Fatalf("expected waived trip line, got %+v", q.Lines)
		}
	})

	t.Run("all inclusive ignores itemized add-ons", func(t *testing.T) {
		q := CalculateSaniClean(SaniCleanForm{
			Fixtures:       20,
			Mode:           SaniCleanModeAllInclusive,
			SoapDispensers: 4,
			MicrofiberMops: 2,
			OutsideBeltway: true,
		}, cfg)
		if q.PerVisit != 160 {
			t.Fatalf("expected per-visit 160, got %v", q.PerVisit)
		}
	})

	t.Run("auto mode detects small facility", func(t *testing.T) {
		q := CalculateSaniClean(SaniCleanForm{Fixtures: 3}, cfg)
		if q.Method != "small_facility_minimum" {
			t.Fatalf("expected small_facility_minimum, got %q", q.Method)
		}
		// Flat weekly minimum plus the standard trip charge.
		if q.PerVisit != 41 {
			t.Fatalf("expected per-visit 41, got %v", q.PerVisit)
		}
		if q.MinimumPerVisit != 35 {
			t.Fatalf("expected minimum 35, got %v", q.MinimumPerVisit)
		}
	})

	t.Run("itemized with add-ons and beltway trip", func(t *testing.T) {
		q := CalculateSaniClean(SaniCleanForm{
			Fixtures:           10,
			SoapDispensers:     2,
			WarrantyDispensers: 4,
			MicrofiberMops:     1,
			PaperCredit:        true,
			OutsideBeltway:     true,
		}, cfg)
		if q.Method != "itemized" {
			t.Fatalf("expected itemized, got %q", q.Method)
		}
		// 65 base + 3 soap + 3 warranty + 5 mops - 4 credit + 12 trip.
		if q.PerVisit != 84 {
			t.Fatalf("expected per-visit 84, got %v", q.PerVisit)
		}
		if q.MonthlyRecurring != 364 {
			t.Fatalf("expected monthly 364, got %v", q.MonthlyRecurring)
		}
		if q.ContractTotal != 4368 {
			t.Fatalf("expected contract 4368, got %v", q.ContractTotal)
		}
	})

	t.Run("green tier scales per visit", func(t *testing.T) {
		form := SaniCleanForm{Fixtures: 10}
		red := CalculateSaniClean(form, cfg)
		form.Tier = TierGreen
		green := CalculateSaniClean(form, cfg)
		if red.PerVisit != 71 {
			t.Fatalf("expected red per-visit 71, got %v", red.PerVisit)
		}
		if green.PerVisit != 92.3 {
			t.Fatalf("expected green per-visit 92.30, got %v", green.PerVisit)
		}
	})

	t.Run("install doubles the first month", func(t *testing.T) {
		q := CalculateSaniClean(SaniCleanForm{Fixtures: 20, Mode: SaniCleanModeAllInclusive, IncludeInstall: true}, cfg)
		if q.MonthlyRecurring != 693.33 {
			t.Fatalf("expected monthly 693.33, got %v", q.MonthlyRecurring)
		}
		if q.FirstVisit != 1386.66 {
			t.Fatalf("expected first month 1386.66, got %v", q.FirstVisit)
		}
		if q.ContractTotal != 9013.29 {
			t.Fatalf("expected contract 9013.29, got %v", q.ContractTotal)
		}
	})

	t.Run("per visit override wins verbatim", func(t *testing.T) {
		q := CalculateSaniClean(SaniCleanForm{
			Fixtures:  10,
			Overrides: Overrides{FieldPerVisit: 100},
		}, cfg)
		if q.PerVisit != 100 {
			t.Fatalf("expected pinned per-visit 100, got %v", q.PerVisit)
		}
		// Downstream amounts derive from the pinned value.
		if q.MonthlyRecurring != 433.33 {
			t.Fatalf("expected monthly 433.33, got %v", q.MonthlyRecurring)
		}
	})
}
