package pricing

import "testing"

func TestCalculateFoamingDrain(t *testing.T) {
	cfg := DefaultFoamingDrainConfig()

	t.Run("zero drains prices as zero", func(t *testing.T) {
		if q := CalculateFoamingDrain(FoamingDrainForm{}, cfg); q.Active() {
			t.Fatalf("expected inactive quote, got %+v", q)
		}
	})

	t.Run("standard rate below the volume threshold", func(t *testing.T) {
		q := CalculateFoamingDrain(FoamingDrainForm{Drains: 5}, cfg)
		if q.Method != "standard" {
			t.Fatalf("expected standard, got %q", q.Method)
		}
		// 5x12 plus the 6 trip.
		if q.PerVisit != 66 {
			t.Fatalf("expected per-visit 66, got %v", q.PerVisit)
		}
	})

	t.Run("volume rate at the threshold", func(t *testing.T) {
		q := CalculateFoamingDrain(FoamingDrainForm{Drains: 12}, cfg)
		if q.Method != "volume" {
			t.Fatalf("expected volume, got %q", q.Method)
		}
		// 12x9 plus the 6 trip.
		if q.PerVisit != 114 {
			t.Fatalf("expected per-visit 114, got %v", q.PerVisit)
		}
	})

	t.Run("minimum floor", func(t *testing.T) {
		q := CalculateFoamingDrain(FoamingDrainForm{Drains: 2}, cfg)
		// 2x12 = 24 lifts to 45, plus the trip.
		if q.PerVisit != 51 {
			t.Fatalf("expected per-visit 51, got %v", q.PerVisit)
		}
	})

	t.Run("plumbing add-on sits outside the minimum", func(t *testing.T) {
		q := CalculateFoamingDrain(FoamingDrainForm{Drains: 5, IncludePlumbing: true}, cfg)
		if q.PerVisit != 91 {
			t.Fatalf("expected per-visit 91, got %v", q.PerVisit)
		}
	})

	t.Run("beltway trip", func(t *testing.T) {
		q := CalculateFoamingDrain(FoamingDrainForm{Drains: 5, OutsideBeltway: true}, cfg)
		if q.PerVisit != 72 {
			t.Fatalf("expected per-visit 72, got %v", q.PerVisit)
		}
	})

	t.Run("bundled stop waives the trip", func(t *testing.T) {
		q := CalculateFoamingDrain(FoamingDrainForm{Drains: 5, OutsideBeltway: true, BundledWithAllInclusive: true}, cfg)
		if q.PerVisit != 60 {
			t.Fatalf("expected per-visit 60, got %v", q.PerVisit)
		}
	})
}
