package pricing

import "testing"

func TestCalculateElectrostatic(t *testing.T) {
	cfg := DefaultElectrostaticConfig()

	t.Run("zero rooms prices as zero", func(t *testing.T) {
		if q := CalculateElectrostatic(ElectrostaticForm{}, cfg); q.Active() {
			t.Fatalf("expected inactive quote, got %+v", q)
		}
	})

	t.Run("per room above the minimum", func(t *testing.T) {
		q := CalculateElectrostatic(ElectrostaticForm{Rooms: 10}, cfg)
		// 10x8 plus the 6 trip.
		if q.PerVisit != 86 {
			t.Fatalf("expected per-visit 86, got %v", q.PerVisit)
		}
	})

	t.Run("minimum floor", func(t *testing.T) {
		q := CalculateElectrostatic(ElectrostaticForm{Rooms: 5}, cfg)
		// 5x8 = 40 lifts to 60, plus the trip.
		if q.PerVisit != 66 {
			t.Fatalf("expected per-visit 66, got %v", q.PerVisit)
		}
		if q.MinimumPerVisit != 60 {
			t.Fatalf("expected minimum 60, got %v", q.MinimumPerVisit)
		}
	})

	t.Run("bundled stop waives the trip", func(t *testing.T) {
		q := CalculateElectrostatic(ElectrostaticForm{Rooms: 10, BundledWithAllInclusive: true}, cfg)
		if q.PerVisit != 80 {
			t.Fatalf("expected per-visit 80, got %v", q.PerVisit)
		}
	})
}
