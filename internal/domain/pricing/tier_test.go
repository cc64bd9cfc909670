package pricing

import "testing"

func TestRateTierMultiplier(t *testing.T) {
	if got := TierRed.Multiplier(1.3); got != 1 {
		t.Fatalf("red: expected 1, got %v", got)
	}
	if got := TierGreen.Multiplier(1.3); got != 1.3 {
		t.Fatalf("green: expected 1.3, got %v", got)
	}
	if got := RateTier("").Multiplier(1.3); got != 1 {
		t.Fatalf("unknown tier: expected 1, got %v", got)
	}

	// A misconfigured factor below 1 must never make green undercut red.
	if got := TierGreen.Multiplier(0.8); got != 1 {
		t.Fatalf("clamped: expected 1, got %v", got)
	}
}

func TestOverridesResolve(t *testing.T) {
	o := Overrides{FieldPerVisit: 100}

	if !o.Has(FieldPerVisit) {
		t.Fatal("expected per_visit override present")
	}
	if o.Has(FieldMonthly) {
		t.Fatal("expected monthly override absent")
	}
	if got := o.Resolve(FieldPerVisit, 84); got != 100 {
		t.Fatalf("pinned: expected 100, got %v", got)
	}
	if got := o.Resolve(FieldMonthly, 364); got != 364 {
		t.Fatalf("computed: expected 364, got %v", got)
	}

	// Removing the key reverts to the computed value.
	delete(o, FieldPerVisit)
	if got := o.Resolve(FieldPerVisit, 84); got != 84 {
		t.Fatalf("cleared: expected 84, got %v", got)
	}

	var none Overrides
	if got := none.Resolve(FieldRate, 6.5); got != 6.5 {
		t.Fatalf("nil overrides: expected 6.5, got %v", got)
	}
}
