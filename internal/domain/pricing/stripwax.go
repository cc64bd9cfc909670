package pricing

// Strip & wax hard-floor restoration, priced per square foot with a heavier
// first visit when the floor needs a full strip before the maintenance coats.

type StripWaxConfig struct {
	RatePerSqFt          float64       `json:"rate_per_sq_ft"`
	DirtyFloorMultiplier float64       `json:"dirty_floor_multiplier"`
	PerVisitMinimum      float64       `json:"per_visit_minimum"`
	FirstVisitMultiplier float64       `json:"first_visit_multiplier"`
	GreenFactor          float64       `json:"green_factor"`
	VisitRounding        VisitRounding `json:"visit_rounding"`
}

func DefaultStripWaxConfig() StripWaxConfig {
	return StripWaxConfig{
		RatePerSqFt:          0.55,
		DirtyFloorMultiplier: 1.35,
		PerVisitMinimum:      325,
		FirstVisitMultiplier: 1.6,
		GreenFactor:          1.3,
		VisitRounding:        RoundNearest,
	}
}

type StripWaxForm struct {
	FloorSqFt      float64   `json:"floor_sq_ft"`
	IsDirty        bool      `json:"is_dirty"`
	IncludeInstall bool      `json:"include_install"`
	Frequency      Frequency `json:"frequency"`
	Tier           RateTier  `json:"tier"`
	ContractMonths float64   `json:"contract_months"`
	Overrides      Overrides `json:"overrides,omitempty"`
}

func CalculateStripWax(form StripWaxForm, cfg StripWaxConfig) Quote {
	area := qty(form.FloorSqFt)
	if area == 0 {
		return zeroQuote(ServiceStripWax, "No floor area configured")
	}

	freq := form.Frequency
	if freq == "" {
		freq = FrequencyBiannual
	}
	months := contractMonths(form.ContractMonths)
	o := form.Overrides
	mult := form.Tier.Multiplier(cfg.GreenFactor)

	rate := o.Resolve(FieldRate, cfg.RatePerSqFt)
	raw := area * rate
	method := "per_sq_ft"
	if form.IsDirty && cfg.DirtyFloorMultiplier > 0 {
		raw *= cfg.DirtyFloorMultiplier
		method = "per_sq_ft_dirty"
	}
	base := max(raw, cfg.PerVisitMinimum)

	lines := []LineItem{CalcLine("Floor area", area, rate)}
	if form.IsDirty {
		lines = append(lines, TextLine("Condition", "Heavy buildup surcharge applied"))
	}
	if base > raw {
		lines = append(lines, DollarLine("Minimum applied", cfg.PerVisitMinimum))
	}

	perVisit := Round2(o.Resolve(FieldPerVisit, base*mult))
	monthly := o.Resolve(FieldMonthly, MonthlyRecurring(perVisit, freq))

	first := perVisit
	if !freq.IsVisitBased() {
		first = monthly
	}
	if form.IncludeInstall && cfg.FirstVisitMultiplier > 0 {
		first = Round2(first * cfg.FirstVisitMultiplier)
		lines = append(lines, DollarLine("Initial strip (first visit)", first))
	}
	first = o.Resolve(FieldFirstVisit, first)

	var contract float64
	if freq.IsVisitBased() {
		contract = ContractTotal(perVisit, first, freq, months, cfg.VisitRounding)
	} else {
		contract = Round2(first + (months-1)*monthly)
	}
	contract = o.Resolve(FieldContractTotal, contract)

	return Quote{
		ServiceID:        ServiceStripWax,
		Method:           method,
		PerVisit:         perVisit,
		FirstVisit:       Round2(first),
		MonthlyRecurring: Round2(monthly),
		ContractTotal:    Round2(contract),
		MinimumPerVisit:  Round2(cfg.PerVisitMinimum * mult),
		Lines:            lines,
	}
}
