package pricing

// Grease trap service, priced per trap with size-tier rates and an optional
// green-drain treatment per floor drain.

type GreaseTrapConfig struct {
	SmallTrapRate   float64       `json:"small_trap_rate"`
	LargeTrapRate   float64       `json:"large_trap_rate"`
	GreenDrainRate  float64       `json:"green_drain_rate"`
	PerVisitMinimum float64       `json:"per_visit_minimum"`
	GreenFactor     float64       `json:"green_factor"`
	VisitRounding   VisitRounding `json:"visit_rounding"`
}

func DefaultGreaseTrapConfig() GreaseTrapConfig {
	return GreaseTrapConfig{
		SmallTrapRate:   95,
		LargeTrapRate:   165,
		GreenDrainRate:  18,
		PerVisitMinimum: 95,
		GreenFactor:     1.3,
		VisitRounding:   RoundNearest,
	}
}

type GreaseTrapForm struct {
	SmallTraps     float64   `json:"small_traps"`
	LargeTraps     float64   `json:"large_traps"`
	GreenDrains    float64   `json:"green_drains"`
	Frequency      Frequency `json:"frequency"`
	Tier           RateTier  `json:"tier"`
	ContractMonths float64   `json:"contract_months"`
	Overrides      Overrides `json:"overrides,omitempty"`
}

func CalculateGreaseTrap(form GreaseTrapForm, cfg GreaseTrapConfig) Quote {
	small := qty(form.SmallTraps)
	large := qty(form.LargeTraps)
	if small == 0 && large == 0 {
		return zeroQuote(ServiceGreaseTrap, "No grease traps configured")
	}

	freq := form.Frequency
	if freq == "" {
		freq = FrequencyQuarterly
	}
	months := contractMonths(form.ContractMonths)
	o := form.Overrides
	mult := form.Tier.Multiplier(cfg.GreenFactor)

	raw := small*cfg.SmallTrapRate + large*cfg.LargeTrapRate
	var lines []LineItem
	if small > 0 {
		lines = append(lines, CalcLine("Traps, small", small, cfg.SmallTrapRate))
	}
	if large > 0 {
		lines = append(lines, CalcLine("Traps, large", large, cfg.LargeTrapRate))
	}

	addons := 0.0
	if drains := qty(form.GreenDrains); drains > 0 {
		addons = drains * cfg.GreenDrainRate
		lines = append(lines, CalcLine("Green drain treatment", drains, cfg.GreenDrainRate))
	}

	base := max(raw, cfg.PerVisitMinimum)
	if base > raw {
		lines = append(lines, DollarLine("Pump-out minimum", cfg.PerVisitMinimum))
	}

	perVisit := Round2(o.Resolve(FieldPerVisit, (base+addons)*mult))
	monthly := o.Resolve(FieldMonthly, MonthlyRecurring(perVisit, freq))

	first := perVisit
	if !freq.IsVisitBased() {
		first = monthly
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
		ServiceID:        ServiceGreaseTrap,
		Method:           "per_trap",
		PerVisit:         perVisit,
		FirstVisit:       Round2(first),
		MonthlyRecurring: Round2(monthly),
		ContractTotal:    Round2(contract),
		MinimumPerVisit:  Round2(cfg.PerVisitMinimum * mult),
		Lines:            lines,
	}
}
