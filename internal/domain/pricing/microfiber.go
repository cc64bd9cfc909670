package pricing

// Microfiber mop exchange, weekly. The standalone minimum is waived when the
// stop is bundled with a SaniClean route.

type MicrofiberConfig struct {
	WeeklyRatePerMop        float64       `json:"weekly_rate_per_mop"`
	StandaloneWeeklyMinimum float64       `json:"standalone_weekly_minimum"`
	GreenFactor             float64       `json:"green_factor"`
	VisitRounding           VisitRounding `json:"visit_rounding"`
}

func DefaultMicrofiberConfig() MicrofiberConfig {
	return MicrofiberConfig{
		WeeklyRatePerMop:        5,
		StandaloneWeeklyMinimum: 20,
		GreenFactor:             1.3,
		VisitRounding:           RoundNearest,
	}
}

type MicrofiberForm struct {
	Mops                 float64   `json:"mops"`
	BundledWithSaniClean bool      `json:"bundled_with_saniclean"`
	Frequency            Frequency `json:"frequency"`
	Tier                 RateTier  `json:"tier"`
	ContractMonths       float64   `json:"contract_months"`
	Overrides            Overrides `json:"overrides,omitempty"`
}

func CalculateMicrofiber(form MicrofiberForm, cfg MicrofiberConfig) Quote {
	mops := qty(form.Mops)
	if mops == 0 {
		return zeroQuote(ServiceMicrofiber, "No mops configured")
	}

	freq := form.Frequency
	if freq == "" {
		freq = FrequencyWeekly
	}
	months := contractMonths(form.ContractMonths)
	o := form.Overrides
	mult := form.Tier.Multiplier(cfg.GreenFactor)

	rate := o.Resolve(FieldRate, cfg.WeeklyRatePerMop)
	raw := mops * rate
	minimum := 0.0
	method := "bundled"
	if !form.BundledWithSaniClean {
		minimum = cfg.StandaloneWeeklyMinimum
		method = "standalone"
	}
	base := max(raw, minimum)

	lines := []LineItem{CalcLine("Microfiber mops", mops, rate)}
	if base > raw {
		lines = append(lines, DollarLine("Standalone minimum", minimum))
	}

	perVisit := Round2(o.Resolve(FieldPerVisit, base*mult))
	monthly := o.Resolve(FieldMonthly, MonthlyRecurring(perVisit, freq))

	first := monthly
	if freq.IsVisitBased() {
		first = perVisit
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
		ServiceID:        ServiceMicrofiber,
		Method:           method,
		PerVisit:         perVisit,
		FirstVisit:       Round2(first),
		MonthlyRecurring: Round2(monthly),
		ContractTotal:    Round2(contract),
		MinimumPerVisit:  Round2(minimum * mult),
		Lines:            lines,
	}
}
