package pricing

// SaniPod feminine hygiene disposal units, serviced weekly.
//
// A standalone stop can be priced two ways: a flat standalone rate per pod,
// or the bundled rate per pod plus a standalone stop charge. The engine
// always picks the cheaper option for the customer.

type SaniPodConfig struct {
	BundledWeeklyRatePerUnit    float64       `json:"bundled_weekly_rate_per_unit"`
	StandaloneWeeklyRatePerUnit float64       `json:"standalone_weekly_rate_per_unit"`
	StandaloneExtraWeeklyCharge float64       `json:"standalone_extra_weekly_charge"`
	GreenFactor                 float64       `json:"green_factor"`
	VisitRounding               VisitRounding `json:"visit_rounding"`
}

func DefaultSaniPodConfig() SaniPodConfig {
	return SaniPodConfig{
		BundledWeeklyRatePerUnit:    3,
		StandaloneWeeklyRatePerUnit: 8,
		StandaloneExtraWeeklyCharge: 40,
		GreenFactor:                 1.3,
		VisitRounding:               RoundNearest,
	}
}

type SaniPodForm struct {
	Pods           float64   `json:"pods"`
	IsStandalone   bool      `json:"is_standalone"`
	Frequency      Frequency `json:"frequency"`
	Tier           RateTier  `json:"tier"`
	ContractMonths float64   `json:"contract_months"`
	Overrides      Overrides `json:"overrides,omitempty"`
}

func CalculateSaniPod(form SaniPodForm, cfg SaniPodConfig) Quote {
	pods := qty(form.Pods)
	if pods == 0 {
		return zeroQuote(ServiceSaniPod, "No pods configured")
	}

	freq := form.Frequency
	if freq == "" {
		freq = FrequencyWeekly
	}
	months := contractMonths(form.ContractMonths)
	o := form.Overrides
	mult := form.Tier.Multiplier(cfg.GreenFactor)

	var (
		method string
		base   float64
		lines  []LineItem
	)
	if form.IsStandalone {
		optionA := pods * cfg.StandaloneWeeklyRatePerUnit
		optionB := pods*cfg.BundledWeeklyRatePerUnit + cfg.StandaloneExtraWeeklyCharge
		if optionA <= optionB {
			method = "standalone_flat"
			base = optionA
			lines = append(lines, CalcLine("Pods (standalone rate)", pods, cfg.StandaloneWeeklyRatePerUnit))
		} else {
			method = "standalone_plus_stop"
			base = optionB
			lines = append(lines,
				CalcLine("Pods", pods, cfg.BundledWeeklyRatePerUnit),
				DollarLine("Standalone stop charge", cfg.StandaloneExtraWeeklyCharge),
			)
		}
	} else {
		method = "bundled"
		base = pods * cfg.BundledWeeklyRatePerUnit
		lines = append(lines, CalcLine("Pods", pods, cfg.BundledWeeklyRatePerUnit))
	}

	// Trip charge is locked at zero for this service.
	lines = append(lines, DollarLine("Trip charge", 0))

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
		ServiceID:        ServiceSaniPod,
		Method:           method,
		PerVisit:         perVisit,
		FirstVisit:       Round2(first),
		MonthlyRecurring: Round2(monthly),
		ContractTotal:    Round2(contract),
		Lines:            lines,
	}
}
