package pricing

// SaniScrub is the periodic deep-scrub service for restroom fixtures.
//
// Minimum semantics are intentionally asymmetric: the monthly cadence floors
// the monthly amount, the bimonthly/quarterly cadences floor the per-visit
// amount. Both behaviors ship in production paperwork and are preserved here.

type SaniScrubConfig struct {
	RatePerFixture    float64       `json:"rate_per_fixture"`
	MonthlyMinimum    float64       `json:"monthly_minimum"`
	PerVisitMinimum   float64       `json:"per_visit_minimum"`
	InstallMultiplier float64       `json:"install_multiplier"`
	GreenFactor       float64       `json:"green_factor"`
	VisitRounding     VisitRounding `json:"visit_rounding"`
}

func DefaultSaniScrubConfig() SaniScrubConfig {
	return SaniScrubConfig{
		RatePerFixture:    15,
		MonthlyMinimum:    85,
		PerVisitMinimum:   110,
		InstallMultiplier: 1.5,
		GreenFactor:       1.3,
		VisitRounding:     RoundNearest,
	}
}

type SaniScrubForm struct {
	Fixtures       float64   `json:"fixtures"`
	Frequency      Frequency `json:"frequency"`
	IncludeInstall bool      `json:"include_install"`
	Tier           RateTier  `json:"tier"`
	ContractMonths float64   `json:"contract_months"`
	Overrides      Overrides `json:"overrides,omitempty"`
}

func CalculateSaniScrub(form SaniScrubForm, cfg SaniScrubConfig) Quote {
	fixtures := qty(form.Fixtures)
	if fixtures == 0 {
		return zeroQuote(ServiceSaniScrub, "No fixtures scheduled for scrubbing")
	}

	freq := form.Frequency
	if freq == "" {
		freq = FrequencyMonthly
	}
	months := contractMonths(form.ContractMonths)
	o := form.Overrides
	mult := form.Tier.Multiplier(cfg.GreenFactor)

	rate := o.Resolve(FieldRate, cfg.RatePerFixture)
	raw := fixtures * rate

	var minimum float64
	if freq == FrequencyMonthly {
		minimum = cfg.MonthlyMinimum
	} else {
		minimum = cfg.PerVisitMinimum
	}
	base := max(raw, minimum)

	lines := []LineItem{
		CalcLine("Fixtures scrubbed", fixtures, rate),
		// Trip charge is locked at zero for this service.
		DollarLine("Trip charge", 0),
	}
	if base > raw {
		lines = append(lines, DollarLine("Minimum applied", minimum))
	}

	perVisit := Round2(o.Resolve(FieldPerVisit, base*mult))
	monthly := o.Resolve(FieldMonthly, MonthlyRecurring(perVisit, freq))

	first := monthly
	if freq.IsVisitBased() {
		first = perVisit
	}
	if form.IncludeInstall {
		first = Round2(first * cfg.InstallMultiplier)
		lines = append(lines, DollarLine("Initial deep scrub", first))
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
		ServiceID:        ServiceSaniScrub,
		Method:           string(freq),
		PerVisit:         perVisit,
		FirstVisit:       Round2(first),
		MonthlyRecurring: Round2(monthly),
		ContractTotal:    Round2(contract),
		MinimumPerVisit:  Round2(minimum * mult),
		Lines:            lines,
	}
}
