package pricing

// Foaming drain line jetting. Accounts at or above the volume threshold
// switch to big-account pricing automatically; the threshold comes from
// config and is not user adjustable.

type FoamingDrainConfig struct {
	RatePerDrain       float64       `json:"rate_per_drain"`
	VolumeThreshold    float64       `json:"volume_threshold"`
	VolumeRatePerDrain float64       `json:"volume_rate_per_drain"`
	PerVisitMinimum    float64       `json:"per_visit_minimum"`
	PlumbingAddOn      float64       `json:"plumbing_add_on"`
	TripCharge         float64       `json:"trip_charge"`
	BeltwayTripCharge  float64       `json:"beltway_trip_charge"`
	GreenFactor        float64       `json:"green_factor"`
	VisitRounding      VisitRounding `json:"visit_rounding"`
}

func DefaultFoamingDrainConfig() FoamingDrainConfig {
	return FoamingDrainConfig{
		RatePerDrain:       12,
		VolumeThreshold:    10,
		VolumeRatePerDrain: 9,
		PerVisitMinimum:    45,
		PlumbingAddOn:      25,
		TripCharge:         6,
		BeltwayTripCharge:  12,
		GreenFactor:        1.3,
		VisitRounding:      RoundNearest,
	}
}

type FoamingDrainForm struct {
	Drains                  float64   `json:"drains"`
	IncludePlumbing         bool      `json:"include_plumbing"`
	OutsideBeltway          bool      `json:"outside_beltway"`
	BundledWithAllInclusive bool      `json:"bundled_with_all_inclusive"`
	Frequency               Frequency `json:"frequency"`
	Tier                    RateTier  `json:"tier"`
	ContractMonths          float64   `json:"contract_months"`
	Overrides               Overrides `json:"overrides,omitempty"`
}

func CalculateFoamingDrain(form FoamingDrainForm, cfg FoamingDrainConfig) Quote {
	drains := qty(form.Drains)
	if drains == 0 {
		return zeroQuote(ServiceFoamingDrain, "No drains configured")
	}

	freq := form.Frequency
	if freq == "" {
		freq = FrequencyMonthly
	}
	months := contractMonths(form.ContractMonths)
	o := form.Overrides
	mult := form.Tier.Multiplier(cfg.GreenFactor)

	method := "standard"
	rate := cfg.RatePerDrain
	if cfg.VolumeThreshold > 0 && drains >= cfg.VolumeThreshold {
		method = "volume"
		rate = cfg.VolumeRatePerDrain
	}
	rate = o.Resolve(FieldRate, rate)

	base := max(drains*rate, cfg.PerVisitMinimum)
	lines := []LineItem{CalcLine("Drains treated", drains, rate)}

	addons := 0.0
	if form.IncludePlumbing {
		addons += cfg.PlumbingAddOn
		lines = append(lines, DollarLine("Plumbing add-on", cfg.PlumbingAddOn))
	}

	// Trip is waived when the stop is already covered by an all-inclusive
	// service at the same location.
	trip := 0.0
	if !form.BundledWithAllInclusive {
		trip = cfg.TripCharge
		if form.OutsideBeltway {
			trip = cfg.BeltwayTripCharge
		}
	}
	trip = o.Resolve(FieldTripCharge, trip)
	lines = append(lines, DollarLine("Trip charge", trip))

	perVisit := Round2(o.Resolve(FieldPerVisit, (base+addons+trip)*mult))
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
		ServiceID:        ServiceFoamingDrain,
		Method:           method,
		PerVisit:         perVisit,
		FirstVisit:       Round2(first),
		MonthlyRecurring: Round2(monthly),
		ContractTotal:    Round2(contract),
		MinimumPerVisit:  Round2(cfg.PerVisitMinimum * mult),
		Lines:            lines,
	}
}
