package pricing

// Electrostatic disinfectant spray, priced per treated room.

type ElectrostaticConfig struct {
	RatePerRoom       float64       `json:"rate_per_room"`
	PerVisitMinimum   float64       `json:"per_visit_minimum"`
	TripCharge        float64       `json:"trip_charge"`
	BeltwayTripCharge float64       `json:"beltway_trip_charge"`
	GreenFactor       float64       `json:"green_factor"`
	VisitRounding     VisitRounding `json:"visit_rounding"`
}

func DefaultElectrostaticConfig() ElectrostaticConfig {
	return ElectrostaticConfig{
		RatePerRoom:       8,
		PerVisitMinimum:   60,
		TripCharge:        6,
		BeltwayTripCharge: 12,
		GreenFactor:       1.3,
		VisitRounding:     RoundNearest,
	}
}

type ElectrostaticForm struct {
	Rooms                   float64   `json:"rooms"`
	OutsideBeltway          bool      `json:"outside_beltway"`
	BundledWithAllInclusive bool      `json:"bundled_with_all_inclusive"`
	Frequency               Frequency `json:"frequency"`
	Tier                    RateTier  `json:"tier"`
	ContractMonths          float64   `json:"contract_months"`
	Overrides               Overrides `json:"overrides,omitempty"`
}

func CalculateElectrostatic(form ElectrostaticForm, cfg ElectrostaticConfig) Quote {
	rooms := qty(form.Rooms)
	if rooms == 0 {
		return zeroQuote(ServiceElectrostatic, "No rooms configured for spraying")
	}

	freq := form.Frequency
	if freq == "" {
		freq = FrequencyMonthly
	}
	months := contractMonths(form.ContractMonths)
	o := form.Overrides
	mult := form.Tier.Multiplier(cfg.GreenFactor)

	rate := o.Resolve(FieldRate, cfg.RatePerRoom)
	base := max(rooms*rate, cfg.PerVisitMinimum)
	lines := []LineItem{CalcLine("Rooms sprayed", rooms, rate)}

	trip := 0.0
	if !form.BundledWithAllInclusive {
		trip = cfg.TripCharge
		if form.OutsideBeltway {
			trip = cfg.BeltwayTripCharge
		}
	}
	trip = o.Resolve(FieldTripCharge, trip)
	lines = append(lines, DollarLine("Trip charge", trip))

	perVisit := Round2(o.Resolve(FieldPerVisit, (base+trip)*mult))
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
		ServiceID:        ServiceElectrostatic,
		Method:           "per_room",
		PerVisit:         perVisit,
		FirstVisit:       Round2(first),
		MonthlyRecurring: Round2(monthly),
		ContractTotal:    Round2(contract),
		MinimumPerVisit:  Round2(cfg.PerVisitMinimum * mult),
		Lines:            lines,
	}
}
