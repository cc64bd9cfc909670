package pricing

// RPM window maintenance, priced per pane with separate inside/outside rates.

type RPMWindowsConfig struct {
	RatePerPaneOutside float64       `json:"rate_per_pane_outside"`
	RatePerPaneInside  float64       `json:"rate_per_pane_inside"`
	FrameAddOnPerPane  float64       `json:"frame_add_on_per_pane"`
	PerVisitMinimum    float64       `json:"per_visit_minimum"`
	GreenFactor        float64       `json:"green_factor"`
	VisitRounding      VisitRounding `json:"visit_rounding"`
}

func DefaultRPMWindowsConfig() RPMWindowsConfig {
	return RPMWindowsConfig{
		RatePerPaneOutside: 2.25,
		RatePerPaneInside:  1.75,
		FrameAddOnPerPane:  0.5,
		PerVisitMinimum:    40,
		GreenFactor:        1.3,
		VisitRounding:      RoundNearest,
	}
}

type RPMWindowsForm struct {
	PanesOutside   float64   `json:"panes_outside"`
	PanesInside    float64   `json:"panes_inside"`
	IncludeFrames  bool      `json:"include_frames"`
	Frequency      Frequency `json:"frequency"`
	Tier           RateTier  `json:"tier"`
	ContractMonths float64   `json:"contract_months"`
	Overrides      Overrides `json:"overrides,omitempty"`
}

func CalculateRPMWindows(form RPMWindowsForm, cfg RPMWindowsConfig) Quote {
	outside := qty(form.PanesOutside)
	inside := qty(form.PanesInside)
	if outside == 0 && inside == 0 {
		return zeroQuote(ServiceRPMWindows, "No window panes configured")
	}

	freq := form.Frequency
	if freq == "" {
		freq = FrequencyMonthly
	}
	months := contractMonths(form.ContractMonths)
	o := form.Overrides
	mult := form.Tier.Multiplier(cfg.GreenFactor)

	raw := outside*cfg.RatePerPaneOutside + inside*cfg.RatePerPaneInside
	var lines []LineItem
	if outside > 0 {
		lines = append(lines, CalcLine("Panes, outside", outside, cfg.RatePerPaneOutside))
	}
	if inside > 0 {
		lines = append(lines, CalcLine("Panes, inside", inside, cfg.RatePerPaneInside))
	}
	if form.IncludeFrames {
		frames := (outside + inside) * cfg.FrameAddOnPerPane
		raw += frames
		lines = append(lines, CalcLine("Frame detail", outside+inside, cfg.FrameAddOnPerPane))
	}
	base := max(raw, cfg.PerVisitMinimum)
	if base > raw {
		lines = append(lines, DollarLine("Minimum applied", cfg.PerVisitMinimum))
	}

	perVisit := Round2(o.Resolve(FieldPerVisit, base*mult))
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
		ServiceID:        ServiceRPMWindows,
		Method:           "per_pane",
		PerVisit:         perVisit,
		FirstVisit:       Round2(first),
		MonthlyRecurring: Round2(monthly),
		ContractTotal:    Round2(contract),
		MinimumPerVisit:  Round2(cfg.PerVisitMinimum * mult),
		Lines:            lines,
	}
}
