package pricing

import (
	"fmt"
	"math"
)

// Carpet cleaning prices by coverage unit: the first unit carries a higher
// rate than each additional unit, and the billable unit count always rounds
// up from the measured area.

type CarpetConfig struct {
	UnitSqFt           float64       `json:"unit_sq_ft"`
	FirstUnitRate      float64       `json:"first_unit_rate"`
	AdditionalUnitRate float64       `json:"additional_unit_rate"`
	PerVisitMinimum    float64       `json:"per_visit_minimum"`
	GreenFactor        float64       `json:"green_factor"`
	VisitRounding      VisitRounding `json:"visit_rounding"`
}

func DefaultCarpetConfig() CarpetConfig {
	return CarpetConfig{
		UnitSqFt:           500,
		FirstUnitRate:      250,
		AdditionalUnitRate: 125,
		PerVisitMinimum:    250,
		GreenFactor:        1.3,
		VisitRounding:      RoundNearest,
	}
}

type CarpetForm struct {
	AreaSqFt       float64   `json:"area_sq_ft"`
	Frequency      Frequency `json:"frequency"`
	Tier           RateTier  `json:"tier"`
	ContractMonths float64   `json:"contract_months"`
	Overrides      Overrides `json:"overrides,omitempty"`
}

func formatUnits(area, units, unitSqFt float64) string {
	return fmt.Sprintf("%.0f sq ft (%.0f units of %.0f)", area, units, unitSqFt)
}

func CalculateCarpet(form CarpetForm, cfg CarpetConfig) Quote {
	area := qty(form.AreaSqFt)
	if area == 0 {
		return zeroQuote(ServiceCarpet, "No carpeted area configured")
	}

	freq := form.Frequency
	if freq == "" {
		freq = FrequencyQuarterly
	}
	months := contractMonths(form.ContractMonths)
	o := form.Overrides
	mult := form.Tier.Multiplier(cfg.GreenFactor)

	unit := cfg.UnitSqFt
	if unit <= 0 {
		unit = 500
	}
	units := math.Ceil(area / unit)
	extra := units - 1

	firstRate := o.Resolve(FieldRate, cfg.FirstUnitRate)
	raw := firstRate + extra*cfg.AdditionalUnitRate
	base := max(raw, cfg.PerVisitMinimum)

	lines := []LineItem{
		TextLine("Carpet area", formatUnits(area, units, unit)),
		CalcLine("First unit", 1, firstRate),
		DollarLine("Trip charge", 0),
	}
	if extra > 0 {
		lines = append(lines, CalcLine("Additional units", extra, cfg.AdditionalUnitRate))
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
		ServiceID:        ServiceCarpet,
		Method:           "unit_rate",
		PerVisit:         perVisit,
		FirstVisit:       Round2(first),
		MonthlyRecurring: Round2(monthly),
		ContractTotal:    Round2(contract),
		MinimumPerVisit:  Round2(cfg.PerVisitMinimum * mult),
		Lines:            lines,
	}
}
