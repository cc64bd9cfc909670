package pricing

// GlobalCharge is an agreement-level addendum (trip, parking) with its own
// monthly frequency. A frequency of zero marks a one-time charge that is
// added to the contract without scaling.
type GlobalCharge struct {
	Amount           float64 `json:"amount"`
	MonthlyFrequency float64 `json:"monthly_frequency"`
}

func (g GlobalCharge) contractContribution(months float64) float64 {
	if g.Amount <= 0 {
		return 0
	}
	if g.MonthlyFrequency <= 0 {
		return g.Amount
	}
	return g.Amount * g.MonthlyFrequency * months
}

// AgreementInput is the cross-service aggregation input: the normalized
// Totals projection of every active service plus the global settings shared
// across the agreement.
type AgreementInput struct {
	Services       map[string]Totals `json:"services"`
	ContractMonths float64           `json:"contract_months"`
	TripCharge     GlobalCharge      `json:"trip_charge"`
	ParkingCharge  GlobalCharge      `json:"parking_charge"`
}

// AgreementTotals is the overall agreement roll-up. PerVisitTotal against
// MinimumPerVisitTotal drives the redline/greenline pricing-health display.
type AgreementTotals struct {
	ContractTotal        float64 `json:"contract_total"`
	PerVisitTotal        float64 `json:"per_visit_total"`
	MinimumPerVisitTotal float64 `json:"minimum_per_visit_total"`
}

// Aggregate sums the active services and applies the global addenda.
// Inactive services (all-zero totals) contribute nothing.
func Aggregate(in AgreementInput) AgreementTotals {
	months := contractMonths(in.ContractMonths)

	var out AgreementTotals
	for _, t := range in.Services {
		out.ContractTotal += t.ContractTotal
		out.PerVisitTotal += t.PerVisit
		out.MinimumPerVisitTotal += t.MinimumPerVisit
	}

	out.ContractTotal += in.TripCharge.contractContribution(months)
	out.ContractTotal += in.ParkingCharge.contractContribution(months)

	out.ContractTotal = Round2(out.ContractTotal)
	out.PerVisitTotal = Round2(out.PerVisitTotal)
	out.MinimumPerVisitTotal = Round2(out.MinimumPerVisitTotal)
	return out
}
