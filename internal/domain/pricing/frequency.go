package pricing

import "math"

// Frequency is the billing cadence of a service.
type Frequency string

const (
	FrequencyWeekly       Frequency = "weekly"
	FrequencyBiweekly     Frequency = "biweekly"
	FrequencyTwiceMonthly Frequency = "twice_monthly"
	FrequencyMonthly      Frequency = "monthly"
	FrequencyBimonthly    Frequency = "bimonthly"
	FrequencyQuarterly    Frequency = "quarterly"
	FrequencyBiannual     Frequency = "biannual"
	FrequencyAnnual       Frequency = "annual"
	FrequencyOneTime      Frequency = "one_time"
)

func (f Frequency) VisitsPerYear() float64 {
	switch f {
	case FrequencyWeekly:
		return 52
	case FrequencyBiweekly:
		return 26
	case FrequencyTwiceMonthly:
		return 24
	case FrequencyMonthly:
		return 12
	case FrequencyBimonthly:
		return 6
	case FrequencyQuarterly:
		return 4
	case FrequencyBiannual:
		return 2
	case FrequencyAnnual:
		return 1
	default:
		return 0
	}
}

// PerMonth is the average visit count per month for monthly-cadence math.
func (f Frequency) PerMonth() float64 {
	return f.VisitsPerYear() / 12
}

// CycleMonths is the length of one billing cycle in months. Zero for
// cadences that are monthly or shorter.
func (f Frequency) CycleMonths() float64 {
	switch f {
	case FrequencyBimonthly:
		return 2
	case FrequencyQuarterly:
		return 3
	case FrequencyBiannual:
		return 6
	case FrequencyAnnual:
		return 12
	default:
		return 0
	}
}

// IsVisitBased reports whether "monthly recurring" is meaningless for this
// cadence and totals must be computed per-visit x visit-count instead.
func (f Frequency) IsVisitBased() bool {
	switch f {
	case FrequencyBimonthly, FrequencyQuarterly, FrequencyBiannual, FrequencyAnnual, FrequencyOneTime:
		return true
	default:
		return false
	}
}

// VisitRounding decides how fractional visit counts are resolved when the
// contract length is not an exact multiple of the billing cycle.
type VisitRounding string

const (
	RoundNearest VisitRounding = "nearest"
	RoundDown    VisitRounding = "down"
	RoundUp      VisitRounding = "up"
)

func (r VisitRounding) Apply(v float64) float64 {
	switch r {
	case RoundDown:
		return math.Floor(v)
	case RoundUp:
		return math.Ceil(v)
	default:
		return math.Round(v)
	}
}

// VisitsInContract computes the visit count for a visit-based cadence over a
// contract of the given length. One-time cadences always yield a single visit.
func VisitsInContract(contractMonths float64, f Frequency, rounding VisitRounding) float64 {
	if f == FrequencyOneTime {
		return 1
	}
	cycle := f.CycleMonths()
	if cycle <= 0 || contractMonths <= 0 {
		return 0
	}
	visits := rounding.Apply(contractMonths / cycle)
	if visits < 1 {
		visits = 1
	}
	return visits
}

// MonthlyRecurring converts a per-visit price to a monthly amount. Zero for
// visit-based cadences.
func MonthlyRecurring(perVisit float64, f Frequency) float64 {
	if f.IsVisitBased() {
		return 0
	}
	return Round2(perVisit * f.PerMonth())
}

// ContractTotal combines first-period and recurring pricing over the contract.
// For monthly cadences: firstMonth + (months-1) x monthly. For visit-based
// cadences: firstVisit + (visits-1) x perVisit.
func ContractTotal(perVisit, first float64, f Frequency, contractMonths float64, rounding VisitRounding) float64 {
	if contractMonths <= 0 {
		contractMonths = 0
	}
	if f.IsVisitBased() {
		visits := VisitsInContract(contractMonths, f, rounding)
		if visits <= 0 {
			return 0
		}
		return Round2(first + (visits-1)*perVisit)
	}
	monthly := perVisit * f.PerMonth()
	if contractMonths < 1 {
		return Round2(first * contractMonths)
	}
	return Round2(first + (contractMonths-1)*monthly)
}
