package pricing

// SaniClean is the weekly restroom hygiene service. Pricing branches on an
// explicit mode, or auto-detects small facilities by fixture count.
type SaniCleanMode string

const (
	SaniCleanModeAuto         SaniCleanMode = ""
	SaniCleanModeAllInclusive SaniCleanMode = "all_inclusive"
	SaniCleanModeItemized     SaniCleanMode = "itemized"
	SaniCleanModeGeoStandard  SaniCleanMode = "geographic_standard"
)

type SaniCleanConfig struct {
	WeeklyRatePerFixture       float64       `json:"weekly_rate_per_fixture"`
	AllInclusiveRatePerFixture float64       `json:"all_inclusive_rate_per_fixture"`
	SmallFacilityThreshold     float64       `json:"small_facility_threshold"`
	SmallFacilityWeeklyMinimum float64       `json:"small_facility_weekly_minimum"`
	SoapUpgradeWeekly          float64       `json:"soap_upgrade_weekly"`
	WarrantyWeeklyPerDispenser float64       `json:"warranty_weekly_per_dispenser"`
	MicrofiberWeeklyPerMop     float64       `json:"microfiber_weekly_per_mop"`
	PaperCaseRate              float64       `json:"paper_case_rate"`
	PaperCreditWeekly          float64       `json:"paper_credit_weekly"`
	TripCharge                 float64       `json:"trip_charge"`
	BeltwayTripCharge          float64       `json:"beltway_trip_charge"`
	InstallMultiplier          float64       `json:"install_multiplier"`
	GreenFactor                float64       `json:"green_factor"`
	VisitRounding              VisitRounding `json:"visit_rounding"`
}

func DefaultSaniCleanConfig() SaniCleanConfig {
	return SaniCleanConfig{
		WeeklyRatePerFixture:       6.5,
		AllInclusiveRatePerFixture: 8,
		SmallFacilityThreshold:     5,
		SmallFacilityWeeklyMinimum: 35,
		SoapUpgradeWeekly:          1.5,
		WarrantyWeeklyPerDispenser: 0.75,
		MicrofiberWeeklyPerMop:     5,
		PaperCaseRate:              42,
		PaperCreditWeekly:          4,
		TripCharge:                 6,
		BeltwayTripCharge:          12,
		InstallMultiplier:          2,
		GreenFactor:                1.3,
		VisitRounding:              RoundNearest,
	}
}

type SaniCleanForm struct {
	Fixtures           float64       `json:"fixtures"`
	Mode               SaniCleanMode `json:"mode"`
	SoapDispensers     float64       `json:"soap_dispensers"`
	WarrantyDispensers float64       `json:"warranty_dispensers"`
	MicrofiberMops     float64       `json:"microfiber_mops"`
	PaperCases         float64       `json:"paper_cases"`
	PaperCredit        bool          `json:"paper_credit"`
	OutsideBeltway     bool          `json:"outside_beltway"`
	IncludeInstall     bool          `json:"include_install"`
	Frequency          Frequency     `json:"frequency"`
	Tier               RateTier      `json:"tier"`
	ContractMonths     float64       `json:"contract_months"`
	Overrides          Overrides     `json:"overrides,omitempty"`
}

func CalculateSaniClean(form SaniCleanForm, cfg SaniCleanConfig) Quote {
	fixtures := qty(form.Fixtures)
	if fixtures == 0 {
		return zeroQuote(ServiceSaniClean, "No restroom fixtures configured")
	}

	freq := form.Frequency
	if freq == "" {
		freq = FrequencyWeekly
	}
	months := contractMonths(form.ContractMonths)
	o := form.Overrides
	mult := form.Tier.Multiplier(cfg.GreenFactor)

	mode := form.Mode
	if mode == SaniCleanModeAuto {
		if fixtures <= cfg.SmallFacilityThreshold {
			mode = SaniCleanModeGeoStandard
		} else {
			mode = SaniCleanModeItemized
		}
	}

	var (
		method     string
		weeklyBase float64
		minimum    float64
		lines      []LineItem
	)

	switch mode {
	case SaniCleanModeAllInclusive:
		method = "all_inclusive"
		rate := o.Resolve(FieldRate, cfg.AllInclusiveRatePerFixture)
		weeklyBase = fixtures * rate
		lines = append(lines, CalcLine("Restroom fixtures (all inclusive)", fixtures, rate))
		lines = append(lines,
			TextLine("Soap upgrade", "Included"),
			TextLine("Dispenser warranty", "Included"),
			TextLine("Microfiber mopping", "Included"),
			TextLine("Paper program", "Included"),
			TextLine("Trip charge", "Waived"),
		)
	case SaniCleanModeGeoStandard:
		rate := o.Resolve(FieldRate, cfg.WeeklyRatePerFixture)
		raw := fixtures * rate
		if fixtures <= cfg.SmallFacilityThreshold {
			// Small facilities bill the flat weekly minimum regardless of
			// the per-fixture product.
			method = "small_facility_minimum"
			minimum = cfg.SmallFacilityWeeklyMinimum
			weeklyBase = minimum
			lines = append(lines, DollarLine("Small facility weekly minimum", minimum))
		} else {
			method = "geographic_standard"
			minimum = cfg.SmallFacilityWeeklyMinimum
			weeklyBase = max(raw, minimum)
			lines = append(lines, CalcLine("Restroom fixtures", fixtures, rate))
		}
	default:
		method = "itemized"
		rate := o.Resolve(FieldRate, cfg.WeeklyRatePerFixture)
		minimum = cfg.SmallFacilityWeeklyMinimum
		weeklyBase = max(fixtures*rate, minimum)
		lines = append(lines, CalcLine("Restroom fixtures", fixtures, rate))
	}

	addons := 0.0
	if mode != SaniCleanModeAllInclusive {
		if soap := qty(form.SoapDispensers); soap > 0 {
			addons += soap * cfg.SoapUpgradeWeekly
			lines = append(lines, CalcLine("Soap upgrade", soap, cfg.SoapUpgradeWeekly))
		}
		if warr := qty(form.WarrantyDispensers); warr > 0 {
			addons += warr * cfg.WarrantyWeeklyPerDispenser
			lines = append(lines, CalcLine("Dispenser warranty", warr, cfg.WarrantyWeeklyPerDispenser))
		}
		if mops := qty(form.MicrofiberMops); mops > 0 {
			addons += mops * cfg.MicrofiberWeeklyPerMop
			lines = append(lines, CalcLine("Microfiber mopping", mops, cfg.MicrofiberWeeklyPerMop))
		}
		if cases := qty(form.PaperCases); cases > 0 {
			addons += cases * cfg.PaperCaseRate
			lines = append(lines, CalcLine("Paper overage", cases, cfg.PaperCaseRate))
		}
		if form.PaperCredit {
			addons -= cfg.PaperCreditWeekly
			lines = append(lines, DollarLine("Paper credit", -cfg.PaperCreditWeekly))
		}
	}

	trip := 0.0
	if mode != SaniCleanModeAllInclusive {
		trip = cfg.TripCharge
		if form.OutsideBeltway {
			trip = cfg.BeltwayTripCharge
		}
		trip = o.Resolve(FieldTripCharge, trip)
		lines = append(lines, DollarLine("Trip charge", trip))
	}

	perVisit := Round2(o.Resolve(FieldPerVisit, (weeklyBase+addons+trip)*mult))
	monthly := o.Resolve(FieldMonthly, MonthlyRecurring(perVisit, freq))

	first := monthly
	if form.IncludeInstall {
		first = Round2(monthly * cfg.InstallMultiplier)
		lines = append(lines, DollarLine("Installation (first month)", first))
	}
	first = o.Resolve(FieldFirstVisit, first)

	var contract float64
	if freq.IsVisitBased() {
		contract = ContractTotal(perVisit, perVisit, freq, months, cfg.VisitRounding)
	} else {
		contract = Round2(first + (months-1)*monthly)
	}
	contract = o.Resolve(FieldContractTotal, contract)

	return Quote{
		ServiceID:        ServiceSaniClean,
		Method:           method,
		PerVisit:         perVisit,
		FirstVisit:       Round2(first),
		MonthlyRecurring: Round2(monthly),
		ContractTotal:    Round2(contract),
		MinimumPerVisit:  Round2(minimum * mult),
		Lines:            lines,
	}
}
