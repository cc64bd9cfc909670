package pricing

// Service ids. These are the keys used by the config store, the aggregation
// map and the document payload.
const (
	ServiceSaniClean     = "saniclean"
	ServiceSaniScrub     = "saniscrub"
	ServiceCarpet        = "carpet"
	ServiceFoamingDrain  = "foaming_drain"
	ServiceElectrostatic = "electrostatic"
	ServiceSaniPod       = "sanipod"
	ServiceStripWax      = "strip_wax"
	ServiceRPMWindows    = "rpm_windows"
	ServiceGreaseTrap    = "grease_trap"
	ServiceMicrofiber    = "microfiber"
)

const defaultContractMonths = 12

// contractMonths falls back to the standard agreement length when the form
// carries no usable value.
func contractMonths(v float64) float64 {
	if v <= 0 {
		return defaultContractMonths
	}
	return v
}
