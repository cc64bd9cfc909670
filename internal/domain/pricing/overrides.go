package pricing

// Field identifies a derived pricing output a user may pin manually.
type Field string

const (
	FieldRate          Field = "rate"
	FieldPerVisit      Field = "per_visit"
	FieldFirstVisit    Field = "first_visit"
	FieldMonthly       Field = "monthly"
	FieldContractTotal Field = "contract_total"
	FieldTripCharge    Field = "trip_charge"
)

// Overrides maps a derived field to a user-pinned value. A present key wins
// over the computed value verbatim; removing the key reverts to computed.
// This replaces the historical scattering of optional custom fields.
type Overrides map[Field]float64

func (o Overrides) Has(f Field) bool {
	_, ok := o[f]
	return ok
}

// Resolve returns the pinned value when one exists, otherwise the computed one.
func (o Overrides) Resolve(f Field, computed float64) float64 {
	if v, ok := o[f]; ok {
		return v
	}
	return computed
}
