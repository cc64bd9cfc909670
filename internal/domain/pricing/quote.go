package pricing

import "math"

// LineType tags a quote line item for the document-generation layer.
//
// The payload shape (type/label, plus qty/rate/total for calc lines) is the
// interchange format consumed downstream and must not change.
type LineType string

const (
	LineTypeText   LineType = "text"
	LineTypeCalc   LineType = "calc"
	LineTypeDollar LineType = "dollar"
)

type LineItem struct {
	Type   LineType `json:"type"`
	Label  string   `json:"label"`
	Value  string   `json:"value,omitempty"`
	Qty    float64  `json:"qty,omitempty"`
	Rate   float64  `json:"rate,omitempty"`
	Total  float64  `json:"total,omitempty"`
	Amount float64  `json:"amount,omitempty"`
}

func TextLine(label, value string) LineItem {
	return LineItem{Type: LineTypeText, Label: label, Value: value}
}

func CalcLine(label string, qty, rate float64) LineItem {
	return LineItem{Type: LineTypeCalc, Label: label, Qty: qty, Rate: rate, Total: Round2(qty * rate)}
}

func DollarLine(label string, amount float64) LineItem {
	return LineItem{Type: LineTypeDollar, Label: label, Amount: Round2(amount)}
}

// Quote is the derived output of one service calculator for one form state.
type Quote struct {
	ServiceID        string     `json:"service_id"`
	Method           string     `json:"method"`
	PerVisit         float64    `json:"per_visit"`
	FirstVisit       float64    `json:"first_visit"`
	MonthlyRecurring float64    `json:"monthly_recurring"`
	ContractTotal    float64    `json:"contract_total"`
	MinimumPerVisit  float64    `json:"minimum_per_visit"`
	Lines            []LineItem `json:"lines"`
}

// Totals is the normalized projection consumed by the aggregation layer.
// Every calculator is adapted through this exact shape; the aggregator never
// probes service-specific payload paths.
type Totals struct {
	ContractTotal   float64 `json:"contract_total"`
	PerVisit        float64 `json:"per_visit"`
	MinimumPerVisit float64 `json:"minimum_per_visit"`
}

func (q Quote) Totals() Totals {
	return Totals{
		ContractTotal:   q.ContractTotal,
		PerVisit:        q.PerVisit,
		MinimumPerVisit: q.MinimumPerVisit,
	}
}

// Active reports whether the quote represents a billable service.
func (q Quote) Active() bool {
	return q.PerVisit > 0 || q.ContractTotal > 0
}

func zeroQuote(serviceID, note string) Quote {
	return Quote{
		ServiceID: serviceID,
		Method:    "no_charge",
		Lines:     []LineItem{TextLine("Note", note)},
	}
}

// Round2 rounds to cents. All money leaving a calculator passes through here.
func Round2(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return math.Round(v*100) / 100
}

// qty coerces a raw numeric input into a usable quantity. Invalid input never
// raises; it prices as zero.
func qty(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
