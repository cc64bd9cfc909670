package entities

import (
	"encoding/json"
	"time"

	"enviromaster/internal/domain/pricing"
)

// DocumentStatus represents the approval lifecycle of a generated agreement.
//
// Domain notes:
//   - The quoting service is the source of truth for document state.
//   - Transitions are strictly forward: a draft is submitted, then approved
//     by the salesman, then by an admin.

type DocumentStatus string

const (
	DocumentStatusDraft            DocumentStatus = "draft"
	DocumentStatusPendingApproval  DocumentStatus = "pending_approval"
	DocumentStatusApprovedSalesman DocumentStatus = "approved_salesman"
	DocumentStatusApprovedAdmin    DocumentStatus = "approved_admin"
)

// CanTransitionTo reports whether the approval state machine allows the move.
func (s DocumentStatus) CanTransitionTo(next DocumentStatus) bool {
	switch s {
	case DocumentStatusDraft:
		return next == DocumentStatusPendingApproval
	case DocumentStatusPendingApproval:
		return next == DocumentStatusApprovedSalesman
	case DocumentStatusApprovedSalesman:
		return next == DocumentStatusApprovedAdmin
	default:
		return false
	}
}

// ServiceSnapshot is the persisted state of one service card on an order:
// the raw form as last edited plus the quote derived from it.
//
// ContractMonthsOverridden suppresses future syncing of the global contract
// length into this service once the user has pinned a local value.
type ServiceSnapshot struct {
	Form                     json.RawMessage `json:"form"`
	Quote                    pricing.Quote   `json:"quote"`
	ContractMonthsOverridden bool            `json:"contract_months_overridden,omitempty"`
}

// DocumentPayload carries everything the agreement renders from.
type DocumentPayload struct {
	Services       map[string]ServiceSnapshot `json:"services"`
	ContractMonths float64                    `json:"contract_months"`
	TripCharge     pricing.GlobalCharge       `json:"trip_charge"`
	ParkingCharge  pricing.GlobalCharge       `json:"parking_charge"`
	Totals         pricing.AgreementTotals    `json:"totals"`
}

// Document is the persisted agreement artifact.
//
// Storage model (DynamoDB):
//   - PK: id
//
// PDFKey points at the uploaded agreement PDF in the object store; empty
// until a PDF has been attached.
type Document struct {
	ID           string          `json:"id"`
	CustomerName string          `json:"customer_name"`
	Salesman     string          `json:"salesman"`
	Status       DocumentStatus  `json:"status"`
	Payload      DocumentPayload `json:"payload"`
	PDFKey       string          `json:"pdf_key,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
