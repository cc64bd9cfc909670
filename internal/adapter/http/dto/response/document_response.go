package response

import (
	"time"

	"enviromaster/internal/domain/entities"
)

type DocumentResponse struct {
	ID           string                   `json:"id"`
	CustomerName string                   `json:"customer_name"`
	Salesman     string                   `json:"salesman,omitempty"`
	Status       string                   `json:"status"`
	Payload      entities.DocumentPayload `json:"payload"`
	HasPDF       bool                     `json:"has_pdf"`
	CreatedAt    time.Time                `json:"created_at"`
	UpdatedAt    time.Time                `json:"updated_at"`
}

func FromDocument(d entities.Document) DocumentResponse {
	return DocumentResponse{
		ID:           d.ID,
		CustomerName: d.CustomerName,
		Salesman:     d.Salesman,
		Status:       string(d.Status),
		Payload:      d.Payload,
		HasPDF:       d.PDFKey != "",
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

func FromDocuments(docs []entities.Document) []DocumentResponse {
	out := make([]DocumentResponse, 0, len(docs))
	for _, d := range docs {
		out = append(out, FromDocument(d))
	}
	return out
}
