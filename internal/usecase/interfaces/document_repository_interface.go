package interfaces

import (
	"context"

	"enviromaster/internal/domain/entities"
)

// IDocumentRepository abstracts DynamoDB persistence for Document.
//
// The quoting service must be able to:
//   - create a draft when an agreement is generated
//   - list/load documents for the review screens
//   - walk a document through the approval state machine
//   - record the object-store key of an attached PDF

type IDocumentRepository interface {
	Create(ctx context.Context, d entities.Document) (entities.Document, error)
	GetByID(ctx context.Context, id string) (entities.Document, error)
	List(ctx context.Context) ([]entities.Document, error)
	UpdateStatus(ctx context.Context, id string, status entities.DocumentStatus) (entities.Document, error)
	SetPDFKey(ctx context.Context, id, pdfKey string) (entities.Document, error)
	UpdatePayload(ctx context.Context, id string, payload entities.DocumentPayload) (entities.Document, error)
}
