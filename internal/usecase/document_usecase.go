package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"enviromaster/internal/domain/entities"
	"enviromaster/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrDocumentNotFound     = errors.New("document not found")
	ErrInvalidDocumentID    = errors.New("invalid document id")
	ErrInvalidTransition    = errors.New("invalid status transition")
	ErrInvalidDocumentInput = errors.New("invalid document input")
	ErrPDFNotFound          = errors.New("document pdf not found")
	ErrInvalidPDFPayload    = errors.New("invalid pdf payload")
	ErrPDFStoreUnavailable  = errors.New("pdf store unavailable")
)

// CreateDocumentCommand carries everything needed to open a draft agreement.
type CreateDocumentCommand struct {
	CustomerName string           `json:"customer_name"`
	Salesman     string           `json:"salesman"`
	Agreement    AgreementCommand `json:"agreement"`
}

// IDocumentUseCase owns the agreement document lifecycle: creation from the
// current form states, the approval state machine, and the attached PDF.

type IDocumentUseCase interface {
	CreateDraft(ctx context.Context, cmd CreateDocumentCommand) (entities.Document, error)
	GetByID(ctx context.Context, id string) (entities.Document, error)
	List(ctx context.Context) ([]entities.Document, error)
	Submit(ctx context.Context, id string) (entities.Document, error)
	ApproveSalesman(ctx context.Context, id string) (entities.Document, error)
	ApproveAdmin(ctx context.Context, id string) (entities.Document, error)
	AttachPDF(ctx context.Context, id string, data []byte) (entities.Document, error)
	DownloadPDF(ctx context.Context, id string) ([]byte, error)
}

type DocumentUseCase struct {
	repo   interfaces.IDocumentRepository
	files  interfaces.IFileStore
	quotes IQuoteUseCase
	log    *zap.Logger
}

var _ IDocumentUseCase = (*DocumentUseCase)(nil)

func NewDocumentUseCase(repo interfaces.IDocumentRepository, files interfaces.IFileStore, quotes IQuoteUseCase, log *zap.Logger) *DocumentUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &DocumentUseCase{repo: repo, files: files, quotes: quotes, log: log}
}

func (u *DocumentUseCase) CreateDraft(ctx context.Context, cmd CreateDocumentCommand) (entities.Document, error) {
	if strings.TrimSpace(cmd.CustomerName) == "" {
		return entities.Document{}, ErrInvalidDocumentInput
	}
	if len(cmd.Agreement.Services) == 0 {
		return entities.Document{}, ErrInvalidDocumentInput
	}

	result, err := u.quotes.ComputeAgreement(ctx, cmd.Agreement)
	if err != nil {
		return entities.Document{}, err
	}

	services := make(map[string]entities.ServiceSnapshot, len(cmd.Agreement.Services))
	for serviceID, in := range cmd.Agreement.Services {
		services[serviceID] = entities.ServiceSnapshot{
			Form:                     in.Form,
			Quote:                    result.Quotes[serviceID],
			ContractMonthsOverridden: in.ContractMonthsOverridden,
		}
	}

	now := time.Now().UTC()
	d := entities.Document{
		ID:           uuid.NewString(),
		CustomerName: strings.TrimSpace(cmd.CustomerName),
		Salesman:     strings.TrimSpace(cmd.Salesman),
		Status:       entities.DocumentStatusDraft,
		Payload: entities.DocumentPayload{
			Services:       services,
			ContractMonths: cmd.Agreement.ContractMonths,
			TripCharge:     cmd.Agreement.TripCharge,
			ParkingCharge:  cmd.Agreement.ParkingCharge,
			Totals:         result.Totals,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := u.repo.Create(ctx, d)
	if err != nil {
		return entities.Document{}, err
	}
	u.log.Info("draft document created",
		zap.String("document_id", created.ID),
		zap.Float64("contract_total", created.Payload.Totals.ContractTotal))
	return created, nil
}

func (u *DocumentUseCase) GetByID(ctx context.Context, id string) (entities.Document, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Document{}, ErrInvalidDocumentID
	}

	d, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Document{}, err
	}
	if d.ID == "" {
		return entities.Document{}, ErrDocumentNotFound
	}
	return d, nil
}

func (u *DocumentUseCase) List(ctx context.Context) ([]entities.Document, error) {
	return u.repo.List(ctx)
}

func (u *DocumentUseCase) Submit(ctx context.Context, id string) (entities.Document, error) {
	return u.transition(ctx, id, entities.DocumentStatusPendingApproval)
}

func (u *DocumentUseCase) ApproveSalesman(ctx context.Context, id string) (entities.Document, error) {
	return u.transition(ctx, id, entities.DocumentStatusApprovedSalesman)
}

func (u *DocumentUseCase) ApproveAdmin(ctx context.Context, id string) (entities.Document, error) {
	return u.transition(ctx, id, entities.DocumentStatusApprovedAdmin)
}

func (u *DocumentUseCase) transition(ctx context.Context, id string, next entities.DocumentStatus) (entities.Document, error) {
	d, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Document{}, err
	}
	if !d.Status.CanTransitionTo(next) {
		return entities.Document{}, ErrInvalidTransition
	}

	updated, err := u.repo.UpdateStatus(ctx, d.ID, next)
	if err != nil {
		return entities.Document{}, err
	}
	if updated.ID == "" {
		return entities.Document{}, ErrDocumentNotFound
	}
	u.log.Info("document status changed",
		zap.String("document_id", updated.ID),
		zap.String("status", string(updated.Status)))
	return updated, nil
}

func (u *DocumentUseCase) AttachPDF(ctx context.Context, id string, data []byte) (entities.Document, error) {
	if u.files == nil {
		return entities.Document{}, ErrPDFStoreUnavailable
	}
	if len(data) == 0 {
		return entities.Document{}, ErrInvalidPDFPayload
	}
	d, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Document{}, err
	}

	key := fmt.Sprintf("documents/%s.pdf", d.ID)
	if err := u.files.Put(ctx, key, data, "application/pdf"); err != nil {
		return entities.Document{}, err
	}

	updated, err := u.repo.SetPDFKey(ctx, d.ID, key)
	if err != nil {
		return entities.Document{}, err
	}
	if updated.ID == "" {
		return entities.Document{}, ErrDocumentNotFound
	}
	return updated, nil
}

func (u *DocumentUseCase) DownloadPDF(ctx context.Context, id string) ([]byte, error) {
	d, err := u.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d.PDFKey == "" {
		return nil, ErrPDFNotFound
	}
	if u.files == nil {
		return nil, ErrPDFStoreUnavailable
	}

	data, err := u.files.Get(ctx, d.PDFKey)
	if err != nil {
		u.log.Warn("pdf read failed", zap.String("document_id", d.ID), zap.Error(err))
		return nil, ErrPDFNotFound
	}
	return data, nil
}
