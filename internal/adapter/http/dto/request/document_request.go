package request

import "enviromaster/internal/usecase"

// CreateDocumentRequest opens a draft agreement document from the current
// order state.
type CreateDocumentRequest struct {
	CustomerName string           `json:"customer_name" binding:"required"`
	Salesman     string           `json:"salesman"`
	Agreement    AgreementRequest `json:"agreement" binding:"required"`
}

func (r CreateDocumentRequest) ToCommand() usecase.CreateDocumentCommand {
	return usecase.CreateDocumentCommand{
		CustomerName: r.CustomerName,
		Salesman:     r.Salesman,
		Agreement:    r.Agreement.ToCommand(),
	}
}
