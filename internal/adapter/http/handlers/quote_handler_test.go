package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"enviromaster/internal/adapter/http/handlers/mocks"
	"enviromaster/internal/domain/pricing"
	"enviromaster/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestQuoteHandler_Preview(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/preview", h.Preview)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/preview", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing service id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/preview", h.Preview)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/preview", bytes.NewBufferString(`{"form":{}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown service maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/preview", h.Preview)

		uc.EXPECT().Preview(gomock.Any(), "window_tinting", gomock.Any()).Return(pricing.Quote{}, usecase.ErrInvalidServiceID)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/preview", bytes.NewBufferString(`{"service_id":"window_tinting","form":{}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/preview", h.Preview)

		uc.EXPECT().Preview(gomock.Any(), "saniclean", gomock.Any()).Return(pricing.Quote{
			ServiceID: "saniclean",
			Method:    "all_inclusive",
			PerVisit:  160,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/preview", bytes.NewBufferString(`{"service_id":"saniclean","form":{"fixtures":20,"mode":"all_inclusive"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["per_visit"] != 160.0 {
			t.Fatalf("expected per_visit 160, got %v", body["per_visit"])
		}
	})
}

func TestQuoteHandler_Agreement(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid form maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/agreement", h.Agreement)

		uc.EXPECT().ComputeAgreement(gomock.Any(), gomock.Any()).Return(usecase.AgreementResult{}, usecase.ErrInvalidFormPayload)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/agreement", bytes.NewBufferString(`{"services":{"saniclean":{"form":{}}}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/agreement", h.Agreement)

		uc.EXPECT().ComputeAgreement(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, cmd usecase.AgreementCommand) (usecase.AgreementResult, error) {
				if cmd.ContractMonths != 24 {
					t.Fatalf("expected contract months 24, got %v", cmd.ContractMonths)
				}
				if cmd.ParkingCharge.Amount != 100 {
					t.Fatalf("expected parking 100, got %v", cmd.ParkingCharge.Amount)
				}
				return usecase.AgreementResult{
					Totals: pricing.AgreementTotals{ContractTotal: 4100, PerVisitTotal: 500},
				}, nil
			},
		)

		body := `{"services":{"carpet":{"form":{"area_sq_ft":1200}}},"contract_months":24,"parking_charge":{"amount":100}}`
		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/agreement", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})
}
