package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"customer-service/internal/domain"
	"customer-service/pkg/response"
	"customer-service/pkg/xerrors"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// AccountService is the single service contract both transport handlers
// consume. The handlers translate wire formats and nothing else.
type AccountService interface {
	Create(ctx context.Context, req *domain.CreateAccountRequest) (*domain.AccountResponse, error)
	Get(ctx context.Context) ([]*domain.AccountResponse, error)
	GetByEmail(ctx context.Context, email string) (*domain.AccountResponse, error)
	Delete(ctx context.Context, email string) (*domain.User, error)
	Credentials(ctx context.Context, email string) (*domain.Credentials, error)
}

type CustomerHandler struct {
	svc           AccountService
	logger        *zap.Logger
	includeDetail bool
}

// NewCustomerHandler builds the HTTP adapter. includeDetail switches the
// diagnostic stack field in error envelopes on; keep it off in production.
func NewCustomerHandler(svc AccountService, logger *zap.Logger, includeDetail bool) *CustomerHandler {
	return &CustomerHandler{svc: svc, logger: logger, includeDetail: includeDetail}
}

func (h *CustomerHandler) Root(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, "customer service is running", nil)
}

func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.fail(w, xerrors.Wrap(xerrors.KindValidationFailed, "Invalid request body", err))
		return
	}

	result, err := h.svc.Create(r.Context(), &req)
	if err != nil {
		h.fail(w, err)
		return
	}

	response.JSON(w, http.StatusOK, "Customer created successfully", result)
}

func (h *CustomerHandler) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.Get(r.Context())
	if err != nil {
		h.fail(w, err)
		return
	}

	response.JSON(w, http.StatusOK, "Customers retrieved successfully", result)
}

func (h *CustomerHandler) GetByEmail(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	result, err := h.svc.GetByEmail(r.Context(), email)
	if err != nil {
		h.fail(w, err)
		return
	}

	response.JSON(w, http.StatusOK, "Customer retrieved successfully", result)
}

func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	user, err := h.svc.Delete(r.Context(), email)
	if err != nil {
		h.fail(w, err)
		return
	}

	response.JSON(w, http.StatusOK, "Customer deleted successfully", map[string]string{
		"email": user.Email,
	})
}

// fail classifies the error once and renders the shared envelope. Server
// faults are logged with their cause; client faults only at debug.
func (h *CustomerHandler) fail(w http.ResponseWriter, err error) {
	e := xerrors.Normalize(err)
	if xerrors.HTTPStatus(e.Kind) >= http.StatusInternalServerError {
		h.logger.Error("request failed", zap.String("kind", string(e.Kind)), zap.Error(err))
	} else {
		h.logger.Debug("request rejected", zap.String("kind", string(e.Kind)), zap.Error(err))
	}
	response.Error(w, e, h.includeDetail)
}
