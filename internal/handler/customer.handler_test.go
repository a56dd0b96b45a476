package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"customer-service/internal/domain"
	"customer-service/pkg/response"
	"customer-service/pkg/xerrors"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// ---- mock implementations ----

type mockAccountService struct {
	createFn      func(req *domain.CreateAccountRequest) (*domain.AccountResponse, error)
	getFn         func() ([]*domain.AccountResponse, error)
	getByEmailFn  func(email string) (*domain.AccountResponse, error)
	deleteFn      func(email string) (*domain.User, error)
	credentialsFn func(email string) (*domain.Credentials, error)
}

func (m *mockAccountService) Create(ctx context.Context, req *domain.CreateAccountRequest) (*domain.AccountResponse, error) {
	if m.createFn != nil {
		return m.createFn(req)
	}
	return nil, fmt.Errorf("not configured")
}

func (m *mockAccountService) Get(ctx context.Context) ([]*domain.AccountResponse, error) {
	if m.getFn != nil {
		return m.getFn()
	}
	return nil, fmt.Errorf("not configured")
}

func (m *mockAccountService) GetByEmail(ctx context.Context, email string) (*domain.AccountResponse, error) {
	if m.getByEmailFn != nil {
		return m.getByEmailFn(email)
	}
	return nil, fmt.Errorf("not configured")
}

func (m *mockAccountService) Delete(ctx context.Context, email string) (*domain.User, error) {
	if m.deleteFn != nil {
		return m.deleteFn(email)
	}
	return nil, fmt.Errorf("not configured")
}

func (m *mockAccountService) Credentials(ctx context.Context, email string) (*domain.Credentials, error) {
	if m.credentialsFn != nil {
		return m.credentialsFn(email)
	}
	return nil, fmt.Errorf("not configured")
}

// ---- helpers ----

func newTestRouter(svc AccountService) http.Handler {
	h := NewCustomerHandler(svc, zap.NewNop(), false)
	r := chi.NewRouter()
	r.Route("/api/v1/usercustomers", func(r chi.Router) {
		r.Post("/", h.Create)
		r.Get("/", h.Get)
		r.Get("/{email}", h.GetByEmail)
		r.Delete("/{email}", h.Delete)
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.RouteNotFound(w)
	})
	return r
}

func doRequest(router http.Handler, method, url string, body interface{}) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, url, nil)
	if body != nil {
		b, _ := json.Marshal(body)
		req, _ = http.NewRequest(method, url, strings.NewReader(string(b)))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) response.ErrorResponse {
	t.Helper()
	var resp response.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding error envelope: %v; body: %s", err, w.Body.String())
	}
	return resp
}

// ---- test data ----

var testAccount = &domain.AccountResponse{
	Name:   "Alice",
	Email:  "alice@example.com",
	Role:   domain.RoleCustomer,
	Status: domain.StatusInProgress,
}

func validCreateBody() map[string]interface{} {
	return map[string]interface{}{
		"name": "Alice", "email": "alice@example.com", "password": "secret123",
	}
}

// ---- tests ----

func TestCreateHandler(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		createFn       func(req *domain.CreateAccountRequest) (*domain.AccountResponse, error)
		expectedStatus int
	}{
		{
			name:           "success - creates user and customer",
			body:           validCreateBody(),
			createFn:       func(*domain.CreateAccountRequest) (*domain.AccountResponse, error) { return testAccount, nil },
			expectedStatus: http.StatusOK,
		},
		{
			name: "bad request - validation failure",
			body: map[string]interface{}{"email": "alice@example.com"},
			createFn: func(*domain.CreateAccountRequest) (*domain.AccountResponse, error) {
				return nil, xerrors.Validation(xerrors.Source{Path: "name", Message: "Name is required"})
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "conflict - duplicate email",
			body: validCreateBody(),
			createFn: func(*domain.CreateAccountRequest) (*domain.AccountResponse, error) {
				return nil, fmt.Errorf("create user: %w", &pgconn.PgError{
					Code:           "23505",
					ConstraintName: "users_email_key",
				})
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "internal - commit failure",
			body: validCreateBody(),
			createFn: func(*domain.CreateAccountRequest) (*domain.AccountResponse, error) {
				return nil, xerrors.Wrap(xerrors.KindServiceFailure, "User-Customer creation failed", fmt.Errorf("deadlock"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(&mockAccountService{createFn: tt.createFn})
			w := doRequest(router, http.MethodPost, "/api/v1/usercustomers/", tt.body)
			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d; body: %s", tt.expectedStatus, w.Code, w.Body.String())
			}
		})
	}
}

func TestCreateHandlerSuccessEnvelope(t *testing.T) {
	router := newTestRouter(&mockAccountService{
		createFn: func(*domain.CreateAccountRequest) (*domain.AccountResponse, error) { return testAccount, nil },
	})
	w := doRequest(router, http.MethodPost, "/api/v1/usercustomers/", validCreateBody())

	var resp response.SuccessResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding envelope: %v", err)
	}
	if resp.Message != "Customer created successfully" {
		t.Errorf("unexpected message %q", resp.Message)
	}
	if strings.Contains(w.Body.String(), "password") {
		t.Error("response body must never carry password material")
	}
}

func TestCreateHandlerErrorEnvelope(t *testing.T) {
	router := newTestRouter(&mockAccountService{
		createFn: func(*domain.CreateAccountRequest) (*domain.AccountResponse, error) {
			return nil, xerrors.Validation(
				xerrors.Source{Path: "name", Message: "Name is required"},
				xerrors.Source{Path: "password", Message: "Password is required"},
			)
		},
	})
	w := doRequest(router, http.MethodPost, "/api/v1/usercustomers/", map[string]interface{}{})

	resp := decodeError(t, w)
	if resp.Success {
		t.Error("success must be false on failure")
	}
	if resp.Message != "Name is required" {
		t.Errorf("message should come from the first source, got %q", resp.Message)
	}
	if len(resp.ErrorSources) != 2 {
		t.Fatalf("expected 2 error sources, got %d", len(resp.ErrorSources))
	}
	if resp.ErrorSources[0].Path != "name" || resp.ErrorSources[1].Path != "password" {
		t.Errorf("unexpected source paths: %+v", resp.ErrorSources)
	}
	if resp.Stack != "" {
		t.Error("stack must be absent when detail is disabled")
	}
}

func TestCreateHandlerMalformedJSON(t *testing.T) {
	router := newTestRouter(&mockAccountService{})
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/usercustomers/", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestGetHandler(t *testing.T) {
	router := newTestRouter(&mockAccountService{
		getFn: func() ([]*domain.AccountResponse, error) {
			return []*domain.AccountResponse{testAccount}, nil
		},
	})
	w := doRequest(router, http.MethodGet, "/api/v1/usercustomers/", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d; body: %s", w.Code, w.Body.String())
	}
	var resp struct {
		Message string                    `json:"message"`
		Data    []*domain.AccountResponse `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding envelope: %v", err)
	}
	if len(resp.Data) != 1 || resp.Data[0].Email != "alice@example.com" {
		t.Errorf("unexpected data: %+v", resp.Data)
	}
}

func TestGetByEmailHandler(t *testing.T) {
	tests := []struct {
		name           string
		email          string
		getByEmailFn   func(email string) (*domain.AccountResponse, error)
		expectedStatus int
	}{
		{
			name:  "success",
			email: "alice@example.com",
			getByEmailFn: func(email string) (*domain.AccountResponse, error) {
				if email != "alice@example.com" {
					return nil, fmt.Errorf("unexpected email %q", email)
				}
				return testAccount, nil
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:  "not found",
			email: "ghost@example.com",
			getByEmailFn: func(string) (*domain.AccountResponse, error) {
				return nil, xerrors.NotFound("Customer not found")
			},
			expectedStatus: http.StatusNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(&mockAccountService{getByEmailFn: tt.getByEmailFn})
			w := doRequest(router, http.MethodGet, "/api/v1/usercustomers/"+tt.email, nil)
			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d; body: %s", tt.expectedStatus, w.Code, w.Body.String())
			}
		})
	}
}

func TestDeleteHandler(t *testing.T) {
	tests := []struct {
		name           string
		deleteFn       func(email string) (*domain.User, error)
		expectedStatus int
	}{
		{
			name: "success - soft delete",
			deleteFn: func(email string) (*domain.User, error) {
				return &domain.User{ID: "42", Email: email, IsDeleted: true}, nil
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "not found",
			deleteFn: func(string) (*domain.User, error) {
				return nil, xerrors.NotFound("User not found")
			},
			expectedStatus: http.StatusNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(&mockAccountService{deleteFn: tt.deleteFn})
			w := doRequest(router, http.MethodDelete, "/api/v1/usercustomers/alice@example.com", nil)
			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d; body: %s", tt.expectedStatus, w.Code, w.Body.String())
			}
		})
	}
}

func TestUnknownRoute(t *testing.T) {
	router := newTestRouter(&mockAccountService{})
	w := doRequest(router, http.MethodGet, "/api/v2/nothing", nil)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	var resp response.RouteNotFoundResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding envelope: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound || resp.Message != "API is not found" {
		t.Errorf("unexpected envelope: %+v", resp)
	}
}

func TestUnknownErrorEnvelope(t *testing.T) {
	router := newTestRouter(&mockAccountService{
		getFn: func() ([]*domain.AccountResponse, error) {
			return nil, fmt.Errorf("dial tcp: connection refused")
		},
	})
	w := doRequest(router, http.MethodGet, "/api/v1/usercustomers/", nil)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	resp := decodeError(t, w)
	if resp.Message != "dial tcp: connection refused" {
		t.Errorf("generic error message should be preserved, got %q", resp.Message)
	}
}
