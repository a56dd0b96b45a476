package response

import (
	"encoding/json"
	"net/http"

	"customer-service/pkg/xerrors"
)

type SuccessResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// ErrorResponse is the failure envelope shared by every HTTP endpoint. Stack
// is populated only outside production.
type ErrorResponse struct {
	Success      bool             `json:"success"`
	Message      string           `json:"message"`
	ErrorSources []xerrors.Source `json:"errorSources"`
	Stack        string           `json:"stack,omitempty"`
}

type RouteNotFoundResponse struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
}

func JSON(w http.ResponseWriter, status int, message string, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(SuccessResponse{
		Message: message,
		Data:    data,
	})
}

// Error renders a classified failure. includeDetail toggles the diagnostic
// stack field and must be false in production.
func Error(w http.ResponseWriter, e *xerrors.Error, includeDetail bool) {
	sources := e.Sources
	if len(sources) == 0 {
		sources = []xerrors.Source{{Path: "", Message: e.Message}}
	}

	resp := ErrorResponse{
		Success:      false,
		Message:      e.Message,
		ErrorSources: sources,
	}
	if includeDetail {
		resp.Stack = e.Error()
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(xerrors.HTTPStatus(e.Kind))
	_ = json.NewEncoder(w).Encode(resp)
}

// RouteNotFound answers requests for routes that do not exist.
func RouteNotFound(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	_ = json.NewEncoder(w).Encode(RouteNotFoundResponse{
		StatusCode: http.StatusNotFound,
		Message:    "API is not found",
	})
}
