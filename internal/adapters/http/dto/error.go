package dto

import (
	"cmp"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"slices"

	"github.com/jsamuelsen11/go-task-tracker/internal/domain"
)

// Failures raised by middleware rather than by services.
var (
	ErrTooManyRequests = errors.New("too many requests")
	ErrRequestTimeout  = errors.New("request timed out")
)

// ErrorResponse is an RFC 9457 problem details body.
type ErrorResponse struct {
	Type     string        `json:"type"`
	Title    string        `json:"title"`
	Status   int           `json:"status"`
	Detail   string        `json:"detail,omitempty"`
	Instance string        `json:"instance,omitempty"`
	Errors   []ErrorDetail `json:"errors,omitempty"`
}

// ErrorDetail is one failed attribute of a validation problem. Rule names the
// validator tag that failed, such as "min=5".
type ErrorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
	Rule     string `json:"rule,omitempty"`
}

// errorStatuses is checked in order, first match wins.
var errorStatuses = []struct {
	target error
	status int
}{
	{ErrTooManyRequests, http.StatusTooManyRequests},
	{ErrRequestTimeout, http.StatusGatewayTimeout},
	{domain.ErrValidation, http.StatusBadRequest},
	{domain.ErrNotFound, http.StatusNotFound},
	{domain.ErrInvalidOperation, http.StatusConflict},
	{domain.ErrConflict, http.StatusConflict},
	{domain.ErrInvalidModel, http.StatusInternalServerError},
	{domain.ErrUnavailable, http.StatusBadGateway},
}

// StatusFor returns the HTTP status err maps to. Unknown errors are 500.
func StatusFor(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.target) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// NewErrorResponse builds the problem body for err on request r.
func NewErrorResponse(r *http.Request, err error) ErrorResponse {
	status := StatusFor(err)
	resp := ErrorResponse{
		Type:     "about:blank",
		Title:    http.StatusText(status),
		Status:   status,
		Detail:   err.Error(),
		Instance: r.RequestURI,
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		resp.Errors = make([]ErrorDetail, 0, len(verr.Fields))
		for field, msg := range verr.Fields {
			resp.Errors = append(resp.Errors, ErrorDetail{
				Location: "body." + field,
				Message:  msg,
				Rule:     verr.Rules[field],
			})
		}
		slices.SortFunc(resp.Errors, func(a, b ErrorDetail) int {
			return cmp.Compare(a.Location, b.Location)
		})
	}
	return resp
}

// WriteErrorResponse writes err as an application/problem+json response.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	resp := NewErrorResponse(r, err)

	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(resp.Status)
	if encErr := json.NewEncoder(w).Encode(resp); encErr != nil {
		slog.ErrorContext(r.Context(), "encoding problem response failed", slog.Any("error", encErr))
	}
}
