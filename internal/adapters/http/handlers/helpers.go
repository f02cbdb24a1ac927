// Package handlers implements the inbound HTTP handlers for the task API,
// the task page and the health endpoints.
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/go-task-tracker/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-task-tracker/internal/domain"
	"github.com/jsamuelsen11/go-task-tracker/internal/platform/logging"
)

// maxJSONBodyBytes caps request bodies at 1 MiB.
const maxJSONBodyBytes = 1 << 20

// parseID reads a numeric path parameter. The router only matches digits,
// so a failure here means the value overflowed uint64.
func parseID(r *http.Request, param string) (uint64, error) {
	id, err := strconv.ParseUint(chi.URLParam(r, param), 10, 64)
	if err != nil {
		return 0, domain.NewValidationError(param, "must be a valid integer")
	}
	return id, nil
}

// queryUint reads a query parameter leniently. See parseLenientUint.
func queryUint(r *http.Request, name string) uint64 {
	return parseLenientUint(r.URL.Query().Get(name))
}

// parseLenientUint takes the leading decimal digits of raw after optional
// whitespace and a plus sign. No digits, including any negative number,
// yields 0 and values beyond uint64 saturate.
func parseLenientUint(raw string) uint64 {
	s := strings.TrimPrefix(strings.TrimLeft(raw, " \t\n\r\v\f"), "+")
	end := strings.IndexFunc(s, func(c rune) bool { return c < '0' || c > '9' })
	if end < 0 {
		end = len(s)
	}
	if end == 0 {
		return 0
	}
	n, err := strconv.ParseUint(s[:end], 10, 64)
	if err != nil {
		return math.MaxUint64
	}
	return n
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "encoding response failed", slog.Any("error", err))
	}
}

type validatable interface {
	Validate() error
}

// decodeAndValidate decodes the JSON body into dst and validates it. On
// failure it writes the problem response and returns false.
func decodeAndValidate[T validatable](w http.ResponseWriter, r *http.Request, dst T) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		msg := "invalid JSON"
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			msg = fmt.Sprintf("must not exceed %d bytes", tooLarge.Limit)
		}
		dto.WriteErrorResponse(w, r, domain.NewValidationError("body", msg))
		return false
	}
	if err := dst.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}
