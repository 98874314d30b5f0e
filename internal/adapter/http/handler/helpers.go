package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/iho/payoffsim/internal/adapter/http/dto"
	"github.com/iho/payoffsim/internal/domain"
)

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(dto.ErrorResponse{
		Error:   message,
		Message: details,
	})
}

// mapDomainError maps domain errors to HTTP status codes.
func mapDomainError(err error) int {
	switch {
	case errors.Is(err, domain.ErrNoDebts),
		errors.Is(err, domain.ErrTooManyDebts),
		errors.Is(err, domain.ErrInvalidDebtName),
		errors.Is(err, domain.ErrDuplicateDebtName),
		errors.Is(err, domain.ErrNegativeBalance),
		errors.Is(err, domain.ErrNegativeRate),
		errors.Is(err, domain.ErrNegativeMinPayment),
		errors.Is(err, domain.ErrNegativeExtra),
		errors.Is(err, domain.ErrInvalidMaxMonths),
		errors.Is(err, domain.ErrInvalidStartMonth),
		errors.Is(err, domain.ErrUnknownStrategy):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
