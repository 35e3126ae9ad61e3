package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/osse101/CraftMarket_Go/internal/domain"
)

// Machine-readable error codes returned in the "code" field
const (
	CodeInvalidParameter = "invalid_parameter"
	CodeMissingParameter = "missing_parameter"
	CodeInvalidBody      = "invalid_body"
	CodeBodyTooLarge     = "payload_too_large"
	CodeNotFound         = "not_found"
	CodeConflict         = "conflict"
	CodeTimeout          = "timeout"
	CodeInternal         = "internal_error"
)

// Generic HTTP error messages for client responses.
// These messages do not expose internal error details.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgBodyTooLarge          = "Request body too large"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidPathParam      = "Invalid %s path parameter"

	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"
	ErrMsgTimeoutError       = "Request took too long. Please narrow the query and try again."
	ErrMsgItemNotFoundError  = "Item not found"
	ErrMsgRecipeNotFoundErr  = "Recipe not found"
	ErrMsgJobNotFoundError   = "Job not found"
	ErrMsgIdentityConflict   = "Catalog identity conflict"

	ErrMsgListProfitabilityFailed = "Failed to compute recipe profitability"
	ErrMsgBankOpportunitiesFailed = "Failed to match bank against recipes"
	ErrMsgBankSyncFailed          = "Failed to sync bank"
	ErrMsgListJobsFailed          = "Failed to retrieve jobs"
	ErrMsgLevelingPlanFailed      = "Failed to build leveling plan"
	ErrMsgRecordObservationsFail  = "Failed to record observations"
	ErrMsgSyncItemsFailed         = "Failed to sync items"
	ErrMsgSyncRecipesFailed       = "Failed to sync recipes"
	ErrMsgLatestPriceFailed       = "Failed to look up price"
)

// mapServiceErrorToUserMessage maps domain errors to an HTTP status, an
// error code and a message safe to show to callers
func mapServiceErrorToUserMessage(err error) (int, string, string) {
	if err == nil {
		return http.StatusInternalServerError, CodeInternal, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		// Invalid input errors only carry details about the caller's own parameters
		return http.StatusBadRequest, CodeInvalidParameter, err.Error()
	case errors.Is(err, domain.ErrJobNotFound):
		return http.StatusNotFound, CodeNotFound, ErrMsgJobNotFoundError
	case errors.Is(err, domain.ErrRecipeNotFound):
		return http.StatusNotFound, CodeNotFound, ErrMsgRecipeNotFoundErr
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound, CodeNotFound, ErrMsgItemNotFoundError
	case errors.Is(err, domain.ErrIdentityConflict):
		return http.StatusConflict, CodeConflict, ErrMsgIdentityConflict
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, CodeTimeout, ErrMsgTimeoutError
	}

	return http.StatusInternalServerError, CodeInternal, ErrMsgGenericServerError
}
