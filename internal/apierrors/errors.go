package apierrors

import (
	"fmt"
	"net/http"
)

// Machine-readable error codes returned alongside messages.
const (
	CodeNotFound              = "NOT_FOUND"
	CodeCampaignNotFound      = "CAMPAIGN_NOT_FOUND"
	CodeCampaignNotActive     = "CAMPAIGN_NOT_ACTIVE"
	CodeCampaignEnded         = "CAMPAIGN_ENDED"
	CodeAlreadyGraduated      = "ALREADY_GRADUATED"
	CodeNotEligible           = "NOT_ELIGIBLE"
	CodeInvalidAmount         = "INVALID_AMOUNT"
	CodeInvalidInput          = "INVALID_INPUT"
	CodeInsufficientBalance   = "INSUFFICIENT_BALANCE"
	CodeInsufficientLiquidity = "INSUFFICIENT_LIQUIDITY"
	CodePriceFeedError        = "PRICE_FEED_ERROR"
	CodeSwapFailed            = "SWAP_FAILED"
	CodeMilestoneLocked       = "MILESTONE_LOCKED"
	CodeNothingToWithdraw     = "NOTHING_TO_WITHDRAW"
	CodeUnauthorized          = "UNAUTHORIZED"
	CodeForbidden             = "FORBIDDEN"
	CodeConflict              = "CONFLICT"
	CodeTaskNotFound          = "TASK_NOT_FOUND"
	CodeAlreadySubmitted      = "ALREADY_SUBMITTED"
	CodeAlreadyFinalized      = "ALREADY_FINALIZED"
	CodeBudgetExceeded        = "BUDGET_EXCEEDED"
	CodeStaleState            = "STALE_STATE"
	CodeMintServiceError      = "MINT_SERVICE_ERROR"
	CodeVenueServiceError     = "VENUE_SERVICE_ERROR"
	CodeInternalError         = "INTERNAL_ERROR"
)

// APIError carries the HTTP status, machine-readable code and safe message
// for one error response.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	// Internal is the wrapped cause, logged but never sent to clients.
	Internal error
}

func (e *APIError) Error() string {
	if e.Internal != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Internal)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Internal
}

// NotFound builds a 404 error
func NotFound(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusNotFound, Code: code, Message: message}
}

// BadRequest builds a 400 error
func BadRequest(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusBadRequest, Code: code, Message: message}
}

// Unauthorized builds a 401 error
func Unauthorized(message string) *APIError {
	return &APIError{StatusCode: http.StatusUnauthorized, Code: CodeUnauthorized, Message: message}
}

// Forbidden builds a 403 error
func Forbidden(message string) *APIError {
	return &APIError{StatusCode: http.StatusForbidden, Code: CodeForbidden, Message: message}
}

// Conflict builds a 409 error
func Conflict(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusConflict, Code: code, Message: message}
}

// UnprocessableEntity builds a 422 error
func UnprocessableEntity(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusUnprocessableEntity, Code: code, Message: message}
}

// ServiceUnavailable builds a 503 error, retaining the internal cause for logs
func ServiceUnavailable(code, message string, internalErr error) *APIError {
	return &APIError{StatusCode: http.StatusServiceUnavailable, Code: code, Message: message, Internal: internalErr}
}

// InternalError builds a sanitized 500 error - never exposes internal details
func InternalError(internalErr error) *APIError {
	return &APIError{
		StatusCode: http.StatusInternalServerError,
		Code:       CodeInternalError,
		Message:    "An internal error occurred. Please try again later.",
		Internal:   internalErr,
	}
}
