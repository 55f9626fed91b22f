package apierrors

import (
	"errors"

	airdropProcessor "launchfund-server/internal/airdrops/processor"
	campaignProcessor "launchfund-server/internal/campaigns/processor"
	"launchfund-server/internal/conversion"
	"launchfund-server/internal/store"
)

// MapError converts domain/processor errors to APIErrors.
// This function centralizes all error mapping logic to ensure consistent
// error responses across the entire API.
//
// If the error is already an APIError, it returns it as-is.
// If the error is a known domain error, it maps it to an appropriate APIError.
// If the error is unknown, it returns a sanitized InternalError (500).
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}

	// Check if already an APIError
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	switch {
	// Campaign processor errors
	case errors.Is(err, campaignProcessor.ErrCampaignNotFound):
		return NotFound(CodeCampaignNotFound, "Campaign not found")

	case errors.Is(err, campaignProcessor.ErrCampaignNotActive):
		return Conflict(CodeCampaignNotActive, "This campaign is not active")

	case errors.Is(err, campaignProcessor.ErrCampaignEnded):
		return Conflict(CodeCampaignEnded, "This campaign has ended")

	case errors.Is(err, campaignProcessor.ErrAlreadyGraduated):
		return Conflict(CodeAlreadyGraduated, "This campaign has already graduated to an external pool")

	case errors.Is(err, campaignProcessor.ErrNotEligible):
		return UnprocessableEntity(CodeNotEligible, "Campaign does not meet the graduation criteria")

	case errors.Is(err, campaignProcessor.ErrInvalidAmount):
		return BadRequest(CodeInvalidAmount, "Amount must be positive and large enough to receive tokens")

	case errors.Is(err, campaignProcessor.ErrInvalidCampaignParams):
		return BadRequest(CodeInvalidInput, "Invalid campaign parameters")

	case errors.Is(err, campaignProcessor.ErrNameTaken):
		return Conflict(CodeConflict, "An active campaign with this name already exists for this creator")

	case errors.Is(err, campaignProcessor.ErrUnauthorized):
		return Forbidden("Only the campaign creator may perform this action")

	case errors.Is(err, campaignProcessor.ErrInsufficientBalance):
		return UnprocessableEntity(CodeInsufficientBalance, "Token balance is insufficient for this sale")

	case errors.Is(err, campaignProcessor.ErrInsufficientLiquidity):
		return UnprocessableEntity(CodeInsufficientLiquidity, "Campaign liquidity cannot cover this sale")

	case errors.Is(err, campaignProcessor.ErrPriceFeed):
		return ServiceUnavailable(CodePriceFeedError, "Price feed is temporarily unavailable. Please try again later.", err)

	case errors.Is(err, campaignProcessor.ErrSwapFailed):
		return ServiceUnavailable(CodeSwapFailed, "Currency conversion is temporarily unavailable. Funds were not moved.", err)

	case errors.Is(err, campaignProcessor.ErrMilestoneLocked):
		return UnprocessableEntity(CodeMilestoneLocked, "The next milestone is still time-locked")

	case errors.Is(err, campaignProcessor.ErrNothingToWithdraw):
		return UnprocessableEntity(CodeNothingToWithdraw, "No funds are currently available to withdraw")

	case errors.Is(err, campaignProcessor.ErrMintService):
		return ServiceUnavailable(CodeMintServiceError, "Token service is temporarily unavailable. Please try again later.", err)

	case errors.Is(err, campaignProcessor.ErrVenueService):
		return ServiceUnavailable(CodeVenueServiceError, "Liquidity venue is temporarily unavailable. Please try again later.", err)

	// Airdrop processor errors
	case errors.Is(err, airdropProcessor.ErrPoolNotFound):
		return NotFound(CodeNotFound, "Airdrop pool not found")

	case errors.Is(err, airdropProcessor.ErrPoolExists):
		return Conflict(CodeConflict, "This campaign already has an airdrop pool")

	case errors.Is(err, airdropProcessor.ErrTaskNotFound):
		return NotFound(CodeTaskNotFound, "Task not found or not active")

	case errors.Is(err, airdropProcessor.ErrAlreadySubmitted):
		return Conflict(CodeAlreadySubmitted, "A submission for this task already exists")

	case errors.Is(err, airdropProcessor.ErrAlreadyFinalized):
		return Conflict(CodeAlreadyFinalized, "This submission has already been finalized")

	case errors.Is(err, airdropProcessor.ErrBudgetExceeded):
		return UnprocessableEntity(CodeBudgetExceeded, "Approving this reward would exceed the pool budget or task limit")

	case errors.Is(err, airdropProcessor.ErrCompletionNotFound):
		return NotFound(CodeNotFound, "Submission not found")

	case errors.Is(err, airdropProcessor.ErrUnauthorized):
		return Forbidden("Only the campaign creator may review submissions")

	case errors.Is(err, airdropProcessor.ErrInvalidPoolParams):
		return BadRequest(CodeInvalidInput, "Invalid airdrop pool parameters")

	case errors.Is(err, airdropProcessor.ErrMintFailed):
		return ServiceUnavailable(CodeMintServiceError, "Token service is temporarily unavailable. Please try again later.", err)

	// Conversion errors that escape the processors keep their semantics
	case errors.Is(err, conversion.ErrConversionFailed):
		return ServiceUnavailable(CodeSwapFailed, "Currency conversion is temporarily unavailable. Funds were not moved.", err)

	// Store errors
	case errors.Is(err, store.ErrNotFound):
		return NotFound(CodeNotFound, "Resource not found")

	case errors.Is(err, store.ErrAlreadyExists):
		return Conflict(CodeConflict, "Resource already exists")

	case errors.Is(err, store.ErrStaleState):
		return Conflict(CodeStaleState, "The resource changed while processing. Please retry.")

	default:
		return InternalError(err)
	}
}
