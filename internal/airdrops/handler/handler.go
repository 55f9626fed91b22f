package handler

import (
	"launchfund-server/internal/airdrops/processor"
	"launchfund-server/internal/apierrors"
	"launchfund-server/internal/auth"
	"launchfund-server/internal/observability"
	"launchfund-server/internal/store"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor processor.AirdropProcessor
	logger    *observability.Logger
}

func New(processor processor.AirdropProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// TaskRequest is one task definition of a pool creation request.
type TaskRequest struct {
	TaskType         string `json:"task_type" binding:"required,max=64"`
	RewardAmount     int64  `json:"reward_amount" binding:"required,gt=0"`
	VerificationHint string `json:"verification_hint"`
	MaxCompletions   int    `json:"max_completions" binding:"required,gt=0"`
}

// CreatePoolRequest represents the HTTP request for creating an airdrop pool
type CreatePoolRequest struct {
	RewardMode  string        `json:"reward_mode" binding:"required,oneof=per_task aggregate"`
	TotalBudget int64         `json:"total_budget" binding:"required,gt=0"`
	ExpiresAt   *time.Time    `json:"expires_at,omitempty"`
	Tasks       []TaskRequest `json:"tasks" binding:"required,min=1,dive"`
}

// SubmitCompletionRequest represents the HTTP request for claiming a task
type SubmitCompletionRequest struct {
	TaskIndex *int   `json:"task_index" binding:"required,gte=0"`
	Proof     string `json:"proof" binding:"required,max=2048"`
}

// ReviewCompletionRequest identifies the submission under review.
type ReviewCompletionRequest struct {
	Wallet    string `json:"wallet" binding:"required"`
	TaskIndex *int   `json:"task_index" binding:"required,gte=0"`
	Reason    string `json:"reason" binding:"max=1024"`
}

// HandleCreatePool attaches an airdrop pool to the caller's campaign
func (h *Handler) HandleCreatePool(c *gin.Context) {
	ctx := c.Request.Context()

	wallet, ok := auth.WalletFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "wallet not authenticated"})
		return
	}

	campaignID, err := uuid.Parse(c.Param("campaign_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid campaign id"})
		return
	}

	var req CreatePoolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	params := processor.CreatePoolParams{
		CampaignID:  campaignID,
		RewardMode:  store.RewardMode(req.RewardMode),
		TotalBudget: req.TotalBudget,
		ExpiresAt:   req.ExpiresAt,
	}
	for _, task := range req.Tasks {
		params.Tasks = append(params.Tasks, processor.TaskParams{
			TaskType:         task.TaskType,
			RewardAmount:     task.RewardAmount,
			VerificationHint: task.VerificationHint,
			MaxCompletions:   task.MaxCompletions,
		})
	}

	pool, err := h.processor.CreateAirdropPool(ctx, wallet, params)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, pool)
}

// HandleGetPool retrieves a campaign's airdrop pool with its tasks
func (h *Handler) HandleGetPool(c *gin.Context) {
	ctx := c.Request.Context()

	campaignID, err := uuid.Parse(c.Param("campaign_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid campaign id"})
		return
	}

	pool, err := h.processor.GetPool(ctx, campaignID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, pool)
}

// HandleSubmitCompletion records the authenticated wallet's claim against a
// task
func (h *Handler) HandleSubmitCompletion(c *gin.Context) {
	ctx := c.Request.Context()

	wallet, ok := auth.WalletFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "wallet not authenticated"})
		return
	}

	campaignID, err := uuid.Parse(c.Param("campaign_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid campaign id"})
		return
	}

	var req SubmitCompletionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	completion, err := h.processor.SubmitTaskCompletion(ctx, campaignID, wallet, *req.TaskIndex, req.Proof)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, completion)
}

// HandleApproveCompletion approves a pending claim and mints its reward
func (h *Handler) HandleApproveCompletion(c *gin.Context) {
	ctx := c.Request.Context()

	wallet, ok := auth.WalletFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "wallet not authenticated"})
		return
	}

	campaignID, err := uuid.Parse(c.Param("campaign_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid campaign id"})
		return
	}

	var req ReviewCompletionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	completion, err := h.processor.ApproveTaskCompletion(ctx, campaignID, wallet, req.Wallet, *req.TaskIndex)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, completion)
}

// HandleRejectCompletion rejects a pending claim with a reason
func (h *Handler) HandleRejectCompletion(c *gin.Context) {
	ctx := c.Request.Context()

	wallet, ok := auth.WalletFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "wallet not authenticated"})
		return
	}

	campaignID, err := uuid.Parse(c.Param("campaign_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid campaign id"})
		return
	}

	var req ReviewCompletionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	completion, err := h.processor.RejectTaskCompletion(ctx, campaignID, wallet, req.Wallet, *req.TaskIndex, req.Reason)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, completion)
}

// HandleListCompletions returns the creator's review queue
func (h *Handler) HandleListCompletions(c *gin.Context) {
	ctx := c.Request.Context()

	wallet, ok := auth.WalletFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "wallet not authenticated"})
		return
	}

	campaignID, err := uuid.Parse(c.Param("campaign_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid campaign id"})
		return
	}

	completions, err := h.processor.ListTaskCompletions(ctx, campaignID, wallet)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	if completions == nil {
		completions = []store.TaskCompletion{}
	}
	c.JSON(http.StatusOK, completions)
}
