package handler

import (
	"launchfund-server/internal/apierrors"
	"launchfund-server/internal/auth"
	"launchfund-server/internal/campaigns/processor"
	"launchfund-server/internal/observability"
	"launchfund-server/internal/store"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor processor.CampaignProcessor
	logger    *observability.Logger
}

func New(processor processor.CampaignProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// MilestoneRequest is one milestone of a campaign creation request.
type MilestoneRequest struct {
	Name           string    `json:"name" binding:"required,max=255"`
	Description    string    `json:"description"`
	RequiredAmount int64     `json:"required_amount" binding:"required,gt=0"`
	UnlocksAt      time.Time `json:"unlocks_at" binding:"required"`
}

// CreateCampaignRequest represents the HTTP request for creating a campaign
type CreateCampaignRequest struct {
	Name               string             `json:"name" binding:"required,max=64"`
	Description        string             `json:"description"`
	TargetAmount       int64              `json:"target_amount" binding:"required,gt=0"`
	FundingRatio       int64              `json:"funding_ratio" binding:"gte=0,lte=100"`
	TotalSupply        int64              `json:"total_supply" binding:"required,gt=0"`
	ConversionStrategy string             `json:"conversion_strategy" binding:"required,oneof=instant hybrid on_withdrawal"`
	EndsAt             time.Time          `json:"ends_at" binding:"required"`
	Milestones         []MilestoneRequest `json:"milestones" binding:"required,min=1,dive"`
}

// BuyTokensRequest represents the HTTP request for a token purchase
type BuyTokensRequest struct {
	Lamports int64 `json:"lamports" binding:"required,gt=0"`
}

// SellTokensRequest represents the HTTP request for a token sale
type SellTokensRequest struct {
	Tokens int64 `json:"tokens" binding:"required,gt=0"`
}

// HandleCreateCampaign creates a new campaign for the authenticated wallet
func (h *Handler) HandleCreateCampaign(c *gin.Context) {
	ctx := c.Request.Context()

	wallet, ok := auth.WalletFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "wallet not authenticated"})
		return
	}

	var req CreateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	params := processor.CreateCampaignParams{
		Creator:            wallet,
		Name:               req.Name,
		Description:        req.Description,
		TargetAmount:       req.TargetAmount,
		FundingRatio:       req.FundingRatio,
		TotalSupply:        req.TotalSupply,
		ConversionStrategy: store.ConversionStrategy(req.ConversionStrategy),
		EndsAt:             req.EndsAt,
	}
	for _, m := range req.Milestones {
		params.Milestones = append(params.Milestones, processor.MilestoneParams{
			Name:           m.Name,
			Description:    m.Description,
			RequiredAmount: m.RequiredAmount,
			UnlocksAt:      m.UnlocksAt,
		})
	}

	campaign, err := h.processor.CreateCampaign(ctx, params)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, campaign)
}

// HandleListCampaigns lists campaigns, newest first
func (h *Handler) HandleListCampaigns(c *gin.Context) {
	ctx := c.Request.Context()

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	campaigns, err := h.processor.ListCampaigns(ctx, limit, offset)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, campaigns)
}

// HandleGetCampaign retrieves a campaign with its milestones
func (h *Handler) HandleGetCampaign(c *gin.Context) {
	ctx := c.Request.Context()

	campaignID, err := uuid.Parse(c.Param("campaign_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid campaign id"})
		return
	}

	campaign, err := h.processor.GetCampaign(ctx, campaignID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, campaign)
}

// HandleGetTokenPrice quotes the current display price and issuance tier
func (h *Handler) HandleGetTokenPrice(c *gin.Context) {
	ctx := c.Request.Context()

	campaignID, err := uuid.Parse(c.Param("campaign_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid campaign id"})
		return
	}

	quote, err := h.processor.GetTokenPrice(ctx, campaignID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, quote)
}

// HandleGetTokenBalance returns a wallet's holdings of a campaign's token
func (h *Handler) HandleGetTokenBalance(c *gin.Context) {
	ctx := c.Request.Context()

	campaignID, err := uuid.Parse(c.Param("campaign_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid campaign id"})
		return
	}
	wallet := c.Param("wallet")
	if wallet == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid wallet"})
		return
	}

	balance, err := h.processor.GetTokenBalance(ctx, campaignID, wallet)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, balance)
}

// HandleBuyTokens executes a bonding-curve purchase for the authenticated
// wallet
func (h *Handler) HandleBuyTokens(c *gin.Context) {
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

	var req BuyTokensRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	result, err := h.processor.BuyTokens(ctx, campaignID, wallet, req.Lamports)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// HandleSellTokens executes a bonding-curve sale for the authenticated wallet
func (h *Handler) HandleSellTokens(c *gin.Context) {
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

	var req SellTokensRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	result, err := h.processor.SellTokens(ctx, campaignID, wallet, req.Tokens)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// HandleWithdrawMilestoneFunds releases the current milestone's funds to the
// campaign creator
func (h *Handler) HandleWithdrawMilestoneFunds(c *gin.Context) {
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

	result, err := h.processor.WithdrawMilestoneFunds(ctx, campaignID, wallet)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// HandleGraduationStatus reports graduation eligibility and progress
func (h *Handler) HandleGraduationStatus(c *gin.Context) {
	ctx := c.Request.Context()

	campaignID, err := uuid.Parse(c.Param("campaign_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid campaign id"})
		return
	}

	status, err := h.processor.EvaluateGraduation(ctx, campaignID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, status)
}

// HandleExecuteGraduation moves an eligible campaign's token to the external
// liquidity venue
func (h *Handler) HandleExecuteGraduation(c *gin.Context) {
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

	result, err := h.processor.ExecuteGraduation(ctx, campaignID, wallet)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
