package api

import (
	airdropHandler "launchfund-server/internal/airdrops/handler"
	"launchfund-server/internal/auth"
	campaignHandler "launchfund-server/internal/campaigns/handler"
	"launchfund-server/internal/pricefeed"
	"net/http"

	"github.com/gin-gonic/gin"
)

type API struct {
	router          *gin.RouterGroup
	authenticator   *auth.Authenticator
	campaignHandler campaignHandler.Handler
	airdropHandler  airdropHandler.Handler
	feedHandler     pricefeed.Handler
}

func New(
	router *gin.RouterGroup,
	authenticator *auth.Authenticator,
	campaignHandler campaignHandler.Handler,
	airdropHandler airdropHandler.Handler,
	feedHandler pricefeed.Handler,
) API {
	return API{
		router:          router,
		authenticator:   authenticator,
		campaignHandler: campaignHandler,
		airdropHandler:  airdropHandler,
		feedHandler:     feedHandler,
	}
}

func (a *API) RegisterRoutes() {
	a.Health()
	apiGroup := a.router.Group("/api")
	{
		apiGroup.GET("/campaigns", a.campaignHandler.HandleListCampaigns)
		apiGroup.GET("/campaigns/:campaign_id", a.campaignHandler.HandleGetCampaign)
		apiGroup.GET("/campaigns/:campaign_id/price", a.campaignHandler.HandleGetTokenPrice)
		apiGroup.GET("/campaigns/:campaign_id/balances/:wallet", a.campaignHandler.HandleGetTokenBalance)
		apiGroup.GET("/campaigns/:campaign_id/graduation", a.campaignHandler.HandleGraduationStatus)
		apiGroup.GET("/campaigns/:campaign_id/airdrop", a.airdropHandler.HandleGetPool)
		apiGroup.GET("/campaigns/:campaign_id/feed", a.feedHandler.HandleFeed)
	}
	protectedGroup := apiGroup.Group("/protected", a.authenticator.HandleJWTMiddleware)
	{
		protectedGroup.POST("/campaigns", a.campaignHandler.HandleCreateCampaign)
		protectedGroup.POST("/campaigns/:campaign_id/buy", a.campaignHandler.HandleBuyTokens)
		protectedGroup.POST("/campaigns/:campaign_id/sell", a.campaignHandler.HandleSellTokens)
		protectedGroup.POST("/campaigns/:campaign_id/withdraw", a.campaignHandler.HandleWithdrawMilestoneFunds)
		protectedGroup.POST("/campaigns/:campaign_id/graduate", a.campaignHandler.HandleExecuteGraduation)
		protectedGroup.POST("/campaigns/:campaign_id/airdrop", a.airdropHandler.HandleCreatePool)
		protectedGroup.POST("/campaigns/:campaign_id/airdrop/completions", a.airdropHandler.HandleSubmitCompletion)
		protectedGroup.GET("/campaigns/:campaign_id/airdrop/completions", a.airdropHandler.HandleListCompletions)
		protectedGroup.POST("/campaigns/:campaign_id/airdrop/completions/approve", a.airdropHandler.HandleApproveCompletion)
		protectedGroup.POST("/campaigns/:campaign_id/airdrop/completions/reject", a.airdropHandler.HandleRejectCompletion)
	}
}

func (a *API) Health() {
	a.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
}
