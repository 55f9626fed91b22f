package email

import (
	"context"
	"fmt"
	"launchfund-server/internal/store"

	"github.com/shopspring/decimal"
)

// Notifier adapts the email service to the processors' notification
// interface. Creator wallets carry no contact address yet, so lifecycle
// emails land in the configured notification inbox.
type Notifier struct {
	service *EmailService
	inbox   string
}

// NewNotifier creates a Notifier sending to inbox.
func NewNotifier(service *EmailService, inbox string) *Notifier {
	return &Notifier{service: service, inbox: inbox}
}

func formatSol(lamports int64) string {
	sol := decimal.NewFromInt(lamports).Div(decimal.NewFromInt(1_000_000_000))
	return fmt.Sprintf("%s SOL", sol.StringFixed(4))
}

// WithdrawalProcessed sends the funds-released notification.
func (n *Notifier) WithdrawalProcessed(ctx context.Context, campaign store.Campaign, milestoneName string, amountLamports int64) error {
	return n.service.SendWithdrawalProcessedEmail(ctx, n.inbox,
		campaign.ID.String(), campaign.Name, milestoneName, formatSol(amountLamports))
}

// CampaignGraduated sends the graduation notification.
func (n *Notifier) CampaignGraduated(ctx context.Context, campaign store.Campaign, poolID string) error {
	return n.service.SendCampaignGraduatedEmail(ctx, n.inbox,
		campaign.ID.String(), campaign.Name, poolID)
}

// RewardApproved sends the task-reward notification.
func (n *Notifier) RewardApproved(ctx context.Context, campaign store.Campaign, taskType string, rewardAmount int64) error {
	reward := decimal.NewFromInt(rewardAmount).Div(decimal.NewFromInt(1_000_000))
	return n.service.SendRewardApprovedEmail(ctx, n.inbox,
		campaign.ID.String(), campaign.Name, taskType, fmt.Sprintf("%s tokens", reward.StringFixed(2)))
}
