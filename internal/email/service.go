package email

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"launchfund-server/internal/observability"
	"text/template"
)

var (
	ErrSendingEmail  = errors.New("error sending email")
	ErrEmptyTemplate = errors.New("email template is empty")
)

// MailClient sends a rendered email and returns the provider's message id.
type MailClient interface {
	SendEmail(ctx context.Context, from, to, subject, htmlContent string) (string, error)
}

// EmailService handles sending emails
type EmailService struct {
	mailClient    MailClient
	logger        *observability.Logger
	defaultSender string
	webAppURI     string
	templates     map[string]string
}

// TemplateData represents the data that can be used in templates
type TemplateData struct {
	CampaignName  string
	CampaignLink  string
	AmountDisplay string
	MilestoneName string
	PoolID        string
	RejectionNote string
	TaskType      string
	RewardDisplay string
}

// New creates a new EmailService
func New(mailClient MailClient, defaultSender, webAppURI string, logger *observability.Logger) *EmailService {
	return &EmailService{
		mailClient:    mailClient,
		logger:        logger,
		defaultSender: defaultSender,
		webAppURI:     webAppURI,
		templates: map[string]string{
			"withdrawal_processed": `
			<html>
				<body>
					<h1>Funds Released</h1>
					<p>Your withdrawal for <strong>{{.CampaignName}}</strong> has been processed.</p>
					<p>Milestone reached: <strong>{{.MilestoneName}}</strong></p>
					<p>Amount released: <strong>{{.AmountDisplay}}</strong></p>
					<p><a href="{{.CampaignLink}}">View your campaign</a></p>
				</body>
			</html>
			`,
			"campaign_graduated": `
			<html>
				<body>
					<h1>Your Campaign Graduated!</h1>
					<p><strong>{{.CampaignName}}</strong> has reached its graduation criteria and its token now trades on an external liquidity pool.</p>
					<p>Pool: <strong>{{.PoolID}}</strong></p>
					<p><a href="{{.CampaignLink}}">View your campaign</a></p>
				</body>
			</html>
			`,
			"reward_approved": `
			<html>
				<body>
					<h1>Task Reward Approved</h1>
					<p>Your <strong>{{.TaskType}}</strong> submission for {{.CampaignName}} was approved.</p>
					<p>Reward: <strong>{{.RewardDisplay}}</strong></p>
					<p><a href="{{.CampaignLink}}">View the campaign</a></p>
				</body>
			</html>
			`,
		},
	}
}

// renderTemplate renders a template with the provided data
func (s *EmailService) renderTemplate(templateName string, data TemplateData) (string, error) {
	tmplStr, ok := s.templates[templateName]
	if !ok {
		return "", fmt.Errorf("template %s not found", templateName)
	}

	tmpl, err := template.New(templateName).Parse(tmplStr)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

func (s *EmailService) campaignLink(campaignID string) string {
	return fmt.Sprintf("%s/campaigns/%s", s.webAppURI, campaignID)
}

// SendWithdrawalProcessedEmail notifies a creator that milestone funds were
// released.
func (s *EmailService) SendWithdrawalProcessedEmail(ctx context.Context, to, campaignID, campaignName, milestoneName, amountDisplay string) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "email_type", Value: "withdrawal_processed"},
		observability.Field{Key: "recipient", Value: to},
	)

	subject := fmt.Sprintf("Funds released for %s", campaignName)

	data := TemplateData{
		CampaignName:  campaignName,
		CampaignLink:  s.campaignLink(campaignID),
		MilestoneName: milestoneName,
		AmountDisplay: amountDisplay,
	}

	htmlContent, err := s.renderTemplate("withdrawal_processed", data)
	if err != nil {
		s.logger.Error(ctx, "failed to render withdrawal email template", err)
		return fmt.Errorf("%w: %s", ErrEmptyTemplate, err.Error())
	}

	if _, err := s.mailClient.SendEmail(ctx, s.defaultSender, to, subject, htmlContent); err != nil {
		s.logger.Error(ctx, "failed to send withdrawal email", err)
		return fmt.Errorf("%w: %s", ErrSendingEmail, err.Error())
	}
	return nil
}

// SendCampaignGraduatedEmail notifies a creator that their campaign moved to
// an external liquidity pool.
func (s *EmailService) SendCampaignGraduatedEmail(ctx context.Context, to, campaignID, campaignName, poolID string) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "email_type", Value: "campaign_graduated"},
		observability.Field{Key: "recipient", Value: to},
	)

	subject := fmt.Sprintf("%s has graduated!", campaignName)

	data := TemplateData{
		CampaignName: campaignName,
		CampaignLink: s.campaignLink(campaignID),
		PoolID:       poolID,
	}

	htmlContent, err := s.renderTemplate("campaign_graduated", data)
	if err != nil {
		s.logger.Error(ctx, "failed to render graduation email template", err)
		return fmt.Errorf("%w: %s", ErrEmptyTemplate, err.Error())
	}

	if _, err := s.mailClient.SendEmail(ctx, s.defaultSender, to, subject, htmlContent); err != nil {
		s.logger.Error(ctx, "failed to send graduation email", err)
		return fmt.Errorf("%w: %s", ErrSendingEmail, err.Error())
	}
	return nil
}

// SendRewardApprovedEmail notifies a participant that a task submission was
// approved and their reward minted.
func (s *EmailService) SendRewardApprovedEmail(ctx context.Context, to, campaignID, campaignName, taskType, rewardDisplay string) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "email_type", Value: "reward_approved"},
		observability.Field{Key: "recipient", Value: to},
	)

	subject := fmt.Sprintf("Your %s reward was approved", campaignName)

	data := TemplateData{
		CampaignName:  campaignName,
		CampaignLink:  s.campaignLink(campaignID),
		TaskType:      taskType,
		RewardDisplay: rewardDisplay,
	}

	htmlContent, err := s.renderTemplate("reward_approved", data)
	if err != nil {
		s.logger.Error(ctx, "failed to render reward email template", err)
		return fmt.Errorf("%w: %s", ErrEmptyTemplate, err.Error())
	}

	if _, err := s.mailClient.SendEmail(ctx, s.defaultSender, to, subject, htmlContent); err != nil {
		s.logger.Error(ctx, "failed to send reward email", err)
		return fmt.Errorf("%w: %s", ErrSendingEmail, err.Error())
	}
	return nil
}
