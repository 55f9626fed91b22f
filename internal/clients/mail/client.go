package mail

import (
	"context"
	"errors"
	"fmt"
	"launchfund-server/internal/observability"

	"github.com/resendlabs/resend-go"
)

// ErrNoRecipient is returned when a lifecycle email has nowhere to go.
// Creator wallets carry no contact address, so the notification inbox must
// be configured for notifications to be deliverable.
var ErrNoRecipient = errors.New("no recipient address configured")

type ResendClient struct {
	client *resend.Client
	logger *observability.Logger
}

func NewResendClient(apiKey string, logger *observability.Logger) (*ResendClient, error) {
	client := resend.NewClient(apiKey)
	if client == nil {
		return nil, fmt.Errorf("failed to create Resend client")
	}

	return &ResendClient{
		client: client,
		logger: logger,
	}, nil
}

// SendEmail delivers one rendered lifecycle notification and returns the
// provider's message id.
func (c *ResendClient) SendEmail(ctx context.Context, from, to, subject, htmlContent string) (string, error) {
	if to == "" {
		return "", ErrNoRecipient
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "email_to", Value: to},
		observability.Field{Key: "email_subject", Value: subject},
	)

	params := &resend.SendEmailRequest{
		From:    from,
		To:      []string{to},
		Subject: subject,
		Html:    htmlContent,
	}

	res, err := c.client.Emails.Send(params)
	if err != nil {
		c.logger.Error(ctx, "failed to send notification email", err)
		return "", fmt.Errorf("failed to send notification email: %w", err)
	}

	c.logger.Info(observability.WithFields(ctx,
		observability.Field{Key: "email_message_id", Value: res.Id},
	), "notification email sent")
	return res.Id, nil
}
