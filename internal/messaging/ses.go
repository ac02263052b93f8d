// Package messaging delivers notification messages through AWS: email via
// SES, SMS via SNS.
package messaging

import (
	"context"
	"fmt"

	"returns-notifier/internal/common/logger"
	"returns-notifier/internal/notify"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

// SESService is the slice of the SES client the gateway uses, kept as an
// interface for mocking.
type SESService interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

// SESGateway sends notification emails through SES, tagging each message
// with its reseller, event and destination status for downstream routing.
type SESGateway struct {
	client SESService
	log    logger.Logger
}

// NewSESGateway creates a gateway over an existing SES client.
func NewSESGateway(client SESService, log logger.Logger) *SESGateway {
	return &SESGateway{client: client, log: log}
}

// NewSESGatewayFromRegion builds the SES client from the default AWS
// credential chain.
func NewSESGatewayFromRegion(ctx context.Context, region string, log logger.Logger) (*SESGateway, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}
	return NewSESGateway(ses.NewFromConfig(awsCfg), log), nil
}

// Send delivers each message in turn. Every message is attempted even when
// an earlier one fails; the last failure is returned.
func (g *SESGateway) Send(ctx context.Context, msgs []notify.EmailMessage, resellerID int, event string, destStatus int) error {
	var lastErr error
	for _, msg := range msgs {
		if err := g.sendOne(ctx, msg, resellerID, event, destStatus); err != nil {
			g.log.Error("email send failed", map[string]interface{}{
				"to":          msg.To,
				"reseller_id": resellerID,
				"error":       err,
			})
			lastErr = err
		}
	}
	return lastErr
}

func (g *SESGateway) sendOne(ctx context.Context, msg notify.EmailMessage, resellerID int, event string, destStatus int) error {
	tags := []types.MessageTag{
		{Name: aws.String("resellerId"), Value: aws.String(fmt.Sprintf("%d", resellerID))},
		{Name: aws.String("event"), Value: aws.String(event)},
	}
	if destStatus != 0 {
		tags = append(tags, types.MessageTag{
			Name:  aws.String("destinationStatus"),
			Value: aws.String(fmt.Sprintf("%d", destStatus)),
		})
	}

	_, err := g.client.SendEmail(ctx, &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{msg.To},
		},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(msg.Subject)},
			Body: &types.Body{
				Text: &types.Content{Data: aws.String(msg.Body)},
				Html: &types.Content{Data: aws.String(msg.Body)},
			},
		},
		Source: aws.String(msg.From),
		Tags:   tags,
	})
	return err
}
