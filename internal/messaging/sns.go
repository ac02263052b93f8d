package messaging

import (
	"context"
	"fmt"

	"returns-notifier/internal/common/logger"
	"returns-notifier/internal/notify"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sns/types"
)

// Localization key for the SMS text.
const keyClientSMSBody = "complaintClientSmsBody"

// SNSService is the slice of the SNS client the SMS sender uses, kept as
// an interface for mocking.
type SNSService interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

// SNSNotificationService sends the client SMS. It resolves the client's
// mobile number itself and reports the provider error text on failure.
type SNSNotificationService struct {
	client      SNSService
	contractors notify.ContractorDirectory
	renderer    notify.Renderer
	senderID    string
	log         logger.Logger
}

// NewSNSNotificationService creates an SMS sender over an existing SNS
// client.
func NewSNSNotificationService(client SNSService, contractors notify.ContractorDirectory, renderer notify.Renderer, senderID string, log logger.Logger) *SNSNotificationService {
	return &SNSNotificationService{
		client:      client,
		contractors: contractors,
		renderer:    renderer,
		senderID:    senderID,
		log:         log,
	}
}

// NewSNSNotificationServiceFromRegion builds the SNS client from the
// default AWS credential chain.
func NewSNSNotificationServiceFromRegion(ctx context.Context, region string, contractors notify.ContractorDirectory, renderer notify.Renderer, senderID string, log logger.Logger) (*SNSNotificationService, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}
	return NewSNSNotificationService(sns.NewFromConfig(awsCfg), contractors, renderer, senderID, log), nil
}

// Send delivers the status-change SMS to the client's mobile number. It
// reports whether the message went out and, when it did not, why.
func (s *SNSNotificationService) Send(ctx context.Context, resellerID, clientID int, event string, destStatus int, data map[string]string) (bool, string) {
	client, err := s.contractors.FindContractor(ctx, clientID)
	if err != nil {
		return false, err.Error()
	}
	if client == nil || client.Mobile == "" {
		return false, ""
	}

	body := s.renderer.Render(ctx, keyClientSMSBody, data, resellerID)

	input := &sns.PublishInput{
		PhoneNumber: aws.String(client.Mobile),
		Message:     aws.String(body),
		MessageAttributes: map[string]types.MessageAttributeValue{
			"event": {
				DataType:    aws.String("String"),
				StringValue: aws.String(event),
			},
			"destinationStatus": {
				DataType:    aws.String("Number"),
				StringValue: aws.String(fmt.Sprintf("%d", destStatus)),
			},
		},
	}
	if s.senderID != "" {
		input.MessageAttributes["AWS.SNS.SMS.SenderID"] = types.MessageAttributeValue{
			DataType:    aws.String("String"),
			StringValue: aws.String(s.senderID),
		}
	}

	if _, err := s.client.Publish(ctx, input); err != nil {
		s.log.Error("SMS send failed", map[string]interface{}{
			"client_id":   clientID,
			"reseller_id": resellerID,
			"error":       err,
		})
		return false, err.Error()
	}
	return true, ""
}
