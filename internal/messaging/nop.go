package messaging

import (
	"context"

	"returns-notifier/internal/notify"
)

// NopGateway discards email. It stands in when the email channel is
// disabled by configuration.
type NopGateway struct{}

func (NopGateway) Send(ctx context.Context, msgs []notify.EmailMessage, resellerID int, event string, destStatus int) error {
	return nil
}

// NopSMSService reports every SMS as unsent. It stands in when the SMS
// channel is disabled by configuration.
type NopSMSService struct{}

func (NopSMSService) Send(ctx context.Context, resellerID, clientID int, event string, destStatus int, data map[string]string) (bool, string) {
	return false, ""
}
