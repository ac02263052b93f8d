package notify

import (
	"context"

	"returns-notifier/internal/common/logger"
	"returns-notifier/internal/common/metrics"
	"returns-notifier/internal/models"
)

// Localization keys for the client email.
const (
	keyClientEmailSubject = "complaintClientEmailSubject"
	keyClientEmailBody    = "complaintClientEmailBody"
)

// ClientNotifier contacts the complaint's client by email and SMS. Only a
// status change with a destination status triggers it.
type ClientNotifier struct {
	renderer Renderer
	gateway  MessagingGateway
	sms      SMSService
	log      logger.Logger
}

// NewClientNotifier creates a client notifier.
func NewClientNotifier(renderer Renderer, gateway MessagingGateway, sms SMSService, log logger.Logger) *ClientNotifier {
	return &ClientNotifier{
		renderer: renderer,
		gateway:  gateway,
		sms:      sms,
		log:      log,
	}
}

// ClientOutcome reports the two client channels independently.
type ClientOutcome struct {
	ByEmail bool
	BySMS   SMSResult
}

// Notify sends the client email and SMS for a status change. The channels
// are independent: the SMS still goes out when the client has no email
// address, and a failed SMS never reverses a sent email.
func (n *ClientNotifier) Notify(ctx context.Context, req *Request, tc *TemplateContext, client *models.Contractor, from string) ClientOutcome {
	var out ClientOutcome

	if client == nil || req.Type != TypeChange || req.Differences == nil || req.Differences.To == 0 {
		return out
	}

	data := tc.Data()

	if from != "" && client.Email != "" {
		msg := EmailMessage{
			From:    from,
			To:      client.Email,
			Subject: n.renderer.Render(ctx, keyClientEmailSubject, data, req.ResellerID),
			Body:    n.renderer.Render(ctx, keyClientEmailBody, data, req.ResellerID),
		}
		err := n.gateway.Send(ctx, []EmailMessage{msg}, req.ResellerID, EventChangeReturnStatus, req.Differences.To)
		if err != nil {
			metrics.GatewayFailures.WithLabelValues("email").Inc()
			n.log.Warn("client email delivery reported an error", map[string]interface{}{
				"reseller_id": req.ResellerID,
				"client_id":   client.ID,
				"error":       err.Error(),
			})
		}
		metrics.EmailsSent.WithLabelValues("client").Inc()
		out.ByEmail = true
	}

	if client.Mobile != "" {
		sent, errText := n.sms.Send(ctx, req.ResellerID, client.ID, EventChangeReturnStatus, req.Differences.To, data)
		out.BySMS.IsSent = sent
		if sent {
			metrics.SMSTotal.WithLabelValues("sent").Inc()
		} else {
			metrics.SMSTotal.WithLabelValues("failed").Inc()
		}
		if errText != "" {
			out.BySMS.Message = errText
		}
	}

	return out
}
