package notify

import (
	"context"

	"returns-notifier/internal/common/logger"
	"returns-notifier/internal/common/metrics"
)

// Localization keys for the employee email.
const (
	keyEmployeeEmailSubject = "complaintEmployeeEmailSubject"
	keyEmployeeEmailBody    = "complaintEmployeeEmailBody"
)

// EmployeeNotifier emails every employee permitted to handle goods returns
// for the reseller on whose behalf the event was raised.
type EmployeeNotifier struct {
	recipients RecipientDirectory
	renderer   Renderer
	gateway    MessagingGateway
	log        logger.Logger
}

// NewEmployeeNotifier creates an employee notifier.
func NewEmployeeNotifier(recipients RecipientDirectory, renderer Renderer, gateway MessagingGateway, log logger.Logger) *EmployeeNotifier {
	return &EmployeeNotifier{
		recipients: recipients,
		renderer:   renderer,
		gateway:    gateway,
		log:        log,
	}
}

// Notify sends the employee notification for any event type. It reports
// true when at least one send was attempted; a gateway failure after the
// attempt does not reverse the report.
func (n *EmployeeNotifier) Notify(ctx context.Context, req *Request, tc *TemplateContext, from string) (bool, error) {
	if tc == nil {
		return false, nil
	}

	emails, err := n.recipients.EmployeesPermittedFor(ctx, req.ResellerID, PermitGoodsReturn)
	if err != nil {
		return false, err
	}
	if from == "" || len(emails) == 0 {
		n.log.Debug("skipping employee notification", map[string]interface{}{
			"reseller_id": req.ResellerID,
			"recipients":  len(emails),
			"has_sender":  from != "",
		})
		return false, nil
	}

	data := tc.Data()
	subject := n.renderer.Render(ctx, keyEmployeeEmailSubject, data, req.ResellerID)
	body := n.renderer.Render(ctx, keyEmployeeEmailBody, data, req.ResellerID)

	msgs := make([]EmailMessage, 0, len(emails))
	for _, to := range emails {
		msgs = append(msgs, EmailMessage{
			From:    from,
			To:      to,
			Subject: subject,
			Body:    body,
		})
	}

	if err := n.gateway.Send(ctx, msgs, req.ResellerID, EventChangeReturnStatus, 0); err != nil {
		metrics.GatewayFailures.WithLabelValues("email").Inc()
		n.log.Warn("employee email delivery reported an error", map[string]interface{}{
			"reseller_id": req.ResellerID,
			"recipients":  len(msgs),
			"error":       err.Error(),
		})
	}
	metrics.EmailsSent.WithLabelValues("employee").Add(float64(len(msgs)))

	return true, nil
}
