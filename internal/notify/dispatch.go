package notify

import (
	"context"
	"time"

	"returns-notifier/internal/common/logger"
	"returns-notifier/internal/common/metrics"
	"returns-notifier/internal/models"

	"github.com/google/uuid"
)

// Dispatcher runs one return-status notification end to end: sanitize the
// payload, resolve the template context, then fan out to the employee and
// client channels.
type Dispatcher struct {
	builder  *ContextBuilder
	employee *EmployeeNotifier
	client   *ClientNotifier
	sender   SenderResolver
	log      logger.Logger
}

// NewDispatcher creates a dispatcher.
func NewDispatcher(builder *ContextBuilder, employee *EmployeeNotifier, client *ClientNotifier, sender SenderResolver, log logger.Logger) *Dispatcher {
	return &Dispatcher{
		builder:  builder,
		employee: employee,
		client:   client,
		sender:   sender,
		log:      log,
	}
}

// Dispatch processes a raw notification payload and reports the outcome of
// every channel. A request without a reseller id is not an error: both
// notifiers run against an empty context and report nothing sent, with the
// SMS message explaining why.
func (d *Dispatcher) Dispatch(ctx context.Context, data map[string]interface{}) (*DispatchResult, error) {
	start := time.Now()
	dispatchID := uuid.New().String()
	log := d.log.WithFields(map[string]interface{}{"dispatch_id": dispatchID})

	result, err := d.dispatch(ctx, data, log)
	metrics.DispatchDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.DispatchTotal.WithLabelValues("error").Inc()
		log.Warn("dispatch failed", map[string]interface{}{"error": err.Error()})
		return nil, err
	}

	metrics.DispatchTotal.WithLabelValues("ok").Inc()
	log.Info("dispatch complete", map[string]interface{}{
		"employee_by_email": result.EmployeeByEmail,
		"client_by_email":   result.ClientByEmail,
		"client_by_sms":     result.ClientBySMS.IsSent,
		"duration_ms":       time.Since(start).Milliseconds(),
	})
	return result, nil
}

func (d *Dispatcher) dispatch(ctx context.Context, data map[string]interface{}, log logger.Logger) (*DispatchResult, error) {
	result := NewDispatchResult()
	sanitized := SanitizeRequest(data)

	var (
		req    *Request
		tc     *TemplateContext
		client *models.Contractor
	)
	// An absent or zero reseller id short-circuits everything, including
	// the notification-type validation below.
	if intValue(sanitized["resellerId"]) == 0 {
		log.Debug("request carries no reseller id, nothing to send", nil)
		result.ClientBySMS.Message = "Empty resellerId"
		req = &Request{ResellerIDRaw: rawString(sanitized["resellerId"])}
	} else {
		var err error
		req, err = ParseRequest(sanitized)
		if err != nil {
			return nil, err
		}
		tc, client, err = d.builder.Build(ctx, req)
		if err != nil {
			return nil, err
		}
	}

	from := d.sender.DefaultSenderAddress()

	sent, err := d.employee.Notify(ctx, req, tc, from)
	if err != nil {
		return nil, err
	}
	result.EmployeeByEmail = sent

	outcome := d.client.Notify(ctx, req, tc, client, from)
	result.ClientByEmail = outcome.ByEmail
	result.ClientBySMS.IsSent = outcome.BySMS.IsSent
	if outcome.BySMS.Message != "" {
		result.ClientBySMS.Message = outcome.BySMS.Message
	}

	return result, nil
}
