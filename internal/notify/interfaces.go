package notify

import (
	"context"

	"returns-notifier/internal/models"
)

// ResellerDirectory resolves resellers by id. Implementations return
// (nil, nil) when no reseller exists.
type ResellerDirectory interface {
	FindReseller(ctx context.Context, id int) (*models.Reseller, error)
}

// ContractorDirectory resolves contractors by id. Implementations return
// (nil, nil) when no contractor exists.
type ContractorDirectory interface {
	FindContractor(ctx context.Context, id int) (*models.Contractor, error)
}

// EmployeeDirectory resolves employees by id. Implementations return
// (nil, nil) when no employee exists.
type EmployeeDirectory interface {
	FindEmployee(ctx context.Context, id int) (*models.Employee, error)
}

// StatusNamer maps a complaint status code to its display name.
type StatusNamer interface {
	NameOf(ctx context.Context, code int) (string, error)
}

// Renderer produces localized message text for a template key, filling
// placeholders from data. Resolution may depend on the reseller.
type Renderer interface {
	Render(ctx context.Context, key string, data map[string]string, resellerID int) string
}

// RecipientDirectory lists employee email addresses permitted to receive
// notifications of the given kind for a reseller.
type RecipientDirectory interface {
	EmployeesPermittedFor(ctx context.Context, resellerID int, permit string) ([]string, error)
}

// SenderResolver yields the configured sender address for outgoing email.
type SenderResolver interface {
	DefaultSenderAddress() string
}

// MessagingGateway delivers a batch of email messages. destStatus is the
// destination status code of a status change, or 0 when none applies.
type MessagingGateway interface {
	Send(ctx context.Context, msgs []EmailMessage, resellerID int, event string, destStatus int) error
}

// SMSService delivers the client SMS. It reports whether the message was
// sent and, on failure, the provider's error text.
type SMSService interface {
	Send(ctx context.Context, resellerID, clientID int, event string, destStatus int, data map[string]string) (bool, string)
}
