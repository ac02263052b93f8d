package notify

// NotificationType enumerates the events that trigger a dispatch.
type NotificationType int

const (
	// TypeNew means a complaint position was created.
	TypeNew NotificationType = 1
	// TypeChange means a complaint position changed status.
	TypeChange NotificationType = 2
)

// EventChangeReturnStatus tags outgoing messages for downstream routing.
const EventChangeReturnStatus = "change-return-status"

// PermitGoodsReturn is the permission key gating employee recipients.
const PermitGoodsReturn = "tsGoodsReturn"

// Differences carries the from/to status codes of a status change.
type Differences struct {
	From int
	To   int
}

// Request is the typed form of the inbound notification payload, decoded
// once from the sanitized request map.
type Request struct {
	ResellerID int
	// ResellerIDRaw preserves the reseller id exactly as received. The
	// client-ownership check compares against this raw value, not the
	// coerced integer; see ContextBuilder.Build.
	ResellerIDRaw     string
	Type              NotificationType
	ClientID          int
	CreatorID         int
	ExpertID          int
	ComplaintID       int
	ComplaintNumber   string
	ConsumptionID     int
	ConsumptionNumber string
	AgreementNumber   string
	Date              string
	Differences       *Differences
}

// TemplateContext is the fully-resolved set of template fields. Every field
// must be non-empty before any notification may be sent.
type TemplateContext struct {
	ComplaintID       int
	ComplaintNumber   string
	CreatorID         int
	CreatorName       string
	ExpertID          int
	ExpertName        string
	ClientID          int
	ClientName        string
	ConsumptionID     int
	ConsumptionNumber string
	AgreementNumber   string
	Date              string
	Differences       string
}

// EmailMessage is one outbound email handed to the messaging gateway.
type EmailMessage struct {
	From    string
	To      string
	Subject string
	Body    string
}

// SMSResult reports the client SMS channel outcome. Message carries an
// explanation when the SMS was not sent or the provider reported an error.
type SMSResult struct {
	IsSent  bool   `json:"isSent"`
	Message string `json:"message"`
}

// DispatchResult is the per-channel outcome record returned to the caller.
// Channel outcomes are independent: a failure in one never reverses another.
type DispatchResult struct {
	EmployeeByEmail bool      `json:"notificationEmployeeByEmail"`
	ClientByEmail   bool      `json:"notificationClientByEmail"`
	ClientBySMS     SMSResult `json:"notificationClientBySms"`
}

// NewDispatchResult returns a result with every channel unset.
func NewDispatchResult() *DispatchResult {
	return &DispatchResult{}
}
