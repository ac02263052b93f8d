package notify

import (
	"context"
	"strconv"

	apperrors "returns-notifier/internal/common/errors"
	"returns-notifier/internal/common/logger"
	"returns-notifier/internal/models"
)

// Localization keys for the differences line.
const (
	keyNewPositionAdded        = "NewPositionAdded"
	keyPositionStatusHasChange = "PositionStatusHasChanged"
)

// ContextBuilder resolves the directory entities referenced by a request
// and assembles the template context used by every outgoing message.
type ContextBuilder struct {
	resellers   ResellerDirectory
	contractors ContractorDirectory
	employees   EmployeeDirectory
	statuses    StatusNamer
	renderer    Renderer
	log         logger.Logger
}

// NewContextBuilder creates a context builder over the given directories.
func NewContextBuilder(
	resellers ResellerDirectory,
	contractors ContractorDirectory,
	employees EmployeeDirectory,
	statuses StatusNamer,
	renderer Renderer,
	log logger.Logger,
) *ContextBuilder {
	return &ContextBuilder{
		resellers:   resellers,
		contractors: contractors,
		employees:   employees,
		statuses:    statuses,
		renderer:    renderer,
		log:         log,
	}
}

// Build resolves every entity the request references and returns the
// completed template context together with the resolved client. Every
// failure is reported as a typed error; no field of the returned context
// is ever empty.
func (b *ContextBuilder) Build(ctx context.Context, req *Request) (*TemplateContext, *models.Contractor, error) {
	reseller, err := b.resellers.FindReseller(ctx, req.ResellerID)
	if err != nil {
		return nil, nil, err
	}
	if reseller == nil {
		return nil, nil, apperrors.NewNotFoundError("Seller not found!")
	}

	client, err := b.contractors.FindContractor(ctx, req.ClientID)
	if err != nil {
		return nil, nil, err
	}
	// Ownership compares the stored reseller id against the id exactly as
	// it appeared on the wire. A numerically equal but textually different
	// id does not pass.
	if client == nil || client.Type != models.ContractorTypeCustomer ||
		strconv.Itoa(client.ResellerID) != req.ResellerIDRaw {
		return nil, nil, apperrors.NewNotFoundError("Client not found!")
	}

	creator, err := b.employees.FindEmployee(ctx, req.CreatorID)
	if err != nil {
		return nil, nil, err
	}
	if creator == nil {
		return nil, nil, apperrors.NewNotFoundError("Creator not found!")
	}

	expert, err := b.employees.FindEmployee(ctx, req.ExpertID)
	if err != nil {
		return nil, nil, err
	}
	if expert == nil {
		return nil, nil, apperrors.NewNotFoundError("Expert not found!")
	}

	differences, err := b.differencesText(ctx, req)
	if err != nil {
		return nil, nil, err
	}

	tc := &TemplateContext{
		ComplaintID:       req.ComplaintID,
		ComplaintNumber:   req.ComplaintNumber,
		CreatorID:         req.CreatorID,
		CreatorName:       creator.FullName,
		ExpertID:          req.ExpertID,
		ExpertName:        expert.FullName,
		ClientID:          req.ClientID,
		ClientName:        client.DisplayName(),
		ConsumptionID:     req.ConsumptionID,
		ConsumptionNumber: req.ConsumptionNumber,
		AgreementNumber:   req.AgreementNumber,
		Date:              req.Date,
		Differences:       differences,
	}

	if err := tc.validate(); err != nil {
		return nil, nil, err
	}
	return tc, client, nil
}

func (b *ContextBuilder) differencesText(ctx context.Context, req *Request) (string, error) {
	switch {
	case req.Type == TypeNew:
		return b.renderer.Render(ctx, keyNewPositionAdded, nil, req.ResellerID), nil
	case req.Type == TypeChange && req.Differences != nil:
		from, err := b.statuses.NameOf(ctx, req.Differences.From)
		if err != nil {
			return "", err
		}
		to, err := b.statuses.NameOf(ctx, req.Differences.To)
		if err != nil {
			return "", err
		}
		data := map[string]string{
			"FROM": from,
			"TO":   to,
		}
		return b.renderer.Render(ctx, keyPositionStatusHasChange, data, req.ResellerID), nil
	default:
		return "", nil
	}
}

// templateField pairs a template placeholder name with its resolved value.
type templateField struct {
	name  string
	value string
}

// fields lists every template field in a fixed order. The order determines
// which empty field is reported first during validation.
func (tc *TemplateContext) fields() []templateField {
	return []templateField{
		{"COMPLAINT_ID", itoaOrEmpty(tc.ComplaintID)},
		{"COMPLAINT_NUMBER", tc.ComplaintNumber},
		{"CREATOR_ID", itoaOrEmpty(tc.CreatorID)},
		{"CREATOR_NAME", tc.CreatorName},
		{"EXPERT_ID", itoaOrEmpty(tc.ExpertID)},
		{"EXPERT_NAME", tc.ExpertName},
		{"CLIENT_ID", itoaOrEmpty(tc.ClientID)},
		{"CLIENT_NAME", tc.ClientName},
		{"CONSUMPTION_ID", itoaOrEmpty(tc.ConsumptionID)},
		{"CONSUMPTION_NUMBER", tc.ConsumptionNumber},
		{"AGREEMENT_NUMBER", tc.AgreementNumber},
		{"DATE", tc.Date},
		{"DIFFERENCES", tc.Differences},
	}
}

// Data returns the template placeholder map handed to the renderer.
func (tc *TemplateContext) Data() map[string]string {
	fields := tc.fields()
	data := make(map[string]string, len(fields))
	for _, f := range fields {
		data[f.name] = f.value
	}
	return data
}

// validate reports the first empty template field in declaration order.
func (tc *TemplateContext) validate() error {
	for _, f := range tc.fields() {
		if f.value == "" {
			return apperrors.NewTemplateDataError(f.name)
		}
	}
	return nil
}

// itoaOrEmpty treats a zero id as missing so validation can flag it.
func itoaOrEmpty(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}
