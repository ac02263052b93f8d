package notify

import (
	"context"
	"fmt"

	"returns-notifier/internal/models"
)

// ==========================
// Mock Implementations
// ==========================

type MockDirectory struct {
	FindResellerFunc   func(ctx context.Context, id int) (*models.Reseller, error)
	FindContractorFunc func(ctx context.Context, id int) (*models.Contractor, error)
	FindEmployeeFunc   func(ctx context.Context, id int) (*models.Employee, error)
	NameOfFunc         func(ctx context.Context, code int) (string, error)
}

func (m *MockDirectory) FindReseller(ctx context.Context, id int) (*models.Reseller, error) {
	return m.FindResellerFunc(ctx, id)
}

func (m *MockDirectory) FindContractor(ctx context.Context, id int) (*models.Contractor, error) {
	return m.FindContractorFunc(ctx, id)
}

func (m *MockDirectory) FindEmployee(ctx context.Context, id int) (*models.Employee, error) {
	return m.FindEmployeeFunc(ctx, id)
}

func (m *MockDirectory) NameOf(ctx context.Context, code int) (string, error) {
	return m.NameOfFunc(ctx, code)
}

type MockRenderer struct {
	RenderFunc func(ctx context.Context, key string, data map[string]string, resellerID int) string
}

func (m *MockRenderer) Render(ctx context.Context, key string, data map[string]string, resellerID int) string {
	return m.RenderFunc(ctx, key, data, resellerID)
}

type MockRecipients struct {
	EmployeesPermittedForFunc func(ctx context.Context, resellerID int, permit string) ([]string, error)
}

func (m *MockRecipients) EmployeesPermittedFor(ctx context.Context, resellerID int, permit string) ([]string, error) {
	return m.EmployeesPermittedForFunc(ctx, resellerID, permit)
}

type MockGateway struct {
	SendFunc func(ctx context.Context, msgs []EmailMessage, resellerID int, event string, destStatus int) error
	Sent     []EmailMessage
}

func (m *MockGateway) Send(ctx context.Context, msgs []EmailMessage, resellerID int, event string, destStatus int) error {
	m.Sent = append(m.Sent, msgs...)
	if m.SendFunc != nil {
		return m.SendFunc(ctx, msgs, resellerID, event, destStatus)
	}
	return nil
}

type MockSMS struct {
	SendFunc func(ctx context.Context, resellerID, clientID int, event string, destStatus int, data map[string]string) (bool, string)
	Calls    int
}

func (m *MockSMS) Send(ctx context.Context, resellerID, clientID int, event string, destStatus int, data map[string]string) (bool, string) {
	m.Calls++
	if m.SendFunc != nil {
		return m.SendFunc(ctx, resellerID, clientID, event, destStatus, data)
	}
	return true, ""
}

type StaticSender string

func (s StaticSender) DefaultSenderAddress() string { return string(s) }

// ==========================
// Test Helper Functions
// ==========================

func testDirectory() *MockDirectory {
	return &MockDirectory{
		FindResellerFunc: func(_ context.Context, id int) (*models.Reseller, error) {
			if id == 7 {
				return &models.Reseller{ID: 7, Name: "Acme Returns"}, nil
			}
			return nil, nil
		},
		FindContractorFunc: func(_ context.Context, id int) (*models.Contractor, error) {
			if id == 11 {
				return &models.Contractor{
					ID:         11,
					Type:       models.ContractorTypeCustomer,
					ResellerID: 7,
					Name:       "J. Doe",
					FullName:   "Jane Doe",
					Email:      "jane@example.com",
					Mobile:     "+491700000000",
				}, nil
			}
			return nil, nil
		},
		FindEmployeeFunc: func(_ context.Context, id int) (*models.Employee, error) {
			switch id {
			case 21:
				return &models.Employee{ID: 21, FullName: "Carol Creator"}, nil
			case 31:
				return &models.Employee{ID: 31, FullName: "Evan Expert"}, nil
			}
			return nil, nil
		},
		NameOfFunc: func(_ context.Context, code int) (string, error) {
			names := map[int]string{1: "registered", 2: "approved"}
			if name, ok := names[code]; ok {
				return name, nil
			}
			return fmt.Sprintf("status #%d", code), nil
		},
	}
}

func testRenderer() *MockRenderer {
	return &MockRenderer{
		RenderFunc: func(_ context.Context, key string, data map[string]string, _ int) string {
			switch key {
			case keyNewPositionAdded:
				return "New position added"
			case keyPositionStatusHasChange:
				return fmt.Sprintf("The position status has changed from %s to %s.", data["FROM"], data["TO"])
			default:
				return key + ":" + data["COMPLAINT_NUMBER"]
			}
		},
	}
}

func testRequestData() map[string]interface{} {
	return map[string]interface{}{
		"resellerId":        float64(7),
		"notificationType":  float64(2),
		"clientId":          float64(11),
		"creatorId":         float64(21),
		"expertId":          float64(31),
		"complaintId":       float64(101),
		"complaintNumber":   "CN-101",
		"consumptionId":     float64(201),
		"consumptionNumber": "CO-201",
		"agreementNumber":   "AG-301",
		"date":              "2026-08-30",
		"differences": map[string]interface{}{
			"from": float64(1),
			"to":   float64(2),
		},
	}
}

func testRequest(t NotificationType) *Request {
	req := &Request{
		ResellerID:        7,
		ResellerIDRaw:     "7",
		Type:              t,
		ClientID:          11,
		CreatorID:         21,
		ExpertID:          31,
		ComplaintID:       101,
		ComplaintNumber:   "CN-101",
		ConsumptionID:     201,
		ConsumptionNumber: "CO-201",
		AgreementNumber:   "AG-301",
		Date:              "2026-08-30",
	}
	if t == TypeChange {
		req.Differences = &Differences{From: 1, To: 2}
	}
	return req
}
