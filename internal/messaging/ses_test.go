package messaging

import (
	"context"
	"errors"
	"testing"

	"returns-notifier/internal/common/logger"
	"returns-notifier/internal/notify"

	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Mock Implementations
// ==========================

type MockSESService struct {
	SendEmailFunc func(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
	Inputs        []*ses.SendEmailInput
}

func (m *MockSESService) SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
	m.Inputs = append(m.Inputs, params)
	if m.SendEmailFunc != nil {
		return m.SendEmailFunc(ctx, params, optFns...)
	}
	return &ses.SendEmailOutput{}, nil
}

func testMessages() []notify.EmailMessage {
	return []notify.EmailMessage{
		{From: "noreply@acme.example", To: "alice@acme.example", Subject: "s", Body: "b"},
		{From: "noreply@acme.example", To: "bob@acme.example", Subject: "s", Body: "b"},
	}
}

func TestSESGateway_SendsEachMessage(t *testing.T) {
	mock := &MockSESService{}
	g := NewSESGateway(mock, logger.NewNoOpLogger())

	err := g.Send(context.Background(), testMessages(), 7, "change-return-status", 2)
	require.NoError(t, err)

	require.Len(t, mock.Inputs, 2)
	first := mock.Inputs[0]
	assert.Equal(t, []string{"alice@acme.example"}, first.Destination.ToAddresses)
	assert.Equal(t, "noreply@acme.example", *first.Source)
	assert.Equal(t, "s", *first.Message.Subject.Data)
	assert.Equal(t, "b", *first.Message.Body.Text.Data)

	tags := map[string]string{}
	for _, tag := range first.Tags {
		tags[*tag.Name] = *tag.Value
	}
	assert.Equal(t, "7", tags["resellerId"])
	assert.Equal(t, "change-return-status", tags["event"])
	assert.Equal(t, "2", tags["destinationStatus"])
}

func TestSESGateway_ZeroDestinationStatusOmitsTag(t *testing.T) {
	mock := &MockSESService{}
	g := NewSESGateway(mock, logger.NewNoOpLogger())

	err := g.Send(context.Background(), testMessages()[:1], 7, "change-return-status", 0)
	require.NoError(t, err)

	require.Len(t, mock.Inputs, 1)
	for _, tag := range mock.Inputs[0].Tags {
		assert.NotEqual(t, "destinationStatus", *tag.Name)
	}
}

func TestSESGateway_AttemptsAllDespiteFailures(t *testing.T) {
	boom := errors.New("throttled")
	mock := &MockSESService{
		SendEmailFunc: func(_ context.Context, params *ses.SendEmailInput, _ ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
			if params.Destination.ToAddresses[0] == "alice@acme.example" {
				return nil, boom
			}
			return &ses.SendEmailOutput{}, nil
		},
	}
	g := NewSESGateway(mock, logger.NewNoOpLogger())

	err := g.Send(context.Background(), testMessages(), 7, "change-return-status", 2)
	require.ErrorIs(t, err, boom)
	assert.Len(t, mock.Inputs, 2)
}
