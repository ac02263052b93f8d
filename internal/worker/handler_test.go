package worker

import (
	"errors"
	"testing"

	apperrors "returns-notifier/internal/common/errors"

	"github.com/stretchr/testify/assert"
)

func TestErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "validation error",
			err:      apperrors.NewValidationError("Empty notificationType"),
			expected: "VALIDATION_ERROR",
		},
		{
			name:     "lookup error",
			err:      apperrors.NewNotFoundError("Client not found!"),
			expected: "NOT_FOUND",
		},
		{
			name:     "template data error",
			err:      apperrors.NewTemplateDataError("CLIENT_NAME"),
			expected: "TEMPLATE_DATA_EMPTY",
		},
		{
			name:     "infrastructure error",
			err:      errors.New("connection reset"),
			expected: "DISPATCH_FAILED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, errorCode(tt.err))
		})
	}
}
