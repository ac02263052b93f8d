package server

import (
	"context"
	"encoding/json"
	"net/http"

	apperrors "returns-notifier/internal/common/errors"
	"returns-notifier/internal/common/logger"
	"returns-notifier/internal/notify"

	"github.com/xeipuuv/gojsonschema"
)

// requestSchema accepts the loosely-typed payloads the upstream producers
// emit: numeric fields may arrive as numbers or strings.
const requestSchema = `{
	"type": "object",
	"properties": {
		"resellerId":        {"type": ["integer", "string", "null"]},
		"notificationType":  {"type": ["integer", "string", "null"]},
		"clientId":          {"type": ["integer", "string", "null"]},
		"creatorId":         {"type": ["integer", "string", "null"]},
		"expertId":          {"type": ["integer", "string", "null"]},
		"complaintId":       {"type": ["integer", "string", "null"]},
		"complaintNumber":   {"type": ["string", "null"]},
		"consumptionId":     {"type": ["integer", "string", "null"]},
		"consumptionNumber": {"type": ["string", "null"]},
		"agreementNumber":   {"type": ["string", "null"]},
		"date":              {"type": ["string", "null"]},
		"differences": {
			"type": ["object", "null"],
			"properties": {
				"from": {"type": ["integer", "string", "null"]},
				"to":   {"type": ["integer", "string", "null"]}
			}
		}
	}
}`

var requestSchemaLoader = gojsonschema.NewStringLoader(requestSchema)

// Dispatcher is the dispatch entry point the handler calls.
type Dispatcher interface {
	Dispatch(ctx context.Context, data map[string]interface{}) (*notify.DispatchResult, error)
}

// MessageEnvelope is the generic error response wrapper.
type MessageEnvelope struct {
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
	Kind    string `json:"kind,omitempty"`
}

// NotificationHandler handles return-status notification requests.
type NotificationHandler struct {
	dispatcher Dispatcher
	log        logger.Logger
}

func NewNotificationHandler(dispatcher Dispatcher, log logger.Logger) *NotificationHandler {
	return &NotificationHandler{dispatcher: dispatcher, log: log}
}

// Dispatch validates the payload shape, runs the notification and returns
// the per-channel outcome.
func (h *NotificationHandler) Dispatch(w http.ResponseWriter, r *http.Request) {
	var data map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	docLoader := gojsonschema.NewGoLoader(data)
	schemaResult, err := gojsonschema.Validate(requestSchemaLoader, docLoader)
	if err != nil {
		writeError(w, http.StatusBadRequest, "payload validation failed")
		return
	}
	if !schemaResult.Valid() {
		writeError(w, http.StatusBadRequest, schemaResult.Errors()[0].String())
		return
	}

	result, err := h.dispatcher.Dispatch(r.Context(), data)
	if err != nil {
		writeJSON(w, apperrors.StatusOf(err), MessageEnvelope{
			Error: err.Error(),
			Kind:  string(apperrors.KindOf(err)),
		})
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, MessageEnvelope{Error: msg})
}
