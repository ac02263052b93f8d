// Package worker runs notification dispatch as a Camunda job worker.
package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	apperrors "returns-notifier/internal/common/errors"
	"returns-notifier/internal/common/logger"
	"returns-notifier/internal/notify"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	zbworker "github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

// TaskType is the job type this worker subscribes to.
const TaskType = "notify-return-status"

// Dispatcher is the dispatch entry point the worker calls.
type Dispatcher interface {
	Dispatch(ctx context.Context, data map[string]interface{}) (*notify.DispatchResult, error)
}

// jobVars is the worker's slice of the process variables. The notification
// payload travels under the data variable.
type jobVars struct {
	Data map[string]interface{} `json:"data"`
}

// Handler processes notify-return-status jobs.
type Handler struct {
	dispatcher Dispatcher
	timeout    time.Duration
	log        logger.Logger
}

func NewHandler(dispatcher Dispatcher, timeout time.Duration, log logger.Logger) *Handler {
	return &Handler{
		dispatcher: dispatcher,
		timeout:    timeout,
		log:        log.WithFields(map[string]interface{}{"taskType": TaskType}),
	}
}

// Handle runs one job. Dispatch errors surface as BPMN errors carrying the
// error kind as the error code, so the process model can route on them.
func (h *Handler) Handle(client zbworker.JobClient, job entities.Job) {
	h.log.Info("processing job", map[string]interface{}{
		"jobKey":      job.Key,
		"workflowKey": job.ProcessInstanceKey,
	})

	var vars jobVars
	if err := json.Unmarshal([]byte(job.Variables), &vars); err != nil {
		h.failJob(client, job, "PARSE_ERROR", fmt.Sprintf("parse variables: %v", err))
		return
	}
	if vars.Data == nil {
		h.failJob(client, job, "PARSE_ERROR", "missing data variable")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.timeout)
	defer cancel()

	result, err := h.dispatcher.Dispatch(ctx, vars.Data)
	if err != nil {
		h.failJob(client, job, errorCode(err), err.Error())
		return
	}

	h.completeJob(client, job, result)
}

// errorCode maps a dispatch error to its BPMN error code.
func errorCode(err error) string {
	if kind := apperrors.KindOf(err); kind != "" {
		return string(kind)
	}
	return "DISPATCH_FAILED"
}

func (h *Handler) completeJob(client zbworker.JobClient, job entities.Job, result *notify.DispatchResult) {
	cmd, err := client.NewCompleteJobCommand().
		JobKey(job.Key).
		VariablesFromObject(result)
	if err != nil {
		h.log.Error("failed to create complete job command", map[string]interface{}{
			"error": err,
		})
		return
	}
	if _, err := cmd.Send(context.Background()); err != nil {
		h.log.Error("failed to send complete job command", map[string]interface{}{
			"error": err,
		})
	}
}

func (h *Handler) failJob(client zbworker.JobClient, job entities.Job, code, message string) {
	h.log.Error("job failed", map[string]interface{}{
		"jobKey":       job.Key,
		"errorCode":    code,
		"errorMessage": message,
	})

	_, err := client.NewThrowErrorCommand().
		JobKey(job.Key).
		ErrorCode(code).
		ErrorMessage(message).
		Send(context.Background())
	if err != nil {
		h.log.Error("failed to throw error", map[string]interface{}{
			"error": err,
		})
	}
}
