// Package localization renders message templates, with per-reseller
// overrides stored in Redis layered over the built-in defaults.
package localization

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"returns-notifier/internal/common/logger"

	"github.com/redis/go-redis/v9"
)

// defaults are the built-in message templates. Placeholders use the
// {{NAME}} form and are filled from the template context.
var defaults = map[string]string{
	"NewPositionAdded":         "New position added",
	"PositionStatusHasChanged": "The position status has changed from {{FROM}} to {{TO}}.",

	"complaintEmployeeEmailSubject": "Complaint {{COMPLAINT_NUMBER}} requires attention",
	"complaintEmployeeEmailBody": "Complaint {{COMPLAINT_NUMBER}} (id {{COMPLAINT_ID}}) for client {{CLIENT_NAME}}.\n" +
		"Created by {{CREATOR_NAME}}, expert {{EXPERT_NAME}}.\n" +
		"Consumption {{CONSUMPTION_NUMBER}}, agreement {{AGREEMENT_NUMBER}}, date {{DATE}}.\n" +
		"{{DIFFERENCES}}",

	"complaintClientEmailSubject": "Update on your return {{COMPLAINT_NUMBER}}",
	"complaintClientEmailBody": "Dear {{CLIENT_NAME}},\n\n" +
		"There is an update on your return {{COMPLAINT_NUMBER}} under agreement {{AGREEMENT_NUMBER}}.\n" +
		"{{DIFFERENCES}}\n\n" +
		"Your contact: {{EXPERT_NAME}}.",

	"complaintClientSmsBody": "Return {{COMPLAINT_NUMBER}}: {{DIFFERENCES}}",
}

var placeholderPattern = regexp.MustCompile(`\{\{[A-Z_]+\}\}`)

// RedisRenderer resolves template text per reseller and interpolates the
// template data. Overrides live in Redis under loc:<resellerId>:<key>.
type RedisRenderer struct {
	client *redis.Client
	log    logger.Logger
}

// NewRedisRenderer creates a renderer over a Redis client. The client may
// be nil, in which case only the built-in templates are used.
func NewRedisRenderer(client *redis.Client, log logger.Logger) *RedisRenderer {
	return &RedisRenderer{client: client, log: log}
}

// Render resolves the template for key and fills its placeholders from
// data. Placeholders without a value are removed from the output.
func (r *RedisRenderer) Render(ctx context.Context, key string, data map[string]string, resellerID int) string {
	return interpolate(r.resolve(ctx, key, resellerID), data)
}

func (r *RedisRenderer) resolve(ctx context.Context, key string, resellerID int) string {
	if r.client != nil {
		override, err := r.client.Get(ctx, fmt.Sprintf("loc:%d:%s", resellerID, key)).Result()
		if err == nil && override != "" {
			return override
		}
		if err != nil && err != redis.Nil {
			r.log.Warn("template override lookup failed", map[string]interface{}{
				"key":         key,
				"reseller_id": resellerID,
				"error":       err.Error(),
			})
		}
	}
	return defaults[key]
}

// interpolate substitutes {{NAME}} placeholders and strips any that remain
// unbound.
func interpolate(tmpl string, data map[string]string) string {
	for name, value := range data {
		tmpl = strings.ReplaceAll(tmpl, "{{"+name+"}}", value)
	}
	return placeholderPattern.ReplaceAllString(tmpl, "")
}
