package directory

import (
	"context"
	"fmt"
	"sort"

	"returns-notifier/internal/common/logger"

	"github.com/redis/go-redis/v9"
)

// RedisRecipients resolves the employee addresses permitted to receive a
// notification kind for a reseller. Permits live in Redis sets keyed
// reseller:<id>:permit:<kind>.
type RedisRecipients struct {
	client *redis.Client
	log    logger.Logger
}

// NewRedisRecipients creates a recipient directory over a Redis client.
func NewRedisRecipients(client *redis.Client, log logger.Logger) *RedisRecipients {
	return &RedisRecipients{client: client, log: log}
}

// EmployeesPermittedFor returns the permitted addresses sorted for stable
// delivery order. A missing set means no recipients, not an error.
func (r *RedisRecipients) EmployeesPermittedFor(ctx context.Context, resellerID int, permit string) ([]string, error) {
	key := fmt.Sprintf("reseller:%d:permit:%s", resellerID, permit)
	emails, err := r.client.SMembers(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read permit set %s: %w", key, err)
	}
	sort.Strings(emails)
	return emails, nil
}
