package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"garage_manager/internal/domain/entities"
	"garage_manager/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "report"

// RedisReportCache keeps computed financial reports under
// report:<garage_id>:<variant>.
type RedisReportCache struct {
	client *redis.Client
}

var _ interfaces.IReportCache = (*RedisReportCache)(nil)

// NewRedisReportCache accepts either host:port or a redis:// URL.
func NewRedisReportCache(addr, password string, db int) *RedisReportCache {
	opts := &redis.Options{Addr: addr, Password: password, DB: db}
	if strings.HasPrefix(addr, "redis://") || strings.HasPrefix(addr, "rediss://") {
		parsed, err := redis.ParseURL(addr)
		if err != nil {
			log.Printf("[report][cache] invalid redis url err=%v", err)
		} else {
			opts = parsed
			if password != "" {
				opts.Password = password
			}
		}
	}

	client := redis.NewClient(opts)
	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Printf("[report][cache] redis ping failed addr=%s err=%v", opts.Addr, err)
	} else {
		log.Printf("[report][cache] redis connected addr=%s", opts.Addr)
	}
	return &RedisReportCache{client: client}
}

func reportKey(garageID, variant string) string {
	return fmt.Sprintf("%s:%s:%s", keyPrefix, garageID, variant)
}

func garagePattern(garageID string) string {
	return fmt.Sprintf("%s:%s:*", keyPrefix, garageID)
}

func (c *RedisReportCache) Get(ctx context.Context, garageID, variant string) (entities.FinancialReport, bool, error) {
	data, err := c.client.Get(ctx, reportKey(garageID, variant)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return entities.FinancialReport{}, false, nil
		}
		return entities.FinancialReport{}, false, err
	}

	var report entities.FinancialReport
	if err := json.Unmarshal(data, &report); err != nil {
		return entities.FinancialReport{}, false, err
	}
	return report, true, nil
}

func (c *RedisReportCache) Set(ctx context.Context, garageID, variant string, report entities.FinancialReport, ttl time.Duration) error {
	data, err := json.Marshal(report)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, reportKey(garageID, variant), data, ttl).Err()
}

// InvalidateGarage drops every cached report of the garage.
func (c *RedisReportCache) InvalidateGarage(ctx context.Context, garageID string) error {
	var keys []string
	iter := c.client.Scan(ctx, 0, garagePattern(garageID), 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	log.Printf("[report][cache] invalidate garage_id=%s keys=%d", garageID, len(keys))
	return c.client.Del(ctx, keys...).Err()
}

func (c *RedisReportCache) Close() error {
	return c.client.Close()
}
