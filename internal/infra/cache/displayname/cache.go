// Package displayname кеш отображаемых имен пользователей поверх Redis.
//
// Формат хранения: фиксированный ключ с JSON-объектом user id -> display name
// и соседний ключ с абсолютным временем истечения в миллисекундах с эпохи.
// Чтение после истечения удаляет оба ключа и возвращает "кеш отсутствует"
package displayname

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	dataKey   = "desk_booking:display_names"
	expiryKey = "desk_booking:display_names_expiry"

	// TTL кеша отображаемых имен
	ttl = time.Hour
)

// ErrCacheUnavailable возвращается при ошибках обращения к Redis
var ErrCacheUnavailable = errors.New("displayname.cache: cache unavailable")

// Cache кеш отображаемых имен
type Cache struct {
	client       RedisClient
	timeProvider TimeProvider
	logger       Logger
}

// NewCache создает новый кеш отображаемых имен
func NewCache(client RedisClient, logger Logger) *Cache {
	return &Cache{
		client:       client,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Get возвращает закешированную карту user id -> display name
// Второй результат false означает "кеш отсутствует или истек" - это не ошибка
func (c *Cache) Get(ctx context.Context) (map[string]string, bool, error) {
	expiryRaw, err := c.client.Get(ctx, expiryKey).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%w: Get - read expiry key: %v", ErrCacheUnavailable, err)
	}

	expiryMillis, err := strconv.ParseInt(expiryRaw, 10, 64)
	if err != nil {
		// Нечитаемый expiry трактуем как истекший кеш
		c.logger.Warn("displayname cache: unparseable expiry %q, clearing", expiryRaw)
		c.clear(ctx)
		return nil, false, nil
	}

	nowMillis := c.timeProvider.Now().UnixMilli()
	if nowMillis >= expiryMillis {
		c.clear(ctx)
		return nil, false, nil
	}

	dataRaw, err := c.client.Get(ctx, dataKey).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%w: Get - read data key: %v", ErrCacheUnavailable, err)
	}

	var names map[string]string
	if err := json.Unmarshal([]byte(dataRaw), &names); err != nil {
		c.logger.Warn("displayname cache: undecodable payload, clearing: %v", err)
		c.clear(ctx)
		return nil, false, nil
	}

	return names, true, nil
}

// Set записывает карту имен с expiry = now + 1 час
func (c *Cache) Set(ctx context.Context, names map[string]string) error {
	payload, err := json.Marshal(names)
	if err != nil {
		return fmt.Errorf("%w: Set - marshal payload: %v", ErrCacheUnavailable, err)
	}

	expiresAt := c.timeProvider.Now().Add(ttl)

	// Redis-овский TTL чуть больше логического expiry, чтобы ключи
	// в итоге удалились даже без обращений к кешу
	redisTTL := ttl + time.Minute

	if err := c.client.Set(ctx, dataKey, string(payload), redisTTL).Err(); err != nil {
		return fmt.Errorf("%w: Set - write data key: %v", ErrCacheUnavailable, err)
	}
	if err := c.client.Set(ctx, expiryKey, strconv.FormatInt(expiresAt.UnixMilli(), 10), redisTTL).Err(); err != nil {
		return fmt.Errorf("%w: Set - write expiry key: %v", ErrCacheUnavailable, err)
	}

	return nil
}

func (c *Cache) clear(ctx context.Context) {
	if err := c.client.Del(ctx, dataKey, expiryKey).Err(); err != nil {
		c.logger.Warn("displayname cache: failed to clear expired keys: %v", err)
	}
}
