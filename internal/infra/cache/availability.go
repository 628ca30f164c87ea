// Package cache кеширует вычисленную доступность на дату в Redis.
// Доступность — справочная информация (авторитетна только проверка в
// момент коммита), поэтому короткий TTL и инвалидация по факту записи
// дают достаточную свежесть.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrMiss возвращается, когда значения в кеше нет
var ErrMiss = errors.New("cache: miss")

const keyPrefix = "availability:"

// AvailabilityCache кеш ответов доступности по дате (YYYY-MM-DD)
type AvailabilityCache struct {
	client *redis.Client
	ttl    time.Duration
}

// New создает кеш поверх существующего Redis клиента
func New(client *redis.Client, ttl time.Duration) *AvailabilityCache {
	return &AvailabilityCache{client: client, ttl: ttl}
}

// Get возвращает закешированный ответ для даты или ErrMiss
func (c *AvailabilityCache) Get(ctx context.Context, date string) ([]byte, error) {
	payload, err := c.client.Get(ctx, keyPrefix+date).Bytes()
	if err == redis.Nil {
		return nil, ErrMiss
	}
	if err != nil {
		return nil, fmt.Errorf("cache: get %s: %w", date, err)
	}
	return payload, nil
}

// Set сохраняет ответ для даты с настроенным TTL
func (c *AvailabilityCache) Set(ctx context.Context, date string, payload []byte) error {
	if err := c.client.Set(ctx, keyPrefix+date, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache: set %s: %w", date, err)
	}
	return nil
}

// Invalidate удаляет закешированный ответ для даты.
// Вызывается после коммита или отмены бронирования на эту дату.
func (c *AvailabilityCache) Invalidate(ctx context.Context, date string) error {
	if err := c.client.Del(ctx, keyPrefix+date).Err(); err != nil {
		return fmt.Errorf("cache: invalidate %s: %w", date, err)
	}
	return nil
}

// Noop реализация кеша, когда Redis отключен конфигурацией
type Noop struct{}

// Get всегда возвращает ErrMiss
func (Noop) Get(ctx context.Context, date string) ([]byte, error) { return nil, ErrMiss }

// Set ничего не делает
func (Noop) Set(ctx context.Context, date string, payload []byte) error { return nil }

// Invalidate ничего не делает
func (Noop) Invalidate(ctx context.Context, date string) error { return nil }
