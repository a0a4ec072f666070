// Package spent кэширует в Redis суммарные начисления по номеру автомобиля
package spent

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix           = "parking:spent:"
	generationKeyPrefix = "parking:spent-gen:"
)

// Cache кэш сумм начислений. Нулевой указатель означает выключенный кэш.
// Каждое Invalidate увеличивает поколение номера; Set пишет сумму только
// если поколение не изменилось с момента, когда сумма была прочитана из БД.
type Cache struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// NewCache создает кэш поверх клиента Redis
func NewCache(client redis.UniversalClient, ttl time.Duration) *Cache {
	if client == nil {
		return nil
	}
	return &Cache{client: client, ttl: ttl}
}

// Connect открывает соединение с Redis и проверяет его через PING
func Connect(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("%w: %v", ErrConnect, err)
	}

	return client, nil
}

// Get возвращает сумму из кэша. ok == false при промахе.
func (c *Cache) Get(ctx context.Context, licensePlate string) (float64, bool, error) {
	if c == nil {
		return 0, false, nil
	}

	raw, err := c.client.Get(ctx, key(licensePlate)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("%w: Get: %v", ErrCache, err)
	}

	total, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		// Битое значение считаем промахом
		return 0, false, nil
	}

	return total, true, nil
}

// Generation возвращает текущее поколение начислений автомобиля.
// Читать нужно до запроса суммы в БД.
func (c *Cache) Generation(ctx context.Context, licensePlate string) (int64, error) {
	if c == nil {
		return 0, nil
	}

	generation, err := c.client.Get(ctx, generationKey(licensePlate)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("%w: Generation: %v", ErrCache, err)
	}
	return generation, nil
}

// Set сохраняет сумму с TTL, если поколение всё ещё равно generation.
// Иначе возвращает ErrStale и ничего не пишет.
func (c *Cache) Set(ctx context.Context, licensePlate string, total float64, generation int64) error {
	if c == nil {
		return nil
	}

	value := strconv.FormatFloat(total, 'f', -1, 64)
	genKey := generationKey(licensePlate)

	err := c.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, genKey).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if current != generation {
			return ErrStale
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key(licensePlate), value, c.ttl)
			return nil
		})
		return err
	}, genKey)

	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrStale), errors.Is(err, redis.TxFailedErr):
		return ErrStale
	}
	return fmt.Errorf("%w: Set: %v", ErrCache, err)
}

// Invalidate удаляет сумму и увеличивает поколение после изменения начислений автомобиля
func (c *Cache) Invalidate(ctx context.Context, licensePlate string) error {
	if c == nil {
		return nil
	}

	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, generationKey(licensePlate))
		pipe.Del(ctx, key(licensePlate))
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: Invalidate: %v", ErrCache, err)
	}
	return nil
}

func key(licensePlate string) string {
	return keyPrefix + licensePlate
}

func generationKey(licensePlate string) string {
	return generationKeyPrefix + licensePlate
}
