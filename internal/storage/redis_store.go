package storage

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisStore хранит снимки в Redis
type RedisStore struct {
	client    *redis.Client
	keyPrefix string
	ttl       time.Duration
}

// RedisConfig содержит настройки подключения к Redis
type RedisConfig struct {
	Addr      string        // Адрес Redis сервера
	Password  string        // Пароль (пустой если не требуется)
	DB        int           // Номер базы данных
	KeyPrefix string        // Префикс для ключей
	TTL       time.Duration // Время жизни записей; 0 означает без срока
}

// DefaultRedisConfig возвращает конфигурацию по умолчанию
func DefaultRedisConfig() *RedisConfig {
	return &RedisConfig{
		Addr:      "localhost:6379",
		Password:  "",
		DB:        0,
		KeyPrefix: "acidmud:snapshot:",
	}
}

// NewRedisStore подключается к Redis и проверяет соединение.
func NewRedisStore(config *RedisConfig) (*RedisStore, error) {
	if config == nil {
		config = DefaultRedisConfig()
	}

	// Создаём клиент Redis
	client := redis.NewClient(&redis.Options{
		Addr:     config.Addr,
		Password: config.Password,
		DB:       config.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Проверяем подключение
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	log.Info("🔴 Connected to Redis at %s", config.Addr)
	return newRedisStore(client, config), nil
}

func newRedisStore(client *redis.Client, config *RedisConfig) *RedisStore {
	return &RedisStore{
		client:    client,
		keyPrefix: config.KeyPrefix,
		ttl:       config.TTL,
	}
}

func (rs *RedisStore) key(name string) string { return rs.keyPrefix + name }

// Save сохраняет снимок
func (rs *RedisStore) Save(ctx context.Context, name string, data []byte) error {
	if err := rs.client.Set(ctx, rs.key(name), data, rs.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}

// Load получает снимок
func (rs *RedisStore) Load(ctx context.Context, name string) ([]byte, bool, error) {
	data, err := rs.client.Get(ctx, rs.key(name)).Bytes()
	if err == redis.Nil {
		return nil, false, nil // Снимок не найден
	} else if err != nil {
		return nil, false, fmt.Errorf("failed to get snapshot: %w", err)
	}
	return data, true, nil
}

// Delete удаляет снимок
func (rs *RedisStore) Delete(ctx context.Context, name string) error {
	if err := rs.client.Del(ctx, rs.key(name)).Err(); err != nil {
		return fmt.Errorf("failed to delete snapshot: %w", err)
	}
	return nil
}

// List перечисляет снимки через SCAN
func (rs *RedisStore) List(ctx context.Context) ([]string, error) {
	var names []string
	iter := rs.client.Scan(ctx, 0, rs.keyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		names = append(names, strings.TrimPrefix(iter.Val(), rs.keyPrefix))
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan snapshots: %w", err)
	}
	sort.Strings(names)
	return names, nil
}

// Close закрывает соединение с Redis
func (rs *RedisStore) Close() error {
	return rs.client.Close()
}
