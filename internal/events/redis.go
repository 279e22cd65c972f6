package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisPublisher publishes events to Redis Pub/Sub.
type RedisPublisher struct {
	client  *redis.Client
	channel string // channel prefix; events go to "{prefix}:{tenantKey}"
	log     *zap.Logger
}

// RedisConfig configures the Redis publisher.
type RedisConfig struct {
	Addr         string
	Password     string
	DB           int
	Channel      string
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// DefaultRedisConfig returns a RedisConfig with sensible defaults.
func DefaultRedisConfig(addr string) RedisConfig {
	return RedisConfig{
		Addr:         addr,
		Channel:      "hestia:events",
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	}
}

// NewRedisPublisher connects to Redis and verifies the connection with a
// ping before returning.
func NewRedisPublisher(cfg RedisConfig, log *zap.Logger) (*RedisPublisher, error) {
	if cfg.Addr == "" {
		return nil, fmt.Errorf("redis address is required")
	}
	if cfg.Channel == "" {
		cfg.Channel = "hestia:events"
	}
	if cfg.DialTimeout <= 0 {
		cfg.DialTimeout = 5 * time.Second
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), cfg.DialTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	log.Info("redis event publisher connected",
		zap.String("addr", cfg.Addr),
		zap.String("channel", cfg.Channel))

	return &RedisPublisher{client: client, channel: cfg.Channel, log: log}, nil
}

func (p *RedisPublisher) Name() string { return "redis" }

// Publish sends the event as JSON to "{prefix}:{tenantKey}".
func (p *RedisPublisher) Publish(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	channel := fmt.Sprintf("%s:%s", p.channel, event.TenantKey)
	result := p.client.Publish(ctx, channel, payload)
	if err := result.Err(); err != nil {
		return fmt.Errorf("redis publish: %w", err)
	}

	p.log.Debug("published event to redis",
		zap.String("channel", channel),
		zap.Int64("subscribers", result.Val()))
	return nil
}

// Close closes the Redis connection.
func (p *RedisPublisher) Close() error {
	if p.client != nil {
		return p.client.Close()
	}
	return nil
}
