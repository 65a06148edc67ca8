package redisstore

import (
	"context"
	"fmt"

	"github.com/dddshop/backend/domain/pubsub"
	"github.com/redis/go-redis/v9"
)

type RedisClient struct {
	rdb *redis.Client
}

func NewRedisClient(rdb *redis.Client) *RedisClient {
	return &RedisClient{rdb: rdb}
}

func (r *RedisClient) Publish(ctx context.Context, channel string, payload string) error {
	if err := r.rdb.Publish(ctx, channel, payload).Err(); err != nil {
		return fmt.Errorf("redis publish to %s: %w", channel, err)
	}

	return nil
}

func (r *RedisClient) Subscribe(ctx context.Context, channel string) pubsub.Subscription {
	return &redisSubscription{ps: r.rdb.Subscribe(ctx, channel)}
}

type redisSubscription struct {
	ps *redis.PubSub
}

func (s *redisSubscription) Receive(ctx context.Context) (pubsub.Message, error) {
	msg, err := s.ps.ReceiveMessage(ctx)
	if err != nil {
		return pubsub.Message{}, err
	}

	return pubsub.Message{
		Channel: msg.Channel,
		Payload: msg.Payload,
	}, nil
}

func (s *redisSubscription) Close() error {
	return s.ps.Close()
}
