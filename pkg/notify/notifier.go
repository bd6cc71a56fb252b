package notify

import (
	"context"
	"encoding/json"
	"log"

	"github.com/redis/go-redis/v9"
)

// Publisher — порт исходящих уведомлений. Публикация всегда
// fire-and-forget: отказ доставки логируется и никогда не
// блокирует и не откатывает вызвавшую операцию.
type Publisher interface {
	Publish(ctx context.Context, event string, payload map[string]string) error
}

// Имена событий (канал совпадает с полем "type" в payload).
const (
	EventApplicationReceived = "EVENT_APPLICATION_RECEIVED"
	EventInterviewScheduled  = "EVENT_INTERVIEW_SCHEDULED"
	EventInterviewReminder   = "EVENT_INTERVIEW_REMINDER"
	EventStaffHired          = "EVENT_STAFF_HIRED"
)

// RedisPublisher публикует события в Redis pub/sub; их забирает
// внешний шлюз доставки (WhatsApp/email).
type RedisPublisher struct {
	rdb *redis.Client
}

func NewRedisPublisher(rdb *redis.Client) *RedisPublisher {
	return &RedisPublisher{rdb: rdb}
}

func (p *RedisPublisher) Publish(ctx context.Context, event string, payload map[string]string) error {
	body := make(map[string]string, len(payload)+1)
	body["type"] = event
	for k, v := range payload {
		body[k] = v
	}
	msg, _ := json.Marshal(body)
	return p.rdb.Publish(ctx, event, msg).Err()
}

// NopPublisher используется, когда REDIS_URL не задан: событие только логируется.
type NopPublisher struct{}

func (NopPublisher) Publish(_ context.Context, event string, payload map[string]string) error {
	log.Printf("[notify] redis disabled, dropping %s %v", event, payload)
	return nil
}
