package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Johnny027-Picard/draftcraft-agent/internal/mailer"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const MailQueueKey = "mail_queue"

// Notification is the envelope pushed onto the mail queue.
type Notification struct {
	Kind string            `json:"kind"`
	To   string            `json:"to"`
	Data map[string]string `json:"data"`
}

// Notifier enqueues a notification and returns immediately. Delivery happens
// on the worker side; enqueue callers never wait on SMTP.
type Notifier interface {
	Enqueue(kind, to string, data map[string]string) error
}

// RedisNotifier pushes notifications onto a redis list.
type RedisNotifier struct {
	client *redis.Client
}

func NewRedisNotifier(client *redis.Client) *RedisNotifier {
	return &RedisNotifier{client: client}
}

func (n *RedisNotifier) Enqueue(kind, to string, data map[string]string) error {
	payload, err := json.Marshal(Notification{Kind: kind, To: to, Data: data})
	if err != nil {
		return err
	}
	return n.client.RPush(context.Background(), MailQueueKey, payload).Err()
}

// MailWorker drains the queue and hands each notification to the mailer.
// Failures are logged and dropped; a notification never fails the request
// that enqueued it.
type MailWorker struct {
	client *redis.Client
	mailer mailer.Mailer
}

func NewMailWorker(client *redis.Client, m mailer.Mailer) *MailWorker {
	return &MailWorker{client: client, mailer: m}
}

func (w *MailWorker) Start(ctx context.Context) {
	zap.L().Info("mail worker started")
	for {
		result, err := w.client.BLPop(ctx, 5*time.Second, MailQueueKey).Result()
		if err != nil {
			if ctx.Err() != nil {
				zap.L().Info("mail worker stopped")
				return
			}
			if err != redis.Nil {
				zap.L().Warn("mail queue pop failed", zap.Error(err))
				time.Sleep(time.Second)
			}
			continue
		}

		// result[0] is the key, result[1] is the payload
		var n Notification
		if err := json.Unmarshal([]byte(result[1]), &n); err != nil {
			zap.L().Warn("malformed mail payload", zap.Error(err))
			continue
		}

		if err := w.mailer.SendTemplated(n.To, n.Kind, n.Data); err != nil {
			zap.L().Warn("mail delivery failed",
				zap.String("kind", n.Kind),
				zap.String("to", n.To),
				zap.Error(err))
		}
	}
}
