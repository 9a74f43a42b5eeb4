// Package queue is a small Redis-list job queue used by the worksheet
// import pipeline. Producers LPUSH JSON payloads; workers BRPOP in a loop.
// Delivery is at-least-once: a worker crash between pop and commit loses
// the in-flight job's progress but the job row in MySQL stays queued and
// can be re-enqueued.
package queue

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

type Queue struct {
	rdb *redis.Client
	key string
	log *zap.Logger
}

func New(rdb *redis.Client, key string, log *zap.Logger) *Queue {
	return &Queue{rdb: rdb, key: key, log: log}
}

func (q *Queue) Enqueue(ctx context.Context, payload interface{}) error {
	b, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return q.rdb.LPush(ctx, q.key, b).Err()
}

// Handler processes one raw job payload. Returned errors are logged; the
// job is not retried by the queue itself.
type Handler func(ctx context.Context, payload []byte) error

// Run blocks until ctx is cancelled, popping and handling jobs one at a
// time. Redis hiccups back off for a second instead of spinning.
func (q *Queue) Run(ctx context.Context, handle Handler) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		res, err := q.rdb.BRPop(ctx, 5*time.Second, q.key).Result()
		if err == redis.Nil {
			continue
		}
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			q.log.Warn("queue pop failed", zap.Error(err))
			time.Sleep(time.Second)
			continue
		}
		// BRPop returns [key, value].
		if len(res) != 2 {
			continue
		}
		if err := handle(ctx, []byte(res[1])); err != nil {
			q.log.Error("job handler failed", zap.Error(err))
		}
	}
}
