package dispatch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	rd "github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"fleet_dispatch/internal/models"
	"fleet_dispatch/internal/store"
)

// Worker consumes solver results from a redis stream consumer group and
// applies them to the database. A message is acked only after it has been
// applied (or deliberately dropped), so a crash mid-apply leaves it pending
// for redelivery.
type Worker struct {
	rdb    *rd.Client
	routes *store.RouteStore

	stream   string
	group    string
	consumer string
}

func NewWorker(rdb *rd.Client, routes *store.RouteStore, stream, group, consumer string) *Worker {
	return &Worker{
		rdb:      rdb,
		routes:   routes,
		stream:   stream,
		group:    group,
		consumer: consumer,
	}
}

// Run blocks until ctx is cancelled.
func (w *Worker) Run(ctx context.Context) {
	if err := w.ensureGroup(ctx); err != nil {
		logrus.WithError(err).Error("result worker: ensure group")
		return
	}

	for {
		if ctx.Err() != nil {
			return
		}

		// Drain this consumer's pending entries before asking for new ones so
		// redelivered messages do not pile up behind fresh traffic.
		msgs, err := w.readGroup(ctx, "0", 0)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				return
			}
			logrus.WithError(err).Warn("result worker: read pending")
			time.Sleep(300 * time.Millisecond)
			continue
		}
		if len(msgs) == 0 {
			msgs, err = w.readGroup(ctx, ">", 2*time.Second)
			if err != nil {
				if ctx.Err() != nil || errors.Is(err, context.Canceled) {
					return
				}
				logrus.WithError(err).Warn("result worker: read new")
				time.Sleep(300 * time.Millisecond)
				continue
			}
		}

		for _, xm := range msgs {
			if err := w.processOne(ctx, xm); err != nil {
				// Not acked; the message stays pending for retry.
				logrus.WithError(err).WithField("id", xm.ID).Warn("result worker: process message")
				time.Sleep(200 * time.Millisecond)
				break
			}
		}
	}
}

func (w *Worker) ensureGroup(ctx context.Context) error {
	err := w.rdb.XGroupCreateMkStream(ctx, w.stream, w.group, "0").Err()
	if err == nil {
		return nil
	}
	if strings.Contains(err.Error(), "BUSYGROUP") {
		return nil
	}
	return err
}

func (w *Worker) readGroup(ctx context.Context, streamID string, block time.Duration) ([]rd.XMessage, error) {
	streams, err := w.rdb.XReadGroup(ctx, &rd.XReadGroupArgs{
		Group:    w.group,
		Consumer: w.consumer,
		Streams:  []string{w.stream, streamID},
		Count:    16,
		Block:    block,
	}).Result()
	if err != nil {
		if errors.Is(err, rd.Nil) {
			return nil, nil
		}
		return nil, err
	}
	out := make([]rd.XMessage, 0, 16)
	for _, s := range streams {
		out = append(out, s.Messages...)
	}
	return out, nil
}

func (w *Worker) processOne(ctx context.Context, xm rd.XMessage) error {
	result, err := parseResult(xm.Values)
	if err != nil {
		// Dirty message: ack and drop so it cannot wedge the stream.
		logrus.WithError(err).WithField("id", xm.ID).Warn("result worker: dropping malformed result")
		return w.ack(ctx, xm.ID)
	}

	applied, err := w.Apply(ctx, result)
	if err != nil {
		return err
	}
	if !applied {
		logrus.WithFields(logrus.Fields{
			"compute_id": result.ComputeID,
			"status":     result.Status,
		}).Info("result worker: compute already terminal, result dropped")
	}
	return w.ack(ctx, xm.ID)
}

// Apply writes one result. Computing messages only bump the status; terminal
// ones carry the route graph. The store's conditional update keeps late
// results off cancelled jobs.
func (w *Worker) Apply(ctx context.Context, result ComputeResult) (bool, error) {
	status := models.ComputeStatus(result.Status)
	if status == models.ComputeComputing {
		start := time.Now().Unix()
		if result.StartTime != nil {
			start = *result.StartTime
		}
		return w.routes.MarkComputing(ctx, result.ComputeID, start)
	}
	return w.routes.ApplyResult(ctx, result.ComputeID, status, result.FailReason, result.StartTime, result.EndTime, result.StoreRoutes())
}

func parseResult(values map[string]interface{}) (ComputeResult, error) {
	raw, ok := values["payload"].(string)
	if !ok || raw == "" {
		return ComputeResult{}, fmt.Errorf("missing payload field")
	}
	var result ComputeResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return ComputeResult{}, err
	}
	if err := result.Validate(); err != nil {
		return ComputeResult{}, err
	}
	return result, nil
}

func (w *Worker) ack(ctx context.Context, id string) error {
	return w.rdb.XAck(ctx, w.stream, w.group, id).Err()
}
