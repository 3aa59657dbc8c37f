package dispatch

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	rd "github.com/redis/go-redis/v9"

	"fleet_dispatch/internal/models"
)

// Publisher puts compute requests on the solver's request stream. The stream
// is the whole contract with the engine: once XADD succeeds the job is out of
// our hands until a result message comes back.
type Publisher struct {
	rdb    *rd.Client
	stream string
}

func NewPublisher(rdb *rd.Client, stream string) *Publisher {
	return &Publisher{rdb: rdb, stream: stream}
}

// PublishCompute enqueues one job. The message id doubles as an idempotency
// key should the solver ever see a duplicate.
func (p *Publisher) PublishCompute(ctx context.Context, compute *models.Compute, order *models.Order) error {
	msg := ComputeRequest{
		MessageID:           uuid.NewString(),
		ComputeID:           compute.ID,
		AccountID:           compute.AccountID,
		OrderID:             order.ID,
		DestinationSnapshot: json.RawMessage(order.DestinationSnapshot),
		VehicleSnapshot:     json.RawMessage(order.VehicleSnapshot),
		Data:                json.RawMessage(compute.Data),
	}
	if err := msg.Validate(); err != nil {
		return err
	}
	b, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return p.rdb.XAdd(ctx, &rd.XAddArgs{
		Stream: p.stream,
		Values: map[string]interface{}{"payload": string(b)},
	}).Err()
}
