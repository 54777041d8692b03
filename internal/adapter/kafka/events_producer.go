package kafka

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/serael/catalog/internal/core/domain"
	"github.com/serael/catalog/internal/core/port"
	"github.com/serael/catalog/pkg/schema"
	"github.com/twmb/franz-go/pkg/kgo"
)

var _ port.EventsProducer = (*EventsProducer)(nil)

// EventsProducer publishes applied catalog mutations, keyed by product
// id so one product's events stay ordered within a partition.
type EventsProducer struct {
	cl      ProducerClient
	encoder Encoder
}

func NewEventsProducer(opts ...ProducerOpt) (EventsProducer, error) {
	const op = "NewEventsProducer"

	if len(opts) != 2 {
		panic(fmt.Errorf("%s: %w", op, ErrTooFewOpts)) // develop mistake
	}

	var options producerOpts
	for _, opt := range opts {
		if err := opt(&options); err != nil {
			return EventsProducer{}, fmt.Errorf("%s: %w", op, err)
		}
	}
	return EventsProducer{options.cl, options.encoder}, nil
}

func (p EventsProducer) Close() {
	const op = "EventsProducer.Close"
	log := slog.With("op", op)
	log.Info("closing producer...")
	p.cl.Close()
	log.Info("producer is closed")
}

func (p EventsProducer) ProduceEvents(
	ctx context.Context, events []domain.CatalogEvent,
) error {
	const op = "EventsProducer.ProduceEvents"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	rs, err := p.createRecords(events)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := p.produce(ctx, rs); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (p EventsProducer) createRecords(
	events []domain.CatalogEvent,
) (rs []*kgo.Record, err error) {
	const op = "EventsProducer.createRecords"

	for _, e := range events {
		s := p.toSchema(e)
		v, err := p.encoder.Encode(s)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		key := []byte(strconv.FormatInt(s.ProductID, 10))
		rs = append(rs, &kgo.Record{Key: key, Value: v})
	}

	return rs, nil
}

func (p EventsProducer) produce(
	ctx context.Context, rs []*kgo.Record,
) error {
	const op = "EventsProducer.produce"
	res := p.cl.ProduceSync(ctx, rs...)
	if err := res.FirstErr(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (EventsProducer) toSchema(e domain.CatalogEvent) (s schema.CatalogEventV1) {
	s.ProductID = e.ProductID
	s.Action = e.Action
	s.OccurredAt = e.OccurredAt
	return s
}
