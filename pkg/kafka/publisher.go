package kafka

import (
	"context"
	"strconv"
	"time"

	"github.com/Astemirdum/library-circulation/pkg/circuit_breaker"
	"github.com/IBM/sarama"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Publisher interface {
	Publish(ctx context.Context, event EventCirculation) error
}

type producerPublisher struct {
	producer sarama.SyncProducer
	topic    string
	cb       circuit_breaker.CircuitBreaker
	log      *zap.Logger
}

// NewPublisher sends events keyed by book so that one book's history stays ordered within a partition.
func NewPublisher(producer sarama.SyncProducer, topic string, log *zap.Logger) Publisher {
	if topic == "" {
		topic = CirculationTopic
	}
	return &producerPublisher{
		producer: producer,
		topic:    topic,
		cb:       circuit_breaker.New(10, 30*time.Second, 0.5, 3),
		log:      log.Named("publisher"),
	}
}

func (p *producerPublisher) Publish(ctx context.Context, event EventCirculation) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "marshal event")
	}
	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(strconv.FormatInt(event.BookID, 10)),
		Value: sarama.ByteEncoder(data),
	}
	return p.cb.Call(func() error {
		partition, offset, err := p.producer.SendMessage(msg)
		if err != nil {
			return errors.Wrap(err, "producer.SendMessage")
		}
		p.log.Debug("event published",
			zap.String("type", string(event.EventType)),
			zap.Int32("partition", partition),
			zap.Int64("offset", offset))
		return nil
	})
}

type nopPublisher struct{}

// NopPublisher drops events, used when Kafka is disabled.
func NopPublisher() Publisher { return nopPublisher{} }

func (nopPublisher) Publish(context.Context, EventCirculation) error { return nil }
