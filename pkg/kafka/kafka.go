package kafka

import (
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
)

const CirculationTopic = "circulation"

type Config struct {
	Addrs  []string `yaml:"addrs" envconfig:"KAFKA_ADDRS" default:"localhost:9092"`
	Enable bool     `yaml:"enable" envconfig:"KAFKA_ENABLE"`
	Topic  string   `yaml:"topic" envconfig:"KAFKA_TOPIC" default:"circulation"`
}

func NewSyncProducer(cfg Config) (sarama.SyncProducer, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Producer.RequiredAcks = sarama.WaitForAll
	defaultCfg.Producer.Return.Successes = true
	defaultCfg.Producer.Retry.Max = 3
	defaultCfg.Producer.Timeout = 5 * time.Second

	return sarama.NewSyncProducer(cfg.Addrs, defaultCfg)
}

type EventType string

const (
	EventReserved           EventType = "RESERVED"
	EventReservationCancel  EventType = "RESERVATION_CANCELLED"
	EventReservationDeleted EventType = "RESERVATION_DELETED"
	EventIssued             EventType = "ISSUED"
	EventReturned           EventType = "RETURNED"
	EventCopyStatus         EventType = "COPY_STATUS_CHANGED"
)

type EventCirculation struct {
	ID            uuid.UUID `json:"id"`
	Timestamp     time.Time `json:"timestamp"`
	EventType     EventType `json:"eventType"`
	UserID        int64     `json:"userId,omitempty"`
	StaffID       int64     `json:"staffId,omitempty"`
	BookID        int64     `json:"bookId"`
	CopyID        int64     `json:"copyId,omitempty"`
	ReservationID int64     `json:"reservationId,omitempty"`
	RentalID      int64     `json:"rentalId,omitempty"`
	CopyStatus    string    `json:"copyStatus,omitempty"`
}

func NewEvent(eventType EventType, ts time.Time) EventCirculation {
	return EventCirculation{
		ID:        uuid.New(),
		Timestamp: ts.UTC(),
		EventType: eventType,
	}
}
