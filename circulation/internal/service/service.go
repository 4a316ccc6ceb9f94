package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Astemirdum/library-circulation/circulation/internal/repository"
	"github.com/Astemirdum/library-circulation/pkg/kafka"
)

const DefaultReservationTTL = 7 * 24 * time.Hour

type Service struct {
	repo           repository.Repository
	pub            kafka.Publisher
	log            *zap.Logger
	now            func() time.Time
	reservationTTL time.Duration
}

type Option func(s *Service)

func WithPublisher(pub kafka.Publisher) Option {
	return func(s *Service) {
		s.pub = pub
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func WithReservationTTL(ttl time.Duration) Option {
	return func(s *Service) {
		if ttl > 0 {
			s.reservationTTL = ttl
		}
	}
}

func NewService(repo repository.Repository, log *zap.Logger, opts ...Option) *Service {
	s := &Service{
		repo:           repo,
		pub:            kafka.NopPublisher(),
		log:            log.Named("service"),
		now:            time.Now,
		reservationTTL: DefaultReservationTTL,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) clock() time.Time {
	return s.now().UTC()
}

// publish is called after commit. A lost event is logged and never fails the request.
func (s *Service) publish(ctx context.Context, event kafka.EventCirculation) {
	if err := s.pub.Publish(ctx, event); err != nil {
		s.log.Warn("publish event",
			zap.String("type", string(event.EventType)),
			zap.Int64("bookId", event.BookID),
			zap.Error(err))
	}
}
