package service

import (
	"context"
	"encoding/json"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"github.com/bookshare/bookshare-service/internal/model"
	"github.com/bookshare/bookshare-service/internal/repository"
	"github.com/bookshare/bookshare-service/pkg/auth"
	"github.com/bookshare/bookshare-service/pkg/kafka"
)

// Cache is the listing/counter cache surface. *repository.Cache satisfies it.
type Cache interface {
	GetBooks(ctx context.Context, filter model.BookFilter) (model.ListBooks, bool)
	SetBooks(ctx context.Context, filter model.BookFilter, list model.ListBooks)
	InvalidateBooks(ctx context.Context)
	GetUnread(ctx context.Context, userUid string) (int64, bool)
	SetUnread(ctx context.Context, userUid string, n int64)
	DropUnread(ctx context.Context, userUid string)
}

type Service struct {
	repo     repository.Repository
	cache    Cache
	enqueuer Enqueuer
	metadata *MetadataClient
	authCfg  auth.Config
	log      *zap.Logger
}

func NewService(repo repository.Repository, cache Cache, enqueuer Enqueuer, metadata *MetadataClient, authCfg auth.Config, log *zap.Logger) *Service {
	return &Service{
		repo:     repo,
		cache:    cache,
		enqueuer: enqueuer,
		metadata: metadata,
		authCfg:  authCfg,
		log:      log,
	}
}

type Enqueuer interface {
	Enqueue(topic string, v any) error
}

func NewEnqueuer(producer sarama.SyncProducer) Enqueuer {
	return &enqueuerImpl{producer: producer}
}

type enqueuerImpl struct {
	producer sarama.SyncProducer
}

func (q *enqueuerImpl) Enqueue(topic string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	msg := &sarama.ProducerMessage{Topic: topic, Value: sarama.StringEncoder(data)}
	if _, _, err = q.producer.SendMessage(msg); err != nil {
		return err
	}
	return nil
}

// notify publishes a notification event. Delivery is best effort: a broker
// hiccup must never fail the user action that produced the event.
func (s *Service) notify(userUid, kind string, payload map[string]any) {
	event := model.NotificationEvent{
		UserUid: userUid,
		Kind:    kind,
		Payload: payload,
	}
	if err := s.enqueuer.Enqueue(kafka.NotificationTopic, event); err != nil {
		s.log.Warn("notify enqueue", zap.String("kind", kind), zap.Error(err))
	}
}

// StoreNotification materialises a consumed event into a notifications row.
func (s *Service) StoreNotification(ctx context.Context, event model.NotificationEvent) error {
	if err := s.repo.InsertNotification(ctx, event); err != nil {
		return err
	}
	s.cache.DropUnread(ctx, event.UserUid)
	return nil
}
