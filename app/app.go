package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/bookshare/bookshare-service/config"
	"github.com/bookshare/bookshare-service/internal/handler"
	"github.com/bookshare/bookshare-service/internal/repository"
	"github.com/bookshare/bookshare-service/internal/server"
	"github.com/bookshare/bookshare-service/internal/service"
	"github.com/bookshare/bookshare-service/migrations"
	"github.com/bookshare/bookshare-service/pkg/kafka"
	"github.com/bookshare/bookshare-service/pkg/logger"
	"github.com/bookshare/bookshare-service/pkg/postgres"
)

func Run(cfg *config.Config) {
	log := logger.NewLogger(cfg.Log, "bookshare")
	db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		log.Fatal("db init", zap.Error(err))
	}
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		log.Fatal("repo", zap.Error(err))
	}
	cache := repository.NewCache(repository.NewRedisClient(cfg.Redis, log), log)

	producer, err := kafka.NewProducer(cfg.Kafka)
	if err != nil {
		log.Fatal("kafka.NewProducer", zap.Error(err))
	}
	metadata := service.NewMetadataClient(log, cfg.Metadata.BaseURL)
	svc := service.NewService(repo, cache, service.NewEnqueuer(producer), metadata, cfg.Auth, log)

	consumer, err := kafka.NewConsumer(cfg.Kafka, kafka.NotificationConsumerGroup)
	if err != nil {
		log.Fatal("kafka.NewConsumer", zap.Error(err))
	}
	consumeCtx, consumeCancel := context.WithCancel(context.Background())
	go kafka.Consume(consumeCtx, consumer, handler.NewConsumer(svc.StoreNotification, log), log, kafka.NotificationTopic)

	h := handler.New(handler.Services{
		Auth:          svc,
		Books:         svc,
		Borrows:       svc,
		Reviews:       svc,
		Notifications: svc,
		Messages:      svc,
		Communities:   svc,
		Metadata:      svc,
	}, cfg.Auth.Secret, log)
	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	go func() {
		if err := srv.Run(); err != nil {
			log.Error("server run", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))

	closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err = srv.Stop(closeCtx); err != nil {
		log.DPanic("srv.Stop", zap.Error(err))
	}
	consumeCancel()
	if err = consumer.Close(); err != nil {
		log.Error("consumer.Close", zap.Error(err))
	}
	if err = producer.Close(); err != nil {
		log.Error("producer.Close", zap.Error(err))
	}
	db.Close()
	log.Info("Graceful shutdown finished")
}
