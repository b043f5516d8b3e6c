package service

import (
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/sellaya/trucktrack/internal/config"
	"github.com/sellaya/trucktrack/internal/messaging"
	"github.com/sellaya/trucktrack/internal/ocr"
	"github.com/sellaya/trucktrack/internal/repository"
	"github.com/sellaya/trucktrack/internal/storage"
)

type Service struct {
	Ingest    IngestService
	Rates     RatesService
	Scheduler SchedulerService
	Health    HealthService
}

func NewService(
	cfg *config.Config,
	repo repository.Repository,
	store storage.ReceiptStore,
	redisClient *redis.Client,
	logger *zap.Logger,
) *Service {
	metaClient := messaging.NewMetaClient(cfg.Meta)
	twilioClient := messaging.NewTwilioClient(cfg.Twilio)
	dispatcher := messaging.NewDispatcher(logger, twilioClient, metaClient)
	ocrClient := ocr.NewClient(&cfg.OCR)

	ratesService := NewRatesService(&cfg.Rates, redisClient, logger)
	ingestService := NewIngestService(cfg, repo, store, metaClient, ocrClient, dispatcher, ratesService, logger)
	schedulerService := NewSchedulerService(cfg, ratesService, logger)
	healthService := NewHealthService(repo, redisClient, schedulerService, ingestService)

	return &Service{
		Ingest:    ingestService,
		Rates:     ratesService,
		Scheduler: schedulerService,
		Health:    healthService,
	}
}
