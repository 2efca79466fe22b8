package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lucaspalermo/defesapix/config"
	"github.com/lucaspalermo/defesapix/internal/cache"
	"github.com/lucaspalermo/defesapix/internal/gateway"
	"github.com/lucaspalermo/defesapix/internal/handlers"
	"github.com/lucaspalermo/defesapix/internal/metrics"
	"github.com/lucaspalermo/defesapix/internal/models"
	"github.com/lucaspalermo/defesapix/internal/publisher"
	"github.com/lucaspalermo/defesapix/internal/reconciler"
	"github.com/lucaspalermo/defesapix/internal/repository/posgrest"
	"github.com/lucaspalermo/defesapix/internal/service"
	"github.com/lucaspalermo/defesapix/internal/subscriber"
	"github.com/sirupsen/logrus"
)

const (
	shutdownTimeout = 10 * time.Second
	visitorIdle     = 10 * time.Minute
)

type App struct {
	config *config.Config
	Router *gin.Engine

	ctx    context.Context
	cancel context.CancelFunc

	publisher     *publisher.KafkaPublisher
	consumer      *subscriber.KafkaConsumer
	sessions      *reconciler.Registry
	confirmations *service.ConfirmationService
	limiter       *handlers.IPRateLimiter
}

func (a *App) Initialize(cfg *config.Config) {
	a.config = cfg
	cfg.APP.ConfigureLogger()
	a.ctx, a.cancel = context.WithCancel(context.Background())

	db, err := cfg.DB.GormConnect()
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&models.ChargeRecord{}); err != nil {
		log.Fatalf("failed to auto migrate: %v", err)
	}

	chargeRepo := posgrest.NewChargeRepository(db)
	a.publisher = publisher.NewKafkaPublisher(cfg.BrokerList(), cfg.PublishTopicList(), cfg.GetRetryConfig())

	gatewayClient := gateway.NewClient(
		cfg.Gateway.BaseURL,
		cfg.Gateway.APIKey,
		gateway.WithHTTPClient(&http.Client{Timeout: cfg.Gateway.Timeout}),
		gateway.WithRateLimit(cfg.Gateway.RateLimit, cfg.Gateway.RateBurst),
	)

	a.confirmations = service.NewConfirmationService(chargeRepo, a.publisher)
	a.sessions = reconciler.NewRegistry(
		gatewayClient,
		a.confirmations,
		reconciler.WithPollInterval(cfg.Reconciler.PollInterval),
		reconciler.OnPaid(func(chargeID string, source models.ConfirmationSource) {
			logrus.WithFields(logrus.Fields{"charge_id": chargeID, "source": source}).Info("access unlocked")
		}),
		reconciler.OnExpired(func(chargeID string) {
			logrus.WithField("charge_id", chargeID).Info("charge window closed")
		}),
	)
	a.confirmations.Sessions = a.sessions

	incidentService := service.NewIncidentService(a.publisher, cfg.APP.ENV)
	chargeService := service.NewChargeService(chargeRepo, gatewayClient, a.sessions, a.confirmations, a.publisher)

	var deduper handlers.Deduper
	if client := cfg.Redis.Client(); client != nil {
		deduper = cache.NewWebhookDeduper(client, cfg.Redis.DedupTTL)
	}

	incidentHandler := handlers.NewIncidentHandler(incidentService)
	chargeHandler := handlers.NewChargeHandler(chargeService)
	webhookHandler := handlers.NewWebhookHandler(a.confirmations, deduper, a.publisher)
	a.limiter = handlers.NewIPRateLimiter(cfg.Gateway.WebhookRateLimit, cfg.Gateway.WebhookRateBurst)

	metrics.RegisterMetrics()

	if !cfg.APP.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	a.Router = gin.Default()
	a.Router.Use(gin.Recovery())
	a.RegisterRoutes(incidentHandler, chargeHandler, webhookHandler)

	a.initSubscribers(webhookHandler)
	go a.sweepOverdue()
	go a.sweepVisitors()
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", a.config.APP.PORT),
		Handler: a.Router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			panic(err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	logrus.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logrus.Errorf("error shutting down server: %s", err.Error())
	}
	a.Close()
}

// Close stops the background loops. Pending charges keep their durable
// record and are picked up by the overdue sweep or a later status read.
func (a *App) Close() {
	a.cancel()
	a.sessions.StopAll()
	a.consumer.Wait()
	if err := a.consumer.Close(); err != nil {
		logrus.Errorf("error closing consumer: %s", err.Error())
	}
	if err := a.publisher.Close(); err != nil {
		logrus.Errorf("error closing publisher: %s", err.Error())
	}
}

func (a *App) initSubscribers(webhookHandler *handlers.WebhookHandler) {
	a.consumer = subscriber.NewMultiTopicConsumer(
		a.config.BrokerList(),
		a.config.SubscriberTopicList(),
		a.config.Kafka.WebhookConsumerGroup,
		a.publisher,
		a.config.GetRetryConfig(),
	)

	a.consumer.Listen(a.ctx, func(ctx context.Context, topic string, value []byte) error {
		logrus.WithField("topic", topic).Debug("received message")
		return webhookHandler.HandleEvents(ctx, topic, value)
	})
}

func (a *App) sweepOverdue() {
	ticker := time.NewTicker(a.config.Reconciler.SweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-a.ctx.Done():
			return
		case <-ticker.C:
			n, err := a.confirmations.ExpireOverdue(a.ctx)
			if err != nil {
				logrus.Errorf("error expiring overdue charges: %s", err.Error())
				continue
			}
			if n > 0 {
				logrus.Infof("expired %d overdue charges", n)
			}
		}
	}
}

func (a *App) sweepVisitors() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-a.ctx.Done():
			return
		case <-ticker.C:
			a.limiter.Sweep(visitorIdle)
		}
	}
}
