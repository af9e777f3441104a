package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"cora/internal/admin"
	adminhandler "cora/internal/admin/handler"
	"cora/internal/allowlist"
	allowlisthandler "cora/internal/allowlist/handler"
	"cora/internal/asset"
	assethandler "cora/internal/asset/handler"
	assetmetrics "cora/internal/asset/metrics"
	"cora/internal/audit"
	audithandler "cora/internal/audit/handler"
	"cora/internal/classifier"
	"cora/internal/docstore"
	"cora/internal/enforcement"
	enforcementhandler "cora/internal/enforcement/handler"
	enforcementmetrics "cora/internal/enforcement/metrics"
	"cora/internal/incident"
	incidenthandler "cora/internal/incident/handler"
	incidentmetrics "cora/internal/incident/metrics"
	"cora/internal/platform/config"
	"cora/internal/platform/httpserver"
	"cora/internal/platform/logger"
	platformredis "cora/internal/platform/redis"
	"cora/internal/qrimage"
	"cora/internal/scan"
	scanhandler "cora/internal/scan/handler"
	httptransport "cora/internal/transport/http"
	"cora/pkg/platform/middleware/auth"
)

// main wires dependencies and owns the process lifecycle. Business logic
// lives in the internal module packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.LogLevel)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, cleanup, err := newDocStore(ctx, cfg, log)
	if err != nil {
		log.Error("document store init failed", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	auditor := audit.NewPublisher(256, log)
	auditStore := audit.NewMemoryStore(500)

	var sink audit.Sink
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaSink, err := audit.NewKafkaSink(ctx, cfg.Kafka.Brokers, cfg.Kafka.Topic)
		if err != nil {
			log.Error("kafka audit sink init failed", "error", err)
			os.Exit(1)
		}
		defer kafkaSink.Close()
		sink = kafkaSink
		log.Info("audit events fanning out to kafka", "topic", cfg.Kafka.Topic)
	}
	auditWorker := audit.NewWorker(auditStore, sink, auditor.Events(), log)

	assetRepo := asset.NewRepository(store, log)
	assets := asset.NewService(assetRepo, qrimage.New(cfg.QRServiceBaseURL), assetmetrics.New(), auditor)

	trust := allowlist.NewService(allowlist.NewRepository(store, log), auditor)

	incidentRepo := incident.NewRepository(store, log)
	incidents := incident.NewService(
		incidentRepo, assets, trust, classifier.NewRules(), log, incidentmetrics.New(), auditor,
	)

	decisions := enforcement.NewService(incidentRepo, trust, log, enforcementmetrics.New(), auditor)
	scanner := scan.NewSimulator(incidents, cfg.Scan, log, auditor)
	resetter := admin.NewService(log, auditor, assets, incidents, trust)

	router := httptransport.NewRouter(httptransport.Deps{
		Logger:            log,
		Assets:            assethandler.New(assets, log),
		Incidents:         incidenthandler.New(incidents, log),
		Allowlist:         allowlisthandler.New(trust, log),
		Enforcement:       enforcementhandler.New(decisions, log),
		Scan:              scanhandler.New(scanner, log),
		Audit:             audithandler.New(auditStore, log),
		Admin:             adminhandler.New(resetter, log),
		ReviewerValidator: auth.NewHMACValidator(cfg.JWTSigningKey),
		AdminKeyHash:      cfg.AdminKeyHash,
	})

	srv := httpserver.New(cfg.Addr, router)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := auditWorker.Run(gctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		log.Info("starting cora server", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}

// newDocStore picks the persistence backend: Postgres when a DSN is set,
// Redis when a URL is set, in-memory otherwise.
func newDocStore(ctx context.Context, cfg config.Config, log *slog.Logger) (docstore.Store, func(), error) {
	if cfg.PostgresDSN != "" {
		pg, err := docstore.NewPostgres(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, nil, err
		}
		log.Info("documents stored in postgres")
		return pg, pg.Close, nil
	}

	if cfg.Redis.URL != "" {
		client, err := platformredis.New(cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		log.Info("documents stored in redis")
		return docstore.NewRedis(client.Client, "cora"), func() { _ = client.Close() }, nil
	}

	log.Info("documents stored in memory, data is lost on restart")
	return docstore.NewMemory(), func() {}, nil
}
