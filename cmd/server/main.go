// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal packages.
package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"velos/internal/audit"
	auditkafka "velos/internal/audit/kafka"
	"velos/internal/auth"
	"velos/internal/evidence"
	evidencestore "velos/internal/evidence/store"
	"velos/internal/ledger"
	"velos/internal/pipeline"
	"velos/internal/platform/config"
	"velos/internal/platform/httpserver"
	"velos/internal/platform/logger"
	"velos/internal/platform/metrics"
	"velos/internal/stage/gatekeeper"
	"velos/internal/stage/inquisitor"
	"velos/internal/stage/validator"
	httptransport "velos/internal/transport/http"
)

func main() {
	log := logger.New()

	cfg, err := config.Load()
	if err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		auditStore audit.Store
		blockStore ledger.Store
	)
	if cfg.PostgresDSN != "" {
		db, err := sql.Open("postgres", cfg.PostgresDSN)
		if err != nil {
			log.Error("postgres open failed", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		if err := db.PingContext(ctx); err != nil {
			log.Error("postgres unreachable", "error", err)
			os.Exit(1)
		}

		auditPG := audit.NewPostgresStore(db)
		ledgerPG := ledger.NewPostgresStore(db)
		if err := auditPG.Migrate(ctx); err != nil {
			log.Error("audit migration failed", "error", err)
			os.Exit(1)
		}
		if err := ledgerPG.Migrate(ctx); err != nil {
			log.Error("ledger migration failed", "error", err)
			os.Exit(1)
		}
		auditStore = auditPG
		blockStore = ledgerPG
		log.Info("using postgres stores")
	} else {
		auditStore = audit.NewInMemoryStore()
		blockStore = ledger.NewInMemoryStore()
		log.Warn("using in-memory stores, data is lost on restart")
	}

	var source evidence.Source = evidencestore.NewInMemoryStore()
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := client.Ping(ctx).Err(); err != nil {
			log.Error("redis unreachable", "addr", cfg.RedisAddr, "error", err)
			os.Exit(1)
		}
		defer client.Close()
		source = evidencestore.NewRedisCache(client, source)
		log.Info("evidence query cache enabled", "addr", cfg.RedisAddr)
	}

	publisher := audit.NewPublisher(auditStore, log)
	if len(cfg.KafkaBrokers) > 0 {
		sink, err := auditkafka.New(ctx, cfg.KafkaBrokers, cfg.KafkaTopic)
		if err != nil {
			log.Error("kafka sink init failed", "brokers", cfg.KafkaBrokers, "error", err)
			os.Exit(1)
		}
		defer sink.Close()

		outbox := make(chan audit.Event, 256)
		publisher = publisher.WithOutbox(outbox)
		worker := audit.NewWorker(sink, outbox, log)
		go func() {
			if err := worker.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				log.Error("audit worker stopped", "error", err)
			}
		}()
		log.Info("audit kafka sink enabled", "topic", cfg.KafkaTopic)
	}

	m := metrics.New()
	manager := ledger.NewManager(blockStore, ledger.HashSigner{SignerID: cfg.SignerID})

	svc := pipeline.NewService(
		gatekeeper.New(log),
		validator.New(source, cfg.PassThreshold, log),
		inquisitor.New(source, cfg.AuthenticityThreshold, log),
		source,
		manager,
		blockStore,
		publisher,
		auditStore,
		m,
		log,
		pipeline.Options{
			MinAnswers:   cfg.MinAnswers,
			StageTimeout: cfg.StageTimeout,
		},
	)

	jwtSvc := auth.NewJWTService(cfg.JWTSigningKey, "velos", "velos-api")
	handler := httptransport.NewHandler(svc, jwtSvc, cfg.OperatorKeyHash, log)
	router := httptransport.NewRouter(handler, auth.RequireOperator(jwtSvc, log))

	srv := httpserver.New(cfg.Addr, router)
	go func() {
		log.Info("server listening", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
}
