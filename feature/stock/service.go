package stock

import (
	"context"

	"stock-sync/core/logger"
	"stock-sync/core/reconcile"
	"stock-sync/core/remote"

	"go.uber.org/zap"
)

// SessionOpener opens a remote inventory session.
type SessionOpener interface {
	Open(ctx context.Context, creds remote.Credentials) (reconcile.Client, error)
}

// Service runs stock syncs: read the source, open a session, reconcile.
type Service struct {
	source   *Source
	sessions SessionOpener
	pacer    reconcile.Pacer
	logger   *zap.Logger
}

// NewService creates a new sync service. A nil pacer sleeps for real.
func NewService(source *Source, sessions SessionOpener, pacer reconcile.Pacer, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		source:   source,
		sessions: sessions,
		pacer:    pacer,
		logger:   logger,
	}
}

// Sync performs one run. The source is read completely before any remote call.
func (s *Service) Sync(ctx context.Context, cfg Config, creds remote.Credentials) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, _ := logger.WithRunID(s.logger)
	log.Info("Starting stock sync",
		zap.String("source", cfg.Source),
		zap.String("location_id", cfg.LocationID),
		zap.Bool("dry_run", cfg.DryRun),
	)

	desired, err := s.source.WithLogger(log).ReadDesiredStock(ctx, cfg.Source)
	if err != nil {
		return err
	}

	client, err := s.sessions.Open(ctx, creds)
	if err != nil {
		return err
	}
	log.Info("Opened GraphQL session", zap.String("host", creds.Host))

	return reconcile.NewEngine(client, s.pacer, log).Run(ctx, desired, cfg.Options())
}
