package commands

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"hotel-frontdesk/config"
	"hotel-frontdesk/events"
	"hotel-frontdesk/logger"
	"hotel-frontdesk/services"
	"hotel-frontdesk/store"
)

// app is the wiring shared by every command.
type app struct {
	cfg     config.Config
	log     *zap.Logger
	desk    *services.FrontDeskService
	closers []io.Closer
}

func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	log, err := logger.New(cfg.LogLevel, cfg.LogFormat, "frontdesk")
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	a := &app{cfg: cfg, log: log}
	st, err := a.openStore(ctx)
	if err != nil {
		a.Close()
		return nil, err
	}

	var publisher events.Publisher = events.NopPublisher{}
	if cfg.AMQPURL != "" {
		p := events.NewAMQPPublisher(cfg.AMQPURL, cfg.AMQPQueue)
		a.closers = append(a.closers, p)
		publisher = p
		log.Info("stay events enabled", zap.String("queue", cfg.AMQPQueue))
	}

	a.desk = services.NewFrontDeskService(st, services.FrontDeskOptions{
		Publisher: publisher,
		Logger:    log,
	})
	return a, nil
}

func (a *app) openStore(ctx context.Context) (store.Store, error) {
	switch a.cfg.StoreDriver {
	case config.DriverMemory:
		a.log.Warn("using in-memory store; state is lost on exit")
		return store.NewMemoryStore(), nil
	case config.DriverRedis:
		client, err := config.NewRedisClient(ctx, a.cfg)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, client)
		return store.NewRedisStore(client, a.cfg.StateKey), nil
	}

	db, err := config.ConnectDatabase(a.cfg, a.log)
	if err != nil {
		return nil, err
	}
	if sqlDB, err := db.DB(); err == nil {
		a.closers = append(a.closers, sqlDB)
	}
	st, err := store.NewGormStore(db, a.cfg.StateKey)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate state table: %w", err)
	}
	a.log.Info("database connection established", zap.String("driver", a.cfg.StoreDriver))
	return st, nil
}

func (a *app) seedOptions() services.SeedOptions {
	return services.SeedOptions{
		HotelName:     a.cfg.HotelName,
		VATRate:       a.cfg.VATRate,
		AdminPassword: a.cfg.AdminPassword,
	}
}

func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil {
			a.log.Warn("close failed", zap.Error(err))
		}
	}
	_ = a.log.Sync()
}
