package main

import (
	"context"
	_ "embed"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-combat/internal/config"
	"github.com/KirkDiggler/rpg-combat/internal/engine"
	"github.com/KirkDiggler/rpg-combat/internal/engine/achievements"
	"github.com/KirkDiggler/rpg-combat/internal/engine/effects"
	"github.com/KirkDiggler/rpg-combat/internal/engine/professions"
	"github.com/KirkDiggler/rpg-combat/internal/engine/spells"
	"github.com/KirkDiggler/rpg-combat/internal/errors"
	"github.com/KirkDiggler/rpg-combat/internal/orchestrators/combat"
	"github.com/KirkDiggler/rpg-combat/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-combat/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-combat/internal/redis"
	"github.com/KirkDiggler/rpg-combat/internal/repositories/battles"
	"github.com/KirkDiggler/rpg-combat/internal/repositories/statistics"
	"github.com/KirkDiggler/rpg-combat/internal/telemetry"
)

//go:embed roster.yaml
var defaultRoster []byte

// app wires the combat service from settings
type app struct {
	engine      engine.Engine
	book        *spells.Book
	professions *professions.Registry
	service     combat.Service
	closers     []func() error
}

func newApp(s *config.Settings) (*app, error) {
	a := &app{professions: professions.Default()}

	var err error
	a.engine, err = engine.New(s.EngineConfig())
	if err != nil {
		return nil, errors.Wrap(err, "failed to create engine")
	}

	registry := effects.Default()
	a.book, err = spells.Default(registry)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load spell book")
	}

	repo, err := a.statistics(s)
	if err != nil {
		return nil, err
	}
	sink, err := telemetry.NewSink(&telemetry.Config{Repository: repo})
	if err != nil {
		return nil, err
	}

	caster, err := spells.NewCaster(&spells.Config{
		Engine:                a.engine,
		Effects:               registry,
		Roller:                dice.DefaultRoller,
		IDGenerator:           idgen.NewUUID("effect"),
		RequireAffordableCost: s.RequireAffordableCost,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create caster")
	}

	a.service, err = combat.NewOrchestrator(&combat.Config{
		Engine:       a.engine,
		Caster:       caster,
		Book:         a.book,
		Achievements: achievements.Default(),
		Telemetry:    sink,
		Repository:   battles.NewInMemory(),
		EventBus:     events.NewBus(),
		Roller:       dice.DefaultRoller,
		IDGenerator:  idgen.NewUUID("battle"),
		Clock:        clock.New(),
	})
	if err != nil {
		a.Close()
		return nil, errors.Wrap(err, "failed to create combat service")
	}

	return a, nil
}

func (a *app) statistics(s *config.Settings) (statistics.Repository, error) {
	if s.Telemetry.Backend != config.BackendRedis {
		return statistics.NewInMemoryRepository(), nil
	}

	client, err := redis.NewClient(s.Telemetry.RedisAddr, &redis.Options{DB: s.Telemetry.RedisDB})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create redis client")
	}
	a.closers = append(a.closers, client.Close)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		a.Close()
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "redis is unreachable").
			WithMeta("redis_addr", s.Telemetry.RedisAddr)
	}

	repo, err := statistics.NewRedisRepository(&statistics.Config{
		Client: client,
		TTL:    s.Telemetry.CounterTTL,
	})
	if err != nil {
		a.Close()
		return nil, err
	}
	return repo, nil
}

// Close releases backend connections
func (a *app) Close() {
	for _, closeFn := range a.closers {
		_ = closeFn()
	}
	a.closers = nil
}

// loadRoster reads path, or the bundled roster when path is empty
func loadRoster(path string) (*config.Roster, error) {
	if path == "" {
		return config.ParseRoster(defaultRoster)
	}
	return config.LoadRoster(path)
}
