package cmd

import (
	"context"
	"fmt"

	"lottotrack/bot"
	"lottotrack/config"
	"lottotrack/database"
	"lottotrack/events"
	"lottotrack/metrics"
	"lottotrack/repository"
	"lottotrack/service"

	log "github.com/sirupsen/logrus"
)

// app holds the wired collaborators shared by the server and the CLI commands
type app struct {
	db         *database.DB
	eventBus   *events.Bus
	notifier   *bot.Notifier
	uowFactory service.UnitOfWorkFactory

	userService      service.UserService
	lottoService     service.LottoService
	statService      service.StatService
	recommendService service.RecommendService
	importService    service.ImportService
}

func newApp(ctx context.Context, cfg *config.Config) (*app, error) {
	log.Info("Connecting to database...")
	db, err := database.NewConnection(ctx, cfg.GetDatabaseURL())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	log.Info("Database connection established successfully")

	eventBus := events.NewBus()
	metrics.Subscribe(eventBus)

	uowFactory := repository.NewUnitOfWorkFactory(db, eventBus)

	a := &app{
		db:               db,
		eventBus:         eventBus,
		uowFactory:       uowFactory,
		userService:      service.NewUserService(uowFactory),
		lottoService:     service.NewLottoService(uowFactory, statSourceFactory(cfg), cfg.DrawsPerPage),
		statService:      service.NewStatService(uowFactory),
		recommendService: service.NewRecommendService(uowFactory),
		importService:    service.NewImportService(uowFactory),
	}

	if cfg.DiscordToken != "" {
		notifier, err := bot.New(bot.Config{Token: cfg.DiscordToken, ChannelID: cfg.DiscordChannelID}, eventBus)
		if err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to initialize Discord notifier: %w", err)
		}
		a.notifier = notifier
	} else {
		log.Info("DISCORD_TOKEN not set, Discord notifier disabled")
	}

	return a, nil
}

// statSourceFactory selects where pick analysis reads number stats from
func statSourceFactory(cfg *config.Config) service.StatSourceFactory {
	if cfg.AnalysisStatSource == config.StatSourceSynthetic {
		log.WithField("seed", cfg.SyntheticSeed).Warn("Pick analysis uses synthetic statistics")
		return service.SyntheticStatSources(cfg.SyntheticSeed)
	}
	return service.StoreStatSources()
}

// close waits for in-flight event handlers, then releases the notifier and database
func (a *app) close() {
	a.eventBus.Wait()

	if a.notifier != nil {
		if err := a.notifier.Close(); err != nil {
			log.WithError(err).Error("Error closing Discord notifier")
		}
	}

	log.Info("Closing database connection...")
	a.db.Close()
}
