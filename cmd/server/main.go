package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/habitd/habitd/internal/account"
	"github.com/habitd/habitd/internal/auth"
	"github.com/habitd/habitd/internal/habit"
	"github.com/habitd/habitd/internal/status"
	"github.com/habitd/habitd/pkg/config"
	"github.com/habitd/habitd/pkg/httpserver"
	"github.com/habitd/habitd/pkg/jwt"
	"github.com/habitd/habitd/pkg/logger"
	"github.com/habitd/habitd/pkg/mongo"
)

type appConfig struct {
	Name        string   `env:"APP_NAME" envDefault:"Habit Tracker API"`
	Version     string   `env:"APP_VERSION" envDefault:"1.0.0"`
	CORSOrigins []string `env:"CORS_ORIGINS" envDefault:"*"`
}

func main() {
	var (
		appCfg    appConfig
		logCfg    logger.Config
		mongoCfg  mongo.Config
		authCfg   auth.Config
		serverCfg httpserver.Config
	)
	config.MustLoad(&appCfg)
	config.MustLoad(&logCfg)
	config.MustLoad(&mongoCfg)
	config.MustLoad(&authCfg)
	config.MustLoad(&serverCfg)

	log := logger.New(
		logger.WithConfig(logCfg),
		logger.WithService("habitd"),
	)
	logger.SetAsDefault(log)

	ctx := context.Background()

	client, db, err := mongo.NewWithDatabase(ctx, mongoCfg)
	if err != nil {
		log.Error("mongodb connection failed", logger.Error(err))
		os.Exit(1)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error("mongodb disconnect failed", logger.Error(err))
		}
	}()
	log.Info("connected to mongodb", slog.String("database", mongoCfg.DBName))

	codec, err := jwt.NewFromString(authCfg.SigningKey)
	if err != nil {
		log.Error("token codec init failed", logger.Error(err))
		os.Exit(1)
	}

	accountStore := account.NewStore(db)
	habitStore := habit.NewStore(db)
	statusStore := status.NewStore(db)

	if err := accountStore.EnsureIndexes(ctx); err != nil {
		log.Warn("account index setup failed", logger.Error(err))
	}
	if err := habitStore.EnsureIndexes(ctx); err != nil {
		log.Warn("habit index setup failed", logger.Error(err))
	}

	authSvc := auth.NewService(accountStore, codec,
		auth.WithTokenTTLs(authCfg.AccessTTL, authCfg.RefreshTTL),
		auth.WithBcryptCost(authCfg.BcryptCost),
		auth.WithLogger(log.With(logger.Component("auth"))),
	)
	habitSvc := habit.NewService(habitStore,
		habit.WithLogger(log.With(logger.Component("habit"))),
	)

	router := newRouter(routerDeps{
		cfg:       appCfg,
		log:       log,
		authSvc:   authSvc,
		habitSvc:  habitSvc,
		statusMod: status.NewModule(statusStore, status.WithLogger(log.With(logger.Component("status")))),
		readiness: mongo.Healthcheck(client),
	})

	srv := httpserver.NewFromConfig(serverCfg, httpserver.WithLogger(log))
	if err := srv.Run(ctx, router); err != nil {
		log.Error("server stopped with error", logger.Error(err))
		os.Exit(1)
	}
}
