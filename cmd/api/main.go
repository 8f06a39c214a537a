package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/backoffice-api/infrastructure/integrator/store"
	"github.com/vfg2006/backoffice-api/infrastructure/integrator/store/storeclient"
	"github.com/vfg2006/backoffice-api/internal/api"
	"github.com/vfg2006/backoffice-api/internal/config"
	"github.com/vfg2006/backoffice-api/internal/scheduler"
	"github.com/vfg2006/backoffice-api/internal/usecases/analyzing"
	"github.com/vfg2006/backoffice-api/internal/usecases/authenticating"
	"github.com/vfg2006/backoffice-api/internal/usecases/cataloging"
	"github.com/vfg2006/backoffice-api/internal/usecases/customering"
	"github.com/vfg2006/backoffice-api/internal/usecases/ordering"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	storeClient := storeclient.NewClient(cfg)
	storeService := store.New(cfg, storeClient)

	authenticator := authenticating.NewService(cfg, storeService)
	analyzerService := analyzing.NewService(cfg, storeService)
	orderService := ordering.NewService(cfg, storeService)
	catalogService := cataloging.NewService(cfg, storeService)
	customerService := customering.NewService(cfg, storeService)

	snapshotRefreshService := scheduler.NewSnapshotRefreshService(analyzerService, cfg)
	if err := snapshotRefreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar a cron de reaquecimento das visões")
	} else {
		logrus.Info("Cron de reaquecimento das visões iniciada com sucesso")
	}

	server, err := api.New(
		cfg,
		analyzerService,
		orderService,
		catalogService,
		customerService,
		authenticator,
		snapshotRefreshService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
