package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/storefront/internal/app"
	"github.com/vladislavdragonenkov/storefront/internal/version"
)

// Переменные окружения сервиса.
const (
	envHTTPAddr      = "STOREFRONT_HTTP_ADDR"
	envMetricsAddr   = "STOREFRONT_METRICS_ADDR"
	envStorageDriver = "STOREFRONT_STORAGE_DRIVER"
	envPostgresDSN   = "STOREFRONT_POSTGRES_DSN"
	envAutoMigrate   = "STOREFRONT_POSTGRES_AUTO_MIGRATE"
)

// setupLogger настраивает формат и уровень логирования для сервиса.
func setupLogger() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.SetLevel(log.InfoLevel)
}

// readConfig формирует конфигурацию приложения из переменных окружения.
func readConfig(lookup func(string) (string, bool)) app.Config {
	cfg := app.DefaultConfig()
	if v, ok := lookup(envHTTPAddr); ok && v != "" {
		cfg.HTTPAddr = v
	}
	if v, ok := lookup(envMetricsAddr); ok && v != "" {
		cfg.MetricsAddr = v
	}
	if v, ok := lookup(envStorageDriver); ok && v != "" {
		cfg.StorageDriver = v
	}
	if v, ok := lookup(envPostgresDSN); ok && v != "" {
		cfg.PostgresDSN = v
	}
	if v, ok := lookup(envAutoMigrate); ok && v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			log.WithField("value", v).Warnf("некорректное значение %s, ожидается bool", envAutoMigrate)
		} else {
			cfg.PostgresAutoMigrate = parsed
		}
	}
	return cfg
}

func main() {
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()
	if *showVersion {
		fmt.Println(version.String())
		return
	}

	setupLogger()
	cfg := readConfig(os.LookupEnv)
	if err := cfg.Validate(); err != nil {
		log.WithError(err).Fatal("некорректная конфигурация")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.WithFields(log.Fields{
		"http_addr":    cfg.HTTPAddr,
		"metrics_addr": cfg.MetricsAddr,
		"storage":      cfg.StorageDriver,
		"version":      version.GetVersion(),
	}).Info("запускаем storefront")

	if err := app.Run(ctx, cfg); err != nil && !errors.Is(err, context.Canceled) {
		log.WithError(err).Fatal("приложение завершилось с ошибкой")
	}

	log.Info("storefront остановлен")
}
