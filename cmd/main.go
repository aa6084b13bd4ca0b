package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"contentd/internal/config"
	httpserver "contentd/internal/server/http"
	"contentd/internal/strapi"
	"contentd/pkg/cache"
	"contentd/pkg/cfg"
	"contentd/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	env := cfg.Env()

	cleanup := logger.Setup(env)
	defer cleanup()

	configPath := cfg.String("APP_CONFIG", "config.yaml")

	conf, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if cfg.IsDev() {
		if pretty, err := conf.Pretty(); err == nil {
			log.Printf("[contentd] config:\n%s", pretty)
		}
	}

	store, cacheCleanup, err := httpserver.SetupCache(conf.Cache)
	if err != nil {
		log.Fatalf("failed to init cache: %v", err)
	}
	defer cacheCleanup()

	timeout, err := time.ParseDuration(conf.Strapi.Timeout)
	if err != nil {
		log.Printf("[contentd] invalid strapi timeout %q, using default: %v", conf.Strapi.Timeout, err)
		timeout = 0
	}

	var opts []strapi.Option
	if store != nil {
		opts = append(opts, strapi.WithCache(store, cache.ParseTTL(conf.Cache.TTL)))
	}
	client := strapi.New(strapi.Config{
		BaseURL: conf.Strapi.URL,
		Token:   conf.Strapi.ReadToken,
		Timeout: timeout,
	}, opts...)
	if !client.Enabled() {
		log.Printf("[contentd] strapi url not configured, serving empty content")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := httpserver.New(conf, client, store)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start(ctx)
	}()

	select {
	case <-ctx.Done():
		// Start returns once shutdown has finished
		if err := <-errCh; err != nil {
			log.Printf("[contentd] shutdown error: %v", err)
		}
	case err := <-errCh:
		if err != nil {
			log.Printf("[contentd] server error: %v", err)
		}
	}
}
