package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/RupeshSangoju/new-rephrase/internal/config"
	"github.com/RupeshSangoju/new-rephrase/internal/inference"
	"github.com/RupeshSangoju/new-rephrase/internal/logging"
	"github.com/RupeshSangoju/new-rephrase/internal/server"
)

func main() {
	configPath := flag.String("config", "", "path to config.yaml")
	useMock := flag.Bool("mock", false, "use mock paraphraser instead of the inference API")
	port := flag.Int("port", 0, "override listen port")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logging.GetLogger().Fatalf("config: %v", err)
	}
	if *port > 0 {
		cfg.Port = *port
	}

	level := logging.ParseLevel(cfg.LogLevel)
	if *debug {
		level = logrus.DebugLevel
	}
	log := logging.InitLogger(level, cfg.LogFormat)

	p := buildParaphraser(&cfg, *useMock, log)
	handler := server.SetupMux(p, cfg.Model)

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Infof("%s %s listening on %s", server.Title, server.Version, addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server: %v", err)
		}
	}()

	<-done
	log.Info("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("shutdown: %v", err)
	}
	log.Info("server stopped")
}

func buildParaphraser(cfg *config.Config, useMock bool, log *logrus.Logger) inference.Paraphraser {
	if useMock {
		log.Info("mode: mock paraphraser enabled")
		return &inference.MockParaphraser{Delay: 500 * time.Millisecond}
	}

	if cfg.HFAPIToken == "" {
		log.Warn("auth: HF_API_TOKEN is not set, requests will carry an empty bearer token")
	}
	client := inference.NewHuggingFaceClient(cfg)
	log.WithFields(logrus.Fields{
		"model":    cfg.Model,
		"endpoint": client.Endpoint(),
	}).Info("mode: huggingface inference API")
	return client
}
