package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"universal-summarizer/api/router"
	"universal-summarizer/config"
	"universal-summarizer/logger"
	"universal-summarizer/metrics"
	"universal-summarizer/repositories"
	"universal-summarizer/services"
	"universal-summarizer/summarizer"
)

//go:generate swag init -d ../../ -g cmd/api/main.go -o ../../docs

// @title           Universal Summarizer API
// @version         1.0.0
// @description     API for summarizing web content using Gemini API
// @BasePath        /
func main() {
	config.InitApp()
	cfg := config.GetConfig()
	logger.Init(cfg.Logging.Level)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	gen, err := summarizer.NewGeminiGenerator(ctx, cfg.LLM)
	if err != nil {
		logger.Log.Errorf("failed to init gemini client: %v", err)
		os.Exit(1)
	}

	m := metrics.New()
	history := repositories.NewFileHistoryRepository(cfg.History.Path)
	// 시작 시 파일이 없거나 깨져 있으면 빈 목록으로 초기화된다.
	if _, err := history.Load(ctx); err != nil {
		logger.Log.Warnf("failed to initialize history file %s: %v", history.Path(), err)
	}

	r := router.New(router.Services{
		Summary:  services.NewSummaryService(summarizer.New(gen, m), history, m),
		History:  services.NewHistoryService(history, m),
		Feedback: services.NewFeedbackService(),
		Metrics:  m,
	})

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router.WithCORS(r, cfg.Server.CORSAllowedOrigins),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.InfoWithFields("starting api server", logger.Fields{
			"addr":         srv.Addr,
			"model":        cfg.LLM.ModelName,
			"history_path": history.Path(),
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Log.Info("received shutdown signal, shutting down api server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Log.Errorf("api server error: %v", err)
		os.Exit(1)
	}
	logger.Log.Info("api server stopped")
}
