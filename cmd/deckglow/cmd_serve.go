package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"deckglow/beautify"
	"deckglow/classify"
	"deckglow/internal/config"
	"deckglow/internal/httpserver"
	"deckglow/model"
	"deckglow/template"
)

// swapPipeline lets the config watcher replace the pipeline atomically
// while requests keep flowing through the old one.
type swapPipeline struct {
	p atomic.Pointer[beautify.Pipeline]
}

func (s *swapPipeline) Parse(path string) (*model.Deck, error) {
	return s.p.Load().Parse(path)
}

func (s *swapPipeline) Run(ctx context.Context, userPath string) (string, error) {
	return s.p.Load().Run(ctx, userPath)
}

func buildPipeline(c *config.Config) (*beautify.Pipeline, error) {
	var classifier *classify.Classifier
	if k := c.ClassifierKeywords(); k != nil {
		classifier = classify.NewWithKeywords(k)
	}
	return beautify.New(beautify.Config{
		Tools: &beautify.ScriptTools{
			Python:  c.Tools.Python,
			Dir:     c.Paths.Scripts,
			Timeout: c.ToolTimeout(),
		},
		TemplatePath: c.Paths.Template,
		WorkDir:      c.Paths.Temp,
		Classifier:   classifier,
		Selector:     template.NewSelector(c.SelectorPools()),
		Logger:       logger,
	})
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the beautifier HTTP service",
	RunE: func(cmd *cobra.Command, args []string) error {
		pipeline, err := buildPipeline(cfg)
		if err != nil {
			return err
		}

		swap := &swapPipeline{}
		swap.p.Store(pipeline)

		// Keyword and pool table changes take effect without a restart.
		watcher, err := config.Watch(configPath, func(c *config.Config) {
			p, err := buildPipeline(c)
			if err != nil {
				logger.Warn("reloaded config rejected", zap.Error(err))
				return
			}
			swap.p.Store(p)
		}, logger)
		if err != nil {
			logger.Warn("config watch unavailable", zap.Error(err))
		} else {
			defer watcher.Stop()
		}

		srv := &http.Server{
			Addr:              cfg.Server.Addr,
			Handler:           httpserver.New(swap, cfg.Paths.Temp, logger).Handler(),
			ReadHeaderTimeout: 10 * time.Second,
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			logger.Info("listening", zap.String("addr", cfg.Server.Addr))
			errCh <- srv.ListenAndServe()
		}()

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
		}

		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}
