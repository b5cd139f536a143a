package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/yanizio/userform/internal/component"
	"github.com/yanizio/userform/internal/config"
	"github.com/yanizio/userform/internal/form"
	"github.com/yanizio/userform/internal/logger"
	"github.com/yanizio/userform/internal/middleware"
	"github.com/yanizio/userform/internal/server"
	"github.com/yanizio/userform/internal/session"
)

const sessionReportEvery = time.Minute

func newServeCmd() *cobra.Command {
	var cfgFile string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the registration form over HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, cmd, cfgFile)
		},
	}
	cmd.Flags().StringVarP(&cfgFile, "config", "c", "", "config file (default: <root>/conf/userform.yaml)")
	return cmd
}

func runServe(ctx context.Context, cmd *cobra.Command, cfgFile string) error {
	//
	// ── 1.  Config and logger ───────────────────────────────────────────
	//
	var (
		cfg *config.Config
		err error
	)
	if cfgFile != "" {
		cfg, err = config.LoadFile(cfgFile)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.Log.Dir, cfg.Log.Level, runningInTTY())
	if err != nil {
		return fmt.Errorf("start logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	//
	// ── 2.  Shared resources ────────────────────────────────────────────
	//
	def, err := formDef(cmd)
	if err != nil {
		return err
	}
	signer, err := form.NewSigner(cfg.CSRF.Key, cfg.CSRF.MaxAge)
	if err != nil {
		return fmt.Errorf("csrf signer: %w", err)
	}
	if cfg.CSRF.Key == "" {
		log.Warn("csrf.key not set; using a random key, open forms expire on restart")
	}
	sessions := session.NewStore(cfg.Session.CookieName, cfg.Session.IdleTTL, cfg.Session.CleanupInterval)

	//
	// ── 3.  Router ──────────────────────────────────────────────────────
	//
	r := chi.NewRouter()
	r.Use(middleware.RequestLog(log), middleware.Security)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler())
	}
	if err := component.Mount(r, component.Deps{
		Sessions: sessions,
		CSRF:     signer,
		Form:     def,
		Log:      log,
	}); err != nil {
		return fmt.Errorf("mount components: %w", err)
	}

	var handler http.Handler = r
	if cfg.HTTP.ForceHTTPS {
		handler = middleware.ForceHTTPS(handler)
	}

	//
	// ── 4.  Serve until signalled ───────────────────────────────────────
	//
	srv := server.New(cfg.HTTP, handler)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Infow("listening", "addr", cfg.HTTP.ListenAddr, "form", def.ID)
		return server.Run(gctx, srv)
	})
	g.Go(func() error {
		reportSessions(gctx, log, sessions)
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Errorw("http server", "err", err)
		return err
	}
	log.Info("shutdown complete")
	return nil
}

// reportSessions logs the live session count until ctx ends.
func reportSessions(ctx context.Context, log *zap.SugaredLogger, st *session.Store) {
	t := time.NewTicker(sessionReportEvery)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			log.Debugw("sessions", "active", st.Len())
		}
	}
}
