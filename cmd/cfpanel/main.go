package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cloudquota/cfpanel/internal/api"
	"github.com/cloudquota/cfpanel/internal/config"
	"github.com/cloudquota/cfpanel/internal/database"
	"github.com/cloudquota/cfpanel/internal/logging"
	"github.com/cloudquota/cfpanel/internal/session"
)

func main() {
	var (
		host     = flag.String("host", "", "Override bind host")
		port     = flag.Int("port", 0, "Override bind port")
		dbPath   = flag.String("db", "", "Path to the audit log database (empty = cfpanel.db)")
		noAudit  = flag.Bool("no-audit", false, "Disable the audit log")
		jsonLogs = flag.Bool("json-logs", false, "Enable JSON structured logging")
		debug    = flag.Bool("debug", false, "Enable debug logging")
	)
	flag.Parse()

	cfg := config.Default()
	if *host != "" {
		cfg.Server.Host = *host
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}
	if *dbPath != "" {
		cfg.Audit.Path = *dbPath
	}
	if *noAudit {
		cfg.Audit.Enabled = false
	}
	if *jsonLogs {
		cfg.Logging.Structured = true
		cfg.Logging.StructuredFormat = "json"
	}
	if *debug {
		cfg.Logging.Level = "DEBUG"
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.Configure(logging.Config{
		Level:            cfg.Logging.Level,
		Structured:       cfg.Logging.Structured,
		StructuredFormat: cfg.Logging.StructuredFormat,
		IncludePID:       cfg.Logging.IncludePID,
		ExtraFields:      cfg.Logging.ExtraFields,
	})

	var db *database.DB
	if cfg.Audit.Enabled {
		var err error
		db, err = database.Open(cfg.Audit.Path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to open audit database: %v\n", err)
			os.Exit(1)
		}
		defer db.Close()
	}

	sessions := session.NewStore(cfg.SessionTTL())
	sessions.StartSweeper(time.Minute)
	defer sessions.Stop()

	server := api.New(cfg, db, sessions, logger)

	logger.Info("cfpanel starting",
		"addr", server.Addr(),
		"api_base", cfg.Cloudflare.APIBase,
		"audit", cfg.Audit.Enabled,
	)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			fmt.Fprintf(os.Stderr, "server exited with error: %v\n", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown failed", "err", err)
		}
	}
}
