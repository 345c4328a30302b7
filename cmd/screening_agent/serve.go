package main

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/talent-scout/internal/config"
	"github.com/jonathan/talent-scout/internal/server"
	"github.com/jonathan/talent-scout/internal/session"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  "Starts an HTTP server exposing screening sessions and stored interview retrieval.",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	log, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	d, err := buildDeps(ctx, log)
	if err != nil {
		return err
	}
	defer d.Close()

	// Stored-interview retrieval is JWT-protected; without a secret the
	// endpoint stays disabled and sessions still work.
	var jwtService *server.JWTService
	if jwtCfg, err := config.NewJWTConfig(); err == nil {
		jwtService = server.NewJWTService(jwtCfg)
	} else {
		log.Warn("JWT not configured, stored-interview endpoint disabled", zap.Error(err))
	}

	sessions := session.NewManager(d.controllerFactory, d.securityCfg.SessionTimeout, log)

	srv := server.New(server.Config{
		Port:       servePort,
		Sessions:   sessions,
		Store:      d.store,
		JWTService: jwtService,
		Logger:     log,
	})
	return srv.Start()
}
