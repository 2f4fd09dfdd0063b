package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/interview-coach/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: "Starts the HTTP server exposing the mock interview API: session management, " +
		"answer evaluation, streaming feedback and stateless scoring.",
	RunE: runServe,
}

var servePort int

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default: config or 8080)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}

	log, err := newLogger(true)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer log.Sync() //nolint:errcheck

	srv, err := server.New(cmd.Context(), server.Config{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		DatabaseURL:    cfg.DatabaseURL,
		JWTSecret:      cfg.JWTSecret,
		TotalQuestions: cfg.TotalQuestions,
		Logger:         log,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
