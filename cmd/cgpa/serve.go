package main

import (
	"fmt"

	gokitlog "github.com/go-kit/log"
	"github.com/spf13/cobra"

	"github.com/jonathan/cgpa-calculator/internal/config"
	"github.com/jonathan/cgpa-calculator/internal/server"
	"github.com/jonathan/cgpa-calculator/internal/server/ratelimit"
)

var (
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes grade conversion, classification, GPA, CGPA and report endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default from config or PORT, 8080)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}

	srv, err := server.New(serverConfig(cfg, logger))
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}

// serverConfig maps CLI configuration to server configuration. An explicit
// rate_limit_enabled in the config file beats RATE_LIMIT_ENABLED.
func serverConfig(cfg config.Config, logger gokitlog.Logger) server.Config {
	rl := ratelimit.LoadConfig()
	if cfg.RateLimitEnabled != nil {
		switch {
		case !*cfg.RateLimitEnabled:
			rl = &ratelimit.Config{Enabled: false}
		case !rl.Enabled:
			rl = ratelimit.DefaultConfig()
		}
	}

	return server.Config{
		Port:         cfg.Port,
		Logger:       logger,
		RateLimit:    rl,
		ReportFormat: cfg.ReportFormat,
		Template:     cfg.Template,
	}
}
