package main

import (
	"github.com/spf13/cobra"

	"github.com/hyperifyio/scpinfo/internal/app"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the scpinfo HTTP API",
	Long: `Start the scpinfo HTTP server.

Endpoints:
  GET /api/scp?scp=<number>  scrape one article (also served at /)
  GET /healthz               liveness check

Examples:
  scpinfo serve                   # listen on :8080
  scpinfo serve --addr :3000      # custom address`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		a, err := app.New(cfg)
		if err != nil {
			return err
		}
		return a.Serve(cmd.Context())
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", app.DefaultAddr, "Address to listen on")
}
