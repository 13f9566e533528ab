package main

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/hyperifyio/scpinfo/internal/app"
)

var (
	cfgFile   string
	envFiles  []string
	verbose   bool
	baseURL   string
	userAgent string
	timeout   time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "scpinfo",
	Short: "Scrape SCP Foundation wiki articles into JSON records",
	Long: `scpinfo fetches one SCP wiki article by number and turns its bolded
labels into a JSON record.

Configuration is layered: flags, then environment (SCP_BASE_URL, SCP_ADDR,
PORT, SCP_USER_AGENT, SCP_FETCH_TIMEOUT, SCP_REDIRECT_MAX_HOPS, VERBOSE),
then the --config file, then built-in defaults.`,
	Version:       app.BuildVersion,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "YAML or JSON config file")
	rootCmd.PersistentFlags().StringSliceVar(&envFiles, "env-file", []string{".env"}, "dotenv files to load (missing files are skipped)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose logging")
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "Article URL prefix; the padded number is appended (default http://www.scpwiki.com/scp-)")
	rootCmd.PersistentFlags().StringVar(&userAgent, "user-agent", "", "User-Agent for wiki requests (default: none)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 0, "Wiki request timeout; 0 uses the transport default")

	rootCmd.AddCommand(serveCmd, getCmd, versionCmd)
}

// loadConfig resolves the layered configuration for the current command.
func loadConfig(cmd *cobra.Command) (app.Config, error) {
	if err := app.LoadEnvFiles(envFiles...); err != nil {
		return app.Config{}, err
	}

	cfg := app.Config{
		BaseURL:      baseURL,
		UserAgent:    userAgent,
		FetchTimeout: timeout,
		Verbose:      verbose,
	}
	if cmd.Flags().Changed("addr") {
		cfg.Addr = serveAddr
	}
	app.ApplyEnvToConfig(&cfg)
	if cfgFile != "" {
		fc, err := app.LoadConfigFile(cfgFile)
		if err != nil {
			return app.Config{}, err
		}
		app.ApplyFileConfig(&cfg, fc)
	}
	app.ApplyDefaults(&cfg)

	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	return cfg, app.ValidateConfig(cfg)
}
