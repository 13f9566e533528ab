package main

import (
	"encoding/json"
	"errors"

	"github.com/spf13/cobra"

	"github.com/hyperifyio/scpinfo/internal/app"
	"github.com/hyperifyio/scpinfo/internal/scp"
)

var getCmd = &cobra.Command{
	Use:   "get <number>",
	Short: "Scrape one article and print its JSON record",
	Example: `  scpinfo get 173
  scpinfo get 7 --base-url https://mirror.example/scp-`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		a, err := app.New(cfg)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")

		res, err := a.Lookup(cmd.Context(), args[0])
		if errors.Is(err, scp.ErrInvalidID) {
			_ = enc.Encode(map[string]string{"error": err.Error()})
			return exitError{code: 2, err: err}
		}
		if err != nil {
			return err
		}
		return enc.Encode(res)
	},
}
