package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rex-runner/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the runner configuration as YAML after applying the search
order: --config, ~/.rex/runner.yaml, ./configs/runner.yaml, built-in defaults.

Use the output as a starting point for a custom config file:
  rex config --defaults > ~/.rex/runner.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults instead")
}

func runConfig(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if flagDefaults {
		_, err := out.Write(config.DefaultYAML())
		return err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(out, string(data))
	return err
}
