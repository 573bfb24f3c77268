package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/BlueyDragon/mdn-breakout-game/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect configuration",
}

var configDumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the effective configuration as YAML",
	Long: `Print the configuration a game would start with, after the config
search path and --difficulty have been applied. The output is a valid
config file:

  breakout config dump > ~/.breakout/configs/breakout.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfigDump,
}

func init() {
	configCmd.AddCommand(configDumpCmd)
}

func runConfigDump(cmd *cobra.Command, _ []string) error {
	sess, err := newSession(false)
	if err != nil {
		return err
	}
	defer sess.close()

	data, err := config.Marshal(sess.opts.Config)
	if err != nil {
		return fmt.Errorf("cannot encode config: %w", err)
	}

	_, err = cmd.OutOrStdout().Write(data)
	return err
}
