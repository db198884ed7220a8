// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"opentag/internal/config"
	"opentag/internal/logger"

	"github.com/spf13/cobra"
)

// configCmd is the parent command for all configuration-related subcommands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage opentag configuration",
	Long: `Provides subcommands to manage the opentag configuration file.
This includes the location of the tags file and the default app.`,
	// Replaces the root hook: the tags file is not read here, so a broken
	// one can still be pointed away from.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.LoadConfig()
		if err != nil {
			return err
		}
		logger.InitLogger(verbose, cfg.LogLevel)

		tagsPath, err = cfg.TagsPath()
		return err
	},
}

var configGetDataPathCmd = &cobra.Command{
	Use:   "get-data-path",
	Short: "Show the tags file in use",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		source := "(default)"
		switch {
		case os.Getenv(config.DataEnvVar) != "":
			source = "(from $" + config.DataEnvVar + ")"
		case cfg.DataPath != "":
			source = "(from config)"
			fmt.Fprintf(out, "Configured data path: %s\n", identifierColor.Sprint(cfg.DataPath))
		}
		fmt.Fprintf(out, "Tags file: %s %s\n", tagsPath, dimColor.Sprint(source))
		return nil
	},
}

var configSetDataPathCmd = &cobra.Command{
	Use:   "set-data-path <path>",
	Short: "Set a custom location for the tags file",
	Long: `Sets the file opentag reads tags from and writes them to.
Use an absolute path or a path starting with '~/' (e.g., '~/sync/tags.json').
$OPENTAG_DATA still takes precedence when it is set.
To revert to the default location, set the path to an empty string: ot config set-data-path ""`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dataPath := args[0]
		if dataPath != "" && !filepath.IsAbs(dataPath) && !strings.HasPrefix(dataPath, "~/") {
			return errors.New("path must be absolute or start with '~/'")
		}

		cfg.DataPath = dataPath
		if err := config.SaveConfig(cfg); err != nil {
			return err
		}
		logger.Info("data path changed", "data_path", dataPath)

		out := cmd.OutOrStdout()
		if dataPath == "" {
			successColor.Fprintln(out, "Data path reset to the default location.")
		} else {
			successColor.Fprintf(out, "Data path set to: %s\n", dataPath)
		}
		return nil
	},
}

var configGetDefaultAppCmd = &cobra.Command{
	Use:   "get-default-app",
	Short: "Show the app targets are opened with by default",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if cfg.DefaultApp == "" {
			fmt.Fprintln(out, "Default app not configured; the system opener is used.")
			return nil
		}
		fmt.Fprintf(out, "Default app: %s\n", identifierColor.Sprint(cfg.DefaultApp))
		return nil
	},
}

var configSetDefaultAppCmd = &cobra.Command{
	Use:   "set-default-app <app>",
	Short: "Set the app targets are opened with by default",
	Long: `Sets the app used when neither --app nor the tag names one.
To go back to the system opener, set it to an empty string: ot config set-default-app ""`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg.DefaultApp = args[0]
		if err := config.SaveConfig(cfg); err != nil {
			return err
		}
		logger.Info("default app changed", "default_app", cfg.DefaultApp)

		out := cmd.OutOrStdout()
		if cfg.DefaultApp == "" {
			successColor.Fprintln(out, "Default app cleared.")
		} else {
			successColor.Fprintf(out, "Default app set to: %s\n", cfg.DefaultApp)
		}
		return nil
	},
}

func init() {
	configCmd.AddCommand(configGetDataPathCmd)
	configCmd.AddCommand(configSetDataPathCmd)
	configCmd.AddCommand(configGetDefaultAppCmd)
	configCmd.AddCommand(configSetDefaultAppCmd)

	rootCmd.AddCommand(configCmd)
}
