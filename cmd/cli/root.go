// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"opentag/internal/config"
	"opentag/internal/logger"
	"opentag/internal/store"
	"opentag/internal/tag"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	cfg      config.Config
	tagsPath string
	tagStore *tag.Store

	verbose bool
	opts    tag.Options
	listTag bool

	statusColor     = color.New(color.FgCyan)
	errorColor      = color.New(color.FgRed, color.Bold)
	successColor    = color.New(color.FgGreen)
	identifierColor = color.New(color.FgBlue)
	dimColor        = color.New(color.Faint)
)

var rootCmd = &cobra.Command{
	Use:   "ot [flags] <tag> [subtag...]",
	Short: "Open a tagged path or URL",
	Long: `opentag (ot) opens a tagged path or URL using the configured system program.

Tags are defined in a JSON data file (~/.local/share/opentag/tags.json by
default, or $OPENTAG_DATA). Tags may have aliases and nest subtags to any depth:
"ot web gh" opens the "gh" subtag of the "web" tag.`,
	Example:           "  ot gh\n  ot web gh --print\n  ot notes -A code\n  ot web --list",
	Args:              cobra.ArbitraryArgs,
	ValidArgsFunction: tagCompletionFunc,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.LoadConfig()
		if err != nil {
			return err
		}
		logger.InitLogger(verbose, cfg.LogLevel)

		if readOnly(cmd) {
			return nil
		}
		tagStore, tagsPath, err = loadStore(cfg)
		return err
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if listTag {
			return listTags(cmd.OutOrStdout(), args)
		}
		if len(args) == 0 {
			return cmd.Help()
		}
		return openTag(cmd, args)
	},
}

// RunCLI executes the root command and exits non-zero on failure.
func RunCLI() {
	if err := rootCmd.Execute(); err != nil {
		logger.Errorf("command failed: %v", err)
		errorColor.Fprint(os.Stderr, "error")
		fmt.Fprintf(os.Stderr, ": %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Mirror log output to stderr")

	flags := rootCmd.Flags()
	flags.BoolVarP(&opts.Print, "print", "p", false, "Prints the path or the URL instead of opening it")
	flags.StringVarP(&opts.App, "app", "A", "", "Specifies the app to open the path or the URL with")
	flags.BoolVarP(&opts.Copy, "copy", "c", false, "Copies the path or the URL to the system's clipboard")
	flags.BoolVarP(&opts.SilentCopy, "silent-copy", "C", false, "Copies the path or the URL to the system's clipboard without opening it")
	flags.BoolVarP(&listTag, "list", "l", false, "Lists all global tags or the subtags of the specified tag")

	rootCmd.MarkFlagsMutuallyExclusive("app", "print")
	rootCmd.MarkFlagsMutuallyExclusive("app", "silent-copy")
	for _, other := range []string{"print", "app", "copy", "silent-copy"} {
		rootCmd.MarkFlagsMutuallyExclusive("list", other)
	}

	defaultHelp := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		defaultHelp(cmd, args)
		if cmd != rootCmd {
			return
		}
		// Help is rendered before PersistentPreRunE, so the tags are read here.
		roots, err := peekTags()
		if err != nil || len(roots) == 0 {
			return
		}
		fmt.Fprintln(cmd.OutOrStdout())
		printTags(cmd.OutOrStdout(), "Tags:", roots)
	})

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(updateCmd)
}

// loadStore locates the tags file for c, creating it when missing, and
// loads it.
func loadStore(c config.Config) (*tag.Store, string, error) {
	path, err := c.TagsPath()
	if err != nil {
		return nil, "", err
	}
	if err := store.Init(path); err != nil {
		return nil, "", err
	}
	roots, err := store.Load(path)
	if err != nil {
		return nil, "", err
	}
	if dupe := roots.Duplicate(); dupe != "" {
		logger.Warn("tags file has siblings sharing a name, the first one wins", "path", path, "name", dupe)
	}
	logger.Debug("loaded tags", "path", path, "roots", len(roots))
	return tag.NewStore(roots), path, nil
}

// readOnly reports whether cmd only prints help or completions. Those read the
// tags themselves through peekTags and must not create the tags file.
func readOnly(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case cobra.ShellCompRequestCmd, "completion", "help":
			return true
		}
	}
	return false
}

// peekTags reads the tags file without creating it, for help and completion.
func peekTags() (tag.Tags, error) {
	c, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	path, err := c.TagsPath()
	if err != nil {
		return nil, err
	}
	return store.Peek(path)
}

// saveStore writes the whole forest back to the tags file.
func saveStore() error {
	if err := store.Save(tagsPath, tagStore.Roots); err != nil {
		return err
	}
	logger.Info("saved tags", "path", tagsPath)
	return nil
}

// openTag resolves args and hands the target to the opener.
func openTag(cmd *cobra.Command, args []string) error {
	res := tagStore.Resolve(args)
	logger.Debug("resolved tag", "tokens", args, "status", res.Status.String())
	if err := res.Err(); err != nil {
		return err
	}

	o := opts
	o.DefaultApp = cfg.DefaultApp
	act, err := tag.Dispose(res.Tag, o)
	if err != nil {
		return err
	}
	return performAction(cmd.OutOrStdout(), act)
}

// listTags prints the roots, or the subtags of the tag args resolve to.
func listTags(w io.Writer, args []string) error {
	tags, err := tagStore.List(args)
	if err != nil {
		return err
	}
	if len(tags) == 0 {
		fmt.Fprintln(w, "No tags!")
		return nil
	}
	printTags(w, "TAGS", tags)
	return nil
}

// printTags prints one line per tag: its names and the first line of about.
func printTags(w io.Writer, heading string, tags tag.Tags) {
	labels := make([]string, len(tags))
	width := 0
	for i, t := range tags {
		labels[i] = strings.Join(t.Names, ", ")
		width = max(width, len(labels[i]))
	}

	fmt.Fprintln(w, heading)
	for i, t := range tags {
		summary := t.Summary()
		if summary == "" {
			fmt.Fprintf(w, "  %s\n", identifierColor.Sprint(labels[i]))
			continue
		}
		pad := strings.Repeat(" ", width-len(labels[i]))
		fmt.Fprintf(w, "  %s%s  %s\n", identifierColor.Sprint(labels[i]), pad, dimColor.Sprint(summary))
	}
}
