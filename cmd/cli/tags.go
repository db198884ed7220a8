// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"errors"
	"fmt"
	"os"

	"opentag/internal/logger"
	"opentag/internal/tag"
	"opentag/internal/ui"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// clearValue is what a value-less --path, --alias, --about or --app turns
// into; it clears the field.
const clearValue = "<clear>"

const (
	parentPrompt    = "Select the parent tag (esc for no parent)"
	subParentPrompt = "Select a subtag of the parent (esc to select the parent)"
	tagPrompt       = "Select the tag (esc to quit)"
	subTagPrompt    = "Select a subtag (esc to select the parent)"
)

var errNothingSelected = errors.New("no tag selected")

// Flag values shared by add and update.
var (
	pathFlag  string
	aliasFlag string
	aboutFlag string
	appFlag   string
	nameFlag  string
	noPrompt  bool
)

// normalizeTagFlags makes --url/--link and --aliases spell --path and --alias.
func normalizeTagFlags(f *pflag.FlagSet, name string) pflag.NormalizedName {
	switch name {
	case "url", "link":
		name = "path"
	case "aliases":
		name = "alias"
	}
	return pflag.NormalizedName(name)
}

func addTagFlags(cmd *cobra.Command, clearable bool) {
	flags := cmd.Flags()
	flags.StringVarP(&pathFlag, "path", "p", "", "Sets the path/URL of the tag (aliases: --url, --link)")
	flags.StringVarP(&aliasFlag, "alias", "A", "", "Adds alias(es) for the tag; multiple aliases must be comma-separated")
	flags.StringVar(&aboutFlag, "about", "", "Sets the about text for the tag")
	flags.StringVar(&appFlag, "app", "", "Sets the app the tag is opened with")
	flags.SetNormalizeFunc(normalizeTagFlags)

	if clearable {
		for _, name := range []string{"path", "alias", "about", "app"} {
			flags.Lookup(name).NoOptDefVal = clearValue
		}
	}
}

var addCmd = &cobra.Command{
	Use:     "add [parent...] <name[,alias...]>",
	Aliases: []string{"a"},
	Short:   "Adds a new tag",
	Long: `Adds a new tag. The last argument holds the name and comma-separated aliases;
any arguments before it name the parent tag. If no name is provided, the
command enters interactive mode.`,
	Example:           "  ot add gh,github --url https://github.com\n  ot add web gl --url https://gitlab.com --about GitLab\n  ot add",
	ValidArgsFunction: tagCompletionFunc,
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			parent []string
			t      *tag.Tag
		)
		if len(args) == 0 {
			var ok bool
			var err error
			parent, t, ok, err = promptNewTag()
			if err != nil || !ok {
				return err
			}
		} else {
			parent = args[:len(args)-1]
			t = &tag.Tag{
				Names: append(ui.ParseNames(args[len(args)-1]), ui.ParseNames(aliasFlag)...),
				Path:  pathFlag,
				About: aboutFlag,
				App:   appFlag,
			}
		}

		if err := tagStore.Add(parent, t); err != nil {
			return err
		}
		if err := saveStore(); err != nil {
			return err
		}
		logger.Info("tag added", "parent", parent, "names", t.Names, "target", t.Path)
		successColor.Fprintf(cmd.OutOrStdout(), "Added tag %s.\n", identifierColor.Sprint(t.Name()))
		return nil
	},
}

// promptNewTag asks for the new tag and then for its parent.
func promptNewTag() ([]string, *tag.Tag, bool, error) {
	values, ok, err := ui.EditTag("Add a new tag", nil)
	if err != nil || !ok {
		return nil, nil, false, err
	}
	parent, _, err := ui.SelectTag(tagStore.Roots, parentPrompt, subParentPrompt)
	if err != nil {
		return nil, nil, false, err
	}
	return parent, &tag.Tag{Names: values.Names, Path: values.Path, About: values.About, App: values.App}, true, nil
}

var removeCmd = &cobra.Command{
	Use:     "remove [tag] [subtag...]",
	Aliases: []string{"r", "rm"},
	Short:   "Removes an existing tag",
	Long: `Removes an existing tag together with all of its subtags.
If no tag is specified, the command enters interactive mode.`,
	ValidArgsFunction: tagCompletionFunc,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args
		if len(path) == 0 {
			selected, ok, err := ui.SelectTag(tagStore.Roots, tagPrompt, subTagPrompt)
			if err != nil {
				return err
			}
			if !ok {
				return errNothingSelected
			}
			path = selected
		}

		res := tagStore.Resolve(path)
		if !res.Complete() {
			return res.Err()
		}
		if !noPrompt {
			question := fmt.Sprintf("Remove tag `%s`", res.Tag.Name())
			if n := len(res.Tag.Subtags); n > 0 {
				question += fmt.Sprintf(" and its %d subtag(s)", n)
			}
			confirmed, err := ui.Confirm(question + "?")
			if err != nil {
				return err
			}
			if !confirmed {
				statusColor.Fprintln(os.Stderr, "Aborted.")
				return nil
			}
		}

		removed, err := tagStore.Remove(path)
		if err != nil {
			return err
		}
		if err := saveStore(); err != nil {
			return err
		}
		logger.Info("tag removed", "tokens", path)
		successColor.Fprintf(cmd.OutOrStdout(), "Removed tag %s.\n", identifierColor.Sprint(removed.Name()))
		return nil
	},
}

var updateCmd = &cobra.Command{
	Use:     "update [tag] [subtag...]",
	Aliases: []string{"u"},
	Short:   "Updates an existing tag",
	Long: `Updates an existing tag. Each of --path, --alias, --about and --app given
without a value clears that field; values are passed with '=' (--about=text).
--alias with a value adds aliases. --name replaces every name of the tag.

If no field flag is given, an edit form prefilled with the tag opens. If no tag
is specified, the command enters interactive mode.`,
	Example:           "  ot update web --alias=net\n  ot update web --alias\n  ot update web gh --path=https://github.com/me\n  ot update web -n www,web",
	ValidArgsFunction: tagCompletionFunc,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args
		if len(path) == 0 {
			selected, ok, err := ui.SelectTag(tagStore.Roots, tagPrompt, subTagPrompt)
			if err != nil {
				return err
			}
			if !ok {
				return errNothingSelected
			}
			path = selected
		}

		changes := changesFromFlags(cmd.Flags())
		if changes.Empty() {
			res := tagStore.Resolve(path)
			if !res.Complete() {
				return res.Err()
			}
			values, ok, err := ui.EditTag("Update tag", res.Tag)
			if err != nil || !ok {
				return err
			}
			changes = changesFromForm(values)
		}

		t, err := tagStore.Update(path, changes)
		if err != nil {
			return withValueHint(cmd.Flags(), err)
		}
		if err := saveStore(); err != nil {
			return err
		}
		logger.Info("tag updated", "tokens", path, "names", t.Names, "target", t.Path)
		successColor.Fprintf(cmd.OutOrStdout(), "Updated tag %s.\n", identifierColor.Sprint(t.Name()))
		return nil
	},
}

// changesFromFlags builds the edits for the update flags that were given.
func changesFromFlags(flags *pflag.FlagSet) tag.Changes {
	var c tag.Changes
	if flags.Changed("name") {
		c.Names = tag.Some(ui.ParseNames(nameFlag))
	}
	if flags.Changed("alias") {
		c.Aliases = tag.Some(ui.ParseNames(cleared(aliasFlag)))
	}
	c.Path = optionalFlag(flags, "path", pathFlag)
	c.About = optionalFlag(flags, "about", aboutFlag)
	c.App = optionalFlag(flags, "app", appFlag)
	return c
}

func optionalFlag(flags *pflag.FlagSet, name, value string) tag.Optional[string] {
	if !flags.Changed(name) {
		return tag.Optional[string]{}
	}
	return tag.Some(cleared(value))
}

func cleared(value string) string {
	if value == clearValue {
		return ""
	}
	return value
}

// withValueHint explains a partial match caused by a value-optional flag
// swallowing no value: "--alias net" leaves "net" as a subtag token.
func withValueHint(flags *pflag.FlagSet, err error) error {
	if !errors.Is(err, tag.ErrPartialMatch) {
		return err
	}
	for _, name := range []string{"path", "alias", "about", "app"} {
		if f := flags.Lookup(name); f != nil && f.Changed && f.Value.String() == clearValue {
			return fmt.Errorf("%w (to set --%s, pass the value with '=', e.g. --%s=value)", err, name, name)
		}
	}
	return err
}

// changesFromForm replaces every field with what the form holds.
func changesFromForm(v ui.FormValues) tag.Changes {
	return tag.Changes{
		Names: tag.Some(v.Names),
		Path:  tag.Some(v.Path),
		About: tag.Some(v.About),
		App:   tag.Some(v.App),
	}
}

func init() {
	addTagFlags(addCmd, false)

	removeCmd.Flags().BoolVarP(&noPrompt, "no-prompt", "N", false, "Disables the confirmation prompt when removing a tag")

	updateCmd.Flags().StringVarP(&nameFlag, "name", "n", "", "Replaces the names of the tag (comma-separated, primary first)")
	addTagFlags(updateCmd, true)
}
