// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"opentag/internal/tag"

	"github.com/spf13/cobra"
)

// tagCompletionFunc completes the next tag name after the ones in args.
// The tags are read without creating the tags file; any failure yields no
// suggestions.
func tagCompletionFunc(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	roots, err := peekTags()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return tag.NewStore(roots).Complete(args, toComplete), cobra.ShellCompDirectiveNoFileComp
}
