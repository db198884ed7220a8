// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"io"
	"os"
	"time"

	"opentag/internal/logger"
	"opentag/internal/opener"
	"opentag/internal/tag"

	"github.com/briandowns/spinner"
)

// newOpener is swapped out in tests so nothing is launched.
var newOpener = opener.New

// performAction carries out act, showing a spinner on stderr while the
// target is being opened.
func performAction(out io.Writer, act tag.Action) error {
	o := newOpener(out)

	var s *spinner.Spinner
	if act.Disposition.Opens() {
		s = spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
		s.Color("cyan")
		s.Suffix = " Opening " + act.Target + "..."
		s.Start()
	}

	err := o.Perform(act)
	if s != nil {
		s.Stop()
	}
	if err != nil {
		return err
	}

	logger.Info("performed action", "disposition", act.Disposition.String(), "target", act.Target, "app", act.App)
	if act.Disposition == tag.CopySilently {
		successColor.Fprintln(os.Stderr, "Copied to clipboard.")
	}
	return nil
}
