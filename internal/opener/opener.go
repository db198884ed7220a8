// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package opener carries out a resolved tag action: it copies the target to
// the clipboard, prints it, or opens it with the system or a named application.
package opener

import (
	"errors"
	"fmt"
	"io"
	"os/exec"
	"runtime"
	"syscall"

	"opentag/internal/config"
	"opentag/internal/logger"
	"opentag/internal/tag"

	"github.com/atotto/clipboard"
)

// Opener performs actions. The zero value is not usable; call New.
type Opener struct {
	// Out receives printed targets.
	Out io.Writer

	// Copy writes text to the clipboard.
	Copy func(text string) error

	// Run executes the open command.
	Run func(cmd *exec.Cmd) error

	// GOOS selects the platform opener.
	GOOS string
}

// New returns an Opener that prints to out and uses the system clipboard.
func New(out io.Writer) *Opener {
	return &Opener{
		Out:  out,
		Copy: clipboard.WriteAll,
		Run:  runCommand,
		GOOS: runtime.GOOS,
	}
}

// Perform carries out act.
func (o *Opener) Perform(act tag.Action) error {
	d := act.Disposition

	if d.Copies() {
		if err := o.Copy(act.Target); err != nil {
			return fmt.Errorf("unable to copy `%s` to the clipboard: %w", act.Target, err)
		}
		logger.Debug("copied target", "target", act.Target)
	}

	if d.Prints() {
		fmt.Fprintln(o.Out, act.Target)
	}

	if d.Opens() {
		target, err := ExpandTarget(act.Target)
		if err != nil {
			return err
		}
		cmd := Command(o.GOOS, target, act.App)
		logger.Debug("opening target", "target", target, "app", act.App, "command", cmd.Args)
		if err := o.Run(cmd); err != nil {
			logger.Error("open command failed", "command", cmd.Args, "error", err)
			return fmt.Errorf("unable to open `%s`: %w", target, err)
		}
	}
	return nil
}

// ExpandTarget expands a leading "~" in filesystem targets. URLs are left
// alone.
func ExpandTarget(target string) (string, error) {
	return config.ResolvePath(target)
}

// Command builds the command that opens target, with app when it is set.
func Command(goos, target, app string) *exec.Cmd {
	switch goos {
	case "darwin":
		if app != "" {
			return exec.Command("open", "-a", app, target)
		}
		return exec.Command("open", target)
	case "windows":
		if app != "" {
			return exec.Command("cmd", "/c", "start", "", app, target)
		}
		return exec.Command("cmd", "/c", "start", "", target)
	default:
		if app != "" {
			return exec.Command(app, target)
		}
		return exec.Command("xdg-open", target)
	}
}

// runCommand runs cmd and reports its exit status on failure.
func runCommand(cmd *exec.Cmd) error {
	cmdDesc := cmd.Args[0]
	cmdErr := cmd.Run()
	if cmdErr == nil {
		return nil
	}

	exitCode := -1
	var exitError *exec.ExitError
	if errors.As(cmdErr, &exitError) {
		if status, ok := exitError.Sys().(syscall.WaitStatus); ok {
			exitCode = status.ExitStatus()
		}
	}
	if exitCode != -1 {
		return fmt.Errorf("%s exited with status %d: %w", cmdDesc, exitCode, cmdErr)
	}
	return fmt.Errorf("%s failed: %w", cmdDesc, cmdErr)
}
