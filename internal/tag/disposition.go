// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package tag

import "errors"

// Disposition is what should happen to a resolved target.
type Disposition int

const (
	Open Disposition = iota
	OpenWith
	Print
	CopyAndPrint
	CopyThenOpen
	CopySilently
)

func (d Disposition) String() string {
	switch d {
	case Open:
		return "open"
	case OpenWith:
		return "open-with"
	case Print:
		return "print"
	case CopyAndPrint:
		return "copy-and-print"
	case CopyThenOpen:
		return "copy-then-open"
	case CopySilently:
		return "copy-silently"
	default:
		return "unknown"
	}
}

// Copies reports whether the target goes to the clipboard.
func (d Disposition) Copies() bool {
	return d == CopyAndPrint || d == CopyThenOpen || d == CopySilently
}

// Prints reports whether the target is written to the output.
func (d Disposition) Prints() bool {
	return d == Print || d == CopyAndPrint
}

// Opens reports whether the target is handed to an application.
func (d Disposition) Opens() bool {
	return d == Open || d == OpenWith || d == CopyThenOpen
}

// Options is the flag bundle that selects a disposition.
type Options struct {
	Print      bool
	Copy       bool
	SilentCopy bool

	// App overrides the tag's own application.
	App string

	// DefaultApp is used when neither App nor the tag names one.
	DefaultApp string
}

var errAppConflict = errors.New("--app cannot be combined with --print or --silent-copy")

// Action is a target together with what to do with it.
type Action struct {
	Disposition Disposition
	Target      string

	// App is the application to open Target with; empty means the system
	// default.
	App string
}

// Dispose turns a resolved tag and the requested options into an Action.
func Dispose(t *Tag, opts Options) (Action, error) {
	if !t.HasTarget() {
		return Action{}, &IncompleteError{Tag: t}
	}
	if opts.App != "" && (opts.Print || opts.SilentCopy) {
		return Action{}, errAppConflict
	}

	act := Action{Target: t.Path}
	switch {
	case opts.Print && (opts.Copy || opts.SilentCopy):
		act.Disposition = CopyAndPrint
		return act, nil
	case opts.SilentCopy:
		act.Disposition = CopySilently
		return act, nil
	case opts.Print:
		act.Disposition = Print
		return act, nil
	}

	act.App = firstNonEmpty(opts.App, t.App, opts.DefaultApp)
	switch {
	case opts.Copy:
		act.Disposition = CopyThenOpen
	case act.App != "":
		act.Disposition = OpenWith
	default:
		act.Disposition = Open
	}
	return act, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
