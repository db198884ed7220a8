// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package tag

import (
	"errors"
	"testing"
)

func TestDispose(t *testing.T) {
	leaf := &Tag{Names: []string{"gh"}, Path: "https://github.com"}
	withApp := &Tag{Names: []string{"notes"}, Path: "~/notes", App: "code"}

	tests := []struct {
		name string
		tag  *Tag
		opts Options
		want Action
	}{
		{"default", leaf, Options{}, Action{Open, "https://github.com", ""}},
		{"app flag", leaf, Options{App: "firefox"}, Action{OpenWith, "https://github.com", "firefox"}},
		{"tag app", withApp, Options{}, Action{OpenWith, "~/notes", "code"}},
		{"flag beats tag app", withApp, Options{App: "vim"}, Action{OpenWith, "~/notes", "vim"}},
		{"tag app beats default", withApp, Options{DefaultApp: "xdg"}, Action{OpenWith, "~/notes", "code"}},
		{"configured default", leaf, Options{DefaultApp: "xdg"}, Action{OpenWith, "https://github.com", "xdg"}},
		{"print", leaf, Options{Print: true}, Action{Print, "https://github.com", ""}},
		{"print ignores tag app", withApp, Options{Print: true}, Action{Print, "~/notes", ""}},
		{"copy", leaf, Options{Copy: true}, Action{CopyThenOpen, "https://github.com", ""}},
		{"copy with app", withApp, Options{Copy: true}, Action{CopyThenOpen, "~/notes", "code"}},
		{"copy and print", leaf, Options{Copy: true, Print: true}, Action{CopyAndPrint, "https://github.com", ""}},
		{"silent copy", leaf, Options{SilentCopy: true}, Action{CopySilently, "https://github.com", ""}},
		{"silent copy wins over copy", leaf, Options{SilentCopy: true, Copy: true}, Action{CopySilently, "https://github.com", ""}},
		{"silent copy still prints", leaf, Options{SilentCopy: true, Print: true}, Action{CopyAndPrint, "https://github.com", ""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Dispose(tt.tag, tt.opts)
			if err != nil {
				t.Fatalf("Dispose() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Dispose() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestDisposeErrors(t *testing.T) {
	branch := &Tag{Names: []string{"web"}}
	if _, err := Dispose(branch, Options{}); !errors.Is(err, ErrIncomplete) {
		t.Errorf("Dispose(branch) error = %v, want ErrIncomplete", err)
	}

	leaf := &Tag{Names: []string{"gh"}, Path: "x"}
	if _, err := Dispose(leaf, Options{App: "a", Print: true}); err == nil {
		t.Error("expected conflict error for --app with --print")
	}
	if _, err := Dispose(leaf, Options{App: "a", SilentCopy: true}); err == nil {
		t.Error("expected conflict error for --app with --silent-copy")
	}
}

func TestDispositionPredicates(t *testing.T) {
	tests := []struct {
		d                     Disposition
		copies, prints, opens bool
	}{
		{Open, false, false, true},
		{OpenWith, false, false, true},
		{Print, false, true, false},
		{CopyAndPrint, true, true, false},
		{CopyThenOpen, true, false, true},
		{CopySilently, true, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.d.String(), func(t *testing.T) {
			if tt.d.Copies() != tt.copies || tt.d.Prints() != tt.prints || tt.d.Opens() != tt.opens {
				t.Errorf("%v: copies=%v prints=%v opens=%v", tt.d, tt.d.Copies(), tt.d.Prints(), tt.d.Opens())
			}
		})
	}
}
