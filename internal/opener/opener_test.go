// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package opener

import (
	"bytes"
	"errors"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"opentag/internal/tag"
)

type recorder struct {
	out     bytes.Buffer
	copied  []string
	ran     [][]string
	copyErr error
	runErr  error
}

func (r *recorder) opener(goos string) *Opener {
	return &Opener{
		Out: &r.out,
		Copy: func(text string) error {
			r.copied = append(r.copied, text)
			return r.copyErr
		},
		Run: func(cmd *exec.Cmd) error {
			r.ran = append(r.ran, cmd.Args)
			return r.runErr
		},
		GOOS: goos,
	}
}

func TestPerform(t *testing.T) {
	const url = "https://github.com"
	tests := []struct {
		name    string
		act     tag.Action
		printed string
		copied  []string
		ran     [][]string
	}{
		{"open", tag.Action{Disposition: tag.Open, Target: url}, "", nil, [][]string{{"xdg-open", url}}},
		{"open with", tag.Action{Disposition: tag.OpenWith, Target: url, App: "firefox"}, "", nil, [][]string{{"firefox", url}}},
		{"print", tag.Action{Disposition: tag.Print, Target: url}, url + "\n", nil, nil},
		{"copy and print", tag.Action{Disposition: tag.CopyAndPrint, Target: url}, url + "\n", []string{url}, nil},
		{"copy then open", tag.Action{Disposition: tag.CopyThenOpen, Target: url}, "", []string{url}, [][]string{{"xdg-open", url}}},
		{"copy silently", tag.Action{Disposition: tag.CopySilently, Target: url}, "", []string{url}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r recorder
			if err := r.opener("linux").Perform(tt.act); err != nil {
				t.Fatalf("Perform() error = %v", err)
			}
			if r.out.String() != tt.printed {
				t.Errorf("printed %q, want %q", r.out.String(), tt.printed)
			}
			if !slices.Equal(r.copied, tt.copied) {
				t.Errorf("copied %v, want %v", r.copied, tt.copied)
			}
			if len(r.ran) != len(tt.ran) {
				t.Fatalf("ran %v, want %v", r.ran, tt.ran)
			}
			for i := range r.ran {
				if !slices.Equal(r.ran[i], tt.ran[i]) {
					t.Errorf("ran %v, want %v", r.ran[i], tt.ran[i])
				}
			}
		})
	}
}

func TestPerformExpandsTilde(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	var r recorder
	if err := r.opener("linux").Perform(tag.Action{Disposition: tag.Open, Target: "~/R.md"}); err != nil {
		t.Fatalf("Perform() error = %v", err)
	}
	want := []string{"xdg-open", filepath.Join(home, "R.md")}
	if len(r.ran) != 1 || !slices.Equal(r.ran[0], want) {
		t.Errorf("ran %v, want %v", r.ran, want)
	}
}

func TestPerformErrors(t *testing.T) {
	r := recorder{runErr: errors.New("boom")}
	err := r.opener("linux").Perform(tag.Action{Disposition: tag.Open, Target: "x"})
	if err == nil || !strings.Contains(err.Error(), "unable to open `x`") {
		t.Errorf("Perform() error = %v", err)
	}

	r = recorder{copyErr: errors.New("no clipboard")}
	err = r.opener("linux").Perform(tag.Action{Disposition: tag.CopyThenOpen, Target: "x"})
	if err == nil || !strings.Contains(err.Error(), "clipboard") {
		t.Errorf("Perform() error = %v", err)
	}
	if len(r.ran) != 0 {
		t.Error("target opened although copying failed")
	}
}

func TestCommand(t *testing.T) {
	tests := []struct {
		goos, target, app string
		want              []string
	}{
		{"linux", "/tmp/a", "", []string{"xdg-open", "/tmp/a"}},
		{"linux", "/tmp/a", "code", []string{"code", "/tmp/a"}},
		{"darwin", "/tmp/a", "", []string{"open", "/tmp/a"}},
		{"darwin", "/tmp/a", "Safari", []string{"open", "-a", "Safari", "/tmp/a"}},
		{"windows", `C:\a`, "", []string{"cmd", "/c", "start", "", `C:\a`}},
		{"windows", `C:\a`, "notepad", []string{"cmd", "/c", "start", "", "notepad", `C:\a`}},
	}
	for _, tt := range tests {
		got := Command(tt.goos, tt.target, tt.app).Args
		if !slices.Equal(got, tt.want) {
			t.Errorf("Command(%q, %q, %q) = %v, want %v", tt.goos, tt.target, tt.app, got, tt.want)
		}
	}
}
