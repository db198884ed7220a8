// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func setupDirs(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	t.Setenv(DataEnvVar, "")
	return dir
}

func TestLoadConfigMissingFile(t *testing.T) {
	setupDirs(t)
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg != (Config{}) {
		t.Errorf("LoadConfig() = %+v, want zero config", cfg)
	}
}

func TestSaveAndLoadConfig(t *testing.T) {
	dir := setupDirs(t)
	want := Config{DataPath: "~/tags.json", DefaultApp: "firefox", LogLevel: "debug"}
	if err := SaveConfig(want); err != nil {
		t.Fatalf("SaveConfig() error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "config", "opentag", "config.yaml")); err != nil {
		t.Fatalf("config file not written: %v", err)
	}
	got, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if got != want {
		t.Errorf("LoadConfig() = %+v, want %+v", got, want)
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	dir := setupDirs(t)
	path := filepath.Join(dir, "config", "opentag", "config.yaml")
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("data_path: [unclosed"), 0640); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(); err == nil {
		t.Error("LoadConfig() succeeded on malformed YAML")
	}
}

func TestTagsPath(t *testing.T) {
	dir := setupDirs(t)

	tests := []struct {
		name string
		env  string
		cfg  Config
		want string
	}{
		{"default", "", Config{}, filepath.Join(dir, "data", "opentag", "tags.json")},
		{"configured", "", Config{DataPath: "~/my/tags.json"}, filepath.Join(dir, "my", "tags.json")},
		{"absolute configured", "", Config{DataPath: "/srv/tags.json"}, "/srv/tags.json"},
		{"env wins", "/env/tags.json", Config{DataPath: "/srv/tags.json"}, "/env/tags.json"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(DataEnvVar, tt.env)
			got, err := tt.cfg.TagsPath()
			if err != nil {
				t.Fatalf("TagsPath() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("TagsPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolvePath(t *testing.T) {
	dir := setupDirs(t)
	tests := []struct {
		in   string
		want string
	}{
		{"~/a/b", filepath.Join(dir, "a", "b")},
		{"~", dir},
		{"/abs", "/abs"},
		{"relative", "relative"},
		{"~user/x", "~user/x"},
	}
	for _, tt := range tests {
		got, err := ResolvePath(tt.in)
		if err != nil {
			t.Fatalf("ResolvePath(%q) error = %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ResolvePath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
