// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package store reads and writes the JSON tags file.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"opentag/internal/tag"
)

// Init creates the tags file holding an empty list, along with its parent
// directories, when it does not exist yet.
func Init(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("tags file error at path %s: %w", path, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("failed to create data directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte("[]\n"), 0640); err != nil {
		return fmt.Errorf("failed to create tags file %s: %w", path, err)
	}
	return nil
}

// Load reads the forest stored at path.
func Load(path string) (tag.Tags, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("tags file error at path %s: %w", path, err)
	}

	var tags tag.Tags
	if err := json.Unmarshal(data, &tags); err != nil {
		return nil, fmt.Errorf("json error at path %s: %w", path, err)
	}
	for _, t := range tags {
		if t == nil {
			return nil, fmt.Errorf("json error at path %s: null tag", path)
		}
	}
	return tags, nil
}

// Peek loads path like Load but never creates anything; a missing file is an
// empty forest.
func Peek(path string) (tag.Tags, error) {
	tags, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return tag.Tags{}, nil
	}
	return tags, err
}

// Save overwrites path with the whole forest. The file is replaced through a
// rename so readers never see a partial write.
func Save(path string, tags tag.Tags) error {
	if dupe := tags.Duplicate(); dupe != "" {
		return &tag.NameCollisionError{Name: dupe}
	}
	if tags == nil {
		tags = tag.Tags{}
	}

	data, err := json.MarshalIndent(tags, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal tags: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create data directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op once renamed

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write tags to %s: %w", tmpName, err)
	}
	if err := tmp.Chmod(0640); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to set permissions on %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("failed to replace tags file %s: %w", path, err)
	}
	return nil
}
