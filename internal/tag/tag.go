// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package tag implements the tag tree: named entries that map short names and
// aliases to a path or URL, the resolver that walks name tokens down the tree,
// and the mutation engine that keeps sibling names unique.
package tag

import (
	"slices"
	"strings"
)

// Tag is one named entry of the tree. A tag with an empty Path is a branch
// that needs a subtag to resolve to something openable.
type Tag struct {
	// Names holds the primary name followed by any aliases.
	Names []string

	// Path is the filesystem path or URL to open.
	Path string

	// About is a short description. Its first line is used as a summary.
	About string

	// App is the application used to open Path when none is given explicitly.
	App string

	// Subtags are the children of this tag, in insertion order.
	Subtags Tags
}

// Tags is an ordered sequence of sibling tags.
type Tags []*Tag

// Name returns the primary name of the tag.
func (t *Tag) Name() string {
	if len(t.Names) == 0 {
		return ""
	}
	return t.Names[0]
}

// Aliases returns every name except the primary one.
func (t *Tag) Aliases() []string {
	if len(t.Names) < 2 {
		return nil
	}
	return t.Names[1:]
}

// Summary returns the first line of About.
func (t *Tag) Summary() string {
	line, _, _ := strings.Cut(t.About, "\n")
	return strings.TrimSpace(line)
}

// Matches reports whether token equals any of the tag's names.
func (t *Tag) Matches(token string) bool {
	return slices.Contains(t.Names, token)
}

// HasTarget reports whether the tag can be opened on its own.
func (t *Tag) HasTarget() bool {
	return t.Path != ""
}

// Clone returns a deep copy of the tag and its subtree.
func (t *Tag) Clone() *Tag {
	c := &Tag{
		Names: slices.Clone(t.Names),
		Path:  t.Path,
		About: t.About,
		App:   t.App,
	}
	c.Subtags = t.Subtags.Clone()
	return c
}

// Clone returns a deep copy of every tag in the sequence.
func (ts Tags) Clone() Tags {
	if ts == nil {
		return nil
	}
	out := make(Tags, len(ts))
	for i, t := range ts {
		out[i] = t.Clone()
	}
	return out
}

// FindChild returns the tag among ts that has token as one of its names.
// If a hand-edited file holds several siblings sharing a name, the first one
// wins.
func FindChild(ts Tags, token string) *Tag {
	i := ts.index(token)
	if i < 0 {
		return nil
	}
	return ts[i]
}

func (ts Tags) index(token string) int {
	return slices.IndexFunc(ts, func(t *Tag) bool { return t.Matches(token) })
}

// Names returns the primary names of ts in order.
func (ts Tags) Names() []string {
	names := make([]string, 0, len(ts))
	for _, t := range ts {
		names = append(names, t.Name())
	}
	return names
}

// Duplicate returns the first name shared by two siblings anywhere in the
// tree, or "" when every level is unique.
func (ts Tags) Duplicate() string {
	seen := make(map[string]struct{})
	for _, t := range ts {
		for _, name := range t.Names {
			if _, ok := seen[name]; ok {
				return name
			}
			seen[name] = struct{}{}
		}
	}
	for _, t := range ts {
		if dupe := t.Subtags.Duplicate(); dupe != "" {
			return dupe
		}
	}
	return ""
}
