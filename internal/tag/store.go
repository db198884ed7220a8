// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package tag

import (
	"fmt"
	"slices"
	"strings"
	"unicode"
)

// ReservedNames cannot be used by root tags because they are CLI subcommands.
var ReservedNames = []string{"add", "remove", "update", "config", "completion", "help"}

// Store owns the forest of root tags.
type Store struct {
	Roots Tags
}

// NewStore wraps roots in a Store.
func NewStore(roots Tags) *Store {
	return &Store{Roots: roots}
}

// Resolve walks tokens down the store's forest.
func (s *Store) Resolve(tokens []string) Resolution {
	return resolve(&s.Roots, tokens)
}

// List returns the roots when tokens is empty, otherwise the subtags of the
// tag the tokens resolve to. Branch tags are fine here.
func (s *Store) List(tokens []string) (Tags, error) {
	if len(tokens) == 0 {
		return s.Roots, nil
	}
	res := s.Resolve(tokens)
	if err := res.target(); err != nil {
		return nil, err
	}
	return res.Tag.Subtags, nil
}

// Complete returns the names at the level reached by tokens that start with
// prefix, primary names first. It is only meant for help and shell completion.
func (s *Store) Complete(tokens []string, prefix string) []string {
	level, err := s.List(tokens)
	if err != nil {
		return nil
	}
	var out []string
	for _, t := range level {
		for _, name := range t.Names {
			if strings.HasPrefix(name, prefix) {
				out = append(out, name)
			}
		}
	}
	return out
}

// Add appends t to the subtags of the tag parent resolves to, or to the roots
// when parent is empty.
func (s *Store) Add(parent []string, t *Tag) error {
	siblings := &s.Roots
	if len(parent) > 0 {
		res := s.Resolve(parent)
		if err := res.target(); err != nil {
			return err
		}
		siblings = &res.Tag.Subtags
	}

	if err := validateNames(t.Names, len(parent) == 0); err != nil {
		return err
	}
	if err := checkCollisions(*siblings, t.Names, nil); err != nil {
		return err
	}

	*siblings = append(*siblings, t)
	return nil
}

// Remove deletes the tag path resolves to, along with its subtree.
func (s *Store) Remove(path []string) (*Tag, error) {
	if len(path) == 0 {
		return nil, ErrMissingPath
	}
	res := s.Resolve(path)
	if err := res.target(); err != nil {
		return nil, err
	}
	*res.siblings = slices.DeleteFunc(*res.siblings, func(t *Tag) bool { return t == res.Tag })
	return res.Tag, nil
}

// Optional is a field edit with three states: not set leaves the field alone,
// set to the zero value clears it, anything else replaces it.
type Optional[T any] struct {
	Value T
	Set   bool
}

// Some returns a set Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Set: true}
}

// Changes lists the edits Update applies to a tag.
type Changes struct {
	// Names replaces every name when set.
	Names Optional[[]string]

	// Aliases appends its values to the names when set, or drops every alias
	// when set with no values. It is applied after Names.
	Aliases Optional[[]string]

	Path  Optional[string]
	About Optional[string]
	App   Optional[string]
}

// Empty reports whether c would leave a tag untouched.
func (c Changes) Empty() bool {
	return !c.Names.Set && !c.Aliases.Set && !c.Path.Set && !c.About.Set && !c.App.Set
}

// Update applies c to the tag path resolves to and returns it.
func (s *Store) Update(path []string, c Changes) (*Tag, error) {
	if len(path) == 0 {
		return nil, ErrMissingPath
	}
	res := s.Resolve(path)
	if err := res.target(); err != nil {
		return nil, err
	}
	t := res.Tag

	names := t.Names
	if c.Names.Set {
		names = c.Names.Value
	}
	if c.Aliases.Set {
		names = applyAliases(names, c.Aliases.Value)
	}
	if c.Names.Set || c.Aliases.Set {
		if err := validateNames(names, len(path) == 1); err != nil {
			return nil, err
		}
		if err := checkCollisions(*res.siblings, names, t); err != nil {
			return nil, err
		}
	}

	t.Names = slices.Clone(names)
	if c.Path.Set {
		t.Path = c.Path.Value
	}
	if c.About.Set {
		t.About = c.About.Value
	}
	if c.App.Set {
		t.App = c.App.Value
	}
	return t, nil
}

func applyAliases(names, aliases []string) []string {
	if len(names) == 0 {
		return slices.Clone(aliases)
	}
	if len(aliases) == 0 {
		return []string{names[0]}
	}
	out := slices.Clone(names)
	for _, a := range aliases {
		if !slices.Contains(out, a) {
			out = append(out, a)
		}
	}
	return out
}

// ValidateName checks a single tag name.
func ValidateName(name string) error {
	switch {
	case name == "":
		return ErrEmptyName
	case strings.IndexFunc(name, unicode.IsSpace) >= 0:
		return ErrNameWithSpaces
	case strings.HasPrefix(name, "-"):
		return ErrNameBeginsWithHyphen
	case strings.Contains(name, ","):
		return ErrNameWithComma
	}
	return nil
}

func validateNames(names []string, root bool) error {
	if len(names) == 0 {
		return ErrMissingName
	}
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if err := ValidateName(name); err != nil {
			return fmt.Errorf("invalid name `%s`: %w", name, err)
		}
		if root && slices.Contains(ReservedNames, name) {
			return fmt.Errorf("`%s` cannot be used as a tag name: %w", name, ErrReservedName)
		}
		if _, ok := seen[name]; ok {
			return &NameCollisionError{Name: name}
		}
		seen[name] = struct{}{}
	}
	return nil
}

// checkCollisions reports the first name in names already used by a sibling
// other than self.
func checkCollisions(siblings Tags, names []string, self *Tag) error {
	for _, sib := range siblings {
		if sib == self {
			continue
		}
		for _, name := range names {
			if sib.Matches(name) {
				return &NameCollisionError{Name: name}
			}
		}
	}
	return nil
}
