// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package tag

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound      = errors.New("no tag found")
	ErrIncomplete    = errors.New("tag has no path or URL")
	ErrPartialMatch  = errors.New("no such subtag")
	ErrNameCollision = errors.New("name already in use")
	ErrMissingPath   = errors.New("no tag specified")

	ErrMissingName          = errors.New("there must be at least one name")
	ErrEmptyName            = errors.New("tag names cannot be empty")
	ErrNameWithSpaces       = errors.New("tag names cannot contain spaces")
	ErrNameBeginsWithHyphen = errors.New("tag names cannot begin with hyphens")
	ErrNameWithComma        = errors.New("tag names cannot contain commas")
	ErrReservedName         = errors.New("name is reserved")
)

// NotFoundError reports a token that matched no root tag.
type NotFoundError struct {
	Token string
}

func (e *NotFoundError) Error() string {
	if e.Token == "" {
		return ErrNotFound.Error()
	}
	return fmt.Sprintf("no tag named `%s`", e.Token)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// IncompleteError reports a branch tag that was resolved without a subtag.
type IncompleteError struct {
	Tag *Tag
}

func (e *IncompleteError) Error() string {
	return fmt.Sprintf("tag `%s` has no path or URL; specify one of its subtags", e.Tag.Name())
}

func (e *IncompleteError) Unwrap() error { return ErrIncomplete }

// PartialMatchError reports a path that matched some tags and then stopped at
// an unknown subtag.
type PartialMatchError struct {
	Tag        *Tag
	Unconsumed []string
}

func (e *PartialMatchError) Error() string {
	return fmt.Sprintf("tag `%s` has no subtag `%s`", e.Tag.Name(), strings.Join(e.Unconsumed, " "))
}

func (e *PartialMatchError) Unwrap() error { return ErrPartialMatch }

// NameCollisionError reports a name already used by a sibling.
type NameCollisionError struct {
	Name string
}

func (e *NameCollisionError) Error() string {
	return fmt.Sprintf("a tag with name `%s` already exists", e.Name)
}

func (e *NameCollisionError) Unwrap() error { return ErrNameCollision }
