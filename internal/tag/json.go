// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package tag

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
)

// wireTag is the canonical on-disk shape of a tag.
type wireTag struct {
	Names   []string `json:"names"`
	Path    string   `json:"path,omitempty"`
	About   string   `json:"about,omitempty"`
	App     string   `json:"app,omitempty"`
	Subtags Tags     `json:"subtags,omitempty"`
}

// MarshalJSON writes the canonical keys, omitting empty ones.
func (t *Tag) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireTag{
		Names:   t.Names,
		Path:    t.Path,
		About:   t.About,
		App:     t.App,
		Subtags: t.Subtags,
	})
}

// readTag accepts the key aliases older and hand-written files use.
type readTag struct {
	Names              oneOrMore `json:"names"`
	Name               oneOrMore `json:"name"`
	Path               *string   `json:"path"`
	URL                *string   `json:"url"`
	Link               *string   `json:"link"`
	About              string    `json:"about"`
	App                *string   `json:"app"`
	DefaultApp         *string   `json:"default_app"`
	DefaultApplication *string   `json:"default_application"`
	Subtags            Tags      `json:"subtags"`
}

// UnmarshalJSON reads a tag, treating `name` as `names` and `url`/`link` as
// `path`. Names may be a single string or a non-empty array.
func (t *Tag) UnmarshalJSON(data []byte) error {
	var r readTag
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}

	names := r.Names
	if names == nil {
		names = r.Name
	}
	if len(names) == 0 {
		return errors.New("tag is missing `names`")
	}

	*t = Tag{
		Names:   []string(names),
		Path:    firstSet(r.Path, r.URL, r.Link),
		About:   r.About,
		App:     firstSet(r.App, r.DefaultApp, r.DefaultApplication),
		Subtags: r.Subtags.compact(),
	}
	return nil
}

// compact drops the nil entries a `null` array element decodes to.
func (ts Tags) compact() Tags {
	return slices.DeleteFunc(ts, func(t *Tag) bool { return t == nil })
}

func firstSet(values ...*string) string {
	for _, v := range values {
		if v != nil {
			return *v
		}
	}
	return ""
}

// oneOrMore decodes either a string or a non-empty array of strings.
type oneOrMore []string

func (o *oneOrMore) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}
	var one string
	if err := json.Unmarshal(data, &one); err == nil {
		*o = oneOrMore{one}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("expected a string or a list of strings: %w", err)
	}
	if len(many) == 0 {
		return errors.New("expected at least one item, found empty array")
	}
	*o = many
	return nil
}
