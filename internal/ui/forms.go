// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

import (
	"fmt"
	"strings"

	"opentag/internal/tag"

	"github.com/charmbracelet/bubbles/textinput"
)

// FormValues holds what the user entered in the tag form.
type FormValues struct {
	Names []string
	Path  string
	About string
	App   string
}

// ParseNames splits a comma-separated list of names, trimming whitespace and
// dropping empty entries.
func ParseNames(s string) []string {
	var names []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			names = append(names, part)
		}
	}
	return names
}

// --- Form Creation ---

// createTagForm builds the inputs for a tag. A nil initial gives an empty
// form for a new tag; otherwise the inputs are prefilled for editing.
func createTagForm(initial *tag.Tag) []textinput.Model {
	inputs := make([]textinput.Model, fieldCount)
	var t textinput.Model

	t = textinput.New()
	t.Placeholder = "Name and aliases, comma-separated (at least one)"
	t.Focus() // Initial focus
	t.CharLimit = 200
	t.Width = 60
	t.Validate = func(s string) error {
		for _, name := range ParseNames(s) {
			if err := tag.ValidateName(name); err != nil {
				return err
			}
		}
		return nil
	}
	inputs[fieldNames] = t

	t = textinput.New()
	t.Placeholder = "Path or URL (leave blank for a branch tag)"
	t.CharLimit = 500
	t.Width = 60
	inputs[fieldPath] = t

	t = textinput.New()
	t.Placeholder = "About (optional)"
	t.CharLimit = 300
	t.Width = 60
	inputs[fieldAbout] = t

	t = textinput.New()
	t.Placeholder = "Default app to open the tag with (optional)"
	t.CharLimit = 100
	t.Width = 40
	inputs[fieldApp] = t

	if initial != nil {
		inputs[fieldNames].SetValue(strings.Join(initial.Names, ", "))
		inputs[fieldPath].SetValue(initial.Path)
		inputs[fieldAbout].SetValue(initial.About)
		inputs[fieldApp].SetValue(initial.App)
	}

	return inputs
}

var formLabels = [fieldCount]string{"Names", "Path/URL", "About", "App"}

// --- Form Processing ---

// buildValuesFromForm reads the form inputs. Blank optional fields mean the
// field is unset or cleared.
func (m *model) buildValuesFromForm() (FormValues, error) {
	names := ParseNames(m.formInputs[fieldNames].Value())
	if len(names) == 0 {
		return FormValues{}, tag.ErrMissingName
	}
	for _, name := range names {
		if err := tag.ValidateName(name); err != nil {
			return FormValues{}, fmt.Errorf("invalid name `%s`: %w", name, err)
		}
	}

	return FormValues{
		Names: names,
		Path:  strings.TrimSpace(m.formInputs[fieldPath].Value()),
		About: strings.TrimSpace(m.formInputs[fieldAbout].Value()),
		App:   strings.TrimSpace(m.formInputs[fieldApp].Value()),
	}, nil
}
