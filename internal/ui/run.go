// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

import (
	"fmt"
	"os"

	"opentag/internal/tag"

	tea "github.com/charmbracelet/bubbletea"
)

func run(m model) (model, error) {
	p := tea.NewProgram(m, tea.WithOutput(os.Stderr))
	final, err := p.Run()
	if err != nil {
		return model{}, fmt.Errorf("interactive prompt failed: %w", err)
	}
	fm, ok := final.(model)
	if !ok {
		return model{}, fmt.Errorf("interactive prompt returned unexpected model %T", final)
	}
	return fm, nil
}

// SelectTag lets the user pick a tag by walking the tree, and returns the
// primary names leading to it. ok is false when the user cancelled or there
// was nothing to pick.
func SelectTag(tags tag.Tags, prompt, subPrompt string) (path []string, ok bool, err error) {
	if len(tags) == 0 {
		return nil, false, nil
	}
	m, err := run(newSelectModel(tags, prompt, subPrompt))
	if err != nil || m.cancelled {
		return nil, false, err
	}
	return m.path, true, nil
}

// EditTag shows the tag form, prefilled from initial when it is not nil.
func EditTag(title string, initial *tag.Tag) (values FormValues, ok bool, err error) {
	m, err := run(newFormModel(title, initial))
	if err != nil || m.cancelled {
		return FormValues{}, false, err
	}
	return m.values, true, nil
}

// Confirm asks a yes/no question. Anything but yes is a no.
func Confirm(question string) (bool, error) {
	m, err := run(newConfirmModel(question))
	if err != nil {
		return false, err
	}
	return m.confirmed, nil
}
