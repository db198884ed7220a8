// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// --- Update Handlers ---
// These methods handle key presses for each prompt.

// handleSelectKeys walks the tag tree. Enter picks the highlighted tag and
// descends into its subtags if it has any; esc on a subtag level picks the
// parent instead, and esc on the top level cancels.
func (m model) handleSelectKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keymap.Quit) {
		m.cancelled = true
		return m, tea.Quit
	}

	// While the user types a filter, every key belongs to the list.
	if m.list.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keymap.Enter):
		item, ok := m.list.SelectedItem().(tagItem)
		if !ok {
			return m, nil
		}
		m.path = append(m.path, item.t.Name())
		if len(item.t.Subtags) == 0 {
			m.done = true
			return m, tea.Quit
		}
		m.list.ResetFilter()
		cmd := m.list.SetItems(listItems(item.t.Subtags))
		m.list.ResetSelected()
		m.list.Title = m.subPrompt
		return m, cmd

	case key.Matches(msg, m.keymap.Esc) && m.list.FilterState() == list.Unfiltered:
		if len(m.path) == 0 {
			m.cancelled = true
		} else {
			m.done = true
		}
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// handleFormKeys moves between the form fields and submits on enter in the
// last field.
func (m model) handleFormKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit), key.Matches(msg, m.keymap.Esc):
		m.cancelled = true
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Enter):
		if m.focusIndex < len(m.formInputs)-1 {
			return m, m.focusField(m.focusIndex + 1)
		}
		values, err := m.buildValuesFromForm()
		if err != nil {
			m.formError = err
			return m, m.focusField(fieldNames)
		}
		m.values = values
		m.done = true
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Tab), key.Matches(msg, m.keymap.Down):
		return m, m.focusField((m.focusIndex + 1) % len(m.formInputs))

	case key.Matches(msg, m.keymap.ShiftTab), key.Matches(msg, m.keymap.Up):
		return m, m.focusField((m.focusIndex - 1 + len(m.formInputs)) % len(m.formInputs))
	}

	var cmd tea.Cmd
	m.formInputs[m.focusIndex], cmd = m.formInputs[m.focusIndex].Update(msg)
	return m, cmd
}

// focusField moves the cursor to input i.
func (m *model) focusField(i int) tea.Cmd {
	m.formInputs[m.focusIndex].Blur()
	m.focusIndex = i
	return m.formInputs[i].Focus()
}

func (m model) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Yes):
		m.confirmed = true
		m.done = true
		return m, tea.Quit
	case key.Matches(msg, m.keymap.No), key.Matches(msg, m.keymap.Esc), key.Matches(msg, m.keymap.Enter):
		m.done = true
		return m, tea.Quit
	case key.Matches(msg, m.keymap.Quit):
		m.cancelled = true
		return m, tea.Quit
	}
	return m, nil
}
