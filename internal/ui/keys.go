// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// This file defines the keyboard bindings for the interactive prompts.

package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings used by the prompts.
type KeyMap struct {
	// Navigation keys
	Up   key.Binding // Previous form field
	Down key.Binding // Next form field

	// General UI control
	Quit     key.Binding // Abort the prompt
	Enter    key.Binding // Confirm selection
	Esc      key.Binding // Cancel or pick the parent tag
	Tab      key.Binding // Next field in forms
	ShiftTab key.Binding // Previous field in forms
	Yes      key.Binding // Confirm in prompts
	No       key.Binding // Deny in prompts
}

// DefaultKeyMap provides the default keybindings.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("up"),
		key.WithHelp("↑", "prev field"),
	),
	Down: key.NewBinding(
		key.WithKeys("down"),
		key.WithHelp("↓", "next field"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select/confirm"),
	),
	Esc: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back/cancel"),
	),
	Tab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next field"),
	),
	ShiftTab: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "prev field"),
	),
	Yes: key.NewBinding(
		key.WithKeys("y", "Y"),
		key.WithHelp("y", "yes"),
	),
	No: key.NewBinding(
		key.WithKeys("n", "N"),
		key.WithHelp("n", "no"),
	),
}
