// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// --- View Helpers ---

func (m model) renderSelect() string {
	footer := renderFooter(
		m.keymap.Enter,
		key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
		m.keymap.Esc,
		m.keymap.Quit,
	)
	return lipgloss.JoinVertical(lipgloss.Left, m.list.View(), footer)
}

func (m model) renderForm() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n\n")

	for i, input := range m.formInputs {
		label := labelStyle.Render(fmt.Sprintf("%-9s", formLabels[i]))
		if i == m.focusIndex {
			label = focusedStyle.Render(fmt.Sprintf("%-9s", formLabels[i]))
		}
		fmt.Fprintf(&b, "%s %s\n", label, input.View())
	}

	if m.formError != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.formError)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(renderFooter(m.keymap.Tab, m.keymap.ShiftTab, m.keymap.Enter, m.keymap.Esc))
	return b.String()
}

func (m model) renderConfirm() string {
	return fmt.Sprintf("%s %s\n", m.question, identifierColor.Render("[y/N]"))
}

// renderFooter renders the key help line shown below each prompt.
func renderFooter(bindings ...key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, footerKeyStyle.Render(h.Key)+" "+footerDescStyle.Render(h.Desc))
	}
	return footerStyle.Render(strings.Join(parts, footerSeparatorStyle.Render(" | ")))
}
