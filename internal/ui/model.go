// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package ui implements the interactive prompts used when add, remove or
// update are run without a tag: a fuzzy-filtered tag picker, a tag form and a
// yes/no confirmation.
package ui

import (
	"strings"

	"opentag/internal/tag"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// tagItem adapts a tag to the list component.
type tagItem struct{ t *tag.Tag }

func (i tagItem) Title() string {
	title := i.t.Name()
	if aliases := i.t.Aliases(); len(aliases) > 0 {
		title += " (" + strings.Join(aliases, ", ") + ")"
	}
	if len(i.t.Subtags) > 0 {
		title += " ›"
	}
	return title
}

func (i tagItem) Description() string {
	if s := i.t.Summary(); s != "" {
		return s
	}
	return i.t.Path
}

func (i tagItem) FilterValue() string { return strings.Join(i.t.Names, " ") }

func listItems(tags tag.Tags) []list.Item {
	items := make([]list.Item, len(tags))
	for i, t := range tags {
		items[i] = tagItem{t}
	}
	return items
}

type model struct {
	state  state
	keymap KeyMap
	width  int
	height int

	// Tag selection
	list      list.Model
	path      []string
	subPrompt string

	// Tag form
	title      string
	formInputs []textinput.Model
	focusIndex int
	formError  error
	values     FormValues

	// Confirmation
	question  string
	confirmed bool

	done      bool
	cancelled bool
}

func newSelectModel(tags tag.Tags, prompt, subPrompt string) model {
	l := list.New(listItems(tags), list.NewDefaultDelegate(), defaultWidth, defaultHeight-footerHeight)
	l.Title = prompt
	l.Styles.Title = titleStyle
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()

	return model{
		state:     stateSelectTag,
		keymap:    DefaultKeyMap,
		width:     defaultWidth,
		height:    defaultHeight,
		list:      l,
		subPrompt: subPrompt,
	}
}

func newFormModel(title string, initial *tag.Tag) model {
	return model{
		state:      stateTagForm,
		keymap:     DefaultKeyMap,
		width:      defaultWidth,
		height:     defaultHeight,
		title:      title,
		formInputs: createTagForm(initial),
	}
}

func newConfirmModel(question string) model {
	return model{
		state:    stateConfirm,
		keymap:   DefaultKeyMap,
		width:    defaultWidth,
		height:   defaultHeight,
		question: question,
	}
}

func (m model) Init() tea.Cmd {
	if m.state == stateTagForm {
		return textinput.Blink
	}
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.state == stateSelectTag {
			m.list.SetSize(msg.Width, msg.Height-footerHeight)
		}
		return m, nil

	case tea.KeyMsg:
		switch m.state {
		case stateSelectTag:
			return m.handleSelectKeys(msg)
		case stateTagForm:
			return m.handleFormKeys(msg)
		case stateConfirm:
			return m.handleConfirmKeys(msg)
		}
	}

	if m.state == stateSelectTag {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) View() string {
	if m.done || m.cancelled {
		return ""
	}
	switch m.state {
	case stateSelectTag:
		return m.renderSelect()
	case stateTagForm:
		return m.renderForm()
	case stateConfirm:
		return m.renderConfirm()
	}
	return ""
}
