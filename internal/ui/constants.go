// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

// state represents the different prompts the model can show.
type state int

const (
	stateSelectTag state = iota
	stateTagForm
	stateConfirm
)

// Indices of the tag form inputs.
const (
	fieldNames = iota
	fieldPath
	fieldAbout
	fieldApp
	fieldCount
)

const (
	footerHeight  = 2 // Lines reserved below the tag list for the key help.
	defaultWidth  = 80
	defaultHeight = 20
)
