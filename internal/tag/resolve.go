// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package tag

import "fmt"

// Status is the outcome of walking a token sequence down the tree.
type Status int

const (
	// NotFound means the first token matched no root tag.
	NotFound Status = iota
	// Resolved means every token matched and the last tag has a target.
	Resolved
	// Incomplete means every token matched but the last tag is a branch.
	Incomplete
	// Partial means some tokens matched and a later one did not.
	Partial
)

func (s Status) String() string {
	switch s {
	case NotFound:
		return "not found"
	case Resolved:
		return "resolved"
	case Incomplete:
		return "incomplete"
	case Partial:
		return "partial match"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Resolution describes how far a token sequence got.
type Resolution struct {
	Status Status

	// Tag is the last tag that matched. Nil for NotFound.
	Tag *Tag

	// Trail holds every matched tag from the root down to Tag.
	Trail []*Tag

	// Remaining holds the tokens that were not consumed.
	Remaining []string

	// siblings points at the slice that holds Tag.
	siblings *Tags
}

// Complete reports whether every token was consumed.
func (r Resolution) Complete() bool {
	return r.Status == Resolved || r.Status == Incomplete
}

// Err converts every outcome except Resolved into the matching error.
func (r Resolution) Err() error {
	switch r.Status {
	case Resolved:
		return nil
	case Incomplete:
		return &IncompleteError{Tag: r.Tag}
	case Partial:
		return &PartialMatchError{Tag: r.Tag, Unconsumed: r.Remaining}
	default:
		token := ""
		if len(r.Remaining) > 0 {
			token = r.Remaining[0]
		}
		return &NotFoundError{Token: token}
	}
}

// target is like Err but accepts branch tags, which is what mutations need.
func (r Resolution) target() error {
	if r.Status == Incomplete {
		return nil
	}
	return r.Err()
}

// Resolve walks tokens down the forest, matching each token against the
// children of the previous match. It stops at the first token that matches
// nothing; there is no backtracking. An empty token sequence is NotFound.
func Resolve(roots Tags, tokens []string) Resolution {
	return resolve(&roots, tokens)
}

func resolve(roots *Tags, tokens []string) Resolution {
	res := Resolution{Status: NotFound, Remaining: tokens}
	level := roots
	for i, token := range tokens {
		idx := level.index(token)
		if idx < 0 {
			if i > 0 {
				res.Status = Partial
			}
			return res
		}
		res.Tag = (*level)[idx]
		res.Trail = append(res.Trail, res.Tag)
		res.Remaining = tokens[i+1:]
		res.siblings = level
		level = &res.Tag.Subtags
	}
	if res.Tag == nil {
		return res
	}
	res.Remaining = nil
	if res.Tag.HasTarget() {
		res.Status = Resolved
	} else {
		res.Status = Incomplete
	}
	return res
}
