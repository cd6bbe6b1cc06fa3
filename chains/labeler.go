// elalign: column alignment of ordered group chains.
// Copyright (c) 2021 imec vzw.

// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version, and Additional Terms
// (see below).

// This program is distributed in the hope that it will be useful, but
// WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// Affero General Public License for more details.

// You should have received a copy of the GNU Affero General Public
// License and Additional Terms along with this program. If not, see
// <https://www.gnu.org/licenses/>.

package chains

import (
	"strconv"
	"strings"
)

// ChainStartLabel is the display label for the start of a chain.
const ChainStartLabel = "-"

// DefaultLabelSeparator separates a group name from its instance
// number in a label.
const DefaultLabelSeparator = "_"

var parenthesesRemover = strings.NewReplacer("(", "", ")", "")

// NormalizeLabel strips inferred-cell parentheses and surrounding
// white space from a label. An empty result is replaced by
// ChainStartLabel.
func NormalizeLabel(label string) string {
	label = strings.TrimSpace(parenthesesRemover.Replace(label))
	if label == "" {
		return ChainStartLabel
	}
	return label
}

/*
A Labeler assigns display labels to group occurrences.

Groups that occur only once in the whole corpus are labeled with their
own name. Other groups get an instance number per distinct label of
their immediate predecessor: the same group after the same predecessor
label always gets the same label, and after a different predecessor
label always a different one. Instance numbers are assigned in the
order in which the contexts are first seen.

A Labeler is not safe for concurrent use.
*/
type Labeler struct {
	model     *FrequencyModel
	separator string
	contexts  map[Group]map[string]string
}

// NewLabeler returns a Labeler for the given model. An empty separator
// selects DefaultLabelSeparator.
func NewLabeler(model *FrequencyModel, separator string) *Labeler {
	if separator == "" {
		separator = DefaultLabelSeparator
	}
	return &Labeler{
		model:     model,
		separator: separator,
		contexts:  make(map[Group]map[string]string),
	}
}

// LabelFor returns the display label for an occurrence of the group
// after a cell with the given label.
func (l *Labeler) LabelFor(group Group, predecessorLabel string) string {
	name := NormalizeLabel(*group)
	if l.model.Occurrences(group) <= 1 {
		return name
	}
	context := NormalizeLabel(predecessorLabel)
	labels := l.contexts[group]
	if labels == nil {
		labels = make(map[string]string)
		l.contexts[group] = labels
	}
	if label, ok := labels[context]; ok {
		return label
	}
	label := name + l.separator + strconv.Itoa(len(labels)+1)
	labels[context] = label
	return label
}
