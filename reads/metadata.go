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

package reads

import (
	"strconv"
	"strings"
)

func isMetadataSeparator(r rune) bool {
	return r == '_' || r == '-' || r == '.'
}

func parseTaggedInt(token string, tag byte) (OptionalInt, bool) {
	if len(token) < 2 || (token[0] != tag && token[0] != tag+'a'-'A') {
		return OptionalInt{}, false
	}
	value, err := strconv.Atoi(token[1:])
	if err != nil || value < 0 {
		return OptionalInt{}, false
	}
	return OptionalInt{Value: value, Valid: true}, true
}

/*
ParseMetadata extracts locus, ratio, and timepoint information from a
sample name.

The sample name is split on '_', '-', and '.'. Tokens of the form
L<n>, R<n>, and T<n> (case-insensitive) set the locus, the ratio, and
the timepoint, respectively. If a tag occurs more than once, the last
occurrence wins. Tokens that do not match are ignored.
*/
func ParseMetadata(sample string) (metadata Metadata) {
	for _, token := range strings.FieldsFunc(sample, isMetadataSeparator) {
		if value, ok := parseTaggedInt(token, 'L'); ok {
			metadata.Locus = value
		} else if value, ok := parseTaggedInt(token, 'R'); ok {
			metadata.Ratio = value
		} else if value, ok := parseTaggedInt(token, 'T'); ok {
			metadata.Timepoint = value
		}
	}
	return metadata
}
