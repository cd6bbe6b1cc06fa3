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

import "github.com/exascience/elalign/utils"

type (
	// An OptionalInt is an integer that may be absent.
	OptionalInt struct {
		Value int
		Valid bool
	}

	// Metadata holds the sample properties that can be encoded in a
	// sample name.
	Metadata struct {
		Locus, Ratio, Timepoint OptionalInt
	}

	// A Read is an ordered sequence of groups as observed in one
	// sample, together with its abundance. Reads are not modified
	// after parsing.
	Read struct {
		Sample   string
		Count    int
		Groups   []utils.Symbol
		Metadata Metadata
	}

	// A Record is one line of an input file. Read is nil for comment
	// lines and for lines that could not be parsed; in the latter
	// case Err describes the problem. Such records are passed through
	// to the output as their Raw text.
	Record struct {
		Raw  string
		Read *Read
		Err  error
	}
)

// Is returns true if o holds the given value.
func (o OptionalInt) Is(value int) bool {
	return o.Valid && o.Value == value
}

// IsMalformed returns true if the record could not be parsed.
func (r *Record) IsMalformed() bool {
	return r.Err != nil
}

// Reads returns the parsed reads of the given records, in order.
func Reads(records []*Record) []*Read {
	result := make([]*Read, 0, len(records))
	for _, record := range records {
		if record.Read != nil {
			result = append(result, record.Read)
		}
	}
	return result
}
