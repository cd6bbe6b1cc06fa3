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

// A Filter returns true if the read should be kept, and false if the
// read should be removed.
type Filter func(*Read) bool

// FilterLocus keeps only reads from the given locus.
func FilterLocus(locus int) Filter {
	return func(read *Read) bool { return read.Metadata.Locus.Is(locus) }
}

// FilterRatio keeps only reads with the given ratio.
func FilterRatio(ratio int) Filter {
	return func(read *Read) bool { return read.Metadata.Ratio.Is(ratio) }
}

// FilterTimepoint keeps only reads from the given timepoint.
func FilterTimepoint(timepoint int) Filter {
	return func(read *Read) bool { return read.Metadata.Timepoint.Is(timepoint) }
}

// ComposeFilters returns a Filter that keeps a read only if all given
// filters keep it. ComposeFilters returns nil if there are no non-nil
// filters.
func ComposeFilters(filters ...Filter) Filter {
	var fs []Filter
	for _, f := range filters {
		if f != nil {
			fs = append(fs, f)
		}
	}
	if len(fs) == 0 {
		return nil
	}
	return func(read *Read) bool {
		for _, f := range fs {
			if !f(read) {
				return false
			}
		}
		return true
	}
}

// Keep returns true if the record should be kept under the given
// filter. Comments and malformed records are always kept, because they
// are passed through to the output.
func (r *Record) Keep(filter Filter) bool {
	return filter == nil || r.Read == nil || filter(r.Read)
}
