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

import "testing"

func TestParseMetadata(t *testing.T) {
	m := ParseMetadata("exp-l4.r10_t0")
	if !m.Locus.Is(4) || !m.Ratio.Is(10) || !m.Timepoint.Is(0) {
		t.Error("ParseMetadata 1 failed")
	}
	m = ParseMetadata("Rep2_T5")
	if m.Locus.Valid || m.Ratio.Valid || !m.Timepoint.Is(5) {
		t.Error("ParseMetadata 2 failed")
	}
	m = ParseMetadata("sample")
	if m.Locus.Valid || m.Ratio.Valid || m.Timepoint.Valid {
		t.Error("ParseMetadata 3 failed")
	}
	m = ParseMetadata("L1_L2")
	if !m.Locus.Is(2) {
		t.Error("ParseMetadata 4 failed")
	}
}

func TestFilters(t *testing.T) {
	read := &Read{Sample: "L1_R2_T3", Metadata: ParseMetadata("L1_R2_T3")}
	other := &Read{Sample: "L2", Metadata: ParseMetadata("L2")}
	if !FilterLocus(1)(read) || FilterLocus(1)(other) {
		t.Error("FilterLocus failed")
	}
	if !FilterRatio(2)(read) || FilterRatio(2)(other) {
		t.Error("FilterRatio failed")
	}
	if !FilterTimepoint(3)(read) || FilterTimepoint(3)(other) {
		t.Error("FilterTimepoint failed")
	}
	if ComposeFilters() != nil || ComposeFilters(nil, nil) != nil {
		t.Error("ComposeFilters empty failed")
	}
	filter := ComposeFilters(FilterLocus(1), nil, FilterTimepoint(3))
	if !filter(read) || filter(other) {
		t.Error("ComposeFilters failed")
	}
	if !(&Record{Raw: "broken"}).Keep(filter) || !(&Record{Read: read}).Keep(nil) || (&Record{Read: other}).Keep(filter) {
		t.Error("Keep failed")
	}
}
