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

package utils

import "testing"

func TestSmallCountMap(t *testing.T) {
	a, b, c := Intern("a"), Intern("b"), Intern("c")
	var m SmallCountMap
	if _, ok := m.Get(a); ok {
		t.Error("SmallCountMap empty Get failed")
	}
	m.Add(b, Count{1, 5})
	m.Add(a, Count{1, 2})
	m.Add(b, Count{2, 3})
	if len(m) != 2 || m[0].Key != b || m[1].Key != a {
		t.Error("SmallCountMap order failed")
	}
	if count, ok := m.Get(b); !ok || count != (Count{3, 8}) {
		t.Error("SmallCountMap Add failed")
	}
	var other SmallCountMap
	other.Add(c, Count{1, 1})
	other.Add(a, Count{4, 4})
	m.Merge(other)
	if len(m) != 3 || m[2].Key != c {
		t.Error("SmallCountMap Merge order failed")
	}
	if count, _ := m.Get(a); count != (Count{5, 6}) {
		t.Error("SmallCountMap Merge failed")
	}
}
