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

// A Count pairs an unweighted occurrence count with an
// abundance-weighted one.
type Count struct {
	Reads, Abundance int
}

// Add returns the component-wise sum of two counts.
func (c Count) Add(other Count) Count {
	return Count{c.Reads + other.Reads, c.Abundance + other.Abundance}
}

// SmallCountMapEntry is an entry in a SmallCountMap.
type SmallCountMapEntry struct {
	Key Symbol
	Count
}

// A SmallCountMap maps symbols to counts, similar to Go's built-in
// maps. A SmallCountMap can be more efficient in terms of memory and
// runtime performance than a native map if it has only few entries,
// which is the usual case for the predecessors of a group. Entries
// keep the order in which their keys were first added.
type SmallCountMap []SmallCountMapEntry

// Get returns the count of the first entry in the SmallCountMap that
// has the same key as the given key.
//
// It returns the found count and true if the key was found, otherwise
// a zero count and false.
func (m SmallCountMap) Get(key Symbol) (Count, bool) {
	for _, entry := range m {
		if entry.Key == key {
			return entry.Count, true
		}
	}
	return Count{}, false
}

// Add adds the given count to the entry with the given key.
//
// It does so by either updating the first entry that has the same key
// as the given key, or else by appending a new entry to the end of the
// SmallCountMap if no entry already has that key.
func (m *SmallCountMap) Add(key Symbol, count Count) {
	for index := range *m {
		if (*m)[index].Key == key {
			(*m)[index].Count = (*m)[index].Count.Add(count)
			return
		}
	}
	*m = append(*m, SmallCountMapEntry{key, count})
}

// Merge adds all entries of other to m.
func (m *SmallCountMap) Merge(other SmallCountMap) {
	for _, entry := range other {
		m.Add(entry.Key, entry.Count)
	}
}
