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
	"sort"

	"github.com/exascience/pargo/parallel"
	psort "github.com/exascience/pargo/sort"

	"github.com/exascience/elalign/reads"
	"github.com/exascience/elalign/utils"
)

// A Group is an interned group token.
type Group = utils.Symbol

// ChainStart is the predecessor of the first group of every read.
var ChainStart = utils.Intern("")

type frequencyTables struct {
	occurrences  map[Group]int
	predecessors map[Group]utils.SmallCountMap
}

func newFrequencyTables() *frequencyTables {
	return &frequencyTables{
		occurrences:  make(map[Group]int),
		predecessors: make(map[Group]utils.SmallCountMap),
	}
}

// ingest counts the groups of one read and their immediate
// predecessors. Each read contributes 1 to the read counts and its
// abundance to the abundance counts.
func (tables *frequencyTables) ingest(read *reads.Read) {
	if len(read.Groups) == 0 {
		return
	}
	predecessor := ChainStart
	for _, group := range read.Groups {
		tables.occurrences[group]++
		counts := tables.predecessors[group]
		counts.Add(predecessor, utils.Count{Reads: 1, Abundance: read.Count})
		tables.predecessors[group] = counts
		predecessor = group
	}
}

func (tables *frequencyTables) merge(other *frequencyTables) *frequencyTables {
	for group, n := range other.occurrences {
		tables.occurrences[group] += n
	}
	for group, counts := range other.predecessors {
		merged := tables.predecessors[group]
		merged.Merge(counts)
		tables.predecessors[group] = merged
	}
	return tables
}

/*
A FrequencyModel holds corpus-wide group statistics: how often each
group occurs, and how often each other group immediately precedes it,
both counted per read and weighted by read abundance.

A FrequencyModel is not modified after NewFrequencyModel returns it, so
it can be shared by concurrent goroutines.
*/
type FrequencyModel struct {
	occurrences  map[Group]int
	predecessors map[Group]utils.SmallCountMap
	groups       []Group
	index        map[Group]int
}

// NewFrequencyModel counts the groups of all given reads. Reads are
// counted in parallel and the partial counts merged afterwards.
func NewFrequencyModel(rds []*reads.Read) *FrequencyModel {
	if len(rds) == 0 {
		return newFrozenModel(newFrequencyTables())
	}
	result := parallel.RangeReduce(0, len(rds), 0, func(low, high int) interface{} {
		tables := newFrequencyTables()
		for _, read := range rds[low:high] {
			tables.ingest(read)
		}
		return tables
	}, func(result1, result2 interface{}) interface{} {
		return result1.(*frequencyTables).merge(result2.(*frequencyTables))
	})
	return newFrozenModel(result.(*frequencyTables))
}

func newFrozenModel(tables *frequencyTables) *FrequencyModel {
	model := &FrequencyModel{
		occurrences:  tables.occurrences,
		predecessors: tables.predecessors,
		index:        make(map[Group]int),
	}
	model.addGroup(ChainStart)
	for group := range tables.occurrences {
		model.addGroup(group)
	}
	for _, counts := range tables.predecessors {
		for _, entry := range counts {
			model.addGroup(entry.Key)
		}
	}
	sort.Slice(model.groups, func(i, j int) bool {
		return utils.SymbolLess(model.groups[i], model.groups[j])
	})
	for i, group := range model.groups {
		model.index[group] = i
	}
	return model
}

func (model *FrequencyModel) addGroup(group Group) {
	if _, ok := model.index[group]; !ok {
		model.index[group] = -1
		model.groups = append(model.groups, group)
	}
}

// Occurrences returns how often the group occurs in all reads,
// without taking read abundance into account.
func (model *FrequencyModel) Occurrences(group Group) int {
	return model.occurrences[group]
}

// Predecessors returns the counts of the groups that immediately
// precede the given group. ChainStart stands for the start of a read.
// The result must not be modified.
func (model *FrequencyModel) Predecessors(group Group) utils.SmallCountMap {
	return model.predecessors[group]
}

// Len returns the number of distinct groups known to the model,
// including ChainStart.
func (model *FrequencyModel) Len() int {
	return len(model.groups)
}

// Index returns a dense index in [0, Len()) for the given group, in
// lexicographic order of the groups.
func (model *FrequencyModel) Index(group Group) (int, bool) {
	i, ok := model.index[group]
	return i, ok
}

// GroupFrequency is an entry of the frequency table.
type GroupFrequency struct {
	Group Group
	Count int
}

type stableFrequencySorter []GroupFrequency

func (s stableFrequencySorter) SequentialSort(i, j int) {
	slice := s[i:j]
	sort.SliceStable(slice, func(i, j int) bool {
		return slice[i].Count > slice[j].Count
	})
}

func (s stableFrequencySorter) NewTemp() psort.StableSorter {
	return stableFrequencySorter(make([]GroupFrequency, len(s)))
}

func (s stableFrequencySorter) Len() int {
	return len(s)
}

func (s stableFrequencySorter) Less(i, j int) bool {
	return s[i].Count > s[j].Count
}

func (s stableFrequencySorter) Assign(source psort.StableSorter) func(i, j, len int) {
	dst, src := s, source.(stableFrequencySorter)
	return func(i, j, len int) {
		copy(dst[i:i+len], src[j:j+len])
	}
}

// Frequencies returns the occurrence counts of all groups, sorted by
// descending count, and by group for equal counts.
func (model *FrequencyModel) Frequencies() []GroupFrequency {
	result := make([]GroupFrequency, 0, len(model.occurrences))
	for _, group := range model.groups {
		if n := model.occurrences[group]; n > 0 {
			result = append(result, GroupFrequency{group, n})
		}
	}
	psort.StableSort(stableFrequencySorter(result))
	return result
}
