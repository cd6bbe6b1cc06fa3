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
	"testing"

	"github.com/exascience/elalign/reads"
	"github.com/exascience/elalign/utils"
)

func TestIngest(t *testing.T) {
	model := NewFrequencyModel(example1Corpus())
	f, q, z := utils.Intern("F"), utils.Intern("Q"), utils.Intern("Z")
	if model.Occurrences(f) != 3 || model.Occurrences(q) != 1 || model.Occurrences(z) != 1 {
		t.Error("Ingest occurrences failed")
	}
	if model.Occurrences(utils.Intern("unknown")) != 0 {
		t.Error("Ingest unknown group failed")
	}
	predecessors := model.Predecessors(f)
	if len(predecessors) != 3 {
		t.Error("Ingest predecessors of F failed")
	}
	if count, ok := predecessors.Get(z); !ok || count.Reads != 1 || count.Abundance != 10 {
		t.Error("Ingest Z before F failed")
	}
	if count, ok := predecessors.Get(q); !ok || count.Reads != 1 || count.Abundance != 2 {
		t.Error("Ingest Q before F failed")
	}
	if count, ok := predecessors.Get(ChainStart); !ok || count.Reads != 1 || count.Abundance != 1 {
		t.Error("Ingest chain start before F failed")
	}
	if count, ok := model.Predecessors(z).Get(ChainStart); !ok || count.Reads != 1 || count.Abundance != 10 {
		t.Error("Ingest chain start before Z failed")
	}
}

func TestIngestRepeatedGroup(t *testing.T) {
	model := NewFrequencyModel([]*reads.Read{makeRead("s", 5, "A", "A", "A")})
	a := utils.Intern("A")
	if model.Occurrences(a) != 3 {
		t.Error("Ingest repeated occurrences failed")
	}
	if count, _ := model.Predecessors(a).Get(a); count.Reads != 2 || count.Abundance != 10 {
		t.Error("Ingest self predecessor failed")
	}
}

func TestEmptyModel(t *testing.T) {
	model := NewFrequencyModel(nil)
	if model.Len() != 1 {
		t.Error("empty model Len failed")
	}
	if i, ok := model.Index(ChainStart); !ok || i != 0 {
		t.Error("empty model Index failed")
	}
	if len(model.Frequencies()) != 0 {
		t.Error("empty model Frequencies failed")
	}
}

func TestParallelIngest(t *testing.T) {
	corpus := makeRandomCorpus(42, 0x4000, 30, 8)
	model := NewFrequencyModel(corpus)
	tables := newFrequencyTables()
	for _, read := range corpus {
		tables.ingest(read)
	}
	if len(tables.occurrences) != len(model.occurrences) {
		t.Error("ParallelIngest occurrences size failed")
	}
	for group, n := range tables.occurrences {
		if model.Occurrences(group) != n {
			t.Error("ParallelIngest occurrences failed for", *group)
		}
	}
	for group, counts := range tables.predecessors {
		modelCounts := model.Predecessors(group)
		if len(modelCounts) != len(counts) {
			t.Error("ParallelIngest predecessors size failed for", *group)
		}
		for _, entry := range counts {
			if count, ok := modelCounts.Get(entry.Key); !ok || count != entry.Count {
				t.Error("ParallelIngest predecessors failed for", *group)
			}
		}
	}
}

func TestIndex(t *testing.T) {
	model := NewFrequencyModel(example1Corpus())
	if model.Len() != 4 {
		t.Error("Index Len failed")
	}
	expected := []string{"", "F", "Q", "Z"}
	for i, name := range expected {
		if index, ok := model.Index(utils.Intern(name)); !ok || index != i {
			t.Error("Index failed for", name)
		}
	}
	if _, ok := model.Index(utils.Intern("unknown")); ok {
		t.Error("Index unknown group failed")
	}
}

func TestFrequencies(t *testing.T) {
	model := NewFrequencyModel([]*reads.Read{
		makeRead("s1", 1, "B", "A", "C"),
		makeRead("s2", 7, "C", "D"),
		makeRead("s3", 1, "C", "A"),
	})
	frequencies := model.Frequencies()
	var names []string
	var counts []int
	for _, entry := range frequencies {
		names = append(names, *entry.Group)
		counts = append(counts, entry.Count)
	}
	if !stringsEqual(names, []string{"C", "A", "B", "D"}) {
		t.Error("Frequencies order failed", names)
	}
	if len(counts) != 4 || counts[0] != 3 || counts[1] != 2 || counts[2] != 1 || counts[3] != 1 {
		t.Error("Frequencies counts failed", counts)
	}
}

func BenchmarkNewFrequencyModel(b *testing.B) {
	corpus := makeRandomCorpus(7, 0x10000, 200, 12)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		NewFrequencyModel(corpus)
	}
}
