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
	"math/rand"
	"strconv"

	"github.com/exascience/elalign/reads"
	"github.com/exascience/elalign/utils"
)

func makeRead(sample string, count int, groups ...string) *reads.Read {
	return &reads.Read{Sample: sample, Count: count, Groups: utils.InternAll(groups...)}
}

func makeRecords(rds ...*reads.Read) []*reads.Record {
	records := make([]*reads.Record, len(rds))
	for i, read := range rds {
		records[i] = &reads.Record{Read: read}
	}
	return records
}

func groupNames(groups []Group) []string {
	names := make([]string, len(groups))
	for i, group := range groups {
		names[i] = *group
	}
	return names
}

func stringsEqual(strs1, strs2 []string) bool {
	if len(strs1) != len(strs2) {
		return false
	}
	for i, s := range strs1 {
		if s != strs2[i] {
			return false
		}
	}
	return true
}

func cellStrings(cells []Cell) []string {
	result := make([]string, len(cells))
	for i, cell := range cells {
		result[i] = cell.String()
	}
	return result
}

// example1Corpus has Q and Z preceding F in one read each, with Z much
// more abundant, and one read of F on its own.
func example1Corpus() []*reads.Read {
	return []*reads.Read{
		makeRead("r1", 2, "Q", "F"),
		makeRead("r2", 10, "Z", "F"),
		makeRead("r3", 1, "F"),
	}
}

// makeRandomCorpus generates reads over a small alphabet, so that the
// same groups occur in many different orders, including cycles.
func makeRandomCorpus(seed int64, n, alphabet, maxLength int) []*reads.Read {
	rnd := rand.New(rand.NewSource(seed))
	result := make([]*reads.Read, n)
	for i := range result {
		groups := make([]string, 1+rnd.Intn(maxLength))
		for j := range groups {
			groups[j] = "g" + strconv.Itoa(rnd.Intn(alphabet))
		}
		result[i] = makeRead("s"+strconv.Itoa(i), 1+rnd.Intn(20), groups...)
	}
	return result
}
