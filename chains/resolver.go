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
	"log"
	"sync/atomic"

	"github.com/bits-and-blooms/bitset"
	"github.com/exascience/pargo/sync"

	"github.com/exascience/elalign/utils"
)

type groupKey struct {
	group Group
}

func (key groupKey) Hash() uint64 {
	return utils.SymbolHash(key.group)
}

/*
A Resolver derives the most probable chain of ancestors of a group from
a FrequencyModel.

Resolved chains are cached for the lifetime of the Resolver. Since a
chain only depends on the model, which does not change, the cache never
needs to be invalidated. It is safe for multiple goroutines to call
Resolve concurrently.
*/
type Resolver struct {
	model  *FrequencyModel
	chains *sync.Map
	cycles int64
}

// NewResolver returns a Resolver for the given model.
func NewResolver(model *FrequencyModel) *Resolver {
	return &Resolver{
		model:  model,
		chains: sync.NewMap(0),
	}
}

// betterPredecessor orders candidate predecessors: more reads first,
// then higher abundance, then the lexicographically smaller group.
func betterPredecessor(entry1, entry2 utils.SmallCountMapEntry) bool {
	if entry1.Reads != entry2.Reads {
		return entry1.Reads > entry2.Reads
	}
	if entry1.Abundance != entry2.Abundance {
		return entry1.Abundance > entry2.Abundance
	}
	return utils.SymbolLess(entry1.Key, entry2.Key)
}

// BestPredecessor returns the most probable immediate predecessor of
// the given group. It returns false if the group has never been
// observed with a predecessor.
func (r *Resolver) BestPredecessor(group Group) (Group, bool) {
	counts := r.model.Predecessors(group)
	if len(counts) == 0 {
		return nil, false
	}
	best := counts[0]
	for _, entry := range counts[1:] {
		if betterPredecessor(entry, best) {
			best = entry
		}
	}
	return best.Key, true
}

/*
Resolve returns the most probable chain of ancestors of the given
group, most distant ancestor first. The chain never contains the group
itself.

The chain follows the best predecessor of each group, starting with
the given group, until it reaches ChainStart. A group that is its own
best predecessor starts a chain. If the walk reaches a group that is
already part of the chain, the predecessor statistics contain a cycle:
the chain is truncated at that point, and a warning is logged.

The returned slice is shared and must not be modified.
*/
func (r *Resolver) Resolve(group Group) []Group {
	key := groupKey{group}
	if chain, ok := r.chains.Load(key); ok {
		return chain.([]Group)
	}
	chain, _ := r.chains.LoadOrStore(key, r.walk(group))
	return chain.([]Group)
}

// Cycles returns the number of cycles detected so far.
func (r *Resolver) Cycles() int {
	return int(atomic.LoadInt64(&r.cycles))
}

func (r *Resolver) reportCycle(group, ancestor Group) {
	atomic.AddInt64(&r.cycles, 1)
	log.Printf("Warning: cyclic predecessors for group %v at %v, truncating its chain.\n", *group, *ancestor)
}

func (r *Resolver) walk(group Group) []Group {
	best, ok := r.BestPredecessor(group)
	if !ok || best == ChainStart || best == group {
		return nil
	}
	visited := bitset.New(uint(r.model.Len()))
	visit := func(g Group) bool {
		i, _ := r.model.Index(g)
		if visited.Test(uint(i)) {
			return false
		}
		visited.Set(uint(i))
		return true
	}
	visit(group)
	var ancestors []Group // most recent first
	for current := group; ; {
		best, ok := r.BestPredecessor(current)
		if !ok || best == ChainStart {
			break
		}
		if !visit(best) {
			r.reportCycle(group, best)
			break
		}
		ancestors = append(ancestors, best)
		if cached, ok := r.chains.Load(groupKey{best}); ok {
			chain := cached.([]Group)
			for i := len(chain) - 1; i >= 0; i-- {
				if !visit(chain[i]) {
					r.reportCycle(group, chain[i])
					break
				}
				ancestors = append(ancestors, chain[i])
			}
			break
		}
		current = best
	}
	chain := make([]Group, len(ancestors))
	for i, ancestor := range ancestors {
		chain[len(ancestors)-1-i] = ancestor
	}
	return chain
}
