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

/*
Package chains infers a common column layout for reads that are ordered
chains of groups.

Every group in a read is expected to have one dominant predecessor
across the whole data set. The package first collects, in one pass over
all reads, how often each group occurs and which groups immediately
precede it (see FrequencyModel). From these statistics it derives the
most probable chain of ancestors of each group (see Resolver). When
aligning a read, groups that the read is missing from its probable chain
are spliced in as inferred cells, repeated groups receive labels that
distinguish their predecessor contexts (see Labeler), and the row is
padded to a fixed number of columns (see Aligner).

Run combines these steps over a complete set of records.
*/
package chains
