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

import (
	"strconv"
	"testing"

	"github.com/exascience/pargo/parallel"
)

func TestIntern(t *testing.T) {
	a1 := Intern("a")
	a2 := Intern(string([]byte{'a'}))
	if a1 != a2 || *a1 != "a" {
		t.Error("Intern 1 failed")
	}
	if Intern("b") == a1 {
		t.Error("Intern 2 failed")
	}
	if Intern("") != Intern("") || *Intern("") != "" {
		t.Error("Intern 3 failed")
	}
}

func TestParallelIntern(t *testing.T) {
	symbols := make([]Symbol, 1000)
	parallel.Range(0, len(symbols), 0, func(low, high int) {
		for i := low; i < high; i++ {
			symbols[i] = Intern(strconv.Itoa(i % 10))
		}
	})
	for i, s := range symbols {
		if s != Intern(strconv.Itoa(i%10)) {
			t.Error("ParallelIntern failed")
		}
	}
}

func TestInternAllAndSymbolLess(t *testing.T) {
	symbols := InternAll("b", "a", "b")
	if len(symbols) != 3 || symbols[0] != symbols[2] || *symbols[1] != "a" {
		t.Error("InternAll failed")
	}
	if !SymbolLess(symbols[1], symbols[0]) || SymbolLess(symbols[0], symbols[2]) {
		t.Error("SymbolLess failed")
	}
}
