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

package cmd

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"

	"github.com/exascience/elalign/chains"
	"github.com/exascience/elalign/reads"
)

const testTable = "# sample\tcount\tgroups\n" +
	"L1_a\t2\tQ\tF\n" +
	"L1_b\t10\tZ\tF\n" +
	"L2_c\t5\tZ\tY\n" +
	"L1_d\t1\tF\n" +
	"broken\n"

func writeTestTable(t *testing.T) string {
	name := filepath.Join(t.TempDir(), "groups.tsv")
	if err := ioutil.WriteFile(name, []byte(testTable), 0666); err != nil {
		t.Fatal(err)
	}
	return name
}

func TestRunAlign(t *testing.T) {
	input := writeTestTable(t)
	dir := filepath.Dir(input)
	output := filepath.Join(dir, "aligned.tsv")
	frequencies := filepath.Join(dir, "frequencies.tsv")
	if err := runAlign(input, output, frequencies, reads.FilterLocus(1), chains.Options{NumCols: 3, LabelSeparator: "_"}, false, ""); err != nil {
		t.Error("runAlign failed:", err)
	}
	aligned, err := ioutil.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	expected := "# sample\tcount\tgroups\n" +
		"L1_a\t2\tQ\tF_1\t.\n" +
		"L1_b\t10\tZ\tF_2\t.\n" +
		"L1_d\t1\t(Z)\tF_2\t.\n" +
		"broken\n"
	if string(aligned) != expected {
		t.Error("runAlign output failed:\n", string(aligned))
	}
	table, err := ioutil.ReadFile(frequencies)
	if err != nil {
		t.Fatal(err)
	}
	if string(table) != "F\t3\nQ\t1\nZ\t1\n" {
		t.Error("runAlign frequencies failed:\n", string(table))
	}
}

func TestRunAlignNotEnoughColumns(t *testing.T) {
	input := writeTestTable(t)
	output := filepath.Join(filepath.Dir(input), "aligned.tsv")
	err := runAlign(input, output, "", nil, chains.Options{NumCols: 1}, false, "")
	cerr, ok := errors.Cause(err).(*chains.ConfigurationError)
	if !ok || cerr.Required != 2 {
		t.Error("runAlign configuration error failed:", err)
	}
}
