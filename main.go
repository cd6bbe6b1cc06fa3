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

// elalign aligns tables of ordered group chains, such as CRISPR spacer
// arrays observed in many samples, into columns that can be compared
// position by position.
//
// Each read may miss groups of its underlying chain. elalign infers the
// most probable chain of every group from the statistics of the whole
// input, inserts the missing groups as inferred cells, and labels
// repeated groups by their predecessor context.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/exascience/elalign/cmd"
)

func printHelp() {
	fmt.Fprintln(os.Stderr, "Available commands: align, frequencies")
	fmt.Fprint(os.Stderr, "\n", cmd.AlignHelp)
	fmt.Fprint(os.Stderr, "\n", cmd.FrequenciesHelp)
}

func main() {
	fmt.Fprintln(os.Stderr, cmd.ProgramMessage)
	if len(os.Args) < 2 {
		log.Println("Incorrect number of parameters.")
		fmt.Fprint(os.Stderr, cmd.HelpMessage, "\n")
		printHelp()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "align":
		err = cmd.Align()
	case "frequencies":
		err = cmd.Frequencies()
	case "help", "-help", "--help", "-h", "--h":
		printHelp()
	default:
		log.Println("Unknown command", os.Args[1])
		printHelp()
		os.Exit(1)
	}
	if err != nil {
		log.Fatal(err)
	}
}
