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
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"strings"

	"github.com/pkg/errors"

	"github.com/exascience/elalign/chains"
	"github.com/exascience/elalign/reads"
)

// AlignHelp is the help string for this command.
const AlignHelp = "Align parameters:\n" +
	"elalign align input-file output-file\n" +
	"[--numcols nr]\n" +
	"[--locus nr]\n" +
	"[--ratio nr]\n" +
	"[--timepoint nr]\n" +
	"[--frequencies file]\n" +
	"[--label-separator string]\n" +
	"[--mark-overflow]\n" +
	"[--nr-of-threads nr]\n" +
	"[--timed]\n" +
	"[--profile file]\n" +
	"[--log-path path]\n"

// Align implements the elalign align command.
func Align() error {
	var (
		numCols, nrOfThreads                              int
		frequenciesFile, labelSeparator, profile, logPath string
		markOverflow, timed                               bool
		metadata                                          metadataFilters
	)

	var flags flag.FlagSet

	flags.IntVar(&numCols, "numcols", chains.DefaultNumCols, "number of group columns in the output")
	metadata.register(&flags)
	flags.StringVar(&frequenciesFile, "frequencies", "", "write the group frequency table to this file")
	flags.StringVar(&labelSeparator, "label-separator", chains.DefaultLabelSeparator, "separator between group names and instance numbers")
	flags.BoolVar(&markOverflow, "mark-overflow", false, "mark reads that do not fit into the columns instead of failing")
	flags.IntVar(&nrOfThreads, "nr-of-threads", 0, "number of worker threads")
	flags.BoolVar(&timed, "timed", false, "measure the runtime of the different phases")
	flags.StringVar(&profile, "profile", "", "write a CPU profile for each phase")
	flags.StringVar(&logPath, "log-path", "", "write log files to the given path")

	parseFlags(&flags, 4, AlignHelp)

	input := getFilename(os.Args[2], AlignHelp)
	output := getFilename(os.Args[3], AlignHelp)

	if logPath != "" {
		setLogOutput(logPath)
	}

	// sanity checks

	sanityChecksFailed := false

	if !checkExist("", input) {
		sanityChecksFailed = true
	}

	if !checkCreate("", output) {
		sanityChecksFailed = true
	}

	if frequenciesFile != "" && !checkCreate("--frequencies", frequenciesFile) {
		sanityChecksFailed = true
	}

	if numCols < 1 {
		sanityChecksFailed = true
		log.Println("Error: Invalid numcols: ", numCols)
	}

	if labelSeparator == "" || strings.ContainsAny(labelSeparator, "\t\n()") {
		sanityChecksFailed = true
		log.Printf("Error: Invalid label-separator %q.\n", labelSeparator)
	}

	if nrOfThreads < 0 {
		sanityChecksFailed = true
		log.Println("Error: Invalid nr-of-threads: ", nrOfThreads)
	}

	if sanityChecksFailed {
		fmt.Fprint(os.Stderr, AlignHelp)
		os.Exit(1)
	}

	// building output command line

	var command bytes.Buffer
	fmt.Fprint(&command, os.Args[0], " align ", input, " ", output)
	fmt.Fprint(&command, " --numcols ", numCols)
	metadata.appendCommand(&command)
	if frequenciesFile != "" {
		fmt.Fprint(&command, " --frequencies ", frequenciesFile)
	}
	if labelSeparator != chains.DefaultLabelSeparator {
		fmt.Fprintf(&command, " --label-separator %q", labelSeparator)
	}
	if markOverflow {
		fmt.Fprint(&command, " --mark-overflow")
	}
	if nrOfThreads > 0 {
		runtime.GOMAXPROCS(nrOfThreads)
		fmt.Fprint(&command, " --nr-of-threads ", nrOfThreads)
	}
	if timed {
		fmt.Fprint(&command, " --timed")
	}
	if profile != "" {
		fmt.Fprint(&command, " --profile ", profile)
	}
	if logPath != "" {
		fmt.Fprint(&command, " --log-path ", logPath)
	}

	// executing command

	log.Println("Executing command:\n", command.String())
	log.Println("Run id:", RunID)

	options := chains.Options{
		NumCols:        numCols,
		LabelSeparator: labelSeparator,
		MarkOverflow:   markOverflow,
	}
	return runAlign(input, output, frequenciesFile, metadata.filter(), options, timed, profile)
}

func runAlign(input, output, frequenciesFile string, filter reads.Filter, options chains.Options, timed bool, profile string) (err error) {
	var records []*reads.Record
	timedRun(timed, profile, "Reading group table.", 1, func() {
		records, err = reads.LoadRecords(input, filter)
	})
	if err != nil {
		return err
	}

	out, err := reads.Create(output)
	if err != nil {
		return err
	}
	defer func() {
		if nerr := out.Close(); err == nil && nerr != nil {
			err = errors.Wrap(nerr, "while closing aligned table")
		}
	}()

	var model *chains.FrequencyModel
	timedRun(timed, profile, "Aligning reads.", 2, func() {
		model, err = chains.Run(records, options, out)
	})
	if err != nil {
		return errors.Wrapf(err, "while aligning %v", input)
	}

	if frequenciesFile != "" {
		timedRun(timed, profile, "Writing group frequencies.", 3, func() {
			err = writeFrequencies(frequenciesFile, model)
		})
	}
	return err
}
