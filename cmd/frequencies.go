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
	"strconv"

	"github.com/pkg/errors"

	"github.com/exascience/elalign/chains"
	"github.com/exascience/elalign/internal"
	"github.com/exascience/elalign/reads"
)

// FrequenciesHelp is the help string for this command.
const FrequenciesHelp = "Frequencies parameters:\n" +
	"elalign frequencies input-file output-file\n" +
	"[--locus nr]\n" +
	"[--ratio nr]\n" +
	"[--timepoint nr]\n" +
	"[--nr-of-threads nr]\n" +
	"[--log-path path]\n"

func writeFrequencies(filename string, model *chains.FrequencyModel) (err error) {
	out, err := reads.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if nerr := out.Close(); err == nil && nerr != nil {
			err = errors.Wrap(nerr, "while closing frequency table")
		}
	}()
	buf := internal.ReserveByteBuffer()
	defer func() { internal.ReleaseByteBuffer(buf) }()
	for _, entry := range model.Frequencies() {
		buf = append(buf, *entry.Group...)
		buf = append(buf, '\t')
		buf = strconv.AppendInt(buf, int64(entry.Count), 10)
		buf = append(buf, '\n')
	}
	if _, err = out.Write(buf); err != nil {
		return errors.Wrap(err, "while writing frequency table")
	}
	return nil
}

// Frequencies implements the elalign frequencies command.
func Frequencies() error {
	var (
		nrOfThreads int
		logPath     string
		metadata    metadataFilters
	)

	var flags flag.FlagSet

	metadata.register(&flags)
	flags.IntVar(&nrOfThreads, "nr-of-threads", 0, "number of worker threads")
	flags.StringVar(&logPath, "log-path", "", "write log files to the given path")

	parseFlags(&flags, 4, FrequenciesHelp)

	input := getFilename(os.Args[2], FrequenciesHelp)
	output := getFilename(os.Args[3], FrequenciesHelp)

	if logPath != "" {
		setLogOutput(logPath)
	}

	// sanity checks

	sanityChecksFailed := !checkExist("", input)

	if !checkCreate("", output) {
		sanityChecksFailed = true
	}

	if nrOfThreads < 0 {
		sanityChecksFailed = true
		log.Println("Error: Invalid nr-of-threads: ", nrOfThreads)
	}

	if sanityChecksFailed {
		fmt.Fprint(os.Stderr, FrequenciesHelp)
		os.Exit(1)
	}

	// building output command line

	var command bytes.Buffer
	fmt.Fprint(&command, os.Args[0], " frequencies ", input, " ", output)
	metadata.appendCommand(&command)
	if nrOfThreads > 0 {
		runtime.GOMAXPROCS(nrOfThreads)
		fmt.Fprint(&command, " --nr-of-threads ", nrOfThreads)
	}
	if logPath != "" {
		fmt.Fprint(&command, " --log-path ", logPath)
	}

	// executing command

	log.Println("Executing command:\n", command.String())
	log.Println("Run id:", RunID)

	records, err := reads.LoadRecords(input, metadata.filter())
	if err != nil {
		return err
	}
	return writeFrequencies(output, chains.NewFrequencyModel(reads.Reads(records)))
}
