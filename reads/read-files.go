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

package reads

import (
	"bufio"
	"io"
	"log"
	"os"

	"github.com/exascience/pargo/pipeline"
	"github.com/pkg/errors"
)

// An InputFile is a group table opened for reading.
type InputFile struct {
	rc  io.ReadCloser
	buf *bufio.Reader
}

// Open a group table for input.
//
// If the name is "/dev/stdin", then the input is read from os.Stdin.
func Open(name string) (*InputFile, error) {
	if name == "/dev/stdin" {
		return &InputFile{rc: os.Stdin, buf: bufio.NewReader(os.Stdin)}, nil
	}
	file, err := os.Open(name)
	if err != nil {
		return nil, errors.Wrap(err, "while opening group table")
	}
	return &InputFile{rc: file, buf: bufio.NewReader(file)}, nil
}

// Close closes the input file.
func (f *InputFile) Close() error {
	if f.rc == os.Stdin {
		return nil
	}
	return f.rc.Close()
}

type parsedBatch struct {
	records   []*Record
	malformed int
	firstErr  error
	firstRaw  string
}

/*
ReadRecords parses all lines of the input file into records. Empty
lines are skipped, and records rejected by the filter are dropped.
The order of the input is preserved.

Lines that cannot be parsed are returned as malformed records; the
number of such records is reported through the log.
*/
func (f *InputFile) ReadRecords(filter Filter) (records []*Record, err error) {
	var p pipeline.Pipeline
	p.Source(pipeline.NewScanner(f.buf))
	p.Add(pipeline.LimitedPar(0, pipeline.Receive(func(_ int, data interface{}) interface{} {
		lines := data.([]string)
		batch := parsedBatch{records: make([]*Record, 0, len(lines))}
		var sc StringScanner
		for _, line := range lines {
			if line == "" || line == "\r" {
				continue
			}
			record := sc.ParseRecord(line)
			if record.IsMalformed() {
				if batch.malformed == 0 {
					batch.firstErr, batch.firstRaw = record.Err, record.Raw
				}
				batch.malformed++
			}
			if record.Keep(filter) {
				batch.records = append(batch.records, record)
			}
		}
		return batch
	})))
	var malformed int
	p.Add(pipeline.Ord(pipeline.Receive(func(_ int, data interface{}) interface{} {
		batch := data.(parsedBatch)
		if batch.malformed > 0 {
			if malformed == 0 {
				log.Printf("Warning: %v in record %q, passing it through unchanged.\n", batch.firstErr, batch.firstRaw)
			}
			malformed += batch.malformed
		}
		records = append(records, batch.records...)
		return data
	})))
	p.Run()
	if err = p.Err(); err != nil {
		return nil, errors.Wrap(err, "while reading group table")
	}
	if malformed > 1 {
		log.Printf("Warning: %v malformed records passed through unchanged.\n", malformed)
	}
	return records, nil
}

// LoadRecords opens the named group table, reads all its records, and
// closes it again.
func LoadRecords(name string, filter Filter) (records []*Record, err error) {
	input, err := Open(name)
	if err != nil {
		return nil, err
	}
	defer func() {
		if nerr := input.Close(); err == nil {
			err = nerr
		}
	}()
	return input.ReadRecords(filter)
}
