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
	"io"
	"log"

	"github.com/exascience/pargo/parallel"
	"github.com/exascience/pargo/pipeline"
	"github.com/pkg/errors"

	"github.com/exascience/elalign/internal"
	"github.com/exascience/elalign/reads"
)

type splicedRecord struct {
	record *reads.Record
	cells  []Cell
}

// An output line is either an aligned row or a raw record that is
// passed through.
type outputLine struct {
	raw  string
	row  Row
	pass bool
}

func (line *outputLine) format(out []byte) []byte {
	if line.pass {
		out = append(out, line.raw...)
		return append(out, '\n')
	}
	return line.row.Format(out)
}

// spliceAll splices all records in parallel, and returns the spliced
// records together with the largest number of cells of any of them.
func (a *Aligner) spliceAll(records []*reads.Record) ([]splicedRecord, int) {
	spliced := make([]splicedRecord, len(records))
	if len(records) == 0 {
		return spliced, 0
	}
	widest := parallel.RangeReduceInt(0, len(records), 0, func(low, high int) (widest int) {
		for i := low; i < high; i++ {
			record := records[i]
			spliced[i].record = record
			if record.Read == nil {
				continue
			}
			cells := a.Splice(record.Read)
			spliced[i].cells = cells
			if len(cells) > widest {
				widest = len(cells)
			}
		}
		return widest
	}, func(x, y int) int {
		if x > y {
			return x
		}
		return y
	})
	return spliced, widest
}

/*
Run aligns all records and writes the result to out, one line per
record, in input order. Records without a read are written unchanged.

Run first builds the FrequencyModel from all reads, and then aligns
each read against it. If the widest aligned read needs more columns
than configured, Run returns a *ConfigurationError before anything is
written, unless options.MarkOverflow is set, in which case such reads
are written as overflow rows and a warning is logged.

Run returns the model so that callers can report group frequencies.
*/
func Run(records []*reads.Record, options Options, out io.Writer) (*FrequencyModel, error) {
	model := NewFrequencyModel(reads.Reads(records))
	aligner := NewAligner(model, options)
	spliced, widest := aligner.spliceAll(records)
	if numCols := aligner.options.NumCols; widest > numCols {
		if !options.MarkOverflow {
			return model, &ConfigurationError{Required: widest, Configured: numCols}
		}
		log.Printf("Warning: some reads do not fit into %v columns and are marked as overflow, at least %v columns are needed.\n", numCols, widest)
	}
	var p pipeline.Pipeline
	p.Source(spliced)
	p.Add(
		pipeline.Ord(pipeline.Receive(func(_ int, data interface{}) interface{} {
			batch := data.([]splicedRecord)
			lines := make([]outputLine, len(batch))
			for i, s := range batch {
				if s.record.Read == nil {
					lines[i] = outputLine{raw: s.record.Raw, pass: true}
					continue
				}
				row, err := aligner.Finish(s.record.Read, s.cells)
				if err != nil {
					p.SetErr(err)
					return lines[:i]
				}
				lines[i].row = row
			}
			return lines
		})),
		pipeline.LimitedPar(0, pipeline.Receive(func(_ int, data interface{}) interface{} {
			lines := data.([]outputLine)
			buf := internal.ReserveByteBuffer()
			for i := range lines {
				buf = lines[i].format(buf)
			}
			return buf
		})),
		pipeline.StrictOrd(pipeline.Receive(func(_ int, data interface{}) interface{} {
			buf := data.([]byte)
			if _, err := out.Write(buf); err != nil {
				p.SetErr(errors.Wrap(err, "while writing aligned rows"))
			}
			internal.ReleaseByteBuffer(buf)
			return data
		})),
	)
	p.Run()
	if cycles := aligner.resolver.Cycles(); cycles > 0 {
		log.Printf("Warning: %v cyclic predecessor chains were truncated.\n", cycles)
	}
	return model, p.Err()
}
