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
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/exascience/elalign/utils"
)

/*
A StringScanner is used for parsing records from input lines.
*/
type StringScanner struct {
	index int
	data  string
	err   error
}

/*
Returns the error that occurred during scanning/parsing.
*/
func (sc *StringScanner) Err() error {
	return sc.err
}

/*
Resets the scanner, and initializes it with the given string.
*/
func (sc *StringScanner) Reset(s string) {
	sc.index = 0
	sc.data = s
	sc.err = nil
}

/*
Returns the number of ASCII characters that still need to be
scanned/parsed. Returns 0 if Err() would return a non-nil value.
*/
func (sc *StringScanner) Len() int {
	if sc.err != nil {
		return 0
	}
	return len(sc.data) - sc.index
}

func (sc *StringScanner) readUntil(c byte) (s string, found bool) {
	if sc.err != nil {
		return "", false
	}
	start := sc.index
	for end := sc.index; end < len(sc.data); end++ {
		if sc.data[end] == c {
			sc.index = end + 1
			return sc.data[start:end], true
		}
	}
	sc.index = len(sc.data)
	return sc.data[start:], false
}

// ParseSample parses the sample name field.
func (sc *StringScanner) ParseSample() string {
	sample, found := sc.readUntil('\t')
	if sc.err != nil {
		return ""
	}
	sample = strings.TrimSpace(sample)
	if sample == "" {
		sc.err = errors.New("missing sample name")
	} else if !found {
		sc.err = errors.Errorf("missing count for sample %v", sample)
	}
	return sample
}

// ParseCount parses the abundance count field, which must be a
// positive integer.
func (sc *StringScanner) ParseCount() int {
	field, _ := sc.readUntil('\t')
	if sc.err != nil {
		return 0
	}
	count, err := strconv.Atoi(strings.TrimSpace(field))
	if err != nil {
		sc.err = errors.Wrap(err, "invalid count")
		return 0
	}
	if count < 1 {
		sc.err = errors.Errorf("invalid count %v, must be at least 1", count)
		return 0
	}
	return count
}

// ParseGroups parses the remaining fields as groups. Empty fields are
// ignored, so that tables with trailing empty columns can be read.
func (sc *StringScanner) ParseGroups() (groups []utils.Symbol) {
	for sc.Len() > 0 {
		field, _ := sc.readUntil('\t')
		if field = strings.TrimSpace(field); field != "" {
			groups = append(groups, utils.Intern(field))
		}
	}
	if sc.err == nil && len(groups) == 0 {
		sc.err = errors.New("no groups")
	}
	return groups
}

// ParseRead parses a complete read from the scanner.
func (sc *StringScanner) ParseRead() *Read {
	sample := sc.ParseSample()
	count := sc.ParseCount()
	groups := sc.ParseGroups()
	if sc.err != nil {
		return nil
	}
	return &Read{
		Sample:   sample,
		Count:    count,
		Groups:   groups,
		Metadata: ParseMetadata(sample),
	}
}

// ParseRecord parses one input line into a record. Lines that start
// with # are comments. Lines that cannot be parsed yield records with
// a non-nil Err.
func (sc *StringScanner) ParseRecord(line string) *Record {
	line = strings.TrimSuffix(line, "\r")
	record := &Record{Raw: line}
	if strings.HasPrefix(line, "#") {
		return record
	}
	sc.Reset(line)
	record.Read = sc.ParseRead()
	record.Err = sc.Err()
	return record
}
