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
	"os"

	"github.com/pkg/errors"
)

// An OutputFile is a buffered file for writing aligned tables.
type OutputFile struct {
	wc  io.WriteCloser
	buf *bufio.Writer
}

// Create a file for output.
//
// If the name is "/dev/stdout", then the output is written to
// os.Stdout.
func Create(name string) (*OutputFile, error) {
	if name == "/dev/stdout" {
		return &OutputFile{wc: os.Stdout, buf: bufio.NewWriter(os.Stdout)}, nil
	}
	file, err := os.Create(name)
	if err != nil {
		return nil, errors.Wrap(err, "while creating output file")
	}
	return &OutputFile{wc: file, buf: bufio.NewWriter(file)}, nil
}

// Write implements io.Writer.
func (f *OutputFile) Write(p []byte) (int, error) {
	return f.buf.Write(p)
}

// Close flushes any buffered output and closes the file.
func (f *OutputFile) Close() error {
	err := f.buf.Flush()
	if f.wc == os.Stdout {
		return err
	}
	if nerr := f.wc.Close(); err == nil {
		err = nerr
	}
	return err
}
