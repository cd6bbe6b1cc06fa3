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

import "fmt"

// A ConfigurationError reports that the configured number of columns
// is too small for the widest aligned read.
type ConfigurationError struct {
	Required, Configured int
}

func (err *ConfigurationError) Error() string {
	return fmt.Sprintf("not enough columns: %v configured, but aligned reads need at least %v - please rerun with --numcols %v or more", err.Configured, err.Required, err.Required)
}
