// Copyright (C) 2025 The chesskit authors

// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.

// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.

// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package config holds the settings of the tools around the chess library,
// read from an optional TOML file.
package config

import (
	"github.com/BurntSushi/toml"

	"github.com/chesskit-go/chess/internal/logging"
)

// Settings is the full settings tree. Fields keep their defaults when the
// settings file is absent or does not mention them.
var Settings = struct {
	Log struct {
		Level string
	}
}{}

func init() {
	Settings.Log.Level = "info"
}

// Setup loads the settings file at path, if any, and applies the log level.
// An empty path leaves the defaults in place; a file that cannot be read or
// decoded is reported.
func Setup(path string) error {
	if path != "" {
		if _, err := toml.DecodeFile(path, &Settings); err != nil {
			return err
		}
	}
	logging.SetLevel(Settings.Log.Level)
	return nil
}
