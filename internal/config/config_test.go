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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetupWithoutFile(t *testing.T) {
	assert.NoError(t, Setup(""))
	assert.Equal(t, "info", Settings.Log.Level)
}

func TestSetupReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	err := os.WriteFile(path, []byte("[log]\nlevel = \"debug\"\n"), 0o644)
	assert.NoError(t, err)

	assert.NoError(t, Setup(path))
	assert.Equal(t, "debug", Settings.Log.Level)

	Settings.Log.Level = "info"
}

func TestSetupMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	err := os.WriteFile(path, []byte("log = {"), 0o644)
	assert.NoError(t, err)
	assert.Error(t, Setup(path))
}
