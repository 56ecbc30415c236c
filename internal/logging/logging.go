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

// Package logging configures the go-logging backends used by the tools and
// tests around the chess library. The library itself never logs.
package logging

import (
	"os"
	"sync"

	"github.com/op/go-logging"
)

var format = logging.MustStringFormatter(
	`%{time:15:04:05.000} %{level:-7.7s} %{shortpkg:-8.8s} %{message}`,
)

var (
	once sync.Once
	log  *logging.Logger
)

// GetLog returns the shared application logger, creating it on first use
// with a stderr backend at info level.
func GetLog() *logging.Logger {
	once.Do(func() {
		log = logging.MustGetLogger("chess")
		backend := logging.NewLogBackend(os.Stderr, "", 0)
		formatted := logging.NewBackendFormatter(backend, format)
		leveled := logging.AddModuleLevel(formatted)
		leveled.SetLevel(logging.INFO, "")
		log.SetBackend(leveled)
	})
	return log
}

var (
	testOnce sync.Once
	testLog  *logging.Logger
)

// GetTestLog returns a logger for tests, writing to stdout so output
// interleaves with the test runner's own.
func GetTestLog() *logging.Logger {
	testOnce.Do(func() {
		testLog = logging.MustGetLogger("test")
		backend := logging.NewLogBackend(os.Stdout, "", 0)
		formatted := logging.NewBackendFormatter(backend, format)
		leveled := logging.AddModuleLevel(formatted)
		leveled.SetLevel(logging.DEBUG, "")
		testLog.SetBackend(leveled)
	})
	return testLog
}

// SetLevel adjusts the level of the shared application logger. Unknown
// names leave the level untouched.
func SetLevel(level string) {
	parsed, err := logging.LogLevel(level)
	if err != nil {
		return
	}
	logging.SetLevel(parsed, "chess")
}
