/*
Copyright (C) 2026  Carl-Philip Hänsch

	This program is free software: you can redistribute it and/or modify
	it under the terms of the GNU General Public License as published by
	the Free Software Foundation, either version 3 of the License, or
	(at your option) any later version.

	This program is distributed in the hope that it will be useful,
	but WITHOUT ANY WARRANTY; without even the implied warranty of
	MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
	GNU General Public License for more details.

	You should have received a copy of the GNU General Public License
	along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/
package datalog

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/launix-de/go-mysqlstack/xlog"
)

var logger atomic.Pointer[xlog.Log]
var mu sync.Mutex
var out io.Writer = os.Stdout
var level = xlog.INFO

func init() {
	logger.Store(xlog.NewStdLog(xlog.Level(level)))
}

// Log returns the process wide logger.
func Log() *xlog.Log {
	return logger.Load()
}

// ParseLevel maps DEBUG, INFO, WARNING and ERROR to xlog levels.
func ParseLevel(name string) (xlog.LogLevel, error) {
	switch strings.ToUpper(name) {
	case "DEBUG":
		return xlog.DEBUG, nil
	case "INFO":
		return xlog.INFO, nil
	case "WARNING":
		return xlog.WARNING, nil
	case "ERROR":
		return xlog.ERROR, nil
	}
	return 0, fmt.Errorf("unknown log level %q", name)
}

// SetLevel replaces the logger with one filtering at the given level.
func SetLevel(name string) error {
	l, err := ParseLevel(name)
	if err != nil {
		return err
	}
	mu.Lock()
	defer mu.Unlock()
	level = l
	logger.Store(xlog.NewXLog(out, xlog.Level(level)))
	return nil
}

// SetOutput redirects the logger, mostly for tests.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	out = w
	logger.Store(xlog.NewXLog(out, xlog.Level(level)))
}

// If logs at info level when cond holds. The arguments are evaluated by the
// caller either way, so keep them cheap.
func If(cond bool, format string, args ...any) {
	if cond {
		Log().Info(format, args...)
	}
}
