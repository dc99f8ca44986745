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
package options

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
)

// OptionsT holds every runtime switch of the compiler. A snapshot is never
// modified after it has been published; Set swaps in a fresh copy.
type OptionsT struct {
	JITDumpDirectory                string `json:"jitDumpDirectory"`
	LogJITCodeForPerf               bool   `json:"logJITCodeForPerf"`
	LogJITCodeForGdb                bool   `json:"logJITCodeForGdb"`
	VerboseCompilation              bool   `json:"verboseCompilation"`
	VerboseFTLFailure               bool   `json:"verboseFTLFailure"`
	VerbosePerfLog                  bool   `json:"verbosePerfLog"`
	MaximumFTLCandidateBytecodeCost uint   `json:"maximumFTLCandidateBytecodeCost"`
	NumberOfFTLCompilerThreads      int    `json:"numberOfFTLCompilerThreads"`
	LogLevel                        string `json:"logLevel"`
	Trace                           bool   `json:"trace"`
	TraceDirectory                  string `json:"traceDirectory"`
}

// Defaults returns the built-in configuration.
func Defaults() OptionsT {
	return OptionsT{
		JITDumpDirectory:                "/tmp",
		MaximumFTLCandidateBytecodeCost: 20000,
		NumberOfFTLCompilerThreads:      runtime.NumCPU(),
		LogLevel:                        "INFO",
	}
}

var current atomic.Pointer[OptionsT]
var writeMu sync.Mutex // serializes writers, readers never lock
var listeners []func(old, cur *OptionsT)

func init() {
	d := Defaults()
	current.Store(&d)
}

// Current returns the published snapshot. Callers must not modify it.
func Current() *OptionsT {
	return current.Load()
}

// OnChange registers fn to be called after every successful update.
func OnChange(fn func(old, cur *OptionsT)) {
	writeMu.Lock()
	listeners = append(listeners, fn)
	writeMu.Unlock()
}

// Update applies fn to a copy of the current snapshot and publishes it.
func Update(fn func(o *OptionsT) error) error {
	writeMu.Lock()
	old := current.Load()
	next := *old
	if err := fn(&next); err != nil {
		writeMu.Unlock()
		return err
	}
	if err := next.validate(); err != nil {
		writeMu.Unlock()
		return err
	}
	current.Store(&next)
	ls := listeners
	writeMu.Unlock()
	for _, l := range ls {
		l(old, &next)
	}
	return nil
}

// Reset restores the defaults.
func Reset() {
	Update(func(o *OptionsT) error {
		*o = Defaults()
		return nil
	})
}

func (o *OptionsT) validate() error {
	if o.NumberOfFTLCompilerThreads < 1 {
		return fmt.Errorf("numberOfFTLCompilerThreads must be at least 1, got %d", o.NumberOfFTLCompilerThreads)
	}
	if o.JITDumpDirectory == "" {
		return fmt.Errorf("jitDumpDirectory must not be empty")
	}
	switch o.LogLevel {
	case "DEBUG", "INFO", "WARNING", "ERROR":
	default:
		return fmt.Errorf("unknown log level %q", o.LogLevel)
	}
	return nil
}

type option struct {
	help string
	get  func(o *OptionsT) string
	set  func(o *OptionsT, v string) error
}

func boolOption(help string, field func(o *OptionsT) *bool) option {
	return option{
		help: help,
		get:  func(o *OptionsT) string { return strconv.FormatBool(*field(o)) },
		set: func(o *OptionsT, v string) error {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return err
			}
			*field(o) = b
			return nil
		},
	}
}

func stringOption(help string, field func(o *OptionsT) *string) option {
	return option{
		help: help,
		get:  func(o *OptionsT) string { return *field(o) },
		set: func(o *OptionsT, v string) error {
			*field(o) = v
			return nil
		},
	}
}

var table = map[string]option{
	"JITDumpDirectory": stringOption("directory that receives jit-<pid>.dump",
		func(o *OptionsT) *string { return &o.JITDumpDirectory }),
	"LogJITCodeForPerf": boolOption("write every linked code region to the perf jitdump file",
		func(o *OptionsT) *bool { return &o.LogJITCodeForPerf }),
	"LogJITCodeForGdb": boolOption("register linked code regions in the debugger code map",
		func(o *OptionsT) *bool { return &o.LogJITCodeForGdb }),
	"VerboseCompilation": boolOption("log tier decisions",
		func(o *OptionsT) *bool { return &o.VerboseCompilation }),
	"VerboseFTLFailure": boolOption("log why a graph cannot be compiled by the FTL",
		func(o *OptionsT) *bool { return &o.VerboseFTLFailure }),
	"VerbosePerfLog": boolOption("log every jitdump record",
		func(o *OptionsT) *bool { return &o.VerbosePerfLog }),
	"MaximumFTLCandidateBytecodeCost": {
		help: "largest bytecode cost the FTL accepts",
		get:  func(o *OptionsT) string { return strconv.FormatUint(uint64(o.MaximumFTLCandidateBytecodeCost), 10) },
		set: func(o *OptionsT, v string) error {
			n, err := strconv.ParseUint(v, 10, 0)
			if err != nil {
				return err
			}
			o.MaximumFTLCandidateBytecodeCost = uint(n)
			return nil
		},
	},
	"NumberOfFTLCompilerThreads": {
		help: "threads of the compilation worklist",
		get:  func(o *OptionsT) string { return strconv.Itoa(o.NumberOfFTLCompilerThreads) },
		set: func(o *OptionsT, v string) error {
			n, err := strconv.Atoi(v)
			if err != nil {
				return err
			}
			o.NumberOfFTLCompilerThreads = n
			return nil
		},
	},
	"LogLevel": {
		help: "DEBUG, INFO, WARNING or ERROR",
		get:  func(o *OptionsT) string { return o.LogLevel },
		set: func(o *OptionsT, v string) error {
			o.LogLevel = strings.ToUpper(v)
			return nil
		},
	},
	"Trace": boolOption("write a chrome trace of the worklist",
		func(o *OptionsT) *bool { return &o.Trace }),
	"TraceDirectory": stringOption("directory for trace_<time>.json files",
		func(o *OptionsT) *string { return &o.TraceDirectory }),
}

// Names lists all option names in sorted order.
func Names() []string {
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Help returns the one-line description of an option.
func Help(name string) string {
	return table[name].help
}

// Get renders the current value of the named option.
func Get(name string) (string, error) {
	opt, ok := table[name]
	if !ok {
		return "", fmt.Errorf("unknown option: %s", name)
	}
	return opt.get(Current()), nil
}

// Set parses value and publishes a snapshot with the named option changed.
func Set(name, value string) error {
	opt, ok := table[name]
	if !ok {
		return fmt.Errorf("unknown option: %s", name)
	}
	return Update(func(o *OptionsT) error {
		if err := opt.set(o, value); err != nil {
			return fmt.Errorf("option %s: %w", name, err)
		}
		return nil
	})
}

// EnvName is the environment variable for an option: JSC_ plus the name in
// lower camel case, so JITDumpDirectory reads JSC_jitDumpDirectory.
func EnvName(name string) string {
	upper := 0
	for upper < len(name) && name[upper] >= 'A' && name[upper] <= 'Z' {
		upper++
	}
	// an acronym keeps the capital that starts the next word
	if upper > 1 && upper < len(name) {
		upper--
	}
	return "JSC_" + strings.ToLower(name[:upper]) + name[upper:]
}

// LoadEnv applies JSC_<optionName> variables from the environment.
func LoadEnv() error {
	return Update(func(o *OptionsT) error {
		for _, name := range Names() {
			env := EnvName(name)
			v, ok := os.LookupEnv(env)
			if !ok {
				continue
			}
			if err := table[name].set(o, v); err != nil {
				return fmt.Errorf("%s: %w", env, err)
			}
		}
		return nil
	})
}

// LoadFile overlays the JSON object stored at path. Keys that are absent keep
// their current value.
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return Update(func(o *OptionsT) error {
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(o); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		return nil
	})
}
