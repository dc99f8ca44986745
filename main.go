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
/*
	b3jit inspects the top tier of a JavaScript JIT: the B3 opcode algebra,
	the FTL capability check over DFG graphs and the jitdump code registry
	read by perf.
*/
package main

import (
	"crypto/rand"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime/pprof"
	"sync"
	"syscall"

	"github.com/dc0d/onexit"
	"github.com/google/uuid"
	"github.com/launix-de/b3jit/assembler"
	"github.com/launix-de/b3jit/datalog"
	"github.com/launix-de/b3jit/gdbjit"
	"github.com/launix-de/b3jit/options"
	"github.com/launix-de/b3jit/perflog"
)

// workaround for flags package to allow multiple values
type arrayFlags []string

func (i *arrayFlags) String() string {
	return "dummy"
}

func (i *arrayFlags) Set(value string) error {
	*i = append(*i, value)
	return nil
}

var perfOnce, gdbOnce sync.Once

// applyOptions keeps logging, tracing and code observers in line with the
// published options.
func applyOptions(old, cur *options.OptionsT) {
	if old == nil || old.LogLevel != cur.LogLevel {
		if err := datalog.SetLevel(cur.LogLevel); err != nil {
			datalog.Log().Error("%v", err)
		}
	}
	if old == nil || old.Trace != cur.Trace || old.TraceDirectory != cur.TraceDirectory {
		if err := datalog.SetTrace(cur.Trace, cur.TraceDirectory); err != nil {
			datalog.Log().Error("%v", err)
		}
	}
	if cur.LogJITCodeForPerf {
		perfOnce.Do(func() {
			l := perflog.Singleton()
			assembler.AddObserver(l)
			onexit.Register(func() { l.Close() })
			datalog.Log().Info("writing jitdump to %s", l.Path())
		})
	}
	if cur.LogJITCodeForGdb {
		gdbOnce.Do(func() {
			assembler.AddObserver(gdbjit.Singleton())
		})
	}
}

func main() {
	fmt.Print(`b3jit Copyright (C) 2026   Carl-Philip Hänsch
    This program comes with ABSOLUTELY NO WARRANTY;
    This is free software, and you are welcome to redistribute it
    under certain conditions;

`)

	// init random generator for UUIDs
	uuid.SetRand(rand.Reader)

	// parse command line options
	var commandLines arrayFlags
	flag.Var(&commandLines, "c", "Execute shell command (repeatable)")

	optionsFile := ""
	flag.StringVar(&optionsFile, "options", "", "JSON file with options, reloaded when it changes")

	jitdump := ""
	flag.StringVar(&jitdump, "jitdump", "", "Write a perf jitdump into this directory")

	gdb := false
	flag.BoolVar(&gdb, "gdb", false, "Register linked code in the debugger code map")

	verbose := false
	flag.BoolVar(&verbose, "v", false, "Verbose compilation and FTL failure logging")

	profile := ""
	flag.StringVar(&profile, "profile", "", "Write a CPU profile to this file")

	flag.Parse()
	files := flag.Args()

	// option layers: defaults < env < file < flags < set command
	options.OnChange(applyOptions)
	if err := options.LoadEnv(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if optionsFile != "" {
		if _, err := options.Watch(optionsFile); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
	}
	flagSettings := map[string]string{}
	if jitdump != "" {
		flagSettings["JITDumpDirectory"] = jitdump
		flagSettings["LogJITCodeForPerf"] = "true"
	}
	if gdb {
		flagSettings["LogJITCodeForGdb"] = "true"
	}
	if verbose {
		flagSettings["VerboseCompilation"] = "true"
		flagSettings["VerboseFTLFailure"] = "true"
	}
	for name, value := range flagSettings {
		if err := options.Set(name, value); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
	}
	applyOptions(nil, options.Current())
	onexit.Register(func() { datalog.SetTrace(false, "") }) // close trace file on exit
	onexit.Register(closeWorklist)

	// install exit handler
	cancelChan := make(chan os.Signal, 1)
	signal.Notify(cancelChan, syscall.SIGTERM, syscall.SIGINT)
	go (func() {
		<-cancelChan
		exitroutine()
		os.Exit(1)
	})()

	// init profiling
	if profile != "" {
		f, err := os.Create(profile)
		if err != nil {
			panic(err)
		}
		defer f.Close()
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	failed := 0
	if len(files) > 0 {
		if err := commands["analyze"].Fn(os.Stdout, files); err != nil {
			fmt.Println("error:", err)
			failed++
		}
	}
	for _, line := range commandLines {
		fmt.Println("Executing " + line + " ...")
		if err := runCommand(os.Stdout, line); err != nil {
			fmt.Println("error:", err)
			failed++
		}
	}

	if len(files) == 0 && len(commandLines) == 0 && isTerminal() {
		fmt.Print(`
    Type help to show help

`)
		repl()
	}

	// normal shutdown
	exitroutine()
	if failed > 0 {
		os.Exit(1)
	}
}

var exitOnce sync.Once

func exitroutine() {
	exitOnce.Do(func() {
		if replInstance != nil {
			// in case it doesn't exit properly
			replInstance.Close()
		}
		onexit.Done()
	})
}
