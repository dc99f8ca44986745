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
package main

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/chzyer/readline"
)

const newprompt = "\033[32mb3>\033[0m "

var replInstance *readline.Instance

func repl() {
	l, err := readline.NewEx(&readline.Config{
		Prompt:            newprompt,
		HistoryFile:       ".b3jit-history.tmp",
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
		AutoComplete:      completer(),
	})
	if err != nil {
		panic(err)
	}
	replInstance = l
	defer l.Close()
	l.CaptureExitSignal()

	for {
		line, err := l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue
		} else if err == io.EOF {
			break
		} else if err != nil {
			panic(err)
		}
		if line == "exit" || line == "quit" {
			break
		}
		evalLine(l.Stdout(), line)
	}
}

// evalLine runs one command and reports errors and panics without leaving the shell.
func evalLine(out io.Writer, line string) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintln(out, "panic:", r, string(debug.Stack()))
		}
	}()
	if err := runCommand(out, line); err != nil {
		fmt.Fprintln(out, "error:", err)
	}
}

func completer() *readline.PrefixCompleter {
	var items []readline.PrefixCompleterInterface
	for _, t := range commandTitles {
		if t[0] != '#' {
			items = append(items, readline.PcItem(t))
		}
	}
	return readline.NewPrefixCompleter(items...)
}

func isTerminal() bool {
	st, err := os.Stdin.Stat()
	return err == nil && st.Mode()&os.ModeCharDevice != 0
}
