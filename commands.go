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
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/docker/go-units"
	"github.com/launix-de/b3jit/b3"
	"github.com/launix-de/b3jit/dfg"
	"github.com/launix-de/b3jit/ftl"
	"github.com/launix-de/b3jit/gdbjit"
	"github.com/launix-de/b3jit/options"
	"github.com/launix-de/b3jit/perflog"
	"github.com/launix-de/b3jit/worklist"
)

type Command struct {
	Name    string
	Desc    string
	MinArgs int
	MaxArgs int // -1 = unbounded
	Params  []CommandParameter
	Fn      func(out io.Writer, args []string) error
}

type CommandParameter struct {
	Name string
	Desc string
}

var commandTitles []string
var commands = make(map[string]*Command)

func declareTitle(title string) {
	commandTitles = append(commandTitles, "#"+title)
}

func declare(def *Command) {
	commandTitles = append(commandTitles, def.Name)
	commands[def.Name] = def
}

// runCommand executes one shell line such as "invert LessThan Int32".
func runCommand(out io.Writer, line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	cmd, ok := commands[fields[0]]
	if !ok {
		return fmt.Errorf("unknown command %q, try help", fields[0])
	}
	args := fields[1:]
	if len(args) < cmd.MinArgs || (cmd.MaxArgs >= 0 && len(args) > cmd.MaxArgs) {
		return fmt.Errorf("usage: %s", usage(cmd))
	}
	return cmd.Fn(out, args)
}

func usage(cmd *Command) string {
	var b strings.Builder
	b.WriteString(cmd.Name)
	for i, p := range cmd.Params {
		if i < cmd.MinArgs {
			fmt.Fprintf(&b, " <%s>", p.Name)
		} else {
			fmt.Fprintf(&b, " [%s]", p.Name)
		}
	}
	return b.String()
}

func help(out io.Writer, topic string) error {
	if topic == "" {
		for _, t := range commandTitles {
			if strings.HasPrefix(t, "#") {
				fmt.Fprintf(out, "\n-- %s --\n", t[1:])
				continue
			}
			fmt.Fprintf(out, "  %-10s %s\n", t, commands[t].Desc)
		}
		return nil
	}
	cmd, ok := commands[topic]
	if !ok {
		return fmt.Errorf("no help for %q", topic)
	}
	fmt.Fprintf(out, "Help for: %s\n===\n\n%s\n\nUsage: %s\n", cmd.Name, cmd.Desc, usage(cmd))
	for _, p := range cmd.Params {
		fmt.Fprintf(out, "  %s: %s\n", p.Name, p.Desc)
	}
	return nil
}

var defaultWorklist *worklist.Worklist
var worklistOnce sync.Once

func sharedWorklist() *worklist.Worklist {
	worklistOnce.Do(func() {
		defaultWorklist = worklist.NewFromOptions(worklist.StubGenerator)
	})
	return defaultWorklist
}

func closeWorklist() {
	if defaultWorklist != nil {
		defaultWorklist.Close()
	}
}

func parseBank(s string) (b3.Bank, error) {
	switch strings.ToUpper(s) {
	case "GP":
		return b3.GP, nil
	case "FP":
		return b3.FP, nil
	}
	return 0, fmt.Errorf("unknown bank %q (GP or FP)", s)
}

func init() {
	declareTitle("General")
	declare(&Command{
		"help", "Lists all commands or prints help for one",
		0, 1,
		[]CommandParameter{{"command", "command to describe"}},
		func(out io.Writer, args []string) error {
			if len(args) == 0 {
				return help(out, "")
			}
			return help(out, args[0])
		},
	})

	declareTitle("Opcodes")
	declare(&Command{
		"opcodes", "Lists the B3 opcodes, optionally only those containing a substring",
		0, 1,
		[]CommandParameter{{"filter", "case sensitive substring"}},
		func(out io.Writer, args []string) error {
			for o := b3.Opcode(0); int(o) < b3.NumOpcodes; o++ {
				if len(args) == 1 && !strings.Contains(o.String(), args[0]) {
					continue
				}
				var flags []string
				if o.IsTerminal() {
					flags = append(flags, "terminal")
				}
				if o.IsMemoryAccess() {
					flags = append(flags, "memory")
				}
				if o.IsComparison() {
					flags = append(flags, "compare")
				}
				if o.Effects().None() {
					flags = append(flags, "pure")
				}
				fmt.Fprintf(out, "%4d %-28s %s\n", o, o, strings.Join(flags, ","))
			}
			return nil
		},
	})
	declare(&Command{
		"invert", "Prints the negation of a comparison for operands of a type",
		2, 2,
		[]CommandParameter{{"opcode", "comparison opcode, e.g. LessThan"}, {"type", "Int32, Int64, Float, Double or V128"}},
		func(out io.Writer, args []string) error {
			op, ok := b3.ParseOpcode(args[0])
			if !ok {
				return fmt.Errorf("unknown opcode %q", args[0])
			}
			typ, ok := b3.ParseType(args[1])
			if !ok {
				return fmt.Errorf("unknown type %q", args[1])
			}
			inv, ok := b3.InvertedCompare(op, typ)
			if !ok {
				fmt.Fprintf(out, "%v is not invertible for %v\n", op, typ)
				return nil
			}
			fmt.Fprintln(out, inv)
			return nil
		},
	})
	declare(&Command{
		"store", "Prints the store opcode for a register bank and access width",
		2, 2,
		[]CommandParameter{{"bank", "GP or FP"}, {"bits", "8, 16, 32, 64 or 128"}},
		func(out io.Writer, args []string) error {
			bank, err := parseBank(args[0])
			if err != nil {
				return err
			}
			bits, err := strconv.Atoi(args[1])
			if err != nil {
				return err
			}
			width, ok := b3.WidthForBits(bits)
			if !ok {
				return fmt.Errorf("no width of %d bits", bits)
			}
			fmt.Fprintln(out, b3.StoreOpcode(bank, width))
			return nil
		},
	})

	declareTitle("Graphs")
	declare(&Command{
		"analyze", "Decides the top tier verdict for graph files (.json or .json.xz)",
		1, -1,
		[]CommandParameter{{"file...", "graph files"}},
		func(out io.Writer, args []string) error {
			for _, path := range args {
				g, err := dfg.LoadGraphFile(path)
				if err != nil {
					return err
				}
				r := ftl.Analyze(g, ftl.CurrentOptions())
				fmt.Fprintf(out, "%s: %v -> %v (%d nodes, %d blocks)", g.CodeBlock, r.Level, worklist.SelectTier(r.Level), r.NodesVisited, r.BlocksVisited)
				if r.Reason != "" {
					fmt.Fprintf(out, ": %s", r.Reason)
				}
				if r.Rejected != nil {
					fmt.Fprintf(out, " at %s", g.NodeString(r.Rejected))
				}
				fmt.Fprintln(out)
			}
			return nil
		},
	})
	declare(&Command{
		"dump", "Prints every block and node of a graph file",
		1, 1,
		[]CommandParameter{{"file", "graph file"}},
		func(out io.Writer, args []string) error {
			st, err := os.Stat(args[0])
			if err != nil {
				return err
			}
			g, err := dfg.LoadGraphFile(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s (%s, %d nodes)\n", args[0], units.HumanSize(float64(st.Size())), g.NumNodes())
			g.DumpAll(out)
			return nil
		},
	})
	declare(&Command{
		"link", "Compiles graph files on the worklist and links placeholder code for them",
		1, -1,
		[]CommandParameter{{"file...", "graph files"}},
		func(out io.Writer, args []string) error {
			var plans []*worklist.Plan
			for _, path := range args {
				g, err := dfg.LoadGraphFile(path)
				if err != nil {
					return err
				}
				plans = append(plans, sharedWorklist().Enqueue(g))
			}
			for _, p := range plans {
				p.Wait()
				switch {
				case p.Err != nil:
					fmt.Fprintf(out, "%s: %v: %v\n", p.Name(), p.Tier, p.Err)
				case p.Code.Size() == 0:
					fmt.Fprintf(out, "%s: %v\n", p.Name(), p.Tier)
				default:
					fmt.Fprintf(out, "%s: %v at %v (%s)\n", p.Name(), p.Tier, p.Code, units.BytesSize(float64(p.Code.Size())))
				}
			}
			return nil
		},
	})

	declareTitle("Code registry")
	declare(&Command{
		"codemap", "Prints the registered code regions in perf map format",
		0, 0, nil,
		func(out io.Writer, args []string) error {
			return gdbjit.Singleton().WritePerfMap(out)
		},
	})
	declare(&Command{
		"perflog", "Shows the jitdump file and how many records it holds",
		0, 0, nil,
		func(out io.Writer, args []string) error {
			if !options.Current().LogJITCodeForPerf {
				fmt.Fprintln(out, "perf logging is off, set LogJITCodeForPerf true")
				return nil
			}
			l := perflog.Singleton()
			l.Flush()
			fmt.Fprintf(out, "%s: %d records, %d dropped\n", l.Path(), l.Records(), l.Dropped())
			return l.Err()
		},
	})

	declareTitle("Options")
	declare(&Command{
		"options", "Lists all options with their values",
		0, 0, nil,
		func(out io.Writer, args []string) error {
			names := options.Names()
			sort.Strings(names)
			for _, name := range names {
				v, _ := options.Get(name)
				fmt.Fprintf(out, "%-32s %-8s %s\n", name, v, options.Help(name))
			}
			return nil
		},
	})
	declare(&Command{
		"get", "Prints the value of an option",
		1, 1,
		[]CommandParameter{{"name", "option name"}},
		func(out io.Writer, args []string) error {
			v, err := options.Get(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(out, v)
			return nil
		},
	})
	declare(&Command{
		"set", "Changes an option for the running process",
		2, 2,
		[]CommandParameter{{"name", "option name"}, {"value", "new value"}},
		func(out io.Writer, args []string) error {
			return options.Set(args[0], args[1])
		},
	})
}
