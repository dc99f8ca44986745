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
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/launix-de/b3jit/options"
)

func run(t *testing.T, line string) string {
	t.Helper()
	var out bytes.Buffer
	if err := runCommand(&out, line); err != nil {
		t.Fatalf("%s: %v", line, err)
	}
	return out.String()
}

func TestInvertCommand(t *testing.T) {
	if got := run(t, "invert LessThan Int32"); got != "GreaterEqual\n" {
		t.Errorf("got %q", got)
	}
	if got := run(t, "invert LessThan Double"); !strings.Contains(got, "not invertible") {
		t.Errorf("got %q", got)
	}
	if got := run(t, "invert Below Double"); got != "AboveEqual\n" {
		t.Errorf("got %q", got)
	}
}

func TestStoreCommand(t *testing.T) {
	for line, want := range map[string]string{
		"store GP 8":  "Store8\n",
		"store gp 16": "Store16\n",
		"store GP 64": "Store\n",
		"store FP 32": "Store\n",
	} {
		if got := run(t, line); got != want {
			t.Errorf("%s: got %q, want %q", line, got, want)
		}
	}
	var out bytes.Buffer
	if runCommand(&out, "store XP 8") == nil || runCommand(&out, "store GP 7") == nil {
		t.Errorf("bad store arguments accepted")
	}
}

func TestArgumentCounts(t *testing.T) {
	var out bytes.Buffer
	if err := runCommand(&out, "invert LessThan"); err == nil || !strings.Contains(err.Error(), "usage: invert <opcode> <type>") {
		t.Errorf("got %v", err)
	}
	if err := runCommand(&out, "frobnicate"); err == nil {
		t.Errorf("unknown command accepted")
	}
	if err := runCommand(&out, "   "); err != nil {
		t.Errorf("blank line: %v", err)
	}
}

func TestOpcodesCommand(t *testing.T) {
	got := run(t, "opcodes Store")
	for _, want := range []string{"Store8", "Store16", "memory"} {
		if !strings.Contains(got, want) {
			t.Errorf("listing lacks %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "Add ") {
		t.Errorf("filter ignored")
	}
}

func TestAnalyzeCommand(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.json")
	bad := filepath.Join(dir, "bad.json")
	os.WriteFile(good, []byte(`{"codeBlock":{"name":"good","bytecodeCost":3},"blocks":[{"nodes":[{"op":"GetLocal"},{"op":"Return","children":[{"node":0}]}]}]}`), 0644)
	os.WriteFile(bad, []byte(`{"codeBlock":{"name":"bad","bytecodeCost":3},"blocks":[{"nodes":[{"op":"GetLocal"},{"op":"ArithAdd","children":[{"node":0,"useKind":"ScopeUse"}]}]}]}`), 0644)

	got := run(t, "analyze "+good+" "+bad)
	if !strings.Contains(got, "good:[cost 3]: CanCompileAndOSREnter -> FTLWithOSREntry (2 nodes, 1 blocks)") {
		t.Errorf("good graph: %s", got)
	}
	if !strings.Contains(got, "bad:[cost 3]: CannotCompile -> Baseline") || !strings.Contains(got, "@1:ArithAdd(@0:ScopeUse)") {
		t.Errorf("bad graph: %s", got)
	}
	if got := run(t, "dump "+good); !strings.Contains(got, "@1:Return(@0:UntypedUse)") {
		t.Errorf("dump: %s", got)
	}
	var out bytes.Buffer
	if runCommand(&out, "analyze "+filepath.Join(dir, "missing.json")) == nil {
		t.Errorf("missing file accepted")
	}
}

func TestOptionCommands(t *testing.T) {
	t.Cleanup(options.Reset)
	run(t, "set MaximumFTLCandidateBytecodeCost 5")
	if got := run(t, "get MaximumFTLCandidateBytecodeCost"); got != "5\n" {
		t.Errorf("got %q", got)
	}
	if got := run(t, "options"); !strings.Contains(got, "MaximumFTLCandidateBytecodeCost") {
		t.Errorf("options listing: %s", got)
	}
	var out bytes.Buffer
	if runCommand(&out, "set Trace perhaps") == nil {
		t.Errorf("bad value accepted")
	}
}

func TestHelp(t *testing.T) {
	got := run(t, "help")
	for name := range commands {
		if !strings.Contains(got, name) {
			t.Errorf("help does not list %s", name)
		}
	}
	if got := run(t, "help store"); !strings.Contains(got, "Usage: store <bank> <bits>") {
		t.Errorf("got %q", got)
	}
}

func TestEvalLineRecovers(t *testing.T) {
	var out bytes.Buffer
	evalLine(&out, "store GP 99")
	if !strings.Contains(out.String(), "error:") {
		t.Errorf("error not reported: %q", out.String())
	}
}
