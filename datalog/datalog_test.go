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
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type nopCloser struct{ *bytes.Buffer }

func (nopCloser) Close() error { return nil }

func TestIf(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stdout)

	If(false, "hidden %d", 1)
	if buf.Len() != 0 {
		t.Fatalf("disabled message was written: %q", buf.String())
	}
	If(true, "shown %d", 2)
	if !strings.Contains(buf.String(), "shown 2") {
		t.Errorf("message missing: %q", buf.String())
	}
}

func TestSetLevel(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stdout)
	defer SetLevel("INFO")

	if err := SetLevel("ERROR"); err != nil {
		t.Fatal(err)
	}
	Log().Info("quiet")
	if buf.Len() != 0 {
		t.Errorf("info passed an error level filter: %q", buf.String())
	}
	Log().Error("loud")
	if !strings.Contains(buf.String(), "loud") {
		t.Errorf("error was filtered")
	}
	if err := SetLevel("chatty"); err == nil {
		t.Errorf("unknown level accepted")
	}
}

func TestTraceFormat(t *testing.T) {
	buf := nopCloser{new(bytes.Buffer)}
	tr := NewTrace(buf)
	tr.Duration("compile", "ftl", 7, func() {})
	tr.Event("tick", "ftl", "i", 7)
	tr.Close()

	var events []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &events); err != nil {
		t.Fatalf("trace is not valid JSON: %v\n%s", err, buf.String())
	}
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}
	if events[0]["ph"] != "B" || events[1]["ph"] != "E" || events[2]["name"] != "tick" {
		t.Errorf("unexpected events %v", events)
	}
	if events[0]["tid"].(float64) != 7 {
		t.Errorf("tid lost")
	}
}

func TestNilTraceIsInert(t *testing.T) {
	var tr *Tracefile
	tr.Event("x", "y", "B", 0)
	ran := false
	tr.Duration("x", "y", 0, func() { ran = true })
	tr.Close()
	if !ran {
		t.Errorf("duration body skipped")
	}
}

func TestSetTrace(t *testing.T) {
	dir := t.TempDir()
	if err := SetTrace(true, dir); err != nil {
		t.Fatal(err)
	}
	Trace().Event("a", "b", "i", 1)
	if err := SetTrace(false, ""); err != nil {
		t.Fatal(err)
	}
	if Trace() != nil {
		t.Fatalf("trace still active")
	}
	files, _ := filepath.Glob(filepath.Join(dir, "trace_*.json"))
	if len(files) != 1 {
		t.Fatalf("expected one trace file, got %v", files)
	}
	data, _ := os.ReadFile(files[0])
	var events []map[string]any
	if err := json.Unmarshal(data, &events); err != nil || len(events) != 1 {
		t.Errorf("bad trace file %q: %v", data, err)
	}
}
