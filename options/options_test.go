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
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestDefaults(t *testing.T) {
	t.Cleanup(Reset)
	o := Current()
	if o.JITDumpDirectory != "/tmp" || o.MaximumFTLCandidateBytecodeCost != 20000 {
		t.Errorf("unexpected defaults %+v", o)
	}
	if o.NumberOfFTLCompilerThreads < 1 {
		t.Errorf("no compiler threads by default")
	}
}

func TestGetSet(t *testing.T) {
	t.Cleanup(Reset)
	before := Current()
	if err := Set("VerboseFTLFailure", "true"); err != nil {
		t.Fatal(err)
	}
	if !Current().VerboseFTLFailure {
		t.Errorf("set did not publish")
	}
	if before.VerboseFTLFailure {
		t.Errorf("old snapshot was mutated")
	}
	if err := Set("MaximumFTLCandidateBytecodeCost", "17"); err != nil {
		t.Fatal(err)
	}
	if v, _ := Get("MaximumFTLCandidateBytecodeCost"); v != "17" {
		t.Errorf("got %q", v)
	}
	for _, bad := range [][2]string{
		{"NoSuchOption", "1"},
		{"Trace", "maybe"},
		{"NumberOfFTLCompilerThreads", "0"},
		{"LogLevel", "loud"},
	} {
		if err := Set(bad[0], bad[1]); err == nil {
			t.Errorf("Set(%q, %q) accepted", bad[0], bad[1])
		}
	}
	if Current().NumberOfFTLCompilerThreads < 1 {
		t.Errorf("rejected value was published")
	}
	if _, err := Get("NoSuchOption"); err == nil {
		t.Errorf("unknown option readable")
	}
}

func TestNamesHaveHelp(t *testing.T) {
	for _, name := range Names() {
		if Help(name) == "" {
			t.Errorf("%s has no help text", name)
		}
		if _, err := Get(name); err != nil {
			t.Errorf("%s: %v", name, err)
		}
	}
}

func TestEnvName(t *testing.T) {
	for name, want := range map[string]string{
		"JITDumpDirectory":                "JSC_jitDumpDirectory",
		"LogJITCodeForPerf":               "JSC_logJITCodeForPerf",
		"MaximumFTLCandidateBytecodeCost": "JSC_maximumFTLCandidateBytecodeCost",
		"Trace":                           "JSC_trace",
	} {
		if got := EnvName(name); got != want {
			t.Errorf("EnvName(%s) = %s, want %s", name, got, want)
		}
	}
}

func TestLoadEnv(t *testing.T) {
	t.Cleanup(Reset)
	t.Setenv("JSC_jitDumpDirectory", "/var/tmp")
	t.Setenv("JSC_logJITCodeForPerf", "1")
	t.Setenv("JSC_maximumFTLCandidateBytecodeCost", "7")
	if err := LoadEnv(); err != nil {
		t.Fatal(err)
	}
	o := Current()
	if o.JITDumpDirectory != "/var/tmp" || !o.LogJITCodeForPerf || o.MaximumFTLCandidateBytecodeCost != 7 {
		t.Errorf("environment ignored: %+v", o)
	}
	t.Setenv("JSC_numberOfFTLCompilerThreads", "many")
	if err := LoadEnv(); err == nil {
		t.Errorf("bad environment value accepted")
	}
}

// every environment name matches the key of the options file
func TestEnvNameMatchesJSONKey(t *testing.T) {
	typ := reflect.TypeOf(OptionsT{})
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if got, want := EnvName(f.Name), "JSC_"+f.Tag.Get("json"); got != want {
			t.Errorf("%s: %s != %s", f.Name, got, want)
		}
	}
}

func TestLoadFile(t *testing.T) {
	t.Cleanup(Reset)
	path := filepath.Join(t.TempDir(), "jsc.json")
	os.WriteFile(path, []byte(`{"verbosePerfLog": true, "numberOfFTLCompilerThreads": 3}`), 0644)
	if err := LoadFile(path); err != nil {
		t.Fatal(err)
	}
	o := Current()
	if !o.VerbosePerfLog || o.NumberOfFTLCompilerThreads != 3 || o.JITDumpDirectory != "/tmp" {
		t.Errorf("file not overlaid: %+v", o)
	}
	os.WriteFile(path, []byte(`{"bogus": 1}`), 0644)
	if err := LoadFile(path); err == nil {
		t.Errorf("unknown key accepted")
	}
}

func TestOnChange(t *testing.T) {
	t.Cleanup(Reset)
	var seen []bool
	OnChange(func(old, cur *OptionsT) {
		if old.Trace != cur.Trace {
			seen = append(seen, cur.Trace)
		}
	})
	Set("Trace", "true")
	Set("VerboseCompilation", "true")
	Set("Trace", "false")
	if len(seen) != 2 || !seen[0] || seen[1] {
		t.Errorf("listener saw %v", seen)
	}
}

func TestWatch(t *testing.T) {
	t.Cleanup(Reset)
	path := filepath.Join(t.TempDir(), "jsc.json")
	os.WriteFile(path, []byte(`{"verboseCompilation": false}`), 0644)
	stop, err := Watch(path)
	if err != nil {
		t.Fatal(err)
	}
	defer stop()
	os.WriteFile(path, []byte(`{"verboseCompilation": true}`), 0644)
	deadline := time.Now().Add(5 * time.Second)
	for !Current().VerboseCompilation {
		if time.Now().After(deadline) {
			t.Fatal("change on disk was not picked up")
		}
		time.Sleep(20 * time.Millisecond)
	}
}
