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
package profiler

import (
	"sync"
	"testing"

	"github.com/jtolds/gls"
)

func TestQueueRunsInOrder(t *testing.T) {
	q := NewQueue("test")
	defer q.Stop()
	var got []int
	for i := 0; i < 1000; i++ {
		i := i
		q.Dispatch(func() { got = append(got, i) })
	}
	q.Drain()
	if len(got) != 1000 {
		t.Fatalf("ran %d tasks", len(got))
	}
	for i, v := range got {
		if v != i {
			t.Fatalf("task %d ran at position %d", v, i)
		}
	}
}

func TestQueueStopFlushes(t *testing.T) {
	q := NewQueue("test")
	ran := 0
	for i := 0; i < 10; i++ {
		q.Dispatch(func() { ran++ })
	}
	q.Stop()
	if ran != 10 {
		t.Errorf("stop dropped tasks: %d ran", ran)
	}
	if q.Dispatch(func() {}) {
		t.Errorf("dispatch after stop accepted")
	}
	q.Drain() // must not hang
	q.Stop()
}

func TestQueueSurvivesPanics(t *testing.T) {
	q := NewQueue("test")
	defer q.Stop()
	after := false
	q.Dispatch(func() { panic("boom") })
	q.Dispatch(func() { after = true })
	q.Drain()
	if !after {
		t.Errorf("queue died after a panic")
	}
	if q.Panics() != 1 {
		t.Errorf("expected one panic, got %d", q.Panics())
	}
}

func TestQueueConcurrentProducers(t *testing.T) {
	q := NewQueue("test")
	defer q.Stop()
	var wg sync.WaitGroup
	count := 0
	for p := 0; p < 8; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				q.Dispatch(func() { count++ })
			}
		}()
	}
	wg.Wait()
	q.Drain()
	if count != 800 {
		t.Errorf("expected 800 tasks, got %d", count)
	}
}

func TestThreadID(t *testing.T) {
	if CurrentThreadID() == 0 {
		t.Errorf("no thread id")
	}
	WithThreadID(4242, func() {
		if got := CurrentThreadID(); got != 4242 {
			t.Errorf("got %d", got)
		}
		done := make(chan uint32)
		gls.Go(func() { done <- CurrentThreadID() })
		if got := <-done; got != 4242 {
			t.Errorf("child goroutine got %d", got)
		}
	})
}

func TestTimestampMonotonic(t *testing.T) {
	prev := GenerateTimestamp()
	for i := 0; i < 1000; i++ {
		now := GenerateTimestamp()
		if now < prev {
			t.Fatalf("clock went backwards: %d < %d", now, prev)
		}
		prev = now
	}
}
