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
	"runtime/debug"
	"sync"

	"github.com/launix-de/b3jit/datalog"
)

// Task is a unit of work for a Queue.
type Task func()

// Queue runs tasks one at a time in submission order on a single goroutine.
// Dispatch never blocks on the tasks themselves.
type Queue struct {
	name     string
	mu       sync.Mutex
	tasks    []Task
	wakeCh   chan struct{}
	stopCh   chan struct{}
	stopped  bool
	panics   int
	initOnce sync.Once
	wg       sync.WaitGroup
}

// NewQueue starts a serial queue. name only shows up in log messages.
func NewQueue(name string) *Queue {
	q := &Queue{name: name}
	q.init()
	return q
}

func (q *Queue) init() {
	q.initOnce.Do(func() {
		q.wakeCh = make(chan struct{}, 1)
		q.stopCh = make(chan struct{})
		q.wg.Add(1)
		go q.run()
	})
}

// Dispatch appends fn to the queue. It returns false once the queue is stopped.
func (q *Queue) Dispatch(fn Task) bool {
	if fn == nil {
		return false
	}
	q.init()
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.stopped {
		return false
	}
	q.tasks = append(q.tasks, fn)
	q.signalLocked()
	return true
}

// Drain blocks until every task dispatched before the call has run.
func (q *Queue) Drain() {
	done := make(chan struct{})
	if !q.Dispatch(func() { close(done) }) {
		q.wg.Wait()
		return
	}
	<-done
}

// Stop runs the remaining tasks and terminates the worker.
func (q *Queue) Stop() {
	q.init()
	q.mu.Lock()
	if q.stopped {
		q.mu.Unlock()
		q.wg.Wait()
		return
	}
	q.stopped = true
	close(q.stopCh)
	q.mu.Unlock()
	q.wg.Wait()
}

// Panics counts tasks that panicked.
func (q *Queue) Panics() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.panics
}

func (q *Queue) signalLocked() {
	select {
	case q.wakeCh <- struct{}{}:
	default:
	}
}

func (q *Queue) runTask(fn Task) {
	defer func() {
		if r := recover(); r != nil {
			q.mu.Lock()
			q.panics++
			q.mu.Unlock()
			datalog.Log().Error("%s: task panic: %v", q.name, r)
			debug.PrintStack()
		}
	}()
	fn()
}

func (q *Queue) run() {
	defer q.wg.Done()
	for {
		q.mu.Lock()
		if len(q.tasks) == 0 {
			if q.stopped {
				q.mu.Unlock()
				return
			}
			q.mu.Unlock()
			select {
			case <-q.stopCh:
			case <-q.wakeCh:
			}
			continue
		}
		batch := q.tasks
		q.tasks = nil
		q.mu.Unlock()
		for _, fn := range batch {
			q.runTask(fn)
		}
	}
}
