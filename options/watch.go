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
	"path/filepath"
	"sync"
	"time"

	"github.com/dc0d/onexit"
	"github.com/fsnotify/fsnotify"
	"github.com/launix-de/b3jit/datalog"
)

// Watch loads path once and reloads it whenever it changes on disk. Reload
// errors are logged and keep the previous snapshot. The returned function
// stops watching; it is also run on process exit.
func Watch(path string) (stop func(), err error) {
	if err := LoadFile(path); err != nil {
		return nil, err
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// editors replace files by rename, so watch the directory
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, err
	}
	abs, _ := filepath.Abs(path)
	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-done:
				return
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				datalog.Log().Warning("options: watch %s: %v", path, err)
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if name, _ := filepath.Abs(ev.Name); name != abs || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				// coalesce bursts so we don't read half written files
				for {
					time.Sleep(10 * time.Millisecond)
					select {
					case _, ok := <-watcher.Events:
						if ok {
							continue
						}
					default:
					}
					break
				}
				if err := LoadFile(path); err != nil {
					datalog.Log().Error("options: reload %s: %v", path, err)
				} else {
					datalog.Log().Info("options: reloaded %s", path)
				}
			}
		}
	}()
	var once sync.Once
	stop = func() {
		once.Do(func() {
			close(done)
			watcher.Close()
		})
	}
	onexit.Register(stop)
	return stop, nil
}
