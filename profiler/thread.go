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

import "github.com/jtolds/gls"

var contexts = gls.NewContextManager()

type threadKey struct{}

// WithThreadID runs fn with tid reported by CurrentThreadID, including in
// goroutines fn starts through gls.Go.
func WithThreadID(tid uint32, fn func()) {
	contexts.SetValues(gls.Values{threadKey{}: tid}, fn)
}

// CurrentThreadID returns the id of the calling compiler thread, falling
// back to the kernel thread id.
func CurrentThreadID() uint32 {
	if v, ok := contexts.GetValue(threadKey{}); ok {
		return v.(uint32)
	}
	return osThreadID()
}
