// This file is part of Dis64.
//
// Dis64 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Dis64 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Dis64.  If not, see <https://www.gnu.org/licenses/>.

package monitor

import (
	"context"
	"os"
	"time"

	"github.com/jetsetilly/dis64/logger"
)

// DefaultInterval is the polling interval used when an interval of zero is
// given to NewMonitor().
const DefaultInterval = 3 * time.Second

// Monitor polls a file for changes.
type Monitor struct {
	Filename string
	Interval time.Duration

	// a value sent on the Refresh channel causes the monitored function to be
	// called whether or not the file has changed
	Refresh chan bool

	// the state of the file when the monitored function was last called
	last fileState

	// a changed state that has not yet been seen for two polls in a row
	pending    fileState
	hasPending bool
}

// NewMonitor is the preferred method of initialisation for the Monitor type.
func NewMonitor(filename string, interval time.Duration) *Monitor {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Monitor{
		Filename: filename,
		Interval: interval,
		Refresh:  make(chan bool, 1),
	}
}

// Run calls fn for the named file with a new Monitor. See Monitor.Run().
func Run(ctx context.Context, filename string, interval time.Duration, fn func() error) error {
	return NewMonitor(filename, interval).Run(ctx, fn)
}

// Run calls fn once at the start and then whenever the file changes. It blocks
// until the context is cancelled.
//
// A change is acted upon only once the file's size and modification time have
// been the same for two polls in a row. A file that is partway through being
// written will not be passed to fn.
//
// Errors returned by fn are logged and monitoring continues. A file that
// cannot be read is also logged. Assemblers will often remove a file before
// writing a new one and so a missing file is not fatal.
func (m *Monitor) Run(ctx context.Context, fn func() error) error {
	ticker := time.NewTicker(m.Interval)
	defer ticker.Stop()

	logger.Logf(logger.Allow, "monitor", "watching %s every %v", m.Filename, m.Interval)

	m.check(fn, true)

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			m.check(fn, false)
		case <-m.Refresh:
			m.check(fn, true)
		}
	}
}

func (m *Monitor) check(fn func() error, force bool) {
	st, err := statFile(m.Filename)
	if err != nil {
		m.hasPending = false
		logger.Log(logger.Allow, "monitor", err)
		return
	}

	if !force {
		if st.equal(m.last) {
			m.hasPending = false
			return
		}
		if !m.hasPending || !st.equal(m.pending) {
			m.pending = st
			m.hasPending = true
			return
		}
	}

	m.last = st
	m.hasPending = false

	err = fn()
	if err != nil {
		logger.Log(logger.Allow, "monitor", err)
	}
}

// the properties of a file used to detect a change.
type fileState struct {
	size    int64
	modTime time.Time
}

func statFile(filename string) (fileState, error) {
	fi, err := os.Stat(filename)
	if err != nil {
		return fileState{}, err
	}
	return fileState{size: fi.Size(), modTime: fi.ModTime()}, nil
}

func (st fileState) equal(o fileState) bool {
	return st.size == o.size && st.modTime.Equal(o.modTime)
}
