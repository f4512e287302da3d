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

//go:build !windows

package monitor

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/pkg/term"
	"github.com/tebeka/atexit"

	"github.com/jetsetilly/dis64/curated"
	"github.com/jetsetilly/dis64/logger"
)

// the terminal device read by Keyboard().
const ttyDevice = "/dev/tty"

// how long a read of the terminal waits for a keypress before the context is
// checked again.
const keyboardTimeout = 100 * time.Millisecond

// Keyboard puts the terminal into cbreak mode and reads keypresses in a new
// goroutine until the context is cancelled. Pressing 'q' calls the cancel
// function. Pressing 'r' sends to the refresh channel.
//
// The terminal is restored to its previous mode when the goroutine ends or
// when the program exits through atexit.Exit(), whichever happens first.
func Keyboard(ctx context.Context, cancel context.CancelFunc, refresh chan<- bool) error {
	tty, err := term.Open(ttyDevice, term.CBreakMode)
	if err != nil {
		return curated.Errorf("monitor: keyboard: %v", err)
	}

	var once sync.Once
	restore := func() {
		once.Do(func() {
			tty.Restore()
			tty.Close()
		})
	}

	err = tty.SetReadTimeout(keyboardTimeout)
	if err != nil {
		restore()
		return curated.Errorf("monitor: keyboard: %v", err)
	}

	atexit.Register(restore)

	go func() {
		defer restore()

		b := make([]byte, 1)
		for {
			select {
			case <-ctx.Done():
				return
			default:
			}

			n, err := tty.Read(b)
			if err != nil && !errors.Is(err, io.EOF) {
				logger.Log(logger.Allow, "monitor", err)
				return
			}

			// read timed out
			if n == 0 {
				continue // for loop
			}

			switch keyAction(b[0]) {
			case actionQuit:
				cancel()
				return
			case actionRefresh:
				select {
				case refresh <- true:
				default:
				}
			}
		}
	}()

	return nil
}
