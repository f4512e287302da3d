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

type action int

const (
	actionNone action = iota
	actionQuit
	actionRefresh
)

func keyAction(k byte) action {
	switch k {
	case 'q', 'Q':
		return actionQuit
	case 'r', 'R':
		return actionRefresh
	}
	return actionNone
}
