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

// Package monitor watches a file for changes. It is used to redisassemble a
// program every time it is rebuilt by an assembler.
//
// Changes are detected by polling the size and modification time of the
// file. The function passed to Run() is called once when monitoring starts
// and then again after every change.
//
// Keyboard() reads keypresses from the terminal while monitoring. Pressing 'q'
// ends the monitoring and pressing 'r' forces the function to be called even
// though the file has not changed.
package monitor
