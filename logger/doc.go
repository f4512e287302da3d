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

// Package logger is the central log for the application. Entries are made up
// of a tag and a detail string. Repeated entries are collapsed into a single
// entry with a repeat count.
//
// The central logger is accessed through the package level functions. Other
// instances can be created with NewLogger(), which is useful for testing.
//
// Every log request is accompanied by a Permission. Use logger.Allow if the
// entry should always be made.
package logger
