// This file is part of Gopherboy.
//
// Gopherboy is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherboy is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherboy.  If not, see <https://www.gnu.org/licenses/>.

// Package statsview is a wrapper for "github.com/go-echarts/statsview". It
// serves Go runtime charts (heap, GC pause, goroutine count) over HTTP
// while the emulation runs, which is useful alongside the performance
// package.
//
// The package is gated behind the statsview build tag. Without the tag the
// stub implementation compiles in and Launch() does nothing except print an
// explanatory message.
package statsview
