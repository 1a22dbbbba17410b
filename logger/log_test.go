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

package logger

import (
	"strings"
	"testing"
)

func TestLogger(t *testing.T) {
	l := newLogger(10)

	s := &strings.Builder{}
	l.write(s)
	if s.String() != "" {
		t.Errorf("log unexpectedly has content")
	}

	l.log("test", "this is a test")

	s.Reset()
	l.write(s)
	if s.String() != "test: this is a test\n" {
		t.Errorf("unexpected log content: %s", s.String())
	}

	// second entry with the same content should be flagged as a repeat
	// rather than appearing twice
	l.log("test", "this is a test")

	s.Reset()
	l.write(s)
	if s.String() != "test: this is a test (repeat x2)\n" {
		t.Errorf("unexpected log content: %s", s.String())
	}

	l.log("test2", "this is another test")

	s.Reset()
	l.write(s)
	if !strings.HasSuffix(s.String(), "test2: this is another test\n") {
		t.Errorf("unexpected log content: %s", s.String())
	}
}

func TestTail(t *testing.T) {
	l := newLogger(10)

	l.log("test", "1")
	l.log("test", "2")
	l.log("test", "3")

	s := &strings.Builder{}
	l.tail(s, 2)
	if s.String() != "test: 2\ntest: 3\n" {
		t.Errorf("unexpected tail content: %s", s.String())
	}

	// asking for more entries than exist is not an error
	s.Reset()
	l.tail(s, 100)
	if s.String() != "test: 1\ntest: 2\ntest: 3\n" {
		t.Errorf("unexpected tail content: %s", s.String())
	}
}

func TestMaxEntries(t *testing.T) {
	l := newLogger(2)

	l.log("test", "1")
	l.log("test", "2")
	l.log("test", "3")

	s := &strings.Builder{}
	l.write(s)
	if s.String() != "test: 2\ntest: 3\n" {
		t.Errorf("maximum entry count not maintained: %s", s.String())
	}
}
