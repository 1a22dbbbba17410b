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

package debugger

import (
	"bytes"
	"fmt"
	"io/ioutil"
	"sort"
	"strconv"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gopherboy/curated"
	"github.com/jetsetilly/gopherboy/debugger/terminal"
	"github.com/jetsetilly/gopherboy/disassembly"
	"github.com/jetsetilly/gopherboy/hardware/memory/memorymap"
	"github.com/jetsetilly/gopherboy/logger"
)

// the available commands. the keys are the command names, the values are
// the help text.
var commands = map[string]string{
	"HELP":      "display this help, or the help for a specific command",
	"QUIT":      "end the debugging session",
	"RESET":     "reset the machine to its post-boot state",
	"STEP":      "step the CPU over one instruction, or over the number given",
	"RUN":       "run the emulation until interrupted",
	"REGISTERS": "display the CPU registers",
	"MEMORY":    "display memory from the given address (MEMORY address [length])",
	"POKE":      "write a byte to memory (POKE address value)",
	"DISASM":    "disassemble from the given address, or from PC (DISASM [address] [count])",
	"TRACE":     "print every instruction as it executes (TRACE [on|off])",
	"INTERRUPT": "request an interrupt (INTERRUPT [bit 0 to 4])",
	"WAKE":      "wake the CPU from the stopped or halted state",
	"LOG":       "display the log, or clear it (LOG [clear])",
	"VIZ":       "write the hardware structure to a dot file (VIZ [filename])",
}

func (dbg *Debugger) parseInput(input string) error {
	tokens := strings.Fields(input)
	if len(tokens) == 0 {
		return nil
	}

	command := strings.ToUpper(tokens[0])
	args := tokens[1:]

	switch command {
	case "HELP":
		dbg.help(args)

	case "QUIT":
		dbg.running = false

	case "RESET":
		dbg.dmg.Reset()
		dbg.term.TermPrintLine(terminal.StyleFeedback, "machine reset")

	case "STEP":
		num := 1
		if len(args) > 0 {
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 1 {
				return curated.Errorf(DebuggerError, fmt.Sprintf("STEP wants a positive number, not %s", args[0]))
			}
			num = n
		}
		for i := 0; i < num; i++ {
			if err := dbg.step(); err != nil {
				return err
			}
		}
		dbg.printState()

	case "RUN":
		return dbg.run()

	case "REGISTERS":
		dbg.printState()
		dbg.term.TermPrintLine(terminal.StyleFeedback,
			fmt.Sprintf("IME=%v IE=%#02x IF=%#02x",
				dbg.dmg.CPU.IME,
				dbg.dmg.Mem.ReadByte(memorymap.AddressIE),
				dbg.dmg.Mem.ReadByte(memorymap.AddressIF)))

	case "MEMORY":
		if len(args) == 0 {
			return curated.Errorf(DebuggerError, "MEMORY wants an address")
		}
		address, err := parseAddress(args[0])
		if err != nil {
			return err
		}
		length := 64
		if len(args) > 1 {
			length, err = strconv.Atoi(args[1])
			if err != nil || length < 1 {
				return curated.Errorf(DebuggerError, fmt.Sprintf("MEMORY wants a positive length, not %s", args[1]))
			}
		}
		dbg.dumpMemory(address, length)

	case "POKE":
		if len(args) < 2 {
			return curated.Errorf(DebuggerError, "POKE wants an address and a value")
		}
		address, err := parseAddress(args[0])
		if err != nil {
			return err
		}
		value, err := strconv.ParseUint(strings.TrimPrefix(strings.TrimPrefix(strings.ToLower(args[1]), "0x"), "$"), 16, 8)
		if err != nil {
			return curated.Errorf(DebuggerError, fmt.Sprintf("%s is not a byte value", args[1]))
		}
		dbg.dmg.Mem.WriteByte(address, uint8(value))
		dbg.term.TermPrintLine(terminal.StyleFeedback,
			fmt.Sprintf("0x%04x = %#02x", address, dbg.dmg.Mem.ReadByte(address)))

	case "DISASM":
		address := dbg.dmg.CPU.PC.Address()
		if len(args) > 0 {
			a, err := parseAddress(args[0])
			if err != nil {
				return err
			}
			address = a
		}
		count := 16
		if len(args) > 1 {
			c, err := strconv.Atoi(args[1])
			if err != nil || c < 1 {
				return curated.Errorf(DebuggerError, fmt.Sprintf("DISASM wants a positive count, not %s", args[1]))
			}
			count = c
		}
		for _, e := range disassembly.Decode(dbg.dmg.Mem.ReadByte, address, count) {
			dbg.term.TermPrintLine(terminal.StyleTrace, e.String())
		}

	case "TRACE":
		if len(args) > 0 {
			switch strings.ToUpper(args[0]) {
			case "ON":
				dbg.trace = true
			case "OFF":
				dbg.trace = false
			default:
				return curated.Errorf(DebuggerError, fmt.Sprintf("TRACE wants on or off, not %s", args[0]))
			}
		} else {
			dbg.trace = !dbg.trace
		}
		dbg.term.TermPrintLine(terminal.StyleFeedback, fmt.Sprintf("trace: %v", dbg.trace))

	case "INTERRUPT":
		bit := 0
		if len(args) > 0 {
			b, err := strconv.Atoi(args[0])
			if err != nil || b < 0 || b > 4 {
				return curated.Errorf(DebuggerError, fmt.Sprintf("INTERRUPT wants a bit number between 0 and 4, not %s", args[0]))
			}
			bit = b
		}
		dbg.dmg.CPU.Interrupt(bit)
		dbg.term.TermPrintLine(terminal.StyleFeedback,
			fmt.Sprintf("interrupt bit %d requested (IF=%#02x)", bit, dbg.dmg.Mem.ReadByte(memorymap.AddressIF)))

	case "WAKE":
		dbg.dmg.CPU.Wake()
		dbg.printState()

	case "LOG":
		if len(args) > 0 && strings.ToUpper(args[0]) == "CLEAR" {
			logger.Clear()
			return nil
		}
		logger.Write(&styleWriter{term: dbg.term, style: terminal.StyleLog})

	case "VIZ":
		filename := "gopherboy.dot"
		if len(args) > 0 {
			filename = args[0]
		}
		buf := &bytes.Buffer{}
		memviz.Map(buf, dbg.dmg)
		if err := ioutil.WriteFile(filename, buf.Bytes(), 0644); err != nil {
			return curated.Errorf(DebuggerError, err)
		}
		dbg.term.TermPrintLine(terminal.StyleFeedback, fmt.Sprintf("written %s", filename))

	default:
		return curated.Errorf(DebuggerError, fmt.Sprintf("%s is not a debugger command", command))
	}

	return nil
}

func (dbg *Debugger) help(args []string) {
	if len(args) > 0 {
		command := strings.ToUpper(args[0])
		if text, ok := commands[command]; ok {
			dbg.term.TermPrintLine(terminal.StyleHelp, fmt.Sprintf("%s: %s", command, text))
		} else {
			dbg.term.TermPrintLine(terminal.StyleHelp, fmt.Sprintf("no help for %s", command))
		}
		return
	}

	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		dbg.term.TermPrintLine(terminal.StyleHelp, fmt.Sprintf("%-10s %s", name, commands[name]))
	}
}

func (dbg *Debugger) dumpMemory(address uint16, length int) {
	dbg.term.TermPrintLine(terminal.StyleFeedback, memorymap.Summary(address))

	b := strings.Builder{}
	for i := 0; i < length; i++ {
		if i%16 == 0 {
			if i > 0 {
				dbg.term.TermPrintLine(terminal.StyleFeedback, b.String())
				b.Reset()
			}
			b.WriteString(fmt.Sprintf("0x%04x  ", address+uint16(i)))
		}
		b.WriteString(fmt.Sprintf("%02x ", dbg.dmg.Mem.ReadByte(address+uint16(i))))
	}
	if b.Len() > 0 {
		dbg.term.TermPrintLine(terminal.StyleFeedback, b.String())
	}
}

// parseAddress converts a hexadecimal string, with or without an 0x or $
// prefix, to an address.
func parseAddress(s string) (uint16, error) {
	n := strings.TrimPrefix(strings.TrimPrefix(strings.ToLower(s), "0x"), "$")
	address, err := strconv.ParseUint(n, 16, 16)
	if err != nil {
		return 0, curated.Errorf(DebuggerError, fmt.Sprintf("%s is not an address", s))
	}
	return uint16(address), nil
}

// styleWriter is an io.Writer that sends whatever it receives to the
// terminal with a fixed style.
type styleWriter struct {
	term  terminal.Output
	style terminal.Style
}

func (w *styleWriter) Write(p []byte) (int, error) {
	for _, s := range strings.Split(strings.TrimRight(string(p), "\n"), "\n") {
		w.term.TermPrintLine(w.style, s)
	}
	return len(p), nil
}
