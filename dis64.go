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

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/tebeka/atexit"

	"github.com/jetsetilly/dis64/d64"
	"github.com/jetsetilly/dis64/disassembly"
	"github.com/jetsetilly/dis64/disassembly/symbols"
	"github.com/jetsetilly/dis64/logger"
	"github.com/jetsetilly/dis64/modalflag"
	"github.com/jetsetilly/dis64/monitor"
	"github.com/jetsetilly/dis64/performance"
	"github.com/jetsetilly/dis64/programloader"
	"github.com/jetsetilly/dis64/statsview"
	"github.com/jetsetilly/dis64/version"
)

// exit values.
const (
	exitOK         = 0
	exitParseError = 10
	exitModeError  = 20
)

func main() {
	// ctrl-c cancels the context. modes that run for a long time end
	// gracefully when this happens
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	exitVal := launch(ctx, os.Args[1:], os.Stdout)
	stop()

	// exit handlers registered by other packages are run before exiting
	atexit.Exit(exitVal)
}

// launch parses the arguments and runs the selected mode. returns the value
// to use with os.Exit().
func launch(ctx context.Context, args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("DISASM", "MONITOR", "DISK", "SYMBOLS", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitParseError
	}

	switch md.Mode() {
	case "DISASM":
		err = disasm(md)

	case "MONITOR":
		err = monitorMode(ctx, md)

	case "DISK":
		err = disk(md)

	case "SYMBOLS":
		err = listSymbols(md)

	case "PERFORMANCE":
		err = perform(md)

	case "VERSION":
		fmt.Fprintln(output, version.String())
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		return exitModeError
	}

	return exitOK
}

// disasmFlags are the flags shared by every mode that produces a disassembly.
type disasmFlags struct {
	nobinary   *bool
	nocomments *bool
	acme       *bool
	zerorun    *int
	zerocode   *bool
	nostub     *bool
	documented *bool
	symbols    *bool
	symfile    *string
	memviz     *string
	stats      *bool
	log        *bool
}

func addDisasmFlags(md *modalflag.Modes) *disasmFlags {
	return &disasmFlags{
		nobinary:   md.AddBool("nobinary", false, "do not show the address and bytes of instructions"),
		nocomments: md.AddBool("nocomments", false, "do not show comments"),
		acme:       md.AddBool("acme", false, "labels without a colon suffix (ACME style)"),
		zerorun:    md.AddInt("zerorun", 1, "minimum length of a run of zero bytes shown as data"),
		zerocode:   md.AddBool("zerocode", false, "runs of zero bytes are decoded as BRK instructions"),
		nostub:     md.AddBool("nostub", false, "program has no BASIC stub. code starts at the load address"),
		documented: md.AddBool("documented", false, "undocumented opcodes are shown as unknown"),
		symbols:    md.AddBool("symbols", false, "show C64 symbols for hardware addresses"),
		symfile:    md.AddString("symfile", "", "ACME symbol file (implies -symbols)"),
		memviz:     md.AddString("memviz", "", "write a graph of the cross references to file (dot format)"),
		stats:      md.AddBool("stats", false, "print disassembly statistics to stderr"),
		log:        md.AddBool("log", false, "echo debugging log to stderr"),
	}
}

func (f *disasmFlags) setLog() {
	if *f.log {
		logger.SetEcho(os.Stderr)
	} else {
		logger.SetEcho(nil)
	}
}

func (f *disasmFlags) config() disassembly.Config {
	return disassembly.Config{
		ZeroRun: disassembly.ZeroRunPolicy{
			MinLength: *f.zerorun,
			AsCode:    *f.zerocode,
		},
		DocumentedOnly: *f.documented,
	}
}

func (f *disasmFlags) attr() (disassembly.WriteAttr, error) {
	attr := disassembly.WriteAttr{
		ByteCode:    !*f.nobinary,
		Comments:    !*f.nocomments,
		LabelSuffix: ":",
	}

	if *f.acme {
		attr.LabelSuffix = ""
	}

	if *f.symbols || *f.symfile != "" {
		attr.Symbols = symbols.NewSymbols()
		if *f.symfile != "" {
			err := attr.Symbols.ReadSymbolsFile(*f.symfile)
			if err != nil {
				return attr, err
			}
		}
	}

	return attr, nil
}

// loadProgram loads the named program file.
func (f *disasmFlags) loadProgram(filename string) (programloader.Program, error) {
	ld, err := programloader.NewLoader(filename)
	if err != nil {
		return programloader.Program{}, err
	}
	ld.ParseStub = !*f.nostub
	return ld.Load()
}

// render disassembles the program and writes the listing to the named file.
// the listing is written to stdout if the filename is empty.
func (f *disasmFlags) render(prg programloader.Program, outFile string, stdout io.Writer) (rerr error) {
	attr, err := f.attr()
	if err != nil {
		return err
	}

	dsm, err := disassembly.FromProgram(prg, f.config())
	if err != nil {
		return err
	}

	output := stdout
	if outFile != "" {
		o, err := os.Create(outFile)
		if err != nil {
			return err
		}
		defer func() {
			if err := o.Close(); err != nil && rerr == nil {
				rerr = err
			}
		}()
		output = o
	}

	err = disassembly.WriteHeader(output, prg, attr)
	if err != nil {
		return err
	}

	err = dsm.Write(output, attr)
	if err != nil {
		return err
	}

	if *f.stats {
		dsm.Stats().WriteTable(os.Stderr, prg.Filename)
	}

	if *f.memviz != "" {
		m, err := os.Create(*f.memviz)
		if err != nil {
			return err
		}
		dsm.Visualise(m)
		if err := m.Close(); err != nil {
			return err
		}
	}

	return nil
}

// the input file and optional output file of the DISASM and MONITOR modes.
func inOut(md *modalflag.Modes) (string, string, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return "", "", fmt.Errorf("program file required for %s mode", md)
	case 1:
		return md.GetArg(0), "", nil
	case 2:
		return md.GetArg(0), md.GetArg(1), nil
	}
	return "", "", fmt.Errorf("too many arguments for %s mode", md)
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()
	md.AdditionalHelp("arguments: INFILE [OUTFILE]")

	flgs := addDisasmFlags(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	flgs.setLog()

	inFile, outFile, err := inOut(md)
	if err != nil {
		return err
	}

	prg, err := flgs.loadProgram(inFile)
	if err != nil {
		return err
	}

	return flgs.render(prg, outFile, md.Output)
}

func monitorMode(ctx context.Context, md *modalflag.Modes) error {
	md.NewMode()
	md.AdditionalHelp("arguments: INFILE [OUTFILE]\n\npress 'q' to quit and 'r' to refresh")

	flgs := addDisasmFlags(md)
	interval := md.AddDuration("interval", monitor.DefaultInterval, "how often to check the input file for changes")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	flgs.setLog()

	inFile, outFile, err := inOut(md)
	if err != nil {
		return err
	}

	// check that the input file is supported before monitoring begins
	_, err = programloader.NewLoader(inFile)
	if err != nil {
		return err
	}

	if *stats {
		statsview.Launch(os.Stderr)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	mon := monitor.NewMonitor(inFile, *interval)

	err = monitor.Keyboard(ctx, cancel, mon.Refresh)
	if err != nil {
		logger.Log(logger.Allow, "dis64", err)
	}

	return mon.Run(ctx, func() error {
		prg, err := flgs.loadProgram(inFile)
		if err != nil {
			return err
		}

		err = flgs.render(prg, outFile, md.Output)
		if err != nil {
			return err
		}

		if outFile != "" {
			fmt.Fprintf(os.Stderr, "%s: %s updated\r\n", time.Now().Format(time.TimeOnly), outFile)
		}
		return nil
	})
}

func disk(md *modalflag.Modes) error {
	md.NewMode()
	md.AdditionalHelp("arguments: DISK.D64\n\nwithout -export the directory of the disk is listed")

	export := md.AddString("export", "", "name of file to export. a trailing * matches any file beginning with the name")
	out := md.AddString("out", "export.prg", "filename of exported file")
	list := md.AddBool("list", false, "list the directory of the disk")
	pattern := md.AddString("pattern", "", "list only the files matching the pattern")
	dis := md.AddBool("disasm", false, "disassemble the exported file to stdout instead of writing it")
	flgs := addDisasmFlags(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	flgs.setLog()

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("disk image required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	dsk, err := d64.Open(md.GetArg(0))
	if err != nil {
		return err
	}

	if *list || *export == "" {
		dsk.List(md.Output, *pattern)
		if *export == "" {
			return nil
		}
	}

	entry, err := dsk.FindFile(*export)
	if err != nil {
		return err
	}

	data, err := dsk.ReadFile(entry)
	if err != nil {
		return err
	}

	if *dis {
		prg, err := programloader.FromBytes(entry.Name, data, !*flgs.nostub)
		if err != nil {
			return err
		}
		return flgs.render(prg, "", md.Output)
	}

	err = os.WriteFile(*out, data, 0o644)
	if err != nil {
		return err
	}
	logger.Logf(logger.Allow, "dis64", "exported %s (%d bytes) to %s", entry.Name, len(data), *out)

	return nil
}

func listSymbols(md *modalflag.Modes) error {
	md.NewMode()

	symfile := md.AddString("symfile", "", "ACME symbol file to add to the canonical symbols")
	write := md.AddBool("write", false, "list only the symbols used for write instructions")
	read := md.AddBool("read", false, "list only the symbols used for read instructions")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	sym := symbols.NewSymbols()
	if *symfile != "" {
		err = sym.ReadSymbolsFile(*symfile)
		if err != nil {
			return err
		}
	}

	switch {
	case *read && !*write:
		sym.ListReadSymbols(md.Output)
	case *write && !*read:
		sym.ListWriteSymbols(md.Output)
	default:
		sym.ListSymbols(md.Output)
	}

	return nil
}

func perform(md *modalflag.Modes) error {
	md.NewMode()
	md.AdditionalHelp("arguments: INFILE")

	duration := md.AddString("duration", "5s", "run duration")
	profile := md.AddString("profile", "none", "produce profiling reports: cpu, mem, trace, all (comma separated)")
	flgs := addDisasmFlags(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	flgs.setLog()

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("program file required for %s mode", md)
	case 1:
		prg, err := flgs.loadProgram(md.GetArg(0))
		if err != nil {
			return err
		}
		return performance.Check(md.Output, prf, prg, flgs.config(), *duration)
	}

	return fmt.Errorf("too many arguments for %s mode", md)
}
