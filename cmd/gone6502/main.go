// Command gone6502 loads a 6502 program, either a raw binary or an iNES
// cartridge image, and either runs it to completion or drops into the
// interactive debugger.
package main

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/urfave/cli.v2"

	"gone6502/bus"
	"gone6502/cpu"
	"gone6502/ines"
)

func main() {
	app := &cli.App{
		Name:    "gone6502",
		Usage:   "run or debug a 6502 program",
		Version: "v0.1.0",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "program",
				Aliases: []string{"p"},
				Usage:   "path to a raw binary or .nes image",
			},
			&cli.UintFlag{
				Name:    "origin",
				Aliases: []string{"o"},
				Usage:   "load address for a raw binary (ignored for .nes images)",
				Value:   0x8000,
			},
			&cli.BoolFlag{
				Name:    "debug",
				Aliases: []string{"d"},
				Usage:   "start the interactive debugger instead of running to completion",
			},
			&cli.BoolFlag{
				Name:  "interrupt-on-brk",
				Usage: "vector BRK through 0xfffe instead of halting the Cpu",
			},
		},
		Action: run,
	}

	sort.Sort(cli.FlagsByName(app.Flags))
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	path := c.String("program")
	if path == "" {
		cli.ShowAppHelp(c)
		return cli.Exit("", 86)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cli.Exit(fmt.Sprintf("reading %s: %v", path, err), 1)
	}

	machine, origin, err := buildMachine(data, uint16(c.Uint("origin")))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	if c.Bool("interrupt-on-brk") {
		machine.Halt = cpu.InterruptOnBRK
	}

	machine.Bus.Write16(0xfffc, origin)
	machine.Reset()

	if c.Bool("debug") {
		machine.Debug(origin)
		return nil
	}

	if err := machine.Run(); err != nil {
		return cli.Exit(err.Error(), 1)
	}
	return nil
}

// buildMachine recognises an iNES image by its magic header and otherwise
// treats data as a raw binary loaded flat at origin into a plain RAM bus.
func buildMachine(data []byte, origin uint16) (*cpu.Cpu, uint16, error) {
	if len(data) >= 4 && string(data[:4]) == "NES\x1a" {
		rom, err := ines.Load(data)
		if err != nil {
			return nil, 0, err
		}
		return cpu.New(bus.NewSystem(rom, nil)), 0x8000, nil
	}

	ram := bus.NewRAM()
	c := cpu.New(ram)
	if err := c.Load(data, origin); err != nil {
		return nil, 0, err
	}
	return c, origin, nil
}
