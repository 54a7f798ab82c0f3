package main

import (
	"fmt"
	"log"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli"
	"go.uber.org/zap"

	"qrect"
)

// VERSION is populated via build flags when packaging release binaries.
var VERSION = "SELFBUILD"

// defaultSides is the quadruple checked when no arguments are given.
var defaultSides = []int{2, 4, 4, 2}

func main() {
	myApp := cli.NewApp()
	myApp.Name = "qrect"
	myApp.Usage = "decide whether four side lengths can form a rectangle, using a quantum SWAP test"
	myApp.UsageText = "qrect [options] [A B C D]"
	myApp.Version = VERSION
	myApp.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "draw, d",
			Usage: "print the SWAP-test circuit for the first pairing",
		},
		cli.BoolFlag{
			Name:  "styled, s",
			Usage: "color the printed circuit instead of plain text",
		},
		cli.BoolFlag{
			Name:  "qasm",
			Usage: "print the first pairing's circuit as OPENQASM 2.0",
		},
		cli.BoolFlag{
			Name:  "table, t",
			Usage: "print a per-pairing probability table",
		},
		cli.BoolFlag{
			Name:  "tui",
			Usage: "open the interactive circuit inspector",
		},
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: "log encoding and oracle diagnostics",
		},
		cli.IntFlag{
			Name:  "maxwires",
			Value: qrect.DefaultMaxWires,
			Usage: "widest register simulated with a dense statevector; wider uses the closed-form overlap",
		},
	}
	myApp.Action = func(c *cli.Context) error {
		sides := defaultSides
		if c.NArg() > 0 {
			if c.NArg() != 4 {
				return errors.Errorf("expected exactly four side lengths, got %d", c.NArg())
			}
			parsed, err := qrect.ParseLengths(c.Args())
			if err != nil {
				return err
			}
			sides = parsed
		}

		ctx := qrect.NewSimContext()
		ctx.MaxWires = c.Int("maxwires")
		if c.Bool("verbose") {
			logger, err := zap.NewDevelopment()
			if err != nil {
				return errors.Wrap(err, "initializing logger")
			}
			defer logger.Sync()
			ctx.Logger = logger
		}

		if c.Bool("tui") {
			return runInspector(ctx, sides)
		}

		if c.Bool("qasm") {
			enc, err := qrect.EncodeLengths(sides)
			if err != nil {
				return err
			}
			circ, err := qrect.BuildSwapTestCircuit(
				qrect.Pair{U: enc[0], V: enc[1]},
				qrect.Pair{U: enc[2], V: enc[3]})
			if err != nil {
				return err
			}
			fmt.Print(circ.ToQASM())
			return nil
		}

		draw := qrect.DrawNone
		if c.Bool("draw") {
			draw = qrect.DrawText
			if c.Bool("styled") {
				draw = qrect.DrawStyled
			}
		}

		result, err := ctx.IsRectangle(sides[0], sides[1], sides[2], sides[3], draw)
		if err != nil {
			return err
		}

		if c.Bool("table") {
			results, err := ctx.PairingProbabilities(sides[0], sides[1], sides[2], sides[3])
			if err != nil {
				return err
			}
			printReport(os.Stdout, results)
		}

		fmt.Println(result)
		return nil
	}

	if err := myApp.Run(os.Args); err != nil {
		log.Fatalln(err)
	}
}
