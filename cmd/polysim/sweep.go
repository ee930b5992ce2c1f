/*
 * sweep.go, part of polysim.
 *
 * Copyright 2026 The polysim authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/polysimtools/polysim"
	"github.com/polysimtools/polysim/bigsmiles"
)

var (
	sweepFrom int
	sweepTo   int
	sweepStep int
	sweepOut  string
)

var sweepCmd = &cobra.Command{
	Use:   "sweep BIGSMILES",
	Short: "Plot the molecular weight over a range of repeat counts",
	Long: `Builds the chain at every repeat count in [--from, --to] and plots
the average molecular weight against n. The mass of an ideal linear
chain is affine in n, so the plot is a straight line whose slope is the
per-unit mass.`,
	Args: cobra.ExactArgs(1),
	RunE: runSweep,
}

func init() {
	f := sweepCmd.Flags()
	f.IntVar(&sweepFrom, "from", 1, "first repeat count")
	f.IntVar(&sweepTo, "to", 50, "last repeat count")
	f.IntVar(&sweepStep, "step", 1, "repeat count increment")
	f.StringVarP(&sweepOut, "plot", "p", "mn_sweep.png", "output image file (.png, .svg or .pdf)")
}

func runSweep(cmd *cobra.Command, args []string) error {
	if sweepFrom < 1 || sweepTo < sweepFrom || sweepStep < 1 {
		return fmt.Errorf("need 1 <= from <= to and step >= 1 (got from=%d to=%d step=%d)",
			sweepFrom, sweepTo, sweepStep)
	}
	bs, err := bigsmiles.Parse(args[0])
	if err != nil {
		return err
	}
	pts := make(plotter.XYs, 0, (sweepTo-sweepFrom)/sweepStep+1)
	for n := sweepFrom; n <= sweepTo; n += sweepStep {
		chain, err := polysim.NewLinearBuilder(bs, polysim.ByRepeatCount(n)).Homopolymer()
		if err != nil {
			return err
		}
		mw, err := polysim.AverageMass(chain.SMILES())
		if err != nil {
			return err
		}
		pts = append(pts, plotter.XY{X: float64(n), Y: mw})
	}
	if err := saveSweepPlot(pts, args[0], sweepOut); err != nil {
		return err
	}
	fmt.Printf("%s points %d, wrote %s\n",
		titleStyle.Render("sweep:"), len(pts), inputStyle.Render(sweepOut))
	return nil
}

func saveSweepPlot(pts plotter.XYs, notation, filename string) error {
	p := plot.New()
	p.Title.Text = "Molecular weight vs repeat count"
	p.Title.Padding = 3 * vg.Millimeter
	p.X.Label.Text = "Repeat units (n)"
	p.Y.Label.Text = "Mn (g/mol)"
	p.Add(plotter.NewGrid())
	line, points, err := plotter.NewLinePoints(pts)
	if err != nil {
		return err
	}
	p.Add(line, points)
	p.Legend.Add(truncate(notation, 30), line)
	return p.Save(15*vg.Centimeter, 10*vg.Centimeter, filename)
}
