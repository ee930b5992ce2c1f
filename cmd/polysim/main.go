/*
 * main.go, part of polysim.
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
	"os"

	"github.com/spf13/cobra"
)

//rootCmd is the entry point for all polysim subcommands.
var rootCmd = &cobra.Command{
	Use:   "polysim",
	Short: "Polymer structure generator and property simulator",
	Long: `Generates concrete polymer chains from BigSMILES notation
and computes physical/chemical properties on them.

Available subcommands:
  analyze - Analyze one polymer chain built from a BigSMILES string
  sweep   - Plot the molecular weight over a range of repeat counts`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(sweepCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", errPrefix(), err)
		os.Exit(1)
	}
}
