/*
 * report.go, part of polysim.
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
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	boldStyle    = lipgloss.NewStyle().Bold(true)
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	inputStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	dimStyle     = lipgloss.NewStyle().Faint(true)
	countStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	massStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	monoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	formulaStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	errStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
)

func errPrefix() string {
	return errStyle.Render("error:")
}

//renderReport builds the full analysis report: banner, input summary,
//property table and footnote.
func renderReport(r *analysisReport) string {
	var b strings.Builder
	writeBanner(&b)
	writeSummary(&b, r)
	writeTable(&b, r)
	writeFootnote(&b)
	return b.String()
}

func writeBanner(b *strings.Builder) {
	title := "  polysim — Polymer Chain Analysis  "
	bar := strings.Repeat("─", lipgloss.Width(title))
	fmt.Fprintf(b, "\n  ╭%s╮\n", bar)
	fmt.Fprintf(b, "  │%s│\n", titleStyle.Render(title))
	fmt.Fprintf(b, "  ╰%s╯\n\n", bar)
}

func writeSummary(b *strings.Builder, r *analysisReport) {
	summaryLine(b, "BigSMILES", inputStyle.Render(r.notation))
	summaryLine(b, "Strategy", r.strategy)
	if r.beginBlock != "" {
		summaryLine(b, "Begin", inputStyle.Render(r.beginBlock))
	}
	if r.endBlock != "" {
		summaryLine(b, "End", inputStyle.Render(r.endBlock))
	}
	summaryLine(b, "SMILES", dimStyle.Render(truncate(r.smiles, 60)))
	b.WriteString("\n")
}

func summaryLine(b *strings.Builder, key, value string) {
	fmt.Fprintf(b, "  %s%s\n", boldStyle.Width(11).Render(key), value)
}

func writeTable(b *strings.Builder, r *analysisReport) {
	t := newPropertyTable()
	t.add("Repeat units (n)", countStyle.Render(fmt.Sprintf("%d", r.repeats)))
	t.add("Mn  (number-average Mw)", massStyle.Render(gmol(r.mn)))
	if r.deltaMn != nil {
		t.add(dimStyle.Render("  Δ Mn  (achieved − target)"), deltaCell(*r.deltaMn, r.mn))
	}
	t.add("Mw ¹", massStyle.Render(gmol(r.mn)))
	t.add("Dispersity  Đ ¹", massStyle.Render("1.000"))
	t.add("Monoisotopic mass", monoStyle.Render(gmol(r.monoMass)))
	if r.deltaMass != nil {
		t.add(dimStyle.Render("  Δ mono  (achieved − target)"), deltaCell(*r.deltaMass, r.monoMass))
	}
	t.add("Molecular formula", formulaStyle.Render(subscriptDigits(r.formula)))
	t.add("Total atoms", countStyle.Render(fmt.Sprintf("%d", r.atomCount)))
	b.WriteString(t.render())
}

func writeFootnote(b *strings.Builder) {
	fmt.Fprintf(b, "\n  %s Single ideal chain — Mw = Mn, Đ = 1.000\n", dimStyle.Render("¹"))
	fmt.Fprintf(b, "    %s\n\n", dimStyle.Italic(true).Render(
		"Material simulation (real distributions) will be available in a future release."))
}

func gmol(mass float64) string {
	return fmt.Sprintf("%.3f g/mol", mass)
}

func deltaCell(delta, reference float64) string {
	sign, style := deltaStyle(delta, reference)
	return style.Render(fmt.Sprintf("%s%.3f g/mol", sign, delta))
}

//propertyTable renders two-column property/value rows with widths fitted
//to the content. Cells may carry ANSI styling; widths come from
//lipgloss.Width, which ignores the escape sequences.
type propertyTable struct {
	headers [2]string
	rows    [][2]string
}

func newPropertyTable() *propertyTable {
	return &propertyTable{headers: [2]string{"Property", "Value"}}
}

func (t *propertyTable) add(property, value string) {
	t.rows = append(t.rows, [2]string{property, value})
}

func (t *propertyTable) render() string {
	widths := [2]int{lipgloss.Width(t.headers[0]), lipgloss.Width(t.headers[1])}
	for _, row := range t.rows {
		for i, cell := range row {
			if w := lipgloss.Width(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	cell := lipgloss.NewStyle().Padding(0, 1)
	var b strings.Builder
	for i, h := range t.headers {
		b.WriteString(cell.Width(widths[i] + 2).Render(boldStyle.Render(h)))
		if i == 0 {
			b.WriteString(dimStyle.Render("│"))
		}
	}
	b.WriteString("\n")
	total := widths[0] + widths[1] + 5
	b.WriteString(dimStyle.Render(strings.Repeat("─", total)) + "\n")
	for _, row := range t.rows {
		for i, c := range row {
			b.WriteString(cell.Width(widths[i] + 2).Render(c))
			if i == 0 {
				b.WriteString(dimStyle.Render("│"))
			}
		}
		b.WriteString("\n")
	}
	//indent the whole block two spaces like the summary above it
	out := ""
	for _, line := range strings.Split(strings.TrimRight(b.String(), "\n"), "\n") {
		out += "  " + line + "\n"
	}
	return out
}
