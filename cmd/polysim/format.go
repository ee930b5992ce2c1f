/*
 * format.go, part of polysim.
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
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	deltaGood = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	deltaFar  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)

//deltaStyle returns the sign string and the style for a delta value:
//green when the relative error |Δ/reference| is under 0.5%, yellow
//otherwise.
func deltaStyle(delta, reference float64) (string, lipgloss.Style) {
	sign := ""
	if delta >= 0 {
		sign = "+"
	}
	relative := math.Abs(delta)
	if math.Abs(reference) > 1e-9 {
		relative = math.Abs(delta / reference)
	}
	if relative < 0.005 {
		return sign, deltaGood
	}
	return sign, deltaFar
}

//subscriptDigits replaces ASCII digits with their Unicode subscript
//equivalents: "C20H42" becomes "C₂₀H₄₂".
func subscriptDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune('₀' + (r - '0'))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

//truncate shortens a long string with a mid-string ellipsis, keeping the
//start and the end. Strings of maxLen runes or fewer come back unchanged.
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	half := (maxLen - 1) / 2
	return string(runes[:half]) + "…" + string(runes[len(runes)-half:])
}
