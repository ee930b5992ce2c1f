/*
 * ring_test.go, part of polysim.
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

package polysim

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaxRingNumber(Te *testing.T) {
	assert.Equal(Te, 0, maxRingNumber("CC"))
	assert.Equal(Te, 1, maxRingNumber("c1ccccc1"))
	assert.Equal(Te, 2, maxRingNumber("C1CC1C2CC2"))
	assert.Equal(Te, 12, maxRingNumber("C%12CC%12"))
	//digits inside brackets are not ring closures
	assert.Equal(Te, 0, maxRingNumber("[13C][13C]"))
	assert.Equal(Te, 1, maxRingNumber("[13C]1CC1"))
}

func TestRenumberIdentity(Te *testing.T) {
	//offset 0 is the identity fast path
	in := "CC(c1ccccc1)"
	assert.Equal(Te, in, renumberRingClosures(in, 0))
}

func TestRenumberSingleDigit(Te *testing.T) {
	assert.Equal(Te, "c2ccccc2", renumberRingClosures("c1ccccc1", 1))
	assert.Equal(Te, "c9ccccc9", renumberRingClosures("c1ccccc1", 8))
}

func TestRenumberWidensToTwoDigits(Te *testing.T) {
	assert.Equal(Te, "c%10ccccc%10", renumberRingClosures("c1ccccc1", 9))
	assert.Equal(Te, "C%15CC%15", renumberRingClosures("C%12CC%12", 3))
}

func TestRenumberLeavesBracketsAlone(Te *testing.T) {
	assert.Equal(Te, "[13C]3CC3[2H]", renumberRingClosures("[13C]1CC1[2H]", 2))
	assert.Equal(Te, "[CH3][NH4+]", renumberRingClosures("[CH3][NH4+]", 5))
}

func TestBuildLinearNoRings(Te *testing.T) {
	s, err := buildLinearSmiles("CC", 3)
	require.NoError(Te, err)
	assert.Equal(Te, "CCCCCC", s)
}

//A fragment with no ring closures assembled at n2 is the n1 assembly plus
//further unmodified copies.
func TestBuildLinearNoRingsIsPlainConcatenation(Te *testing.T) {
	s5, err := buildLinearSmiles("CC(C)", 5)
	require.NoError(Te, err)
	s2, err := buildLinearSmiles("CC(C)", 2)
	require.NoError(Te, err)
	assert.Equal(Te, s2+strings.Repeat("CC(C)", 3), s5)
}

func TestBuildLinearRingCycling(Te *testing.T) {
	//maxRing=1 so the cycle length is 99: copy 99 recycles offset 0, whose
	//ring was opened and closed back in copy 0
	s, err := buildLinearSmiles("CC(c1ccccc1)", 100)
	require.NoError(Te, err)
	assert.True(Te, strings.HasPrefix(s, "CC(c1ccccc1)CC(c2ccccc2)"))
	assert.True(Te, strings.HasSuffix(s, "CC(c1ccccc1)"))
}
