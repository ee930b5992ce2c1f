/*
 * smiles_test.go, part of polysim.
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

package smiles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//hydrogens returns the per-atom hydrogen counts in writing order.
func hydrogens(mol *Molecule) []int {
	hs := make([]int, len(mol.Atoms))
	for i, a := range mol.Atoms {
		hs[i] = a.Hydrogens
	}
	return hs
}

func totalH(mol *Molecule) int {
	total := 0
	for _, a := range mol.Atoms {
		total += a.Hydrogens
	}
	return total
}

func TestEthane(Te *testing.T) {
	mol, err := Parse("CC")
	require.NoError(Te, err)
	require.Equal(Te, 2, mol.Len())
	assert.Equal(Te, []int{3, 3}, hydrogens(mol))
	assert.Equal(Te, 6, mol.Atoms[0].AtomicNumber)
	assert.Equal(Te, "C", mol.Atoms[0].Symbol)
}

func TestPropaneBranch(Te *testing.T) {
	mol, err := Parse("CC(C)")
	require.NoError(Te, err)
	require.Equal(Te, 3, mol.Len())
	//central carbon has two carbon neighbours
	assert.Equal(Te, []int{3, 2, 3}, hydrogens(mol))
}

func TestDoubleAndTripleBonds(Te *testing.T) {
	mol, err := Parse("C=C")
	require.NoError(Te, err)
	assert.Equal(Te, []int{2, 2}, hydrogens(mol))

	mol, err = Parse("C#N")
	require.NoError(Te, err)
	assert.Equal(Te, []int{1, 0}, hydrogens(mol))
}

func TestBenzene(Te *testing.T) {
	mol, err := Parse("c1ccccc1")
	require.NoError(Te, err)
	require.Equal(Te, 6, mol.Len())
	for _, a := range mol.Atoms {
		assert.True(Te, a.Aromatic)
		assert.Equal(Te, 1, a.Hydrogens)
	}
}

func TestEthylbenzene(Te *testing.T) {
	//CC(c1ccccc1): C8H10, the substituted ring carbon carries no hydrogen
	mol, err := Parse("CC(c1ccccc1)")
	require.NoError(Te, err)
	require.Equal(Te, 8, mol.Len())
	assert.Equal(Te, []int{3, 2, 0, 1, 1, 1, 1, 1}, hydrogens(mol))
	assert.Equal(Te, 10, totalH(mol))
}

func TestPyridineAndPyrrole(Te *testing.T) {
	mol, err := Parse("c1ccncc1")
	require.NoError(Te, err)
	assert.Equal(Te, 5, totalH(mol)) //aromatic N carries no H

	mol, err = Parse("c1cc[nH]c1")
	require.NoError(Te, err)
	assert.Equal(Te, 5, totalH(mol)) //pyrrole N hydrogen is explicit
}

func TestRingClosureWithExplicitBond(Te *testing.T) {
	//cyclohexene written with the double bond on the ring closure
	mol, err := Parse("C=1CCCCC=1")
	require.NoError(Te, err)
	require.Equal(Te, 6, mol.Len())
	assert.Equal(Te, 10, totalH(mol))
}

func TestTwoDigitRingClosure(Te *testing.T) {
	mol, err := Parse("C%12CCCCC%12")
	require.NoError(Te, err)
	require.Equal(Te, 6, mol.Len())
	assert.Equal(Te, 12, totalH(mol)) //cyclohexane
}

func TestBracketAtoms(Te *testing.T) {
	mol, err := Parse("[13CH4]")
	require.NoError(Te, err)
	require.Equal(Te, 1, mol.Len())
	a := mol.Atoms[0]
	assert.Equal(Te, 6, a.AtomicNumber)
	assert.Equal(Te, 13, a.Isotope)
	assert.Equal(Te, 4, a.Hydrogens)

	mol, err = Parse("[NH4+]")
	require.NoError(Te, err)
	a = mol.Atoms[0]
	assert.Equal(Te, 7, a.AtomicNumber)
	assert.Equal(Te, 4, a.Hydrogens)
	assert.Equal(Te, 1, a.Charge)

	mol, err = Parse("[O-2]")
	require.NoError(Te, err)
	assert.Equal(Te, -2, mol.Atoms[0].Charge)
}

func TestBracketAtomNoImplicitH(Te *testing.T) {
	//a bracket atom has exactly the hydrogens written in it
	mol, err := Parse("[13C][13C]")
	require.NoError(Te, err)
	assert.Equal(Te, []int{0, 0}, hydrogens(mol))
}

func TestChiralityIgnored(Te *testing.T) {
	mol, err := Parse("N[C@@H](C)C(=O)O")
	require.NoError(Te, err)
	require.Equal(Te, 6, mol.Len())
	//alanine: the chiral carbon keeps its one explicit hydrogen
	assert.Equal(Te, 1, mol.Atoms[1].Hydrogens)
	assert.Equal(Te, 7, totalH(mol))
}

func TestWildcard(Te *testing.T) {
	mol, err := Parse("*CC*")
	require.NoError(Te, err)
	require.Equal(Te, 4, mol.Len())
	assert.Equal(Te, 0, mol.Atoms[0].AtomicNumber)
	//wildcard bonds still consume carbon valence
	assert.Equal(Te, []int{0, 2, 2, 0}, hydrogens(mol))
}

func TestTwoLetterElements(Te *testing.T) {
	mol, err := Parse("ClCCBr")
	require.NoError(Te, err)
	require.Equal(Te, 4, mol.Len())
	assert.Equal(Te, 17, mol.Atoms[0].AtomicNumber)
	assert.Equal(Te, 35, mol.Atoms[3].AtomicNumber)
}

func TestDotSeparatedFragments(Te *testing.T) {
	mol, err := Parse("[Na+].[Cl-]")
	require.NoError(Te, err)
	require.Equal(Te, 2, mol.Len())
	assert.Equal(Te, 11, mol.Atoms[0].AtomicNumber)
	assert.Equal(Te, 17, mol.Atoms[1].AtomicNumber)
}

func TestParseErrors(Te *testing.T) {
	for _, bad := range []string{
		"C(",      //unbalanced branch
		"C)",      //stray close
		"C1CC",    //unmatched ring closure
		"[13C",    //unterminated bracket
		"[Xy]",    //unknown element
		"[B]",     //element without mass data
		"[Fe]",    //element without mass data
		"[Se]",    //element without mass data
		"B",       //element without mass data
		"c1ccsec1", //no aromatic selenium either
		"C%1",     //truncated two-digit closure
		"C=",      //dangling bond
		"1CC",     //ring closure before any atom
		"C{",      //stray character
	} {
		_, err := Parse(bad)
		assert.Error(Te, err, "input %q", bad)
	}
}
