/*
 * properties_test.go, part of polysim.
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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"
)

func buildPE(Te *testing.T, n int) *PolymerChain {
	return build(Te, "{[]CC[]}", ByRepeatCount(n))
}

func buildPP(Te *testing.T, n int) *PolymerChain {
	return build(Te, "{[]CC(C)[]}", ByRepeatCount(n))
}

func buildPS(Te *testing.T, n int) *PolymerChain {
	return build(Te, "{[]CC(c1ccccc1)[]}", ByRepeatCount(n))
}

func assertClose(Te *testing.T, got, expected, tol float64, label string) {
	Te.Helper()
	assert.True(Te, scalar.EqualWithinAbs(got, expected, tol),
		"%s: got %.4f, expected %.4f (within %v)", label, got, expected, tol)
}

func formulaOf(Te *testing.T, chain *PolymerChain) string {
	Te.Helper()
	f, err := MolecularFormula(chain.SMILES())
	require.NoError(Te, err)
	return f
}

func atomsOf(Te *testing.T, chain *PolymerChain) int {
	Te.Helper()
	n, err := TotalAtomCount(chain.SMILES())
	require.NoError(Te, err)
	return n
}

//Polyethylene is the linear alkane C(2n)H(4n+2).
func TestFormulaPolyethylene(Te *testing.T) {
	assert.Equal(Te, "C2H6", formulaOf(Te, buildPE(Te, 1)))
	assert.Equal(Te, "C6H14", formulaOf(Te, buildPE(Te, 3)))
	assert.Equal(Te, "C20H42", formulaOf(Te, buildPE(Te, 10)))
}

//Polypropylene is C(3n)H(6n+2).
func TestFormulaPolypropylene(Te *testing.T) {
	assert.Equal(Te, "C3H8", formulaOf(Te, buildPP(Te, 1)))
	assert.Equal(Te, "C9H20", formulaOf(Te, buildPP(Te, 3)))
}

func TestFormulaPolystyrene(Te *testing.T) {
	//one unit is ethylbenzene, C8H10
	assert.Equal(Te, "C8H10", formulaOf(Te, buildPS(Te, 1)))
	assert.Equal(Te, "C16H18", formulaOf(Te, buildPS(Te, 2)))
}

func TestFormulaHillOrder(Te *testing.T) {
	//with carbon present: C, then H, then the rest alphabetical
	f, err := MolecularFormula("CCO")
	require.NoError(Te, err)
	assert.Equal(Te, "C2H6O", f)
	f, err = MolecularFormula("C(Cl)(Cl)Br")
	require.NoError(Te, err)
	assert.Equal(Te, "CHBrCl2", f)
	//no carbon: everything alphabetical
	f, err = MolecularFormula("O")
	require.NoError(Te, err)
	assert.Equal(Te, "H2O", f)
}

func TestFormulaExcludesWildcards(Te *testing.T) {
	f, err := MolecularFormula("*CC*")
	require.NoError(Te, err)
	assert.Equal(Te, "C2H4", f)
	n, err := TotalAtomCount("*CC*")
	require.NoError(Te, err)
	assert.Equal(Te, 6, n)
}

func TestAtomCount(Te *testing.T) {
	assert.Equal(Te, 8, atomsOf(Te, buildPE(Te, 1)))   //C2H6
	assert.Equal(Te, 20, atomsOf(Te, buildPE(Te, 3)))  //C6H14
	assert.Equal(Te, 62, atomsOf(Te, buildPE(Te, 10))) //C20H42
	assert.Equal(Te, 11, atomsOf(Te, buildPP(Te, 1)))  //C3H8
	assert.Equal(Te, 29, atomsOf(Te, buildPP(Te, 3)))  //C9H20
	assert.Equal(Te, 18, atomsOf(Te, buildPS(Te, 1)))  //C8H10
}

//The atom count grows linearly in n (6 per PE unit, 9 per PP unit).
func TestAtomCountLinearInN(Te *testing.T) {
	for n := 1; n <= 4; n++ {
		assert.Equal(Te, 6, atomsOf(Te, buildPE(Te, n+1))-atomsOf(Te, buildPE(Te, n)))
		assert.Equal(Te, 9, atomsOf(Te, buildPP(Te, n+1))-atomsOf(Te, buildPP(Te, n)))
	}
}

func TestAverageMassPolyethylene(Te *testing.T) {
	chain := buildPE(Te, 1) //ethane, 2x12.011 + 6x1.008
	mw, err := AverageMass(chain.SMILES())
	require.NoError(Te, err)
	assertClose(Te, mw, 30.070, 0.01, "PE n=1")

	mw, err = AverageMass(buildPE(Te, 3).SMILES())
	require.NoError(Te, err)
	assertClose(Te, mw, 86.178, 0.01, "PE n=3")

	mw, err = AverageMass(buildPE(Te, 10).SMILES())
	require.NoError(Te, err)
	assertClose(Te, mw, 282.556, 0.01, "PE n=10")
}

func TestAverageMassPolypropylene(Te *testing.T) {
	mw, err := AverageMass(buildPP(Te, 1).SMILES())
	require.NoError(Te, err)
	assertClose(Te, mw, 44.097, 0.01, "PP n=1")

	mw, err = AverageMass(buildPP(Te, 3).SMILES())
	require.NoError(Te, err)
	assertClose(Te, mw, 128.255, 0.01, "PP n=3")
}

func TestAverageMassPolystyrene(Te *testing.T) {
	//ethylbenzene: 8x12.011 + 10x1.008
	mw, err := AverageMass(buildPS(Te, 1).SMILES())
	require.NoError(Te, err)
	assertClose(Te, mw, 106.168, 0.01, "PS n=1")
}

//The mass is affine in n: consecutive differences are one unit mass.
func TestAverageMassLinearInN(Te *testing.T) {
	mw1, err := AverageMass(buildPE(Te, 1).SMILES())
	require.NoError(Te, err)
	mw2, err := AverageMass(buildPE(Te, 2).SMILES())
	require.NoError(Te, err)
	mw3, err := AverageMass(buildPE(Te, 3).SMILES())
	require.NoError(Te, err)
	assertClose(Te, mw2-mw1, mw3-mw2, 1e-3, "PE linearity")
}

func TestMonoisotopicMass(Te *testing.T) {
	//C2H6: 2x12.0 + 6x1.00782503207
	m, err := MonoisotopicMass(buildPE(Te, 1).SMILES())
	require.NoError(Te, err)
	assertClose(Te, m, 30.047, 0.01, "PE mono n=1")

	m, err = MonoisotopicMass(buildPE(Te, 10).SMILES())
	require.NoError(Te, err)
	assertClose(Te, m, 282.329, 0.01, "PE mono n=10")
}

func TestMonoisotopicBelowAverage(Te *testing.T) {
	for _, chain := range []*PolymerChain{buildPE(Te, 10), buildPP(Te, 3), buildPS(Te, 2)} {
		mono, err := MonoisotopicMass(chain.SMILES())
		require.NoError(Te, err)
		avg, err := AverageMass(chain.SMILES())
		require.NoError(Te, err)
		assert.Less(Te, mono, avg, "smiles=%s", chain.SMILES())
	}
}

//The mono < avg property holds for heteroatom-bearing structures across
//the whole supported element set, not just hydrocarbons.
func TestMonoisotopicBelowAverageHeteroatoms(Te *testing.T) {
	for _, s := range []string{
		"CCCl", "CCBr", "CCI", "CC(=O)OC", "c1ccncc1", "CSC",
		"[SiH3]C", "[Cu+2].[Cl-].[Cl-]", "[Zn+2].[O-2]", "[Mg+2].[O-2]",
		"[Na+].[Cl-]", "[K+].[Br-]", "[Ca+2].[O-2]", "OP(=O)(O)O",
	} {
		mono, err := MonoisotopicMass(s)
		require.NoError(Te, err, "smiles=%s", s)
		avg, err := AverageMass(s)
		require.NoError(Te, err)
		assert.Less(Te, mono, avg, "smiles=%s", s)
	}
}

//Single-isotope elements contribute the same number to both masses, so a
//structure made only of them sits exactly on the boundary.
func TestMonoisotopicEqualForSingleIsotopeOnly(Te *testing.T) {
	for _, s := range []string{"FF", "II", "[Na+].[I-]"} {
		mono, err := MonoisotopicMass(s)
		require.NoError(Te, err, "smiles=%s", s)
		avg, err := AverageMass(s)
		require.NoError(Te, err)
		assert.Equal(Te, avg, mono, "smiles=%s", s)
	}
}

func TestExplicitIsotopeMass(Te *testing.T) {
	//[13C] contributes the carbon-13 exact mass, not the carbon-12 one
	m12, err := MonoisotopicMass("[CH4]")
	require.NoError(Te, err)
	m13, err := MonoisotopicMass("[13CH4]")
	require.NoError(Te, err)
	assertClose(Te, m13-m12, 1.00335, 0.001, "13C-12C difference")
}

//The total atom count always equals the sum of the formula counts.
func TestAtomCountMatchesFormula(Te *testing.T) {
	for _, n := range []int{1, 5, 10} {
		chain := buildPE(Te, n)
		cCount := 2 * chain.RepeatCount()
		hCount := 4*chain.RepeatCount() + 2
		assert.Equal(Te, cCount+hCount, atomsOf(Te, chain))
	}
}

func TestAnalyzeSharesOneParse(Te *testing.T) {
	an, err := Analyze(buildPE(Te, 10).SMILES())
	require.NoError(Te, err)
	assert.Equal(Te, "C20H42", an.Formula)
	assert.Equal(Te, 62, an.AtomCount)
	assertClose(Te, an.AverageMass, 282.556, 0.01, "analysis average")
	assertClose(Te, an.MonoisotopicMass, 282.329, 0.01, "analysis mono")
}

func TestPropertiesPropagateParseFailure(Te *testing.T) {
	_, err := AverageMass("C(")
	assert.Error(Te, err)
	_, err = MolecularFormula("[13C")
	assert.Error(Te, err)
}
