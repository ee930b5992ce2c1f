/*
 * atomicdata.go, part of polysim.
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

//elementData holds the per-element constants needed for mass calculations:
//the IUPAC symbol, the standard (abundance-averaged) atomic weight and the
//mass of the most abundant naturally occurring isotope, both in g/mol.
type elementData struct {
	symbol string
	weight float64
	mono   float64
}

//A map from atomic number to element constants.
//Note that just elements common in polymer chemistry plus the usual
//"bio-elements" are present. Weights from CIAAW 2021, isotope masses
//from AME2020. Every entry keeps mono <= weight: for the monoisotopic
//elements (F, Na, I) the two values coincide, and elements whose most
//abundant isotope outweighs the standard weight (B, Fe, Se) are not in
//the table at all, so the monoisotopic mass of a structure never exceeds
//its average mass.
var elements = map[int]elementData{
	1:  {"H", 1.008, 1.00782503207},
	6:  {"C", 12.011, 12.0},
	7:  {"N", 14.007, 14.0030740048},
	8:  {"O", 15.999, 15.99491461956},
	9:  {"F", 18.998403163, 18.998403163},
	11: {"Na", 22.98976928, 22.98976928},
	12: {"Mg", 24.305, 23.98504170},
	14: {"Si", 28.085, 27.97692653465},
	15: {"P", 30.973761998, 30.97376163},
	16: {"S", 32.06, 31.97207100},
	17: {"Cl", 35.45, 34.96885268},
	19: {"K", 39.0983, 38.96370668},
	20: {"Ca", 40.078, 39.96259098},
	29: {"Cu", 63.546, 62.92959772},
	30: {"Zn", 65.38, 63.92914201},
	35: {"Br", 79.904, 78.9183371},
	53: {"I", 126.90447, 126.90447},
}

//A map from atomic number to the exact masses of isotopes that get written
//explicitly in brackets ([13C], [2H], ...). Keyed by mass number. Isotopes
//not listed here fall back to the mass number itself, which is within
//0.1 g/mol for anything a polymer chemist is likely to write.
var isotopeMass = map[int]map[int]float64{
	1:  {1: 1.00782503207, 2: 2.01410177812, 3: 3.01604927791},
	6:  {12: 12.0, 13: 13.00335483507, 14: 14.0032419884},
	7:  {14: 14.0030740048, 15: 15.0001088989},
	8:  {16: 15.99491461956, 17: 16.99913175650, 18: 17.99915961286},
	16: {32: 31.97207100, 33: 32.9714589098, 34: 33.967867004},
	17: {35: 34.96885268, 37: 36.96590260},
	35: {79: 78.9183371, 81: 80.9162897},
}

//Per-hydrogen masses used when summing implicit hydrogens.
const (
	hydrogenWeight   = 1.008
	hydrogenMonoMass = 1.00782503207
)

//ElementSymbol returns the IUPAC symbol for the given atomic number, and
//false if the element is not in the table.
func ElementSymbol(z int) (string, bool) {
	data, ok := elements[z]
	return data.symbol, ok
}

//AtomicWeight returns the standard atomic weight (g/mol) for the given
//atomic number, and false if the element is not in the table.
func AtomicWeight(z int) (float64, bool) {
	data, ok := elements[z]
	return data.weight, ok
}

//MonoisotopicWeight returns the mass (g/mol) of the most abundant isotope
//of the given element, and false if the element is not in the table.
func MonoisotopicWeight(z int) (float64, bool) {
	data, ok := elements[z]
	return data.mono, ok
}

//exactIsotopeMass returns the mass of the isotope with the given mass
//number. Unlisted isotopes are approximated by the mass number.
func exactIsotopeMass(z, massNumber int) float64 {
	if byNumber, ok := isotopeMass[z]; ok {
		if m, ok := byNumber[massNumber]; ok {
			return m
		}
	}
	return float64(massNumber)
}
