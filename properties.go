/*
 * properties.go, part of polysim.
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
	"sort"
	"strconv"
	"strings"

	"github.com/polysimtools/polysim/smiles"
)

//Analysis holds every property computed from one structure, so the
//structure text is parsed only once however many of them the caller
//reads. Wildcard atoms (*) are excluded from all counts and masses.
type Analysis struct {
	AverageMass      float64 //abundance-averaged molecular weight, g/mol
	MonoisotopicMass float64 //most-abundant-isotope mass, g/mol
	Formula          string  //molecular formula in Hill notation
	AtomCount        int     //heavy atoms plus hydrogens
}

//Analyze parses the structure text once and computes all properties on
//it. Structure-parse failures and unknown elements are returned as
//errors; nothing is silently skipped.
func Analyze(structure string) (*Analysis, error) {
	mol, err := smiles.Parse(structure)
	if err != nil {
		return nil, errDecorate(err, "Analyze")
	}
	an := new(Analysis)
	counts := make(map[string]int)
	for _, at := range mol.Atoms {
		if at.AtomicNumber == 0 {
			continue
		}
		w, ok := AtomicWeight(at.AtomicNumber)
		if !ok {
			return nil, newError(ErrParse,
				"no mass data for element %q (Z=%d)", at.Symbol, at.AtomicNumber)
		}
		mono, _ := MonoisotopicWeight(at.AtomicNumber)
		if at.Isotope != 0 {
			//an explicit isotope overrides the most-abundant mass
			mono = exactIsotopeMass(at.AtomicNumber, at.Isotope)
		}
		h := at.Hydrogens
		an.AverageMass += w + float64(h)*hydrogenWeight
		an.MonoisotopicMass += mono + float64(h)*hydrogenMonoMass
		an.AtomCount += 1 + h
		counts[at.Symbol]++
		if h > 0 {
			counts["H"] += h
		}
	}
	an.Formula = hillNotation(counts)
	return an, nil
}

//AverageMass computes the abundance-averaged molecular weight (g/mol) of
//the structure, implicit hydrogens included.
func AverageMass(structure string) (float64, error) {
	an, err := Analyze(structure)
	if err != nil {
		return 0, errDecorate(err, "AverageMass")
	}
	return an.AverageMass, nil
}

//MonoisotopicMass computes the monoisotopic mass (g/mol) of the
//structure: each atom contributes its most abundant isotope unless the
//SMILES specifies one explicitly, and every hydrogen contributes
//1.00783 g/mol. For any structure with at least one heavy atom this is
//below the average mass.
func MonoisotopicMass(structure string) (float64, error) {
	an, err := Analyze(structure)
	if err != nil {
		return 0, errDecorate(err, "MonoisotopicMass")
	}
	return an.MonoisotopicMass, nil
}

//MolecularFormula computes the molecular formula of the structure in
//Hill notation: C first, then H, then the other elements in alphabetical
//order of symbol; without carbon, everything alphabetical.
func MolecularFormula(structure string) (string, error) {
	an, err := Analyze(structure)
	if err != nil {
		return "", errDecorate(err, "MolecularFormula")
	}
	return an.Formula, nil
}

//TotalAtomCount returns the number of atoms in the structure, heavy atoms
//plus implicit/explicit hydrogens. It always equals the sum of the counts
//in MolecularFormula for the same structure.
func TotalAtomCount(structure string) (int, error) {
	an, err := Analyze(structure)
	if err != nil {
		return 0, errDecorate(err, "TotalAtomCount")
	}
	return an.AtomCount, nil
}

//hillNotation renders per-symbol counts with C first, H second and the
//rest alphabetical. A count of exactly 1 is omitted.
func hillNotation(counts map[string]int) string {
	var b strings.Builder
	rest := make([]string, 0, len(counts))
	_, hasCarbon := counts["C"]
	for sym := range counts {
		if hasCarbon && (sym == "C" || sym == "H") {
			continue
		}
		rest = append(rest, sym)
	}
	sort.Strings(rest)
	if hasCarbon {
		writeElement(&b, "C", counts["C"])
		if h, ok := counts["H"]; ok {
			writeElement(&b, "H", h)
		}
	}
	for _, sym := range rest {
		writeElement(&b, sym, counts[sym])
	}
	return b.String()
}

func writeElement(b *strings.Builder, sym string, count int) {
	b.WriteString(sym)
	if count > 1 {
		b.WriteString(strconv.Itoa(count))
	}
}
