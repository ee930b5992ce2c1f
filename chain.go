/*
 * chain.go, part of polysim.
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

//PolymerChain is a single, fully resolved polymer chain instance. It is
//immutable after construction; value equality is the only identity.
type PolymerChain struct {
	smiles      string
	repeatCount int
	mn          float64
}

//NewPolymerChain builds a chain value. mn may be 0 when no mass was
//requested; it is then up to the caller to compute it with AverageMass.
func NewPolymerChain(smiles string, repeatCount int, mn float64) *PolymerChain {
	return &PolymerChain{smiles: smiles, repeatCount: repeatCount, mn: mn}
}

//SMILES returns the fully expanded structure text of the chain.
func (P *PolymerChain) SMILES() string {
	return P.smiles
}

//RepeatCount returns the number of repeat units incorporated, always >= 1.
func (P *PolymerChain) RepeatCount() int {
	return P.repeatCount
}

//Mn returns the number-average molecular weight in g/mol, or 0 when the
//chain was built by repeat count and no mass was computed. Since a single
//ideal chain is modeled, Mw equals Mn and the dispersity is 1.0.
func (P *PolymerChain) Mn() float64 {
	return P.mn
}

func (P *PolymerChain) String() string {
	return P.smiles
}
