/*
 * doc.go, part of polysim.
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

/*Package polysim generates concrete polymer chains from BigSMILES notation
and computes physical/chemical properties on them.

A BigSMILES string describes a polymer by its repeat unit(s). polysim turns
that description into one fully expanded, concrete chain (plain SMILES) and
computes molecular weights and the molecular formula of the result.

The typical workflow is:

	1. Parse the notation with bigsmiles.Parse.
	2. Build a chain with LinearBuilder, choosing the length with a
	   BuildStrategy (fixed repeat count, target Mn or target exact mass).
	3. Compute properties with Analyze, AverageMass, MonoisotopicMass,
	   MolecularFormula and TotalAtomCount.

For example, polyethylene with 10 repeat units:

	bs, err := bigsmiles.Parse("{[]CC[]}")
	if err != nil {
	        //deal with the error
	}
	chain, err := polysim.NewLinearBuilder(bs, polysim.ByRepeatCount(10)).Homopolymer()
	if err != nil {
	        //deal with the error
	}
	//chain.SMILES() is now "CCCCCCCCCCCCCCCCCCCC"
	props, err := polysim.Analyze(chain.SMILES())

Only single ideal, monodisperse chains are modeled: Mw equals Mn and the
dispersity is 1.0 by construction. Copolymer and branched architectures are
not built; the corresponding builder methods return errors.

All operations are pure functions over immutable inputs, so independent
build-and-analyze requests can run concurrently without coordination.
*/
package polysim
