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

/*Package smiles parses SMILES structure text into a flat list of atoms.

The parser covers the subset of the OpenSMILES specification needed for
composition work: organic-subset and bracket atoms, aromatic lowercase
forms, bond symbols, branches, single-digit and %dd ring closures,
wildcards and dot-separated fragments. It does not build a bond graph or
assign coordinates; the product is the per-atom information (element,
implicit/explicit hydrogens, isotope, charge) that composition, formula
and mass calculations need. Stereo markers are accepted and ignored.

Implicit hydrogen counts follow the OpenSMILES valence rules: an
organic-subset atom is filled up to the smallest of its standard valences
that accommodates its bonds (aromatic atoms reserve one bonding position
for the aromatic system), while a bracket atom has exactly the hydrogens
written in the brackets.
*/
package smiles
