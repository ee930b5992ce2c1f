/*
 * strategy.go, part of polysim.
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

//StrategyKind identifies how a BuildStrategy picks the repeat count.
type StrategyKind int

const (
	//RepeatCountStrategy: generate exactly n repeat units.
	RepeatCountStrategy StrategyKind = iota + 1
	//TargetMnStrategy: pick n so the number-average molecular weight is as
	//close as possible to a target (g/mol).
	TargetMnStrategy
	//ExactMassStrategy: pick n so the monoisotopic mass is as close as
	//possible to a target (g/mol).
	ExactMassStrategy
)

//BuildStrategy determines how many repeat units are incorporated into a
//generated chain. Exactly one variant is active; values are immutable.
//All masses are in g/mol.
type BuildStrategy struct {
	kind   StrategyKind
	n      int
	target float64
}

//ByRepeatCount builds a chain with exactly n repeat units.
func ByRepeatCount(n int) BuildStrategy {
	return BuildStrategy{kind: RepeatCountStrategy, n: n}
}

//ByTargetMn builds the chain whose number-average molecular weight is
//closest to target g/mol.
func ByTargetMn(target float64) BuildStrategy {
	return BuildStrategy{kind: TargetMnStrategy, target: target}
}

//ByExactMass builds the chain whose monoisotopic mass is closest to
//target g/mol.
func ByExactMass(target float64) BuildStrategy {
	return BuildStrategy{kind: ExactMassStrategy, target: target}
}

//Kind returns the active variant.
func (S BuildStrategy) Kind() StrategyKind {
	return S.kind
}

//Count returns the requested repeat count. Only meaningful for
//RepeatCountStrategy.
func (S BuildStrategy) Count() int {
	return S.n
}

//Target returns the mass target in g/mol. Only meaningful for
//TargetMnStrategy and ExactMassStrategy.
func (S BuildStrategy) Target() float64 {
	return S.target
}
