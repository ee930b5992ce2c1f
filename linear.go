/*
 * linear.go, part of polysim.
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
	"math"

	"github.com/polysimtools/polysim/bigsmiles"
	"gonum.org/v1/gonum/floats/scalar"
)

//Tolerance for copolymer weight fractions summing to 1.
const fractionTol = 1e-6

//LinearBuilder generates linear polymer chains from a parsed BigSMILES.
//Only the homopolymer architecture is implemented; the copolymer methods
//validate their arguments and then fail with a typed error.
type LinearBuilder struct {
	bs       *bigsmiles.BigSmiles
	strategy BuildStrategy
}

//NewLinearBuilder creates a builder from a parsed BigSMILES and a build
//strategy.
func NewLinearBuilder(bs *bigsmiles.BigSmiles, strategy BuildStrategy) *LinearBuilder {
	return &LinearBuilder{bs: bs, strategy: strategy}
}

//Homopolymer generates a linear homopolymer: the single repeat unit of
//the notation's stochastic object, repeated n times, n chosen by the
//build strategy. For the mass-targeting strategies the returned chain has
//Mn populated; for ByRepeatCount Mn is left 0 and the caller computes it
//on demand with AverageMass.
//
//The returned errors are *PolyError with kinds ErrNoStochasticObject
//(no {...} in the notation), ErrRepeatUnitCount (the stochastic object
//holds more than one repeat unit), ErrBuildStrategy (repeat count 0, or a
//repeat unit whose mass cannot be targeted) and ErrRingOverflow.
func (B *LinearBuilder) Homopolymer() (*PolymerChain, error) {
	stoch := B.bs.FirstStochastic()
	if stoch == nil {
		return nil, newError(ErrNoStochasticObject,
			"no stochastic object (repeat units) found in BigSMILES")
	}
	if len(stoch.RepeatUnits) != 1 {
		err := newError(ErrRepeatUnitCount,
			"incompatible repeat unit count for homopolymer: got %d, need 1",
			len(stoch.RepeatUnits))
		err.Got = len(stoch.RepeatUnits)
		err.Need = 1
		return nil, err
	}
	fragment := stoch.RepeatUnits[0].Raw
	switch B.strategy.Kind() {
	case RepeatCountStrategy:
		n := B.strategy.Count()
		if n == 0 {
			return nil, newError(ErrBuildStrategy, "repeat count must be >= 1")
		}
		smiles, err := buildLinearSmiles(fragment, n)
		if err != nil {
			return nil, errDecorate(err, "Homopolymer")
		}
		return NewPolymerChain(smiles, n, 0), nil
	case TargetMnStrategy, ExactMassStrategy:
		return B.resolveByMass(fragment)
	default:
		return nil, newError(ErrBuildStrategy, "unknown build strategy")
	}
}

//resolveByMass inverts the chain mass as a function of the repeat count.
//For a homopolymer the mass is affine in n, so two points fix it: compute
//the relevant mass at n=1 and n=2, take the per-unit slope, solve for the
//real-valued n hitting the target and round to the nearest integer (half
//up), clamped to a minimum of 1. Mn is populated from AverageMass whatever
//the target type; the exact-mass target only picks n.
func (B *LinearBuilder) resolveByMass(fragment string) (*PolymerChain, error) {
	massOf := AverageMass
	if B.strategy.Kind() == ExactMassStrategy {
		massOf = MonoisotopicMass
	}
	s1, err := buildLinearSmiles(fragment, 1)
	if err != nil {
		return nil, errDecorate(err, "resolveByMass")
	}
	s2, err := buildLinearSmiles(fragment, 2)
	if err != nil {
		return nil, errDecorate(err, "resolveByMass")
	}
	m1, err := massOf(s1)
	if err != nil {
		return nil, errDecorate(err, "resolveByMass")
	}
	m2, err := massOf(s2)
	if err != nil {
		return nil, errDecorate(err, "resolveByMass")
	}
	perUnit := m2 - m1
	if perUnit <= 0 {
		return nil, newError(ErrBuildStrategy,
			"repeat unit contributes no mass, can't target %.3f g/mol", B.strategy.Target())
	}
	n := int(math.Floor(1 + (B.strategy.Target()-m1)/perUnit + 0.5))
	if n < 1 {
		n = 1
	}
	smiles, err := buildLinearSmiles(fragment, n)
	if err != nil {
		return nil, errDecorate(err, "resolveByMass")
	}
	mn, err := AverageMass(smiles)
	if err != nil {
		return nil, errDecorate(err, "resolveByMass")
	}
	return NewPolymerChain(smiles, n, mn), nil
}

//RandomCopolymer would generate a random (statistical) copolymer from the
//weight fraction of each repeat unit. Fractions must sum to 1.0; that is
//validated here, but the architecture itself is not supported and the
//call then fails with an ErrBuildStrategy error.
func (B *LinearBuilder) RandomCopolymer(fractions []float64) (*PolymerChain, error) {
	sum := 0.0
	for _, f := range fractions {
		sum += f
	}
	if !scalar.EqualWithinAbs(sum, 1.0, fractionTol) {
		return nil, newError(ErrWeightFractions,
			"weight fractions must sum to 1.0 (got %.4f)", sum)
	}
	return nil, newError(ErrBuildStrategy,
		"random copolymer architecture is not supported")
}

//AlternatingCopolymer would generate an alternating copolymer (-A-B-A-B-).
//The architecture is not supported; the call fails with an
//ErrBuildStrategy error.
func (B *LinearBuilder) AlternatingCopolymer() (*PolymerChain, error) {
	return nil, newError(ErrBuildStrategy,
		"alternating copolymer architecture is not supported")
}

//BlockCopolymer would generate a block copolymer (-AAAA-BBBB-) with the
//given per-block repeat counts. The architecture is not supported; the
//call fails with an ErrBuildStrategy error.
func (B *LinearBuilder) BlockCopolymer(blockLengths []int) (*PolymerChain, error) {
	return nil, newError(ErrBuildStrategy,
		"block copolymer architecture is not supported")
}
