/*
 * smiles.go, part of polysim.
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

import "fmt"

//Atom is one atom node of a parsed structure. Hydrogens is the total
//hydrogen count attached to the atom, whether written in brackets or
//implied by valence. Isotope is the explicit mass number, or 0 when the
//atom was written without one (meaning: use the standard/most abundant
//mass). AtomicNumber 0 is the wildcard atom (*).
type Atom struct {
	AtomicNumber int
	Symbol       string
	Aromatic     bool
	Isotope      int
	Charge       int
	Hydrogens    int
}

//Molecule is an ordered list of the atoms of one parsed structure.
type Molecule struct {
	Atoms []*Atom
}

//Len returns the number of atom nodes (hydrogens not included).
func (M *Molecule) Len() int {
	return len(M.Atoms)
}

//ParseError is the error returned by Parse. Pos is the byte offset of the
//offending character in the input.
type ParseError struct {
	msg  string
	Pos  int
	deco []string
}

func (err *ParseError) Error() string {
	return err.msg
}

func (err *ParseError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

func parseError(pos int, format string, a ...interface{}) *ParseError {
	return &ParseError{msg: fmt.Sprintf("smiles: "+format, a...), Pos: pos}
}

//A map from element symbol to atomic number. Same element coverage as the
//mass tables in the parent package, which leave out the elements whose
//most abundant isotope outweighs the standard atomic weight (B, Fe, Se);
//those surface here as unknown symbols.
var symbolNumber = map[string]int{
	"H": 1, "C": 6, "N": 7, "O": 8, "F": 9,
	"Na": 11, "Mg": 12, "Si": 14, "P": 15, "S": 16, "Cl": 17,
	"K": 19, "Ca": 20, "Cu": 29, "Zn": 30,
	"Br": 35, "I": 53,
}

//Elements that may be written bare (outside brackets), per the SMILES
//organic subset. Value is unused, it's a set.
var organicSubset = map[string]bool{
	"C": true, "N": true, "O": true, "P": true, "S": true,
	"F": true, "Cl": true, "Br": true, "I": true,
}

//Elements with an aromatic lowercase form.
var aromaticSymbol = map[string]bool{
	"c": true, "n": true, "o": true, "p": true, "s": true,
}

//Standard valences used to fill organic-subset atoms with implicit
//hydrogens, smallest first.
var valences = map[int][]int{
	6:  {4},
	7:  {3, 5},
	8:  {2},
	9:  {1},
	15: {3, 5},
	16: {2, 4, 6},
	17: {1},
	35: {1},
	53: {1},
}

//ringOpen records a pending (opened, not yet closed) ring-closure marker.
type ringOpen struct {
	atom     int //index of the opening atom
	order    int //bond order written at the opening, 0 if none
	aromatic bool
}

//parser state for one Parse call. prev is the index of the atom the next
//atom will bond to, -1 after a dot. bondSum accumulates per-atom bond
//orders (aromatic bonds count 1; the aromatic adjustment happens at the
//implicit-hydrogen stage). explicitH marks bracket atoms, whose hydrogen
//count is never recomputed.
type parser struct {
	in        string
	pos       int
	atoms     []*Atom
	bondSum   []int
	explicitH []bool
	prev      int
	stack     []int
	rings     map[int]*ringOpen
	//pending bond written since the last atom: order and aromatic flag,
	//order 0 when no bond symbol is pending.
	pendOrder int
	pendArom  bool
}

//Parse reads SMILES structure text and returns its atoms in writing order.
func Parse(text string) (*Molecule, error) {
	p := &parser{
		in:    text,
		prev:  -1,
		rings: make(map[int]*ringOpen),
	}
	if err := p.run(); err != nil {
		return nil, err
	}
	p.fillHydrogens()
	return &Molecule{Atoms: p.atoms}, nil
}

func (p *parser) run() error {
	for p.pos < len(p.in) {
		c := p.in[p.pos]
		switch {
		case c == '(':
			if p.prev < 0 {
				return parseError(p.pos, "branch start with no preceding atom")
			}
			p.stack = append(p.stack, p.prev)
			p.pos++
		case c == ')':
			if len(p.stack) == 0 {
				return parseError(p.pos, "unbalanced ')'")
			}
			p.prev = p.stack[len(p.stack)-1]
			p.stack = p.stack[:len(p.stack)-1]
			p.pos++
		case c == '-' || c == '/' || c == '\\':
			//up/down bonds only matter for stereo, which we ignore
			p.pendOrder = 1
			p.pos++
		case c == '=':
			p.pendOrder = 2
			p.pos++
		case c == '#':
			p.pendOrder = 3
			p.pos++
		case c == ':':
			p.pendOrder = 1
			p.pendArom = true
			p.pos++
		case c == '.':
			p.prev = -1
			p.pendOrder = 0
			p.pendArom = false
			p.pos++
		case c == '%':
			if p.pos+2 >= len(p.in) || !isDigit(p.in[p.pos+1]) || !isDigit(p.in[p.pos+2]) {
				return parseError(p.pos, "'%%' not followed by two digits")
			}
			n := int(p.in[p.pos+1]-'0')*10 + int(p.in[p.pos+2]-'0')
			if err := p.ringBond(n); err != nil {
				return err
			}
			p.pos += 3
		case isDigit(c):
			if err := p.ringBond(int(c - '0')); err != nil {
				return err
			}
			p.pos++
		case c == '[':
			if err := p.bracketAtom(); err != nil {
				return err
			}
		case c == '*':
			p.addAtom(&Atom{AtomicNumber: 0, Symbol: "*"}, false)
			p.pos++
		case isLetter(c):
			if err := p.organicAtom(); err != nil {
				return err
			}
		default:
			return parseError(p.pos, "unexpected character %q", c)
		}
	}
	if len(p.stack) != 0 {
		return parseError(len(p.in), "unbalanced '('")
	}
	for n := range p.rings {
		return parseError(len(p.in), "unmatched ring closure %d", n)
	}
	if p.pendOrder != 0 {
		return parseError(len(p.in), "dangling bond symbol at end of input")
	}
	return nil
}

//addAtom appends the atom, bonding it to the previous one when there is
//one. explicit marks bracket atoms (hydrogen count frozen as written).
func (p *parser) addAtom(a *Atom, explicit bool) {
	idx := len(p.atoms)
	p.atoms = append(p.atoms, a)
	p.bondSum = append(p.bondSum, 0)
	p.explicitH = append(p.explicitH, explicit)
	if p.prev >= 0 {
		order := p.pendOrder
		if order == 0 {
			order = 1
		}
		p.bondSum[p.prev] += order
		p.bondSum[idx] += order
	}
	p.pendOrder = 0
	p.pendArom = false
	p.prev = idx
}

//ringBond opens marker n, or closes it if already open. The bond order of
//a closure may be written at either end; both ends written is legal SMILES
//only when they agree, which we don't bother checking.
func (p *parser) ringBond(n int) error {
	if p.prev < 0 {
		return parseError(p.pos, "ring closure with no preceding atom")
	}
	order := p.pendOrder
	arom := p.pendArom
	p.pendOrder = 0
	p.pendArom = false
	open, ok := p.rings[n]
	if !ok {
		p.rings[n] = &ringOpen{atom: p.prev, order: order, aromatic: arom}
		return nil
	}
	delete(p.rings, n)
	if order == 0 {
		order = open.order
	}
	if order == 0 {
		//no explicit order at either end: single, which also covers the
		//aromatic-aromatic case since aromatic bonds count 1 here
		order = 1
	}
	p.bondSum[open.atom] += order
	p.bondSum[p.prev] += order
	return nil
}

//organicAtom reads a bare (organic subset) atom at p.pos.
func (p *parser) organicAtom() error {
	c := p.in[p.pos]
	//two-letter symbols first: Cl, Br
	if c == 'C' && p.pos+1 < len(p.in) && p.in[p.pos+1] == 'l' {
		p.addAtom(&Atom{AtomicNumber: 17, Symbol: "Cl"}, false)
		p.pos += 2
		return nil
	}
	if c == 'B' && p.pos+1 < len(p.in) && p.in[p.pos+1] == 'r' {
		p.addAtom(&Atom{AtomicNumber: 35, Symbol: "Br"}, false)
		p.pos += 2
		return nil
	}
	if c >= 'a' && c <= 'z' {
		sym := string(c)
		if !aromaticSymbol[sym] {
			return parseError(p.pos, "unknown aromatic atom %q", c)
		}
		upper := string(c - 'a' + 'A')
		p.addAtom(&Atom{AtomicNumber: symbolNumber[upper], Symbol: upper, Aromatic: true}, false)
		p.pos++
		return nil
	}
	sym := string(c)
	if !organicSubset[sym] {
		return parseError(p.pos, "element %q must be written in brackets", c)
	}
	p.addAtom(&Atom{AtomicNumber: symbolNumber[sym], Symbol: sym}, false)
	p.pos++
	return nil
}

//bracketAtom reads a full [isotope symbol chirality Hcount charge :class]
//atom starting at the '[' under p.pos.
func (p *parser) bracketAtom() error {
	start := p.pos
	p.pos++ //consume '['
	//isotope
	isotope := 0
	for p.pos < len(p.in) && isDigit(p.in[p.pos]) {
		isotope = isotope*10 + int(p.in[p.pos]-'0')
		p.pos++
	}
	if p.pos >= len(p.in) {
		return parseError(start, "unterminated bracket atom")
	}
	//element symbol
	a := &Atom{Isotope: isotope}
	c := p.in[p.pos]
	switch {
	case c == '*':
		a.Symbol = "*"
		p.pos++
	case c >= 'a' && c <= 'z':
		sym := string(c)
		if !aromaticSymbol[sym] {
			return parseError(p.pos, "unknown aromatic atom %q", sym)
		}
		a.Aromatic = true
		a.Symbol = string(c - 'a' + 'A')
		a.AtomicNumber = symbolNumber[a.Symbol]
		p.pos++
	case c >= 'A' && c <= 'Z':
		sym := string(c)
		if p.pos+1 < len(p.in) && p.in[p.pos+1] >= 'a' && p.in[p.pos+1] <= 'z' {
			two := p.in[p.pos : p.pos+2]
			if _, ok := symbolNumber[two]; ok {
				sym = two
			}
		}
		z, ok := symbolNumber[sym]
		if !ok {
			return parseError(p.pos, "unknown element symbol %q", sym)
		}
		a.Symbol = sym
		a.AtomicNumber = z
		p.pos += len(sym)
	default:
		return parseError(p.pos, "expected element symbol in bracket atom")
	}
	//chirality, ignored
	for p.pos < len(p.in) && p.in[p.pos] == '@' {
		p.pos++
	}
	for _, code := range []string{"TH", "AL", "SP", "TB", "OH"} {
		if p.pos+1 < len(p.in) && p.in[p.pos:p.pos+2] == code {
			p.pos += 2
			for p.pos < len(p.in) && isDigit(p.in[p.pos]) {
				p.pos++
			}
			break
		}
	}
	//hydrogen count
	if p.pos < len(p.in) && p.in[p.pos] == 'H' {
		p.pos++
		a.Hydrogens = 1
		if p.pos < len(p.in) && isDigit(p.in[p.pos]) {
			a.Hydrogens = 0
			for p.pos < len(p.in) && isDigit(p.in[p.pos]) {
				a.Hydrogens = a.Hydrogens*10 + int(p.in[p.pos]-'0')
				p.pos++
			}
		}
	}
	//charge
	if p.pos < len(p.in) && (p.in[p.pos] == '+' || p.in[p.pos] == '-') {
		sign := 1
		if p.in[p.pos] == '-' {
			sign = -1
		}
		mark := p.in[p.pos]
		count := 0
		for p.pos < len(p.in) && p.in[p.pos] == mark {
			count++
			p.pos++
		}
		if count == 1 && p.pos < len(p.in) && isDigit(p.in[p.pos]) {
			count = 0
			for p.pos < len(p.in) && isDigit(p.in[p.pos]) {
				count = count*10 + int(p.in[p.pos]-'0')
				p.pos++
			}
		}
		a.Charge = sign * count
	}
	//atom class, ignored
	if p.pos < len(p.in) && p.in[p.pos] == ':' {
		p.pos++
		for p.pos < len(p.in) && isDigit(p.in[p.pos]) {
			p.pos++
		}
	}
	if p.pos >= len(p.in) || p.in[p.pos] != ']' {
		return parseError(start, "unterminated bracket atom")
	}
	p.pos++
	p.addAtom(a, true)
	return nil
}

//fillHydrogens assigns implicit hydrogens to organic-subset atoms. A
//bracket atom keeps the count written in it; a wildcard gets none. An
//aromatic atom reserves one bonding position for the aromatic system.
func (p *parser) fillHydrogens() {
	for i, a := range p.atoms {
		if p.explicitH[i] || a.AtomicNumber == 0 {
			continue
		}
		need := p.bondSum[i]
		if a.Aromatic {
			need++
		}
		for _, v := range valences[a.AtomicNumber] {
			if v >= need {
				a.Hydrogens = v - need
				break
			}
		}
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
