/*
 * bigsmiles.go, part of polysim.
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

/*Package bigsmiles parses BigSMILES polymer notation into its segments.

BigSMILES extends SMILES with stochastic objects, regions in curly braces
holding one or more repeat units:

	{[]CC[]}                polyethylene
	CCO{[$]CC(C)[$]}CC      polypropylene with end groups
	{[$]CC[$],[$]CC(C)[$]}  an ethylene/propylene copolymer

The parser splits the notation into plain SMILES segments and stochastic
objects, and each stochastic object into its repeat units. Bonding
descriptors ([], [$], [<], [>], with an optional index) delimit where the
repeat unit connects; they are stripped, so a RepeatUnit carries plain
SMILES ready for assembly.
*/
package bigsmiles

import (
	"fmt"
	"strings"
)

//SegmentKind tags a Segment as plain SMILES or a stochastic object.
type SegmentKind int

const (
	//SmilesSegment is a plain SMILES fragment (end group).
	SmilesSegment SegmentKind = iota + 1
	//StochasticSegment is a {...} stochastic object.
	StochasticSegment
)

//RepeatUnit is one repeat unit of a stochastic object. Raw is its SMILES
//with bonding descriptors stripped, well formed on its own: every ring
//opened within the unit is closed within it.
type RepeatUnit struct {
	Raw string
}

//StochasticObject is one {...} region of the notation.
type StochasticObject struct {
	Raw         string //the braced text, braces included
	RepeatUnits []*RepeatUnit
	//End groups listed after ';' inside the braces, kept for display only.
	EndGroups []string
}

//Segment is one piece of the notation, in writing order.
type Segment struct {
	Kind       SegmentKind
	Smiles     string //set for SmilesSegment
	Stochastic *StochasticObject //set for StochasticSegment
}

//BigSmiles is a parsed BigSMILES string.
type BigSmiles struct {
	Raw      string
	Segments []*Segment
}

//ParseError is the error returned by Parse.
type ParseError struct {
	msg  string
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

func parseError(format string, a ...interface{}) *ParseError {
	return &ParseError{msg: fmt.Sprintf("bigsmiles: "+format, a...)}
}

//Parse reads a BigSMILES string into its segments.
func Parse(text string) (*BigSmiles, error) {
	bs := &BigSmiles{Raw: text}
	rest := text
	for len(rest) > 0 {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			if strings.IndexByte(rest, '}') >= 0 {
				return nil, parseError("'}' without matching '{'")
			}
			bs.Segments = append(bs.Segments, &Segment{Kind: SmilesSegment, Smiles: rest})
			break
		}
		if open > 0 {
			//a '}' sitting before the next '{' has no object to close
			if strings.IndexByte(rest[:open], '}') >= 0 {
				return nil, parseError("'}' without matching '{'")
			}
			bs.Segments = append(bs.Segments, &Segment{Kind: SmilesSegment, Smiles: rest[:open]})
		}
		closing := strings.IndexByte(rest[open:], '}')
		if closing < 0 {
			return nil, parseError("'{' without matching '}'")
		}
		closing += open
		inner := rest[open+1 : closing]
		if strings.IndexByte(inner, '{') >= 0 {
			return nil, parseError("nested stochastic objects are not allowed")
		}
		stoch, err := parseStochastic(inner)
		if err != nil {
			return nil, err
		}
		stoch.Raw = rest[open : closing+1]
		bs.Segments = append(bs.Segments, &Segment{Kind: StochasticSegment, Stochastic: stoch})
		rest = rest[closing+1:]
	}
	return bs, nil
}

//FirstStochastic returns the first stochastic object of the notation, or
//nil when there is none.
func (B *BigSmiles) FirstStochastic() *StochasticObject {
	for _, seg := range B.Segments {
		if seg.Kind == StochasticSegment {
			return seg.Stochastic
		}
	}
	return nil
}

//LeadingSmiles returns the concatenated plain segments before the first
//stochastic object (the beginning block / initiator), or "" when there is
//no such segment.
func (B *BigSmiles) LeadingSmiles() string {
	var b strings.Builder
	for _, seg := range B.Segments {
		if seg.Kind == StochasticSegment {
			break
		}
		b.WriteString(seg.Smiles)
	}
	return b.String()
}

//TrailingSmiles returns the concatenated plain segments after the last
//stochastic object (the ending block / terminator), or "" when there is
//no such segment.
func (B *BigSmiles) TrailingSmiles() string {
	last := -1
	for i, seg := range B.Segments {
		if seg.Kind == StochasticSegment {
			last = i
		}
	}
	if last < 0 {
		return ""
	}
	var b strings.Builder
	for _, seg := range B.Segments[last+1:] {
		b.WriteString(seg.Smiles)
	}
	return b.String()
}

//parseStochastic reads the text between the braces: optional terminal
//bonding descriptors at both ends, comma-separated repeat units, and an
//optional ';'-separated end-group list.
func parseStochastic(inner string) (*StochasticObject, error) {
	stoch := new(StochasticObject)
	units := inner
	if semi := strings.IndexByte(inner, ';'); semi >= 0 {
		units = inner[:semi]
		for _, eg := range strings.Split(inner[semi+1:], ",") {
			if eg = strings.TrimSpace(eg); eg != "" {
				stoch.EndGroups = append(stoch.EndGroups, stripDescriptors(eg))
			}
		}
	}
	units = stripTerminalDescriptor(units, true)
	units = stripTerminalDescriptor(units, false)
	for _, part := range strings.Split(units, ",") {
		raw := stripDescriptors(strings.TrimSpace(part))
		if raw == "" {
			return nil, parseError("empty repeat unit in stochastic object")
		}
		stoch.RepeatUnits = append(stoch.RepeatUnits, &RepeatUnit{Raw: raw})
	}
	return stoch, nil
}

//isDescriptor reports whether the bracket content (without the brackets)
//is a bonding descriptor: empty, or one of $ < > plus an optional index.
func isDescriptor(content string) bool {
	if content == "" {
		return true
	}
	if content[0] != '$' && content[0] != '<' && content[0] != '>' {
		return false
	}
	for i := 1; i < len(content); i++ {
		if content[i] < '0' || content[i] > '9' {
			return false
		}
	}
	return true
}

//stripTerminalDescriptor removes a bonding descriptor sitting at the very
//start (leading=true) or very end of the repeat-unit list.
func stripTerminalDescriptor(s string, leading bool) string {
	s = strings.TrimSpace(s)
	if leading {
		if len(s) > 0 && s[0] == '[' {
			if end := strings.IndexByte(s, ']'); end > 0 && isDescriptor(s[1:end]) {
				return s[end+1:]
			}
		}
		return s
	}
	if len(s) > 0 && s[len(s)-1] == ']' {
		if start := strings.LastIndexByte(s, '['); start >= 0 && isDescriptor(s[start+1:len(s)-1]) {
			return s[:start]
		}
	}
	return s
}

//stripDescriptors removes every bonding descriptor from a repeat unit,
//leaving bracket atoms untouched.
func stripDescriptors(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		if s[i] == '[' {
			if end := strings.IndexByte(s[i:], ']'); end > 0 && isDescriptor(s[i+1:i+end]) {
				i += end + 1
				continue
			}
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}
