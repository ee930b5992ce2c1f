/*
 * ring.go, part of polysim.
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

import "strings"

//The ring-closure scanning in this file is shared by maxRingNumber and
//renumberRingClosures: both walk the SMILES left to right tracking whether
//they are inside a bracket atom, because digits inside [...] are isotopes,
//hydrogen counts, charges or atom classes, never ring closures. Outside
//brackets a bare digit is a one-digit ring marker and '%' plus two digits
//is a two-digit one (0-99).

//maxRingNumber returns the highest ring-closure number used in a SMILES
//string, or 0 if the string uses no ring closures.
func maxRingNumber(smiles string) int {
	max := 0
	inBracket := false
	for i := 0; i < len(smiles); i++ {
		c := smiles[i]
		switch {
		case c == '[':
			inBracket = true
		case c == ']':
			inBracket = false
		case inBracket:
		case c == '%':
			if i+2 < len(smiles) && isDigit(smiles[i+1]) && isDigit(smiles[i+2]) {
				n := int(smiles[i+1]-'0')*10 + int(smiles[i+2]-'0')
				if n > max {
					max = n
				}
				i += 2
			}
		case isDigit(c):
			if n := int(c - '0'); n > max {
				max = n
			}
		}
	}
	return max
}

//renumberRingClosures returns a copy of the SMILES with every ring-closure
//number incremented by offset. Markers that no longer fit in one digit are
//re-emitted in the zero-padded %dd form. When offset is 0 the input is
//returned as is.
func renumberRingClosures(smiles string, offset int) string {
	if offset == 0 {
		return smiles
	}
	var b strings.Builder
	b.Grow(len(smiles) + 8)
	inBracket := false
	for i := 0; i < len(smiles); i++ {
		c := smiles[i]
		switch {
		case c == '[':
			inBracket = true
			b.WriteByte(c)
		case c == ']':
			inBracket = false
			b.WriteByte(c)
		case inBracket:
			b.WriteByte(c)
		case c == '%':
			if i+2 < len(smiles) && isDigit(smiles[i+1]) && isDigit(smiles[i+2]) {
				n := int(smiles[i+1]-'0')*10 + int(smiles[i+2]-'0') + offset
				writeRingNumber(&b, n)
				i += 2
			} else {
				b.WriteByte(c)
			}
		case isDigit(c):
			writeRingNumber(&b, int(c-'0')+offset)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

func writeRingNumber(b *strings.Builder, n int) {
	if n <= 9 {
		b.WriteByte(byte('0' + n))
		return
	}
	b.WriteByte('%')
	b.WriteByte(byte('0' + n/10))
	b.WriteByte(byte('0' + n%10))
}

//maxSupportedRing is the highest ring-closure number SMILES can express
//(the %dd two-digit form).
const maxSupportedRing = 99

//buildLinearSmiles concatenates n renumbered copies of the repeat-unit
//fragment. SMILES allows a ring number to be reused once it has been both
//opened and closed, and each copy is self-contained in that sense, so the
//per-copy offsets cycle instead of growing without bound: with r the
//highest marker of the fragment, copy i gets offset (i mod (99/r)) * r.
//That keeps every live marker within 0-99 for chains of arbitrary length.
func buildLinearSmiles(fragment string, n int) (string, error) {
	maxRing := maxRingNumber(fragment)
	//the repeat unit alone already overflows SMILES ring numbers
	if maxRing > maxSupportedRing {
		return "", newError(ErrRingOverflow,
			"ring number overflow: repeat unit uses ring %d, maximum supported by SMILES = %d",
			maxRing, maxSupportedRing)
	}
	if maxRing == 0 {
		//no ring closures, every copy is emitted unmodified
		var b strings.Builder
		b.Grow(len(fragment) * n)
		for i := 0; i < n; i++ {
			b.WriteString(fragment)
		}
		return b.String(), nil
	}
	cycleLength := maxSupportedRing / maxRing
	var b strings.Builder
	b.Grow((len(fragment) + 8) * n)
	for i := 0; i < n; i++ {
		offset := (i % cycleLength) * maxRing
		b.WriteString(renumberRingClosures(fragment, offset))
	}
	return b.String(), nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
