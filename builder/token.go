// Copyright 2024 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2024 Institute of the Czech National Corpus,
//                Faculty of Arts, Charles University
//   This file is part of CQLBUILD.
//
//  CQLBUILD is free software: you can redistribute it and/or modify
//  it under the terms of the GNU General Public License as published by
//  the Free Software Foundation, either version 3 of the License, or
//  (at your option) any later version.
//
//  CQLBUILD is distributed in the hope that it will be useful,
//  but WITHOUT ANY WARRANTY; without even the implied warranty of
//  MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
//  GNU General Public License for more details.
//
//  You should have received a copy of the GNU General Public License
//  along with CQLBUILD.  If not, see <https://www.gnu.org/licenses/>.

package builder

import "fmt"

// CompileElement produces the CQL form of a single query element:
// `[expr]` for a specified token, `[]` for a wildcard, `[]{n}` or
// `[]{min,max}` for a distance and a bare `|` for an alternation
// marker. A specified token whose condition groups are all empty
// degrades to the wildcard form - never to an empty bracket pair
// with a dangling operator inside.
func CompileElement(el BuilderElement) string {
	switch el.Type {
	case ElementNormalToken:
		interior := SerializeGroups(el.ConditionGroups)
		if interior == "" {
			return "[]"
		}
		return "[" + interior + "]"
	case ElementUnspecifiedToken:
		return "[]"
	case ElementDistance:
		if el.MinCount == el.MaxCount {
			return fmt.Sprintf("[]{%d}", el.MinCount)
		}
		return fmt.Sprintf("[]{%d,%d}", el.MinCount, el.MaxCount)
	case ElementOr:
		return "|"
	}
	return ""
}
