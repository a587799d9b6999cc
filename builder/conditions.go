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

import (
	"fmt"
	"strings"
)

const (
	joinAnd = " & "
	joinOr  = " | "
)

func (lg LogicOperator) joiner() string {
	if lg == LogicAnd {
		return joinAnd
	}
	return joinOr
}

// SerializeCondition produces a single CQL attribute expression,
// e.g. `lemma="team"`. The value is inserted verbatim between the
// quotes - escaping with respect to the target grammar is up to
// the user (the remote parsing service reports possible issues).
func SerializeCondition(cond TokenCondition) string {
	return fmt.Sprintf("%s%s\"%s\"", cond.Attribute, cond.Operator, cond.Value)
}

// SerializeGroup compiles a condition group into the interior of
// a CQL token expression. Conditions without a value are skipped;
// for a group with nothing to say, an empty string is returned.
func SerializeGroup(group ConditionGroup) string {
	conds := group.nonEmptyConditions()
	if len(conds) == 0 {
		return ""
	}
	items := make([]string, len(conds))
	for i, cond := range conds {
		items[i] = SerializeCondition(cond)
	}
	return strings.Join(items, group.Logic.joiner())
}

// SerializeGroups compiles all condition groups of a token. The groups
// are alternatives - each compiles independently and the results join
// via ` | `. No extra parentheses are needed as `&` binds tighter than
// the top-level join.
func SerializeGroups(groups []ConditionGroup) string {
	items := make([]string, 0, len(groups))
	for _, group := range groups {
		if expr := SerializeGroup(group); expr != "" {
			items = append(items, expr)
		}
	}
	return strings.Join(items, joinOr)
}
