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

package sketch

import (
	"fmt"
	"strings"
)

// MatchMode selects the positional attribute the derived query
// matches words by.
type MatchMode string

const (
	MatchModeWord  MatchMode = "word"
	MatchModeLemma MatchMode = "lemma"
)

func (m MatchMode) Validate() bool {
	return m == MatchModeWord || m == MatchModeLemma
}

func (m MatchMode) attribute() string {
	if m == MatchModeLemma {
		return "lemma"
	}
	return "word"
}

// DerivedQuery is a dependency-constrained CQL expression together
// with the keyword/highlight assignment for a KWIC view.
//
// KWICKeyword is always the clicked main word. For a child-direction
// relation the matched token is the collocate, so a concordance
// renderer must realign the displayed keyword to KWICKeyword via the
// head link of the match.
type DerivedQuery struct {
	CQL           string `json:"cql"`
	KWICKeyword   string `json:"kwicKeyword"`
	KWICHighlight string `json:"kwicHighlight"`
}

// QueryDeriver maps clicked word-sketch rows to runnable CQL.
type QueryDeriver struct {
	Relations RelationTable
}

// Derive builds a query matching the (mainWord, collocate) pair in
// the grammatical relation `relation`. An unknown relation is not an
// error - the query degrades to a plain attribute match on the
// collocate, which is still usable for browsing.
//
// example (parent direction, relation `nouns_modified_by`):
//
//	[lemma="business" & dep="compound" & headlemma="model"]
//
// example (child direction, relation `object`):
//
//	[lemma="apple" & dep="dobj|obj" & headlemma="eat"]
func (qd *QueryDeriver) Derive(
	mainWord string,
	collocate string,
	relation string,
	mode MatchMode,
) DerivedQuery {
	attr := mode.attribute()
	info, ok := qd.Relations[relation]
	if !ok {
		return DerivedQuery{
			CQL:           fmt.Sprintf("[%s=\"%s\"]", attr, collocate),
			KWICKeyword:   mainWord,
			KWICHighlight: collocate,
		}
	}
	depCond := fmt.Sprintf("dep=\"%s\"", strings.Join(info.Deps, "|"))
	var cql string
	if info.Direction == DirectionParent {
		// the matched token is the main word itself
		cql = fmt.Sprintf(
			"[%s=\"%s\" & %s & head%s=\"%s\"]",
			attr, mainWord, depCond, attr, collocate,
		)

	} else {
		// the matched token is the collocate; the main word is
		// reachable only through the head link
		cql = fmt.Sprintf(
			"[%s=\"%s\" & %s & head%s=\"%s\"]",
			attr, collocate, depCond, attr, mainWord,
		)
	}
	return DerivedQuery{
		CQL:           cql,
		KWICKeyword:   mainWord,
		KWICHighlight: collocate,
	}
}

func NewQueryDeriver(relations RelationTable) *QueryDeriver {
	return &QueryDeriver{Relations: relations}
}
