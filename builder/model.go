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

import "strings"

// TokenAttribute specifies a positional attribute a single token
// condition constrains. The head* variants constrain the syntactic
// head of the matched token, not the token itself.
type TokenAttribute string

const (
	AttrWord      TokenAttribute = "word"
	AttrLemma     TokenAttribute = "lemma"
	AttrPos       TokenAttribute = "pos"
	AttrTag       TokenAttribute = "tag"
	AttrDep       TokenAttribute = "dep"
	AttrHeadWord  TokenAttribute = "headword"
	AttrHeadLemma TokenAttribute = "headlemma"
	AttrHeadPos   TokenAttribute = "headpos"
	AttrHeadDep   TokenAttribute = "headdep"
)

func (ta TokenAttribute) Validate() bool {
	return ta == AttrWord || ta == AttrLemma || ta == AttrPos ||
		ta == AttrTag || ta == AttrDep || ta == AttrHeadWord ||
		ta == AttrHeadLemma || ta == AttrHeadPos || ta == AttrHeadDep
}

// ComparisonOperator is one of the four CQL comparison operators
// (`=` and `!=` compare against a regular expression, `==` and `!==`
// against a plain string).
type ComparisonOperator string

const (
	OpRegexMatch    ComparisonOperator = "="
	OpRegexNonMatch ComparisonOperator = "!="
	OpExactMatch    ComparisonOperator = "=="
	OpExactNonMatch ComparisonOperator = "!=="
)

func (op ComparisonOperator) Validate() bool {
	return op == OpRegexMatch || op == OpRegexNonMatch ||
		op == OpExactMatch || op == OpExactNonMatch
}

// LogicOperator joins conditions within a single condition group.
type LogicOperator string

const (
	LogicAnd LogicOperator = "and"
	LogicOr  LogicOperator = "or"
)

func (lg LogicOperator) Validate() bool {
	return lg == LogicAnd || lg == LogicOr
}

// TokenCondition is a single attribute constraint as edited by the user.
// A condition with an empty (or whitespace-only) value is considered
// not filled-in yet and is excluded from compilation.
type TokenCondition struct {
	ID        string             `json:"id"`
	Attribute TokenAttribute     `json:"attribute"`
	Operator  ComparisonOperator `json:"operator"`
	Value     string             `json:"value"`
}

func (cond TokenCondition) IsEmpty() bool {
	return strings.TrimSpace(cond.Value) == ""
}

func (cond TokenCondition) Validate() bool {
	return cond.Attribute.Validate() && cond.Operator.Validate()
}

// ConditionGroup couples conditions joined by a single logic operator.
// A group whose conditions are all empty behaves as if it did not exist.
type ConditionGroup struct {
	Conditions []TokenCondition `json:"conditions"`
	Logic      LogicOperator    `json:"logic"`
}

func (group ConditionGroup) nonEmptyConditions() []TokenCondition {
	ans := make([]TokenCondition, 0, len(group.Conditions))
	for _, cond := range group.Conditions {
		if !cond.IsEmpty() {
			ans = append(ans, cond)
		}
	}
	return ans
}

func (group ConditionGroup) IsEmpty() bool {
	return len(group.nonEmptyConditions()) == 0
}

// ElementType is a tag distinguishing the element variants the query
// builder can produce. Payload rules:
// normal_token is the only variant carrying condition groups,
// distance is the only variant carrying a min/max repetition range.
type ElementType string

const (
	ElementNormalToken      ElementType = "normal_token"
	ElementUnspecifiedToken ElementType = "unspecified_token"
	ElementDistance         ElementType = "distance"
	ElementOr               ElementType = "or"
)

func (et ElementType) Validate() bool {
	return et == ElementNormalToken || et == ElementUnspecifiedToken ||
		et == ElementDistance || et == ElementOr
}

// BuilderElement is one item of the user-edited query sequence.
type BuilderElement struct {
	ID              string           `json:"id"`
	Type            ElementType      `json:"type"`
	ConditionGroups []ConditionGroup `json:"conditionGroups,omitempty"`
	MinCount        int              `json:"minCount,omitempty"`
	MaxCount        int              `json:"maxCount,omitempty"`
}

// Validate performs a structural check of a single element. It never
// inspects condition values against the CQL grammar - that is a job
// for a remote parsing service.
func (el BuilderElement) Validate() bool {
	switch el.Type {
	case ElementNormalToken:
		for _, group := range el.ConditionGroups {
			if !group.Logic.Validate() {
				return false
			}
			for _, cond := range group.nonEmptyConditions() {
				if !cond.Validate() {
					return false
				}
			}
		}
		return true
	case ElementUnspecifiedToken, ElementOr:
		return len(el.ConditionGroups) == 0
	case ElementDistance:
		return len(el.ConditionGroups) == 0 &&
			el.MinCount >= 0 && el.MinCount <= el.MaxCount
	default:
		return false
	}
}
