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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSerializeSingleCondition(t *testing.T) {
	group := ConditionGroup{
		Conditions: []TokenCondition{
			{ID: "c1", Attribute: AttrLemma, Operator: OpRegexMatch, Value: "team"},
		},
		Logic: LogicAnd,
	}
	assert.Equal(t, `lemma="team"`, SerializeGroup(group))
}

func TestSerializeGroupAnd(t *testing.T) {
	group := ConditionGroup{
		Conditions: []TokenCondition{
			{ID: "c1", Attribute: AttrLemma, Operator: OpRegexMatch, Value: "team"},
			{ID: "c2", Attribute: AttrPos, Operator: OpExactMatch, Value: "NOUN"},
		},
		Logic: LogicAnd,
	}
	assert.Equal(t, `lemma="team" & pos=="NOUN"`, SerializeGroup(group))
}

func TestSerializeGroupOr(t *testing.T) {
	group := ConditionGroup{
		Conditions: []TokenCondition{
			{ID: "c1", Attribute: AttrWord, Operator: OpRegexMatch, Value: "go"},
			{ID: "c2", Attribute: AttrWord, Operator: OpRegexMatch, Value: "went"},
		},
		Logic: LogicOr,
	}
	assert.Equal(t, `word="go" | word="went"`, SerializeGroup(group))
}

func TestSerializeGroupSkipsEmptyValues(t *testing.T) {
	group := ConditionGroup{
		Conditions: []TokenCondition{
			{ID: "c1", Attribute: AttrLemma, Operator: OpRegexMatch, Value: "team"},
			{ID: "c2", Attribute: AttrPos, Operator: OpRegexMatch, Value: "   "},
		},
		Logic: LogicAnd,
	}
	assert.Equal(t, `lemma="team"`, SerializeGroup(group))
}

func TestSerializeGroupAllEmpty(t *testing.T) {
	group := ConditionGroup{
		Conditions: []TokenCondition{
			{ID: "c1", Attribute: AttrLemma, Operator: OpRegexMatch, Value: ""},
		},
		Logic: LogicAnd,
	}
	assert.Equal(t, "", SerializeGroup(group))
	assert.True(t, group.IsEmpty())
}

func TestSerializeGroupsAreAlternatives(t *testing.T) {
	groups := []ConditionGroup{
		{
			Conditions: []TokenCondition{
				{ID: "c1", Attribute: AttrLemma, Operator: OpRegexMatch, Value: "run"},
				{ID: "c2", Attribute: AttrPos, Operator: OpRegexMatch, Value: "VERB"},
			},
			Logic: LogicAnd,
		},
		{
			Conditions: []TokenCondition{
				{ID: "c3", Attribute: AttrLemma, Operator: OpRegexMatch, Value: "sprint"},
			},
			Logic: LogicAnd,
		},
	}
	assert.Equal(t, `lemma="run" & pos="VERB" | lemma="sprint"`, SerializeGroups(groups))
}

func TestSerializeGroupsDropsEmptyGroup(t *testing.T) {
	groups := []ConditionGroup{
		{
			Conditions: []TokenCondition{
				{ID: "c1", Attribute: AttrLemma, Operator: OpRegexMatch, Value: " "},
			},
			Logic: LogicAnd,
		},
		{
			Conditions: []TokenCondition{
				{ID: "c2", Attribute: AttrWord, Operator: OpRegexNonMatch, Value: "the"},
			},
			Logic: LogicAnd,
		},
	}
	assert.Equal(t, `word!="the"`, SerializeGroups(groups))
}

func TestSerializeHeadOnlyCondition(t *testing.T) {
	group := ConditionGroup{
		Conditions: []TokenCondition{
			{ID: "c1", Attribute: AttrHeadLemma, Operator: OpRegexMatch, Value: "model"},
		},
		Logic: LogicAnd,
	}
	assert.Equal(t, `headlemma="model"`, SerializeGroup(group))
}
