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

package templates

import (
	"context"
	"testing"

	"cqlbuild/builder"
	"cqlbuild/cqerror"

	"github.com/stretchr/testify/assert"
)

func testElements() []builder.BuilderElement {
	return []builder.BuilderElement{
		{
			ID:   "e1",
			Type: builder.ElementNormalToken,
			ConditionGroups: []builder.ConditionGroup{
				{
					Conditions: []builder.TokenCondition{
						{ID: "c1", Attribute: builder.AttrLemma, Operator: builder.OpRegexMatch, Value: "team"},
					},
					Logic: builder.LogicAnd,
				},
			},
		},
	}
}

func TestSaveAndList(t *testing.T) {
	repo := NewInMemoryRepository(nil)
	ctx := context.Background()
	tpl, err := repo.Save(ctx, "my query", `[lemma="team"]`, testElements())
	assert.NoError(t, err)
	assert.NotEmpty(t, tpl.ID)

	items, err := repo.List(ctx)
	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, "my query", items[0].Name)
	assert.Equal(t, `[lemma="team"]`, items[0].CQL)
	assert.Equal(t, testElements(), items[0].Elements)
}

func TestSaveRejectsEmptyName(t *testing.T) {
	repo := NewInMemoryRepository(nil)
	tpl, err := repo.Save(context.Background(), "   ", `[lemma="team"]`, nil)
	assert.Nil(t, tpl)
	var inpErr cqerror.InputError
	assert.ErrorAs(t, err, &inpErr)
}

func TestSaveRejectsEmptyQuery(t *testing.T) {
	repo := NewInMemoryRepository(nil)
	tpl, err := repo.Save(context.Background(), "my query", "  ", nil)
	assert.Nil(t, tpl)
	var inpErr cqerror.InputError
	assert.ErrorAs(t, err, &inpErr)
}

func TestSaveTrimsInputs(t *testing.T) {
	repo := NewInMemoryRepository(nil)
	tpl, err := repo.Save(context.Background(), "  my query ", " [] ", nil)
	assert.NoError(t, err)
	assert.Equal(t, "my query", tpl.Name)
	assert.Equal(t, "[]", tpl.CQL)
}

func TestListMostRecentFirst(t *testing.T) {
	repo := NewInMemoryRepository(nil)
	ctx := context.Background()
	for _, name := range []string{"first", "second", "third"} {
		_, err := repo.Save(ctx, name, "[]", nil)
		assert.NoError(t, err)
	}
	items, err := repo.List(ctx)
	assert.NoError(t, err)
	assert.Len(t, items, 3)
	assert.Equal(t, "third", items[0].Name)
	assert.Equal(t, "second", items[1].Name)
	assert.Equal(t, "first", items[2].Name)
}

func TestDelete(t *testing.T) {
	repo := NewInMemoryRepository(nil)
	ctx := context.Background()
	tpl, err := repo.Save(ctx, "doomed", "[]", nil)
	assert.NoError(t, err)

	assert.NoError(t, repo.Delete(ctx, tpl.ID))
	items, err := repo.List(ctx)
	assert.NoError(t, err)
	assert.Len(t, items, 0)
}

func TestDeleteUnknownID(t *testing.T) {
	repo := NewInMemoryRepository(nil)
	err := repo.Delete(context.Background(), "no-such-id")
	var inpErr cqerror.InputError
	assert.ErrorAs(t, err, &inpErr)
}

func TestListReturnsCopy(t *testing.T) {
	repo := NewInMemoryRepository(nil)
	ctx := context.Background()
	_, err := repo.Save(ctx, "first", "[]", nil)
	assert.NoError(t, err)

	items, err := repo.List(ctx)
	assert.NoError(t, err)
	items[0] = nil

	again, err := repo.List(ctx)
	assert.NoError(t, err)
	assert.NotNil(t, again[0])
}
