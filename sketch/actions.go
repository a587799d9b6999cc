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
	"net/http"

	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"
)

type Actions struct {
	setup *SketchSetup
}

// SketchQuery godoc
// @Summary      SketchQuery
// @Description  Derive a dependency-constrained CQL query for a clicked word sketch row.
// @Produce      json
// @Param        w query string true "the main (clicked) word"
// @Param        c query string true "the collocate"
// @Param        rel query string true "a relation name (e.g. nouns_modified_by)"
// @Param        matchMode query string false "word or lemma (default lemma)" enums(word, lemma)
// @Success      200 {object} DerivedQuery
// @Router       /sketch-query [get]
func (a *Actions) SketchQuery(ctx *gin.Context) {
	mainWord := ctx.Query("w")
	collocate := ctx.Query("c")
	relation := ctx.Query("rel")
	if mainWord == "" || collocate == "" {
		uniresp.WriteJSONErrorResponse(
			ctx.Writer,
			uniresp.NewActionError("missing `w` or `c` argument"),
			http.StatusBadRequest,
		)
		return
	}
	mode := MatchMode(ctx.DefaultQuery("matchMode", string(MatchModeLemma)))
	if !mode.Validate() {
		uniresp.WriteJSONErrorResponse(
			ctx.Writer,
			uniresp.NewActionError("invalid `matchMode` argument"),
			http.StatusBadRequest,
		)
		return
	}
	deriver := NewQueryDeriver(a.setup.Relations())
	ans := deriver.Derive(mainWord, collocate, relation, mode)
	uniresp.WriteJSONResponse(ctx.Writer, ans)
}

// Relations godoc
// @Summary      Relations
// @Description  Show the configured grammatical relation table.
// @Produce      json
// @Success      200 {object} RelationTable
// @Router       /sketch-relations [get]
func (a *Actions) Relations(ctx *gin.Context) {
	uniresp.WriteJSONResponse(ctx.Writer, a.setup.Relations())
}

func NewActions(setup *SketchSetup) *Actions {
	return &Actions{setup: setup}
}
