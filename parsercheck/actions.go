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

package parsercheck

import (
	"net/http"

	"cqlbuild/cqerror"

	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"
)

type Actions struct {
	client *Client
}

// ParseQuery godoc
// @Summary      ParseQuery
// @Description  Check a candidate CQL query against the remote parsing service.
// @Produce      json
// @Param        q query string true "the query to check"
// @Success      200 {object} ValidationResult
// @Router       /parse [get]
func (a *Actions) ParseQuery(ctx *gin.Context) {
	q := ctx.Query("q")
	if q == "" {
		uniresp.WriteJSONErrorResponse(
			ctx.Writer,
			uniresp.NewActionError("missing `q` argument"),
			http.StatusBadRequest,
		)
		return
	}
	ans, err := a.client.ParseCQL(ctx.Request.Context(), q)
	if err != nil {
		uniresp.WriteJSONErrorResponse(
			ctx.Writer,
			uniresp.NewActionErrorFrom(cqerror.InternalError{Msg: err.Error()}),
			http.StatusInternalServerError,
		)
		return
	}
	uniresp.WriteJSONResponse(ctx.Writer, ans)
}

func NewActions(client *Client) *Actions {
	return &Actions{client: client}
}
