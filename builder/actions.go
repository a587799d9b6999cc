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
	"net/http"

	"cqlbuild/parsercheck"

	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type Actions struct {
	parserClient *parsercheck.Client
	maxElements  int
}

type compileRequestBody struct {
	Elements []BuilderElement `json:"elements"`
}

type compileResponse struct {
	CompiledQuery

	// Parsed is filled only when a backend check was requested
	// and the parsing service is configured.
	Parsed *parsercheck.ValidationResult `json:"parsed,omitempty"`
}

// CompileQuery godoc
// @Summary      CompileQuery
// @Description  Compile an ordered builder element sequence into a CQL string.
// @Accept       json
// @Produce      json
// @Param        validate query int false "if 1 then also check the result via the remote parsing service"
// @Success      200 {object} compileResponse
// @Router       /query/compile [post]
func (a *Actions) CompileQuery(ctx *gin.Context) {
	var body compileRequestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusBadRequest)
		return
	}
	if len(body.Elements) > a.maxElements {
		uniresp.WriteJSONErrorResponse(
			ctx.Writer,
			uniresp.NewActionError("too many query elements"),
			http.StatusBadRequest,
		)
		return
	}
	ans := compileResponse{CompiledQuery: Compile(body.Elements)}
	if ctx.Query("validate") == "1" && a.parserClient != nil && ans.IsValid {
		parsed, err := a.parserClient.ParseCQL(ctx.Request.Context(), ans.CQL)
		if err != nil {
			// the compiled string is still usable; the check
			// just could not be performed
			log.Error().Err(err).Msg("failed to check compiled query")

		} else {
			ans.Parsed = &parsed
		}
	}
	uniresp.WriteJSONResponse(ctx.Writer, ans)
}

func NewActions(parserClient *parsercheck.Client, maxElements int) *Actions {
	return &Actions{
		parserClient: parserClient,
		maxElements:  maxElements,
	}
}
