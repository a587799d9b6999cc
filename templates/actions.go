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
	"errors"
	"net/http"

	"cqlbuild/builder"
	"cqlbuild/cqerror"

	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"
)

type Actions struct {
	repo Repository
}

type saveTemplateBody struct {
	Name     string                   `json:"name"`
	CQL      string                   `json:"cql"`
	Elements []builder.BuilderElement `json:"elements"`
}

type listTemplatesResponse struct {
	Templates []*CQLTemplate `json:"templates"`

	// Warning carries a persistence problem the list degraded on
	// (the response is still a usable, possibly empty, list).
	Warning string `json:"warning,omitempty"`
}

func errStatus(err error) int {
	var inpErr cqerror.InputError
	if errors.As(err, &inpErr) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// SaveTemplate godoc
// @Summary      SaveTemplate
// @Description  Store a named CQL snippet along with its source builder elements.
// @Accept       json
// @Produce      json
// @Success      200 {object} CQLTemplate
// @Router       /templates [post]
func (a *Actions) SaveTemplate(ctx *gin.Context) {
	var body saveTemplateBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusBadRequest)
		return
	}
	tpl, err := a.repo.Save(ctx.Request.Context(), body.Name, body.CQL, body.Elements)
	if err != nil {
		uniresp.WriteJSONErrorResponse(
			ctx.Writer,
			uniresp.NewActionErrorFrom(err),
			errStatus(err),
		)
		return
	}
	uniresp.WriteJSONResponse(ctx.Writer, tpl)
}

// ListTemplates godoc
// @Summary      ListTemplates
// @Description  Show stored templates, most recently saved first.
// @Produce      json
// @Success      200 {object} listTemplatesResponse
// @Router       /templates [get]
func (a *Actions) ListTemplates(ctx *gin.Context) {
	items, err := a.repo.List(ctx.Request.Context())
	ans := listTemplatesResponse{Templates: items}
	if err != nil {
		// degraded answer - the client shows what we have
		// plus the warning
		ans.Warning = err.Error()
	}
	uniresp.WriteJSONResponse(ctx.Writer, ans)
}

// DeleteTemplate godoc
// @Summary      DeleteTemplate
// @Description  Remove a stored template.
// @Produce      json
// @Param        templateId path string true "an ID of the template to remove"
// @Router       /templates/{templateId} [delete]
func (a *Actions) DeleteTemplate(ctx *gin.Context) {
	templateID := ctx.Param("templateId")
	if err := a.repo.Delete(ctx.Request.Context(), templateID); err != nil {
		uniresp.WriteJSONErrorResponse(
			ctx.Writer,
			uniresp.NewActionErrorFrom(err),
			errStatus(err),
		)
		return
	}
	uniresp.WriteJSONResponse(ctx.Writer, map[string]any{"removed": templateID})
}

func NewActions(repo Repository) *Actions {
	return &Actions{repo: repo}
}
