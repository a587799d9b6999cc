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
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func callParseQuery(t *testing.T, serviceURL, query string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	a := NewActions(NewClient(serviceURL))
	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.Request = httptest.NewRequest("GET", "/parse?q="+query, nil)
	a.ParseQuery(ctx)
	return w
}

func TestParseQueryProxiesAnswer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, `[lemma="team"]`, req.URL.Query().Get("q"))
		w.Write([]byte(`{"valid": true}`))
	}))
	defer srv.Close()

	w := callParseQuery(t, srv.URL, `%5Blemma%3D%22team%22%5D`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"valid":true`)
}

func TestParseQueryServiceFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		http.Error(w, "broken", http.StatusInternalServerError)
	}))
	defer srv.Close()

	w := callParseQuery(t, srv.URL, "%5B%5D")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "failed to validate query")
}

func TestParseQueryMissingArgument(t *testing.T) {
	w := callParseQuery(t, "http://localhost:1", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
