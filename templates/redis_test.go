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
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"cqlbuild/cqerror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeStorage struct {
	data      string
	found     bool
	readErr   error
	writeErr  error
	numWrites int
}

func (s *fakeStorage) read(ctx context.Context) (string, bool, error) {
	if s.readErr != nil {
		return "", false, s.readErr
	}
	return s.data, s.found, nil
}

func (s *fakeStorage) write(ctx context.Context, data string) error {
	if s.writeErr != nil {
		return s.writeErr
	}
	s.data = data
	s.found = true
	s.numWrites++
	return nil
}

func (s *fakeStorage) storedItems(t *testing.T) []*CQLTemplate {
	var items []*CQLTemplate
	assert.NoError(t, json.Unmarshal([]byte(s.data), &items))
	return items
}

func testRedisRepo(storage templateStorage) *RedisRepository {
	return &RedisRepository{storage: storage}
}

func TestRedisSavePrepends(t *testing.T) {
	storage := &fakeStorage{}
	repo := testRedisRepo(storage)
	ctx := context.Background()
	_, err := repo.Save(ctx, "older", "[]", nil)
	assert.NoError(t, err)
	_, err = repo.Save(ctx, "newer", `[word="x"]`, nil)
	assert.NoError(t, err)

	items := storage.storedItems(t)
	assert.Len(t, items, 2)
	assert.Equal(t, "newer", items[0].Name)
	assert.Equal(t, "older", items[1].Name)
}

func TestRedisSaveKeepsListOnReadFailure(t *testing.T) {
	storage := &fakeStorage{readErr: errors.New("connection timeout")}
	repo := testRedisRepo(storage)
	tpl, err := repo.Save(context.Background(), "my query", "[]", nil)
	assert.Nil(t, tpl)
	var persErr cqerror.PersistenceError
	assert.ErrorAs(t, err, &persErr)
	// the stored list must stay untouched when it could not be read
	assert.Equal(t, 0, storage.numWrites)
}

func TestRedisSaveReplacesCorruptedList(t *testing.T) {
	storage := &fakeStorage{data: "{not a list", found: true}
	repo := testRedisRepo(storage)
	tpl, err := repo.Save(context.Background(), "my query", "[]", nil)
	assert.NoError(t, err)
	assert.NotNil(t, tpl)

	items := storage.storedItems(t)
	assert.Len(t, items, 1)
	assert.Equal(t, "my query", items[0].Name)
}

func TestRedisListDegradesOnCorruptedData(t *testing.T) {
	storage := &fakeStorage{data: "{not a list", found: true}
	repo := testRedisRepo(storage)
	items, err := repo.List(context.Background())
	assert.Len(t, items, 0)
	var persErr cqerror.PersistenceError
	assert.ErrorAs(t, err, &persErr)
}

func TestRedisListEmptyKey(t *testing.T) {
	repo := testRedisRepo(&fakeStorage{})
	items, err := repo.List(context.Background())
	assert.NoError(t, err)
	assert.Len(t, items, 0)
}

func TestRedisDeleteFailsOnReadFailure(t *testing.T) {
	storage := &fakeStorage{readErr: errors.New("connection timeout")}
	repo := testRedisRepo(storage)
	err := repo.Delete(context.Background(), "some-id")
	var persErr cqerror.PersistenceError
	assert.ErrorAs(t, err, &persErr)
	assert.Equal(t, 0, storage.numWrites)
}

func TestListTemplatesWarnsOnCorruptedData(t *testing.T) {
	gin.SetMode(gin.TestMode)
	repo := testRedisRepo(&fakeStorage{data: "{not a list", found: true})
	a := NewActions(repo)

	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.Request = httptest.NewRequest("GET", "/templates", nil)
	a.ListTemplates(ctx)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Templates []*CQLTemplate `json:"templates"`
		Warning   string         `json:"warning"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Templates, 0)
	assert.NotEmpty(t, resp.Warning)
}
