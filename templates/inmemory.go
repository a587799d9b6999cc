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
	"fmt"
	"sync"
	"time"

	"cqlbuild/builder"
	"cqlbuild/cqerror"
)

// InMemoryRepository implements Repository without any persistence.
// It backs tests and also serves as a fallback for a server running
// without a configured Redis (templates then live only as long as
// the process).
type InMemoryRepository struct {
	items []*CQLTemplate
	tz    *time.Location
	lock  sync.Mutex
}

func (repo *InMemoryRepository) Save(
	ctx context.Context,
	name, cql string,
	elements []builder.BuilderElement,
) (*CQLTemplate, error) {
	tpl, err := newTemplate(name, cql, elements, repo.tz)
	if err != nil {
		return nil, err
	}
	repo.lock.Lock()
	defer repo.lock.Unlock()
	repo.items = append([]*CQLTemplate{tpl}, repo.items...)
	return tpl, nil
}

func (repo *InMemoryRepository) List(ctx context.Context) ([]*CQLTemplate, error) {
	repo.lock.Lock()
	defer repo.lock.Unlock()
	ans := make([]*CQLTemplate, len(repo.items))
	copy(ans, repo.items)
	return ans, nil
}

func (repo *InMemoryRepository) Delete(ctx context.Context, templateID string) error {
	repo.lock.Lock()
	defer repo.lock.Unlock()
	for i, item := range repo.items {
		if item.ID == templateID {
			repo.items = append(repo.items[:i], repo.items[i+1:]...)
			return nil
		}
	}
	return cqerror.InputError{Msg: fmt.Sprintf("template `%s` not found", templateID)}
}

func NewInMemoryRepository(tz *time.Location) *InMemoryRepository {
	return &InMemoryRepository{
		items: []*CQLTemplate{},
		tz:    tz,
	}
}
