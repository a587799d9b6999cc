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
	"strings"
	"time"

	"cqlbuild/builder"
	"cqlbuild/cqerror"

	"github.com/google/uuid"
)

// CQLTemplate is an immutable snapshot of a named query. The source
// elements are preserved so a client can restore the editable
// structure later on.
type CQLTemplate struct {
	ID        string                   `json:"id"`
	Name      string                   `json:"name"`
	CQL       string                   `json:"cql"`
	Elements  []builder.BuilderElement `json:"elements"`
	CreatedAt time.Time                `json:"createdAt"`
}

// Repository stores named CQL templates as a single ordered list,
// most recently saved first. Implementations must keep the prepend
// ordering even under concurrent saves.
type Repository interface {
	Save(ctx context.Context, name, cql string, elements []builder.BuilderElement) (*CQLTemplate, error)
	List(ctx context.Context) ([]*CQLTemplate, error)
	Delete(ctx context.Context, templateID string) error
}

// newTemplate validates inputs shared by all repository
// implementations. Empty name or query is a user error, not
// a reason to panic or to store garbage.
func newTemplate(
	name, cql string,
	elements []builder.BuilderElement,
	tz *time.Location,
) (*CQLTemplate, error) {
	name = strings.TrimSpace(name)
	cql = strings.TrimSpace(cql)
	if name == "" {
		return nil, cqerror.InputError{Msg: "template name cannot be empty"}
	}
	if cql == "" {
		return nil, cqerror.InputError{Msg: "template query cannot be empty"}
	}
	if tz == nil {
		tz = time.Local
	}
	return &CQLTemplate{
		ID:        uuid.New().String(),
		Name:      name,
		CQL:       cql,
		Elements:  elements,
		CreatedAt: time.Now().In(tz),
	}, nil
}
