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

package cnf

import (
	"os"
	"path/filepath"
	"testing"

	"cqlbuild/sketch"

	"github.com/stretchr/testify/assert"
)

func writeRelationsFile(t *testing.T, contents string) string {
	path := filepath.Join(t.TempDir(), "relations.json")
	assert.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestLoadSubconfigsDefaultRelations(t *testing.T) {
	conf := &Conf{}
	assert.NoError(t, conf.LoadSubconfigs())
	assert.NotEmpty(t, conf.Sketch.Relations())
}

func TestLoadSubconfigsCustomRelations(t *testing.T) {
	path := writeRelationsFile(t, `{"object": {"deps": ["obj"], "direction": "child"}}`)
	conf := &Conf{Sketch: &sketch.SketchSetup{RelationsFile: path}}
	assert.NoError(t, conf.LoadSubconfigs())
	assert.Len(t, conf.Sketch.Relations(), 1)
}

func TestLoadSubconfigsBrokenRelationsFile(t *testing.T) {
	path := writeRelationsFile(t, `{"object": [`)
	conf := &Conf{Sketch: &sketch.SketchSetup{RelationsFile: path}}
	assert.Error(t, conf.LoadSubconfigs())
}

func TestLoadSubconfigsInvalidDirection(t *testing.T) {
	path := writeRelationsFile(t, `{"object": {"deps": ["obj"], "direction": "sideways"}}`)
	conf := &Conf{Sketch: &sketch.SketchSetup{RelationsFile: path}}
	assert.Error(t, conf.LoadSubconfigs())
}

func TestLoadSubconfigsMissingRelationsFile(t *testing.T) {
	conf := &Conf{Sketch: &sketch.SketchSetup{RelationsFile: "/no/such/file.json"}}
	assert.Error(t, conf.LoadSubconfigs())
}
