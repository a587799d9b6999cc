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
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
)

// Direction tells which side of a dependency link the clicked
// (main) word occupies.
// DirectionParent - the main word is the dependent, its collocate
// is the syntactic head.
// DirectionChild - the main word is the head, its collocate is
// the dependent.
type Direction string

const (
	DirectionParent Direction = "parent"
	DirectionChild  Direction = "child"
)

func (d Direction) Validate() bool {
	return d == DirectionParent || d == DirectionChild
}

// RelationInfo describes a single named grammatical relation as
// offered by a word sketch table.
type RelationInfo struct {

	// Deps lists dependency labels the relation covers. Multiple
	// labels are treated as a regex alternation in generated queries.
	Deps []string `json:"deps"`

	Direction Direction `json:"direction"`
}

// RelationTable maps word-sketch relation names to their dependency
// constraints. It is an immutable piece of configuration - adding
// a relation means adding data, not code.
type RelationTable map[string]RelationInfo

func (table RelationTable) Validate(confContext string) error {
	for name, info := range table {
		if len(info.Deps) == 0 {
			return fmt.Errorf("%s: relation `%s` has no dependency labels", confContext, name)
		}
		if !info.Direction.Validate() {
			return fmt.Errorf("%s: relation `%s` has invalid direction `%s`", confContext, name, info.Direction)
		}
	}
	return nil
}

// defaultRelations covers the relations of the bundled SpaCy-style
// annotation. A custom table loaded via `relationsFile` replaces it
// as a whole.
func defaultRelations() RelationTable {
	return RelationTable{
		"nouns_modified_by":     {Deps: []string{"compound"}, Direction: DirectionParent},
		"modifiers_of":          {Deps: []string{"amod"}, Direction: DirectionParent},
		"adjectives_modifying":  {Deps: []string{"amod"}, Direction: DirectionChild},
		"object":                {Deps: []string{"dobj", "obj"}, Direction: DirectionChild},
		"objects_of":            {Deps: []string{"dobj", "obj"}, Direction: DirectionParent},
		"subject":               {Deps: []string{"nsubj", "nsubjpass"}, Direction: DirectionChild},
		"subjects_of":           {Deps: []string{"nsubj", "nsubjpass"}, Direction: DirectionParent},
		"adverbial_modifiers":   {Deps: []string{"advmod"}, Direction: DirectionChild},
		"prepositional_phrases": {Deps: []string{"prep"}, Direction: DirectionChild},
		"conjuncts":             {Deps: []string{"conj"}, Direction: DirectionChild},
	}
}

// SketchSetup configures the word-sketch query derivation.
type SketchSetup struct {

	// RelationsFile is a path to a JSON file with a custom relation
	// table. If empty, a built-in default table is used.
	RelationsFile string `json:"relationsFile"`

	relations RelationTable
}

func (setup *SketchSetup) Relations() RelationTable {
	return setup.relations
}

// Load resolves the relation table, either from RelationsFile
// or from the built-in defaults.
func (setup *SketchSetup) Load() error {
	if setup.RelationsFile == "" {
		log.Warn().Msg("sketch relations file not specified, using built-in relation table")
		setup.relations = defaultRelations()
		return nil
	}
	rawData, err := os.ReadFile(setup.RelationsFile)
	if err != nil {
		return fmt.Errorf("failed to load sketch relations: %w", err)
	}
	var table RelationTable
	if err := json.Unmarshal(rawData, &table); err != nil {
		return fmt.Errorf("failed to load sketch relations: %w", err)
	}
	if err := table.Validate("sketch.relationsFile"); err != nil {
		return err
	}
	log.Info().
		Str("file", setup.RelationsFile).
		Int("numRelations", len(table)).
		Msg("loaded sketch relation table")
	setup.relations = table
	return nil
}
