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

import "strings"

// CompiledQuery is the result of compiling a builder element sequence.
// IsValid covers structural problems only (empty sequence, broken
// distance range, unknown attribute); whether the produced string is
// grammatically correct CQL is decided by the remote parsing service.
type CompiledQuery struct {
	CQL     string `json:"cql"`
	IsValid bool   `json:"isValid"`
}

// Compile turns an ordered element sequence into a single CQL string.
// Elements failing the structural check are left out of the output and
// reported via IsValid; the function itself never fails so the user
// always gets some string to inspect and correct.
func Compile(elements []BuilderElement) CompiledQuery {
	valid := len(elements) > 0
	tokens := make([]string, 0, len(elements))
	for _, el := range elements {
		if !el.Validate() {
			valid = false
			continue
		}
		tokens = append(tokens, CompileElement(el))
	}
	return CompiledQuery{
		CQL:     strings.Join(tokens, " "),
		IsValid: valid,
	}
}
