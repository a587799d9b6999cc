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

package cqerror

import (
	"encoding/json"
	"fmt"
)

// InputError represents a problem caused by the user
// (invalid query element, empty template name etc.)
type InputError struct {
	Msg string
}

func (err InputError) Error() string {
	return err.Msg
}

func (err InputError) MarshalJSON() ([]byte, error) {
	if err.Msg != "" {
		return json.Marshal(err.Msg)
	}
	return json.Marshal(nil)
}

// ----------------------------

type InternalError struct {
	Msg string
}

func (err InternalError) Error() string {
	return err.Msg
}

func (err InternalError) MarshalJSON() ([]byte, error) {
	if err.Msg != "" {
		return json.Marshal(err.Msg)
	}
	return json.Marshal(nil)
}

// ---------------------------

// PersistenceError is used by the template store boundary. Callers
// are expected to degrade (empty list, nil template) and surface
// the message out-of-band rather than fail the whole action.
type PersistenceError struct {
	Msg string
}

func (err PersistenceError) Error() string {
	return err.Msg
}

func (err PersistenceError) MarshalJSON() ([]byte, error) {
	if err.Msg != "" {
		return json.Marshal(err.Msg)
	}
	return json.Marshal(nil)
}

// ---------------------------

type RecoveredError struct {
	Msg string
}

func (err RecoveredError) Error() string {
	return err.Msg
}

func (err RecoveredError) MarshalJSON() ([]byte, error) {
	if err.Msg != "" {
		return json.Marshal(err.Msg)
	}
	return json.Marshal(nil)
}

// -----------------

func PanicValueToErr(v any) (err error) {
	switch tr := v.(type) {
	case error:
		err = fmt.Errorf("recovered panic: %w", tr)
	case string:
		err = fmt.Errorf("recovered panic: %s", tr)
	default:
		err = fmt.Errorf("recovered panic from an error of type %T", v)
	}
	return
}
