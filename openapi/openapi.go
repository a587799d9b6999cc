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

package openapi

type Info struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Version     string `json:"version"`
}

type Server struct {
	URL string `json:"url"`
}

type ParamSchema struct {
	Type string `json:"type"`
}

type Parameter struct {
	Name        string      `json:"name"`
	In          string      `json:"in"`
	Description string      `json:"description"`
	Required    bool        `json:"required"`
	Schema      ParamSchema `json:"schema"`
}

type MediaType struct {
	Schema ParamSchema `json:"schema"`
}

type RequestBody struct {
	Description string               `json:"description"`
	Required    bool                 `json:"required"`
	Content     map[string]MediaType `json:"content"`
}

type Method struct {
	Description string       `json:"description"`
	OperationID string       `json:"operationId"`
	Parameters  []Parameter  `json:"parameters,omitempty"`
	RequestBody *RequestBody `json:"requestBody,omitempty"`
	Deprecated  bool         `json:"deprecated,omitempty"`
}

type Methods struct {
	Get    *Method `json:"get,omitempty"`
	Post   *Method `json:"post,omitempty"`
	Put    *Method `json:"put,omitempty"`
	Delete *Method `json:"delete,omitempty"`
}

type Response struct {
	OpenAPI string             `json:"openapi"`
	Info    Info               `json:"info"`
	Servers []Server           `json:"servers"`
	Paths   map[string]Methods `json:"paths"`
}

func jsonObjectBody(description string) *RequestBody {
	return &RequestBody{
		Description: description,
		Required:    true,
		Content: map[string]MediaType{
			"application/json": {
				Schema: ParamSchema{Type: "object"},
			},
		},
	}
}

func NewResponse(ver, url string) *Response {
	paths := make(map[string]Methods)

	paths["/query/compile"] = Methods{
		Post: &Method{
			Description: "Compile an ordered builder element sequence into a CQL string plus a structural validity flag.",
			OperationID: "CompileQuery",
			Parameters: []Parameter{
				{
					Name:        "validate",
					In:          "query",
					Description: "If `1`, the compiled string is also checked via the remote parsing service (when configured).",
					Required:    false,
					Schema: ParamSchema{
						Type: "integer",
					},
				},
			},
			RequestBody: jsonObjectBody("An object with an `elements` list describing the structured query."),
		},
	}

	paths["/sketch-query"] = Methods{
		Get: &Method{
			Description: "Derive a dependency-constrained CQL query with KWIC keyword/highlight assignment for a clicked word sketch row.",
			OperationID: "SketchQuery",
			Parameters: []Parameter{
				{
					Name:        "w",
					In:          "query",
					Description: "The main (clicked) word.",
					Required:    true,
					Schema: ParamSchema{
						Type: "string",
					},
				},
				{
					Name:        "c",
					In:          "query",
					Description: "The collocate.",
					Required:    true,
					Schema: ParamSchema{
						Type: "string",
					},
				},
				{
					Name:        "rel",
					In:          "query",
					Description: "A grammatical relation name (e.g. `nouns_modified_by`).",
					Required:    true,
					Schema: ParamSchema{
						Type: "string",
					},
				},
				{
					Name:        "matchMode",
					In:          "query",
					Description: "Match by `word` or `lemma`. By default, `lemma` is used.",
					Required:    false,
					Schema: ParamSchema{
						Type: "string",
					},
				},
			},
		},
	}

	paths["/sketch-relations"] = Methods{
		Get: &Method{
			Description: "Shows the configured grammatical relation table.",
			OperationID: "Relations",
		},
	}

	paths["/templates"] = Methods{
		Get: &Method{
			Description: "Shows stored CQL templates, most recently saved first.",
			OperationID: "ListTemplates",
		},
		Post: &Method{
			Description: "Store a named CQL snippet along with its source builder elements.",
			OperationID: "SaveTemplate",
			RequestBody: jsonObjectBody("An object with `name`, `cql` and `elements` properties."),
		},
	}

	paths["/templates/{templateId}"] = Methods{
		Delete: &Method{
			Description: "Remove a stored template.",
			OperationID: "DeleteTemplate",
			Parameters: []Parameter{
				{
					Name:        "templateId",
					In:          "path",
					Description: "An ID of the template to remove.",
					Required:    true,
					Schema: ParamSchema{
						Type: "string",
					},
				},
			},
		},
	}

	paths["/parse"] = Methods{
		Get: &Method{
			Description: "Check a candidate CQL query against the remote parsing service.",
			OperationID: "ParseQuery",
			Parameters: []Parameter{
				{
					Name:        "q",
					In:          "query",
					Description: "The query to check.",
					Required:    true,
					Schema: ParamSchema{
						Type: "string",
					},
				},
			},
		},
	}

	return &Response{
		OpenAPI: "3.1.0",
		Info: Info{
			Title:       "CQLBUILD - a CQL compilation and word sketch query derivation service",
			Description: "Compiles structured builder queries into CQL, derives dependency-constrained queries for word sketch relations and manages stored CQL templates.",
			Version:     ver,
		},
		Servers: []Server{
			{URL: url},
		},
		Paths: paths,
	}
}
