// Package schema defines the wire JSON shapes of a protocol document, per
// spec §6. Decoding never performs semantic validation: it only recovers
// Go values from JSON text. internal/loader is responsible for turning
// these into internal/ir type records.
package schema

import (
	"encoding/json"
	"fmt"

	"github.com/protoir/protoir/internal/expr"
)

// Document is the top-level protocol JSON document.
type Document struct {
	Construct   string            `json:"construct"`
	Name        string            `json:"name"`
	Definitions []json.RawMessage `json:"definitions"`
	PDUs        []PDURef          `json:"pdus"`
}

// PDURef names a single top-level PDU type.
type PDURef struct {
	Type string `json:"type"`
}

// tagPeek recovers only the "construct" discriminator from a definition,
// to decide which concrete shape to decode it as.
type tagPeek struct {
	Construct string `json:"construct"`
}

// ConstructTag returns the "construct" discriminator of a raw definition.
func ConstructTag(raw json.RawMessage) (string, error) {
	var peek tagPeek
	if err := json.Unmarshal(raw, &peek); err != nil {
		return "", fmt.Errorf("schema: %w", err)
	}
	return peek.Construct, nil
}

// BitStringDef is the {name, size} shape.
type BitStringDef struct {
	Name string `json:"name"`
	Size int    `json:"size"`
}

// ArrayDef is the {name, element_type, length} shape. Length is nil when
// the document specifies null (unknown length).
type ArrayDef struct {
	Name        string `json:"name"`
	ElementType string `json:"element_type"`
	Length      *int   `json:"length"`
}

// TransformDef is a field's optional {into_name, into_type, using}.
type TransformDef struct {
	IntoName string `json:"into_name"`
	IntoType string `json:"into_type"`
	Using    string `json:"using"`
}

// FieldDef is one entry of a StructDef's field list.
type FieldDef struct {
	Name      string          `json:"name"`
	Type      string          `json:"type"`
	IsPresent expr.Expression `json:"is_present"`
	Transform *TransformDef   `json:"transform"`
}

// StructDef is the {name, fields, constraints, actions} shape.
type StructDef struct {
	Name        string            `json:"name"`
	Fields      []FieldDef        `json:"fields"`
	Constraints []expr.Expression `json:"constraints"`
	Actions     []expr.Expression `json:"actions"`
}

// VariantDef names one tagged-union alternative.
type VariantDef struct {
	Type string `json:"type"`
}

// EnumDef is the {name, variants} shape.
type EnumDef struct {
	Name     string       `json:"name"`
	Variants []VariantDef `json:"variants"`
}

// NewTypeDef is the {name, derived_from, implements} shape.
type NewTypeDef struct {
	Name        string   `json:"name"`
	DerivedFrom string   `json:"derived_from"`
	Implements  []string `json:"implements"`
}

// ParamDef is a function parameter or context field entry.
type ParamDef struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// FunctionDef is the {name, parameters, return_type} shape.
type FunctionDef struct {
	Name       string     `json:"name"`
	Parameters []ParamDef `json:"parameters"`
	ReturnType string     `json:"return_type"`
}

// ContextDef is the {fields} shape.
type ContextDef struct {
	Fields []ParamDef `json:"fields"`
}
