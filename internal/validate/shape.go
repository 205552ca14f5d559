// Package validate runs a coarse JSON-Schema shape pre-check of a raw
// protocol document before internal/loader attempts semantic loading. It
// catches malformed documents — missing top-level keys, a bogus
// "construct" tag — with a precise JSON-pointer location, matching spec
// §7's distinction between "shape" and "reference" error categories: a
// shape failure never reaches the semantic checker at all.
package validate

import (
	"bytes"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// documentSchema only constrains the outer envelope and the "construct"
// enum of each definition; it deliberately does not attempt to express
// per-kind field shapes (size vs. bounds, transform presence, ...) —
// those are exactly the internal/loader + internal/ir's job, and
// duplicating them here would drift.
const documentSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["construct", "name", "definitions", "pdus"],
  "properties": {
    "construct": {"const": "Protocol"},
    "name": {"type": "string"},
    "definitions": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["construct"],
        "properties": {
          "construct": {
            "enum": ["BitString", "Array", "Struct", "Enum", "NewType", "Function", "Context"]
          }
        }
      }
    },
    "pdus": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["type"],
        "properties": {"type": {"type": "string"}}
      }
    }
  }
}`

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

func schemaOnce() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(strings.NewReader(documentSchema))
		if err != nil {
			compileErr = fmt.Errorf("validate: invalid embedded schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("protoir://document.json", doc); err != nil {
			compileErr = fmt.Errorf("validate: adding schema resource: %w", err)
			return
		}
		sch, err := c.Compile("protoir://document.json")
		if err != nil {
			compileErr = fmt.Errorf("validate: compiling schema: %w", err)
			return
		}
		compiled = sch
	})
	return compiled, compileErr
}

// ShapeCheck validates the raw bytes of a protocol document against the
// coarse envelope schema. It runs before any semantic interpretation and
// is safe to call with documents that later turn out to be perfectly
// valid JSON but semantically wrong — those still pass this check.
func ShapeCheck(data []byte) error {
	sch, err := schemaOnce()
	if err != nil {
		return err
	}

	instance, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("validate: document is not valid JSON: %w", err)
	}

	if err := sch.Validate(instance); err != nil {
		return fmt.Errorf("validate: document shape: %w", err)
	}
	return nil
}
