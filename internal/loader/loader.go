// Package loader implements spec §4.4: it dispatches over the top-level
// JSON document, in declaration order, to the matching internal/ir type
// constructor, then resolves the PDU list.
package loader

import (
	"encoding/json"
	"fmt"

	"github.com/protoir/protoir/internal/config"
	"github.com/protoir/protoir/internal/ir"
	"github.com/protoir/protoir/internal/schema"
	"github.com/protoir/protoir/internal/validate"
)

// Load parses and validates a protocol JSON document, returning a
// complete, immutable IR or the first validation failure encountered.
// loadID is an opaque correlation identifier attached to the resulting
// Protocol (see cmd/protoir and the root package for how it is minted).
func Load(data []byte, cfg config.Config, loadID string) (*ir.Protocol, error) {
	if cfg.ShapeValidation {
		if err := validate.ShapeCheck(data); err != nil {
			return nil, err
		}
	}

	var doc schema.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("loader: decoding document: %w", err)
	}

	if doc.Construct != "Protocol" {
		return nil, fmt.Errorf("loader: top-level construct must be %q, got %q", "Protocol", doc.Construct)
	}
	if !ir.IsTypeName(doc.Name) {
		return nil, fmt.Errorf("loader: malformed protocol name %q", doc.Name)
	}

	p := ir.NewProtocol(doc.Name, loadID)

	for i, raw := range doc.Definitions {
		tag, err := schema.ConstructTag(raw)
		if err != nil {
			return nil, fmt.Errorf("loader: definitions[%d]: %w", i, err)
		}
		if err := dispatch(p, tag, raw); err != nil {
			return nil, fmt.Errorf("loader: definitions[%d] (%s): %w", i, tag, err)
		}
	}

	names := make([]string, 0, len(doc.PDUs))
	for _, ref := range doc.PDUs {
		names = append(names, ref.Type)
	}
	if err := p.SetPDUs(names); err != nil {
		return nil, fmt.Errorf("loader: pdus: %w", err)
	}

	return p, nil
}

func dispatch(p *ir.Protocol, tag string, raw json.RawMessage) error {
	switch tag {
	case "BitString":
		return defineBitString(p, raw)
	case "Array":
		return defineArray(p, raw)
	case "Struct":
		return defineStruct(p, raw)
	case "Enum":
		return defineEnum(p, raw)
	case "NewType":
		return defineNewType(p, raw)
	case "Function":
		return defineFunction(p, raw)
	case "Context":
		return applyContext(p, raw)
	default:
		return fmt.Errorf("unknown construct %q", tag)
	}
}
