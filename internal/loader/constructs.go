package loader

import (
	"encoding/json"
	"fmt"

	"github.com/protoir/protoir/internal/ir"
	"github.com/protoir/protoir/internal/schema"
)

func defineBitString(p *ir.Protocol, raw json.RawMessage) error {
	var def schema.BitStringDef
	if err := json.Unmarshal(raw, &def); err != nil {
		return fmt.Errorf("decoding BitString: %w", err)
	}
	_, err := ir.DefineBitString(p, def.Name, def.Size)
	return err
}

func defineArray(p *ir.Protocol, raw json.RawMessage) error {
	var def schema.ArrayDef
	if err := json.Unmarshal(raw, &def); err != nil {
		return fmt.Errorf("decoding Array: %w", err)
	}
	length := ir.UnknownLength
	if def.Length != nil {
		length = ir.KnownLength(*def.Length)
	}
	_, err := ir.DefineArray(p, def.Name, def.ElementType, length)
	return err
}

func defineStruct(p *ir.Protocol, raw json.RawMessage) error {
	var def schema.StructDef
	if err := json.Unmarshal(raw, &def); err != nil {
		return fmt.Errorf("decoding Struct: %w", err)
	}

	fields := make([]ir.FieldSpec, 0, len(def.Fields))
	for _, f := range def.Fields {
		spec := ir.FieldSpec{Name: f.Name, Type: f.Type, IsPresent: f.IsPresent}
		if f.Transform != nil {
			spec.Transform = &ir.TransformSpec{
				IntoName: f.Transform.IntoName,
				IntoType: f.Transform.IntoType,
				Using:    f.Transform.Using,
			}
		}
		fields = append(fields, spec)
	}

	_, err := ir.DefineStruct(p, def.Name, fields, def.Constraints, def.Actions)
	return err
}

func defineEnum(p *ir.Protocol, raw json.RawMessage) error {
	var def schema.EnumDef
	if err := json.Unmarshal(raw, &def); err != nil {
		return fmt.Errorf("decoding Enum: %w", err)
	}
	variants := make([]string, 0, len(def.Variants))
	for _, v := range def.Variants {
		variants = append(variants, v.Type)
	}
	_, err := ir.DefineEnum(p, def.Name, variants)
	return err
}

func defineNewType(p *ir.Protocol, raw json.RawMessage) error {
	var def schema.NewTypeDef
	if err := json.Unmarshal(raw, &def); err != nil {
		return fmt.Errorf("decoding NewType: %w", err)
	}
	_, err := ir.DefineNewType(p, def.Name, def.DerivedFrom, def.Implements)
	return err
}

func defineFunction(p *ir.Protocol, raw json.RawMessage) error {
	var def schema.FunctionDef
	if err := json.Unmarshal(raw, &def); err != nil {
		return fmt.Errorf("decoding Function: %w", err)
	}
	params := make([]ir.ParamSpec, 0, len(def.Parameters))
	for _, param := range def.Parameters {
		params = append(params, ir.ParamSpec{Name: param.Name, Type: param.Type})
	}
	_, err := ir.DefineFunction(p, def.Name, params, def.ReturnType)
	return err
}

func applyContext(p *ir.Protocol, raw json.RawMessage) error {
	var def schema.ContextDef
	if err := json.Unmarshal(raw, &def); err != nil {
		return fmt.Errorf("decoding Context: %w", err)
	}
	fields := make([]ir.ParamSpec, 0, len(def.Fields))
	for _, f := range def.Fields {
		fields = append(fields, ir.ParamSpec{Name: f.Name, Type: f.Type})
	}
	return ir.ApplyContext(p, fields)
}
