// Package diff compares two loaded protocol IRs, adapted from the
// teacher's schema-evolution diffing (internal/diff/diff.go) to operate
// on internal/ir.Protocol instead of a parsed IDL schema. It exists
// because spec §8 calls the IR "suitable for golden-file testing" and
// requires idempotent loads: comparing two loads is how a caller
// exercises that property, and it backs the `protoir diff` CLI command.
package diff

import (
	"fmt"
	"sort"

	"github.com/protoir/protoir/internal/ir"
)

// Severity classifies how disruptive a change is to a consumer that
// already depends on the base protocol.
type Severity string

const (
	SeverityBreaking    Severity = "breaking"
	SeverityNonBreaking Severity = "non_breaking"
)

// ChangeKind identifies what was added, removed, or changed.
type ChangeKind string

const (
	ChangeTypeAdded      ChangeKind = "type_added"
	ChangeTypeRemoved    ChangeKind = "type_removed"
	ChangeKindChanged    ChangeKind = "type_kind_changed"
	ChangeTraitAdded     ChangeKind = "trait_implemented"
	ChangeTraitRemoved   ChangeKind = "trait_no_longer_implemented"
	ChangeSizeChanged    ChangeKind = "size_changed"
	ChangePDUAdded       ChangeKind = "pdu_added"
	ChangePDURemoved     ChangeKind = "pdu_removed"
	ChangeContextAdded   ChangeKind = "context_field_added"
	ChangeContextRemoved ChangeKind = "context_field_removed"
)

// Change is a single detected difference between two protocols.
type Change struct {
	Kind     ChangeKind
	Severity Severity
	Subject  string // type, trait, or field name the change concerns
	Detail   string
}

// Result is the full set of changes between a base and head protocol.
type Result struct {
	BaseName      string
	HeadName      string
	Changes       []Change
	BreakingCount int
}

// Compare detects every difference between base and head, in the same
// spirit as the teacher's Differ: one pass per concern (types, traits,
// PDUs, context), folded into a single ordered Changes list.
func Compare(base, head *ir.Protocol) *Result {
	d := &differ{base: base, head: head}
	d.compareTypes()
	d.comparePDUs()
	d.compareContext()

	result := &Result{BaseName: base.Name, HeadName: head.Name, Changes: d.changes}
	for _, c := range d.changes {
		if c.Severity == SeverityBreaking {
			result.BreakingCount++
		}
	}
	return result
}

type differ struct {
	base, head *ir.Protocol
	changes    []Change
}

func (d *differ) add(kind ChangeKind, severity Severity, subject, detail string) {
	d.changes = append(d.changes, Change{Kind: kind, Severity: severity, Subject: subject, Detail: detail})
}

func (d *differ) compareTypes() {
	baseTypes := indexTypes(d.base)
	headTypes := indexTypes(d.head)

	for name, baseType := range baseTypes {
		headType, ok := headTypes[name]
		if !ok {
			d.add(ChangeTypeRemoved, SeverityBreaking, name, fmt.Sprintf("type %q was removed", name))
			continue
		}
		if baseType.Kind != headType.Kind {
			d.add(ChangeKindChanged, SeverityBreaking, name,
				fmt.Sprintf("type %q changed kind from %s to %s", name, baseType.Kind, headType.Kind))
		}
		d.compareTraits(name, baseType.Traits, headType.Traits)
		d.compareSize(name, baseType.Attributes["size"], headType.Attributes["size"])
	}
	for name := range headTypes {
		if _, ok := baseTypes[name]; !ok {
			d.add(ChangeTypeAdded, SeverityNonBreaking, name, fmt.Sprintf("type %q was added", name))
		}
	}
}

func (d *differ) compareTraits(typeName string, baseTraits, headTraits []string) {
	head := toSet(headTraits)
	for _, t := range baseTraits {
		if !head[t] {
			d.add(ChangeTraitRemoved, SeverityBreaking, typeName,
				fmt.Sprintf("type %q no longer implements %q", typeName, t))
		}
	}
	base := toSet(baseTraits)
	for _, t := range headTraits {
		if !base[t] {
			d.add(ChangeTraitAdded, SeverityNonBreaking, typeName,
				fmt.Sprintf("type %q now implements %q", typeName, t))
		}
	}
}

func (d *differ) compareSize(typeName string, baseSize, headSize any) {
	bs, bok := baseSize.(ir.Size)
	hs, hok := headSize.(ir.Size)
	if !bok || !hok {
		return
	}
	if bs != hs {
		d.add(ChangeSizeChanged, SeverityBreaking, typeName,
			fmt.Sprintf("type %q size changed from %s to %s", typeName, bs, hs))
	}
}

func (d *differ) comparePDUs() {
	base, head := toSet(d.base.PDUs), toSet(d.head.PDUs)
	for _, name := range d.base.PDUs {
		if !head[name] {
			d.add(ChangePDURemoved, SeverityBreaking, name, fmt.Sprintf("PDU %q was removed", name))
		}
	}
	for _, name := range d.head.PDUs {
		if !base[name] {
			d.add(ChangePDUAdded, SeverityNonBreaking, name, fmt.Sprintf("PDU %q was added", name))
		}
	}
}

func (d *differ) compareContext() {
	baseFields := indexContext(d.base)
	headFields := indexContext(d.head)
	for name := range baseFields {
		if _, ok := headFields[name]; !ok {
			d.add(ChangeContextRemoved, SeverityBreaking, name, fmt.Sprintf("context field %q was removed", name))
		}
	}
	for name := range headFields {
		if _, ok := baseFields[name]; !ok {
			d.add(ChangeContextAdded, SeverityNonBreaking, name, fmt.Sprintf("context field %q was added", name))
		}
	}
}

func indexTypes(p *ir.Protocol) map[string]*ir.Type {
	out := make(map[string]*ir.Type)
	for _, t := range p.Types() {
		out[t.Name] = t
	}
	return out
}

func indexContext(p *ir.Protocol) map[string]*ir.ContextField {
	out := make(map[string]*ir.ContextField)
	for _, f := range p.ContextFields() {
		out[f.Name] = f
	}
	return out
}

func toSet(values []string) map[string]bool {
	out := make(map[string]bool, len(values))
	for _, v := range values {
		out[v] = true
	}
	return out
}

// Sorted returns the result's changes ordered by subject, for stable
// rendering (golden-file friendly).
func (r *Result) Sorted() []Change {
	out := append([]Change(nil), r.Changes...)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Subject != out[j].Subject {
			return out[i].Subject < out[j].Subject
		}
		return out[i].Kind < out[j].Kind
	})
	return out
}
