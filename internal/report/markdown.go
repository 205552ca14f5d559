// Package report renders a loaded protocol IR as Markdown, adapted from
// the teacher's internal/docgen/markdown.go (which walked an IDL AST)
// to instead walk an internal/ir.Protocol.
package report

import (
	"fmt"
	"strings"

	"github.com/protoir/protoir/internal/ir"
)

// Markdown renders a human-readable summary of a loaded protocol: its
// types (grouped by kind), its built-in and user traits, its context
// fields, and its PDU list.
func Markdown(p *ir.Protocol) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s\n\n", p.Name)

	sb.WriteString("## Types\n\n")
	for _, t := range p.Types() {
		sb.WriteString(typeSection(t))
	}

	sb.WriteString("## Traits\n\n")
	for _, tr := range p.Traits() {
		fmt.Fprintf(&sb, "- `%s` (%d method(s))\n", tr.Name, len(tr.Methods))
	}
	sb.WriteString("\n")

	if fields := p.ContextFields(); len(fields) > 0 {
		sb.WriteString("## Context\n\n")
		for _, f := range fields {
			fmt.Fprintf(&sb, "- `%s`: %s\n", f.Name, f.Type)
		}
		sb.WriteString("\n")
	}

	sb.WriteString("## PDUs\n\n")
	if len(p.PDUs) == 0 {
		sb.WriteString("_none_\n")
	}
	for _, name := range p.PDUs {
		fmt.Fprintf(&sb, "- `%s`\n", name)
	}

	return sb.String()
}

func typeSection(t *ir.Type) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "### `%s` (%s)\n\n", t.Name, t.Kind)
	if len(t.Traits) > 0 {
		fmt.Fprintf(&sb, "Implements: %s\n\n", strings.Join(t.Traits, ", "))
	}
	if size, ok := t.Attributes["size"].(ir.Size); ok {
		fmt.Fprintf(&sb, "Size: %s bits\n\n", size)
	}
	if fields, ok := t.Components["fields"].([]*ir.Field); ok && len(fields) > 0 {
		sb.WriteString("Fields:\n\n")
		for _, f := range fields {
			suffix := ""
			if f.Transform != nil {
				suffix = fmt.Sprintf(" (transformed into `%s`: `%s`)", f.Transform.IntoName, f.Transform.IntoType)
			}
			fmt.Fprintf(&sb, "- `%s`: `%s`%s\n", f.Name, f.Type, suffix)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
