package ir

import "sort"

// SetPDUs validates that every named type exists and stores the sorted
// list of PDU type names. Called once, after every definition in the
// document has been processed.
func (p *Protocol) SetPDUs(names []string) error {
	for _, name := range names {
		if !p.isTypeName(name) {
			return newErr(CategoryReference, "pdus", "PDU references unknown type %q", name)
		}
	}
	sorted := append([]string(nil), names...)
	sort.Strings(sorted)
	p.PDUs = sorted
	return nil
}
