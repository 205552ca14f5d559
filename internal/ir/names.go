package ir

import "regexp"

// typeNamePattern matches a legal type or trait name: a capital letter
// followed by one or more letters, digits, '$', or '_'.
var typeNamePattern = regexp.MustCompile(`^[A-Z][A-Za-z0-9$_]+$`)

// fieldNamePattern matches a legal function, field, parameter, or context
// field name: a lowercase letter followed by one or more letters, digits,
// '$', or '_'.
var fieldNamePattern = regexp.MustCompile(`^[a-z][A-Za-z0-9$_]+$`)

// IsTypeName reports whether s is a well-formed type or trait name.
func IsTypeName(s string) bool {
	return typeNamePattern.MatchString(s)
}

// IsFieldName reports whether s is a well-formed function, field, or
// parameter name.
func IsFieldName(s string) bool {
	return fieldNamePattern.MatchString(s)
}
