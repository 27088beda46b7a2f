// Package validation checks decoded request payloads against their struct tags.
package validation

type Validator interface {
	// ValidateStruct returns one message per invalid field, keyed by the
	// field's json path. It returns nil when s is valid.
	ValidateStruct(s any) map[string]string
}
