// Package text holds small string normalisation helpers shared by request types.
package text

import "strings"

// Squash trims s and collapses every run of whitespace into a single space.
func Squash(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// SquashPtr applies Squash to the string p points to. A nil pointer is left alone.
func SquashPtr(p *string) {
	if p == nil {
		return
	}
	*p = Squash(*p)
}
