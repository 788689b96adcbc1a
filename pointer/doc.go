// Package pointer implements RFC 6901 JSON pointers over ir.Node trees.
//
// A Pointer is the parsed form: a slice of unescaped reference tokens.
// Parse and String convert between the text form and the parsed form,
// handling the '~0' and '~1' escapes. Resolve and ResolveParent address
// nodes in a document; they only ever read it.
//
// Two error classes cover all failures: ErrInvalid for addresses that
// are malformed or use a token where its form is not permitted, and
// ErrNotFound for well-formed addresses that do not resolve against the
// document. Callers test them with errors.Is.
package pointer
