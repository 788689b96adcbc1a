package pointer

import (
	"fmt"
	"strconv"
	"strings"
)

// Append is the array token addressing the position one past the last
// element. It is only meaningful when adding.
const Append = "-"

// Pointer is a parsed RFC 6901 JSON pointer: a sequence of unescaped
// reference tokens. The empty Pointer addresses the whole document.
type Pointer []string

// Parse parses an RFC 6901 pointer from its text form. The empty string
// is the root pointer; any other pointer starts with '/'. A '~' must be
// followed by '0' or '1'.
func Parse(s string) (Pointer, error) {
	if s == "" {
		return Pointer{}, nil
	}
	if s[0] != '/' {
		return nil, fmt.Errorf("pointer %q does not start with '/': %w", s, ErrInvalid)
	}
	parts := strings.Split(s[1:], "/")
	res := make(Pointer, len(parts))
	for i, part := range parts {
		tok, err := unescape(part)
		if err != nil {
			return nil, fmt.Errorf("pointer %q: %w", s, err)
		}
		res[i] = tok
	}
	return res, nil
}

// String renders p in RFC 6901 text form, escaping '~' and '/' in
// tokens. Parse(p.String()) gives back p.
func (p Pointer) String() string {
	if len(p) == 0 {
		return ""
	}
	var b strings.Builder
	for _, tok := range p {
		b.WriteByte('/')
		b.WriteString(escape(tok))
	}
	return b.String()
}

// Child returns a new pointer addressing token under p. The result does
// not share storage with p.
func (p Pointer) Child(token string) Pointer {
	res := make(Pointer, len(p)+1)
	copy(res, p)
	res[len(p)] = token
	return res
}

// Contains reports whether other addresses p's node or a node inside
// its subtree.
func (p Pointer) Contains(other Pointer) bool {
	if len(other) < len(p) {
		return false
	}
	for i, tok := range p {
		if other[i] != tok {
			return false
		}
	}
	return true
}

// Equal reports whether p and other address the same node.
func (p Pointer) Equal(other Pointer) bool {
	return len(p) == len(other) && p.Contains(other)
}

// Index parses an array index token: decimal digits with no sign and no
// leading zeros.
func Index(token string) (int, error) {
	if token == "" {
		return 0, fmt.Errorf("empty array index: %w", ErrInvalid)
	}
	if len(token) > 1 && token[0] == '0' {
		return 0, fmt.Errorf("array index %q has a leading zero: %w", token, ErrInvalid)
	}
	for i := 0; i < len(token); i++ {
		if token[i] < '0' || token[i] > '9' {
			return 0, fmt.Errorf("invalid array index %q: %w", token, ErrInvalid)
		}
	}
	n, err := strconv.Atoi(token)
	if err != nil {
		return 0, fmt.Errorf("invalid array index %q: %w", token, ErrInvalid)
	}
	return n, nil
}

func escape(tok string) string {
	if !strings.ContainsAny(tok, "~/") {
		return tok
	}
	tok = strings.ReplaceAll(tok, "~", "~0")
	return strings.ReplaceAll(tok, "/", "~1")
}

func unescape(tok string) (string, error) {
	if !strings.Contains(tok, "~") {
		return tok, nil
	}
	var b strings.Builder
	for i := 0; i < len(tok); i++ {
		c := tok[i]
		if c != '~' {
			b.WriteByte(c)
			continue
		}
		i++
		if i == len(tok) {
			return "", fmt.Errorf("dangling '~' in token %q: %w", tok, ErrInvalid)
		}
		switch tok[i] {
		case '0':
			b.WriteByte('~')
		case '1':
			b.WriteByte('/')
		default:
			return "", fmt.Errorf("bad escape %q in token %q: %w", tok[i-1:i+1], tok, ErrInvalid)
		}
	}
	return b.String(), nil
}
