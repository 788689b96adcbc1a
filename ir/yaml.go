package ir

import (
	"github.com/goccy/go-yaml"
)

// FromYAML decodes a YAML document into a node tree by way of plain Go
// values. Mapping keys come out sorted; YAML has no reliable field order
// once decoded this way.
func FromYAML(data []byte) (*Node, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return FromAny(v)
}

// ToYAML encodes a node tree as YAML.
func ToYAML(node *Node) ([]byte, error) {
	v, err := ToAny(node)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(v)
}
