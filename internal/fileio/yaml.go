package fileio

import (
	"bytes"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// EncodeYAML returns block-style YAML for v with sorted mapping keys.
func EncodeYAML(v any, indent int) ([]byte, error) {
	n, err := canonicalNode(v)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(indent)
	if err := enc.Encode(n); err != nil {
		_ = enc.Close()
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	out := bytes.TrimRight(buf.Bytes(), "\n")
	out = append(out, '\n')
	return out, nil
}

func keyNode(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}
}

func valueNode(v any) (*yaml.Node, error) {
	n := &yaml.Node{}
	if err := n.Encode(v); err != nil {
		return nil, err
	}
	return n, nil
}

func canonicalNode(v any) (*yaml.Node, error) {
	switch x := v.(type) {
	case nil:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}, nil
	case map[string]any:
		return canonicalMapNode(x)
	case []any:
		n := &yaml.Node{Kind: yaml.SequenceNode}
		for _, it := range x {
			c, err := canonicalNode(it)
			if err != nil {
				return nil, err
			}
			n.Content = append(n.Content, c)
		}
		return n, nil
	default:
		return valueNode(x)
	}
}

func canonicalMapNode(m map[string]any) (*yaml.Node, error) {
	n := &yaml.Node{Kind: yaml.MappingNode}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		c, err := canonicalNode(m[k])
		if err != nil {
			return nil, err
		}
		n.Content = append(n.Content, keyNode(k), c)
	}
	return n, nil
}

// normalizeYAML rewrites mappings with non-string keys, which yaml.v3
// decodes as map[any]any, into map[string]any so decoded YAML has the same
// shapes as decoded JSON.
func normalizeYAML(v any) any {
	switch x := v.(type) {
	case map[string]any:
		for k, it := range x {
			x[k] = normalizeYAML(it)
		}
		return x
	case map[any]any:
		m := make(map[string]any, len(x))
		for k, it := range x {
			m[fmt.Sprint(k)] = normalizeYAML(it)
		}
		return m
	case []any:
		for i, it := range x {
			x[i] = normalizeYAML(it)
		}
		return x
	default:
		return v
	}
}
