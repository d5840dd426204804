package tree

import (
	"bytes"
	"encoding/json"
)

// MarshalJSON renders the map as an object in insertion order.
func (m Map) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(m.m[key])
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

type nodeJSON struct {
	Name  string            `json:"name,omitempty"`
	Type  string            `json:"type,omitempty"`
	Attrs map[string]string `json:"attrs,omitempty"`
	Text  string            `json:"text,omitempty"`
	// Children is omitted when empty; Map marshals in insertion order.
	Children *Map `json:"children,omitempty"`
}

// MarshalJSON renders a node with its attributes, text and children.
func (n *Node) MarshalJSON() ([]byte, error) {
	out := nodeJSON{
		Name:  n.Name,
		Type:  n.Type,
		Attrs: n.Attrs,
		Text:  n.Text,
	}
	if n.Children.Len() > 0 {
		out.Children = &n.Children
	}
	return json.Marshal(out)
}
