// Package tree holds the intermediate element model the parser builds
// from tokenizer events before normalization.
//
// A child slot holds one of three shapes: Text (an element that
// collapsed to its character data), *Node (a single structured child),
// or List (two or more siblings sharing the same key). Normalizers
// accept any of the three through the helpers in this package.
package tree

// Value is the tagged variant stored in a Node's child map:
// Text, *Node, or List.
type Value interface {
	isValue()
}

// Text is an element that carried only character data.
type Text string

func (Text) isValue() {}

// Node is a structured element: qualified name, canonicalized
// attributes, accumulated character data and named children.
type Node struct {
	// Name is the qualified name as received (prefix:local or local).
	Name   string
	Prefix string
	Local  string
	URI    string

	// Type is the canonical dialect tag, attached when the element
	// closes: rss, rdf, atom, the canonical prefix of a registered
	// extension namespace, or else the declared prefix (empty for an
	// element in no namespace).
	Type string

	Attrs    map[string]string
	Text     string
	Children Map
}

func (*Node) isValue() {}

// List holds two or more same-keyed siblings in document order.
type List []Value

func (List) isValue() {}

// Attr returns the named attribute, or "".
func (n *Node) Attr(name string) string {
	if n == nil {
		return ""
	}
	return n.Attrs[name]
}

// SetAttr records an attribute, allocating the map on first use.
func (n *Node) SetAttr(name, value string) {
	if n.Attrs == nil {
		n.Attrs = make(map[string]string)
	}
	n.Attrs[name] = value
}

// Map is an insertion-ordered name-to-Value map. The zero value is
// ready to use.
type Map struct {
	keys []string
	m    map[string]Value
}

// Add inserts v under key. A duplicate key promotes the existing value
// to a List and appends.
func (m *Map) Add(key string, v Value) {
	if m.m == nil {
		m.m = make(map[string]Value)
	}
	existing, ok := m.m[key]
	if !ok {
		m.keys = append(m.keys, key)
		m.m[key] = v
		return
	}
	if list, isList := existing.(List); isList {
		m.m[key] = append(list, v)
		return
	}
	m.m[key] = List{existing, v}
}

// Set replaces the value under key, inserting it if absent.
func (m *Map) Set(key string, v Value) {
	if m.m == nil {
		m.m = make(map[string]Value)
	}
	if _, ok := m.m[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.m[key] = v
}

// Get returns the value under key.
func (m *Map) Get(key string) (Value, bool) {
	v, ok := m.m[key]
	return v, ok
}

// Keys returns the keys in insertion order.
func (m *Map) Keys() []string {
	return m.keys
}

// Len returns the number of keys.
func (m *Map) Len() int {
	return len(m.keys)
}

// Clear drops all entries.
func (m *Map) Clear() {
	m.keys = nil
	m.m = nil
}
