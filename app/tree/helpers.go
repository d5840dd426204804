package tree

// TextOf flattens a child value to its character data: a Text directly,
// a Node's accumulated text, or the first entry of a List.
func TextOf(v Value) string {
	switch x := v.(type) {
	case Text:
		return string(x)
	case *Node:
		return x.Text
	case List:
		if len(x) > 0 {
			return TextOf(x[0])
		}
	}
	return ""
}

// First unwraps a List to its head; any other value passes through.
func First(v Value) Value {
	if list, ok := v.(List); ok {
		if len(list) == 0 {
			return nil
		}
		return list[0]
	}
	return v
}

// Each calls f for the value itself, or for every entry of a List.
func Each(v Value, f func(Value)) {
	if list, ok := v.(List); ok {
		for _, e := range list {
			f(e)
		}
		return
	}
	if v != nil {
		f(v)
	}
}

// AttrOf returns the first non-empty attribute among names on v
// (unwrapping a List to its head).
func AttrOf(v Value, names ...string) string {
	n, ok := First(v).(*Node)
	if !ok {
		return ""
	}
	for _, name := range names {
		if s := n.Attr(name); s != "" {
			return s
		}
	}
	return ""
}

// ChildOf returns the named child of v (unwrapping a List to its head).
func ChildOf(v Value, key string) (Value, bool) {
	n, ok := First(v).(*Node)
	if !ok {
		return nil, false
	}
	return n.Children.Get(key)
}

// ChildText returns the flattened text of the named child of v.
func ChildText(v Value, key string) string {
	c, ok := ChildOf(v, key)
	if !ok {
		return ""
	}
	return TextOf(c)
}
