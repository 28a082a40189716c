package blocks

// Attributes holds a block's attribute set. Values are host-serializable
// scalars; numeric attributes may arrive as int, int64 or float64 depending
// on the decoder that produced them.
type Attributes map[string]any

// Clone returns a shallow copy.
func (a Attributes) Clone() Attributes {
	c := make(Attributes, len(a))
	for k, v := range a {
		c[k] = v
	}
	return c
}

// Merge returns a copy of a with partial applied on top. A nil value in
// partial deletes the attribute.
func (a Attributes) Merge(partial Attributes) Attributes {
	merged := a.Clone()
	for k, v := range partial {
		if v == nil {
			delete(merged, k)
			continue
		}
		merged[k] = v
	}
	return merged
}

// String returns the attribute as a string.
func (a Attributes) String(key string) (string, bool) {
	v, ok := a[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Int returns the attribute as an int, coercing int64 and float64.
func (a Attributes) Int(key string) (int, bool) {
	v, ok := a[key]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}

// Int64 returns the attribute as an int64, coercing int and float64.
func (a Attributes) Int64(key string) (int64, bool) {
	v, ok := a[key]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	case float64:
		return int64(n), true
	default:
		return 0, false
	}
}
