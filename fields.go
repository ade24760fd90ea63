package mdir

import "sort"

// Field is a single key/value pair.
type Field struct {
	Key   string
	Value string
}

// Fields is an ordered string mapping. It holds front matter and the
// result of Table.AsDict. The zero value is an empty mapping.
type Fields []Field

// FieldsFromMap builds Fields from m with keys in sorted order.
func FieldsFromMap(m map[string]string) Fields {
	if len(m) == 0 {
		return nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make(Fields, 0, len(keys))
	for _, k := range keys {
		out = append(out, Field{Key: k, Value: m[k]})
	}
	return out
}

// Len returns the number of pairs.
func (f Fields) Len() int { return len(f) }

// Get returns the value for key.
func (f Fields) Get(key string) (string, bool) {
	if i := f.index(key); i >= 0 {
		return f[i].Value, true
	}
	return "", false
}

// Value returns the value for key or the empty string.
func (f Fields) Value(key string) string {
	v, _ := f.Get(key)
	return v
}

// Has reports whether key is present.
func (f Fields) Has(key string) bool {
	return f.index(key) >= 0
}

// Set assigns value to key. An existing key keeps its position.
func (f *Fields) Set(key, value string) {
	if i := f.index(key); i >= 0 {
		(*f)[i].Value = value
		return
	}
	*f = append(*f, Field{Key: key, Value: value})
}

// Keys returns the keys in order.
func (f Fields) Keys() []string {
	if len(f) == 0 {
		return nil
	}
	keys := make([]string, len(f))
	for i, p := range f {
		keys[i] = p.Key
	}
	return keys
}

// Clone returns an independent copy.
func (f Fields) Clone() Fields {
	if f == nil {
		return nil
	}
	out := make(Fields, len(f))
	copy(out, f)
	return out
}

// Map returns the pairs as a Go map.
func (f Fields) Map() map[string]string {
	out := make(map[string]string, len(f))
	for _, p := range f {
		out[p.Key] = p.Value
	}
	return out
}

// Require returns a *ValidationError naming the first key that is missing
// or has an empty value.
func (f Fields) Require(keys ...string) error {
	for _, key := range keys {
		if f.Value(key) == "" {
			return Missing(key)
		}
	}
	return nil
}

func (f Fields) index(key string) int {
	for i := range f {
		if f[i].Key == key {
			return i
		}
	}
	return -1
}
