// SPDX-License-Identifier: MIT
package themes

// NeutralRole is the reserved role backing the UI text/background/border tokens.
const NeutralRole = "neutral"

// ColorRole binds a semantic role to a palette color name.
type ColorRole struct {
	Key   string
	Color string
}

// ColorMap is an ordered role -> color mapping. Generated CSS follows its order.
type ColorMap []ColorRole

// DefaultColors returns the built-in theme roles.
func DefaultColors() ColorMap {
	return ColorMap{
		{Key: "primary", Color: "green"},
		{Key: "secondary", Color: "blue"},
		{Key: "success", Color: "green"},
		{Key: "info", Color: "blue"},
		{Key: "warning", Color: "yellow"},
		{Key: "error", Color: "red"},
		{Key: NeutralRole, Color: "slate"},
	}
}

// Get returns the color bound to key.
func (m ColorMap) Get(key string) (string, bool) {
	for _, r := range m {
		if r.Key == key {
			return r.Color, true
		}
	}
	return "", false
}

// Set rebinds key in place, or appends it when the role is new.
func (m ColorMap) Set(key, color string) ColorMap {
	for i := range m {
		if m[i].Key == key {
			m[i].Color = color
			return m
		}
	}
	return append(m, ColorRole{Key: key, Color: color})
}

// Merge lays over on top of m. Roles already in m keep their position;
// roles only in over are appended in their own order. m is not modified.
func (m ColorMap) Merge(over ColorMap) ColorMap {
	out := make(ColorMap, len(m), len(m)+len(over))
	copy(out, m)
	for _, r := range over {
		out = out.Set(r.Key, r.Color)
	}
	return out
}

// Keys returns the role names in order.
func (m ColorMap) Keys() []string {
	keys := make([]string, 0, len(m))
	for _, r := range m {
		keys = append(keys, r.Key)
	}
	return keys
}

// WithoutNeutral drops the neutral role, which has no adaptive alias.
func (m ColorMap) WithoutNeutral() ColorMap {
	out := make(ColorMap, 0, len(m))
	for _, r := range m {
		if r.Key == NeutralRole {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Used returns the set of color names referenced by any role.
func (m ColorMap) Used() map[string]bool {
	used := make(map[string]bool, len(m))
	for _, r := range m {
		used[r.Color] = true
	}
	return used
}

// Variable is a literal custom property emitted verbatim under the prefix.
type Variable struct {
	Key   string
	Value string
}

// Variables is an ordered list of custom properties.
type Variables []Variable

// Set rebinds key in place, or appends it.
func (v Variables) Set(key, value string) Variables {
	for i := range v {
		if v[i].Key == key {
			v[i].Value = value
			return v
		}
	}
	return append(v, Variable{Key: key, Value: value})
}
