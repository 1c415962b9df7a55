package value

// Map is an insertion-ordered string-keyed map. Go's builtin map has no
// iteration order; a table-splitting pass (array-record's elemMatch/field
// partition) and the explain/trace text both need to replay keys in the
// order a document declared them, so Map pairs a slice of keys with an
// index for O(1) Get/Set (Delete is linear in the number of keys, since it
// re-indexes the keys after the removed one), the generalization of
// foundations/table.h's hash table that remembers order.
type Map struct {
	keys    []string
	values  map[string]*Value
	order   map[string]int
}

func NewMap() *Map {
	return &Map{values: map[string]*Value{}, order: map[string]int{}}
}

func (m *Map) Len() int { return len(m.keys) }

func (m *Map) Get(key string) (*Value, bool) {
	v, ok := m.values[key]
	return v, ok
}

// GetOrNull returns the value for key, or a Null Value if absent.
func (m *Map) GetOrNull(key string) *Value {
	if v, ok := m.values[key]; ok {
		return v
	}
	return Null()
}

func (m *Map) Set(key string, v *Value) {
	if _, exists := m.values[key]; !exists {
		m.order[key] = len(m.keys)
		m.keys = append(m.keys, key)
	}
	m.values[key] = v
}

func (m *Map) Delete(key string) {
	idx, exists := m.order[key]
	if !exists {
		return
	}
	delete(m.values, key)
	delete(m.order, key)
	m.keys = append(m.keys[:idx], m.keys[idx+1:]...)
	for i := idx; i < len(m.keys); i++ {
		m.order[m.keys[i]] = i
	}
}

// Each visits entries in insertion order.
func (m *Map) Each(fn func(key string, v *Value)) {
	for _, k := range m.keys {
		fn(k, m.values[k])
	}
}

func (m *Map) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Merge copies other's entries into m, appending new keys in other's order
// and overwriting values for keys that already exist. This is the ordered
// equivalent of foundations/table.c's mongory_table_merge, used by the
// array-record matcher to fold an explicit "$elemMatch" table's contents
// into the element-match table it builds.
func (m *Map) Merge(other *Map) {
	other.Each(func(k string, v *Value) {
		m.Set(k, v)
	})
}
