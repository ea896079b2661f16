package dom

// Attributes is an insertion-ordered string-to-string map, as element
// attributes must render and serialize in the order they were set.
// Overwriting an existing key keeps its original position.
type Attributes struct {
	keys []string
	vals map[string]string
}

// NewAttributes creates an empty attribute set.
func NewAttributes() *Attributes {
	return &Attributes{vals: make(map[string]string)}
}

// Set stores value under key, appending the key on first write.
func (a *Attributes) Set(key, value string) {
	if _, ok := a.vals[key]; !ok {
		a.keys = append(a.keys, key)
	}
	a.vals[key] = value
}

// Get returns the value stored under key.
func (a *Attributes) Get(key string) (string, bool) {
	v, ok := a.vals[key]
	return v, ok
}

// Has reports whether key is present.
func (a *Attributes) Has(key string) bool {
	_, ok := a.vals[key]
	return ok
}

// Len returns the number of attributes.
func (a *Attributes) Len() int {
	return len(a.keys)
}

// Keys returns the attribute keys in insertion order. The returned
// slice is owned by the map and must not be modified.
func (a *Attributes) Keys() []string {
	return a.keys
}
