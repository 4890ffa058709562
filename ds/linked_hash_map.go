package ds

// LinkedHashMap is a map that remembers the order in which keys were first put.
// Putting an existing key replaces its value but keeps its original position.
type LinkedHashMap[K comparable, V any] struct {
	hashMap  map[K]V
	ordering []K
}

func NewLinkedHashMap[K comparable, V any]() *LinkedHashMap[K, V] {
	return &LinkedHashMap[K, V]{
		hashMap:  map[K]V{},
		ordering: make([]K, 0),
	}
}

func (r *LinkedHashMap[K, V]) Len() int {
	return len(r.ordering)
}

func (r *LinkedHashMap[K, V]) Keys() []K {
	keys := make([]K, len(r.ordering))
	copy(keys, r.ordering)
	return keys
}

// Put stores value under key and reports whether the key already existed.
func (r *LinkedHashMap[K, V]) Put(key K, value V) bool {
	_, existed := r.hashMap[key]
	if !existed {
		r.ordering = append(r.ordering, key)
	}
	r.hashMap[key] = value
	return existed
}

func (r *LinkedHashMap[K, V]) Get(key K) (V, bool) {
	value, ok := r.hashMap[key]
	return value, ok
}

func (r *LinkedHashMap[K, V]) Values() []V {
	values := make([]V, 0, len(r.ordering))
	for _, key := range r.ordering {
		values = append(values, r.hashMap[key])
	}
	return values
}
