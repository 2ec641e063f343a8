package sqlbuilder

// UpdateSet is an ordered collection of field updates. Keys are unique and
// iteration follows first-insertion order, so the clause text and
// placeholder numbering a set produces never depend on map iteration.
type UpdateSet struct {
	names  []string
	values map[string]Scalar
}

// NewUpdateSet returns an empty UpdateSet.
func NewUpdateSet() *UpdateSet {
	return &UpdateSet{values: make(map[string]Scalar)}
}

// Set adds a field update and returns the receiver for chaining. Setting a
// field that is already present replaces its value in place; the field
// keeps its original position.
func (u *UpdateSet) Set(name string, value Scalar) *UpdateSet {
	if _, ok := u.values[name]; !ok {
		u.names = append(u.names, name)
	}
	u.values[name] = value
	return u
}

// Len reports the number of fields in the set. A nil set is empty.
func (u *UpdateSet) Len() int {
	if u == nil {
		return 0
	}
	return len(u.names)
}
