package parser

// Registry is the ordered collection of objects opened so far, used to
// resolve reference-typed fields. An object is registered the moment its
// header line is parsed, so a field may reference any object declared at or
// before its own line, but never one declared later in the file.
//
// A registry can be reused across parses to let later files reference
// earlier ones; call Reset for an independent run. Duplicate names are
// permitted and all copies retained (closing that gap is on the roadmap, the
// current behavior is kept deliberately).
//
// Registry is not safe for concurrent use; the engine is a strictly
// sequential single pass.
type Registry struct {
	objects []*Object
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{objects: make([]*Object, 0, DefaultMaxObjects)}
}

// Reset discards every registered object.
func (r *Registry) Reset() {
	r.objects = r.objects[:0]
}

// Add appends obj. No duplicate detection is performed.
func (r *Registry) Add(obj *Object) {
	r.objects = append(r.objects, obj)
}

// Lookup returns the first object registered under name, or nil.
func (r *Registry) Lookup(name string) *Object {
	for _, obj := range r.objects {
		if obj.Name == name {
			return obj
		}
	}
	return nil
}

// Len returns the number of registered objects, duplicates included.
func (r *Registry) Len() int {
	return len(r.objects)
}
