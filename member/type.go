package member

// Type is a synthetic TypeDescription with an explicit hierarchy.
// Types are immutable after construction.
type Type struct {
	name       string
	super      *Type
	interfaces []*Type
	itf        bool
}

// TypeOption configures a Type.
type TypeOption func(*Type)

// Interface marks the type as an interface.
func Interface() TypeOption {
	return func(t *Type) {
		t.itf = true
	}
}

// Extends sets the super class.
func Extends(super *Type) TypeOption {
	return func(t *Type) {
		t.super = super
	}
}

// Implements adds directly implemented (or, for interfaces, extended)
// interfaces.
func Implements(itfs ...*Type) TypeOption {
	return func(t *Type) {
		t.interfaces = append(t.interfaces, itfs...)
	}
}

// NewType creates a Type with the given internal name.
func NewType(name string, opts ...TypeOption) *Type {
	t := &Type{name: name}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// InternalName implements TypeDescription.
func (t *Type) InternalName() string {
	return t.name
}

// IsInterface implements TypeDescription.
func (t *Type) IsInterface() bool {
	return t.itf
}

// Super returns the super class, or nil.
func (t *Type) Super() *Type {
	return t.super
}

// Interfaces returns the directly implemented interfaces.
func (t *Type) Interfaces() []*Type {
	return t.interfaces
}

// IsAssignableFrom implements TypeDescription. Types outside this package
// are only assignable when their names match.
func (t *Type) IsAssignableFrom(other TypeDescription) bool {
	if other == nil {
		return false
	}
	if other.InternalName() == t.name {
		return true
	}
	o, ok := other.(*Type)
	if !ok {
		return false
	}
	return t.inHierarchyOf(o, make(map[*Type]bool))
}

func (t *Type) inHierarchyOf(o *Type, seen map[*Type]bool) bool {
	if o == nil || seen[o] {
		return false
	}
	seen[o] = true
	if o.name == t.name {
		return true
	}
	if t.inHierarchyOf(o.super, seen) {
		return true
	}
	for _, itf := range o.interfaces {
		if t.inHierarchyOf(itf, seen) {
			return true
		}
	}
	return false
}

func (t *Type) String() string {
	return t.name
}
