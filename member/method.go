package member

import (
	"strings"

	"github.com/wippyai/bytegen/bytecode"
	"github.com/wippyai/bytegen/stack"
)

// ConstructorName is the internal name of every constructor.
const ConstructorName = "<init>"

// Method is a synthetic MethodDescription.
// Methods are immutable after construction.
type Method struct {
	owner       *Type
	name        string
	descriptor  string
	params      []stack.Category
	returns     stack.Category
	static      bool
	private     bool
	abstract    bool
	constructor bool
}

// MethodOption configures a Method.
type MethodOption func(*Method)

// Static marks the method static.
func Static() MethodOption {
	return func(m *Method) { m.static = true }
}

// Private marks the method private.
func Private() MethodOption {
	return func(m *Method) { m.private = true }
}

// Abstract marks the method abstract.
func Abstract() MethodOption {
	return func(m *Method) { m.abstract = true }
}

// Constructor marks the method as a constructor. The name becomes <init>
// and the return category void.
func Constructor() MethodOption {
	return func(m *Method) {
		m.constructor = true
		m.name = ConstructorName
		m.returns = stack.Void
	}
}

// Returns sets the return category.
func Returns(c stack.Category) MethodOption {
	return func(m *Method) { m.returns = c }
}

// Params sets the parameter categories.
func Params(cs ...stack.Category) MethodOption {
	return func(m *Method) { m.params = append([]stack.Category(nil), cs...) }
}

// Descriptor sets the descriptor. A well-formed descriptor also replaces
// the parameter and return categories; use ParseSignature to reject a
// malformed one up front.
func Descriptor(desc string) MethodOption {
	return func(m *Method) { m.descriptor = desc }
}

// NewMethod creates a Method declared on owner. Without a Descriptor
// option the descriptor is derived from params and return category.
func NewMethod(owner *Type, name string, opts ...MethodOption) *Method {
	m := &Method{owner: owner, name: name}
	for _, opt := range opts {
		opt(m)
	}
	if m.descriptor == "" {
		m.descriptor = descriptorOf(m.params, m.returns)
		return m
	}
	if params, ret, err := ParseSignature(m.descriptor); err == nil {
		m.params, m.returns = params, ret
	}
	return m
}

// ParseSignature returns the parameter and return categories of a method
// descriptor.
func ParseSignature(desc string) ([]stack.Category, stack.Category, error) {
	mt, err := bytecode.ParseMethodDescriptor(desc)
	if err != nil {
		return nil, 0, err
	}
	params := make([]stack.Category, 0, len(mt.Params))
	for _, p := range mt.Params {
		c, _ := stack.CategoryOf(p)
		params = append(params, c)
	}
	ret, _ := stack.CategoryOf(mt.Return)
	return params, ret, nil
}

func descriptorOf(params []stack.Category, ret stack.Category) string {
	var b strings.Builder
	b.WriteByte('(')
	for _, p := range params {
		b.WriteString(p.Descriptor())
	}
	b.WriteByte(')')
	b.WriteString(ret.Descriptor())
	return b.String()
}

// DeclaringType implements MethodDescription.
func (m *Method) DeclaringType() TypeDescription {
	return m.owner
}

// Owner returns the declaring type as a *Type.
func (m *Method) Owner() *Type {
	return m.owner
}

// InternalName implements MethodDescription.
func (m *Method) InternalName() string {
	return m.name
}

// Descriptor implements MethodDescription.
func (m *Method) Descriptor() string {
	return m.descriptor
}

// IsStatic implements MethodDescription.
func (m *Method) IsStatic() bool {
	return m.static
}

// IsPrivate implements MethodDescription.
func (m *Method) IsPrivate() bool {
	return m.private
}

// IsAbstract reports whether the method has no body.
func (m *Method) IsAbstract() bool {
	return m.abstract
}

// IsConstructor implements MethodDescription.
func (m *Method) IsConstructor() bool {
	return m.constructor
}

// IsDefaultMethod implements MethodDescription.
func (m *Method) IsDefaultMethod() bool {
	return m.owner.IsInterface() && !m.static && !m.abstract && !m.private && !m.constructor
}

// ReturnType implements MethodDescription.
func (m *Method) ReturnType() stack.Category {
	return m.returns
}

// Params returns the parameter categories.
func (m *Method) Params() []stack.Category {
	return m.params
}

// StackSize implements MethodDescription.
func (m *Method) StackSize() int {
	size := 0
	if !m.static {
		size = stack.WidthSingle.Size()
	}
	for _, p := range m.params {
		size += stack.WidthOf(p).Size()
	}
	return size
}

// IsSpecializableFor implements MethodDescription.
//
// Static methods are never specializable. Private methods and constructors
// only bind on their declaring type. Other concrete methods bind on any
// type the declaring type is assignable from.
func (m *Method) IsSpecializableFor(candidate TypeDescription) bool {
	if candidate == nil || m.static {
		return false
	}
	if m.private || m.constructor {
		return candidate.InternalName() == m.owner.InternalName()
	}
	if m.abstract {
		return false
	}
	return m.owner.IsAssignableFrom(candidate)
}

func (m *Method) String() string {
	return Signature(m)
}
