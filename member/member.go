package member

import (
	"github.com/wippyai/bytegen/stack"
)

// TypeDescription is a read-only view of a type that owns callable members.
type TypeDescription interface {
	// InternalName returns the binary name with '/' separators.
	InternalName() string

	IsInterface() bool

	// IsAssignableFrom reports whether a value of other can be used where
	// this type is expected.
	IsAssignableFrom(other TypeDescription) bool
}

// MethodDescription is a read-only view of a callable member.
type MethodDescription interface {
	DeclaringType() TypeDescription

	// InternalName returns the simple name, <init> for constructors.
	InternalName() string

	// Descriptor returns the type-erased signature, e.g. (IJ)V.
	Descriptor() string

	IsStatic() bool
	IsPrivate() bool
	IsConstructor() bool

	// IsDefaultMethod reports a concrete method declared on an interface.
	IsDefaultMethod() bool

	ReturnType() stack.Category

	// StackSize returns the slots consumed by the receiver, if any, and
	// all arguments.
	StackSize() int

	// IsSpecializableFor reports whether a non-dispatching call to this
	// member through candidate passes verification.
	IsSpecializableFor(candidate TypeDescription) bool
}

// Signature renders owner.name+descriptor for logs and errors.
func Signature(m MethodDescription) string {
	return m.DeclaringType().InternalName() + "." + m.InternalName() + m.Descriptor()
}
