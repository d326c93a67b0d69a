package invoke

import (
	"github.com/wippyai/bytegen/bytecode"
	"github.com/wippyai/bytegen/member"
)

// Dispatch is the category of call instruction used for an invocation.
type Dispatch uint8

const (
	// Static binds directly to a static method.
	Static Dispatch = iota + 1
	// Special binds directly to one implementation on a receiver:
	// constructors, private methods, default methods and super calls.
	Special
	// Virtual resolves through the receiver's class.
	Virtual
	// Interface resolves through the receiver's class for a method whose
	// static owner is an interface.
	Interface
)

// Opcode returns the instruction emitted for d.
func (d Dispatch) Opcode() bytecode.Opcode {
	switch d {
	case Static:
		return bytecode.InvokeStatic
	case Special:
		return bytecode.InvokeSpecial
	case Virtual:
		return bytecode.InvokeVirtual
	case Interface:
		return bytecode.InvokeInterface
	}
	panic("invoke: unknown dispatch")
}

// IsDynamic reports whether the target is resolved at run time.
func (d Dispatch) IsDynamic() bool {
	return d == Virtual || d == Interface
}

func (d Dispatch) String() string {
	switch d {
	case Static:
		return "static"
	case Special:
		return "special"
	case Virtual:
		return "virtual"
	case Interface:
		return "interface"
	}
	return "unknown"
}

// Natural returns the dispatch a member gets without an override.
// The first matching rule wins:
//
//	static                         → Static
//	private                        → Special
//	constructor                    → Special
//	default method                 → Special
//	declared on an interface       → Interface
//	otherwise                      → Virtual
func Natural(m member.MethodDescription) Dispatch {
	switch {
	case m.IsStatic():
		return Static
	case m.IsPrivate(), m.IsConstructor(), m.IsDefaultMethod():
		return Special
	case m.DeclaringType().IsInterface():
		return Interface
	}
	return Virtual
}

// isDispatchable reports whether m may be invoked through dynamic dispatch.
// Default methods qualify since implementations can override them.
func isDispatchable(m member.MethodDescription) bool {
	return !m.IsStatic() && !m.IsPrivate() && !m.IsConstructor()
}
