package stack

import (
	"github.com/wippyai/bytegen/bytecode"
)

// Manipulation is a unit of emittable code with a declared effect on the
// operand stack.
//
// Manipulations are immutable once built and may be applied any number of
// times. Apply must only be called when IsValid reports true.
type Manipulation interface {
	// IsValid reports whether the manipulation represents legal code.
	IsValid() bool

	// Apply emits the code to v and returns its stack effect.
	Apply(v bytecode.Visitor, ctx Context) Size
}

// Consumer is implemented by manipulations that pop operands before
// pushing a result. Tracker requires Consumed slots on the stack before
// applying such a manipulation.
type Consumer interface {
	Consumed() int
}

// Func is an adapter to use ordinary functions as valid Manipulations.
type Func func(v bytecode.Visitor, ctx Context) Size

// IsValid implements Manipulation.
func (f Func) IsValid() bool {
	return true
}

// Apply implements Manipulation.
func (f Func) Apply(v bytecode.Visitor, ctx Context) Size {
	return f(v, ctx)
}

type illegal struct{}

// Illegal marks code that cannot be emitted. Composite builders return it
// when failure has to be deferred past construction.
var Illegal Manipulation = illegal{}

func (illegal) IsValid() bool {
	return false
}

func (illegal) Apply(bytecode.Visitor, Context) Size {
	panic("stack: illegal manipulation applied")
}

type trivial struct{}

// Trivial is valid, emits nothing and leaves the stack untouched.
var Trivial Manipulation = trivial{}

func (trivial) IsValid() bool {
	return true
}

func (trivial) Apply(bytecode.Visitor, Context) Size {
	return Zero
}

// Compound applies its parts in order.
type Compound []Manipulation

// NewCompound creates a Compound, flattening nested compounds.
func NewCompound(ms ...Manipulation) Compound {
	out := make(Compound, 0, len(ms))
	for _, m := range ms {
		if c, ok := m.(Compound); ok {
			out = append(out, c...)
			continue
		}
		out = append(out, m)
	}
	return out
}

// IsValid reports whether every part is valid.
func (c Compound) IsValid() bool {
	for _, m := range c {
		if !m.IsValid() {
			return false
		}
	}
	return true
}

// Apply applies every part and aggregates their sizes.
func (c Compound) Apply(v bytecode.Visitor, ctx Context) Size {
	size := Zero
	for _, m := range c {
		size = size.Aggregate(m.Apply(v, ctx))
	}
	return size
}
