package invoke

import (
	"go.uber.org/zap"

	"github.com/wippyai/bytegen/bytecode"
	"github.com/wippyai/bytegen/errors"
	"github.com/wippyai/bytegen/member"
	"github.com/wippyai/bytegen/stack"
)

var (
	_ stack.Manipulation = (*Invocation)(nil)
	_ stack.Consumer     = (*Invocation)(nil)
)

// Invocation is a stack manipulation emitting one method call instruction.
//
// Invocations are immutable and may be shared and re-applied; each Apply
// emits the same instruction.
type Invocation struct {
	method   member.MethodDescription
	owner    member.TypeDescription
	dispatch Dispatch
}

// Invoke builds the natural invocation of m, see Natural. It never fails.
func Invoke(m member.MethodDescription) *Invocation {
	inv := &Invocation{
		method:   m,
		owner:    m.DeclaringType(),
		dispatch: Natural(m),
	}
	Logger().Debug("invocation selected",
		zap.String("method", member.Signature(m)),
		zap.Stringer("dispatch", inv.dispatch))
	return inv
}

// Special returns an invocation of the same method bound directly to
// target, as needed for super calls. It fails with an invalid-argument
// error when the member cannot be specialized for target.
func (i *Invocation) Special(target member.TypeDescription) (*Invocation, error) {
	if target == nil || !i.method.IsSpecializableFor(target) {
		err := errors.New(errors.PhaseSelect, errors.KindInvalidArgument).
			Member(member.Signature(i.method)).
			Target(targetName(target)).
			Detail("not a legal target for a special invocation").
			Build()
		Logger().Debug("special invocation rejected", zap.Error(err))
		return nil, err
	}
	return &Invocation{
		method:   i.method,
		owner:    target,
		dispatch: Special,
	}, nil
}

// Virtual returns an invocation of the same method dispatched through
// target: Interface when target is an interface, Virtual otherwise.
//
// Static, private and constructor members fail with an invalid-state error
// whatever the target. A target that is not a subtype of the declaring type
// fails with an invalid-argument error.
func (i *Invocation) Virtual(target member.TypeDescription) (*Invocation, error) {
	sig := member.Signature(i.method)
	if !isDispatchable(i.method) {
		err := errors.InvalidState(errors.PhaseSelect, sig,
			"static, private and constructor methods cannot be dispatched virtually")
		Logger().Debug("virtual invocation rejected", zap.Error(err))
		return nil, err
	}
	if target == nil || !i.method.DeclaringType().IsAssignableFrom(target) {
		err := errors.New(errors.PhaseSelect, errors.KindInvalidArgument).
			Member(sig).
			Target(targetName(target)).
			Detail("target is not a subtype of %s", i.method.DeclaringType().InternalName()).
			Build()
		Logger().Debug("virtual invocation rejected", zap.Error(err))
		return nil, err
	}

	d := Virtual
	if target.IsInterface() {
		d = Interface
	}
	return &Invocation{
		method:   i.method,
		owner:    target,
		dispatch: d,
	}, nil
}

// IsValid implements stack.Manipulation. Invocations are always valid.
func (i *Invocation) IsValid() bool {
	return true
}

// Apply implements stack.Manipulation. It emits exactly one instruction to
// v and never touches ctx.
func (i *Invocation) Apply(v bytecode.Visitor, _ stack.Context) stack.Size {
	v.MethodInsn(i.dispatch.Opcode(), i.owner.InternalName(), i.method.InternalName(), i.method.Descriptor())
	return i.Size()
}

// Size returns the stack effect of the emitted instruction: the return
// value is pushed after receiver and arguments are popped, so the peak
// never exceeds the net result.
func (i *Invocation) Size() stack.Size {
	impact := stack.WidthOf(i.method.ReturnType()).Size() - i.method.StackSize()
	return stack.NewSize(impact, max(0, impact))
}

// Consumed implements stack.Consumer: receiver and arguments.
func (i *Invocation) Consumed() int {
	return i.method.StackSize()
}

// Dispatch returns the selected dispatch.
func (i *Invocation) Dispatch() Dispatch {
	return i.dispatch
}

// Owner returns the type named in the emitted instruction.
func (i *Invocation) Owner() member.TypeDescription {
	return i.owner
}

// Method returns the invoked member.
func (i *Invocation) Method() member.MethodDescription {
	return i.method
}

func (i *Invocation) String() string {
	return i.dispatch.Opcode().String() + " " + i.owner.InternalName() + "." +
		i.method.InternalName() + i.method.Descriptor()
}

func targetName(t member.TypeDescription) string {
	if t == nil {
		return "<nil>"
	}
	return t.InternalName()
}
