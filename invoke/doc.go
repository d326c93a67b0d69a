// Package invoke selects the call instruction for a callable member and
// reports its effect on the operand stack.
//
// # Selection
//
// Invoke picks the natural dispatch from the member's modifiers:
//
//	inv := invoke.Invoke(method)
//	size := inv.Apply(visitor, ctx) // one invokevirtual/… instruction
//
// Two overrides bind the call to an explicit target type:
//
//	super, err := inv.Special(parent)   // invokespecial parent.m
//	narrow, err := inv.Virtual(subtype) // invokevirtual or invokeinterface subtype.m
//
// Overrides are validated eagerly. An illegal special target yields an
// error matching errors.ErrInvalidArgument; a member that can never be
// dispatched dynamically yields errors.ErrInvalidState. No invocation is
// returned in either case.
//
// # Stack Effect
//
// Apply returns SizeImpact = width(return) - StackSize() and
// MaximalSize = max(0, SizeImpact).
//
// # Thread Safety
//
// Invocations are immutable and safe to share. The visitor and context
// passed to Apply belong to one code generation session.
package invoke
