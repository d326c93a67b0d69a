// Package bytegen selects call instructions for a stack machine and accounts
// for their effect on the operand stack.
//
// It is the invocation layer of a runtime code generator: given a
// description of a callable member it picks invokestatic, invokespecial,
// invokevirtual or invokeinterface, validates explicit dispatch overrides
// and reports how the instruction changes the operand stack depth.
//
// # Architecture Overview
//
//	bytegen/             Root package (documentation only)
//	├── invoke/          Call-site instruction selector
//	├── stack/           Stack sizes, slot widths, manipulations, depth tracker
//	├── member/          Type and method descriptions, synthetic model, YAML catalog
//	├── bytecode/        Instruction sinks: recorder, printer, class file writer
//	├── errors/          Structured error types
//	└── cmd/callsite/    CLI and interactive explorer
//
// # Quick Start
//
//	object := member.NewType("java/lang/Object")
//	hashCode := member.NewMethod(object, "hashCode", member.Returns(stack.Int))
//
//	w := bytecode.NewWriter()
//	size := invoke.Invoke(hashCode).Apply(w, stack.NewSession())
//	// w.Code() == b6 00 06, size.SizeImpact() == 0
//
// Bind a super call or narrow a virtual call:
//
//	super, err := invoke.Invoke(hashCode).Special(parent)
//	narrow, err := invoke.Invoke(hashCode).Virtual(subtype)
//
// Both overrides fail fast with errors matching errors.ErrInvalidArgument or
// errors.ErrInvalidState; no invocation is returned.
//
// # Stack Verification
//
// Sizes compose with Size.Aggregate and stack.Compound. A stack.Tracker
// applies manipulations in order and checks the running depth against the
// method's declared max stack:
//
//	tr := stack.NewTracker(maxStack)
//	if err := tr.Apply(stack.NewCompound(a, b, c), w, ctx); err != nil {
//	    // errors.ErrStackOverflow, errors.ErrStackUnderflow or errors.ErrInvalidState
//	}
//
// # Thread Safety
//
// Invocations, sizes and member descriptions are immutable and safe to
// share. Visitors, sessions and trackers belong to one code generation
// session and are NOT safe for concurrent use.
package bytegen
