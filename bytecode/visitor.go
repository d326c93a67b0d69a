package bytecode

import "fmt"

// Visitor receives emitted instructions. Implementations are owned by a
// single code generation session.
type Visitor interface {
	// MethodInsn appends a method invocation instruction.
	MethodInsn(op Opcode, owner, name, desc string)
}

// VisitorFunc is an adapter to use ordinary functions as Visitors.
type VisitorFunc func(op Opcode, owner, name, desc string)

// MethodInsn implements Visitor.
func (f VisitorFunc) MethodInsn(op Opcode, owner, name, desc string) {
	f(op, owner, name, desc)
}

// Instruction is a recorded method invocation instruction.
type Instruction struct {
	Owner      string
	Name       string
	Descriptor string
	Opcode     Opcode
}

// String renders the instruction in assembler form.
func (i Instruction) String() string {
	return fmt.Sprintf("%s %s.%s%s", i.Opcode, i.Owner, i.Name, i.Descriptor)
}

// Recorder is a Visitor that keeps every instruction it receives.
type Recorder struct {
	Instructions []Instruction
}

// MethodInsn implements Visitor.
func (r *Recorder) MethodInsn(op Opcode, owner, name, desc string) {
	r.Instructions = append(r.Instructions, Instruction{
		Opcode:     op,
		Owner:      owner,
		Name:       name,
		Descriptor: desc,
	})
}

// Reset drops all recorded instructions.
func (r *Recorder) Reset() {
	r.Instructions = r.Instructions[:0]
}

// Replay sends every recorded instruction to v in order.
func (r *Recorder) Replay(v Visitor) {
	for _, in := range r.Instructions {
		v.MethodInsn(in.Opcode, in.Owner, in.Name, in.Descriptor)
	}
}

// Tee returns a Visitor forwarding each instruction to all of vs.
func Tee(vs ...Visitor) Visitor {
	return VisitorFunc(func(op Opcode, owner, name, desc string) {
		for _, v := range vs {
			v.MethodInsn(op, owner, name, desc)
		}
	})
}
