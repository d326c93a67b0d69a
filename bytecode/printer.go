package bytecode

import (
	"fmt"
	"io"
)

// Printer is a Visitor writing one assembler line per instruction.
// The first write error is kept and later instructions are dropped.
type Printer struct {
	w      io.Writer
	err    error
	indent string
}

// NewPrinter creates a Printer writing to w, prefixing lines with indent.
func NewPrinter(w io.Writer, indent string) *Printer {
	return &Printer{w: w, indent: indent}
}

// MethodInsn implements Visitor.
func (p *Printer) MethodInsn(op Opcode, owner, name, desc string) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, "%s%s %s.%s%s\n", p.indent, op, owner, name, desc)
}

// Err returns the first write error, if any.
func (p *Printer) Err() error {
	return p.err
}
