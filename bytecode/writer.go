package bytecode

import (
	"fmt"
	"math"

	"github.com/wippyai/bytegen/bytecode/internal/binary"
	"github.com/wippyai/bytegen/bytecode/internal/pool"
	"github.com/wippyai/bytegen/errors"
)

// Writer is a Visitor encoding instructions into the bytes of a Code
// attribute, allocating constant pool entries as it goes.
//
// Visitor methods cannot fail, so the first encoding error is kept and
// reported by Err; instructions after it are dropped.
type Writer struct {
	code       *binary.Writer
	pool       *pool.Pool
	interfaces map[string]bool
	err        error
}

// WriterOption configures a Writer.
type WriterOption func(*Writer)

// WithInterfaces marks owner names that are interfaces, so that
// invokestatic and invokespecial on them reference an InterfaceMethodref.
func WithInterfaces(names ...string) WriterOption {
	return func(w *Writer) {
		for _, n := range names {
			w.interfaces[n] = true
		}
	}
}

// NewWriter creates a Writer with an empty constant pool.
func NewWriter(opts ...WriterOption) *Writer {
	w := &Writer{
		code:       binary.NewWriter(),
		pool:       pool.New(),
		interfaces: make(map[string]bool),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// MethodInsn implements Visitor.
func (w *Writer) MethodInsn(op Opcode, owner, name, desc string) {
	if w.err != nil {
		return
	}
	if !op.IsInvoke() {
		w.err = errors.Unsupported(errors.PhaseEmit, fmt.Sprintf("opcode %#x is not a method invocation", byte(op)))
		return
	}

	if op != InvokeInterface {
		idx := w.pool.Method(owner, name, desc, w.interfaces[owner])
		if w.err = w.pool.Err(); w.err != nil {
			return
		}
		w.code.Byte(byte(op))
		w.code.WriteU2(idx)
		return
	}

	slots, err := ArgumentSlots(desc)
	if err != nil {
		w.err = errors.Wrap(errors.PhaseEmit, errors.KindInvalidData, err, "invokeinterface count for "+owner+"."+name)
		return
	}
	if slots+1 > math.MaxUint8 {
		w.err = errors.New(errors.PhaseEmit, errors.KindInvalidData).
			Value(slots+1).
			Detail("invokeinterface count %d for %s.%s exceeds %d", slots+1, owner, name, math.MaxUint8).
			Build()
		return
	}
	idx := w.pool.Method(owner, name, desc, true)
	if w.err = w.pool.Err(); w.err != nil {
		return
	}
	w.code.Byte(byte(op))
	w.code.WriteU2(idx)
	w.code.Byte(byte(slots + 1)) // receiver included
	w.code.Byte(0)
}

// Code returns the encoded instruction bytes.
func (w *Writer) Code() []byte {
	return w.code.Bytes()
}

// ConstantPool returns the encoded constant pool, count included.
func (w *Writer) ConstantPool() []byte {
	return w.pool.Encode()
}

// PoolSize returns the number of constant pool entries allocated.
func (w *Writer) PoolSize() int {
	return w.pool.Len()
}

// Err returns the first encoding error, if any.
func (w *Writer) Err() error {
	return w.err
}
