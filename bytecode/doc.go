// Package bytecode provides the instruction sinks that stack manipulations
// emit into.
//
// A Visitor receives method invocation instructions as
// (opcode, owner, name, descriptor). Three implementations are provided:
//
//   - Recorder: keeps instructions in memory for inspection and replay
//   - Printer: writes assembler text, one instruction per line
//   - Writer: encodes Code attribute bytes with a de-duplicated constant pool
//
// Tee fans an instruction out to several visitors.
//
// # Encoding
//
//	invokevirtual   0xB6 indexbyte1 indexbyte2
//	invokespecial   0xB7 indexbyte1 indexbyte2
//	invokestatic    0xB8 indexbyte1 indexbyte2
//	invokeinterface 0xB9 indexbyte1 indexbyte2 count 0
//
// The count operand of invokeinterface is derived from the descriptor with
// ArgumentSlots, plus one for the receiver.
//
// None of the sinks are safe for concurrent use.
package bytecode
