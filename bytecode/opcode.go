package bytecode

// Opcode is a single-byte instruction opcode.
type Opcode byte

// Method invocation opcodes.
const (
	InvokeVirtual   Opcode = 0xB6
	InvokeSpecial   Opcode = 0xB7
	InvokeStatic    Opcode = 0xB8
	InvokeInterface Opcode = 0xB9
)

var names = map[Opcode]string{
	InvokeVirtual:   "invokevirtual",
	InvokeSpecial:   "invokespecial",
	InvokeStatic:    "invokestatic",
	InvokeInterface: "invokeinterface",
}

var byName = func() map[string]Opcode {
	m := make(map[string]Opcode, len(names))
	for op, name := range names {
		m[name] = op
	}
	return m
}()

// String returns the assembler mnemonic.
func (op Opcode) String() string {
	if name, ok := names[op]; ok {
		return name
	}
	return "unknown"
}

// IsInvoke reports whether op is one of the method invocation opcodes.
func (op Opcode) IsInvoke() bool {
	_, ok := names[op]
	return ok
}

// Lookup returns the opcode for an assembler mnemonic.
func Lookup(name string) (Opcode, bool) {
	op, ok := byName[name]
	return op, ok
}
