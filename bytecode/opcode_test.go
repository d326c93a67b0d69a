package bytecode

import "testing"

func TestOpcodeString(t *testing.T) {
	tests := []struct {
		op   Opcode
		want string
	}{
		{InvokeVirtual, "invokevirtual"},
		{InvokeSpecial, "invokespecial"},
		{InvokeStatic, "invokestatic"},
		{InvokeInterface, "invokeinterface"},
		{Opcode(0x00), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.op.String(); got != tt.want {
			t.Errorf("Opcode(%#x).String() = %q, want %q", byte(tt.op), got, tt.want)
		}
	}
}

func TestLookup(t *testing.T) {
	for _, op := range []Opcode{InvokeVirtual, InvokeSpecial, InvokeStatic, InvokeInterface} {
		got, ok := Lookup(op.String())
		if !ok || got != op {
			t.Errorf("Lookup(%q) = %v, %v; want %v", op.String(), got, ok, op)
		}
		if !op.IsInvoke() {
			t.Errorf("%v.IsInvoke() = false", op)
		}
	}
	if _, ok := Lookup("invokedynamic"); ok {
		t.Error("Lookup(invokedynamic) should fail")
	}
	if Opcode(0xBA).IsInvoke() {
		t.Error("0xBA should not be a supported invoke opcode")
	}
}
