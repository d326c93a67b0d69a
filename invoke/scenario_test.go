package invoke

import (
	"bytes"
	"errors"
	"testing"

	"github.com/wippyai/bytegen/bytecode"
	bgerrors "github.com/wippyai/bytegen/errors"
	"github.com/wippyai/bytegen/member"
	"github.com/wippyai/bytegen/stack"
)

func TestScenarioVirtualReceiverOnly(t *testing.T) {
	owner := member.NewType("app/Counter")
	m := member.NewMethod(owner, "count", member.Returns(stack.Int))

	inv := Invoke(m)
	var rec bytecode.Recorder
	size := inv.Apply(&rec, stack.NewSession())

	if inv.Dispatch() != Virtual {
		t.Errorf("Dispatch() = %v, want virtual", inv.Dispatch())
	}
	if size.SizeImpact() != 0 || size.MaximalSize() != 0 {
		t.Errorf("size = %d/%d, want 0/0", size.SizeImpact(), size.MaximalSize())
	}
	if got := rec.Instructions[0].String(); got != "invokevirtual app/Counter.count()I" {
		t.Errorf("instruction = %q", got)
	}
}

func TestScenarioInterfaceReceiverOnly(t *testing.T) {
	owner := member.NewType("app/Sized", member.Interface())
	m := member.NewMethod(owner, "size", member.Abstract(), member.Returns(stack.Int))

	inv := Invoke(m)
	size := inv.Apply(&bytecode.Recorder{}, stack.NewSession())
	if inv.Dispatch() != Interface {
		t.Errorf("Dispatch() = %v, want interface", inv.Dispatch())
	}
	if size.SizeImpact() != 0 || size.MaximalSize() != 0 {
		t.Errorf("size = %d/%d, want 0/0", size.SizeImpact(), size.MaximalSize())
	}
}

func TestScenarioConstructor(t *testing.T) {
	owner := member.NewType("app/Point")
	ctor := member.NewMethod(owner, "", member.Constructor(), member.Params(stack.Int, stack.Int))

	var rec bytecode.Recorder
	size := Invoke(ctor).Apply(&rec, stack.NewSession())
	want := bytecode.Instruction{Opcode: bytecode.InvokeSpecial, Owner: "app/Point", Name: "<init>", Descriptor: "(II)V"}
	if rec.Instructions[0] != want {
		t.Errorf("instruction = %v, want %v", rec.Instructions[0], want)
	}
	if size.SizeImpact() != -3 || size.MaximalSize() != 0 {
		t.Errorf("size = %d/%d, want -3/0", size.SizeImpact(), size.MaximalSize())
	}
}

func TestScenarioSuperCall(t *testing.T) {
	base := member.NewType("app/Base")
	sub := member.NewType("app/Sub", member.Extends(base))
	unrelated := member.NewType("app/Other")
	m := member.NewMethod(base, "describe", member.Returns(stack.Reference))

	inv, err := Invoke(m).Special(sub)
	if err != nil {
		t.Fatal(err)
	}
	var rec bytecode.Recorder
	inv.Apply(&rec, stack.NewSession())
	if got := rec.Instructions[0].String(); got != "invokespecial app/Sub.describe()Ljava/lang/Object;" {
		t.Errorf("instruction = %q", got)
	}

	rec.Reset()
	if _, err := Invoke(m).Special(unrelated); !errors.Is(err, bgerrors.ErrInvalidArgument) {
		t.Fatalf("err = %v, want invalid argument", err)
	}
	if len(rec.Instructions) != 0 {
		t.Errorf("rejected override emitted %d instructions", len(rec.Instructions))
	}
}

func TestScenarioVirtualNarrowing(t *testing.T) {
	collection := member.NewType("java/util/Collection", member.Interface())
	list := member.NewType("java/util/List", member.Interface(), member.Implements(collection))
	arrayList := member.NewType("java/util/ArrayList", member.Implements(list))
	m := member.NewMethod(collection, "size", member.Abstract(), member.Returns(stack.Int))

	toList, err := Invoke(m).Virtual(list)
	if err != nil {
		t.Fatal(err)
	}
	if toList.Dispatch() != Interface || toList.Owner().InternalName() != "java/util/List" {
		t.Errorf("list override = %v", toList)
	}

	toClass, err := Invoke(m).Virtual(arrayList)
	if err != nil {
		t.Fatal(err)
	}
	if toClass.Dispatch() != Virtual {
		t.Errorf("class override dispatch = %v, want virtual", toClass.Dispatch())
	}

	// widening to a supertype is rejected
	sized := member.NewMethod(list, "get", member.Abstract(), member.Params(stack.Int), member.Returns(stack.Reference))
	if _, err := Invoke(sized).Virtual(collection); !errors.Is(err, bgerrors.ErrInvalidArgument) {
		t.Errorf("err = %v, want invalid argument", err)
	}
}

func TestScenarioEncodedWithTracker(t *testing.T) {
	list := member.NewType("java/util/List", member.Interface())
	get := member.NewMethod(list, "get", member.Abstract(), member.Params(stack.Int), member.Returns(stack.Reference))
	hash := member.NewMethod(member.NewType("java/lang/Object"), "hashCode", member.Returns(stack.Int))
	widen := member.NewMethod(member.NewType("app/Math"), "widen", member.Static(), member.Params(stack.Int), member.Returns(stack.Long))

	w := bytecode.NewWriter()
	tr := stack.NewTracker(2)
	ctx := stack.NewSession()

	// receiver and index loaded elsewhere
	for _, width := range []stack.Width{stack.WidthSingle, stack.WidthSingle} {
		if err := tr.Push(width); err != nil {
			t.Fatal(err)
		}
	}
	seq := stack.NewCompound(Invoke(get), Invoke(hash), Invoke(widen))
	if err := tr.Apply(seq, w, ctx); err != nil {
		t.Fatal(err)
	}
	if err := w.Err(); err != nil {
		t.Fatal(err)
	}
	if tr.Depth() != 2 || tr.Peak() != 2 {
		t.Errorf("depth/peak = %d/%d, want 2/2", tr.Depth(), tr.Peak())
	}

	code := w.Code()
	if len(code) != 5+3+3 {
		t.Fatalf("len(code) = %d, want 11", len(code))
	}
	ops := []byte{code[0], code[5], code[8]}
	if !bytes.Equal(ops, []byte{0xB9, 0xB6, 0xB8}) {
		t.Errorf("opcodes = % x", ops)
	}
	if code[3] != 2 {
		t.Errorf("invokeinterface count = %d, want 2", code[3])
	}
	if ctx.Len() != 0 {
		t.Errorf("session has %d keys after applying invocations", ctx.Len())
	}
}

func TestScenarioMissingArgumentsUnderflow(t *testing.T) {
	owner := member.NewType("app/Math")
	mix := member.NewMethod(owner, "mix", member.Params(stack.Int, stack.Int), member.Returns(stack.Int))

	inv := Invoke(mix)
	if inv.Consumed() != 3 {
		t.Fatalf("Consumed() = %d, want 3", inv.Consumed())
	}

	// receiver and one argument loaded; net impact -2 ends at zero
	tr := stack.NewTracker(4)
	for range 2 {
		if err := tr.Push(stack.WidthSingle); err != nil {
			t.Fatal(err)
		}
	}
	var rec bytecode.Recorder
	err := tr.Apply(inv, &rec, stack.NewSession())
	if !errors.Is(err, bgerrors.ErrStackUnderflow) {
		t.Fatalf("err = %v, want stack underflow", err)
	}
	if len(rec.Instructions) != 0 || tr.Depth() != 2 {
		t.Errorf("instructions/depth = %d/%d, want 0/2", len(rec.Instructions), tr.Depth())
	}
}

func TestScenarioExplicitDescriptor(t *testing.T) {
	owner := member.NewType("app/Mixer", member.Interface())
	mix := member.NewMethod(owner, "mix", member.Abstract(), member.Descriptor("(JJ)J"))

	inv := Invoke(mix)
	size := inv.Size()
	if size.SizeImpact() != -3 || size.MaximalSize() != 0 {
		t.Errorf("size = %d/%d, want -3/0", size.SizeImpact(), size.MaximalSize())
	}

	w := bytecode.NewWriter()
	inv.Apply(w, stack.NewSession())
	if err := w.Err(); err != nil {
		t.Fatal(err)
	}
	if got := int(w.Code()[3]); got != inv.Consumed() {
		t.Errorf("invokeinterface count = %d, want Consumed() = %d", got, inv.Consumed())
	}
}
