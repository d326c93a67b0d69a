package main

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	bgerrors "github.com/wippyai/bytegen/errors"
	"github.com/wippyai/bytegen/member"
)

const testCatalog = `
types:
  - name: java/lang/Object
  - name: java/util/Collection
    interface: true
  - name: java/util/List
    interface: true
    implements: [java/util/Collection]
  - name: java/util/ArrayList
    extends: java/lang/Object
    implements: [java/util/List]
methods:
  - owner: java/lang/Object
    name: hashCode
    returns: int
  - owner: java/lang/Object
    constructor: true
  - owner: java/util/Collection
    name: size
    abstract: true
    returns: int
  - owner: java/util/List
    name: get
    abstract: true
    params: [int]
    returns: reference
`

func loadTestCatalog(t *testing.T) *member.Catalog {
	t.Helper()
	c, err := member.LoadCatalog(strings.NewReader(testCatalog))
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	return c
}

func TestRunText(t *testing.T) {
	c := loadTestCatalog(t)
	out, err := run(c, request{method: "java/lang/Object.hashCode", maxStack: -1}, "text")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"dispatch:    virtual",
		"invokevirtual java/lang/Object.hashCode()I",
		"impact +0, maximal 0",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q does not contain %q", out, want)
		}
	}
	if strings.Contains(out, "peak depth") {
		t.Error("peak depth printed without -max-stack")
	}
}

func TestRunHex(t *testing.T) {
	c := loadTestCatalog(t)
	out, err := run(c, request{method: "java/util/List.get", maxStack: -1}, "hex")
	if err != nil {
		t.Fatal(err)
	}
	// invokeinterface #6, count 2
	if out != "b900060200\n" {
		t.Errorf("hex = %q, want %q", out, "b900060200\n")
	}
}

func TestRunJSONWithOverride(t *testing.T) {
	c := loadTestCatalog(t)
	out, err := run(c, request{
		method:   "java/util/Collection.size",
		virtual:  "java/util/ArrayList",
		maxStack: 1,
	}, "json")
	if err != nil {
		t.Fatal(err)
	}
	var got jsonResult
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("unmarshal %q: %v", out, err)
	}
	if got.Dispatch != "virtual" || got.Instruction != "invokevirtual java/util/ArrayList.size()I" {
		t.Errorf("got %+v", got)
	}
	if got.Peak == nil || *got.Peak != 1 {
		t.Errorf("peak = %v, want 1", got.Peak)
	}
}

func TestRunErrors(t *testing.T) {
	c := loadTestCatalog(t)
	tests := []struct {
		name string
		req  request
		want error
	}{
		{"illegal special", request{method: "java/lang/Object.hashCode", special: "java/util/List"}, bgerrors.ErrInvalidArgument},
		{"constructor virtual", request{method: "java/lang/Object.<init>", virtual: "java/lang/Object"}, bgerrors.ErrInvalidState},
		{"unknown method", request{method: "java/lang/Object.toString"}, bgerrors.ErrNotFound},
		{"unknown type", request{method: "java/lang/Object.hashCode", virtual: "x/Y"}, bgerrors.ErrNotFound},
		{"overflow", request{method: "java/util/List.get", maxStack: 1}, bgerrors.ErrStackOverflow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.req.maxStack == 0 {
				tt.req.maxStack = -1
			}
			_, err := run(c, tt.req, "text")
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}

	if _, err := run(c, request{method: "nodot", maxStack: -1}, "text"); err == nil {
		t.Error("malformed method ref should fail")
	}
	if _, err := run(c, request{method: "java/lang/Object.hashCode", special: "a", virtual: "b", maxStack: -1}, "text"); err == nil {
		t.Error("both overrides should fail")
	}
	if _, err := run(c, request{method: "java/lang/Object.hashCode", maxStack: -1}, "xml"); err == nil {
		t.Error("unknown format should fail")
	}
}

func TestInteractiveFlow(t *testing.T) {
	c := loadTestCatalog(t)
	m := newInteractiveModel(c, "test.yaml")

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if m.selected != 1 {
		t.Fatalf("selected = %d, want 1", m.selected)
	}
	m.Update(tea.KeyMsg{Type: tea.KeyUp})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter should produce a command")
	}
	m.Update(cmd())
	if m.state != stateShowResult || m.err != nil {
		t.Fatalf("state/err = %v/%v", m.state, m.err)
	}
	if !strings.Contains(m.View(), "invokevirtual") {
		t.Errorf("view does not show instruction:\n%s", m.View())
	}

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'v'}})
	if m.state != stateInputTarget || m.mode != overrideVirtual {
		t.Fatalf("state/mode = %v/%v", m.state, m.mode)
	}
	m.input.SetValue("java/util/List")
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m.Update(cmd())
	if m.err == nil {
		t.Error("virtual override of Object.hashCode on an unrelated interface should fail")
	}
}
