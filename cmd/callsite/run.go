package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/wippyai/bytegen/bytecode"
	"github.com/wippyai/bytegen/invoke"
	"github.com/wippyai/bytegen/member"
	"github.com/wippyai/bytegen/stack"
)

type request struct {
	method   string
	special  string
	virtual  string
	maxStack int
}

type result struct {
	inv   *invoke.Invocation
	size  stack.Size
	insn  bytecode.Instruction
	code  []byte
	pool  int
	peak  int
	check bool
}

// resolve builds the invocation requested by req.
func resolve(c *member.Catalog, req request) (*invoke.Invocation, error) {
	if req.special != "" && req.virtual != "" {
		return nil, fmt.Errorf("-special and -virtual are mutually exclusive")
	}
	owner, name, err := splitMethodRef(req.method)
	if err != nil {
		return nil, err
	}
	m, err := c.Method(owner, name)
	if err != nil {
		return nil, err
	}

	inv := invoke.Invoke(m)
	switch {
	case req.special != "":
		t, err := c.Type(req.special)
		if err != nil {
			return nil, err
		}
		return inv.Special(t)
	case req.virtual != "":
		t, err := c.Type(req.virtual)
		if err != nil {
			return nil, err
		}
		return inv.Virtual(t)
	}
	return inv, nil
}

// emit applies inv once to a recorder and a class file writer, verifying
// the depth when maxStack is set.
func emit(inv *invoke.Invocation, maxStack int) (*result, error) {
	var rec bytecode.Recorder
	w := bytecode.NewWriter()
	v := bytecode.Tee(&rec, w)
	ctx := stack.NewSession()

	res := &result{inv: inv}
	if maxStack >= 0 {
		tr := stack.NewTracker(maxStack)
		for i := 0; i < inv.Method().StackSize(); i++ {
			if err := tr.Push(stack.WidthSingle); err != nil {
				return nil, err
			}
		}
		if err := tr.Apply(inv, v, ctx); err != nil {
			return nil, err
		}
		res.size = inv.Size()
		res.peak = tr.Peak()
		res.check = true
	} else {
		res.size = inv.Apply(v, ctx)
	}
	if err := w.Err(); err != nil {
		return nil, err
	}

	res.insn = rec.Instructions[0]
	res.code = w.Code()
	res.pool = w.PoolSize()
	return res, nil
}

type jsonResult struct {
	Dispatch    string `json:"dispatch"`
	Instruction string `json:"instruction"`
	Code        string `json:"code"`
	SizeImpact  int    `json:"size_impact"`
	MaximalSize int    `json:"maximal_size"`
	PoolEntries int    `json:"pool_entries"`
	Peak        *int   `json:"peak,omitempty"`
}

func render(res *result, format string) (string, error) {
	switch format {
	case "text":
		var b strings.Builder
		fmt.Fprintf(&b, "dispatch:    %s\n", res.inv.Dispatch())
		fmt.Fprintf(&b, "instruction: %s\n", res.insn)
		fmt.Fprintf(&b, "stack:       impact %+d, maximal %d\n", res.size.SizeImpact(), res.size.MaximalSize())
		if res.check {
			fmt.Fprintf(&b, "peak depth:  %d\n", res.peak)
		}
		return b.String(), nil
	case "hex":
		return hex.EncodeToString(res.code) + "\n", nil
	case "json":
		out := jsonResult{
			Dispatch:    res.inv.Dispatch().String(),
			Instruction: res.insn.String(),
			Code:        hex.EncodeToString(res.code),
			SizeImpact:  res.size.SizeImpact(),
			MaximalSize: res.size.MaximalSize(),
			PoolEntries: res.pool,
		}
		if res.check {
			out.Peak = &res.peak
		}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return "", err
		}
		return string(data) + "\n", nil
	}
	return "", fmt.Errorf("unknown format %q", format)
}

func run(c *member.Catalog, req request, outFormat string) (string, error) {
	inv, err := resolve(c, req)
	if err != nil {
		return "", err
	}
	res, err := emit(inv, req.maxStack)
	if err != nil {
		return "", err
	}
	return render(res, outFormat)
}
