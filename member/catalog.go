package member

import (
	"fmt"
	"io"
	"slices"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/wippyai/bytegen/errors"
	"github.com/wippyai/bytegen/stack"
)

// Catalog is a set of synthetic types and methods, usually loaded from YAML.
type Catalog struct {
	types   map[string]*Type
	methods map[string][]*Method
	order   []*Method
}

type catalogFile struct {
	Types   []typeEntry   `yaml:"types"`
	Methods []methodEntry `yaml:"methods"`
}

type typeEntry struct {
	Name       string   `yaml:"name"`
	Extends    string   `yaml:"extends"`
	Implements []string `yaml:"implements"`
	Interface  bool     `yaml:"interface"`
}

type methodEntry struct {
	Owner       string   `yaml:"owner"`
	Name        string   `yaml:"name"`
	Descriptor  string   `yaml:"descriptor"`
	Returns     string   `yaml:"returns"`
	Params      []string `yaml:"params"`
	Static      bool     `yaml:"static"`
	Private     bool     `yaml:"private"`
	Abstract    bool     `yaml:"abstract"`
	Constructor bool     `yaml:"constructor"`
}

// LoadCatalog decodes a YAML catalog:
//
//	types:
//	  - name: app/Base
//	  - name: app/Greeter
//	    interface: true
//	  - name: app/Impl
//	    extends: app/Base
//	    implements: [app/Greeter]
//	methods:
//	  - owner: app/Impl
//	    name: greet
//	    params: [reference, int]
//	    returns: void
//
// Types may be referenced before they are declared.
func LoadCatalog(r io.Reader) (*Catalog, error) {
	var f catalogFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && err != io.EOF {
		return nil, errors.Wrap(errors.PhaseLoad, errors.KindInvalidData, err, "decode catalog")
	}

	c := &Catalog{
		types:   make(map[string]*Type, len(f.Types)),
		methods: make(map[string][]*Method),
	}

	for _, te := range f.Types {
		if te.Name == "" {
			return nil, errors.InvalidInput(errors.PhaseLoad, "type without name")
		}
		if _, dup := c.types[te.Name]; dup {
			return nil, errors.InvalidInput(errors.PhaseLoad, fmt.Sprintf("duplicate type %q", te.Name))
		}
		c.types[te.Name] = &Type{name: te.Name, itf: te.Interface}
	}

	// link after every type exists so forward references resolve
	for _, te := range f.Types {
		t := c.types[te.Name]
		if te.Extends != "" {
			super, err := c.Type(te.Extends)
			if err != nil {
				return nil, err
			}
			t.super = super
		}
		for _, name := range te.Implements {
			itf, err := c.Type(name)
			if err != nil {
				return nil, err
			}
			t.interfaces = append(t.interfaces, itf)
		}
	}

	for _, me := range f.Methods {
		m, err := c.buildMethod(me)
		if err != nil {
			return nil, err
		}
		c.methods[me.Owner] = append(c.methods[me.Owner], m)
		c.order = append(c.order, m)
	}

	return c, nil
}

func (c *Catalog) buildMethod(me methodEntry) (*Method, error) {
	owner, err := c.Type(me.Owner)
	if err != nil {
		return nil, err
	}
	if me.Name == "" && !me.Constructor {
		return nil, errors.InvalidInput(errors.PhaseLoad, "method without name on "+me.Owner)
	}

	var opts []MethodOption
	if me.Returns != "" {
		ret, ok := stack.ParseCategory(me.Returns)
		if !ok {
			return nil, errors.InvalidInput(errors.PhaseLoad, fmt.Sprintf("unknown return category %q", me.Returns))
		}
		opts = append(opts, Returns(ret))
	}
	params := make([]stack.Category, 0, len(me.Params))
	for _, p := range me.Params {
		cat, ok := stack.ParseCategory(p)
		if !ok {
			return nil, errors.InvalidInput(errors.PhaseLoad, fmt.Sprintf("unknown parameter category %q", p))
		}
		params = append(params, cat)
	}
	opts = append(opts, Params(params...))
	if me.Static {
		opts = append(opts, Static())
	}
	if me.Private {
		opts = append(opts, Private())
	}
	if me.Abstract {
		opts = append(opts, Abstract())
	}
	if me.Constructor {
		opts = append(opts, Constructor())
	}
	if me.Descriptor != "" {
		if err := checkDescriptor(me, params); err != nil {
			return nil, err
		}
		opts = append(opts, Descriptor(me.Descriptor))
	}
	return NewMethod(owner, me.Name, opts...), nil
}

// checkDescriptor rejects a descriptor that is malformed or disagrees with
// the categories written next to it.
func checkDescriptor(me methodEntry, params []stack.Category) error {
	ref := me.Owner + "." + me.Name
	descParams, descRet, err := ParseSignature(me.Descriptor)
	if err != nil {
		return errors.New(errors.PhaseLoad, errors.KindInvalidData).
			Member(ref).
			Cause(err).
			Detail("malformed descriptor").
			Build()
	}
	if len(me.Params) > 0 && !slices.Equal(params, descParams) {
		return errors.InvalidInput(errors.PhaseLoad,
			fmt.Sprintf("params of %s disagree with descriptor %s", ref, me.Descriptor))
	}
	if me.Returns != "" && me.Returns != descRet.String() {
		return errors.InvalidInput(errors.PhaseLoad,
			fmt.Sprintf("returns of %s disagree with descriptor %s", ref, me.Descriptor))
	}
	if me.Constructor && descRet != stack.Void {
		return errors.InvalidInput(errors.PhaseLoad,
			fmt.Sprintf("constructor %s must return void, descriptor is %s", ref, me.Descriptor))
	}
	return nil
}

// Type returns the type with the given internal name.
func (c *Catalog) Type(name string) (*Type, error) {
	t, ok := c.types[name]
	if !ok {
		return nil, errors.NotFound(errors.PhaseLoad, "type", name)
	}
	return t, nil
}

// Types returns all type names, sorted.
func (c *Catalog) Types() []string {
	names := make([]string, 0, len(c.types))
	for name := range c.types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Method returns the method of owner matching name, or name followed by
// its descriptor when the name is overloaded.
func (c *Catalog) Method(owner, name string) (*Method, error) {
	var found []*Method
	for _, m := range c.methods[owner] {
		if m.InternalName() == name || m.InternalName()+m.Descriptor() == name {
			found = append(found, m)
		}
	}
	switch len(found) {
	case 0:
		return nil, errors.NotFound(errors.PhaseLoad, "method", owner+"."+name)
	case 1:
		return found[0], nil
	}
	return nil, errors.InvalidInput(errors.PhaseLoad,
		fmt.Sprintf("method %s.%s is overloaded, add the descriptor", owner, name))
}

// Methods returns every method in declaration order.
func (c *Catalog) Methods() []*Method {
	return c.order
}
