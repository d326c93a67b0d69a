// Package pool implements a class file constant pool restricted to the
// entries needed by method invocation instructions.
package pool

import (
	"math"

	"github.com/wippyai/bytegen/bytecode/internal/binary"
	"github.com/wippyai/bytegen/errors"
)

// MaxEntries is the largest entry count constant_pool_count can describe.
const MaxEntries = math.MaxUint16 - 1

// Tag identifies the kind of a constant pool entry.
type Tag byte

const (
	TagUtf8               Tag = 1
	TagClass              Tag = 7
	TagMethodref          Tag = 10
	TagInterfaceMethodref Tag = 11
	TagNameAndType        Tag = 12
)

func (t Tag) String() string {
	switch t {
	case TagUtf8:
		return "Utf8"
	case TagClass:
		return "Class"
	case TagMethodref:
		return "Methodref"
	case TagInterfaceMethodref:
		return "InterfaceMethodref"
	case TagNameAndType:
		return "NameAndType"
	}
	return "Unknown"
}

// Entry is a single constant pool entry. Refs hold the indices an entry
// points to; Utf8 entries use Value instead.
type Entry struct {
	Value string
	Refs  [2]uint16
	Tag   Tag
}

type key struct {
	value string
	refs  [2]uint16
	tag   Tag
}

// Pool de-duplicates entries and hands out 1-based indices.
//
// Adding to a full pool or adding an over-long string records an error,
// reported by Err, and returns index 0. After that only existing entries
// resolve. Not safe for concurrent use.
type Pool struct {
	index   map[key]uint16
	entries []Entry
	err     error
}

// New creates an empty Pool.
func New() *Pool {
	return &Pool{index: make(map[key]uint16)}
}

func (p *Pool) add(e Entry) uint16 {
	k := key{value: e.Value, refs: e.Refs, tag: e.Tag}
	if idx, ok := p.index[k]; ok {
		return idx
	}
	if p.err != nil {
		return 0
	}
	if len(p.entries) >= MaxEntries {
		if p.err == nil {
			p.err = errors.New(errors.PhaseEmit, errors.KindInvalidData).
				Value(len(p.entries)).
				Detail("constant pool full at %d entries", MaxEntries).
				Build()
		}
		return 0
	}
	p.entries = append(p.entries, e)
	idx := uint16(len(p.entries))
	p.index[k] = idx
	return idx
}

// Utf8 returns the index of a CONSTANT_Utf8 entry for s.
func (p *Pool) Utf8(s string) uint16 {
	if n := len(binary.ModifiedUTF8(s)); n > math.MaxUint16 {
		if p.err == nil {
			p.err = errors.New(errors.PhaseEmit, errors.KindInvalidData).
				Value(n).
				Detail("Utf8 constant of %d bytes exceeds %d", n, math.MaxUint16).
				Build()
		}
		return 0
	}
	return p.add(Entry{Tag: TagUtf8, Value: s})
}

// Class returns the index of a CONSTANT_Class entry for an internal name.
func (p *Pool) Class(internalName string) uint16 {
	name := p.Utf8(internalName)
	return p.add(Entry{Tag: TagClass, Refs: [2]uint16{name}})
}

// NameAndType returns the index of a CONSTANT_NameAndType entry.
func (p *Pool) NameAndType(name, desc string) uint16 {
	n := p.Utf8(name)
	d := p.Utf8(desc)
	return p.add(Entry{Tag: TagNameAndType, Refs: [2]uint16{n, d}})
}

// Method returns the index of a Methodref, or an InterfaceMethodref when
// itf is set.
func (p *Pool) Method(owner, name, desc string, itf bool) uint16 {
	tag := TagMethodref
	if itf {
		tag = TagInterfaceMethodref
	}
	c := p.Class(owner)
	nt := p.NameAndType(name, desc)
	return p.add(Entry{Tag: tag, Refs: [2]uint16{c, nt}})
}

// Err returns the first error recorded while adding entries.
func (p *Pool) Err() error {
	return p.err
}

// Len returns the number of entries.
func (p *Pool) Len() int {
	return len(p.entries)
}

// Entry returns the entry at a 1-based index.
func (p *Pool) Entry(idx uint16) (Entry, bool) {
	if idx == 0 || int(idx) > len(p.entries) {
		return Entry{}, false
	}
	return p.entries[idx-1], true
}

// Encode writes constant_pool_count followed by every entry.
func (p *Pool) Encode() []byte {
	w := binary.NewWriter()
	w.WriteU2(uint16(len(p.entries) + 1))
	for _, e := range p.entries {
		w.Byte(byte(e.Tag))
		switch e.Tag {
		case TagUtf8:
			_ = w.WriteUTF(e.Value) // length checked in Utf8
		case TagClass:
			w.WriteU2(e.Refs[0])
		default:
			w.WriteU2(e.Refs[0])
			w.WriteU2(e.Refs[1])
		}
	}
	return w.Bytes()
}
