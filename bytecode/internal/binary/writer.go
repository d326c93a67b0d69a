package binary

import (
	"bytes"
	"encoding/binary"
	"math"
	"unicode/utf8"

	"github.com/wippyai/bytegen/errors"
)

// Writer provides buffered writing utilities for class file encoding.
// All multi-byte quantities are big-endian.
type Writer struct {
	buf *bytes.Buffer
}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{buf: &bytes.Buffer{}}
}

// Bytes returns the written bytes.
func (w *Writer) Bytes() []byte {
	return w.buf.Bytes()
}

// Len returns the number of bytes written.
func (w *Writer) Len() int {
	return w.buf.Len()
}

// Byte writes a single byte (u1).
func (w *Writer) Byte(b byte) {
	w.buf.WriteByte(b)
}

// WriteBytes writes a byte slice.
func (w *Writer) WriteBytes(data []byte) {
	w.buf.Write(data)
}

// WriteU2 writes a big-endian uint16.
func (w *Writer) WriteU2(v uint16) {
	var buf [2]byte
	binary.BigEndian.PutUint16(buf[:], v)
	w.buf.Write(buf[:])
}

// WriteU4 writes a big-endian uint32.
func (w *Writer) WriteU4(v uint32) {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], v)
	w.buf.Write(buf[:])
}

// WriteUTF writes a u2 length-prefixed string in modified UTF-8.
// Nothing is written when the encoding does not fit a u2 length.
func (w *Writer) WriteUTF(s string) error {
	enc := ModifiedUTF8(s)
	if len(enc) > math.MaxUint16 {
		return errors.New(errors.PhaseEmit, errors.KindInvalidData).
			Value(len(enc)).
			Detail("modified UTF-8 length %d exceeds %d", len(enc), math.MaxUint16).
			Build()
	}
	w.WriteU2(uint16(len(enc)))
	w.buf.Write(enc)
	return nil
}

// ModifiedUTF8 encodes s the way CONSTANT_Utf8 entries store strings:
// NUL becomes 0xC0 0x80 and supplementary characters are written as
// two 3-byte encoded surrogates.
func ModifiedUTF8(s string) []byte {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		switch {
		case r == 0:
			out = append(out, 0xC0, 0x80)
		case r < 0x80:
			out = append(out, byte(r))
		case r <= 0xFFFF:
			out = utf8.AppendRune(out, r)
		default:
			r -= 0x10000
			out = appendSurrogate(out, 0xD800+(r>>10))
			out = appendSurrogate(out, 0xDC00+(r&0x3FF))
		}
	}
	return out
}

func appendSurrogate(out []byte, c rune) []byte {
	return append(out,
		byte(0xE0|(c>>12)),
		byte(0x80|((c>>6)&0x3F)),
		byte(0x80|(c&0x3F)))
}
