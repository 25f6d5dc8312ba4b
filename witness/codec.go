// Package witness implements the canonical binary encoding for every proof
// witness exchanged between the Prover and the Verifier: little-endian
// fixed-width integers, 4-byte-length-prefixed byte strings, and flat
// concatenation for fixed-size arrays (hashes, BLS keys and signatures,
// committee bitfields). There is no table/offset indirection here because
// every witness type this package encodes has a statically known field
// sequence; readers consume the buffer strictly in order.
package witness

import (
	"encoding/binary"
	"fmt"
)

// Writer accumulates a witness's canonical encoding.
type Writer struct {
	buf []byte
}

// NewWriter returns an empty Writer.
func NewWriter() *Writer { return &Writer{} }

// Bytes returns the accumulated encoding.
func (w *Writer) Bytes() []byte { return w.buf }

// PutUint64 appends a little-endian uint64.
func (w *Writer) PutUint64(v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	w.buf = append(w.buf, b[:]...)
}

// PutFixed appends raw fixed-size bytes verbatim (hashes, BLS keys/sigs,
// bitfields): the reader already knows their length from the type.
func (w *Writer) PutFixed(b []byte) {
	w.buf = append(w.buf, b...)
}

// PutBytes appends a 4-byte little-endian length prefix followed by b.
func (w *Writer) PutBytes(b []byte) {
	var lenBuf [4]byte
	binary.LittleEndian.PutUint32(lenBuf[:], uint32(len(b)))
	w.buf = append(w.buf, lenBuf[:]...)
	w.buf = append(w.buf, b...)
}

// PutUint32 appends a 4-byte little-endian count, used ahead of a
// variable-length sequence of further-encoded elements.
func (w *Writer) PutUint32(v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	w.buf = append(w.buf, b[:]...)
}

// Reader consumes a witness encoding strictly in order, returning
// ErrTruncated the moment the buffer runs out.
type Reader struct {
	buf []byte
	pos int
}

// NewReader wraps buf for sequential decoding.
func NewReader(buf []byte) *Reader { return &Reader{buf: buf} }

// ErrTruncated is returned by any Reader method that needed more bytes
// than remained in the buffer.
var ErrTruncated = fmt.Errorf("witness: buffer truncated")

func (r *Reader) take(n int) ([]byte, error) {
	if r.pos+n > len(r.buf) {
		return nil, ErrTruncated
	}
	b := r.buf[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

// Uint64 reads a little-endian uint64.
func (r *Reader) Uint64() (uint64, error) {
	b, err := r.take(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// Uint32 reads a little-endian uint32.
func (r *Reader) Uint32() (uint32, error) {
	b, err := r.take(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// Fixed reads exactly n raw bytes.
func (r *Reader) Fixed(n int) ([]byte, error) {
	return r.take(n)
}

// Bytes reads a 4-byte-length-prefixed byte string.
func (r *Reader) Bytes() ([]byte, error) {
	n, err := r.Uint32()
	if err != nil {
		return nil, err
	}
	return r.take(int(n))
}

// Done reports whether every byte in the buffer has been consumed: callers
// use this to reject a witness with trailing garbage.
func (r *Reader) Done() bool { return r.pos == len(r.buf) }
