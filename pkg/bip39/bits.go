package bip39

import "errors"

var errShortRead = errors.New("bit stream exhausted")

// bitReader reads big-endian bit groups from a byte slice, most significant
// bit of each byte first.
type bitReader struct {
	buf []byte
	pos int // in bits
}

func newBitReader(buf []byte) *bitReader {
	return &bitReader{buf: buf}
}

// ReadBits reads the next n bits (n <= 32) as an unsigned integer.
func (r *bitReader) ReadBits(n int) (uint32, error) {
	if n < 0 || n > 32 {
		return 0, errors.New("bit group must be 0..32 bits")
	}
	if r.pos+n > len(r.buf)*8 {
		return 0, errShortRead
	}
	var v uint32
	for i := 0; i < n; i++ {
		bit := (r.buf[r.pos/8] >> (7 - uint(r.pos%8))) & 1
		v = v<<1 | uint32(bit)
		r.pos++
	}
	return v, nil
}

// bitWriter is the inverse of bitReader: it appends big-endian bit groups,
// zero-padding the final byte.
type bitWriter struct {
	buf []byte
	pos int // in bits
}

func newBitWriter(sizeBits int) *bitWriter {
	return &bitWriter{buf: make([]byte, 0, (sizeBits+7)/8)}
}

// WriteBits appends the low n bits (n <= 32) of v.
func (w *bitWriter) WriteBits(v uint32, n int) {
	for i := n - 1; i >= 0; i-- {
		if w.pos%8 == 0 {
			w.buf = append(w.buf, 0)
		}
		if (v>>uint(i))&1 == 1 {
			w.buf[w.pos/8] |= 1 << (7 - uint(w.pos%8))
		}
		w.pos++
	}
}

// Len returns the number of bits written.
func (w *bitWriter) Len() int {
	return w.pos
}

// Bytes returns the written bits packed into bytes.
func (w *bitWriter) Bytes() []byte {
	return w.buf
}
