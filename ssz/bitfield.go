// bitfield.go implements the SSZ Bitvector type: a fixed-length sequence of
// bits with no sentinel, as used for the 512-bit sync-committee participation
// bitfield (Bitvector[512]).
//
// Spec: https://github.com/ethereum/consensus-specs/blob/dev/ssz/simple-serialize.md
package ssz

import (
	"errors"
)

// Bitfield errors.
var (
	ErrBitvectorZeroLength     = errors.New("bitfield: bitvector length must be positive")
	ErrBitvectorIndexOOB       = errors.New("bitfield: bitvector index out of bounds")
	ErrBitvectorLengthMismatch = errors.New("bitfield: bitvector length mismatch")
)

// Bitvector is a fixed-length bit array. Unlike a Bitlist, it carries no
// sentinel bit -- the length is always known at construction time.
type Bitvector struct {
	data   []byte
	length int
}

// NewBitvector creates a new Bitvector with the given length. All bits start unset.
func NewBitvector(length int) (Bitvector, error) {
	if length <= 0 {
		return Bitvector{}, ErrBitvectorZeroLength
	}
	numBytes := (length + 7) / 8
	return Bitvector{
		data:   make([]byte, numBytes),
		length: length,
	}, nil
}

// BitvectorFromBytes creates a Bitvector from raw bytes with the given bit length.
func BitvectorFromBytes(data []byte, length int) (Bitvector, error) {
	if length <= 0 {
		return Bitvector{}, ErrBitvectorZeroLength
	}
	expectedBytes := (length + 7) / 8
	if len(data) < expectedBytes {
		return Bitvector{}, ErrBitvectorLengthMismatch
	}
	cp := make([]byte, expectedBytes)
	copy(cp, data[:expectedBytes])
	return Bitvector{data: cp, length: length}, nil
}

// Set sets the bit at the given index.
func (bv Bitvector) Set(index int) {
	if index < 0 || index >= bv.length {
		return
	}
	bv.data[index/8] |= 1 << (uint(index) % 8)
}

// Clear unsets the bit at the given index.
func (bv Bitvector) Clear(index int) {
	if index < 0 || index >= bv.length {
		return
	}
	bv.data[index/8] &^= 1 << (uint(index) % 8)
}

// Get returns true if the bit at the given index is set.
func (bv Bitvector) Get(index int) bool {
	if index < 0 || index >= bv.length {
		return false
	}
	return bv.data[index/8]&(1<<(uint(index)%8)) != 0
}

// Len returns the fixed bit length of the bitvector.
func (bv Bitvector) Len() int {
	return bv.length
}

// Count returns the number of set bits (population count).
func (bv Bitvector) Count() int {
	count := 0
	for i := 0; i < bv.length; i++ {
		if bv.Get(i) {
			count++
		}
	}
	return count
}

// Bytes returns a copy of the underlying byte data.
func (bv Bitvector) Bytes() []byte {
	cp := make([]byte, len(bv.data))
	copy(cp, bv.data)
	return cp
}

// OR performs bitwise OR of two bitvectors. Both must have the same length.
func (bv Bitvector) OR(other Bitvector) (Bitvector, error) {
	if bv.length != other.length {
		return Bitvector{}, ErrBitvectorLengthMismatch
	}
	result, _ := NewBitvector(bv.length)
	for i := 0; i < len(bv.data); i++ {
		result.data[i] = bv.data[i] | other.data[i]
	}
	return result, nil
}

// AND performs bitwise AND of two bitvectors.
func (bv Bitvector) AND(other Bitvector) (Bitvector, error) {
	if bv.length != other.length {
		return Bitvector{}, ErrBitvectorLengthMismatch
	}
	result, _ := NewBitvector(bv.length)
	for i := 0; i < len(bv.data); i++ {
		result.data[i] = bv.data[i] & other.data[i]
	}
	return result, nil
}

// Overlaps returns true if any bit is set in both bitvectors.
func (bv Bitvector) Overlaps(other Bitvector) bool {
	if bv.length != other.length {
		return false
	}
	for i := 0; i < bv.length; i++ {
		if bv.Get(i) && other.Get(i) {
			return true
		}
	}
	return false
}

// IsZero returns true if no bits are set.
func (bv Bitvector) IsZero() bool {
	return bv.Count() == 0
}

// BitvectorEqual returns true if two bitvectors have the same length and bits.
func BitvectorEqual(a, b Bitvector) bool {
	if a.length != b.length {
		return false
	}
	for i := 0; i < a.length; i++ {
		if a.Get(i) != b.Get(i) {
			return false
		}
	}
	return true
}

// BitvectorHashTreeRoot computes the SSZ hash tree root of a bitvector: the
// bits are packed into bytes, then into 32-byte chunks and Merkleized.
func BitvectorHashTreeRoot(bv Bitvector) [32]byte {
	chunks := Pack(bv.data)
	return Merkleize(chunks, 0)
}

// BitvectorMarshalSSZ serializes a bitvector as packed bytes.
func BitvectorMarshalSSZ(bv Bitvector) []byte {
	return bv.Bytes()
}

// BitvectorUnmarshalSSZ deserializes a bitvector from SSZ bytes.
func BitvectorUnmarshalSSZ(data []byte, length int) (Bitvector, error) {
	return BitvectorFromBytes(data, length)
}
