package ssz

// Generalized-index Merkle proof verification, as defined by the SSZ
// merkle-proofs spec: https://github.com/ethereum/consensus-specs/blob/dev/ssz/merkle-proofs.md
//
// A generalized index encodes a path from the root of a binary Merkle tree:
// the root is index 1, and a node's children are 2*index and 2*index+1. The
// bits of the index (read from the least-significant bit up) say, at each
// level, whether the path descended into the left or right child; the proof
// supplies the sibling at every level the path passed through.

// CeilDepth returns the depth of the smallest perfect binary tree that can
// hold num leaves, i.e. the smallest d such that 2^d >= num. This is the
// depth used to Merkleize a vector/list/container with num elements/fields.
func CeilDepth(num int) uint {
	p := nextPowerOfTwo(num)
	d := uint(0)
	for (1 << d) < p {
		d++
	}
	return d
}

// FloorDepth returns the number of proof steps (sibling hashes) needed to
// authenticate the generalized index num against its tree's root: the
// position of the highest set bit of num. It is undefined (returns 0) for
// num == 0, matching the root-index convention where index 1 needs zero
// proof steps.
func FloorDepth(num uint64) uint {
	if num == 0 {
		return 0
	}
	depth := uint(0)
	for v := num; v > 1; v >>= 1 {
		depth++
	}
	return depth
}

// GetSubtreeIndex strips the leading bit from a generalized index, leaving
// the 0-based position of the node among its siblings at its own depth.
func GetSubtreeIndex(index uint64) uint64 {
	depth := FloorDepth(index)
	return index - (1 << depth)
}

// generalizedIndexBit reports whether, at proof step pos, the path encoded
// by index descended into the right child (true) or the left child (false).
func generalizedIndexBit(index uint64, pos uint) bool {
	return (index>>pos)&1 == 1
}

// VerifyMerkleBranch recomputes a Merkle root from a leaf, its generalized
// index, and a sibling proof, and reports whether it matches root.
func VerifyMerkleBranch(root, leaf [32]byte, proof [][32]byte, index uint64) bool {
	if uint(len(proof)) != FloorDepth(index) {
		return false
	}
	return calculateMerkleRoot(leaf, proof, index) == root
}

func calculateMerkleRoot(leaf [32]byte, proof [][32]byte, index uint64) [32]byte {
	h := leaf
	for i, sibling := range proof {
		if generalizedIndexBit(index, uint(i)) {
			h = hash(sibling, h)
		} else {
			h = hash(h, sibling)
		}
	}
	return h
}

// LengthHash encodes a length as the little-endian chunk MixInLength uses,
// exposed so callers building proofs through a length-mixed-in node (e.g. a
// transactions list) can replicate the sibling the real tree would have.
func LengthHash(length uint64) [32]byte {
	var chunk [32]byte
	for i := 0; i < 8 && length > 0; i++ {
		chunk[i] = byte(length)
		length >>= 8
	}
	return chunk
}
