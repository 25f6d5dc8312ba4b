package ssz

// MerkleProve returns the sibling path from the leaf at index up to the
// root of the binary tree Merkleize(leaves, limit) builds: proof[0] is the
// leaf's immediate sibling, proof[len-1] is the topmost sibling. This is
// the prover-side counterpart to VerifyMerkleBranch/calculateMerkleRoot,
// which walk the same path in the same order to check a claimed root.
func MerkleProve(leaves [][32]byte, index int, limit int) [][32]byte {
	if limit == 0 {
		limit = nextPowerOfTwo(len(leaves))
	}
	limit = nextPowerOfTwo(limit)

	layer := make([][32]byte, limit)
	copy(layer, leaves)
	// Remaining slots are already the zero value, matching Merkleize's
	// zero-hash padding at the leaf layer.

	depth := 0
	for (1 << uint(depth)) < limit {
		depth++
	}
	zeros := zeroHashes(depth)

	proof := make([][32]byte, 0, depth)
	idx := index
	for d := 0; d < depth; d++ {
		siblingIdx := idx ^ 1
		if siblingIdx < len(layer) {
			proof = append(proof, layer[siblingIdx])
		} else {
			proof = append(proof, zeros[d])
		}

		newSize := len(layer) / 2
		newLayer := make([][32]byte, newSize)
		for i := 0; i < newSize; i++ {
			newLayer[i] = hash(layer[2*i], layer[2*i+1])
		}
		layer = newLayer
		idx /= 2
	}
	return proof
}

// ContainerProve is MerkleProve specialized for a container: the leaves
// are already-computed field roots, and the limit is implicitly the next
// power of two of the field count (no explicit padding limit argument).
func ContainerProve(fieldRoots [][32]byte, fieldIndex int) [][32]byte {
	return MerkleProve(fieldRoots, fieldIndex, 0)
}
