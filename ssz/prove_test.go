package ssz

import "testing"

func leaf(b byte) [32]byte {
	var l [32]byte
	l[0] = b
	return l
}

func TestMerkleProveRoundTripsWithVerifyMerkleBranch(t *testing.T) {
	leaves := [][32]byte{leaf(1), leaf(2), leaf(3), leaf(4), leaf(5)}
	limit := 8
	depth := CeilDepth(limit)

	root := Merkleize(leaves, limit)

	for i := range leaves {
		proof := MerkleProve(leaves, i, limit)
		if uint(len(proof)) != depth {
			t.Fatalf("leaf %d: proof length = %d, want %d", i, len(proof), depth)
		}
		genIndex := (uint64(1) << depth) + uint64(i)
		if !VerifyMerkleBranch(root, leaves[i], proof, genIndex) {
			t.Errorf("leaf %d: proof did not verify", i)
		}
	}
}

func TestMerkleProvePadsMissingLeavesWithZeroHashes(t *testing.T) {
	leaves := [][32]byte{leaf(1), leaf(2), leaf(3)}
	limit := 4
	depth := CeilDepth(limit)
	root := Merkleize(leaves, limit)

	proof := MerkleProve(leaves, 2, limit)
	genIndex := (uint64(1) << depth) + 2
	if !VerifyMerkleBranch(root, leaves[2], proof, genIndex) {
		t.Error("proof for a leaf whose sibling is zero-padded should still verify")
	}
}

func TestContainerProveMatchesContainerRoot(t *testing.T) {
	fieldRoots := [][32]byte{leaf(10), leaf(11), leaf(12), leaf(13), leaf(14)}
	root := HashTreeRootContainer(fieldRoots)
	depth := CeilDepth(len(fieldRoots))

	for i := range fieldRoots {
		proof := ContainerProve(fieldRoots, i)
		genIndex := (uint64(1) << depth) + uint64(i)
		if !VerifyMerkleBranch(root, fieldRoots[i], proof, genIndex) {
			t.Errorf("field %d: container proof did not verify", i)
		}
	}
}
