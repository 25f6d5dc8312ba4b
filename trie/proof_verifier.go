// proof_verifier.go provides standalone MPT (Merkle Patricia Trie) proof
// verification. It is designed as a stateless verifier: no trie database
// is needed, only the root hash and the proof data.
package trie

import (
	"errors"
	"fmt"

	"github.com/eth2030/beaconbridge/types"
)

// Proof verification errors.
var (
	ErrProofEmpty    = errors.New("proof_verifier: empty proof")
	ErrProofNilInput = errors.New("proof_verifier: nil input")
)

// MPTProofResult holds the result of an MPT proof verification.
type MPTProofResult struct {
	// Key that was proven.
	Key []byte
	// Value at the key (nil for absence proofs).
	Value []byte
	// Exists indicates whether the key exists in the trie.
	Exists bool
}

// VerifyMPTProof verifies a Merkle Patricia Trie inclusion or exclusion proof.
// It returns the value if the key exists, or nil if the proof demonstrates
// absence. An error is returned if the proof is structurally invalid.
func VerifyMPTProof(rootHash types.Hash, key []byte, proof [][]byte) (*MPTProofResult, error) {
	if key == nil {
		return nil, ErrProofNilInput
	}

	result := &MPTProofResult{Key: key}

	// Empty proof is valid only for the empty trie root.
	if len(proof) == 0 {
		if rootHash == emptyRoot {
			result.Exists = false
			return result, nil
		}
		return nil, ErrProofEmpty
	}

	// Delegate to the existing VerifyProof for the core logic.
	val, err := VerifyProof(rootHash, key, proof)
	if err != nil {
		return nil, fmt.Errorf("proof_verifier: MPT verification failed: %w", err)
	}

	result.Value = val
	result.Exists = val != nil
	return result, nil
}

// VerifyMPTAbsence is a convenience function to verify that a key does NOT
// exist in the trie. Returns nil on success (proven absent) or an error.
func VerifyMPTAbsence(rootHash types.Hash, key []byte, proof [][]byte) error {
	r, err := VerifyMPTProof(rootHash, key, proof)
	if err != nil {
		return err
	}
	if r.Exists {
		return fmt.Errorf("proof_verifier: key exists with value, expected absence")
	}
	return nil
}
