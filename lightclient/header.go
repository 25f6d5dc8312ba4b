// Package lightclient implements the light-client state machine that
// advances a verifier's knowledge of the Ethereum beacon chain: bootstrap
// from a trusted checkpoint, extend the known header range one finality
// update at a time, rotate the sync committee at period boundaries, and
// check execution-layer transactions and receipts against a synced range.
package lightclient

import "github.com/eth2030/beaconbridge/ssz"

// Header is a beacon-block header: the minimal identity of a block the
// light client tracks. A "skipped slot" is represented by an empty Header
// carrying only its Slot.
type Header struct {
	Slot          uint64
	ProposerIndex uint64
	ParentRoot    [32]byte
	StateRoot     [32]byte
	BodyRoot      [32]byte
}

// IsEmpty reports whether h is the skipped-slot sentinel: a proposer index
// of zero and every root zeroed. Slot is not part of the check, since an
// empty header still occupies a real slot in the MMR.
func (h Header) IsEmpty() bool {
	return h.ProposerIndex == 0 && h.ParentRoot == [32]byte{} && h.StateRoot == [32]byte{} && h.BodyRoot == [32]byte{}
}

// TreeHash computes the SSZ hash tree root of the header container.
func (h Header) TreeHash() [32]byte {
	fields := [][32]byte{
		ssz.HashTreeRootUint64(h.Slot),
		ssz.HashTreeRootUint64(h.ProposerIndex),
		ssz.HashTreeRootBytes32(h.ParentRoot),
		ssz.HashTreeRootBytes32(h.StateRoot),
		ssz.HashTreeRootBytes32(h.BodyRoot),
	}
	return ssz.HashTreeRootContainer(fields)
}
