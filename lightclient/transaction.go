package lightclient

import (
	"bytes"

	"github.com/eth2030/beaconbridge/mmr"
	"github.com/eth2030/beaconbridge/rlp"
	"github.com/eth2030/beaconbridge/specs"
	"github.com/eth2030/beaconbridge/ssz"
	"github.com/eth2030/beaconbridge/trie"
	"github.com/eth2030/beaconbridge/types"
)

// TransactionProof binds a specific transaction index inside a specific
// beacon block to a Client's header-MMR root: the header itself is proven
// a member of the synced range, and the block's receipts root is proven a
// field of that header's body.
type TransactionProof struct {
	Header               Header
	TransactionIndex     uint64
	ReceiptsRoot         [32]byte
	HeaderMmrProof       []mmr.Digest
	TransactionSszProof  [][32]byte
	ReceiptMptProof      [][]byte
	ReceiptsRootSszProof [][32]byte
}

// TransactionPayload carries the two opaque blobs a TransactionProof's
// inclusion claims are actually about.
type TransactionPayload struct {
	Transaction []byte
	Receipt     []byte
}

// VerifyTransactionProof checks that proof.Header sits in client's synced
// range and is a genuine member of its header MMR.
func VerifyTransactionProof(client Client, proof TransactionProof) error {
	if proof.Header.Slot < client.MinimalSlot || proof.Header.Slot > client.MaximalSlot {
		return ErrUnsynchronized
	}

	leafIndex := proof.Header.Slot - client.MinimalSlot
	pos := mmr.LeafIndexToPos(leafIndex)
	mmrSize := mmr.LeafIndexToMMRSize(client.MaximalSlot - client.MinimalSlot)
	leaf := mmr.Digest(proof.Header.TreeHash())

	if !mmr.VerifyInclusion(client.HeadersMmrRoot, mmrSize, pos, leaf, proof.HeaderMmrProof) {
		return ErrHeaderMmrProof
	}
	return nil
}

// VerifyTransactionPayload checks that payload.Transaction is the proven
// transaction and payload.Receipt is the proven receipt, both against the
// roots proof already tied to a synced header.
func VerifyTransactionPayload(proof TransactionProof, payload TransactionPayload) error {
	slot := proof.Header.Slot
	txGeneralizedIndex := specs.TransactionInBlockBodyOffset(slot) + proof.TransactionIndex
	txRoot := ssz.HashTreeRootByteList(payload.Transaction, specs.MaxBytesPerTransaction)
	if !ssz.VerifyMerkleBranch(proof.Header.BodyRoot, txRoot, proof.TransactionSszProof, txGeneralizedIndex) {
		return ErrTransactionSszProof
	}

	key, err := rlp.EncodeToBytes(proof.TransactionIndex)
	if err != nil {
		return ErrSszError
	}
	result, err := trie.VerifyMPTProof(types.Hash(proof.ReceiptsRoot), key, proof.ReceiptMptProof)
	if err != nil || !result.Exists || !bytes.Equal(result.Value, payload.Receipt) {
		return ErrReceiptMptProof
	}

	receiptsRootGeneralizedIndex := specs.ReceiptsRootInBlockBody(slot)
	receiptsRootLeaf := ssz.HashTreeRootBytes32(proof.ReceiptsRoot)
	if !ssz.VerifyMerkleBranch(proof.Header.BodyRoot, receiptsRootLeaf, proof.ReceiptsRootSszProof, receiptsRootGeneralizedIndex) {
		return ErrReceiptsRootSszProof
	}

	return nil
}
